// Package accountapp предоставляет сборку и маршруты сервиса учётных записей.
package accountapp

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/account-service/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/account-service/internal/http/handlers/health"
	"github.com/magabrotheeeer/account-service/internal/http/handlers/user/activeusers"
	"github.com/magabrotheeeer/account-service/internal/http/handlers/user/overage"
	"github.com/magabrotheeeer/account-service/internal/http/handlers/user/profile"
	"github.com/magabrotheeeer/account-service/internal/http/handlers/user/recovery"
	"github.com/magabrotheeeer/account-service/internal/http/handlers/user/register"
	"github.com/magabrotheeeer/account-service/internal/http/handlers/user/remove"
	"github.com/magabrotheeeer/account-service/internal/http/handlers/user/shortdata"
	"github.com/magabrotheeeer/account-service/internal/http/handlers/user/update"
	"github.com/magabrotheeeer/account-service/internal/http/handlers/user/updatelogin"
	"github.com/magabrotheeeer/account-service/internal/http/handlers/user/updatepassword"
	"github.com/magabrotheeeer/account-service/internal/http/middlewarectx"
	"github.com/magabrotheeeer/account-service/internal/lib/jwt"
	accountservice "github.com/magabrotheeeer/account-service/internal/services/account"
	"github.com/magabrotheeeer/account-service/internal/storage/repository"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, accountService *accountservice.Service,
	store *repository.Storage, jwtMaker jwt.Maker) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		middlewarectx.MetricsMiddleware,
	)

	limiter := rate.NewLimiter(50, 100)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/login", login.New(logger, accountService).ServeHTTP)
		r.Get("/health", health.New(logger, store).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger, limiter))

			r.Put("/update-user", update.New(logger, accountService).ServeHTTP)
			r.Put("/update-login", updatelogin.New(logger, accountService).ServeHTTP)
			r.Put("/update-password", updatepassword.New(logger, accountService).ServeHTTP)
			r.Get("/profile", profile.New(logger, accountService).ServeHTTP)

			// Операции, доступные только администраторам
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.AdminOnly(logger))

				r.Post("/registration", register.New(logger, accountService).ServeHTTP)
				r.Get("/active-users", activeusers.New(logger, accountService).ServeHTTP)
				r.Get("/user-short-data", shortdata.New(logger, accountService).ServeHTTP)
				r.Get("/user-oldes", overage.New(logger, accountService).ServeHTTP)
				r.Delete("/delete", remove.New(logger, accountService).ServeHTTP)
				r.Put("/user-recovery", recovery.New(logger, accountService).ServeHTTP)
			})
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}

// Package middlewarectx содержит HTTP middleware для проверки JWT токенов,
// контроля роли и ограничения частоты запросов.
//
// JWTMiddleware проверяет наличие и валидность JWT в заголовке Authorization
// и в случае успеха добавляет в контекст запроса логин и роль пользователя.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/account-service/internal/http/response"
	"github.com/magabrotheeeer/account-service/internal/lib/jwt"
	"github.com/magabrotheeeer/account-service/internal/lib/sl"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// User — ключ для логина пользователя в контексте.
	User Key = "login"
	// Role — ключ для роли пользователя в контексте.
	Role Key = "role"
)

// JWTMiddleware возвращает HTTP middleware, который проверяет JWT
// в заголовке Authorization.
//
// Если токен валиден, добавляет логин и роль в контекст запроса,
// иначе возвращает HTTP 401 Unauthorized.
func JWTMiddleware(jwtMaker jwt.Maker, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.JWTMiddleware"
			authHeader := r.Header.Get("Authorization")

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("missing or invalid authorization header")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("missing or invalid authorization header"))
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := jwtMaker.ParseToken(tokenStr)
			if err != nil {
				log.Error("invalid or expired token", sl.Err(err))
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired token"))
				return
			}
			ctx := context.WithValue(r.Context(), User, claims.Login)
			ctx = context.WithValue(ctx, Role, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminOnly возвращает middleware, пропускающий только администраторов.
// Для прочих ролей возвращает HTTP 403 Forbidden.
func AdminOnly(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.AdminOnly"
			role, ok := r.Context().Value(Role).(string)
			if !ok || role != jwt.RoleAdmin {
				log.With(slog.String("op", op)).Error("access denied: admin role required",
					slog.String("role", role))
				w.WriteHeader(http.StatusForbidden)
				render.JSON(w, r, response.Error("access denied: admin role required"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ActorLogin извлекает логин аутентифицированного пользователя из контекста.
func ActorLogin(ctx context.Context) (string, bool) {
	login, ok := ctx.Value(User).(string)
	return login, ok && login != ""
}

// ActorIsAdmin сообщает, является ли аутентифицированный пользователь администратором.
func ActorIsAdmin(ctx context.Context) bool {
	role, ok := ctx.Value(Role).(string)
	return ok && role == jwt.RoleAdmin
}

// Package profile реализует HTTP-обработчик запроса собственного профиля.
//
// Профиль доступен только самому активному пользователю: логин из запроса
// должен совпадать с логином из токена и подтверждаться паролем.
package profile

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/account-service/internal/http/middlewarectx"
	"github.com/magabrotheeeer/account-service/internal/http/response"
	"github.com/magabrotheeeer/account-service/internal/lib/sl"
	"github.com/magabrotheeeer/account-service/internal/models"
	"github.com/magabrotheeeer/account-service/internal/services/account"
)

// Service описывает интерфейс бизнес-логики запроса профиля.
type Service interface {
	Profile(ctx context.Context, actorLogin, login, rawPassword string) (*models.UserWithoutPassword, error)
}

// Handler обрабатывает запросы собственного профиля.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получение собственного профиля по логину и паролю
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param login query string true "Логин пользователя"
// @Param password query string true "Пароль пользователя"
// @Success 200 {object} response.Response "Профиль без пароля"
// @Failure 400 {object} response.ErrorResponse "Логины не совпадают, пользователь удалён или неверный пароль"
// @Router /profile [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.profile"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	login := r.URL.Query().Get("login")
	rawPassword := r.URL.Query().Get("password")
	if login == "" || rawPassword == "" {
		log.Error("missing login or password query parameter")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("login and password are required"))
		return
	}

	actorLogin, ok := middlewarectx.ActorLogin(r.Context())
	if !ok {
		log.Error("login not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	user, err := h.service.Profile(r.Context(), actorLogin, login, rawPassword)
	if err != nil {
		log.Error("failed to get profile", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		if account.IsDomainError(err) {
			render.JSON(w, r, response.Error(err.Error()))
			return
		}
		render.JSON(w, r, response.Error("could not get profile"))
		return
	}

	log.Info("returned user profile", slog.String("login", login))
	render.JSON(w, r, response.OKWithData(user))
}

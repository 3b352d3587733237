// Package recovery реализует HTTP-обработчик восстановления пользователя
// из мягкого удаления.
package recovery

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/account-service/internal/http/middlewarectx"
	"github.com/magabrotheeeer/account-service/internal/http/response"
	"github.com/magabrotheeeer/account-service/internal/lib/sl"
	"github.com/magabrotheeeer/account-service/internal/services/account"
)

// Service описывает интерфейс бизнес-логики восстановления пользователя.
type Service interface {
	Recover(ctx context.Context, actorLogin, login string) (string, error)
}

// Handler обрабатывает запросы на восстановление пользователя.
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
// @Summary Восстановление пользователя из мягкого удаления (доступно администраторам)
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param login query string true "Логин пользователя"
// @Success 200 {object} response.Response "Подтверждение восстановления"
// @Failure 400 {object} response.ErrorResponse "Пользователь не найден"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Router /user-recovery [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.recovery"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	login := r.URL.Query().Get("login")
	if login == "" {
		log.Error("missing login query parameter")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("login is required"))
		return
	}

	actorLogin, ok := middlewarectx.ActorLogin(r.Context())
	if !ok {
		log.Error("login not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	msg, err := h.service.Recover(r.Context(), actorLogin, login)
	if err != nil {
		log.Error("failed to recover user", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		if account.IsDomainError(err) {
			render.JSON(w, r, response.Error(err.Error()))
			return
		}
		render.JSON(w, r, response.Error("the user has not been recovered"))
		return
	}

	log.Info("recovered user", slog.String("login", login))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"message": msg,
	}))
}

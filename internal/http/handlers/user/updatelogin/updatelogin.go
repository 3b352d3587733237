// Package updatelogin реализует HTTP-обработчик смены логина пользователя.
//
// Логин может менять администратор либо сам пользователь, если он активен;
// новый логин должен оставаться уникальным. Если пользователь переименовал
// сам себя, в ответ включается свежий токен.
package updatelogin

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/account-service/internal/http/middlewarectx"
	"github.com/magabrotheeeer/account-service/internal/http/response"
	"github.com/magabrotheeeer/account-service/internal/lib/sl"
	"github.com/magabrotheeeer/account-service/internal/services/account"
)

// Service описывает интерфейс бизнес-логики смены логина.
type Service interface {
	ChangeLogin(ctx context.Context, actor account.Actor, oldLogin, newLogin string) (*account.UpdatedLogin, error)
}

// Handler обрабатывает запросы на смену логина.
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
// @Summary Изменение логина пользователя
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param oldLogin query string true "Старый логин"
// @Param newLogin query string true "Новый логин"
// @Success 200 {object} response.Response "Метаданные пользователя и токен при самопереименовании"
// @Failure 400 {object} response.ErrorResponse "Некорректный или занятый новый логин"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Router /update-login [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.updatelogin"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	oldLogin := r.URL.Query().Get("oldLogin")
	newLogin := r.URL.Query().Get("newLogin")
	if oldLogin == "" || newLogin == "" {
		log.Error("missing oldLogin or newLogin query parameter")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("oldLogin and newLogin are required"))
		return
	}

	actorLogin, ok := middlewarectx.ActorLogin(r.Context())
	if !ok {
		log.Error("login not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}
	actor := account.Actor{Login: actorLogin, IsAdmin: middlewarectx.ActorIsAdmin(r.Context())}

	result, err := h.service.ChangeLogin(r.Context(), actor, oldLogin, newLogin)
	if err != nil {
		log.Error("failed to change login", sl.Err(err))
		switch {
		case errors.Is(err, account.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
			render.JSON(w, r, response.Error("access denied"))
		case account.IsDomainError(err):
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
		default:
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("the user login could not be updated"))
		}
		return
	}

	log.Info("changed user login",
		slog.String("old", oldLogin), slog.String("new", newLogin))
	render.JSON(w, r, response.OKWithData(result))
}

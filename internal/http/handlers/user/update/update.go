// Package update реализует HTTP-обработчик изменения имени, пола
// или даты рождения пользователя.
//
// Менять данные может администратор либо сам пользователь, если он активен.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/account-service/internal/http/middlewarectx"
	"github.com/magabrotheeeer/account-service/internal/http/response"
	"github.com/magabrotheeeer/account-service/internal/lib/sl"
	"github.com/magabrotheeeer/account-service/internal/models"
	"github.com/magabrotheeeer/account-service/internal/services/account"
)

// Service описывает интерфейс бизнес-логики обновления профиля.
type Service interface {
	UpdateUser(ctx context.Context, actor account.Actor, req models.UpdateUser) (*models.UserWithoutPassword, error)
}

// Handler обрабатывает запросы на изменение личных данных пользователя.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Изменение личных данных пользователя
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.UpdateUser true "Поля профиля для обновления"
// @Success 200 {object} response.Response "Обновлённый пользователь без пароля"
// @Failure 400 {object} response.ErrorResponse "Некорректные данные"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Router /update-user [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.update"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.UpdateUser
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
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

	updated, err := h.service.UpdateUser(r.Context(), actor, req)
	if err != nil {
		log.Error("failed to update user", sl.Err(err))
		switch {
		case errors.Is(err, account.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
			render.JSON(w, r, response.Error("access denied"))
		case account.IsDomainError(err):
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
		default:
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("the user could not be updated"))
		}
		return
	}

	log.Info("updated user", slog.String("login", req.Login))
	render.JSON(w, r, response.OKWithData(updated))
}

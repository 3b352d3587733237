// Package remove реализует HTTP-обработчик удаления пользователя:
// мягкого (простановка revoked_on/revoked_by) или полного (удаление строки).
package remove

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/account-service/internal/http/middlewarectx"
	"github.com/magabrotheeeer/account-service/internal/http/response"
	"github.com/magabrotheeeer/account-service/internal/lib/sl"
	"github.com/magabrotheeeer/account-service/internal/services/account"
)

// DeleteRequest — данные для удаления пользователя.
// SoftDelete по умолчанию true.
type DeleteRequest struct {
	Login      string `json:"login" validate:"required"`
	SoftDelete *bool  `json:"softDelete,omitempty"`
}

// Service описывает интерфейс бизнес-логики удаления пользователя.
type Service interface {
	Delete(ctx context.Context, actorLogin, login string, soft bool) (string, error)
}

// Handler обрабатывает запросы на удаление пользователя.
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
// @Summary Удаление пользователя, мягкое или полное (доступно администраторам)
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body DeleteRequest true "Логин и признак мягкого удаления"
// @Success 200 {object} response.Response "Подтверждение удаления"
// @Failure 400 {object} response.ErrorResponse "Пользователь не найден"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Router /delete [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.remove"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req DeleteRequest
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

	soft := true
	if req.SoftDelete != nil {
		soft = *req.SoftDelete
	}

	actorLogin, ok := middlewarectx.ActorLogin(r.Context())
	if !ok {
		log.Error("login not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	msg, err := h.service.Delete(r.Context(), actorLogin, req.Login, soft)
	if err != nil {
		log.Error("failed to delete user", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		if account.IsDomainError(err) {
			render.JSON(w, r, response.Error(err.Error()))
			return
		}
		render.JSON(w, r, response.Error("the user has not been deleted"))
		return
	}

	log.Info("deleted user", slog.String("login", req.Login), slog.Bool("soft", soft))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"message": msg,
	}))
}

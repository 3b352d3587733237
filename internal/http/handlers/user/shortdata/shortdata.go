// Package shortdata реализует HTTP-обработчик кратких данных пользователя:
// имя, пол, дата рождения и статус активности.
package shortdata

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/account-service/internal/http/response"
	"github.com/magabrotheeeer/account-service/internal/lib/sl"
	"github.com/magabrotheeeer/account-service/internal/models"
	"github.com/magabrotheeeer/account-service/internal/services/account"
)

// Service описывает интерфейс бизнес-логики кратких данных пользователя.
type Service interface {
	ShortData(ctx context.Context, login string) (*models.ShortUser, error)
}

// Handler обрабатывает запросы кратких данных пользователя по логину.
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
// @Summary Краткие данные пользователя по логину (доступно администраторам)
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param login query string true "Логин пользователя"
// @Success 200 {object} response.Response "Имя, пол, дата рождения и статус"
// @Failure 400 {object} response.ErrorResponse "Пользователь не найден"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Router /user-short-data [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.shortdata"
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

	short, err := h.service.ShortData(r.Context(), login)
	if err != nil {
		log.Error("failed to get user short data", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		if account.IsDomainError(err) {
			render.JSON(w, r, response.Error(err.Error()))
			return
		}
		render.JSON(w, r, response.Error("could not get user short data"))
		return
	}

	log.Info("returned user short data", slog.String("login", login))
	render.JSON(w, r, response.OKWithData(short))
}

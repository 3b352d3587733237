// Package activeusers реализует HTTP-обработчик списка активных пользователей.
package activeusers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/account-service/internal/http/response"
	"github.com/magabrotheeeer/account-service/internal/lib/sl"
	"github.com/magabrotheeeer/account-service/internal/models"
)

// Service описывает интерфейс бизнес-логики списка активных пользователей.
type Service interface {
	ActiveUsers(ctx context.Context) ([]*models.UserWithoutPassword, error)
}

// Handler обрабатывает запросы списка активных пользователей.
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
// @Summary Список активных пользователей, отсортированный по дате создания (доступно администраторам)
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response "Список пользователей без паролей"
// @Failure 400 {object} response.ErrorResponse "Ошибка получения списка"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Router /active-users [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.activeusers"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	users, err := h.service.ActiveUsers(r.Context())
	if err != nil {
		log.Error("failed to list active users", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("could not list active users"))
		return
	}

	log.Info("listed active users", slog.Int("count", len(users)))
	render.JSON(w, r, response.OKWithData(users))
}

// Package overage реализует HTTP-обработчик списка пользователей
// старше заданного возраста.
//
// Возраст считается как разница годов без учёта дня и месяца;
// пользователи без даты рождения в выборку не попадают.
package overage

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/account-service/internal/http/response"
	"github.com/magabrotheeeer/account-service/internal/lib/sl"
	"github.com/magabrotheeeer/account-service/internal/models"
)

// DefaultAge используется, когда параметр age в запросе не задан.
const DefaultAge = 10

// Service описывает интерфейс бизнес-логики возрастной выборки.
type Service interface {
	UsersOverAge(ctx context.Context, age int) ([]*models.UserWithoutPassword, error)
}

// Handler обрабатывает запросы списка пользователей старше заданного возраста.
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
// @Summary Список пользователей старше заданного возраста (доступно администраторам)
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param age query int false "Возраст, от 0 до 100" default(10)
// @Success 200 {object} response.Response "Список пользователей без паролей"
// @Failure 400 {object} response.ErrorResponse "Возраст вне диапазона"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Router /user-oldes [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.overage"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	age := DefaultAge
	if raw := r.URL.Query().Get("age"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			log.Error("failed to parse age", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("no correct age"))
			return
		}
		age = parsed
	}
	if age < 0 || age > 100 {
		log.Error("age is out of range", slog.Int("age", age))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("no correct age"))
		return
	}

	users, err := h.service.UsersOverAge(r.Context(), age)
	if err != nil {
		log.Error("failed to list users over age", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("could not list users over age"))
		return
	}

	log.Info("listed users over age", slog.Int("age", age), slog.Int("count", len(users)))
	render.JSON(w, r, response.OKWithData(users))
}

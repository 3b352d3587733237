// Package health реализует HTTP-обработчик проверки готовности сервиса.
package health

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/account-service/internal/lib/sl"
)

// Checker описывает проверку доступности хранилища.
type Checker interface {
	CheckReady(ctx context.Context) error
}

// Handler обрабатывает запросы проверки готовности.
type Handler struct {
	log     *slog.Logger
	checker Checker
}

// New создает новый Handler с переданными логгером и проверкой хранилища.
func New(log *slog.Logger, checker Checker) *Handler {
	return &Handler{
		log:     log,
		checker: checker,
	}
}

// ServeHTTP godoc
// @Summary Проверка готовности сервиса
// @Tags Health
// @Produce json
// @Success 204 "Хранилище доступно"
// @Failure 503 {object} map[string]string "Хранилище недоступно"
// @Router /health [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.health"
	if err := h.checker.CheckReady(r.Context()); err != nil {
		h.log.With(slog.String("op", op)).Error("storage is not ready", sl.Err(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		render.JSON(w, r, map[string]string{
			"error":   "storage unavailable",
			"message": err.Error(),
		})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

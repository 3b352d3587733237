// Package login реализует HTTP-обработчик аутентификации пользователя.
//
// Handler принимает логин и пароль, проверяет их через бизнес-логику
// и возвращает подписанный токен в JSON-формате.
package login

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/account-service/internal/http/response"
	"github.com/magabrotheeeer/account-service/internal/lib/sl"
	"github.com/magabrotheeeer/account-service/internal/services/account"
)

// LoginRequest — данные для аутентификации.
type LoginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Service описывает интерфейс бизнес-логики аутентификации.
type Service interface {
	Login(ctx context.Context, login, rawPassword string) (string, error)
}

// Handler обрабатывает запросы на вход в систему.
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
// @Summary Аутентификация пользователя (вход в систему)
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Данные для аутентификации"
// @Success 200 {object} response.Response "Токен в поле data"
// @Failure 400 {object} response.ErrorResponse "Пользователь не найден, удалён или неверный пароль"
// @Router /login [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req LoginRequest
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

	token, err := h.service.Login(r.Context(), req.Login, req.Password)
	if err != nil {
		log.Error("failed to login user", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		if account.IsDomainError(err) {
			render.JSON(w, r, response.Error(err.Error()))
			return
		}
		render.JSON(w, r, response.Error("could not login user"))
		return
	}

	log.Info("user logged in", slog.String("login", req.Login))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"token": token,
	}))
}

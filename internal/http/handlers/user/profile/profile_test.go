package profile

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/account-service/internal/http/middlewarectx"
	"github.com/magabrotheeeer/account-service/internal/models"
	"github.com/magabrotheeeer/account-service/internal/services/account"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Profile(ctx context.Context, actorLogin, login, rawPassword string) (*models.UserWithoutPassword, error) {
	args := m.Called(ctx, actorLogin, login, rawPassword)
	user, _ := args.Get(0).(*models.UserWithoutPassword)
	return user, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestProfileHandler_ServeHTTP(t *testing.T) {
	user := &models.UserWithoutPassword{
		Guid:  uuid.New(),
		Login: "user1",
		Name:  "Ivan",
	}

	tests := []struct {
		name           string
		query          string
		mockResp       *models.UserWithoutPassword
		mockErr        error
		wantStatusCode int
		wantError      string
		wantStatus     string
	}{
		{
			name:           "own profile",
			query:          "?login=user1&password=password123",
			mockResp:       user,
			wantStatusCode: http.StatusOK,
			wantStatus:     "OK",
		},
		{
			name:           "missing query parameters",
			query:          "?login=user1",
			wantStatusCode: http.StatusBadRequest,
			wantError:      "login and password are required",
			wantStatus:     "Error",
		},
		{
			name:           "foreign login",
			query:          "?login=user2&password=password123",
			mockErr:        account.ErrLoginMismatch,
			wantStatusCode: http.StatusBadRequest,
			wantError:      account.ErrLoginMismatch.Error(),
			wantStatus:     "Error",
		},
		{
			name:           "wrong password",
			query:          "?login=user1&password=wrongpass",
			mockErr:        account.ErrWrongPassword,
			wantStatusCode: http.StatusBadRequest,
			wantError:      account.ErrWrongPassword.Error(),
			wantStatus:     "Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(ServiceMock)
			handler := New(newNoopLogger(), serviceMock)

			if tt.mockResp != nil || tt.mockErr != nil {
				serviceMock.On("Profile", mock.Anything, "user1",
					mock.AnythingOfType("string"), mock.AnythingOfType("string")).
					Return(tt.mockResp, tt.mockErr).Once()
			}

			req := httptest.NewRequest(http.MethodGet, "/profile"+tt.query, nil)
			ctx := context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123")
			ctx = context.WithValue(ctx, middlewarectx.User, "user1")
			req = req.WithContext(ctx)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			assert.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
			assert.Equal(t, tt.wantStatus, got["status"])

			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, got["error"])
			} else {
				data, ok := got["data"].(map[string]any)
				assert.True(t, ok)
				assert.Equal(t, "user1", data["login"])
			}
			serviceMock.AssertExpectations(t)
		})
	}
}

package update

import (
	"bytes"
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
	"github.com/magabrotheeeer/account-service/internal/lib/jwt"
	"github.com/magabrotheeeer/account-service/internal/models"
	"github.com/magabrotheeeer/account-service/internal/services/account"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) UpdateUser(ctx context.Context, actor account.Actor, req models.UpdateUser) (*models.UserWithoutPassword, error) {
	args := m.Called(ctx, actor, req)
	updated, _ := args.Get(0).(*models.UserWithoutPassword)
	return updated, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestUpdateHandler_ServeHTTP(t *testing.T) {
	updated := &models.UserWithoutPassword{
		Guid:  uuid.New(),
		Login: "user1",
		Name:  "Petr",
	}

	tests := []struct {
		name           string
		requestBody    any
		actorLogin     string
		actorRole      string
		mockResp       *models.UserWithoutPassword
		mockErr        error
		wantStatusCode int
		wantError      string
		wantStatus     string
	}{
		{
			name:           "self update",
			requestBody:    models.UpdateUser{Login: "user1", Name: "Petr"},
			actorLogin:     "user1",
			actorRole:      jwt.RoleUser,
			mockResp:       updated,
			wantStatusCode: http.StatusOK,
			wantStatus:     "OK",
		},
		{
			name:           "invalid json body",
			requestBody:    "not a json",
			actorLogin:     "user1",
			actorRole:      jwt.RoleUser,
			wantStatusCode: http.StatusBadRequest,
			wantError:      "invalid request body",
			wantStatus:     "Error",
		},
		{
			name:           "validation error - missing login",
			requestBody:    models.UpdateUser{Name: "Petr"},
			actorLogin:     "user1",
			actorRole:      jwt.RoleUser,
			wantStatusCode: http.StatusBadRequest,
			wantError:      "field Login is a required field",
			wantStatus:     "Error",
		},
		{
			name:           "forbidden for another user",
			requestBody:    models.UpdateUser{Login: "user2", Name: "Petr"},
			actorLogin:     "user1",
			actorRole:      jwt.RoleUser,
			mockErr:        account.ErrForbidden,
			wantStatusCode: http.StatusForbidden,
			wantError:      "access denied",
			wantStatus:     "Error",
		},
		{
			name:           "bad name format",
			requestBody:    models.UpdateUser{Login: "user1", Name: "Petr"},
			actorLogin:     "user1",
			actorRole:      jwt.RoleUser,
			mockErr:        account.ErrBadName,
			wantStatusCode: http.StatusBadRequest,
			wantError:      account.ErrBadName.Error(),
			wantStatus:     "Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(ServiceMock)
			handler := New(newNoopLogger(), serviceMock)

			if tt.mockResp != nil || tt.mockErr != nil {
				actor := account.Actor{Login: tt.actorLogin, IsAdmin: tt.actorRole == jwt.RoleAdmin}
				serviceMock.On("UpdateUser", mock.Anything, actor, tt.requestBody.(models.UpdateUser)).
					Return(tt.mockResp, tt.mockErr).Once()
			}

			var bodyBytes []byte
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				var err error
				bodyBytes, err = json.Marshal(tt.requestBody)
				if err != nil {
					t.Fatal(err)
				}
			}

			req := httptest.NewRequest(http.MethodPut, "/update-user", bytes.NewReader(bodyBytes))
			ctx := context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123")
			ctx = context.WithValue(ctx, middlewarectx.User, tt.actorLogin)
			ctx = context.WithValue(ctx, middlewarectx.Role, tt.actorRole)
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
				assert.Equal(t, "Petr", data["name"])
			}
			serviceMock.AssertExpectations(t)
		})
	}
}

package account

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/account-service/internal/config"
	"github.com/magabrotheeeer/account-service/internal/lib/jwt"
	"github.com/magabrotheeeer/account-service/internal/lib/password"
	"github.com/magabrotheeeer/account-service/internal/models"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) LoginExists(ctx context.Context, login string) (bool, error) {
	args := m.Called(ctx, login)
	return args.Bool(0), args.Error(1)
}
func (m *RepoMock) IsActive(ctx context.Context, login string) (bool, error) {
	args := m.Called(ctx, login)
	return args.Bool(0), args.Error(1)
}
func (m *RepoMock) GetByLogin(ctx context.Context, login string) (*models.User, error) {
	args := m.Called(ctx, login)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *RepoMock) Create(ctx context.Context, user models.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *RepoMock) AdminExists(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}
func (m *RepoMock) ListActive(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}
func (m *RepoMock) ListOverAge(ctx context.Context, age int) ([]*models.User, error) {
	args := m.Called(ctx, age)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}
func (m *RepoMock) Update(ctx context.Context, login string, name *string, gender *int,
	birthday *time.Time, actorLogin string) (int64, error) {
	args := m.Called(ctx, login, name, gender, birthday, actorLogin)
	return args.Get(0).(int64), args.Error(1)
}
func (m *RepoMock) ChangeLogin(ctx context.Context, oldLogin, newLogin, modifiedBy string) (int64, error) {
	args := m.Called(ctx, oldLogin, newLogin, modifiedBy)
	return args.Get(0).(int64), args.Error(1)
}
func (m *RepoMock) ChangePassword(ctx context.Context, login, passwordHash, actorLogin string) (int64, error) {
	args := m.Called(ctx, login, passwordHash, actorLogin)
	return args.Get(0).(int64), args.Error(1)
}
func (m *RepoMock) SoftDelete(ctx context.Context, login, actorLogin string) (int64, error) {
	args := m.Called(ctx, login, actorLogin)
	return args.Get(0).(int64), args.Error(1)
}
func (m *RepoMock) HardDelete(ctx context.Context, login string) (int64, error) {
	args := m.Called(ctx, login)
	return args.Get(0).(int64), args.Error(1)
}
func (m *RepoMock) Recover(ctx context.Context, login, actorLogin string) (int64, error) {
	args := m.Called(ctx, login, actorLogin)
	return args.Get(0).(int64), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func newTestService(repo *RepoMock) *Service {
	maker := jwt.NewMaker("testsecret", "account-service", "account-service", time.Hour)
	return New(repo, maker, newNoopLogger())
}

func mustHash(t *testing.T, raw string) string {
	t.Helper()
	hash, err := password.GetHash(raw)
	require.NoError(t, err)
	return hash
}

func testUser(login, hash string) *models.User {
	return &models.User{
		Guid:         uuid.New(),
		Login:        login,
		PasswordHash: hash,
		Name:         "Ivan",
		Gender:       models.GenderMale,
		CreatedOn:    time.Now().UTC(),
		CreatedBy:    "admin",
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	hash := mustHash(t, "password123")

	tests := []struct {
		name    string
		setup   func(repo *RepoMock)
		rawPass string
		wantErr error
	}{
		{
			name: "success",
			setup: func(repo *RepoMock) {
				repo.On("LoginExists", ctx, "user1").Return(true, nil)
				repo.On("IsActive", ctx, "user1").Return(true, nil)
				repo.On("GetByLogin", ctx, "user1").Return(testUser("user1", hash), nil)
			},
			rawPass: "password123",
		},
		{
			name: "unknown login",
			setup: func(repo *RepoMock) {
				repo.On("LoginExists", ctx, "user1").Return(false, nil)
			},
			rawPass: "password123",
			wantErr: ErrUserNotFoundOrDeleted,
		},
		{
			name: "soft deleted user",
			setup: func(repo *RepoMock) {
				repo.On("LoginExists", ctx, "user1").Return(true, nil)
				repo.On("IsActive", ctx, "user1").Return(false, nil)
			},
			rawPass: "password123",
			wantErr: ErrUserNotFoundOrDeleted,
		},
		{
			name: "wrong password",
			setup: func(repo *RepoMock) {
				repo.On("LoginExists", ctx, "user1").Return(true, nil)
				repo.On("IsActive", ctx, "user1").Return(true, nil)
				repo.On("GetByLogin", ctx, "user1").Return(testUser("user1", hash), nil)
			},
			rawPass: "wrongpass",
			wantErr: ErrWrongPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			tt.setup(repo)
			service := newTestService(repo)

			token, err := service.Login(ctx, "user1", tt.rawPass)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, token)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("LoginExists", ctx, "newuser").Return(false, nil)
		repo.On("Create", ctx, mock.MatchedBy(func(u models.User) bool {
			return u.Login == "newuser" && u.CreatedBy == "admin" && !u.Admin
		})).Return(nil)
		repo.On("GetByLogin", ctx, "newuser").Return(testUser("newuser", "hash"), nil)
		service := newTestService(repo)

		created, err := service.Register(ctx, "admin", models.Registration{
			Login:    "newuser",
			Password: "password123",
			Name:     "Ivan",
			Gender:   models.GenderMale,
			Birthday: "1990-05-15",
		})
		require.NoError(t, err)
		assert.Equal(t, "newuser", created.Login)
		repo.AssertExpectations(t)
	})

	t.Run("login taken", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("LoginExists", ctx, "newuser").Return(true, nil)
		service := newTestService(repo)

		_, err := service.Register(ctx, "admin", models.Registration{
			Login: "newuser", Password: "password123", Name: "Ivan",
		})
		assert.ErrorIs(t, err, ErrLoginTaken)
	})

	t.Run("format checks run before storage", func(t *testing.T) {
		repo := new(RepoMock)
		service := newTestService(repo)

		_, err := service.Register(ctx, "admin", models.Registration{
			Login: "bad login!", Password: "password123", Name: "Ivan",
		})
		assert.ErrorIs(t, err, ErrBadLogin)

		_, err = service.Register(ctx, "admin", models.Registration{
			Login: "newuser", Password: "пароль", Name: "Ivan",
		})
		assert.ErrorIs(t, err, ErrBadPassword)

		_, err = service.Register(ctx, "admin", models.Registration{
			Login: "newuser", Password: "password123", Name: "Ivan123",
		})
		assert.ErrorIs(t, err, ErrBadName)

		_, err = service.Register(ctx, "admin", models.Registration{
			Login: "newuser", Password: "password123", Name: "Ivan", Gender: 5,
		})
		assert.ErrorIs(t, err, ErrBadGender)

		_, err = service.Register(ctx, "admin", models.Registration{
			Login: "newuser", Password: "password123", Name: "Ivan", Birthday: "15.05.1990",
		})
		assert.ErrorIs(t, err, ErrBadBirthday)

		repo.AssertNotCalled(t, "Create")
	})
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("inactive actor is rejected", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("IsActive", ctx, "user1").Return(false, nil)
		service := newTestService(repo)

		_, err := service.UpdateUser(ctx, Actor{Login: "user1"}, models.UpdateUser{Login: "user1"})
		assert.ErrorIs(t, err, ErrActorNotActive)
	})

	t.Run("non-admin cannot update another user", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("IsActive", ctx, "user1").Return(true, nil)
		repo.On("LoginExists", ctx, "user2").Return(true, nil)
		service := newTestService(repo)

		_, err := service.UpdateUser(ctx, Actor{Login: "user1"}, models.UpdateUser{Login: "user2"})
		assert.ErrorIs(t, err, ErrForbidden)
		repo.AssertNotCalled(t, "Update")
	})

	t.Run("unknown subject", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("IsActive", ctx, "admin").Return(true, nil)
		repo.On("LoginExists", ctx, "ghost").Return(false, nil)
		service := newTestService(repo)

		_, err := service.UpdateUser(ctx, Actor{Login: "admin", IsAdmin: true}, models.UpdateUser{Login: "ghost"})
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("admin cannot update soft deleted user", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("IsActive", ctx, "admin").Return(true, nil)
		repo.On("LoginExists", ctx, "user1").Return(true, nil)
		repo.On("IsActive", ctx, "user1").Return(false, nil)
		service := newTestService(repo)

		_, err := service.UpdateUser(ctx, Actor{Login: "admin", IsAdmin: true}, models.UpdateUser{Login: "user1"})
		assert.ErrorIs(t, err, ErrUserNotActive)
	})

	t.Run("unchanged fields skip mutation", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("IsActive", ctx, "user1").Return(true, nil)
		repo.On("LoginExists", ctx, "user1").Return(true, nil)
		repo.On("GetByLogin", ctx, "user1").Return(testUser("user1", "hash"), nil)
		service := newTestService(repo)

		gender := models.GenderMale
		got, err := service.UpdateUser(ctx, Actor{Login: "user1"}, models.UpdateUser{
			Login: "user1", Name: "Ivan", Gender: &gender,
		})
		require.NoError(t, err)
		assert.Equal(t, "Ivan", got.Name)
		repo.AssertNotCalled(t, "Update")
	})

	t.Run("changed fields are persisted", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("IsActive", ctx, "user1").Return(true, nil)
		repo.On("LoginExists", ctx, "user1").Return(true, nil)
		repo.On("GetByLogin", ctx, "user1").Return(testUser("user1", "hash"), nil).Once()
		repo.On("Update", ctx, "user1",
			mock.MatchedBy(func(name *string) bool { return name != nil && *name == "Petr" }),
			(*int)(nil), (*time.Time)(nil), "user1").Return(int64(1), nil)
		updated := testUser("user1", "hash")
		updated.Name = "Petr"
		repo.On("GetByLogin", ctx, "user1").Return(updated, nil).Once()
		service := newTestService(repo)

		got, err := service.UpdateUser(ctx, Actor{Login: "user1"}, models.UpdateUser{
			Login: "user1", Name: "Petr",
		})
		require.NoError(t, err)
		assert.Equal(t, "Petr", got.Name)
		repo.AssertExpectations(t)
	})
}

func TestChangeLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("same login is a no-op", func(t *testing.T) {
		repo := new(RepoMock)
		service := newTestService(repo)

		got, err := service.ChangeLogin(ctx, Actor{Login: "user1"}, "user1", "user1")
		require.NoError(t, err)
		assert.Nil(t, got.Metadata)
		assert.Empty(t, got.Token)
		repo.AssertNotCalled(t, "ChangeLogin")
	})

	t.Run("new login already taken", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("IsActive", ctx, "user1").Return(true, nil)
		repo.On("LoginExists", ctx, "user1").Return(true, nil)
		repo.On("LoginExists", ctx, "user2").Return(true, nil)
		service := newTestService(repo)

		_, err := service.ChangeLogin(ctx, Actor{Login: "user1"}, "user1", "user2")
		assert.ErrorIs(t, err, ErrLoginTaken)
	})

	t.Run("self rename issues fresh token", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("IsActive", ctx, "user1").Return(true, nil)
		repo.On("LoginExists", ctx, "user1").Return(true, nil)
		repo.On("LoginExists", ctx, "user2").Return(false, nil)
		repo.On("ChangeLogin", ctx, "user1", "user2", "user2").Return(int64(1), nil)
		repo.On("GetByLogin", ctx, "user2").Return(testUser("user2", "hash"), nil)
		service := newTestService(repo)

		got, err := service.ChangeLogin(ctx, Actor{Login: "user1"}, "user1", "user2")
		require.NoError(t, err)
		assert.Equal(t, "user2", got.Metadata.Login)
		assert.NotEmpty(t, got.Token)
		repo.AssertExpectations(t)
	})

	t.Run("admin rename issues no token", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("IsActive", ctx, "admin").Return(true, nil)
		repo.On("LoginExists", ctx, "user1").Return(true, nil)
		repo.On("IsActive", ctx, "user1").Return(true, nil)
		repo.On("LoginExists", ctx, "user2").Return(false, nil)
		repo.On("ChangeLogin", ctx, "user1", "user2", "admin").Return(int64(1), nil)
		repo.On("GetByLogin", ctx, "user2").Return(testUser("user2", "hash"), nil)
		service := newTestService(repo)

		got, err := service.ChangeLogin(ctx, Actor{Login: "admin", IsAdmin: true}, "user1", "user2")
		require.NoError(t, err)
		assert.Equal(t, "user2", got.Metadata.Login)
		assert.Empty(t, got.Token)
		repo.AssertExpectations(t)
	})

	t.Run("bad new login format", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("IsActive", ctx, "user1").Return(true, nil)
		repo.On("LoginExists", ctx, "user1").Return(true, nil)
		service := newTestService(repo)

		_, err := service.ChangeLogin(ctx, Actor{Login: "user1"}, "user1", "bad login!")
		assert.ErrorIs(t, err, ErrBadLogin)
	})
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("passwords mismatch", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("IsActive", ctx, "user1").Return(true, nil)
		repo.On("LoginExists", ctx, "user1").Return(true, nil)
		service := newTestService(repo)

		err := service.ChangePassword(ctx, Actor{Login: "user1"}, "user1", "password1", "password2")
		assert.ErrorIs(t, err, ErrPasswordsMismatch)
	})

	t.Run("bad password format", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("IsActive", ctx, "user1").Return(true, nil)
		repo.On("LoginExists", ctx, "user1").Return(true, nil)
		service := newTestService(repo)

		err := service.ChangePassword(ctx, Actor{Login: "user1"}, "user1", "пароль", "пароль")
		assert.ErrorIs(t, err, ErrBadPassword)
	})

	t.Run("non-admin cannot change another user password", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("IsActive", ctx, "user1").Return(true, nil)
		repo.On("LoginExists", ctx, "user2").Return(true, nil)
		service := newTestService(repo)

		err := service.ChangePassword(ctx, Actor{Login: "user1"}, "user2", "password123", "password123")
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("success", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("IsActive", ctx, "user1").Return(true, nil)
		repo.On("LoginExists", ctx, "user1").Return(true, nil)
		repo.On("ChangePassword", ctx, "user1", mock.AnythingOfType("string"), "user1").
			Return(int64(1), nil)
		service := newTestService(repo)

		err := service.ChangePassword(ctx, Actor{Login: "user1"}, "user1", "password123", "password123")
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown user", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("LoginExists", ctx, "ghost").Return(false, nil)
		service := newTestService(repo)

		_, err := service.Delete(ctx, "admin", "ghost", true)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("soft delete active user", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("LoginExists", ctx, "user1").Return(true, nil)
		repo.On("IsActive", ctx, "user1").Return(true, nil)
		repo.On("SoftDelete", ctx, "user1", "admin").Return(int64(1), nil)
		service := newTestService(repo)

		msg, err := service.Delete(ctx, "admin", "user1", true)
		require.NoError(t, err)
		assert.Equal(t, `the soft removal of user "user1" was successful`, msg)
		repo.AssertExpectations(t)
	})

	t.Run("soft delete already inactive user", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("LoginExists", ctx, "user1").Return(true, nil)
		repo.On("IsActive", ctx, "user1").Return(false, nil)
		service := newTestService(repo)

		msg, err := service.Delete(ctx, "admin", "user1", true)
		require.NoError(t, err)
		assert.Equal(t, "deleting user is not active", msg)
		repo.AssertNotCalled(t, "SoftDelete")
	})

	t.Run("hard delete", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("LoginExists", ctx, "user1").Return(true, nil)
		repo.On("HardDelete", ctx, "user1").Return(int64(1), nil)
		service := newTestService(repo)

		msg, err := service.Delete(ctx, "admin", "user1", false)
		require.NoError(t, err)
		assert.Equal(t, `the hard removal of user "user1" was successful`, msg)
		repo.AssertExpectations(t)
	})
}

func TestRecover(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("LoginExists", ctx, "user1").Return(true, nil)
		repo.On("IsActive", ctx, "user1").Return(false, nil)
		repo.On("Recover", ctx, "user1", "admin").Return(int64(1), nil)
		service := newTestService(repo)

		msg, err := service.Recover(ctx, "admin", "user1")
		require.NoError(t, err)
		assert.Equal(t, "the user's recovery was successful", msg)
		repo.AssertExpectations(t)
	})

	t.Run("user is not soft deleted", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("LoginExists", ctx, "user1").Return(true, nil)
		repo.On("IsActive", ctx, "user1").Return(true, nil)
		service := newTestService(repo)

		msg, err := service.Recover(ctx, "admin", "user1")
		require.NoError(t, err)
		assert.Equal(t, "user is not soft deleted", msg)
		repo.AssertNotCalled(t, "Recover")
	})

	t.Run("unknown user", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("LoginExists", ctx, "ghost").Return(false, nil)
		service := newTestService(repo)

		_, err := service.Recover(ctx, "admin", "ghost")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestProfile(t *testing.T) {
	ctx := context.Background()
	hash := mustHash(t, "password123")

	t.Run("success", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("LoginExists", ctx, "user1").Return(true, nil)
		repo.On("IsActive", ctx, "user1").Return(true, nil)
		repo.On("GetByLogin", ctx, "user1").Return(testUser("user1", hash), nil)
		service := newTestService(repo)

		got, err := service.Profile(ctx, "user1", "user1", "password123")
		require.NoError(t, err)
		assert.Equal(t, "user1", got.Login)
	})

	t.Run("login mismatch", func(t *testing.T) {
		repo := new(RepoMock)
		service := newTestService(repo)

		_, err := service.Profile(ctx, "user1", "user2", "password123")
		assert.ErrorIs(t, err, ErrLoginMismatch)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("LoginExists", ctx, "user1").Return(true, nil)
		repo.On("IsActive", ctx, "user1").Return(true, nil)
		repo.On("GetByLogin", ctx, "user1").Return(testUser("user1", hash), nil)
		service := newTestService(repo)

		_, err := service.Profile(ctx, "user1", "user1", "wrongpass")
		assert.ErrorIs(t, err, ErrWrongPassword)
	})
}

func TestShortData(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("LoginExists", ctx, "user1").Return(true, nil)
		repo.On("GetByLogin", ctx, "user1").Return(testUser("user1", "hash"), nil)
		service := newTestService(repo)

		got, err := service.ShortData(ctx, "user1")
		require.NoError(t, err)
		assert.Equal(t, "Ivan", got.Name)
		assert.True(t, got.Active)
	})

	t.Run("unknown user", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("LoginExists", ctx, "ghost").Return(false, nil)
		service := newTestService(repo)

		_, err := service.ShortData(ctx, "ghost")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestActiveUsers(t *testing.T) {
	ctx := context.Background()
	repo := new(RepoMock)
	repo.On("ListActive", ctx).Return([]*models.User{
		testUser("user1", "hash"), testUser("user2", "hash"),
	}, nil)
	service := newTestService(repo)

	got, err := service.ActiveUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestUsersOverAge(t *testing.T) {
	ctx := context.Background()
	repo := new(RepoMock)
	repo.On("ListOverAge", ctx, 18).Return([]*models.User{testUser("user1", "hash")}, nil)
	service := newTestService(repo)

	got, err := service.UsersOverAge(ctx, 18)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestEnsureAdmin(t *testing.T) {
	ctx := context.Background()
	admin := config.BootstrapAdmin{
		AdminLogin:    "admin",
		AdminName:     "Administrator",
		AdminPassword: "adminpass",
		AdminGender:   models.GenderUnknown,
	}

	t.Run("creates admin on empty database", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("AdminExists", ctx).Return(false, nil)
		repo.On("Create", ctx, mock.MatchedBy(func(u models.User) bool {
			return u.Login == "admin" && u.Admin && u.CreatedBy == BootstrapCreatedBy
		})).Return(nil)
		service := newTestService(repo)

		require.NoError(t, service.EnsureAdmin(ctx, admin))
		repo.AssertExpectations(t)
	})

	t.Run("skips when admin already exists", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("AdminExists", ctx).Return(true, nil)
		service := newTestService(repo)

		require.NoError(t, service.EnsureAdmin(ctx, admin))
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("propagates storage error", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("AdminExists", ctx).Return(false, errors.New("db down"))
		service := newTestService(repo)

		assert.Error(t, service.EnsureAdmin(ctx, admin))
	})
}

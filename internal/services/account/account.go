// Package account содержит бизнес-логику управления учётными записями:
// правила авторизации (кто и над кем может действовать), порядок проверок
// входных данных и композицию хранилища с выпуском токенов.
package account

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/account-service/internal/config"
	"github.com/magabrotheeeer/account-service/internal/lib/jwt"
	"github.com/magabrotheeeer/account-service/internal/lib/password"
	"github.com/magabrotheeeer/account-service/internal/lib/validate"
	"github.com/magabrotheeeer/account-service/internal/models"
)

// BootstrapCreatedBy проставляется в created_by администратора,
// созданного при инициализации базы.
const BootstrapCreatedBy = "bootstrap"

const birthdayLayout = "2006-01-02"

// UserRepository описывает контракт хранилища учётных записей.
//
// Методы одиночного доступа (IsActive, GetByLogin) требуют существующего
// логина: вызывающий обязан проверить существование заранее.
type UserRepository interface {
	LoginExists(ctx context.Context, login string) (bool, error)
	IsActive(ctx context.Context, login string) (bool, error)
	GetByLogin(ctx context.Context, login string) (*models.User, error)
	Create(ctx context.Context, user models.User) error
	AdminExists(ctx context.Context) (bool, error)
	ListActive(ctx context.Context) ([]*models.User, error)
	ListOverAge(ctx context.Context, age int) ([]*models.User, error)
	Update(ctx context.Context, login string, name *string, gender *int, birthday *time.Time, actorLogin string) (int64, error)
	ChangeLogin(ctx context.Context, oldLogin, newLogin, modifiedBy string) (int64, error)
	ChangePassword(ctx context.Context, login, passwordHash, actorLogin string) (int64, error)
	SoftDelete(ctx context.Context, login, actorLogin string) (int64, error)
	HardDelete(ctx context.Context, login string) (int64, error)
	Recover(ctx context.Context, login, actorLogin string) (int64, error)
}

// Actor — аутентифицированная учётная запись, выполняющая запрос.
type Actor struct {
	Login   string
	IsAdmin bool
}

// UpdatedLogin — результат смены логина: метаданные пользователя и,
// если пользователь переименовал сам себя, свежий токен.
type UpdatedLogin struct {
	Metadata *models.UserWithoutPassword `json:"metadata,omitempty"`
	Token    string                      `json:"token,omitempty"`
}

// Service реализует прикладные операции над учётными записями.
type Service struct {
	users    UserRepository
	jwtMaker jwt.Maker
	log      *slog.Logger
}

// New создаёт новый Service.
func New(users UserRepository, jwtMaker jwt.Maker, log *slog.Logger) *Service {
	return &Service{
		users:    users,
		jwtMaker: jwtMaker,
		log:      log,
	}
}

// Login проверяет пароль пользователя и выпускает токен с его логином и ролью.
func (s *Service) Login(ctx context.Context, login, rawPassword string) (string, error) {
	exists, err := s.users.LoginExists(ctx, login)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", ErrUserNotFoundOrDeleted
	}
	active, err := s.users.IsActive(ctx, login)
	if err != nil {
		return "", err
	}
	if !active {
		return "", ErrUserNotFoundOrDeleted
	}

	user, err := s.users.GetByLogin(ctx, login)
	if err != nil {
		return "", err
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", ErrWrongPassword
	}

	token, err := s.jwtMaker.GenerateToken(user.Login, user.Admin)
	if err != nil {
		return "", err
	}
	return token, nil
}

// Register создаёт нового пользователя от имени администратора actorLogin.
func (s *Service) Register(ctx context.Context, actorLogin string, req models.Registration) (*models.CreatedUser, error) {
	if !validate.LoginIsCorrect(req.Login) {
		return nil, ErrBadLogin
	}
	if !validate.PasswordIsCorrect(req.Password) {
		return nil, ErrBadPassword
	}
	if !validate.NameIsCorrect(req.Name) {
		return nil, ErrBadName
	}
	if !validate.GenderIsCorrect(req.Gender) {
		return nil, ErrBadGender
	}
	birthday, err := parseBirthday(req.Birthday)
	if err != nil {
		return nil, err
	}

	exists, err := s.users.LoginExists(ctx, req.Login)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrLoginTaken
	}

	hash, err := password.GetHash(req.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Guid:         uuid.New(),
		Login:        req.Login,
		PasswordHash: hash,
		Name:         req.Name,
		Gender:       req.Gender,
		Birthday:     birthday,
		Admin:        req.Admin,
		CreatedOn:    time.Now().UTC(),
		CreatedBy:    actorLogin,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	s.log.Info("created new user",
		slog.String("login", user.Login), slog.String("created_by", actorLogin))

	created, err := s.users.GetByLogin(ctx, req.Login)
	if err != nil {
		return nil, err
	}
	return created.Created(), nil
}

// UpdateUser изменяет имя, пол или дату рождения пользователя.
//
// Менять данные может администратор либо сам пользователь.
// Поля modified_on/modified_by проставляются, только если хотя бы одно
// из переданных полей действительно изменилось.
func (s *Service) UpdateUser(ctx context.Context, actor Actor, req models.UpdateUser) (*models.UserWithoutPassword, error) {
	if err := s.checkActorAndSubject(ctx, actor, req.Login); err != nil {
		return nil, err
	}

	if req.Name != "" && !validate.NameIsCorrect(req.Name) {
		return nil, ErrBadName
	}
	if req.Gender != nil && !validate.GenderIsCorrect(*req.Gender) {
		return nil, ErrBadGender
	}
	birthday, err := parseBirthday(req.Birthday)
	if err != nil {
		return nil, err
	}

	if !actor.IsAdmin && actor.Login != req.Login {
		return nil, ErrForbidden
	}

	subject, err := s.users.GetByLogin(ctx, req.Login)
	if err != nil {
		return nil, err
	}

	var name *string
	if req.Name != "" && req.Name != subject.Name {
		name = &req.Name
	}
	var gender *int
	if req.Gender != nil && *req.Gender != subject.Gender {
		gender = req.Gender
	}
	if birthday != nil && subject.Birthday != nil && birthday.Equal(*subject.Birthday) {
		birthday = nil
	}

	if name == nil && gender == nil && birthday == nil {
		return subject.WithoutPassword(), nil
	}

	count, err := s.users.Update(ctx, req.Login, name, gender, birthday, actor.Login)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrNothingDone
	}
	s.log.Info("updated user", slog.String("login", req.Login), slog.String("by", actor.Login))

	updated, err := s.users.GetByLogin(ctx, req.Login)
	if err != nil {
		return nil, err
	}
	return updated.WithoutPassword(), nil
}

// ChangeLogin заменяет логин пользователя на новый уникальный.
//
// Если пользователь переименовал сам себя, в ответ включается свежий токен
// с новым логином; токен, выданный администратором переименованному
// пользователю, устаревает до следующего входа.
func (s *Service) ChangeLogin(ctx context.Context, actor Actor, oldLogin, newLogin string) (*UpdatedLogin, error) {
	if oldLogin == newLogin {
		// Совпадающие логины — успех без каких-либо проверок и изменений.
		return &UpdatedLogin{}, nil
	}

	if err := s.checkActorAndSubject(ctx, actor, oldLogin); err != nil {
		return nil, err
	}

	if !validate.LoginIsCorrect(newLogin) {
		return nil, ErrBadLogin
	}
	taken, err := s.users.LoginExists(ctx, newLogin)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrLoginTaken
	}

	if !actor.IsAdmin && actor.Login != oldLogin {
		return nil, ErrForbidden
	}

	modifiedBy := actor.Login
	if actor.Login == oldLogin {
		modifiedBy = newLogin
	}
	count, err := s.users.ChangeLogin(ctx, oldLogin, newLogin, modifiedBy)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrNothingDone
	}
	s.log.Info("changed user login",
		slog.String("old", oldLogin), slog.String("new", newLogin), slog.String("by", actor.Login))

	updated, err := s.users.GetByLogin(ctx, newLogin)
	if err != nil {
		return nil, err
	}

	result := &UpdatedLogin{Metadata: updated.WithoutPassword()}
	if actor.Login == oldLogin {
		token, err := s.jwtMaker.GenerateToken(updated.Login, updated.Admin)
		if err != nil {
			return nil, err
		}
		result.Token = token
	}
	return result, nil
}

// ChangePassword заменяет пароль пользователя.
// Пароль и его подтверждение должны совпадать и проходить проверку формата.
func (s *Service) ChangePassword(ctx context.Context, actor Actor, login, rawPassword, confirmPassword string) error {
	if err := s.checkActorAndSubject(ctx, actor, login); err != nil {
		return err
	}

	if !validate.PasswordIsCorrect(rawPassword) {
		return ErrBadPassword
	}
	if !validate.PasswordIsCorrect(confirmPassword) {
		return ErrBadPassword
	}
	if rawPassword != confirmPassword {
		return ErrPasswordsMismatch
	}

	if !actor.IsAdmin && actor.Login != login {
		return ErrForbidden
	}

	hash, err := password.GetHash(rawPassword)
	if err != nil {
		return err
	}
	count, err := s.users.ChangePassword(ctx, login, hash, actor.Login)
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrNothingDone
	}
	s.log.Info("changed user password", slog.String("login", login), slog.String("by", actor.Login))
	return nil
}

// ActiveUsers возвращает всех активных пользователей,
// отсортированных по дате создания.
func (s *Service) ActiveUsers(ctx context.Context) ([]*models.UserWithoutPassword, error) {
	users, err := s.users.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*models.UserWithoutPassword, 0, len(users))
	for _, u := range users {
		result = append(result, u.WithoutPassword())
	}
	return result, nil
}

// ShortData возвращает краткие данные пользователя по логину.
func (s *Service) ShortData(ctx context.Context, login string) (*models.ShortUser, error) {
	if !validate.LoginIsCorrect(login) {
		return nil, ErrBadLogin
	}
	exists, err := s.users.LoginExists(ctx, login)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}
	user, err := s.users.GetByLogin(ctx, login)
	if err != nil {
		return nil, err
	}
	return user.Short(), nil
}

// Profile возвращает профиль пользователя без пароля.
//
// Доступен только самому активному пользователю: логин из запроса должен
// совпадать с логином из токена и повторно подтверждаться паролем.
func (s *Service) Profile(ctx context.Context, actorLogin, login, rawPassword string) (*models.UserWithoutPassword, error) {
	if actorLogin != login {
		return nil, ErrLoginMismatch
	}

	exists, err := s.users.LoginExists(ctx, login)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFoundOrDeleted
	}
	active, err := s.users.IsActive(ctx, login)
	if err != nil {
		return nil, err
	}
	if !active {
		return nil, ErrUserNotFoundOrDeleted
	}

	user, err := s.users.GetByLogin(ctx, actorLogin)
	if err != nil {
		return nil, err
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return nil, ErrWrongPassword
	}
	return user.WithoutPassword(), nil
}

// UsersOverAge возвращает пользователей старше заданного возраста.
func (s *Service) UsersOverAge(ctx context.Context, age int) ([]*models.UserWithoutPassword, error) {
	users, err := s.users.ListOverAge(ctx, age)
	if err != nil {
		return nil, err
	}
	result := make([]*models.UserWithoutPassword, 0, len(users))
	for _, u := range users {
		result = append(result, u.WithoutPassword())
	}
	return result, nil
}

// Delete удаляет пользователя: мягко (проставляя revoked_on/revoked_by)
// или полностью (удаляя строку). Возвращает текст подтверждения.
func (s *Service) Delete(ctx context.Context, actorLogin, login string, soft bool) (string, error) {
	exists, err := s.users.LoginExists(ctx, login)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", ErrUserNotFound
	}

	if soft {
		active, err := s.users.IsActive(ctx, login)
		if err != nil {
			return "", err
		}
		if !active {
			return "deleting user is not active", nil
		}
		count, err := s.users.SoftDelete(ctx, login, actorLogin)
		if err != nil {
			return "", err
		}
		if count == 0 {
			return "", ErrNothingDone
		}
		s.log.Info("soft deleted user", slog.String("login", login), slog.String("by", actorLogin))
		return fmt.Sprintf("the soft removal of user %q was successful", login), nil
	}

	count, err := s.users.HardDelete(ctx, login)
	if err != nil {
		return "", err
	}
	if count == 0 {
		return "", ErrNothingDone
	}
	s.log.Info("hard deleted user", slog.String("login", login), slog.String("by", actorLogin))
	return fmt.Sprintf("the hard removal of user %q was successful", login), nil
}

// Recover восстанавливает пользователя из мягкого удаления:
// очищает revoked_on/revoked_by и проставляет modified_on/modified_by.
func (s *Service) Recover(ctx context.Context, actorLogin, login string) (string, error) {
	if !validate.LoginIsCorrect(login) {
		return "", ErrBadLogin
	}
	exists, err := s.users.LoginExists(ctx, login)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", ErrUserNotFound
	}
	active, err := s.users.IsActive(ctx, login)
	if err != nil {
		return "", err
	}
	if active {
		return "user is not soft deleted", nil
	}

	count, err := s.users.Recover(ctx, login, actorLogin)
	if err != nil {
		return "", err
	}
	if count == 0 {
		return "", ErrNothingDone
	}
	s.log.Info("recovered user", slog.String("login", login), slog.String("by", actorLogin))
	return "the user's recovery was successful", nil
}

// EnsureAdmin создаёт администратора из конфигурации, если в базе
// ещё нет ни одного. Выполняется один раз при старте до приёма трафика.
func (s *Service) EnsureAdmin(ctx context.Context, admin config.BootstrapAdmin) error {
	const op = "account.EnsureAdmin"
	exists, err := s.users.AdminExists(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if exists {
		return nil
	}

	hash, err := password.GetHash(admin.AdminPassword)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	user := models.User{
		Guid:         uuid.New(),
		Login:        admin.AdminLogin,
		PasswordHash: hash,
		Name:         admin.AdminName,
		Gender:       admin.AdminGender,
		Admin:        true,
		CreatedOn:    time.Now().UTC(),
		CreatedBy:    BootstrapCreatedBy,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("created bootstrap administrator", slog.String("login", admin.AdminLogin))
	return nil
}

// checkActorAndSubject выполняет общую для мутаций последовательность проверок:
// активность действующего пользователя, существование субъекта и, если
// администратор действует над другим пользователем, активность субъекта.
func (s *Service) checkActorAndSubject(ctx context.Context, actor Actor, subjectLogin string) error {
	actorActive, err := s.users.IsActive(ctx, actor.Login)
	if err != nil || !actorActive {
		return ErrActorNotActive
	}

	exists, err := s.users.LoginExists(ctx, subjectLogin)
	if err != nil {
		return err
	}
	if !exists {
		return ErrUserNotFound
	}

	if actor.IsAdmin && actor.Login != subjectLogin {
		active, err := s.users.IsActive(ctx, subjectLogin)
		if err != nil {
			return err
		}
		if !active {
			return ErrUserNotActive
		}
	}
	return nil
}

func parseBirthday(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(birthdayLayout, raw)
	if err != nil {
		return nil, ErrBadBirthday
	}
	return &t, nil
}

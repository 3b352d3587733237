package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/magabrotheeeer/account-service/internal/models"
)

const userColumns = `guid, login, password_hash, name, gender, birthday, is_admin,
			      created_on, created_by, modified_on, modified_by, revoked_on, revoked_by`

func scanUser(row interface{ Scan(...any) error }) (*models.User, error) {
	u := &models.User{}
	var birthday, modifiedOn, revokedOn sql.NullTime
	if err := row.Scan(&u.Guid, &u.Login, &u.PasswordHash, &u.Name, &u.Gender,
		&birthday, &u.Admin, &u.CreatedOn, &u.CreatedBy,
		&modifiedOn, &u.ModifiedBy, &revokedOn, &u.RevokedBy); err != nil {
		return nil, err
	}
	if birthday.Valid {
		u.Birthday = &birthday.Time
	}
	if modifiedOn.Valid {
		u.ModifiedOn = &modifiedOn.Time
	}
	if revokedOn.Valid {
		u.RevokedOn = &revokedOn.Time
	}
	return u, nil
}

// LoginExists сообщает, существует ли пользователь с данным логином,
// включая пользователей в мягком удалении.
func (s *Storage) LoginExists(ctx context.Context, login string) (bool, error) {
	const op = "storage.LoginExists"
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE login = $1)`
	if err := s.DB.QueryRowContext(ctx, query, login).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}

// IsActive сообщает, активен ли пользователь (revoked_on IS NULL).
// Возвращает ошибку, если логин отсутствует: вызывающий обязан
// проверить существование заранее.
func (s *Storage) IsActive(ctx context.Context, login string) (bool, error) {
	const op = "storage.IsActive"
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var active bool
	query := `SELECT revoked_on IS NULL FROM users WHERE login = $1`
	if err := s.DB.QueryRowContext(ctx, query, login).Scan(&active); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return active, nil
}

// GetByLogin возвращает полную запись пользователя по логину.
func (s *Storage) GetByLogin(ctx context.Context, login string) (*models.User, error) {
	const op = "storage.GetByLogin"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE login = $1`
	u, err := scanUser(s.DB.QueryRowContext(ctx, query, login))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// Create сохраняет нового пользователя в базу данных.
func (s *Storage) Create(ctx context.Context, user models.User) error {
	const op = "storage.Create"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO users (guid, login, password_hash, name, gender, birthday,
			      is_admin, created_on, created_by)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	if _, err := s.DB.ExecContext(ctx, query,
		user.Guid, user.Login, user.PasswordHash, user.Name, user.Gender,
		user.Birthday, user.Admin, user.CreatedOn, user.CreatedBy); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// AdminExists сообщает, есть ли в таблице хотя бы один администратор.
func (s *Storage) AdminExists(ctx context.Context) (bool, error) {
	const op = "storage.AdminExists"
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE is_admin = TRUE)`
	if err := s.DB.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}

// ListActive возвращает всех активных пользователей,
// отсортированных по дате создания по возрастанию.
func (s *Storage) ListActive(ctx context.Context) ([]*models.User, error) {
	const op = "storage.ListActive"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + userColumns + `
			  FROM users
			  WHERE revoked_on IS NULL
			  ORDER BY created_on ASC`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()
	var result []*models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListOverAge возвращает пользователей старше заданного возраста,
// отсортированных по дате рождения по возрастанию.
//
// Возраст считается как разница годов без учёта дня и месяца;
// пользователи без даты рождения в выборку не попадают.
func (s *Storage) ListOverAge(ctx context.Context, age int) ([]*models.User, error) {
	const op = "storage.ListOverAge"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + userColumns + `
			  FROM users
			  WHERE birthday IS NOT NULL
			    AND EXTRACT(YEAR FROM CURRENT_DATE) - EXTRACT(YEAR FROM birthday) > $1
			  ORDER BY birthday ASC`
	rows, err := s.DB.QueryContext(ctx, query, age)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()
	var result []*models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// Update применяет переданные поля профиля и проставляет modified_on/modified_by.
// Поля со значением nil не изменяются. Возвращает количество обновлённых строк.
func (s *Storage) Update(ctx context.Context, login string, name *string, gender *int,
	birthday *time.Time, actorLogin string) (int64, error) {
	const op = "storage.Update"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users
			  SET name = COALESCE($2, name),
			      gender = COALESCE($3, gender),
			      birthday = COALESCE($4, birthday),
			      modified_on = $5,
			      modified_by = $6
			  WHERE login = $1`
	res, err := s.DB.ExecContext(ctx, query, login, name, gender, birthday,
		time.Now().UTC(), actorLogin)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// ChangeLogin заменяет логин пользователя и проставляет modified_on/modified_by.
// Значение modifiedBy вычисляет вызывающий: новый логин при переименовании
// самого себя, иначе логин действующего пользователя.
func (s *Storage) ChangeLogin(ctx context.Context, oldLogin, newLogin, modifiedBy string) (int64, error) {
	const op = "storage.ChangeLogin"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users
			  SET login = $2,
			      modified_on = $3,
			      modified_by = $4
			  WHERE login = $1`
	res, err := s.DB.ExecContext(ctx, query, oldLogin, newLogin, time.Now().UTC(), modifiedBy)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// ChangePassword заменяет хэш пароля и проставляет modified_on/modified_by.
func (s *Storage) ChangePassword(ctx context.Context, login, passwordHash, actorLogin string) (int64, error) {
	const op = "storage.ChangePassword"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users
			  SET password_hash = $2,
			      modified_on = $3,
			      modified_by = $4
			  WHERE login = $1`
	res, err := s.DB.ExecContext(ctx, query, login, passwordHash, time.Now().UTC(), actorLogin)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// SoftDelete помечает пользователя удалённым, проставляя revoked_on/revoked_by.
func (s *Storage) SoftDelete(ctx context.Context, login, actorLogin string) (int64, error) {
	const op = "storage.SoftDelete"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users
			  SET revoked_on = $2,
			      revoked_by = $3
			  WHERE login = $1 AND revoked_on IS NULL`
	res, err := s.DB.ExecContext(ctx, query, login, time.Now().UTC(), actorLogin)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// HardDelete полностью удаляет строку пользователя.
func (s *Storage) HardDelete(ctx context.Context, login string) (int64, error) {
	const op = "storage.HardDelete"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	res, err := s.DB.ExecContext(ctx, `DELETE FROM users WHERE login = $1`, login)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// Recover снимает отметку мягкого удаления: очищает revoked_on/revoked_by
// и проставляет modified_on/modified_by.
func (s *Storage) Recover(ctx context.Context, login, actorLogin string) (int64, error) {
	const op = "storage.Recover"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users
			  SET revoked_on = NULL,
			      revoked_by = '',
			      modified_on = $2,
			      modified_by = $3
			  WHERE login = $1`
	res, err := s.DB.ExecContext(ctx, query, login, time.Now().UTC(), actorLogin)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

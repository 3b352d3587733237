// Package models содержит доменную модель пользователя системы
// и проекции, используемые в бизнес-логике и HTTP-ответах.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Коды пола пользователя.
const (
	GenderFemale  = 0
	GenderMale    = 1
	GenderUnknown = 2
)

// User представляет учётную запись пользователя.
//
// Поля ModifiedOn и RevokedOn равны nil, если событие никогда не происходило.
// Активным считается пользователь с RevokedOn == nil.
type User struct {
	Guid         uuid.UUID  // Уникальный идентификатор, выдаётся при создании
	Login        string     // Логин, уникален среди всех пользователей
	PasswordHash string     // Хэш пароля пользователя
	Name         string     // Имя пользователя
	Gender       int        // Пол: 0 - женский, 1 - мужской, 2 - неизвестно
	Birthday     *time.Time // Дата рождения, может отсутствовать
	Admin        bool       // Признак администратора, задаётся при создании
	CreatedOn    time.Time
	CreatedBy    string
	ModifiedOn   *time.Time
	ModifiedBy   string
	RevokedOn    *time.Time
	RevokedBy    string
}

// IsActive сообщает, активен ли пользователь (не находится в мягком удалении).
func (u *User) IsActive() bool {
	return u.RevokedOn == nil
}

// UserWithoutPassword — проекция пользователя без хэша пароля,
// возвращаемая наружу вместо полной модели.
type UserWithoutPassword struct {
	Guid       uuid.UUID  `json:"guid"`
	Login      string     `json:"login"`
	Name       string     `json:"name"`
	Gender     int        `json:"gender"`
	Birthday   *time.Time `json:"birthday,omitempty"`
	Admin      bool       `json:"admin"`
	CreatedOn  time.Time  `json:"created_on"`
	CreatedBy  string     `json:"created_by"`
	ModifiedOn *time.Time `json:"modified_on,omitempty"`
	ModifiedBy string     `json:"modified_by,omitempty"`
	RevokedOn  *time.Time `json:"revoked_on,omitempty"`
	RevokedBy  string     `json:"revoked_by,omitempty"`
}

// ShortUser — краткие данные пользователя: имя, пол, дата рождения и статус.
type ShortUser struct {
	Name     string     `json:"name"`
	Gender   int        `json:"gender"`
	Birthday *time.Time `json:"birthday,omitempty"`
	Active   bool       `json:"active"`
}

// CreatedUser — данные только что созданного пользователя.
type CreatedUser struct {
	Guid      uuid.UUID  `json:"guid"`
	Login     string     `json:"login"`
	Name      string     `json:"name"`
	Gender    int        `json:"gender"`
	Birthday  *time.Time `json:"birthday,omitempty"`
	Admin     bool       `json:"admin"`
	CreatedOn time.Time  `json:"created_on"`
	CreatedBy string     `json:"created_by"`
}

// WithoutPassword возвращает проекцию пользователя без хэша пароля.
func (u *User) WithoutPassword() *UserWithoutPassword {
	return &UserWithoutPassword{
		Guid:       u.Guid,
		Login:      u.Login,
		Name:       u.Name,
		Gender:     u.Gender,
		Birthday:   u.Birthday,
		Admin:      u.Admin,
		CreatedOn:  u.CreatedOn,
		CreatedBy:  u.CreatedBy,
		ModifiedOn: u.ModifiedOn,
		ModifiedBy: u.ModifiedBy,
		RevokedOn:  u.RevokedOn,
		RevokedBy:  u.RevokedBy,
	}
}

// Short возвращает краткую проекцию пользователя.
func (u *User) Short() *ShortUser {
	return &ShortUser{
		Name:     u.Name,
		Gender:   u.Gender,
		Birthday: u.Birthday,
		Active:   u.IsActive(),
	}
}

// Created возвращает проекцию только что созданного пользователя.
func (u *User) Created() *CreatedUser {
	return &CreatedUser{
		Guid:      u.Guid,
		Login:     u.Login,
		Name:      u.Name,
		Gender:    u.Gender,
		Birthday:  u.Birthday,
		Admin:     u.Admin,
		CreatedOn: u.CreatedOn,
		CreatedBy: u.CreatedBy,
	}
}

// Registration используется для приёма данных регистрации из JSON-запроса.
// Дата рождения приходит строкой в формате 2006-01-02, парсится вручную.
type Registration struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Gender   int    `json:"gender"`
	Birthday string `json:"birthday,omitempty"`
	Admin    bool   `json:"admin"`
}

// UpdateUser используется для приёма данных частичного обновления профиля.
// Пустые и nil поля не применяются.
type UpdateUser struct {
	Login    string `json:"login" validate:"required"`
	Name     string `json:"name,omitempty"`
	Gender   *int   `json:"gender,omitempty"`
	Birthday string `json:"birthday,omitempty"`
}

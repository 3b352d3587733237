package account

import "errors"

// Ошибки доменного уровня. Обработчики превращают их в HTTP-ответы:
// ErrForbidden — в 403, остальные — в 400 с текстом ошибки.
var (
	ErrUserNotFound          = errors.New("user not found")
	ErrUserNotFoundOrDeleted = errors.New("user not found or deleted")
	ErrWrongPassword         = errors.New("wrong password")
	ErrActorNotActive        = errors.New("logged in user is not active")
	ErrUserNotActive         = errors.New("user is not active")
	ErrLoginTaken            = errors.New("the user with this login already exists")
	ErrPasswordsMismatch     = errors.New("passwords don't match")
	ErrLoginMismatch         = errors.New("the login of authorization and the provided login do not match")
	ErrForbidden             = errors.New("forbidden")
	ErrNothingDone           = errors.New("nothing was changed")

	ErrBadLogin    = errors.New("login is not correct: only latin letters and digits are allowed")
	ErrBadPassword = errors.New("password is not correct: only latin letters and digits are allowed")
	ErrBadName     = errors.New("name is not correct: only latin and russian letters are allowed")
	ErrBadGender   = errors.New("gender is not correct: 0 - female, 1 - male, 2 - unknown")
	ErrBadBirthday = errors.New("birthday is not correct: expected format 2006-01-02")
)

var domainErrors = []error{
	ErrUserNotFound, ErrUserNotFoundOrDeleted, ErrWrongPassword,
	ErrActorNotActive, ErrUserNotActive, ErrLoginTaken,
	ErrPasswordsMismatch, ErrLoginMismatch, ErrNothingDone,
	ErrBadLogin, ErrBadPassword, ErrBadName, ErrBadGender, ErrBadBirthday,
}

// IsDomainError сообщает, является ли ошибка доменной,
// то есть пригодной для показа клиенту в теле ответа.
func IsDomainError(err error) bool {
	for _, domain := range domainErrors {
		if errors.Is(err, domain) {
			return true
		}
	}
	return false
}

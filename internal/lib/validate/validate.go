// Package validate содержит чистые валидаторы полей учётной записи.
//
// Валидаторы не выполняют I/O и применяются до любых обращений к хранилищу.
package validate

import "regexp"

var (
	loginRe = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	nameRe  = regexp.MustCompile(`^[a-zA-Zа-яА-Я]+$`)
)

// LoginIsCorrect проверяет, что логин состоит только из латинских букв и цифр.
func LoginIsCorrect(login string) bool {
	return loginRe.MatchString(login)
}

// PasswordIsCorrect проверяет, что пароль состоит только из латинских букв и цифр.
func PasswordIsCorrect(password string) bool {
	return loginRe.MatchString(password)
}

// NameIsCorrect проверяет, что имя состоит только из латинских или русских букв.
func NameIsCorrect(name string) bool {
	return nameRe.MatchString(name)
}

// GenderIsCorrect проверяет код пола: 0 - женский, 1 - мужской, 2 - неизвестно.
func GenderIsCorrect(gender int) bool {
	return gender >= 0 && gender <= 2
}

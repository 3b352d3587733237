// Package sl — небольшие помощники для структурированного логирования
// через slog: готовые атрибуты вместо ручной сборки полей в каждом вызове.
package sl

import "log/slog"

// Err оборачивает ошибку в атрибут с ключом "error", чтобы все записи
// об ошибках в логе имели одинаковое поле:
//
//	log.Error("create user failed", sl.Err(err))
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

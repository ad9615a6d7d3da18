// Package sl атрибуты slog, общие для всех пакетов приложения.
package sl

import "log/slog"

// Err атрибут "error" с текстом ошибки. Для nil пишет "<nil>", а не паникует.
//
//	log.Error("failed to fetch services", sl.Err(err))
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.String("error", err.Error())
}

// Op атрибут с именем операции, тот же ключ, что и у const op в обработчиках.
func Op(op string) slog.Attr {
	return slog.String("op", op)
}

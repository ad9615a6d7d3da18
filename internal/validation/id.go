// Package validation превращает недоверенный ввод HTTP-запроса в проверенные
// значения: идентификаторы, тела запросов, параметры пагинации и сортировки.
//
// Все функции чистые и не хранят состояние между вызовами.
package validation

import (
	"strconv"
	"strings"

	"github.com/jayden648/shoesclean/internal/lib/apperr"
)

// ValidateID разбирает положительный целочисленный идентификатор. Диапазон
// совпадает с BIGSERIAL в схеме, значения вне int64 считаются неверным форматом.
func ValidateID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return 0, apperr.ErrInvalidIdentifier
	}
	return id, nil
}

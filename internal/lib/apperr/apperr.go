// Package apperr описывает виды ошибок приложения и их отображение на HTTP-статусы.
//
// Ошибки валидации отдаются клиенту как 400, отсутствие записи как 404,
// сбои хранилища как 500. Текст ответа берётся только из поля Message,
// обёрнутая внутренняя ошибка в ответ не попадает.
package apperr

import (
	"errors"
	"net/http"
)

// Kind вид ошибки.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindInvalidIdentifier
	KindInvalidPayload
	KindInvalidPagination
	KindInvalidSortColumn
	KindInvalidSortOrder
	KindNotFound
	KindStorageFailure
)

func (k Kind) String() string {
	switch k {
	case KindInvalidIdentifier:
		return "InvalidIdentifier"
	case KindInvalidPayload:
		return "InvalidPayload"
	case KindInvalidPagination:
		return "InvalidPagination"
	case KindInvalidSortColumn:
		return "InvalidSortColumn"
	case KindInvalidSortOrder:
		return "InvalidSortOrder"
	case KindNotFound:
		return "NotFound"
	case KindStorageFailure:
		return "StorageFailure"
	default:
		return "Unknown"
	}
}

// Error ошибка приложения с видом и сообщением для клиента.
type Error struct {
	Kind    Kind
	Field   string // имя поля для KindInvalidPayload
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is сравнивает ошибки по виду, а для ошибок с полем ещё и по полю цели.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Field == "" || t.Field == e.Field)
}

var (
	ErrInvalidIdentifier = &Error{Kind: KindInvalidIdentifier, Message: "Invalid ID format"}
	ErrInvalidPayload    = &Error{Kind: KindInvalidPayload, Message: "Invalid payload"}
	ErrInvalidPagination = &Error{Kind: KindInvalidPagination, Message: "Invalid pagination parameters"}
	ErrInvalidSortColumn = &Error{Kind: KindInvalidSortColumn, Message: "Invalid sort column"}
	ErrInvalidSortOrder  = &Error{Kind: KindInvalidSortOrder, Message: "Invalid sort order"}
	ErrNotFound          = &Error{Kind: KindNotFound, Message: "Not found"}
	ErrStorageFailure    = &Error{Kind: KindStorageFailure, Message: "Storage failure"}
)

// InvalidPayload ошибка валидации конкретного поля тела запроса.
func InvalidPayload(field, msg string) *Error {
	return &Error{Kind: KindInvalidPayload, Field: field, Message: msg}
}

// NotFound ошибка отсутствующей записи с готовым сообщением, например "Service not found".
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// Storage оборачивает ошибку драйвера базы данных.
func Storage(err error) *Error {
	return &Error{Kind: KindStorageFailure, Message: ErrStorageFailure.Message, Err: err}
}

// KindOf возвращает вид первой ошибки приложения в цепочке.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// HTTPStatus отображает ошибку на HTTP-статус.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindInvalidIdentifier, KindInvalidPayload, KindInvalidPagination,
		KindInvalidSortColumn, KindInvalidSortOrder:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Message возвращает текст для клиента. Для сбоев хранилища и неизвестных
// ошибок возвращается fallback.
func Message(err error, fallback string) string {
	var e *Error
	if !errors.As(err, &e) || e.Kind == KindStorageFailure || e.Kind == KindUnknown {
		return fallback
	}
	return e.Message
}

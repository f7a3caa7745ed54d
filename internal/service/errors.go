package service

import "errors"

// ErrInvalidJSON: провайдер вернул 2xx с телом, которое не является JSON
var ErrInvalidJSON = errors.New("response is not valid JSON")

// ValidationError: ошибка входных данных, сообщение отдаётся клиенту (400).
// Текущий путь извлечения её не порождает.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

package reply

import "errors"

// ErrMalformedPayment is returned when a payment confirmation block carries
// fewer than two usable lines (date line + amount line).
var ErrMalformedPayment = errors.New("нужно две строки: дата/сумма")

// ErrUnknownTemplate is returned when the requested display name is not in
// the template catalog.
var ErrUnknownTemplate = errors.New("выбранный шаблон не найден")

// ValidationError reports an empty required input. It is returned before any
// parsing runs; Message is the user-facing text.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

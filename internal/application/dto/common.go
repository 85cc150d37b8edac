package dto

import "time"

// TimeLayout formato de fecha/hora que ven las páginas y las respuestas JSON.
const TimeLayout = "2006-01-02 15:04:05"

// FormatTime formatea un instante con TimeLayout.
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

// ActionError respuesta de fallo de los endpoints asíncronos: {"success":false,"error":...}.
type ActionError struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Fail construye un ActionError.
func Fail(msg string) ActionError {
	return ActionError{Success: false, Error: msg}
}

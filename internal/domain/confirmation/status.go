package confirmation

import "strings"

// AttendanceStatus values are the exact labels the organizers' sheet and the
// frontend already use.
type AttendanceStatus string

const (
	StatusYes     AttendanceStatus = "Confirmado - SÍ"
	StatusNo      AttendanceStatus = "Confirmado - NO"
	StatusPending AttendanceStatus = "Pendiente"
)

// The invitation UI injects these exact phrases into the free-text message
// when the guest taps a button. Matching is deliberately substring-based and
// case/accent-sensitive: a hand-typed "si asistire" stays Pendiente. If the
// frontend ever sends a structured flag, only this function changes.
const (
	markerYes = "Sí, asistiré"
	markerNo  = "No podré asistir"
)

// DeriveStatus resolves the attendance status from the guest's message.
func DeriveStatus(message string) AttendanceStatus {
	switch {
	case strings.Contains(message, markerYes):
		return StatusYes
	case strings.Contains(message, markerNo):
		return StatusNo
	default:
		return StatusPending
	}
}

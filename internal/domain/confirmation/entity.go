package confirmation

import (
	"time"

	"github.com/google/uuid"
)

// Confirmation is one guest's attendance submission. Records are append-only:
// a guest who changes their mind submits again.
type Confirmation struct {
	ID          uuid.UUID        `db:"id" json:"id"`
	Name        string           `db:"name" json:"nombre"`
	Phone       string           `db:"phone" json:"telefono"`
	Companions  int              `db:"companions" json:"acompanantes"`
	Message     string           `db:"message" json:"mensaje"`
	Status      AttendanceStatus `db:"status" json:"asistencia"`
	ConfirmedAt time.Time        `db:"confirmed_at" json:"fechaConfirmacion"`

	// Seq orders listings by recency, insertion order breaking ties.
	Seq int64 `db:"seq" json:"-"`
}

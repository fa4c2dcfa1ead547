package photo

import (
	"time"

	"github.com/google/uuid"
)

// Photo is one shared-wall upload, stored self-contained: the image travels
// inside the row as a data URI so no object storage is involved.
type Photo struct {
	ID          uuid.UUID `db:"id" json:"id"`
	FileName    string    `db:"file_name" json:"fileName"`
	UserName    string    `db:"user_name" json:"userName"`
	Description string    `db:"description" json:"descripcion"`
	ImageData   string    `db:"image_data" json:"-"` // data URI, opaque to everything but the frontend
	MimeType    string    `db:"mime_type" json:"mimeType"`
	SizeBytes   int64     `db:"size_bytes" json:"size"`
	UploadedAt  time.Time `db:"uploaded_at" json:"uploadDate"`

	// Seq is assigned by the database on insert and orders the wall by
	// recency with insertion order breaking timestamp ties.
	Seq int64 `db:"seq" json:"-"`
}

package entity

import "time"

// Note comentario libre sobre un contacto. Solo inserción: sin edición ni borrado.
type Note struct {
	ID        int64
	ContactID int64
	Comment   string
	CreatedBy int64
	CreatedAt time.Time
}

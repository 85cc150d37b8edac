package repository

import (
	"context"
	"time"

	"github.com/jhoicas/dolphin-crm/internal/domain/entity"
)

// NoteRow proyección de una nota con el nombre de su autor.
type NoteRow struct {
	ID          int64
	Comment     string
	CreatedAt   time.Time
	AuthorFirst string
	AuthorLast  string
}

// NoteRepository define el puerto de persistencia para Note (solo inserción y lectura).
type NoteRepository interface {
	// Create persiste la nota y devuelve su id.
	Create(ctx context.Context, note *entity.Note) (int64, error)
	// ListByContact devuelve las notas del contacto, más recientes primero
	// (created_at DESC con id DESC como desempate).
	ListByContact(ctx context.Context, contactID int64) ([]*NoteRow, error)
}

package repository

import (
	"context"
	"time"

	"github.com/jhoicas/dolphin-crm/internal/domain/entity"
)

// ContactFilter restringe el listado de contactos. Campos en cero = sin filtro.
type ContactFilter struct {
	Type       string // "Sales Lead" | "Support"
	AssignedTo *int64 // id del usuario asignado
}

// ContactRow proyección del listado: contacto + nombre del asignado (nullable).
type ContactRow struct {
	ID            int64
	Title         string
	FirstName     string
	LastName      string
	Email         string
	Company       string
	Type          string
	AssigneeFirst *string
	AssigneeLast  *string
}

// ContactDetail proyección de la vista de detalle: contacto + nombres de creador y asignado.
type ContactDetail struct {
	Contact       entity.Contact
	CreatorFirst  *string
	CreatorLast   *string
	AssigneeFirst *string
	AssigneeLast  *string
}

// AssignResult campos mutados por una asignación, devueltos por la misma sentencia.
type AssignResult struct {
	UpdatedAt     time.Time
	AssigneeFirst string
	AssigneeLast  string
}

// TypeResult campos mutados por un cambio de tipo.
type TypeResult struct {
	Type      string
	UpdatedAt time.Time
}

// ContactRepository define el puerto de persistencia para Contact.
// Las mutaciones devuelven la proyección canónica escrita por la propia sentencia
// (UPDATE ... RETURNING), no una relectura posterior. Sin fila -> (nil, nil).
type ContactRepository interface {
	// Create persiste el contacto y devuelve su id.
	Create(ctx context.Context, contact *entity.Contact) (int64, error)
	// List devuelve los contactos que cumplen el filtro, ordenados por lastname, firstname.
	List(ctx context.Context, filter ContactFilter) ([]*ContactRow, error)
	// GetDetail devuelve el contacto con nombres de creador y asignado.
	GetDetail(ctx context.Context, id int64) (*ContactDetail, error)
	// Assign fija assigned_to y updated_at en una sola sentencia.
	Assign(ctx context.Context, contactID, userID int64, now time.Time) (*AssignResult, error)
	// SetType fija type y updated_at en una sola sentencia.
	SetType(ctx context.Context, contactID int64, newType string, now time.Time) (*TypeResult, error)
	// Touch re-estampa updated_at (tras insertar una nota).
	Touch(ctx context.Context, contactID int64, now time.Time) error
}

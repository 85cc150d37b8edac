package repository

import (
	"context"

	"github.com/jhoicas/dolphin-crm/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los métodos Get* devuelven (nil, nil) cuando no hay fila.
type UserRepository interface {
	// Create persiste el usuario y devuelve su id. Email duplicado -> domain.ErrEmailAlreadyExists.
	Create(ctx context.Context, user *entity.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// List devuelve todos los usuarios ordenados por created_at descendente.
	List(ctx context.Context) ([]*entity.User, error)
	// ListForAssignment devuelve todos los usuarios ordenados por nombre,
	// para el dropdown "Assigned To" del formulario de contacto.
	ListForAssignment(ctx context.Context) ([]*entity.User, error)
}

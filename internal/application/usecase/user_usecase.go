package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/dolphin-crm/internal/application/dto"
	"github.com/jhoicas/dolphin-crm/internal/domain"
	"github.com/jhoicas/dolphin-crm/internal/domain/entity"
	"github.com/jhoicas/dolphin-crm/internal/domain/repository"
	"github.com/jhoicas/dolphin-crm/pkg/clock"
	"github.com/jhoicas/dolphin-crm/pkg/password"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase casos de uso del directorio de usuarios (solo Admin).
type UserUseCase struct {
	users repository.UserRepository
	clk   clock.Clock
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(users repository.UserRepository, clk clock.Clock) *UserUseCase {
	return &UserUseCase{users: users, clk: clk}
}

// List lista todos los usuarios, más recientes primero.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserView, error) {
	users, err := uc.users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserView, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserView{
			ID:        u.ID,
			Name:      u.DisplayName(),
			Email:     u.Email,
			Role:      u.Role,
			CreatedAt: dto.FormatTime(u.CreatedAt),
		})
	}
	return out, nil
}

// AssignmentOptions lista usuarios ordenados por nombre para el dropdown "Assigned To".
func (uc *UserUseCase) AssignmentOptions(ctx context.Context) ([]dto.UserOption, error) {
	users, err := uc.users.ListForAssignment(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserOption, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserOption{ID: u.ID, Name: u.DisplayName()})
	}
	return out, nil
}

// Create valida y da de alta un usuario. La política de contraseñas se evalúa
// completa: el mensaje enumera todas las reglas incumplidas, no solo la primera.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) error {
	firstName := strings.TrimSpace(in.FirstName)
	lastName := strings.TrimSpace(in.LastName)
	email := strings.TrimSpace(in.Email)

	if firstName == "" || lastName == "" || email == "" || in.Password == "" || in.Role == "" {
		return domain.NewValidationError("Please fill in all fields.")
	}
	if !validEmail(email) {
		return domain.NewValidationError("Please enter a valid email address.")
	}
	if !entity.ValidRole(in.Role) {
		return domain.NewValidationError("Invalid role.")
	}
	if msg := password.PolicyMessage(in.Password); msg != "" {
		return domain.NewValidationError(msg)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := &entity.User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: string(hash),
		Role:         in.Role,
		CreatedAt:    uc.clk.Now(),
	}
	_, err = uc.users.Create(ctx, user)
	return err
}

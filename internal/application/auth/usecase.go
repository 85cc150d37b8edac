package auth

import (
	"context"

	"github.com/jhoicas/dolphin-crm/internal/domain"
	"github.com/jhoicas/dolphin-crm/internal/domain/repository"
	"github.com/jhoicas/dolphin-crm/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// SessionConfig configuración para emisión de tokens de sesión.
type SessionConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Session sesión establecida tras un login correcto.
type Session struct {
	Token  string
	UserID int64
	Role   string
	Name   string // nombre para mostrar (firstname + lastname)
}

// AuthUseCase caso de uso de autenticación: login contra la tabla de usuarios.
type AuthUseCase struct {
	userRepo repository.UserRepository
	cfg      SessionConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, cfg SessionConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, cfg: cfg}
}

// Login verifica email/password y emite el token de sesión firmado.
// Email desconocido y password incorrecto devuelven el mismo ErrInvalidCredentials
// para no revelar cuál de los dos campos falló.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*Session, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	name := user.DisplayName()
	token, err := jwt.Generate(uc.cfg.Secret, user.ID, user.Role, name, uc.cfg.Issuer, uc.cfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &Session{
		Token:  token,
		UserID: user.ID,
		Role:   user.Role,
		Name:   name,
	}, nil
}

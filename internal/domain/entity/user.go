package entity

import "time"

// Roles válidos para User. Solo Admin puede gestionar usuarios.
const (
	RoleAdmin  = "Admin"
	RoleMember = "Member"
)

// ValidRole indica si role es uno de los valores permitidos.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleMember
}

// User representa un miembro del staff que puede iniciar sesión.
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // Admin, Member
	CreatedAt    time.Time
}

// DisplayName nombre para mostrar (firstname + lastname).
func (u *User) DisplayName() string {
	return u.FirstName + " " + u.LastName
}

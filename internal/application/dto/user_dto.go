package dto

// LoginRequest entrada del formulario de login.
type LoginRequest struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

// CreateUserRequest entrada del formulario de alta de usuario (password en texto,
// se valida y hashea en el use case).
type CreateUserRequest struct {
	FirstName string `form:"firstname"`
	LastName  string `form:"lastname"`
	Email     string `form:"email"`
	Password  string `form:"password"`
	Role      string `form:"role"`
}

// UserView fila del listado de usuarios.
type UserView struct {
	ID        int64
	Name      string
	Email     string
	Role      string
	CreatedAt string
}

// UserOption opción del dropdown "Assigned To".
type UserOption struct {
	ID   int64
	Name string
}

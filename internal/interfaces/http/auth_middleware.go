package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/dolphin-crm/internal/application/dto"
	"github.com/jhoicas/dolphin-crm/internal/domain/entity"
	"github.com/jhoicas/dolphin-crm/pkg/jwt"
)

// Local key del usuario autenticado en Fiber.
const localAuthUser = "auth_user"

// AuthUser contexto de usuario autenticado por request, construido desde la
// cookie de sesión firmada (sin estado global ni consulta a DB por request).
type AuthUser struct {
	ID   int64
	Role string
	Name string // nombre para mostrar (firstname + lastname)
}

// IsAdmin indica si el usuario tiene rol Admin.
func (u AuthUser) IsAdmin() bool { return u.Role == entity.RoleAdmin }

// SessionCookieConfig parámetros de la cookie de sesión para los middlewares y el login.
type SessionCookieConfig struct {
	Secret     string
	CookieName string
	ExpMinutes int
	Secure     bool
}

// RequireSession exige sesión activa en páginas: sin sesión válida redirige a /login.
func RequireSession(cfg SessionCookieConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := sessionUser(c, cfg)
		if !ok {
			return c.Redirect("/login", fiber.StatusFound)
		}
		c.Locals(localAuthUser, user)
		return c.Next()
	}
}

// RequireSessionJSON exige sesión activa en los endpoints asíncronos: sin sesión
// responde el fallo estructurado que espera el cliente, no un redirect.
func RequireSessionJSON(cfg SessionCookieConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := sessionUser(c, cfg)
		if !ok {
			return c.JSON(dto.Fail("Not logged in"))
		}
		c.Locals(localAuthUser, user)
		return c.Next()
	}
}

// RequireAdmin bloquea a los no-Admin con 403. Debe ir después de RequireSession.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !CurrentUser(c).IsAdmin() {
			return renderError(c, fiber.StatusForbidden, "Access denied. Admins only.")
		}
		return c.Next()
	}
}

func sessionUser(c *fiber.Ctx, cfg SessionCookieConfig) (AuthUser, bool) {
	token := c.Cookies(cfg.CookieName)
	if token == "" {
		return AuthUser{}, false
	}
	userID, role, name, err := jwt.Parse(cfg.Secret, token)
	if err != nil {
		return AuthUser{}, false
	}
	return AuthUser{ID: userID, Role: role, Name: name}, true
}

// CurrentUser devuelve el usuario autenticado del contexto (después del middleware).
func CurrentUser(c *fiber.Ctx) AuthUser {
	v := c.Locals(localAuthUser)
	if v == nil {
		return AuthUser{}
	}
	u, _ := v.(AuthUser)
	return u
}

package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/dolphin-crm/internal/application/auth"
	"github.com/jhoicas/dolphin-crm/internal/application/dto"
	"github.com/jhoicas/dolphin-crm/internal/domain"
)

// AuthHandler maneja login y logout.
type AuthHandler struct {
	uc     *auth.AuthUseCase
	cookie SessionCookieConfig
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, cookie SessionCookieConfig) *AuthHandler {
	return &AuthHandler{uc: uc, cookie: cookie}
}

// LoginPage GET /login
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{
		"Title": "Dolphin CRM - Login",
		"Year":  time.Now().Year(),
	})
}

// Login POST /login — establece la cookie de sesión y redirige al dashboard.
// Email desconocido y password incorrecto muestran el mismo mensaje genérico.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return h.loginError(c, "Invalid email or password.")
	}
	session, err := h.uc.Login(c.Context(), in.Email, in.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return h.loginError(c, "Invalid email or password.")
		}
		return h.loginError(c, "Something went wrong. Please try again.")
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.CookieName,
		Value:    session.Token,
		Expires:  time.Now().Add(time.Duration(h.cookie.ExpMinutes) * time.Minute),
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Redirect("/dashboard", fiber.StatusFound)
}

// Logout GET /logout — destruye la sesión.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Redirect("/login", fiber.StatusFound)
}

func (h *AuthHandler) loginError(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{
		"Title": "Dolphin CRM - Login",
		"Error": msg,
		"Year":  time.Now().Year(),
	})
}

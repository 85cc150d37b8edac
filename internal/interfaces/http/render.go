package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// mainLayout layout con topbar y sidebar para las páginas autenticadas.
const mainLayout = "layouts/main"

// viewData combina los datos de página con los de sesión que consume el layout
// (nombre, rol, enlace de Users solo para Admin).
func viewData(c *fiber.Ctx, data fiber.Map) fiber.Map {
	user := CurrentUser(c)
	out := fiber.Map{
		"UserName": user.Name,
		"UserRole": user.Role,
		"IsAdmin":  user.IsAdmin(),
		"Active":   "",
		"Year":     time.Now().Year(),
	}
	for k, v := range data {
		out[k] = v
	}
	return out
}

// renderError responde una página de error terminal con el status dado.
func renderError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).Render("error", viewData(c, fiber.Map{
		"Title":   "Dolphin CRM - Error",
		"Message": message,
	}), mainLayout)
}

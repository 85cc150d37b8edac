package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/dolphin-crm/internal/application/usecase"
)

// DashboardHandler maneja el directorio de contactos.
type DashboardHandler struct {
	contactUC *usecase.ContactUseCase
}

// NewDashboardHandler construye el handler del dashboard.
func NewDashboardHandler(contactUC *usecase.ContactUseCase) *DashboardHandler {
	return &DashboardHandler{contactUC: contactUC}
}

// Dashboard GET /dashboard?filter={all|sales|support|assigned}
// El cliente reutiliza esta misma página para el refresco parcial: tras filtrar
// por XHR solo reemplaza el tbody de la tabla.
func (h *DashboardHandler) Dashboard(c *fiber.Ctx) error {
	user := CurrentUser(c)
	filter := c.Query("filter", usecase.FilterAll)

	rows, err := h.contactUC.List(c.Context(), filter, user.ID)
	if err != nil {
		return renderError(c, fiber.StatusInternalServerError, "Could not load contacts.")
	}

	return c.Render("dashboard", viewData(c, fiber.Map{
		"Title":    "Dolphin CRM - Dashboard",
		"Active":   "dashboard",
		"Filter":   filter,
		"Contacts": rows,
	}), mainLayout)
}

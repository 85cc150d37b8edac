package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/dolphin-crm/internal/application/dto"
	"github.com/jhoicas/dolphin-crm/internal/application/usecase"
	"github.com/jhoicas/dolphin-crm/internal/domain"
	"github.com/jhoicas/dolphin-crm/internal/domain/entity"
)

// Títulos ofrecidos en el formulario de nuevo contacto.
var contactTitles = []string{"Mr", "Mrs", "Ms", "Dr", "Prof"}

// ContactHandler maneja el detalle, alta y acciones asíncronas de contactos.
type ContactHandler struct {
	contactUC *usecase.ContactUseCase
	noteUC    *usecase.NoteUseCase
	userUC    *usecase.UserUseCase
}

// NewContactHandler construye el handler de contactos.
func NewContactHandler(contactUC *usecase.ContactUseCase, noteUC *usecase.NoteUseCase, userUC *usecase.UserUseCase) *ContactHandler {
	return &ContactHandler{contactUC: contactUC, noteUC: noteUC, userUC: userUC}
}

// Detail GET /contact/:id
func (h *ContactHandler) Detail(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return renderError(c, fiber.StatusBadRequest, "Invalid contact.")
	}
	view, err := h.contactUC.Detail(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrContactNotFound) {
			return renderError(c, fiber.StatusNotFound, "Contact not found.")
		}
		return renderError(c, fiber.StatusInternalServerError, "Could not load contact.")
	}
	return c.Render("contact", viewData(c, fiber.Map{
		"Title":   "Contact Details - Dolphin CRM",
		"Contact": view,
	}), mainLayout)
}

// NewForm GET /contacts/new
func (h *ContactHandler) NewForm(c *fiber.Ctx) error {
	return h.renderNewForm(c, dto.CreateContactRequest{}, "")
}

// Create POST /contacts/new — redirige al dashboard en éxito; re-renderiza el
// formulario con el mensaje de validación en fallo.
func (h *ContactHandler) Create(c *fiber.Ctx) error {
	user := CurrentUser(c)
	var in dto.CreateContactRequest
	if err := c.BodyParser(&in); err != nil {
		return h.renderNewForm(c, in, "Please fill in all required fields.")
	}
	if _, err := h.contactUC.Create(c.Context(), in, user.ID); err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			return h.renderNewForm(c, in, ve.Message)
		}
		return h.renderNewForm(c, in, "Error creating contact. Please try again.")
	}
	return c.Redirect("/dashboard", fiber.StatusFound)
}

// Actions POST /contact-actions — endpoint asíncrono de assign y toggle_type.
// Los fallos de dominio responden 200 con {"success":false,...}: es el contrato
// del cliente, que distingue por el campo success y no por el status.
func (h *ContactHandler) Actions(c *fiber.Ctx) error {
	user := CurrentUser(c)
	var in dto.ContactActionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.JSON(dto.Fail("Invalid contact id"))
	}
	contactID, err := strconv.ParseInt(in.ContactID, 10, 64)
	if err != nil {
		return c.JSON(dto.Fail("Invalid contact id"))
	}

	switch in.Action {
	case "assign":
		res, err := h.contactUC.Assign(c.Context(), contactID, user.ID)
		if err != nil {
			if errors.Is(err, domain.ErrContactNotFound) {
				return c.JSON(dto.Fail("Contact not found"))
			}
			return c.JSON(dto.Fail("DB error assigning contact"))
		}
		return c.JSON(res)

	case "toggle_type":
		res, err := h.contactUC.ToggleType(c.Context(), contactID, in.NewType)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidContactType) {
				return c.JSON(dto.Fail("Invalid type"))
			}
			if errors.Is(err, domain.ErrContactNotFound) {
				return c.JSON(dto.Fail("Contact not found"))
			}
			return c.JSON(dto.Fail("DB error updating type"))
		}
		return c.JSON(res)
	}

	return c.JSON(dto.Fail("Unknown action"))
}

// AddNote POST /notes — endpoint asíncrono de alta de nota.
func (h *ContactHandler) AddNote(c *fiber.Ctx) error {
	user := CurrentUser(c)
	var in dto.AddNoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.JSON(dto.Fail("Missing or invalid data"))
	}
	contactID, err := strconv.ParseInt(in.ContactID, 10, 64)
	if err != nil {
		return c.JSON(dto.Fail("Missing or invalid data"))
	}
	res, err := h.noteUC.Add(c.Context(), contactID, in.Comment, user.ID, user.Name)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.JSON(dto.Fail("Missing or invalid data"))
		}
		return c.JSON(dto.Fail("DB error inserting note"))
	}
	return c.JSON(res)
}

func (h *ContactHandler) renderNewForm(c *fiber.Ctx, in dto.CreateContactRequest, errMsg string) error {
	options, err := h.userUC.AssignmentOptions(c.Context())
	if err != nil {
		return renderError(c, fiber.StatusInternalServerError, "Could not load users.")
	}
	status := fiber.StatusOK
	if errMsg != "" {
		status = fiber.StatusBadRequest
	}
	return c.Status(status).Render("contact_new", viewData(c, fiber.Map{
		"Title":  "Dolphin CRM - New Contact",
		"Active": "new_contact",
		"Error":  errMsg,
		"Form":   in,
		"Titles": contactTitles,
		"Types":  []string{entity.TypeSalesLead, entity.TypeSupport},
		"Users":  options,
	}), mainLayout)
}

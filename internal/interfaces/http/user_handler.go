package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/dolphin-crm/internal/application/dto"
	"github.com/jhoicas/dolphin-crm/internal/application/usecase"
	"github.com/jhoicas/dolphin-crm/internal/domain"
	"github.com/jhoicas/dolphin-crm/internal/domain/entity"
)

// UserHandler maneja el directorio de usuarios (rutas solo Admin).
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler de usuarios.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List GET /users — listado más formulario de alta en la misma página.
func (h *UserHandler) List(c *fiber.Ctx) error {
	return h.renderList(c, dto.CreateUserRequest{}, "")
}

// NewForm GET /users/new — formulario de alta independiente.
func (h *UserHandler) NewForm(c *fiber.Ctx) error {
	return h.renderNewForm(c, dto.CreateUserRequest{}, "")
}

// Create POST /users/new — alta de usuario; en éxito redirige al listado.
// El email duplicado sale como mensaje genérico sin distinguir la causa exacta.
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return h.renderNewForm(c, in, "Please fill in all fields.")
	}
	if err := h.uc.Create(c.Context(), in); err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			return h.renderNewForm(c, in, ve.Message)
		}
		return h.renderNewForm(c, in, "Failed to add user. Email may already be taken.")
	}
	return c.Redirect("/users", fiber.StatusFound)
}

func (h *UserHandler) renderList(c *fiber.Ctx, form dto.CreateUserRequest, errMsg string) error {
	users, err := h.uc.List(c.Context())
	if err != nil {
		return renderError(c, fiber.StatusInternalServerError, "Could not load users.")
	}
	return c.Render("users", viewData(c, fiber.Map{
		"Title":  "Dolphin CRM - Users",
		"Active": "users",
		"Users":  users,
		"Form":   form,
		"Error":  errMsg,
		"Roles":  []string{entity.RoleAdmin, entity.RoleMember},
	}), mainLayout)
}

func (h *UserHandler) renderNewForm(c *fiber.Ctx, form dto.CreateUserRequest, errMsg string) error {
	status := fiber.StatusOK
	if errMsg != "" {
		status = fiber.StatusBadRequest
	}
	return c.Status(status).Render("user_new", viewData(c, fiber.Map{
		"Title":  "Dolphin CRM - New User",
		"Active": "users",
		"Form":   form,
		"Error":  errMsg,
		"Roles":  []string{entity.RoleAdmin, entity.RoleMember},
	}), mainLayout)
}

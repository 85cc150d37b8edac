package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/dolphin-crm/internal/application/auth"
	"github.com/jhoicas/dolphin-crm/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	ContactUC *usecase.ContactUseCase
	NoteUC    *usecase.NoteUseCase
	UserUC    *usecase.UserUseCase
	Session   SessionCookieConfig
}

// Router registra las rutas de la aplicación.
//
// Los guards de sesión van ruta a ruta, no como middleware de grupo sobre "/":
// un grupo con prefijo "/" aplicaría su middleware a TODAS las rutas que
// matcheen el prefijo, y los endpoints asíncronos deben responder JSON sin
// sesión, nunca el redirect de las páginas.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC, deps.Session)
	dashboardHandler := NewDashboardHandler(deps.ContactUC)
	contactHandler := NewContactHandler(deps.ContactUC, deps.NoteUC, deps.UserUC)
	userHandler := NewUserHandler(deps.UserUC)

	sessionPage := RequireSession(deps.Session)
	sessionJSON := RequireSessionJSON(deps.Session)

	// Auth (público)
	app.Get("/login", authHandler.LoginPage)
	app.Post("/login", authHandler.Login)
	app.Get("/logout", authHandler.Logout)

	// Páginas protegidas: sin sesión -> redirect a /login
	app.Get("/", sessionPage, func(c *fiber.Ctx) error {
		return c.Redirect("/dashboard", fiber.StatusFound)
	})
	app.Get("/dashboard", sessionPage, dashboardHandler.Dashboard)
	app.Get("/contact/:id", sessionPage, contactHandler.Detail)
	app.Get("/contacts/new", sessionPage, contactHandler.NewForm)
	app.Post("/contacts/new", sessionPage, contactHandler.Create)

	// Endpoints asíncronos: sin sesión -> {"success":false,"error":"Not logged in"}
	app.Post("/contact-actions", sessionJSON, contactHandler.Actions)
	app.Post("/notes", sessionJSON, contactHandler.AddNote)

	// Directorio de usuarios (solo Admin)
	admin := app.Group("/users", sessionPage, RequireAdmin())
	admin.Get("/", userHandler.List)
	admin.Get("/new", userHandler.NewForm)
	admin.Post("/new", userHandler.Create)
}

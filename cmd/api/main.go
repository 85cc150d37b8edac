package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/template/html/v2"
	"github.com/google/uuid"
	"github.com/jhoicas/dolphin-crm/internal/application/auth"
	"github.com/jhoicas/dolphin-crm/internal/application/usecase"
	"github.com/jhoicas/dolphin-crm/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/dolphin-crm/internal/interfaces/http"
	"github.com/jhoicas/dolphin-crm/pkg/clock"
	"github.com/jhoicas/dolphin-crm/pkg/config"
	"github.com/jhoicas/dolphin-crm/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.Session.Secret == "" {
		log.Fatal().Msg("SESSION_SECRET es obligatorio")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	contactRepo := postgres.NewContactRepository(pool)
	noteRepo := postgres.NewNoteRepository(pool)

	clk := clock.System{}
	authUC := auth.NewAuthUseCase(userRepo, auth.SessionConfig{
		Secret:     cfg.Session.Secret,
		ExpMinutes: cfg.Session.Expiration,
		Issuer:     cfg.Session.Issuer,
	})
	contactUC := usecase.NewContactUseCase(contactRepo, noteRepo, clk)
	noteUC := usecase.NewNoteUseCase(noteRepo, contactRepo, clk)
	userUC := usecase.NewUserUseCase(userRepo, clk)

	engine := html.New(cfg.Views.TemplatesDir, ".html")

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		Views:        engine,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(httpRouter.RequestLogger(log))

	app.Static("/static", cfg.Views.StaticDir)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		ContactUC: contactUC,
		NoteUC:    noteUC,
		UserUC:    userUC,
		Session: httpRouter.SessionCookieConfig{
			Secret:     cfg.Session.Secret,
			CookieName: cfg.Session.CookieName,
			ExpMinutes: cfg.Session.Expiration,
			Secure:     cfg.Session.Secure,
		},
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

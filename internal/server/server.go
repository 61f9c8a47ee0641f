package server

import (
	"log"

	"chambers-practice-be/internal/bootstrap"
	"chambers-practice-be/internal/config"
	"chambers-practice-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		// Dictation uploads arrive as base64 JSON; allow for long hearings.
		BodyLimit: 25 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type",
	}))

	app.Use(serverutils.ErrorHandlerMiddleware())

	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	// Open endpoints: health probing and the passphrase exchange.
	c.HealthController.RegisterRoutes(api)
	c.AuthController.RegisterRoutes(api)

	// Everything else requires the session token.
	guarded := api.Group("", serverutils.SessionMiddleware)
	c.AttendanceNoteController.RegisterRoutes(guarded)
	c.DirectoryController.RegisterRoutes(guarded)
	c.ReportController.RegisterRoutes(guarded)
	c.AiController.RegisterRoutes(guarded)
	c.TodoController.RegisterRoutes(guarded)
	c.TranscriptController.RegisterRoutes(guarded)
	c.CaseController.RegisterRoutes(guarded)
}

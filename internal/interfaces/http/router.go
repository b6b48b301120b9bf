package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Categories CategoryUseCases
	JWTSecret  string
	JWTIssuer  string
	AppName    string
	Logger     *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	app.Use(RequestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	api := app.Group("/api")
	categoryHandler := NewCategoryHandler(deps.Categories, log)

	// Lectura (público)
	categories := api.Group("/categories")
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)

	// Escritura (requiere Bearer Token con rol admin o editor)
	write := []fiber.Handler{AuthMiddleware(deps.JWTSecret, deps.JWTIssuer), RequireRole(RoleAdmin, RoleEditor)}
	categories.Post("/", append(write, categoryHandler.Create)...)
	categories.Put("/:id", append(write, categoryHandler.Update)...)
	categories.Delete("/:id", append(write, categoryHandler.Delete)...)
}

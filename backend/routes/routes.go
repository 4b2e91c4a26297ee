package routes

import (
	"log/slog"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"syllabus-tracker/backend/config"
	"syllabus-tracker/backend/controllers"
	"syllabus-tracker/backend/middleware"
	"syllabus-tracker/backend/services"
)

// requestTimeout bounds every handler, login and sync delays included.
const requestTimeout = 30 * time.Second

// Services are the long-lived components the handlers share.
type Services struct {
	Store    *services.SyllabusStore
	Auth     *services.AuthService
	Settings *services.SettingsService
	Notifier *services.Notifier
}

// NewApp builds the Fiber app with the JSON codec and middleware stack but
// no routes.
func NewApp(logger *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "syllabus-tracker",
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders: "Content-Disposition, X-Request-ID",
	}))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	app.Use(middleware.RequestContext(requestTimeout))
	app.Use(middleware.LoggingMiddleware(logger))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func SetupRoutes(app *fiber.App, svc Services, cfg *config.Config) {
	// Auth routes
	authController := controllers.NewAuthController(svc.Auth, svc.Notifier, cfg)
	app.Post("/api/auth/login", authController.Login)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)
	facultyMiddleware := middleware.FacultyMiddleware()

	api := app.Group("/api", authMiddleware)
	api.Post("/auth/logout", authController.Logout)
	api.Get("/auth/me", authController.Me)

	// User routes
	userController := controllers.NewUserController(svc.Auth, cfg)
	api.Put("/user/profile", userController.UpdateProfile)

	// Dashboard and progress routes
	progressController := controllers.NewProgressController(svc.Store, svc.Notifier, cfg)
	api.Get("/dashboard", progressController.GetDashboard)
	api.Get("/progress", progressController.GetProgress)
	api.Post("/sync", progressController.Sync)

	// Subject and topic routes
	subjectsController := controllers.NewSubjectsController(svc.Store, svc.Notifier)
	api.Get("/activities", subjectsController.GetActivities)
	subjects := api.Group("/subjects")
	subjects.Get("/", subjectsController.GetSubjects)
	subjects.Put("/", facultyMiddleware, subjectsController.SaveSubjects)
	subjects.Post("/:id/topics", facultyMiddleware, subjectsController.AddTopic)
	subjects.Put("/:id/topics/:topicId", facultyMiddleware, subjectsController.UpdateTopic)
	subjects.Delete("/:id/topics/:topicId", facultyMiddleware, subjectsController.DeleteTopic)
	subjects.Post("/:id/topics/:topicId/toggle", facultyMiddleware, subjectsController.ToggleTopic)
	api.Post("/topics/complete-all", facultyMiddleware, subjectsController.CompleteAll)

	// Alert routes
	alertsController := controllers.NewAlertsController(svc.Store, svc.Notifier)
	api.Get("/alerts", alertsController.GetAlerts)
	api.Post("/alerts/:id/resolve", facultyMiddleware, alertsController.ResolveAlert)
	api.Post("/alerts/:id/dismiss", alertsController.DismissAlert)

	// Export routes
	exportController := controllers.NewExportController(svc.Store)
	api.Get("/export", exportController.Export)

	// Settings routes
	settingsController := controllers.NewSettingsController(svc.Settings, svc.Notifier)
	api.Get("/settings", settingsController.GetSettings)
	api.Put("/settings", settingsController.UpdateSettings)
	api.Get("/settings/export", settingsController.ExportSettings)
	api.Post("/settings/import", settingsController.ImportSettings)

	// Notification routes
	notificationsController := controllers.NewNotificationsController(svc.Notifier)
	api.Get("/notifications", notificationsController.GetNotifications)
	api.Delete("/notifications/:id", notificationsController.DismissNotification)
}

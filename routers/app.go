package routers

import (
	"foodapi/config"
	"foodapi/middleware"
	authRoutes "foodapi/routers/authRoutes"
	commentRoutes "foodapi/routers/commentRoutes"
	shopRoutes "foodapi/routers/shopRoutes"
	"foodapi/services"
	"foodapi/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Deps are the collaborators the HTTP layer is built from.
type Deps struct {
	Config    *config.Config
	DB        *gorm.DB
	Moderator services.ContentModerator
	Log       *logrus.Logger
}

// NewApp builds the fiber app with every route registered.
func NewApp(deps Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(deps.Log),
	})

	app.Use(middleware.RequestID())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST",
		AllowHeaders: "Content-Type,Authorization,X-Request-ID",
	}))

	// access log; application logs go through logrus
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency} ${respHeader:X-Request-ID}\n",
		Output: deps.Log.Out,
	}))

	app.Static(utils.UploadURLPrefix, deps.Config.UploadDir)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": true, "message": "ok"})
	})

	commentService := services.NewCommentService(deps.DB, deps.Moderator, deps.Log)
	catalogService := services.NewCatalogService(deps.DB)
	authService := services.NewAuthService(deps.DB)

	adminOnly := middleware.JWTMiddleware(deps.Config)

	commentRoutes.SetupCommentRoutes(app, commentService, deps.Log)
	shopRoutes.SetupShopRoutes(app, deps.Config, catalogService, adminOnly, deps.Log)
	authRoutes.SetupAuthRoutes(app, deps.Config, authService, deps.Log)

	return app
}

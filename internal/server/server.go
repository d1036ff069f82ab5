package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/azigroup/website/internal/config"
	"github.com/azigroup/website/internal/handlers"
	"github.com/azigroup/website/internal/media"
	"github.com/azigroup/website/internal/middleware"
	"github.com/azigroup/website/internal/services"
	"github.com/azigroup/website/views"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/template/django/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// New builds the web application: public pages, the public JSON API and
// the staff API under /admin/api.
func New(cfg *config.Config, db *gorm.DB, jwtSecret string, log *zap.Logger) *fiber.App {
	engine := django.NewPathForwardingFileSystem(http.FS(views.FS), "/templates", ".html")

	app := fiber.New(fiber.Config{
		AppName:      "AZI GROUP",
		BodyLimit:    2 * media.MaxUploadSize,
		Views:        engine,
		ErrorHandler: handlers.ErrorHandler(log),
	})

	storage := media.NewStorage(cfg.MediaRoot, cfg.MediaURL)

	content := services.NewContentService(db)
	contacts := services.NewContactService(db)
	settings := services.NewSettingsService(db)
	users := services.NewUserService(db)
	admin := services.NewAdminService(db, storage)
	siteContext := services.NewSiteContextService(content, settings, storage, log)

	// Global middleware
	app.Use(middleware.Recovery(log))
	app.Use(compress.New())
	app.Use(middleware.Logger(log, "/health", "/media/"))
	app.Use(middleware.SiteContext(siteContext))

	if strings.HasPrefix(cfg.MediaURL, "/") {
		app.Static(strings.TrimRight(cfg.MediaURL, "/"), cfg.MediaRoot, fiber.Static{
			MaxAge: int((24 * time.Hour).Seconds()),
		})
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"service": "azigroup-web",
		})
	})

	pages := handlers.NewPagesHandler(content, storage, log)
	contactHandler := handlers.NewContactHandler(contacts, cfg.ContactRateLimit, log)
	apiHandler := handlers.NewAPIHandler(content, storage)
	seo := handlers.NewSEOHandler(content, cfg.SiteURL)

	// Public pages
	app.Get("/", pages.Home)
	app.Get("/about", pages.About)
	app.Get("/companies", pages.Companies)
	app.Get("/companies/:slug", pages.CompanyDetail)
	app.Get("/news", pages.NewsList)
	app.Get("/news/:slug", pages.NewsDetail)
	app.Get("/testimonials", pages.Testimonials)
	app.Get("/search", pages.Search)
	app.Get("/contact", contactHandler.Form)
	app.Post("/contact", contactHandler.Submit)
	app.Get("/sitemap.xml", seo.Sitemap)
	app.Get("/robots.txt", seo.Robots)

	// Public JSON API
	api := app.Group("/api", middleware.CORS(fiber.MethodGet, fiber.MethodPost))
	api.Post("/contact", contactHandler.APISubmit)
	api.Get("/companies", apiHandler.Companies)
	api.Get("/news", apiHandler.News)

	registerAdmin(app, cfg, db, jwtSecret, log, adminDeps{
		users:    users,
		settings: settings,
		contacts: contacts,
		admin:    admin,
		storage:  storage,
	})

	return app
}

type adminDeps struct {
	users    *services.UserService
	settings *services.SettingsService
	contacts *services.ContactService
	admin    *services.AdminService
	storage  *media.Storage
}

func registerAdmin(app *fiber.App, cfg *config.Config, db *gorm.DB, jwtSecret string, log *zap.Logger, d adminDeps) {
	authHandler := handlers.NewAuthHandler(d.users, jwtSecret, time.Duration(cfg.JWTExpireHours)*time.Hour, log)
	twoFAHandler := handlers.NewTwoFAHandler(d.users, d.settings)
	contentHandler := handlers.NewAdminContentHandler(d.admin)
	contactHandler := handlers.NewAdminContactHandler(d.contacts)
	settingsHandler := handlers.NewSettingsHandler(d.settings)
	uploadHandler := handlers.NewUploadHandler(d.storage, log)

	adminAPI := app.Group("/admin/api", middleware.CORS(fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodDelete))
	adminAPI.Post("/auth/login", authHandler.Login)

	// Protected routes
	protected := adminAPI.Group("", middleware.AuthRequired(db, jwtSecret), middleware.AuditLogger(log))

	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/me", authHandler.Me)
	protected.Post("/auth/change-password", authHandler.ChangePassword)

	twoFA := protected.Group("/auth/2fa")
	twoFA.Get("/status", twoFAHandler.Status)
	twoFA.Post("/setup", twoFAHandler.Setup)
	twoFA.Post("/verify", twoFAHandler.Verify)
	twoFA.Post("/disable", twoFAHandler.Disable)

	companies := protected.Group("/companies")
	companies.Get("/", contentHandler.ListCompanies)
	companies.Get("/:id", contentHandler.GetCompany)
	companies.Post("/", contentHandler.CreateCompany)
	companies.Put("/:id", contentHandler.UpdateCompany)
	companies.Delete("/:id", contentHandler.DeleteCompany)
	companies.Post("/:id/images", contentHandler.CreateProjectImage)
	companies.Put("/:id/images/:imageId", contentHandler.UpdateProjectImage)
	companies.Delete("/:id/images/:imageId", contentHandler.DeleteProjectImage)

	news := protected.Group("/news")
	news.Get("/", contentHandler.ListNews)
	news.Get("/:id", contentHandler.GetNews)
	news.Post("/", contentHandler.CreateNews)
	news.Put("/:id", contentHandler.UpdateNews)
	news.Delete("/:id", contentHandler.DeleteNews)

	testimonials := protected.Group("/testimonials")
	testimonials.Get("/", contentHandler.ListTestimonials)
	testimonials.Get("/:id", contentHandler.GetTestimonial)
	testimonials.Post("/", contentHandler.CreateTestimonial)
	testimonials.Put("/:id", contentHandler.UpdateTestimonial)
	testimonials.Delete("/:id", contentHandler.DeleteTestimonial)

	logos := protected.Group("/navigation-logos")
	logos.Get("/", contentHandler.ListNavigationLogos)
	logos.Get("/:id", contentHandler.GetNavigationLogo)
	logos.Post("/", contentHandler.CreateNavigationLogo)
	logos.Put("/:id", contentHandler.UpdateNavigationLogo)
	logos.Delete("/:id", contentHandler.DeleteNavigationLogo)

	heroes := protected.Group("/heroes")
	heroes.Get("/", contentHandler.ListHeroes)
	heroes.Get("/:id", contentHandler.GetHero)
	heroes.Post("/", contentHandler.CreateHero)
	heroes.Put("/:id", contentHandler.UpdateHero)
	heroes.Delete("/:id", contentHandler.DeleteHero)

	contacts := protected.Group("/contacts")
	contacts.Get("/", contactHandler.List)
	contacts.Get("/:id", contactHandler.Get)
	contacts.Put("/:id/status", contactHandler.UpdateStatus)
	contacts.Delete("/:id", contactHandler.Delete)

	settings := protected.Group("/settings")
	settings.Get("/", settingsHandler.List)
	settings.Get("/:key", settingsHandler.Get)
	settings.Put("/:key", settingsHandler.Put)
	settings.Delete("/:key", settingsHandler.Delete)

	protected.Post("/uploads", uploadHandler.Upload)
}

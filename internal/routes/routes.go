package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/smartcity/complaint-backend/internal/config"
	"github.com/smartcity/complaint-backend/internal/handlers"
	"github.com/smartcity/complaint-backend/internal/middleware"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	complaintHandler *handlers.ComplaintHandler,
	adminHandler *handlers.AdminHandler,
	contactHandler *handlers.ContactHandler,
	healthHandler *handlers.HealthHandler,
) {
	// Uploaded complaint photos are served as static files.
	app.Static("/uploads", cfg.UploadDir)

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)
	api.Post("/contact", contactHandler.Submit)

	// Auth — public, with a stricter limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)
	auth.Post("/admin-register", authHandler.AdminRegister)
	auth.Post("/admin-login", authHandler.AdminLogin)
	auth.Post("/request-otp", authHandler.RequestOTP)
	auth.Post("/login-otp", authHandler.LoginOTP)
	auth.Post("/request-signup-otp", authHandler.RequestSignupOTP)
	auth.Post("/signup-otp", authHandler.SignupOTP)
	auth.Post("/check-secret", authHandler.CheckSecret)

	// Anything past here needs a valid token and a loaded account.
	protected := []fiber.Handler{middleware.JWTProtected(cfg), middleware.LoadAccount(db)}

	api.Get("/auth/me", append(protected, authHandler.Me)...)

	// Complaints — owner-facing
	complaints := api.Group("/complaints", protected...)
	complaints.Post("/", complaintHandler.Submit)
	complaints.Get("/my-complaints", complaintHandler.Mine)
	complaints.Get("/department/:dept", middleware.StaffRequired(), complaintHandler.ByDepartment)
	complaints.Get("/:id", complaintHandler.Get)
	complaints.Patch("/:id/status", complaintHandler.UpdateStatus)
	complaints.Delete("/:id", complaintHandler.Delete)

	// Admin panel — staff or admin
	admin := api.Group("/admin", append(protected, middleware.StaffRequired())...)
	admin.Get("/complaints", adminHandler.ListComplaints)
	admin.Get("/complaints/stats", adminHandler.Stats)
	admin.Get("/complaints/search", adminHandler.Search)
	admin.Get("/complaints/category/:category", adminHandler.ByCategory)
	admin.Get("/complaints/urgency/:urgency", adminHandler.ByUrgency)
	admin.Patch("/complaints/:id/noted", adminHandler.MarkNoted)
	admin.Patch("/complaints/:id/status", adminHandler.UpdateStatus)
	admin.Get("/users", adminHandler.ListUsers)
	admin.Get("/users/stats", adminHandler.UserStats)

	// Role changes are admin-only.
	admin.Patch("/users/:id/role", middleware.AdminRequired(), adminHandler.UpdateRole)
}

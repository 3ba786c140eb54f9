package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/ravokstudios/investor-portal/internal/api/handler"
	"github.com/ravokstudios/investor-portal/internal/api/middleware"
	"github.com/ravokstudios/investor-portal/internal/core/domain"
	"github.com/ravokstudios/investor-portal/internal/core/service"
	"github.com/ravokstudios/investor-portal/internal/infrastructure/config"
	redisstore "github.com/ravokstudios/investor-portal/internal/infrastructure/db/redis"
	healthhandlers "github.com/ravokstudios/investor-portal/internal/infrastructure/http/handlers"
	"github.com/ravokstudios/investor-portal/internal/upstream"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("portal"))

	// --- Dependencies ---
	api := upstream.New(cfg.Upstream.BaseURL, log)
	store := redisstore.NewSessionStore(rdb, cfg.Session.TTL)
	cache := redisstore.NewContentCache(rdb, cfg.Cache.TTL)
	sessions := service.NewSessionService(api, store, cfg.Session.Secret, cfg.Session.TTL, log)

	cookie := handler.CookieConfig{
		Name:   cfg.Session.Cookie,
		Secure: cfg.Session.CookieSecure,
		TTL:    cfg.Session.TTL,
	}
	authHandler := handler.NewAuthHandler(sessions, cookie)
	dashboardHandler := handler.NewDashboardHandler(api)
	userHandler := handler.NewUserHandler(api)
	profileHandler := handler.NewProfileHandler(api, store, log)
	categoryHandler := handler.NewCategoryHandler(api)
	postHandler := handler.NewPostHandler(api)
	documentHandler := handler.NewDocumentHandler(api)
	settingsHandler := handler.NewSettingsHandler(api)
	publicHandler := handler.NewPublicHandler(api, cache, log)

	withSession := middleware.Session(store, cfg.Session.Secret, cfg.Session.Cookie)
	optionalSession := middleware.OptionalSession(store, cfg.Session.Secret, cfg.Session.Cookie)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(rdb, api)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Public insights (cached, unauthenticated) ---
	public := e.Group("/public")
	public.GET("/categories", publicHandler.Categories)
	public.GET("/posts/featured", publicHandler.FeaturedPosts)
	public.GET("/posts", publicHandler.Posts)
	public.GET("/posts/slug/:slug", publicHandler.PostBySlug)
	public.GET("/posts/slug/:slug/comments", publicHandler.PostComments)
	public.POST("/posts/slug/:slug/comments", publicHandler.CreateComment, optionalSession)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/logout", authHandler.Logout, optionalSession)
	e.GET("/auth/session", authHandler.Current, optionalSession)

	// --- Admin area ---
	admin := e.Group("/admin", withSession, middleware.Gate(domain.AreaAdmin))
	admin.GET("", dashboardHandler.AdminOverview)

	admin.GET("/users", userHandler.List)
	admin.GET("/users/:id", userHandler.Get)
	admin.POST("/users/:id/approve", userHandler.Approve)
	admin.POST("/users/:id/reject", userHandler.Reject)

	admin.GET("/categories", categoryHandler.List)
	admin.POST("/categories", categoryHandler.Create)
	admin.GET("/categories/:id", categoryHandler.Get)
	admin.PUT("/categories/:id", categoryHandler.Update)
	admin.DELETE("/categories/:id", categoryHandler.Delete)

	admin.GET("/posts", postHandler.List)
	admin.POST("/posts", postHandler.Create)
	admin.GET("/posts/:id", postHandler.Get)
	admin.PUT("/posts/:id", postHandler.Update)
	admin.DELETE("/posts/:id", postHandler.Delete)
	admin.POST("/uploads/image", postHandler.UploadImage)

	admin.GET("/document-categories", documentHandler.ListCategories)
	admin.POST("/document-categories", documentHandler.CreateCategory)
	admin.PUT("/document-categories/:id", documentHandler.UpdateCategory)
	admin.DELETE("/document-categories/:id", documentHandler.DeleteCategory)

	admin.GET("/documents", documentHandler.List)
	admin.POST("/documents", documentHandler.Upload)
	admin.PUT("/documents/:id", documentHandler.Update)
	admin.DELETE("/documents/:id", documentHandler.Delete)

	admin.GET("/settings/mail", settingsHandler.GetMail)
	admin.PUT("/settings/mail", settingsHandler.UpdateMail)

	// --- Investor area ---
	investor := e.Group("/investor", withSession, middleware.Gate(domain.AreaInvestor))
	investor.GET("", dashboardHandler.InvestorOverview)

	// Document routes re-check the user against upstream before gating so an
	// investor approved after signing in reaches their documents without a
	// fresh login.
	documents := e.Group("/investor/documents", withSession, middleware.ReconcilingGate(domain.AreaInvestor, sessions))
	documents.GET("", documentHandler.List)
	documents.GET("/categories", documentHandler.ListCategories)

	// --- Pending area ---
	pending := e.Group("/pending", withSession, middleware.Gate(domain.AreaPending))
	pending.GET("", authHandler.Current)

	// --- Profile (any signed-in user) ---
	profile := e.Group("/profile", withSession)
	profile.GET("", profileHandler.Get)
	profile.PUT("", profileHandler.Update)
	profile.POST("", profileHandler.UpdateWithAvatar)
	profile.PUT("/password", profileHandler.ChangePassword)

	return e
}

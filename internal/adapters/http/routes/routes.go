package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"

	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/adapters/http/handlers"
	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/adapters/http/middleware"
	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/adapters/persistence/repositories"
	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/config"
	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/core/domain"
	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/core/services"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	societyRepo := repositories.NewSocietyRepository(db)
	contributionRepo := repositories.NewContributionRepository(db)
	expenseRepo := repositories.NewExpenseRepository(db)
	governanceRepo := repositories.NewGovernanceRepository(db)
	campaignRepo := repositories.NewCampaignRepository(db)
	outreachRepo := repositories.NewOutreachRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, refreshTokenRepo, cfg)
	adminService := services.NewAdminService(userRepo)
	societyService := services.NewSocietyService(societyRepo, userRepo)
	contributionService := services.NewContributionService(contributionRepo, societyRepo)
	expenseService := services.NewExpenseService(expenseRepo, societyRepo, governanceRepo)
	governanceService := services.NewGovernanceService(governanceRepo, societyRepo)
	financeService := services.NewFinanceService(db, societyRepo, contributionRepo)
	outreachService := services.NewOutreachService(campaignRepo, outreachRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	adminHandler := handlers.NewAdminHandler(adminService)
	societyHandler := handlers.NewSocietyHandler(societyService)
	contributionHandler := handlers.NewContributionHandler(contributionService, cfg)
	governanceHandler := handlers.NewGovernanceHandler(governanceService)
	financeHandler := handlers.NewFinanceHandler(financeService, expenseService)
	outreachHandler := handlers.NewOutreachHandler(outreachService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")

	// Auth routes (public + protected)
	authRoutes := apiV1.Group("/auth")
	setupAuthRoutes(authRoutes, authHandler, cfg)

	// Public site routes (no auth, cached listings, strict limits on forms)
	setupPublicRoutes(apiV1, outreachHandler)

	// Admin hierarchy routes
	adminRoutes := apiV1.Group("/admins")
	adminRoutes.Use(middleware.AuthMiddleware(cfg))
	adminRoutes.Use(middleware.NoCacheHeaders())
	setupAdminRoutes(adminRoutes, adminHandler)

	// Society routes (community rank and above manage, any admin reads)
	societyRoutes := apiV1.Group("/societies")
	societyRoutes.Use(middleware.AuthMiddleware(cfg))
	setupSocietyRoutes(societyRoutes, societyHandler, contributionHandler, governanceHandler, financeHandler)

	// Top-level item routes
	itemRoutes := apiV1.Group("")
	itemRoutes.Use(middleware.AuthMiddleware(cfg))
	setupItemRoutes(itemRoutes, contributionHandler, governanceHandler, financeHandler, outreachHandler)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	// Public routes (rate limited against brute force)
	router.Post("/register", middleware.AuthRateLimiter(), handler.Register)
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)
	router.Post("/refresh", handler.RefreshToken)
	router.Post("/logout", handler.Logout)

	// Protected routes
	router.Get("/me", middleware.AuthMiddleware(cfg), handler.Me)
	router.Post("/logout-all", middleware.AuthMiddleware(cfg), handler.LogoutAll)
}

// setupPublicRoutes configures the public site routes
func setupPublicRoutes(router fiber.Router, handler *handlers.OutreachHandler) {
	// Campaign listings are cacheable for five minutes
	router.Get("/campaigns", middleware.PublicCache(5*time.Minute), handler.ListCampaigns)
	router.Get("/campaigns/:id", middleware.PublicCache(5*time.Minute), handler.GetCampaign)

	// Public forms (3 req/min/IP against spam)
	router.Post("/campaigns/:id/donations", middleware.StrictRateLimiter(), handler.Donate)
	router.Post("/enrollments", middleware.StrictRateLimiter(), handler.Enroll)
	router.Post("/contact", middleware.StrictRateLimiter(), handler.Contact)
	router.Post("/subscribe", middleware.StrictRateLimiter(), handler.Subscribe)
}

// setupAdminRoutes configures admin hierarchy routes
func setupAdminRoutes(router fiber.Router, handler *handlers.AdminHandler) {
	router.Get("/", handler.List)
	router.Get("/:id", handler.Get)
	router.Patch("/:id/approve", handler.Approve)
	router.Patch("/:id/suspend", handler.Suspend)
}

// setupSocietyRoutes configures society-scoped routes
func setupSocietyRoutes(
	router fiber.Router,
	societyHandler *handlers.SocietyHandler,
	contributionHandler *handlers.ContributionHandler,
	governanceHandler *handlers.GovernanceHandler,
	financeHandler *handlers.FinanceHandler,
) {
	// Any authenticated admin can read
	router.Get("/", societyHandler.List)
	router.Get("/:id", societyHandler.Get)
	router.Get("/:id/blocks", societyHandler.ListBlocks)
	router.Get("/:id/members", societyHandler.ListMembers)
	router.Get("/:id/contributions", contributionHandler.List)
	router.Get("/:id/discussions", governanceHandler.ListDiscussions)
	router.Get("/:id/proposals", governanceHandler.ListProposals)
	router.Get("/:id/expenses", financeHandler.ListExpenses)
	router.Get("/:id/finance/collection", financeHandler.CollectionStats)
	router.Get("/:id/finance/summary", financeHandler.Summary)

	// Any authenticated admin can open discussions, draft proposals and
	// record contributions; verification and structure changes are gated.
	router.Post("/:id/discussions", governanceHandler.CreateDiscussion)
	router.Post("/:id/proposals", governanceHandler.CreateProposal)
	router.Post("/:id/contributions", contributionHandler.Record)

	// New societies are registered by country rank and above
	router.Post("/", middleware.RoleAtLeast(domain.RoleCountry), societyHandler.Create)

	// Community rank and above manage structure and expenses
	manageRoutes := router.Group("")
	manageRoutes.Use(middleware.CommunityOrAbove())
	manageRoutes.Post("/:id/blocks", societyHandler.CreateBlock)
	manageRoutes.Post("/:id/members", societyHandler.AddMember)
	manageRoutes.Post("/:id/expenses", financeHandler.RecordExpense)
}

// setupItemRoutes configures routes addressed by item ID rather than society
func setupItemRoutes(
	router fiber.Router,
	contributionHandler *handlers.ContributionHandler,
	governanceHandler *handlers.GovernanceHandler,
	financeHandler *handlers.FinanceHandler,
	outreachHandler *handlers.OutreachHandler,
) {
	// Contributions
	router.Get("/contributions/:id", contributionHandler.Get)
	router.Post("/contributions/:id/receipt", contributionHandler.UploadReceipt)
	router.Patch("/contributions/:id/verify", middleware.CommunityOrAbove(), contributionHandler.Verify)
	router.Patch("/contributions/:id/reject", middleware.CommunityOrAbove(), contributionHandler.Reject)

	// Governance
	router.Get("/proposals/:id", governanceHandler.GetProposal)
	router.Get("/proposals/:id/votes", governanceHandler.GetTally)
	router.Post("/proposals/:id/votes", governanceHandler.CastVote)
	router.Patch("/proposals/:id/status", middleware.CommunityOrAbove(), governanceHandler.TransitionProposal)
	router.Patch("/discussions/:id/close", middleware.CommunityOrAbove(), governanceHandler.CloseDiscussion)

	// Expenses
	router.Patch("/expenses/:id/approve", middleware.RoleAtLeast(domain.RoleCity), financeHandler.ApproveExpense)
	router.Patch("/expenses/:id/reject", middleware.RoleAtLeast(domain.RoleCity), financeHandler.RejectExpense)

	// Campaign administration and inbox
	router.Post("/campaigns", middleware.GlobalOnly(), outreachHandler.CreateCampaign)
	router.Get("/campaigns/:id/donations", outreachHandler.ListDonations)
	router.Get("/enrollments", outreachHandler.ListEnrollments)
	router.Patch("/enrollments/:id/decide", middleware.CommunityOrAbove(), outreachHandler.DecideEnrollment)
	router.Get("/messages", outreachHandler.ListMessages)
	router.Patch("/messages/:id/read", outreachHandler.MarkMessageRead)
}

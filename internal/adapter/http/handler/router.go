package handler

import (
	"nexbank/internal/adapter/http/middleware"
	redisStore "nexbank/internal/adapter/storage/redis"
	"nexbank/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc         ports.AuthService
	TransferSvc     ports.TransferService
	BillPaySvc      ports.BillPayService
	RechargeSvc     ports.RechargeService
	PreferenceSvc   ports.PreferenceService
	ReportingSvc    ports.ReportingService
	ReceiptRenderer ports.ReceiptRenderer
	Accounts        ports.AccountRepository
	Cards           ports.CardRepository
	Contacts        ports.ContactRepository
	Notifications   ports.NotificationRepository
	Catalog         ports.CatalogRepository
	TokenSvc        ports.TokenService
	RateLimitStore  *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers  []ports.HealthChecker
	Logger          zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/login", rl("auth_login"), authHandler.Login)
		auth.POST("/signup", rl("auth_signup"), authHandler.Signup)
		auth.POST("/forgot-password", rl("auth_login"), authHandler.ForgotPassword)
	}

	// --- JWT-authenticated routes ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)

	authed := v1.Group("/auth", jwtAuth)
	{
		authed.POST("/logout", authHandler.Logout)
		authed.GET("/me", authHandler.Me)
		authed.POST("/change-password", authHandler.ChangePassword)
		authed.POST("/verify-otp", authHandler.VerifyOTP)
	}

	accountHandler := NewAccountHandler(deps.Accounts, deps.ReportingSvc)
	accounts := v1.Group("/accounts", jwtAuth)
	{
		accounts.GET("", rl("dashboard"), accountHandler.List)
		accounts.GET("/summary", rl("dashboard"), accountHandler.Summary)
	}

	cardHandler := NewCardHandler(deps.Cards)
	cards := v1.Group("/cards", jwtAuth)
	{
		cards.GET("", rl("dashboard"), cardHandler.List)
		cards.POST("/:id/freeze", cardHandler.Freeze)
	}

	transactionHandler := NewTransactionHandler(deps.ReportingSvc)
	transactions := v1.Group("/transactions", jwtAuth)
	{
		transactions.GET("", rl("dashboard"), transactionHandler.List)
	}

	contactHandler := NewContactHandler(deps.Contacts)
	contacts := v1.Group("/contacts", jwtAuth)
	{
		contacts.GET("", rl("dashboard"), contactHandler.List)
	}

	notificationHandler := NewNotificationHandler(deps.Notifications)
	notifications := v1.Group("/notifications", jwtAuth)
	{
		notifications.GET("", rl("dashboard"), notificationHandler.List)
		notifications.POST("/:id/read", notificationHandler.MarkRead)
	}

	transferHandler := NewTransferHandler(deps.TransferSvc)
	v1.POST("/transfers", jwtAuth, rl("transfer"), transferHandler.Transfer)

	billPayHandler := NewBillPayHandler(deps.BillPaySvc, deps.Catalog)
	billpay := v1.Group("/billpay", jwtAuth)
	{
		billpay.GET("/providers", rl("dashboard"), billPayHandler.Providers)
		billpay.POST("/fetch", rl("billpay"), billPayHandler.Fetch)
		billpay.POST("/pay", rl("billpay"), billPayHandler.Pay)
	}

	rechargeHandler := NewRechargeHandler(deps.RechargeSvc, deps.Catalog)
	recharge := v1.Group("/recharge", jwtAuth)
	{
		recharge.GET("/operators", rl("dashboard"), rechargeHandler.Operators)
		recharge.GET("/operators/:id/packages", rl("dashboard"), rechargeHandler.Packages)
		recharge.POST("", rl("recharge"), rechargeHandler.Recharge)
	}

	preferenceHandler := NewPreferenceHandler(deps.PreferenceSvc)
	preferences := v1.Group("/preferences", jwtAuth)
	{
		preferences.GET("", preferenceHandler.Get)
		preferences.PUT("/language", preferenceHandler.SetLanguage)
		preferences.PUT("/theme", preferenceHandler.SetTheme)
		preferences.POST("/balance-visibility/toggle", preferenceHandler.ToggleBalance)
	}

	dashboardHandler := NewDashboardHandler(deps.ReportingSvc)
	dashboard := v1.Group("/dashboard", jwtAuth)
	{
		dashboard.GET("/spending", rl("dashboard"), dashboardHandler.Spending)
	}

	receiptHandler := NewReceiptHandler(deps.ReceiptRenderer)
	receipts := v1.Group("/receipts", jwtAuth)
	{
		receipts.POST("/print", receiptHandler.Print)
	}

	return r
}

package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	adminUC "hoteltec/internal/application/admin/usecases"
	authUC "hoteltec/internal/application/auth/usecases"
	catalogUC "hoteltec/internal/application/catalog/usecases"
	couponUC "hoteltec/internal/application/coupon/usecases"
	notificationUC "hoteltec/internal/application/notification/usecases"
	orderUC "hoteltec/internal/application/order/usecases"
	paymentUC "hoteltec/internal/application/payment/usecases"
	storefrontUC "hoteltec/internal/application/storefront/usecases"
	subscriptionUC "hoteltec/internal/application/subscription/usecases"
	ticketUC "hoteltec/internal/application/ticket/usecases"
	"hoteltec/internal/infrastructure/auth"
	"hoteltec/internal/infrastructure/config"
	"hoteltec/internal/infrastructure/email"
	infraPayment "hoteltec/internal/infrastructure/payment"
	"hoteltec/internal/infrastructure/ratelimit"
	"hoteltec/internal/infrastructure/repository"
	"hoteltec/internal/interfaces/http/handlers"
	"hoteltec/internal/interfaces/http/middleware"
	appDB "hoteltec/internal/shared/db"
	"hoteltec/internal/shared/logger"
	"hoteltec/internal/shared/services/markdown"
)

// Router wires the HTTP surface: repositories, use cases, handlers and
// middleware are assembled here from the raw infrastructure handles.
type Router struct {
	engine *gin.Engine
	cfg    *config.Config

	authHandler         *handlers.AuthHandler
	storefrontHandler   *handlers.StorefrontHandler
	orderHandler        *handlers.OrderHandler
	productHandler      *handlers.ProductHandler
	subscriptionHandler *handlers.SubscriptionHandler
	couponHandler       *handlers.CouponHandler
	paymentHandler      *handlers.PaymentHandler
	ticketHandler       *handlers.TicketHandler
	notificationHandler *handlers.NotificationHandler
	adminHandler        *handlers.AdminHandler

	authMiddleware       *middleware.AuthMiddleware
	superAdminMiddleware *middleware.SuperAdminMiddleware
	hotelScope           *middleware.HotelScope
	guestLimit           *middleware.GuestRateLimit

	logger logger.Interface
}

// NewRouter builds the router and everything behind it. redisClient may be
// nil; rate limiting is skipped when it is.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	userRepo := repository.NewUserRepository(db)
	hotelRepo := repository.NewHotelRepository(db)
	counterRepo := repository.NewHotelCounterRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	planRepo := repository.NewPlanRepository(db)
	couponRepo := repository.NewCouponRepository(db)
	usageRepo := repository.NewCouponUsageRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	commentRepo := repository.NewTicketCommentRepository(db)
	notifRepo := repository.NewNotificationRepository(db)

	txManager := appDB.NewTransactionManager(db)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	superAdmin := auth.NewSuperAdminVerifier(&cfg.Auth.SuperAdmin)
	webhookVerifier := infraPayment.NewWebhookVerifier(cfg.Payment.WebhookSecret)
	mailer := email.NewSMTPSender(&cfg.Email, log)
	markdownService := markdown.NewService()

	signupUC := authUC.NewSignupUseCase(userRepo, hotelRepo, subscriptionRepo, planRepo, hasher, jwtService, txManager, log)
	loginUC := authUC.NewLoginUseCase(userRepo, hasher, jwtService, log)
	superAdminLoginUC := authUC.NewSuperAdminLoginUseCase(superAdmin, log)

	resolveHotelUC := storefrontUC.NewResolveHotelUseCase(hotelRepo, productRepo, txManager, log)

	createOrderUC := orderUC.NewCreateOrderUseCase(orderRepo, productRepo, hotelRepo, counterRepo, userRepo, notifRepo, mailer, txManager, log)
	listOrdersUC := orderUC.NewListOrdersUseCase(orderRepo, log)
	getOrderUC := orderUC.NewGetOrderUseCase(orderRepo)
	updateOrderUC := orderUC.NewUpdateOrderStatusUseCase(orderRepo, userRepo, notifRepo, log)

	createProductUC := catalogUC.NewCreateProductUseCase(productRepo, subscriptionRepo, planRepo, log)
	listProductsUC := catalogUC.NewListProductsUseCase(productRepo)
	updateProductUC := catalogUC.NewUpdateProductUseCase(productRepo, log)
	deleteProductUC := catalogUC.NewDeleteProductUseCase(productRepo, log)

	createSubscriptionUC := subscriptionUC.NewCreateSubscriptionUseCase(
		subscriptionRepo, planRepo, couponRepo, usageRepo, paymentRepo,
		userRepo, txManager, cfg.Payment.IntentExpMinutes, log,
	)
	listPlansUC := subscriptionUC.NewListPlansUseCase(planRepo)
	listSubscriptionsUC := subscriptionUC.NewListSubscriptionsUseCase(subscriptionRepo)
	getStatusUC := subscriptionUC.NewGetSubscriptionStatusUseCase(subscriptionRepo, planRepo, productRepo, notifRepo, log)
	updateSubscriptionUC := subscriptionUC.NewUpdateSubscriptionUseCase(subscriptionRepo, log)
	cancelSubscriptionUC := subscriptionUC.NewCancelSubscriptionUseCase(subscriptionRepo, userRepo, txManager, log)
	confirmSubscriptionUC := subscriptionUC.NewConfirmSubscriptionUseCase(subscriptionRepo, planRepo, paymentRepo, userRepo, couponRepo, usageRepo, notifRepo, txManager, log)

	createCouponUC := couponUC.NewCreateCouponUseCase(couponRepo, log)
	listCouponsUC := couponUC.NewListCouponsUseCase(couponRepo)
	updateCouponUC := couponUC.NewUpdateCouponUseCase(couponRepo, log)
	deleteCouponUC := couponUC.NewDeleteCouponUseCase(couponRepo, log)
	validateCouponUC := couponUC.NewValidateCouponUseCase(couponRepo, log)

	createIntentUC := paymentUC.NewCreateIntentUseCase(paymentRepo, cfg.Payment.IntentExpMinutes, log)
	handleWebhookUC := paymentUC.NewHandleWebhookUseCase(confirmSubscriptionUC, subscriptionRepo, paymentRepo, txManager, log)
	rollbackIntentUC := paymentUC.NewRollbackIntentUseCase(paymentRepo, log)

	createTicketUC := ticketUC.NewCreateTicketUseCase(ticketRepo, log)
	listTicketsUC := ticketUC.NewListTicketsUseCase(ticketRepo)
	getTicketUC := ticketUC.NewGetTicketUseCase(ticketRepo, commentRepo)
	addCommentUC := ticketUC.NewAddCommentUseCase(ticketRepo, commentRepo, userRepo, notifRepo, markdownService, mailer, log)
	updateTicketStatusUC := ticketUC.NewUpdateTicketStatusUseCase(ticketRepo, log)

	listNotificationsUC := notificationUC.NewListNotificationsUseCase(notifRepo)
	markReadUC := notificationUC.NewMarkNotificationReadUseCase(notifRepo)
	markAllReadUC := notificationUC.NewMarkAllReadUseCase(notifRepo, log)

	getAnalyticsUC := adminUC.NewGetAnalyticsUseCase(hotelRepo, userRepo, subscriptionRepo, ticketRepo, orderRepo, log)
	getEarningsUC := adminUC.NewGetEarningsUseCase(orderRepo)
	listHotelsUC := adminUC.NewListHotelsUseCase(hotelRepo)
	listUsersUC := adminUC.NewListUsersUseCase(userRepo)
	setMaintenanceUC := adminUC.NewSetMaintenanceUseCase(hotelRepo, log)
	deleteHotelUC := adminUC.NewDeleteHotelUseCase(hotelRepo, userRepo, productRepo, orderRepo, subscriptionRepo, txManager, log)
	healthCheckUC := adminUC.NewHealthCheckUseCase(db, redisClient)
	runMaintenanceUC := adminUC.NewRunMaintenanceUseCase(subscriptionRepo, notifRepo, log)
	cleanupAccountUC := adminUC.NewCleanupAccountUseCase(userRepo, deleteHotelUC, log)

	var guestLimit *middleware.GuestRateLimit
	if cfg.RateLimit.Enabled && redisClient != nil {
		limiter := ratelimit.NewRedisRateLimiter(redisClient, log)
		guestLimit = middleware.NewGuestRateLimit(limiter, cfg.RateLimit.RequestsPerMinute, 60, log)
	}

	return &Router{
		engine: engine,
		cfg:    cfg,

		authHandler:         handlers.NewAuthHandler(signupUC, loginUC, superAdminLoginUC),
		storefrontHandler:   handlers.NewStorefrontHandler(resolveHotelUC),
		orderHandler:        handlers.NewOrderHandler(createOrderUC, listOrdersUC, getOrderUC, updateOrderUC, hotelRepo),
		productHandler:      handlers.NewProductHandler(createProductUC, listProductsUC, updateProductUC, deleteProductUC),
		subscriptionHandler: handlers.NewSubscriptionHandler(createSubscriptionUC, listPlansUC, listSubscriptionsUC, getStatusUC, updateSubscriptionUC, cancelSubscriptionUC),
		couponHandler:       handlers.NewCouponHandler(createCouponUC, listCouponsUC, updateCouponUC, deleteCouponUC, validateCouponUC),
		paymentHandler:      handlers.NewPaymentHandler(createIntentUC, handleWebhookUC, rollbackIntentUC, confirmSubscriptionUC, webhookVerifier, log),
		ticketHandler:       handlers.NewTicketHandler(createTicketUC, listTicketsUC, getTicketUC, addCommentUC, updateTicketStatusUC),
		notificationHandler: handlers.NewNotificationHandler(listNotificationsUC, markReadUC, markAllReadUC),
		adminHandler:        handlers.NewAdminHandler(getAnalyticsUC, getEarningsUC, listHotelsUC, listUsersUC, setMaintenanceUC, deleteHotelUC, healthCheckUC, runMaintenanceUC, cleanupAccountUC),

		authMiddleware:       middleware.NewAuthMiddleware(jwtService, log),
		superAdminMiddleware: middleware.NewSuperAdminMiddleware(superAdmin, log),
		hotelScope:           middleware.NewHotelScope(userRepo, log),
		guestLimit:           guestLimit,

		logger: log,
	}
}

// SetupRoutes configures all HTTP routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestLogger(r.logger))
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", r.adminHandler.Health)

	api := r.engine.Group("/api")

	guestGuard := func() gin.HandlerFunc {
		if r.guestLimit != nil {
			return r.guestLimit.Limit()
		}
		return func(c *gin.Context) { c.Next() }
	}

	// Guest surface. No auth; rate limited per client IP when redis is up.
	api.GET("/hotels/:slug/products", guestGuard(), r.storefrontHandler.GetStorefront)
	api.POST("/orders", guestGuard(), r.orderHandler.Create)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/super-admin", r.authHandler.SuperAdminLogin)
		authGroup.POST("/cleanup", r.superAdminMiddleware.RequireSuperAdmin(), r.adminHandler.CleanupAccount)
	}

	// Coupon management lives under /api/coupons; only validation is open to
	// checkout clients, the rest is super-admin.
	api.POST("/coupons/validate", r.couponHandler.Validate)
	couponAdmin := r.superAdminMiddleware.RequireSuperAdmin()
	api.POST("/coupons", couponAdmin, r.couponHandler.Create)
	api.GET("/coupons", couponAdmin, r.couponHandler.List)
	api.PUT("/coupons/:id", couponAdmin, r.couponHandler.Update)
	api.DELETE("/coupons/:id", couponAdmin, r.couponHandler.Delete)
	api.GET("/subscriptions/plans", r.subscriptionHandler.ListPlans)
	api.POST("/whop/webhook", r.paymentHandler.Webhook)

	authed := api.Group("")
	authed.Use(r.authMiddleware.RequireAuth())
	{
		authed.GET("/notifications", r.notificationHandler.List)
		authed.PUT("/notifications/:id/read", r.notificationHandler.MarkRead)
		authed.PUT("/notifications/read-all", r.notificationHandler.MarkAllRead)

		authed.POST("/tickets", r.ticketHandler.Create)
		authed.GET("/tickets", r.ticketHandler.List)
		authed.GET("/tickets/:id", r.ticketHandler.Get)
		authed.POST("/tickets/:id/comments", r.ticketHandler.AddComment)
		authed.PATCH("/tickets/:id/status", r.ticketHandler.UpdateStatus)

		authed.POST("/payments/confirm", r.paymentHandler.Confirm)
		authed.POST("/payments/rollback", r.paymentHandler.Rollback)
	}

	scoped := api.Group("")
	scoped.Use(r.authMiddleware.RequireAuth(), r.hotelScope.Resolve())
	{
		scoped.POST("/products", r.productHandler.Create)
		scoped.GET("/products", r.productHandler.List)
		scoped.PUT("/products/:id", r.productHandler.Update)
		scoped.DELETE("/products/:id", r.productHandler.Delete)

		scoped.GET("/orders", r.orderHandler.List)
		scoped.GET("/orders/:id", r.orderHandler.Get)
		scoped.PUT("/orders/:id", r.orderHandler.UpdateStatus)

		scoped.POST("/subscriptions", r.subscriptionHandler.Create)
		scoped.GET("/subscriptions", r.subscriptionHandler.List)
		scoped.GET("/subscriptions/status", r.subscriptionHandler.Status)
		scoped.PUT("/subscriptions/:id", r.subscriptionHandler.Update)
		scoped.DELETE("/subscriptions/:id", r.subscriptionHandler.Cancel)

		scoped.POST("/payments/create-payment-intent", r.paymentHandler.CreateIntent)
	}

	admin := api.Group("/admin")
	admin.Use(r.superAdminMiddleware.RequireSuperAdmin())
	{
		admin.GET("/analytics", r.adminHandler.Analytics)
		admin.GET("/earnings", r.adminHandler.Earnings)
		admin.GET("/health", r.adminHandler.Health)
		admin.POST("/maintenance", r.adminHandler.RunMaintenance)

		admin.GET("/hotels", r.adminHandler.ListHotels)
		admin.POST("/hotels/:id/maintenance", r.adminHandler.SetMaintenance)
		admin.DELETE("/hotels/:id", r.adminHandler.DeleteHotel)

		admin.GET("/users", r.adminHandler.ListUsers)

		admin.GET("/tickets", r.ticketHandler.AdminList)
		admin.GET("/tickets/:id", r.ticketHandler.AdminGet)
		admin.POST("/tickets/:id/comments", r.ticketHandler.AdminAddComment)
		admin.PATCH("/tickets/:id/status", r.ticketHandler.AdminUpdateStatus)
	}
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}

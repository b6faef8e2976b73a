package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"
	HeaderWhopSignature = "X-Whop-Signature"

	// Context keys
	ContextKeyUserID     = "user_id"
	ContextKeyUserRole   = "user_role"
	ContextKeyHotelID    = "hotel_id"
	ContextKeySuperAdmin = "super_admin"

	// User roles
	RoleHotelOwner = "hotel_owner"
	RoleStaff      = "staff"
	RoleSuperAdmin = "super_admin"

	// Database table names
	TableUsers             = "users"
	TableHotels            = "hotels"
	TableHotelCounters     = "hotel_counters"
	TableProducts          = "products"
	TableOrders            = "orders"
	TablePlans             = "plans"
	TableSubscriptions     = "subscriptions"
	TablePayments          = "payments"
	TableCoupons           = "coupons"
	TableCouponUsages      = "coupon_usages"
	TableTickets           = "tickets"
	TableTicketComments    = "ticket_comments"
	TableTicketAttachments = "ticket_attachments"
	TableNotifications     = "notifications"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
	ErrMsgConflict            = "Resource already exists"
)

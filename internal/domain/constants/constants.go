package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Payment providers
const (
	PaymentProviderManual   = "manual"
	PaymentProviderRazorpay = "razorpay"
)

// Domain event types published by the storefront and consumed by the order worker.
const (
	EventOrderPlaced      = "order.placed"
	EventOrderPaid        = "order.paid"
	EventOrderStatus      = "order.status_changed"
	EventContactSubmitted = "contact.submitted"
)

// FCM topics the order worker notifies.
const (
	TopicAdminOrders  = "admin-orders"
	TopicAdminStock   = "admin-stock"
	TopicAdminContact = "admin-contact"
)

// HeaderIdempotencyKey deduplicates checkout submissions.
const HeaderIdempotencyKey = "Idempotency-Key"

package constants

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Realtime event names
const (
	EventNewOrder    = "new-order"
	EventOrderUpdate = "order-update"
)

// Roles carried in access tokens
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// Deployment environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

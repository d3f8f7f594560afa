// Package constants holds names shared across configuration and delivery layers.
package constants

const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Event transport providers accepted in pubsub.provider.
const (
	PubSubProviderInline = "inline"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Echo context keys set by the auth middleware.
const (
	ContextKeyAccountID = "accountID"
	ContextKeyRoles     = "roles"
)

// RoleRetailer is required for routes that act on behalf of a storefront.
const RoleRetailer = "retailer"

// Package constants holds string identifiers shared across layers.
package constants

// Deployment environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Reminder dispatchers
const (
	DispatcherLog    = "log"
	DispatcherPush   = "push"
	DispatcherPubSub = "pubsub"
)

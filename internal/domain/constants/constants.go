// Package constants holds shared domain-level constant values.
package constants

// Pub/Sub provider names accepted in configuration.
const (
	// PubSubProviderLocal posts events to a local HTTP endpoint for development.
	PubSubProviderLocal = "local"

	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

// Environment names used in configuration.
const (
	// EnvDevelop marks a local development deployment.
	EnvDevelop = "develop"

	// EnvProduction marks a production deployment.
	EnvProduction = "production"
)

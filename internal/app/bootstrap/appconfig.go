// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (HTTP ports, TLS,
// logging level, request limits). AppConfig is everything specific to the
// underwriting API: where the document store lives and which dashboard
// origins may call it.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// CORSOrigins is a comma-separated list of allowed origins for the
	// dashboard frontend. "*" allows any origin.
	CORSOrigins string
}

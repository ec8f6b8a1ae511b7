package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"
	DevEnvironment  = "dev"

	// Service name reported in logs and traces
	ServiceName = "chokka-api"

	// Currencies
	BDTCurrency = "BDT"

	// Auth
	AdminSubject   = "admin"
	AuthTypeJWT    = "jwt"
	AdminClaimsKey = "adminClaims"
)

// Order event types published after checkout
const (
	EventOrderCreated = "order.created"
)

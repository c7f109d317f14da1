package model

import "time"

// Shared defaults used by the TUI and the web server.
const (
	DefaultBaseURL        = "https://api.openbrewerydb.org/v1/breweries"
	DefaultCity           = "los_angeles"
	DefaultState          = "california"
	DefaultPerPage        = 50
	DefaultPlace          = "Los Angeles"
	DefaultRequestTimeout = time.Duration(0) // no timeout
	DefaultServeAddr      = "127.0.0.1:3000"
	DefaultCacheTTL       = time.Duration(0) // fetch on every page view
	DefaultLogLevel       = "info"
)

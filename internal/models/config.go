package models

import "time"

// Config represents the application configuration
type Config struct {
	Account  AccountStoreConfig
	Login    LoginConfig
	Resolver ResolverConfig
	Demo     DemoStoreConfig
	Payment  PaymentFlowConfig
	Database DatabaseConfig
	Server   ServerConfig
}

// AccountStoreConfig holds local account store settings
type AccountStoreConfig struct {
	Path string
}

// LoginConfig holds the demo test credentials and the optional seed
// account file.
type LoginConfig struct {
	Email    string
	Password string
	SeedFile string
}

// ResolverConfig carries the environment signals the payment resolver
// decides on. It is filled by the config package; the resolver itself
// never reads the environment.
type ResolverConfig struct {
	DemoMode bool   // explicit demo-mode flag
	APIURL   string // explicit backend base URL
	DevHost  string // active development host, if observable
	Platform string // "android", "ios" or "web"
}

// APIResolution is the resolver's verdict: which mode payment
// operations run in, and against which base URL.
type APIResolution struct {
	Demo    bool
	BaseURL string
}

// DemoStoreConfig holds demo payment store settings
type DemoStoreConfig struct {
	StateFile string // empty means memory-only
}

// PaymentFlowConfig holds bill payment flow settings
type PaymentFlowConfig struct {
	ProcessingDelay time.Duration // simulated processing time before confirm
}

// DatabaseConfig holds payment backend database settings
type DatabaseConfig struct {
	Path            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	PingTimeout     time.Duration
}

// ServerConfig holds payment backend HTTP settings
type ServerConfig struct {
	Port            int
	ShutdownTimeout time.Duration
}

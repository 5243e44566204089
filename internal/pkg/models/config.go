package models

// Config represents application configuration
type Config struct {
	App         AppConfig
	Server      ServerConfig
	AuthBackend AuthBackendConfig
	Redis       RedisConfig
	NATS        NATSConfig
	Session     SessionConfig
	NewRelic    NewRelicConfig
	Logger      LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// AuthBackendConfig points at the external authentication API
type AuthBackendConfig struct {
	URL     string
	Timeout int // in seconds
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// SessionConfig controls the browser-session cookie and store TTL
type SessionConfig struct {
	CookieName string
	Secret     string
	TTL        int // in minutes, refreshed on every store write
}

// NewRelicConfig contains New Relic configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logging configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

package models

// Config holds all configuration for the application
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Redis    RedisConfig
	Database DatabaseConfig
	NSQ      NSQConfig
	JWT      JWTConfig
	Match    MatchConfig
	Logger   LoggerConfig
}

// AppConfig holds application-level configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// DatabaseConfig holds PostgreSQL connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// NSQConfig holds NSQ connection configuration
type NSQConfig struct {
	Address          string
	LookupdAddresses []string
	Channel          string
}

// JWTConfig holds JWT validation configuration.
// Tokens are issued by the account service, which is not part of this
// repository; an empty secret disables bearer auth on the public surface.
type JWTConfig struct {
	Secret     string
	Issuer     string
	Expiration int
}

// MatchConfig holds dispatch and route-geometry tuning
type MatchConfig struct {
	StationRadiusM   float64 // default radius for nearby-station queries
	RouteSampleM     float64 // spacing between corridor sample points
	RouteCorridorM   float64 // corridor half-width around each sample point
	GeohashPrecision uint    // cell precision for location change detection
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

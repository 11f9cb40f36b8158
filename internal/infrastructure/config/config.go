package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string          `mapstructure:"environment"`
	Server      ServerConfig    `mapstructure:"server"`
	Database    DatabaseConfig  `mapstructure:"database"`
	Logger      LoggerConfig    `mapstructure:"logger"`
	Gateway     GatewayConfig   `mapstructure:"gateway"`
	Reconcile   ReconcileConfig `mapstructure:"reconcile"`
	CORS        CORSConfig      `mapstructure:"cors"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`
	PublicURL         string        `mapstructure:"publicUrl"` // callback base URL announced to the gateway
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"`
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// GatewayConfig contains SwiftWallet gateway settings
type GatewayConfig struct {
	PaymentURL string        `mapstructure:"paymentUrl"` // loan fee push endpoint
	WalletURL  string        `mapstructure:"walletUrl"`  // deposit push endpoint
	APIKey     string        `mapstructure:"apiKey"`
	ChannelID  string        `mapstructure:"channelId"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

// ReconcileConfig contains callback reconciliation settings
type ReconcileConfig struct {
	LookupAttempts int           `mapstructure:"lookupAttempts"`
	LookupDelay    time.Duration `mapstructure:"lookupDelay"`
	SweepOnStartup bool          `mapstructure:"sweepOnStartup"`
}

// CORSConfig restricts browsers to the configured frontend origin
type CORSConfig struct {
	AllowedOrigin string `mapstructure:"allowedOrigin"`
}

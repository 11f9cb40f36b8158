package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"./configs/.env",
	"../.env",
	"../../.env",
}

// LoadConfig loads the configuration file for the current environment,
// with BS_-prefixed environment variables overriding file values
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix("BS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	return &config, nil
}

// Validate ensures all required configuration values are present
func (c *Config) Validate() error {
	var missing []string

	if c.Server.Port == 0 {
		missing = append(missing, "server.port")
	}
	if c.Server.PublicURL == "" {
		missing = append(missing, "server.publicUrl (or BS_SERVER_PUBLICURL)")
	}
	if c.Database.Host == "" {
		missing = append(missing, "database.host (or BS_DATABASE_HOST)")
	}
	if c.Database.Username == "" {
		missing = append(missing, "database.username (or BS_DATABASE_USERNAME)")
	}
	if c.Database.Database == "" {
		missing = append(missing, "database.database (or BS_DATABASE_DATABASE)")
	}
	if c.Gateway.APIKey == "" {
		missing = append(missing, "gateway.apiKey (or SWIFTWALLET_API_KEY)")
	}
	if c.Gateway.PaymentURL == "" {
		missing = append(missing, "gateway.paymentUrl")
	}
	if c.Gateway.WalletURL == "" {
		missing = append(missing, "gateway.walletUrl")
	}
	if c.Gateway.Timeout <= 0 {
		missing = append(missing, "gateway.timeout")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configurations: %v", missing)
	}

	if c.Environment != Development && c.Environment != Production && c.Environment != Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			c.Environment, Development, Production, Test)
	}

	return nil
}

func getEnvironment() string {
	env := os.Getenv("BS_ENVIRONMENT")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

func loadDotEnvFile() error {
	var lastErr error
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err != nil {
				lastErr = err
				continue
			}
			return nil
		}
	}
	if lastErr != nil {
		return lastErr
	}
	return fmt.Errorf("no .env file found")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.readTimeout", 15*time.Second)
	v.SetDefault("server.writeTimeout", 30*time.Second)
	v.SetDefault("server.idleTimeout", 60*time.Second)
	v.SetDefault("server.readHeaderTimeout", 5*time.Second)
	v.SetDefault("server.shutdownTimeout", 15*time.Second)

	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 5*time.Minute)
	v.SetDefault("database.connMaxIdleTime", 5*time.Minute)
	v.SetDefault("database.queryTimeout", 10*time.Second)
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 5*time.Second)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")

	v.SetDefault("gateway.paymentUrl", "https://swiftwallet.co.ke/pay-app-v2/payments.php")
	v.SetDefault("gateway.walletUrl", "https://swiftwallet.co.ke/pay-app/v3/wallet/")
	v.SetDefault("gateway.channelId", "000205")
	v.SetDefault("gateway.timeout", 20*time.Second)

	v.SetDefault("reconcile.lookupAttempts", 3)
	v.SetDefault("reconcile.lookupDelay", 150*time.Millisecond)
	v.SetDefault("reconcile.sweepOnStartup", true)

	v.SetDefault("cors.allowedOrigin", "*")
}

// processEnvOverrides maps sensitive values from their conventional
// environment variable names. SWIFTWALLET_API_KEY is the name the
// gateway's own documentation uses, so it is honored directly.
func processEnvOverrides(v *viper.Viper) {
	if key := os.Getenv("SWIFTWALLET_API_KEY"); key != "" {
		v.Set("gateway.apiKey", key)
	}
	if pw := os.Getenv("BS_DATABASE_PASSWORD"); pw != "" {
		v.Set("database.password", pw)
	}
	if origin := os.Getenv("FRONTEND_ORIGIN"); origin != "" {
		v.Set("cors.allowedOrigin", origin)
	}
	if url := os.Getenv("BACKEND_PUBLIC_URL"); url != "" {
		v.Set("server.publicUrl", url)
	}
}

package utils

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

var (
	EnvPath string = "."
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	Env                  string        `mapstructure:"ENV"`
	ServerPort           int           `mapstructure:"SERVER_PORT"`
	SigningKey           string        `mapstructure:"SIGNING_KEY"`
	DBUsername           string        `mapstructure:"DB_USERNAME"`
	DBPassword           string        `mapstructure:"DB_PASSWORD"`
	DBHost               string        `mapstructure:"DB_HOST"`
	DBPort               string        `mapstructure:"DB_PORT"`
	DBDriver             string        `mapstructure:"DB_DRIVER"`
	DBName               string        `mapstructure:"DB_NAME"`
	SSLMode              string        `mapstructure:"SSLMODE"`
	MigrationsPath       string        `mapstructure:"MIGRATIONS_PATH"`
	Papertrail           string        `mapstructure:"PAPERTRAIL"`
	PapertrailAppName    string        `mapstructure:"PAPERTRAIL_APP_NAME"`
	RedisHost            string        `mapstructure:"REDIS_HOST"`
	RedisPort            string        `mapstructure:"REDIS_PORT"`
	RedisPassword        string        `mapstructure:"REDIS_PASSWORD"`
	Currency             string        `mapstructure:"CURRENCY"`
	AdvanceLimitPercent  int64         `mapstructure:"ADVANCE_LIMIT_PERCENT"`
	FeatureCacheTTL      time.Duration `mapstructure:"FEATURE_CACHE_TTL"`
	WebhookTimeout       time.Duration `mapstructure:"WEBHOOK_TIMEOUT"`
	WebhookMaxAttempts   int32         `mapstructure:"WEBHOOK_MAX_ATTEMPTS"`
	WebhookSweepInterval time.Duration `mapstructure:"WEBHOOK_SWEEP_INTERVAL"`
	TxMaxRetries         int           `mapstructure:"TX_MAX_RETRIES"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("SSLMODE", "disable")
	v.SetDefault("MIGRATIONS_PATH", "file://db/migrations")
	v.SetDefault("CURRENCY", "INR")
	v.SetDefault("ADVANCE_LIMIT_PERCENT", 50)
	v.SetDefault("FEATURE_CACHE_TTL", 30*time.Second)
	v.SetDefault("WEBHOOK_TIMEOUT", 10*time.Second)
	v.SetDefault("WEBHOOK_MAX_ATTEMPTS", 5)
	v.SetDefault("WEBHOOK_SWEEP_INTERVAL", time.Minute)
	v.SetDefault("TX_MAX_RETRIES", 3)
}

func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = "."
	}

	// Create a new Viper instance to avoid global state
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("")
	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		// Environment variables alone are enough to boot
		log.Printf("Warning: Unable to read config file: %v", err)
	}

	// AutomaticEnv only answers Get, so keys that exist solely in the
	// environment have to be bound before Unmarshal can see them.
	for _, key := range configKeys {
		_ = v.BindEnv(key)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

var configKeys = []string{
	"ENV", "SERVER_PORT", "SIGNING_KEY",
	"DB_USERNAME", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_DRIVER", "DB_NAME", "SSLMODE", "MIGRATIONS_PATH",
	"PAPERTRAIL", "PAPERTRAIL_APP_NAME",
	"REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD",
	"CURRENCY", "ADVANCE_LIMIT_PERCENT", "FEATURE_CACHE_TTL",
	"WEBHOOK_TIMEOUT", "WEBHOOK_MAX_ATTEMPTS", "WEBHOOK_SWEEP_INTERVAL", "TX_MAX_RETRIES",
}

func validateConfig(config *Config) error {
	if config.ServerPort == 0 {
		return fmt.Errorf("server port must be specified")
	}

	if config.SigningKey == "" {
		return fmt.Errorf("signing key must be provided")
	}

	switch config.DBDriver {
	case DriverMemory:
	case DriverPostgres:
		if config.DBUsername == "" || config.DBPassword == "" {
			return fmt.Errorf("database credentials must be provided")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", config.DBDriver)
	}

	if config.AdvanceLimitPercent < 0 || config.AdvanceLimitPercent > 100 {
		return fmt.Errorf("ADVANCE_LIMIT_PERCENT must be between 0 and 100")
	}

	return nil
}

// Redact masks secrets for logging.
func (c *Config) Redact() Config {
	redacted := *c
	redacted.SigningKey = "****"
	redacted.DBPassword = "****"
	redacted.RedisPassword = "****"
	return redacted
}

func (c *Config) RedisEnabled() bool {
	return c.RedisHost != ""
}

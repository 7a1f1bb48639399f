package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Supported DB_DRIVER values.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMongo    = "mongodb"
)

// Config is read once at startup and never mutated afterwards.
type Config struct {
	Port      string `env:"PORT" envDefault:"5000"`
	GinMode   string `env:"GIN_MODE"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	// TokenSecret signs and verifies access tokens.
	TokenSecret string `env:"ACCESS_TOKEN_SECRET,required,notEmpty"`

	DBDriver string `env:"DB_DRIVER" envDefault:"sqlite"`
	DBDSN    string `env:"DB_DSN" envDefault:"bistro.db"`
	DBUser   string `env:"DB_USER"`
	DBPass   string `env:"DB_PASS"`
	DBHost   string `env:"DB_HOST"`
	DBName   string `env:"DB_NAME" envDefault:"bistroRestaurantDB"`
	MongoURI string `env:"MONGO_URI"`

	StripeSecretKey string `env:"STRIPE_SECRET_KEY"`
	StripeAPIURL    string `env:"STRIPE_API_URL"`
	Currency        string `env:"PAYMENT_CURRENCY" envDefault:"usd"`

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`
}

// Load reads an optional .env file, then parses the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("reading .env: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.DBDriver = strings.ToLower(cfg.DBDriver)
	switch cfg.DBDriver {
	case DriverSQLite, DriverPostgres:
	case DriverMongo:
		if cfg.MongoURI == "" && (cfg.DBUser == "" || cfg.DBPass == "" || cfg.DBHost == "") {
			return nil, errors.New("DB_DRIVER=mongodb needs MONGO_URI or DB_USER, DB_PASS and DB_HOST")
		}
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	if cfg.StripeSecretKey == "" {
		logrus.Warn("STRIPE_SECRET_KEY is not set; payment intents will be rejected by the gateway")
	}

	return cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}

// MongoConnString builds the Atlas SRV connection string from the
// credential parts unless MONGO_URI overrides it.
func (c Config) MongoConnString() string {
	if c.MongoURI != "" {
		return c.MongoURI
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority",
		url.QueryEscape(c.DBUser), url.QueryEscape(c.DBPass), c.DBHost)
}

// SetupLogger configures the global logrus logger from LOG_LEVEL and LOG_FORMAT.
func SetupLogger(c Config) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		logrus.WithError(err).Warnf("unknown LOG_LEVEL %q, using info", c.LogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if strings.EqualFold(c.LogFormat, "json") {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		return
	}
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

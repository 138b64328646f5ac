package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, backend URL, etc.), security settings
// - default: Values common across all environments (timeouts, log format, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	Backend BackendConfig
	Store   StoreConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// BackendConfig points at the booking backend whose cancellation support
// varies per deployment. RequestTimeout bounds every single strategy call.
type BackendConfig struct {
	BaseURL        string        `envconfig:"BACKEND_BASE_URL" required:"true"`
	RequestTimeout time.Duration `envconfig:"BACKEND_REQUEST_TIMEOUT" default:"10s"`
}

type StoreConfig struct {
	Dir      string `envconfig:"STORE_DIR" default:"./data"`
	FileName string `envconfig:"STORE_FILE" default:"cancellations.db"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
}

func (c *StoreConfig) DBPath() string {
	return filepath.Join(c.Dir, c.FileName)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Backend: BackendConfig{
			BaseURL:        "http://localhost:18080",
			RequestTimeout: 2 * time.Second,
		},
		Store: StoreConfig{
			Dir:      "./testdata",
			FileName: "cancellations_test.db",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		JWT: JWTConfig{
			Secret: "test-secret",
		},
	}
}

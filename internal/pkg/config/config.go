package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, backend URL, etc.), security settings
// - default: Values common across all environments (thresholds, timeouts, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	Backend BackendConfig
	QR      QRConfig
	Nearby  NearbyConfig
	Cache   CacheConfig
	Redis   RedisConfig
	Auth    AuthConfig
	Cookie  CookieConfig
	CORS    CORSConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type BackendConfig struct {
	BaseURL string        `envconfig:"BACKEND_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"BACKEND_TIMEOUT" default:"10s"`
}

type QRConfig struct {
	RendererBaseURL string        `envconfig:"QR_RENDERER_BASE_URL" default:"https://api.qrserver.com/v1/create-qr-code/"`
	RendererSize    int           `envconfig:"QR_RENDERER_SIZE" default:"300"`
	RefreshLead     time.Duration `envconfig:"QR_REFRESH_LEAD" default:"60s"`
}

type NearbyConfig struct {
	OfferMaxKm    float64 `envconfig:"NEARBY_OFFER_MAX_KM" default:"10"`
	StoreMaxKm    float64 `envconfig:"NEARBY_STORE_MAX_KM" default:"25"`
	SearchRadius  float64 `envconfig:"NEARBY_SEARCH_RADIUS_KM" default:"25"`
	SearchPageMax int     `envconfig:"NEARBY_SEARCH_PAGE_SIZE" default:"50"`
}

type CacheConfig struct {
	Driver string        `envconfig:"CACHE_DRIVER" default:"memory"`
	TTL    time.Duration `envconfig:"CACHE_TTL" default:"2m"`
	Size   int           `envconfig:"CACHE_SIZE" default:"1024"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// AuthConfig.JWTSecret is optional: without it access token claims are decoded but not verified,
// the backend stays the authority on token validity.
type AuthConfig struct {
	JWTSecret string `envconfig:"JWT_SECRET" default:""`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAMESITE" default:"Lax"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:8081,http://localhost:19006"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

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
			BaseURL: "http://localhost:5000",
			Timeout: 2 * time.Second,
		},
		QR: QRConfig{
			RendererBaseURL: "https://api.qrserver.com/v1/create-qr-code/",
			RendererSize:    300,
			RefreshLead:     60 * time.Second,
		},
		Nearby: NearbyConfig{
			OfferMaxKm:    10,
			StoreMaxKm:    25,
			SearchRadius:  25,
			SearchPageMax: 50,
		},
		Cache: CacheConfig{
			Driver: "memory",
			TTL:    time.Minute,
			Size:   128,
		},
		Cookie: CookieConfig{
			Secure:   false,
			SameSite: "Lax",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
	}
}

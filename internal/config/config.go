package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database and cache
// connections, authentication, catalog behaviour and graceful shutdown.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level (debug, info, warn, error)
	LogLevel string `env:"LOG_LEVEL" env-default:"" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins lists the origins allowed by CORS. "*" allows any origin.
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-default:"*" env-separator:"," yaml:"allowedOrigins"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"unesco_heritage_sites" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Redis configures the optional choices cache. Caching is disabled when URL is empty.
	Redis struct {
		URL          string        `env:"REDIS_URL" env-default:"" yaml:"url"`
		PoolSize     int           `env:"REDIS_POOL_SIZE" env-default:"10" yaml:"poolSize"`
		MinIdleConns int           `env:"REDIS_MIN_IDLE_CONNS" env-default:"1" yaml:"minIdleConns"`
		DialTimeout  time.Duration `env:"REDIS_DIAL_TIMEOUT" env-default:"5s" yaml:"dialTimeout"`
		ReadTimeout  time.Duration `env:"REDIS_READ_TIMEOUT" env-default:"3s" yaml:"readTimeout"`
		WriteTimeout time.Duration `env:"REDIS_WRITE_TIMEOUT" env-default:"3s" yaml:"writeTimeout"`
	} `yaml:"redis"`

	// Auth configures the Google OAuth2 login flow and the session cookie
	Auth struct {
		// GoogleClientID is the OAuth2 client ID issued by Google
		GoogleClientID string `env:"AUTH_GOOGLE_CLIENT_ID" env-default:"" yaml:"googleClientId"`
		// GoogleClientSecret is the OAuth2 client secret issued by Google
		GoogleClientSecret string `env:"AUTH_GOOGLE_CLIENT_SECRET" env-default:"" yaml:"googleClientSecret"`
		// RedirectURL is the absolute URL of the OAuth2 callback
		RedirectURL string `env:"AUTH_REDIRECT_URL" env-default:"http://localhost:8080/auth/complete/google-oauth2/" yaml:"redirectUrl"` //nolint: lll
		// LoginURL is where unauthenticated visitors are redirected
		LoginURL string `env:"AUTH_LOGIN_URL" env-default:"/auth/login/google-oauth2/" yaml:"loginUrl"`
		// LoginRedirectURL is where visitors land after logging in when no next URL was given
		LoginRedirectURL string `env:"AUTH_LOGIN_REDIRECT_URL" env-default:"/" yaml:"loginRedirectUrl"`
		// CookieName is the name of the session cookie
		CookieName string `env:"AUTH_COOKIE_NAME" env-default:"heritage_session" yaml:"cookieName"`
		// CookieSecure marks the session cookie as HTTPS only
		CookieSecure bool `env:"AUTH_COOKIE_SECURE" env-default:"false" yaml:"cookieSecure"`
		// SessionTTL is the lifetime of a session token
		SessionTTL time.Duration `env:"AUTH_SESSION_TTL" env-default:"24h" yaml:"sessionTtl"`
	} `yaml:"auth"`

	// JWT holds the RS256 key pair used to sign and verify session tokens
	JWT struct {
		// PrivateKey is the PEM encoded RSA private key
		PrivateKey string `env:"JWT_PRIVATE_KEY" env-default:"" yaml:"privateKey"`
		// PublicKey is the PEM encoded RSA public key
		PublicKey string `env:"JWT_PUBLIC_KEY" env-default:"" yaml:"publicKey"`
		// Issuer is set on issued tokens and required on verified ones
		Issuer string `env:"JWT_ISSUER" env-default:"heritage" yaml:"issuer"`
	} `yaml:"jwt"`

	// Catalog tunes the catalog's listing behaviour
	Catalog struct {
		// SitesPageSize is the number of sites per page in listings and search results
		SitesPageSize uint `env:"CATALOG_SITES_PAGE_SIZE" env-default:"50" yaml:"sitesPageSize"`
		// CountriesPageSize is the number of countries per page
		CountriesPageSize uint `env:"CATALOG_COUNTRIES_PAGE_SIZE" env-default:"20" yaml:"countriesPageSize"`
		// ChoicesCacheTTL bounds how long cached search choices are served
		ChoicesCacheTTL time.Duration `env:"CATALOG_CHOICES_CACHE_TTL" env-default:"1h" yaml:"choicesCacheTtl"`
	} `yaml:"catalog"`

	// Tracing configures span sampling. Sampled spans are written to the log.
	Tracing struct {
		// SampleRatio is the fraction of root spans that are sampled, from 0 to 1
		SampleRatio float64 `env:"TRACING_SAMPLE_RATIO" env-default:"1" yaml:"sampleRatio"`
	} `yaml:"tracing"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// LoadDotEnv exports the variables of the given .env files into the process
// environment. Missing files are skipped and variables that are already set
// are left untouched.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}

			return fmt.Errorf("could not load %s: %w", p, err)
		}
	}

	return nil
}

// Load receives the path for yaml config file and returns a filled Config struct.
// When the file does not exist the configuration is read from the environment only.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}

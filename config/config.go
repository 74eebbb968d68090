package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultMaxUploadSize      = "5MB"
	defaultCurrency           = "INR"
	defaultPageSize           = 24
	defaultMaxPageSize        = 100
	defaultCheckoutAttempts   = 3

	defaultSlowQueryThreshold    = 200 * time.Millisecond
	defaultPoolMonitorInterval   = 5 * time.Second
	defaultPoolWaitWarnThreshold = 50 * time.Millisecond
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		// PublicBaseURL is the storefront origin used in links and allowed by CORS.
		PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
		Timeouts      struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
		RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	GoogleOAuth *GoogleOAuthConfig `json:"googleOAuth" yaml:"googleOAuth"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	PasswordStrength *PasswordStrengthConfig `json:"passwordStrength" yaml:"passwordStrength"`

	// Database tunes query logging and the connection pool monitor
	Database *DatabaseConfig `json:"database" yaml:"database"`

	// Admin lists the accounts granted the back-office role at registration.
	Admin *AdminConfig `json:"admin" yaml:"admin"`

	// Catalog configuration for product listings
	Catalog *CatalogConfig `json:"catalog" yaml:"catalog"`

	// Checkout configuration for order creation
	Checkout *CheckoutConfig `json:"checkout" yaml:"checkout"`

	// Storage configuration for uploaded images
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// Payment configuration for the payment gateway
	Payment *PaymentConfig `json:"payment" yaml:"payment"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for product share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type GoogleOAuthConfig struct {
	ClientID string `json:"clientId" yaml:"clientId"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost        int `json:"bcryptCost" yaml:"bcryptCost"`
	MaxActiveSessions int `json:"maxActiveSessions" yaml:"maxActiveSessions"`
}

// PasswordStrengthConfig defines password strength requirements
type PasswordStrengthConfig struct {
	MinLength        int  `json:"minLength" yaml:"minLength"`
	RequireUppercase bool `json:"requireUppercase" yaml:"requireUppercase"`
	RequireLowercase bool `json:"requireLowercase" yaml:"requireLowercase"`
	RequireNumbers   bool `json:"requireNumbers" yaml:"requireNumbers"`
	RequireSpecial   bool `json:"requireSpecial" yaml:"requireSpecial"`
	MaxLength        int  `json:"maxLength" yaml:"maxLength"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// RateLimitConfig throttles anonymous write endpoints such as the contact form.
type RateLimitConfig struct {
	RequestsPerSecond float64 `json:"requestsPerSecond" yaml:"requestsPerSecond"`
	Burst             int     `json:"burst" yaml:"burst"`
}

// DatabaseConfig defines query logging and pool monitoring thresholds.
// A zero PoolMonitorInterval keeps the default; a negative one disables the monitor.
type DatabaseConfig struct {
	SlowQueryThreshold    time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
	PoolMonitorInterval   time.Duration `json:"poolMonitorInterval" yaml:"poolMonitorInterval"`
	PoolWaitWarnThreshold time.Duration `json:"poolWaitWarnThreshold" yaml:"poolWaitWarnThreshold"`
}

// AdminConfig defines who administers the store
type AdminConfig struct {
	Emails []string `json:"emails" yaml:"emails"`
}

// CatalogConfig defines listing page sizes
type CatalogConfig struct {
	DefaultPageSize int `json:"defaultPageSize" yaml:"defaultPageSize"`
	MaxPageSize     int `json:"maxPageSize" yaml:"maxPageSize"`
}

// CheckoutConfig defines order creation settings
type CheckoutConfig struct {
	// Currency used until store settings name one
	Currency          string `json:"currency" yaml:"currency"`
	OrderNumberPrefix string `json:"orderNumberPrefix" yaml:"orderNumberPrefix"`
	// MaxAttempts bounds retries of the checkout transaction on serialization failures
	MaxAttempts int `json:"maxAttempts" yaml:"maxAttempts"`
}

// StorageConfig defines where uploaded images are kept
type StorageConfig struct {
	// BucketURL is a gocloud URL such as file:///var/uploads, mem://, s3://bucket or gs://bucket
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
	// PublicBaseURL prefixes object keys to build the returned image URL
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
	MaxUploadSize string `json:"maxUploadSize" yaml:"maxUploadSize"`
}

// PaymentConfig defines the payment gateway
type PaymentConfig struct {
	// Provider type: "manual" or "razorpay"
	Provider  string `json:"provider" yaml:"provider"`
	KeyID     string `json:"keyId" yaml:"keyId"`
	KeySecret string `json:"keySecret" yaml:"keySecret"`
	// RedirectURL is where the manual provider sends customers to complete payment
	RedirectURL string `json:"redirectUrl" yaml:"redirectUrl"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	// A .env file is optional; variables already set in the environment win.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "load .env failed")
	}

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	cfg.applyDefaults()

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	cfg.Postgres.Replicas = buildReplicasFromEnv()

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Postgres == nil {
		cfg.Postgres = &postgres.DBConn{}
	}
	if cfg.Database == nil {
		cfg.Database = &DatabaseConfig{}
	}
	if cfg.Database.SlowQueryThreshold <= 0 {
		cfg.Database.SlowQueryThreshold = defaultSlowQueryThreshold
	}
	if cfg.Database.PoolMonitorInterval == 0 {
		cfg.Database.PoolMonitorInterval = defaultPoolMonitorInterval
	}
	if cfg.Database.PoolWaitWarnThreshold <= 0 {
		cfg.Database.PoolWaitWarnThreshold = defaultPoolWaitWarnThreshold
	}
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Admin == nil {
		cfg.Admin = &AdminConfig{}
	}
	if cfg.Catalog == nil {
		cfg.Catalog = &CatalogConfig{}
	}
	if cfg.Catalog.DefaultPageSize <= 0 {
		cfg.Catalog.DefaultPageSize = defaultPageSize
	}
	if cfg.Catalog.MaxPageSize <= 0 {
		cfg.Catalog.MaxPageSize = defaultMaxPageSize
	}
	if cfg.Checkout == nil {
		cfg.Checkout = &CheckoutConfig{}
	}
	if cfg.Checkout.Currency == "" {
		cfg.Checkout.Currency = defaultCurrency
	}
	if cfg.Checkout.MaxAttempts <= 0 {
		cfg.Checkout.MaxAttempts = defaultCheckoutAttempts
	}
	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if strings.TrimSpace(cfg.Storage.MaxUploadSize) == "" {
		cfg.Storage.MaxUploadSize = defaultMaxUploadSize
	}
}

// IsAdminEmail reports whether email is listed as a store administrator.
func (cfg *Config) IsAdminEmail(email string) bool {
	if cfg.Admin == nil {
		return false
	}
	for _, admin := range cfg.Admin.Emails {
		if strings.EqualFold(strings.TrimSpace(admin), strings.TrimSpace(email)) {
			return true
		}
	}

	return false
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}

package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
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

	defaultOpenOfferRadiusMiles = 3.0
	defaultEligibilityCacheTTL  = 30 * time.Second
	defaultGeocodeCacheTTL      = 30 * 24 * time.Hour
	defaultGeocodeFailureTTL    = time.Hour
	defaultOperationTimeout     = 5 * time.Second
	defaultImpressionSessionTTL = 2 * time.Hour
	defaultImpressionWorkers    = 4
	defaultImpressionQueueSize  = 1024
	defaultMaxGeocodeWorkers    = 8
	defaultQRCodeSize           = 256
	defaultMetricsPath          = "/metrics"
	defaultMigrationTable       = "goose_db_version"

	minCodeLength = 8
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
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Engine holds the offer engine tunables
	Engine EngineConfig `json:"engine" yaml:"engine"`

	// Redis backs the eligibility, geocode and impression session caches; nil selects in-memory caches
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// Geocoding resolves missing location coordinates; nil disables geocoding
	Geocoding *GeocodingConfig `json:"geocoding" yaml:"geocoding"`

	// PubSub configuration for score event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for coupon QR images
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	Realtime *RealtimeConfig `json:"realtime" yaml:"realtime"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`

	Migration *MigrationConfig `json:"migration" yaml:"migration"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
	// SlowQuery is the SQL duration above which statements are logged as slow; zero uses 200ms
	SlowQuery time.Duration `json:"slowQuery" yaml:"slowQuery"`
}

// EngineConfig defines the distribution, issuance and redemption tunables
type EngineConfig struct {
	// Maximum distance between an Open Offer's home location and the display location
	OpenOfferRadiusMiles float64 `json:"openOfferRadiusMiles" yaml:"openOfferRadiusMiles"`

	// Exclude Open Offers whose home location shares the display location's category
	ExcludeSameCategory *bool `json:"excludeSameCategory" yaml:"excludeSameCategory"`

	EligibilityCacheTTL time.Duration `json:"eligibilityCacheTTL" yaml:"eligibilityCacheTTL"`
	GeocodeCacheTTL     time.Duration `json:"geocodeCacheTTL" yaml:"geocodeCacheTTL"`
	GeocodeFailureTTL   time.Duration `json:"geocodeFailureTTL" yaml:"geocodeFailureTTL"`

	// Upper bound for code issuance and redemption
	OperationTimeout time.Duration `json:"operationTimeout" yaml:"operationTimeout"`

	// Length of generated redemption codes, at least 8
	CodeLength int `json:"codeLength" yaml:"codeLength"`

	ImpressionSessionTTL time.Duration `json:"impressionSessionTTL" yaml:"impressionSessionTTL"`
	ImpressionWorkers    int           `json:"impressionWorkers" yaml:"impressionWorkers"`
	ImpressionQueueSize  int           `json:"impressionQueueSize" yaml:"impressionQueueSize"`

	// Number of concurrent workers resolving Open Offer candidates
	MaxGeocodeWorkers int `json:"maxGeocodeWorkers" yaml:"maxGeocodeWorkers"`
}

// SameCategoryExcluded reports the effective category exclusion setting.
func (e EngineConfig) SameCategoryExcluded() bool {
	return e.ExcludeSameCategory == nil || *e.ExcludeSameCategory
}

// RedisConfig defines the Redis connection
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`

	// Key prefix shared by all cache entries of this service
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`
}

// GeocodingConfig defines the Google Maps geocoding client
type GeocodingConfig struct {
	APIKey string `json:"apiKey" yaml:"apiKey"`

	// Requests per second sent to the geocoding API
	RateLimit int `json:"rateLimit" yaml:"rateLimit"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "inline" applies events in-process, "local" posts to a worker, "google" uses Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
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

	// Landing page the QR code points at; the code is appended as a query parameter
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
}

// RealtimeConfig defines the websocket channel used by dashboards
type RealtimeConfig struct {
	Enabled        bool          `json:"enabled" yaml:"enabled"`
	AllowedOrigins []string      `json:"allowedOrigins" yaml:"allowedOrigins"`
	PingInterval   time.Duration `json:"pingInterval" yaml:"pingInterval"`
	SendBuffer     int           `json:"sendBuffer" yaml:"sendBuffer"`
}

// MetricsConfig defines the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// MigrationConfig defines goose migration behaviour
type MigrationConfig struct {
	// Apply pending migrations when the API starts
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`

	// Goose version table name
	Table string `json:"table" yaml:"table"`
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
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Engine.CodeLength < minCodeLength {
		return nil, errors.Errorf("engine.codeLength must be at least %d, got %d", minCodeLength, cfg.Engine.CodeLength)
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills zero values with the engine defaults.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	engine := &cfg.Engine
	if engine.OpenOfferRadiusMiles <= 0 {
		engine.OpenOfferRadiusMiles = defaultOpenOfferRadiusMiles
	}
	if engine.EligibilityCacheTTL <= 0 {
		engine.EligibilityCacheTTL = defaultEligibilityCacheTTL
	}
	if engine.GeocodeCacheTTL <= 0 {
		engine.GeocodeCacheTTL = defaultGeocodeCacheTTL
	}
	if engine.GeocodeFailureTTL <= 0 {
		engine.GeocodeFailureTTL = defaultGeocodeFailureTTL
	}
	if engine.OperationTimeout <= 0 {
		engine.OperationTimeout = defaultOperationTimeout
	}
	if engine.CodeLength == 0 {
		engine.CodeLength = minCodeLength
	}
	if engine.ImpressionSessionTTL <= 0 {
		engine.ImpressionSessionTTL = defaultImpressionSessionTTL
	}
	if engine.ImpressionWorkers <= 0 {
		engine.ImpressionWorkers = defaultImpressionWorkers
	}
	if engine.ImpressionQueueSize <= 0 {
		engine.ImpressionQueueSize = defaultImpressionQueueSize
	}
	if engine.MaxGeocodeWorkers <= 0 {
		engine.MaxGeocodeWorkers = defaultMaxGeocodeWorkers
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Size <= 0 {
		cfg.QRCode.Size = defaultQRCodeSize
	}

	if cfg.Metrics != nil && cfg.Metrics.Path == "" {
		cfg.Metrics.Path = defaultMetricsPath
	}

	if cfg.Migration == nil {
		cfg.Migration = &MigrationConfig{}
	}
	if cfg.Migration.Table == "" {
		cfg.Migration.Table = defaultMigrationTable
	}
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

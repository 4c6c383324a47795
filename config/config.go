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
	defaultBackendTimeout     = 10 * time.Second
	defaultRequestsPerMinute  = 30
	defaultRateLimitBurst     = 5
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
		// AllowOrigins lists the dashboard origins allowed by CORS and the WebSocket upgrader
		AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
		Timeouts     struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Postgres enables the shared pending-mark store. Marks are kept in memory when nil.
	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		// Access is the HMAC secret the platform backend signs access tokens with
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Backend configuration for the upstream platform API
	Backend *BackendConfig `json:"backend" yaml:"backend"`

	// Partners configuration for the partnership workflow
	Partners *PartnersConfig `json:"partners" yaml:"partners"`

	// Map configuration for the dashboard map surface
	Map *MapConfig `json:"map" yaml:"map"`

	// Realtime configuration for the upstream notification channel
	Realtime *RealtimeConfig `json:"realtime" yaml:"realtime"`

	// RateLimit configuration for mutation routes
	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	// Sticker configuration for offer QR stickers
	Sticker *StickerConfig `json:"sticker" yaml:"sticker"`

	// Firebase configuration for push toasts
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// BackendConfig defines how the platform backend is reached
type BackendConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// Endpoint paths, relative to BaseURL. {id} is replaced by the target id.
	CandidatesPath   string `json:"candidatesPath" yaml:"candidatesPath"`
	OwnLocationsPath string `json:"ownLocationsPath" yaml:"ownLocationsPath"`
	RequestPath      string `json:"requestPath" yaml:"requestPath"`
	CancelPath       string `json:"cancelPath" yaml:"cancelPath"`
}

// PartnersConfig defines the partnership workflow settings
type PartnersConfig struct {
	// Delay before the list is refreshed after a successful request
	RefreshDelay time.Duration `json:"refreshDelay" yaml:"refreshDelay"`

	// Lifetime of a mark set before the request mutation resolves
	OptimisticTTL time.Duration `json:"optimisticTtl" yaml:"optimisticTtl"`

	// Lifetime of a mark once the backend accepted the request
	ConfirmedTTL time.Duration `json:"confirmedTtl" yaml:"confirmedTtl"`

	// Sessions untouched for longer than this are closed
	SessionIdleTTL time.Duration `json:"sessionIdleTtl" yaml:"sessionIdleTtl"`

	SearchRadiusMiles float64 `json:"searchRadiusMiles" yaml:"searchRadiusMiles"`

	// Place maxed-out stores on the map in their disabled state
	ShowIneligibleOnMap bool `json:"showIneligibleOnMap" yaml:"showIneligibleOnMap"`
}

// MapConfig defines the map provider settings exposed to the dashboard
type MapConfig struct {
	AccessToken string  `json:"accessToken" yaml:"accessToken"`
	StyleURL    string  `json:"styleUrl" yaml:"styleUrl"`
	CenterLat   float64 `json:"centerLat" yaml:"centerLat"`
	CenterLng   float64 `json:"centerLng" yaml:"centerLng"`
	Zoom        float64 `json:"zoom" yaml:"zoom"`
}

// RealtimeConfig defines the upstream notification channel
type RealtimeConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	URL     string `json:"url" yaml:"url"`
}

// RateLimitConfig defines per-viewer limits on mutation routes
type RateLimitConfig struct {
	RequestsPerMinute int `json:"requestsPerMinute" yaml:"requestsPerMinute"`
	Burst             int `json:"burst" yaml:"burst"`
}

// StickerConfig defines QR sticker generation configuration
type StickerConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
	BrandName            string `json:"brandName" yaml:"brandName"`

	// BucketURL is a gocloud.dev blob URL (file://, mem://, gs://, s3://). Storage is disabled when empty.
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
}

// FirebaseConfig defines Firebase configuration for push toasts
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
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
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	cfg.applyDefaults()

	if cfg.Postgres != nil {
		// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills in the sections the workflow cannot run without.
func (c *Config) applyDefaults() {
	if c.Backend == nil {
		c.Backend = &BackendConfig{}
	}
	c.Backend.applyDefaults()

	if c.Partners == nil {
		c.Partners = DefaultPartnersConfig()
	} else {
		c.Partners.applyDefaults()
	}

	if c.Map == nil {
		c.Map = &MapConfig{}
	}
	if c.Realtime == nil {
		c.Realtime = &RealtimeConfig{}
	}

	if c.RateLimit == nil {
		c.RateLimit = &RateLimitConfig{}
	}
	if c.RateLimit.RequestsPerMinute <= 0 {
		c.RateLimit.RequestsPerMinute = defaultRequestsPerMinute
	}
	if c.RateLimit.Burst <= 0 {
		c.RateLimit.Burst = defaultRateLimitBurst
	}

	if c.Sticker == nil {
		c.Sticker = &StickerConfig{}
	}
	c.Sticker.applyDefaults()
}

// WithDefaults returns a copy of b with unset timeout and paths filled in.
func (b BackendConfig) WithDefaults() BackendConfig {
	b.applyDefaults()

	return b
}

func (b *BackendConfig) applyDefaults() {
	if b.Timeout <= 0 {
		b.Timeout = defaultBackendTimeout
	}
	if b.CandidatesPath == "" {
		b.CandidatesPath = "/api/partners/candidates"
	}
	if b.OwnLocationsPath == "" {
		b.OwnLocationsPath = "/api/stores/mine"
	}
	if b.RequestPath == "" {
		b.RequestPath = "/api/partners/{id}/request"
	}
	if b.CancelPath == "" {
		b.CancelPath = "/api/partnerships/{id}/cancel"
	}
}

// DefaultPartnersConfig returns the workflow settings used when the section is absent.
func DefaultPartnersConfig() *PartnersConfig {
	cfg := &PartnersConfig{ShowIneligibleOnMap: true}
	cfg.applyDefaults()

	return cfg
}

func (p *PartnersConfig) applyDefaults() {
	if p.RefreshDelay <= 0 {
		p.RefreshDelay = time.Second
	}
	if p.OptimisticTTL <= 0 {
		p.OptimisticTTL = 30 * time.Second
	}
	if p.ConfirmedTTL <= 0 {
		p.ConfirmedTTL = 10 * time.Minute
	}
	if p.SessionIdleTTL <= 0 {
		p.SessionIdleTTL = 30 * time.Minute
	}
	if p.SearchRadiusMiles <= 0 {
		p.SearchRadiusMiles = 25
	}
}

func (s *StickerConfig) applyDefaults() {
	if s.Size <= 0 {
		s.Size = 512
	}
	if s.ErrorCorrectionLevel == "" {
		s.ErrorCorrectionLevel = "medium"
	}
	if s.BrandName == "" {
		s.BrandName = "Partner Offers"
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

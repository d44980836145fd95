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
	defaultPath                     = "."
	defaultMaxRequestBodySize       = "25MB"
	defaultAccessTokenExpireMinutes = 15
	defaultMaxUploadSizeMB          = 10
	defaultMediaURLPrefix           = "/media"
	defaultAPIPrefix                = "/api/v1"
	defaultPublicBaseURL            = "http://localhost:4321"
	defaultQRCodeSize               = 256
	defaultQRCodeRecoveryLevel      = "M"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		APIPrefix          string   `json:"apiPrefix" yaml:"apiPrefix"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		CORSOrigins        []string `json:"corsOrigins" yaml:"corsOrigins"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Media configuration for uploaded images
	Media *MediaConfig `json:"media" yaml:"media"`

	Profile *ProfileConfig `json:"profile" yaml:"profile"`

	// Events configuration for media event publishing; nil disables publishing
	Events *EventsConfig `json:"events" yaml:"events"`
}

// AuthConfig defines authentication-related configuration.
// The bcrypt work factor is a code constant and not configurable.
type AuthConfig struct {
	AccessTokenExpireMinutes int    `json:"accessTokenExpireMinutes" yaml:"accessTokenExpireMinutes"`
	SessionCookieName        string `json:"sessionCookieName" yaml:"sessionCookieName"`
}

// SessionWindow returns the sliding expiry window of a session.
func (c *AuthConfig) SessionWindow() time.Duration {
	if c == nil || c.AccessTokenExpireMinutes <= 0 {
		return defaultAccessTokenExpireMinutes * time.Minute
	}

	return time.Duration(c.AccessTokenExpireMinutes) * time.Minute
}

// MediaConfig defines where processed images are stored and how they are addressed.
type MediaConfig struct {
	// BucketURL is a gocloud.dev blob URL, e.g. file:///var/lib/inkq/media or mem://
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// URLPrefix is prepended to object keys to build public URLs
	URLPrefix string `json:"urlPrefix" yaml:"urlPrefix"`

	// MaxUploadSizeMB is the upper bound for a single uploaded file
	MaxUploadSizeMB int `json:"maxUploadSizeMb" yaml:"maxUploadSizeMb"`
}

// MaxUploadBytes returns the upload ceiling in bytes.
func (c *MediaConfig) MaxUploadBytes() int64 {
	if c == nil || c.MaxUploadSizeMB <= 0 {
		return defaultMaxUploadSizeMB << 20
	}

	return int64(c.MaxUploadSizeMB) << 20
}

// ProfileConfig defines how public profile links and their QR codes are built.
type ProfileConfig struct {
	// PublicBaseURL is the web origin serving public profiles, e.g. https://inkq.app
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
	QRCodeSize    int    `json:"qrCodeSize" yaml:"qrCodeSize"`
	// QRCodeRecoveryLevel is one of L, M, Q, H
	QRCodeRecoveryLevel string `json:"qrCodeRecoveryLevel" yaml:"qrCodeRecoveryLevel"`
}

// EventsConfig defines where media events are published.
type EventsConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Push endpoint (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
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

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if strings.TrimSpace(cfg.HTTP.APIPrefix) == "" {
		cfg.HTTP.APIPrefix = defaultAPIPrefix
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.AccessTokenExpireMinutes <= 0 {
		cfg.Auth.AccessTokenExpireMinutes = defaultAccessTokenExpireMinutes
	}
	if cfg.Auth.SessionCookieName == "" {
		cfg.Auth.SessionCookieName = "inkq_session"
	}

	if cfg.Media == nil {
		cfg.Media = &MediaConfig{}
	}
	if cfg.Media.MaxUploadSizeMB <= 0 {
		cfg.Media.MaxUploadSizeMB = defaultMaxUploadSizeMB
	}
	if cfg.Media.URLPrefix == "" {
		cfg.Media.URLPrefix = defaultMediaURLPrefix
	}
	cfg.Media.URLPrefix = strings.TrimRight(cfg.Media.URLPrefix, "/")

	if cfg.Profile == nil {
		cfg.Profile = &ProfileConfig{}
	}
	if cfg.Profile.PublicBaseURL == "" {
		cfg.Profile.PublicBaseURL = defaultPublicBaseURL
	}
	cfg.Profile.PublicBaseURL = strings.TrimRight(cfg.Profile.PublicBaseURL, "/")
	if cfg.Profile.QRCodeSize <= 0 {
		cfg.Profile.QRCodeSize = defaultQRCodeSize
	}
	if cfg.Profile.QRCodeRecoveryLevel == "" {
		cfg.Profile.QRCodeRecoveryLevel = defaultQRCodeRecoveryLevel
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

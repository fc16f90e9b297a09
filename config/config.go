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
	defaultTimezone           = "Asia/Karachi"
	defaultSlotCapacity       = 10
	defaultSlotLength         = time.Hour
	defaultSideEffectWorkers  = 4
	defaultSideEffectQueue    = 256
	defaultSideEffectTimeout  = 15 * time.Second
	defaultPrinterBucketURL   = "mem://"
	defaultQRCodeSize         = 256
	defaultSlotResetSpec      = "0 0 * * *"
	defaultZoneCacheTTL       = time.Minute
	defaultWebSocketWrite     = 5 * time.Second
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
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		AllowedOrigins     []string `json:"allowedOrigins" yaml:"allowedOrigins"`
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
		// Lifetime of issued access tokens, defaults to 15m
		AccessTTL time.Duration `json:"accessTtl" yaml:"accessTtl"`
	} `json:"secretKey" yaml:"secretKey"`

	// Fulfillment holds pricing, scheduling and catalog bootstrap settings
	Fulfillment *FulfillmentConfig `json:"fulfillment" yaml:"fulfillment"`

	// SideEffects sizes the background worker pool for printing and broadcasts
	SideEffects *SideEffectsConfig `json:"sideEffects" yaml:"sideEffects"`

	// Printer configures the print spool
	Printer *PrinterConfig `json:"printer" yaml:"printer"`

	// PubSub configuration for order event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Firebase configuration for customer push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Redis configuration for the zone snapshot cache
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// WebSocket configuration for the realtime order stream
	WebSocket *WebSocketConfig `json:"websocket" yaml:"websocket"`

	// Jobs configuration for scheduled maintenance
	Jobs *JobsConfig `json:"jobs" yaml:"jobs"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FulfillmentConfig defines order pricing and zone scheduling behaviour
type FulfillmentConfig struct {
	// IANA timezone for operating hours and slot times
	Timezone string `json:"timezone" yaml:"timezone"`

	// Capacity of slots synthesized from operating hours
	DefaultSlotCapacity int `json:"defaultSlotCapacity" yaml:"defaultSlotCapacity"`

	// Length of synthesized slots
	SlotLength time.Duration `json:"slotLength" yaml:"slotLength"`

	// Tax applied to the subtotal, e.g. 0.17
	TaxRate float64 `json:"taxRate" yaml:"taxRate"`

	DefaultCancellationReason string `json:"defaultCancellationReason" yaml:"defaultCancellationReason"`

	// Run GORM auto-migration on startup
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`

	// Install the stock zones on startup when no active zone exists
	SeedDefaultZones bool `json:"seedDefaultZones" yaml:"seedDefaultZones"`
}

// SideEffectsConfig defines the background task pool
type SideEffectsConfig struct {
	Workers     int           `json:"workers" yaml:"workers"`
	QueueSize   int           `json:"queueSize" yaml:"queueSize"`
	TaskTimeout time.Duration `json:"taskTimeout" yaml:"taskTimeout"`
}

// PrinterConfig defines where printed documents are spooled
type PrinterConfig struct {
	// gocloud.dev blob URL, e.g. file:///var/spool/pizzahouse or gs://bucket
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// Base URL encoded into tracking QR codes
	TrackingBaseURL string `json:"trackingBaseUrl" yaml:"trackingBaseUrl"`

	QRCodeSize int `json:"qrcodeSize" yaml:"qrcodeSize"`

	// L, M, Q or H
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
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

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// RedisConfig defines the zone snapshot cache
type RedisConfig struct {
	Addr     string        `json:"addr" yaml:"addr"`
	Password string        `json:"password" yaml:"password"`
	DB       int           `json:"db" yaml:"db"`
	TTL      time.Duration `json:"ttl" yaml:"ttl"`
}

// WebSocketConfig defines the realtime order stream
type WebSocketConfig struct {
	AllowedOrigins []string      `json:"allowedOrigins" yaml:"allowedOrigins"`
	WriteTimeout   time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
}

// JobsConfig defines scheduled jobs
type JobsConfig struct {
	SlotReset struct {
		Enabled bool   `json:"enabled" yaml:"enabled"`
		Spec    string `json:"spec" yaml:"spec"`
	} `json:"slotReset" yaml:"slotReset"`
}

// LoadWithEnv loads <currEnv>.yaml from the first matching search path and
// overlays environment variables on top of it.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	k := koanf.New(".")

	configFile, err := findConfigFile(currEnv, configPath)
	if err != nil {
		return nil, err
	}

	if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	resolver := envKeyResolver{tree: k.Raw()}
	if err := k.Load(env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return resolver.resolve(key), value
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: strings.EqualFold,
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func findConfigFile(currEnv string, configPath []string) (string, error) {
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("config file %s.yaml not found in any search path", currEnv)
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// ApplyDefaults fills every optional section left out of the config file.
func (c *Config) ApplyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if c.Fulfillment == nil {
		c.Fulfillment = &FulfillmentConfig{}
	}
	if c.Fulfillment.Timezone == "" {
		c.Fulfillment.Timezone = defaultTimezone
	}
	if c.Fulfillment.DefaultSlotCapacity <= 0 {
		c.Fulfillment.DefaultSlotCapacity = defaultSlotCapacity
	}
	if c.Fulfillment.SlotLength <= 0 {
		c.Fulfillment.SlotLength = defaultSlotLength
	}

	if c.SideEffects == nil {
		c.SideEffects = &SideEffectsConfig{}
	}
	if c.SideEffects.Workers <= 0 {
		c.SideEffects.Workers = defaultSideEffectWorkers
	}
	if c.SideEffects.QueueSize <= 0 {
		c.SideEffects.QueueSize = defaultSideEffectQueue
	}
	if c.SideEffects.TaskTimeout <= 0 {
		c.SideEffects.TaskTimeout = defaultSideEffectTimeout
	}

	if c.Printer == nil {
		c.Printer = &PrinterConfig{}
	}
	if c.Printer.BucketURL == "" {
		c.Printer.BucketURL = defaultPrinterBucketURL
	}
	if c.Printer.QRCodeSize <= 0 {
		c.Printer.QRCodeSize = defaultQRCodeSize
	}

	if c.Redis != nil && c.Redis.TTL <= 0 {
		c.Redis.TTL = defaultZoneCacheTTL
	}

	if c.WebSocket == nil {
		c.WebSocket = &WebSocketConfig{}
	}
	if c.WebSocket.WriteTimeout <= 0 {
		c.WebSocket.WriteTimeout = defaultWebSocketWrite
	}

	if c.Jobs == nil {
		c.Jobs = &JobsConfig{}
		c.Jobs.SlotReset.Enabled = true
	}
	if c.Jobs.SlotReset.Spec == "" {
		c.Jobs.SlotReset.Spec = defaultSlotResetSpec
	}
}

// Location returns the fulfillment timezone.
func (c *Config) Location() (*time.Location, error) {
	name := defaultTimezone
	if c.Fulfillment != nil && c.Fulfillment.Timezone != "" {
		name = c.Fulfillment.Timezone
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.Wrapf(err, "load timezone %s", name)
	}

	return loc, nil
}

// envKeyResolver maps ENV_VAR_NAME onto a dotted koanf path, reusing the
// spelling of keys already present in the YAML tree.
// Example: POSTGRES_SSLMODE -> postgres.sslMode
type envKeyResolver struct {
	tree map[string]any
}

func (r envKeyResolver) resolve(rawKey string) string {
	return canonicalizeEnvKey(rawKey, r.tree)
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	var path []string
	node := existing

	for _, segment := range strings.Split(strings.ToLower(rawKey), "_") {
		if segment == "" {
			continue
		}

		key, child, ok := lookupSegment(node, segment)
		if !ok {
			path = append(path, segment)
			node = nil

			continue
		}
		path = append(path, key)
		node = child
	}

	return strings.Join(path, ".")
}

func lookupSegment(node map[string]any, segment string) (string, map[string]any, bool) {
	want := normalizeToken(segment)
	for key, value := range node {
		if normalizeToken(key) == want {
			child, _ := value.(map[string]any)

			return key, child, true
		}
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}

		return -1
	}, s)
}

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}
// until the first index with no host or port.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}

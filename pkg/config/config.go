package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	z "github.com/Oudwins/zog"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
	"liyu1981.xyz/inventory-alert-service/pkg/common"
)

type RelayConfig struct {
	NATSURL      string `yaml:"nats_url" toml:"nats_url"`
	NATSSubject  string `yaml:"nats_subject" toml:"nats_subject"`
	KafkaBrokers string `yaml:"kafka_brokers" toml:"kafka_brokers"`
	KafkaTopic   string `yaml:"kafka_topic" toml:"kafka_topic"`
	RedisAddr    string `yaml:"redis_addr" toml:"redis_addr"`
	RedisChannel string `yaml:"redis_channel" toml:"redis_channel"`
}

type Config struct {
	DBType       string  `yaml:"db_type" toml:"db_type"`
	DBPath       string  `yaml:"db_path" toml:"db_path"`
	PostgresDSN  string  `yaml:"postgres_dsn" toml:"postgres_dsn"`
	HTTPHostPort string  `yaml:"http_host_port" toml:"http_host_port"`
	GRPCHostPort string  `yaml:"grpc_host_port" toml:"grpc_host_port"`
	DefaultRate  float64 `yaml:"default_rate" toml:"default_rate"`
	DefaultBurst int     `yaml:"default_burst" toml:"default_burst"`
	WindowDays   int     `yaml:"window_days" toml:"window_days"`
	ScanHour     int     `yaml:"scan_hour" toml:"scan_hour"`

	// ScanIntervalText is what files and env carry, e.g. "24h".
	ScanIntervalText string        `yaml:"scan_interval" toml:"scan_interval"`
	ScanInterval     time.Duration `yaml:"-" toml:"-"`

	Relay RelayConfig `yaml:"relay" toml:"relay"`
}

func Default() *Config {
	return &Config{
		DBType:           "file",
		DBPath:           "alerts.db",
		HTTPHostPort:     ":1080",
		DefaultRate:      10,
		DefaultBurst:     20,
		WindowDays:       30,
		ScanHour:         2,
		ScanIntervalText: "24h",
		ScanInterval:     24 * time.Hour,
	}
}

var configSchema = z.Struct(z.Shape{
	"DBType":       z.String().Required().OneOf([]string{"file", "memory", "postgres"}),
	"WindowDays":   z.Int().Required().GTE(1),
	"DefaultRate":  z.Float64().GTE(0),
	"DefaultBurst": z.Int().GTE(0),
	"ScanHour":     z.Int().GTE(-1).LTE(23),
})

// LoadDotEnv seeds the environment from the given .env files. Missing files
// are skipped; variables already set win.
func LoadDotEnv(paths ...string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
	}
	return nil
}

// Load builds the configuration from defaults, then the file at path (or
// ALERTS_CONFIG_FILE when path is empty), then environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = strings.TrimSpace(os.Getenv(common.EnvKeyConfigFile))
	}
	if path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	interval, err := time.ParseDuration(cfg.ScanIntervalText)
	if err != nil {
		return nil, fmt.Errorf("invalid scan interval %q: %w", cfg.ScanIntervalText, err)
	}
	if interval <= 0 {
		return nil, fmt.Errorf("invalid scan interval %q: must be positive", cfg.ScanIntervalText)
	}
	cfg.ScanInterval = interval

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if issues := configSchema.Validate(c); len(issues) > 0 {
		return fmt.Errorf("invalid config: %v", issues)
	}
	if c.DBType == "postgres" && strings.TrimSpace(c.PostgresDSN) == "" {
		return fmt.Errorf("invalid config: %s is required when db type is postgres", common.EnvKeyPostgresDSN)
	}
	return nil
}

func loadFile(path string, cfg *Config) error {
	body, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %q: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(body, cfg)
	case ".toml":
		err = toml.Unmarshal(body, cfg)
	default:
		return fmt.Errorf("unsupported config file %q: want .yaml, .yml or .toml", path)
	}
	if err != nil {
		return fmt.Errorf("decode config file %q: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	stringKeys := map[string]*string{
		common.EnvKeyDBType:            &cfg.DBType,
		common.EnvKeyDbPath:            &cfg.DBPath,
		common.EnvKeyPostgresDSN:       &cfg.PostgresDSN,
		common.EnvKeyHttpHostPort:      &cfg.HTTPHostPort,
		common.EnvKeyGrpcHostPort:      &cfg.GRPCHostPort,
		common.EnvKeyScanInterval:      &cfg.ScanIntervalText,
		common.EnvKeyRelayNATSURL:      &cfg.Relay.NATSURL,
		common.EnvKeyRelayNATSSubject:  &cfg.Relay.NATSSubject,
		common.EnvKeyRelayKafkaBrokers: &cfg.Relay.KafkaBrokers,
		common.EnvKeyRelayKafkaTopic:   &cfg.Relay.KafkaTopic,
		common.EnvKeyRelayRedisAddr:    &cfg.Relay.RedisAddr,
		common.EnvKeyRelayRedisChannel: &cfg.Relay.RedisChannel,
	}
	for key, target := range stringKeys {
		if v, found := os.LookupEnv(key); found && strings.TrimSpace(v) != "" {
			*target = strings.TrimSpace(v)
		}
	}

	ints := map[string]*int{
		common.EnvKeyDefaultBurst: &cfg.DefaultBurst,
		common.EnvKeyWindowDays:   &cfg.WindowDays,
		common.EnvKeyScanHour:     &cfg.ScanHour,
	}
	for key, target := range ints {
		v, found := os.LookupEnv(key)
		if !found || strings.TrimSpace(v) == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid %s, should be an int value: %w", key, err)
		}
		*target = n
	}

	if v, found := os.LookupEnv(common.EnvKeyDefaultRate); found && strings.TrimSpace(v) != "" {
		rate, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("invalid %s, should be a float64 value: %w", common.EnvKeyDefaultRate, err)
		}
		cfg.DefaultRate = rate
	}
	return nil
}

// Package config loads service configuration from YAML with environment
// overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Cache backends.
const (
	CacheMemory = "memory"
	CacheSQLite = "sqlite"
	CacheRedis  = "redis"
)

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Log        LogConfig        `yaml:"log"`
	Classifier ClassifierConfig `yaml:"classifier"`
	Cache      CacheConfig      `yaml:"cache"`
	Report     ReportConfig     `yaml:"report"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
}

type ServerConfig struct {
	Port int    `yaml:"port"`
	Name string `yaml:"name"`
}

type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

type ClassifierConfig struct {
	BatchSize int            `yaml:"batchSize"`
	Timeout   time.Duration  `yaml:"timeout"`
	NoLLM     bool           `yaml:"noLLM"` // rule-only even when keys are present
	Anthropic ProviderConfig `yaml:"anthropic"`
	OpenAI    ProviderConfig `yaml:"openai"`
	Breaker   BreakerConfig  `yaml:"breaker"`
}

type ProviderConfig struct {
	APIKey    string `yaml:"apiKey"`
	Model     string `yaml:"model"`
	MaxTokens int    `yaml:"maxTokens"`
}

type BreakerConfig struct {
	ConsecutiveFailures uint32        `yaml:"consecutiveFailures"`
	OpenTimeout         time.Duration `yaml:"openTimeout"`
}

type CacheConfig struct {
	Backend string      `yaml:"backend"` // memory, sqlite, redis
	DBPath  string      `yaml:"dbPath"`
	Redis   RedisConfig `yaml:"redis"`
}

type RedisConfig struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	Prefix   string        `yaml:"prefix"`
	TTL      time.Duration `yaml:"ttl"`
}

type ReportConfig struct {
	ChromePath string `yaml:"chromePath"`
	Paper      string `yaml:"paper"` // a4, letter
	// PDF enables the pdf report format.
	PDF bool `yaml:"pdf"`
}

type TelemetryConfig struct {
	Endpoint    string `yaml:"endpoint"`
	ServiceName string `yaml:"serviceName"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Server: ServerConfig{Port: 8080, Name: "assistant-desk"},
		Log:    LogConfig{Level: "info"},
		Classifier: ClassifierConfig{
			BatchSize: 5,
			Timeout:   20 * time.Second,
			Anthropic: ProviderConfig{Model: "claude-3-haiku-20240307", MaxTokens: 150},
			OpenAI:    ProviderConfig{Model: "gpt-4o-mini", MaxTokens: 100},
			Breaker:   BreakerConfig{ConsecutiveFailures: 5, OpenTimeout: 30 * time.Second},
		},
		Cache:     CacheConfig{Backend: CacheMemory},
		Report:    ReportConfig{PDF: true, Paper: "a4"},
		Telemetry: TelemetryConfig{ServiceName: "assistant-desk"},
	}
}

// Load reads path over the defaults and then applies environment overrides.
// An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}
	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the service cannot start with.
func (c Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.Classifier.BatchSize <= 0 {
		return fmt.Errorf("classifier.batchSize must be positive: %d", c.Classifier.BatchSize)
	}
	if c.Classifier.Timeout <= 0 {
		return fmt.Errorf("classifier.timeout must be positive: %s", c.Classifier.Timeout)
	}
	switch c.Cache.Backend {
	case CacheMemory:
	case CacheSQLite:
		if c.Cache.DBPath == "" {
			return fmt.Errorf("cache.dbPath is required for the sqlite backend")
		}
	case CacheRedis:
		if c.Cache.Redis.Addr == "" {
			return fmt.Errorf("cache.redis.addr is required for the redis backend")
		}
	default:
		return fmt.Errorf("unknown cache backend %q", c.Cache.Backend)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Server.Port)
}

type lookupFunc func(string) (string, bool)

func applyEnv(cfg *Config, lookup lookupFunc) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get("PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if v, ok := get("LOG_LEVEL"); ok {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v, ok := get("ANTHROPIC_API_KEY"); ok {
		cfg.Classifier.Anthropic.APIKey = v
	}
	if v, ok := get("OPENAI_API_KEY"); ok {
		cfg.Classifier.OpenAI.APIKey = v
	}
	if v, ok := get("CLASSIFIER_ANTHROPIC_MODEL"); ok {
		cfg.Classifier.Anthropic.Model = v
	}
	if v, ok := get("CLASSIFIER_OPENAI_MODEL"); ok {
		cfg.Classifier.OpenAI.Model = v
	}
	if v, ok := get("CLASSIFIER_NO_LLM"); ok {
		noLLM, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("CLASSIFIER_NO_LLM: %w", err)
		}
		cfg.Classifier.NoLLM = noLLM
	}
	if v, ok := get("CLASSIFIER_LLM_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("CLASSIFIER_LLM_TIMEOUT: %w", err)
		}
		cfg.Classifier.Timeout = d
	}
	backend, backendSet := get("CACHE_BACKEND")
	if backendSet {
		cfg.Cache.Backend = strings.ToLower(backend)
	}
	if v, ok := get("DB_PATH"); ok {
		cfg.Cache.DBPath = v
		if !backendSet && cfg.Cache.Backend == CacheMemory {
			cfg.Cache.Backend = CacheSQLite
		}
	}
	if v, ok := get("REDIS_ADDR"); ok {
		cfg.Cache.Redis.Addr = v
	}
	if v, ok := get("CHROME_PATH"); ok {
		cfg.Report.ChromePath = v
	}
	if v, ok := get("REPORT_PAPER"); ok {
		cfg.Report.Paper = strings.ToLower(v)
	}
	if v, ok := get("OTEL_EXPORTER_OTLP_ENDPOINT"); ok {
		cfg.Telemetry.Endpoint = v
	}
	return nil
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the SympCheck server.
type Config struct {
	Server ServerConfig
	Model  ModelConfig
	Data   DataConfig
	Redis  RedisConfig
	HTTP   HTTPConfig
}

type ServerConfig struct {
	Port int
	Env  string
}

// ModelConfig points at the pre-trained artifacts produced by the offline
// training pipeline. All three files are required at startup.
type ModelConfig struct {
	Backend     string // "forest" or "onnx"
	Path        string
	LabelsPath  string
	ColumnsPath string
}

type DataConfig struct {
	Dir string
}

type RedisConfig struct {
	URL string // optional; empty disables caching and rate limiting
}

type HTTPConfig struct {
	StaticDir       string // optional; empty disables SPA serving
	RateLimitPerMin int
	CORSOrigins     []string
}

var validBackends = map[string]bool{
	"forest": true,
	"onnx":   true,
}

// Load reads configuration from environment variables and returns a validated Config.
// Returns an error with a descriptive message if any required value is missing or invalid.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: envInt("SYMPCHECK_PORT", 8080),
			Env:  envString("SYMPCHECK_ENV", "development"),
		},
		Model: ModelConfig{
			Backend:     envString("MODEL_BACKEND", "forest"),
			Path:        envString("MODEL_PATH", "models/model.json"),
			LabelsPath:  envString("MODEL_LABELS_PATH", "models/labels.json"),
			ColumnsPath: envString("MODEL_COLUMNS_PATH", "models/columns.json"),
		},
		Data: DataConfig{
			Dir: envString("DATA_DIR", "data"),
		},
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		},
		HTTP: HTTPConfig{
			StaticDir:       os.Getenv("STATIC_DIR"),
			RateLimitPerMin: envInt("RATE_LIMIT_PER_MIN", 60),
			CORSOrigins:     envList("CORS_ORIGINS", []string{"*"}),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if !validBackends[c.Model.Backend] {
		return fmt.Errorf("MODEL_BACKEND must be one of forest, onnx; got %q", c.Model.Backend)
	}

	if c.Model.Path == "" {
		return fmt.Errorf("MODEL_PATH is required")
	}
	if c.Model.LabelsPath == "" {
		return fmt.Errorf("MODEL_LABELS_PATH is required")
	}
	if c.Model.ColumnsPath == "" {
		return fmt.Errorf("MODEL_COLUMNS_PATH is required")
	}

	if c.Data.Dir == "" {
		return fmt.Errorf("DATA_DIR is required")
	}

	if c.Redis.URL != "" && !strings.HasPrefix(c.Redis.URL, "redis://") && !strings.HasPrefix(c.Redis.URL, "rediss://") {
		return fmt.Errorf("REDIS_URL must start with redis:// or rediss://, got %q", c.Redis.URL)
	}

	return nil
}

func envString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

func envList(key string, defaultVal []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}

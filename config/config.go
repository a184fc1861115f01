package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingAPIKey is returned by Load when no completion service key is configured.
var ErrMissingAPIKey = errors.New("GROQ_API_KEY not found in environment; get a key at https://console.groq.com/keys")

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Completion service
	Groq GroqConfig
	LLM  LLMConfig

	// Edge
	Frontend  FrontendConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type GroqConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// LLMConfig drives the model fallback chain.
type LLMConfig struct {
	Models          []string
	RetryAttempts   int
	RetryDelay      time.Duration
	Temperature     float64
	MaxTotalTimeout time.Duration // 0 disables the global deadline
}

type FrontendConfig struct {
	DistDir string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	RequestsPerMin int // 0 disables the per-client throttle
}

// Load loads configuration using Viper.
// A .env file in the working directory is read first; real environment variables win.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = v.GetDuration("http_server.shutdown_timeout")
	if port := v.GetInt("port"); port != 0 {
		cfg.HTTPServer.Port = port
	}
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Completion service
	cfg.Groq.APIKey = strings.TrimSpace(v.GetString("groq.api_key"))
	cfg.Groq.BaseURL = v.GetString("groq.base_url")
	cfg.Groq.Timeout = v.GetDuration("groq.timeout")
	if cfg.Groq.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg.LLM.Models = getList(v, "llm.models")
	cfg.LLM.RetryAttempts = v.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = v.GetDuration("llm.retry_delay")
	cfg.LLM.Temperature = v.GetFloat64("llm.temperature")
	cfg.LLM.MaxTotalTimeout = v.GetDuration("llm.max_total_timeout")
	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}

	// Edge
	cfg.Frontend.DistDir = v.GetString("frontend.dist_dir")
	cfg.CORS.AllowedOrigins = getList(v, "cors.allowed_origins")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8000)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.shutdown_timeout", "10s")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("groq.base_url", "https://api.groq.com/openai/v1")
	v.SetDefault("groq.timeout", "60s")

	// LLM defaults
	v.SetDefault("llm.models", []string{
		"llama-3.1-70b-versatile",
		"llama-3.1-8b-instant",
		"mixtral-8x7b-32768",
		"gemma2-9b-it",
	})
	v.SetDefault("llm.retry_attempts", 3)
	v.SetDefault("llm.retry_delay", "1s")
	v.SetDefault("llm.temperature", 0.3)
	v.SetDefault("llm.max_total_timeout", "60s")

	v.SetDefault("frontend.dist_dir", "dist")
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("rate_limit.requests_per_min", 0)
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Models) == 0 {
		return fmt.Errorf("no LLM models configured - please set llm.models")
	}
	for i, m := range cfg.Models {
		if m == "" {
			return fmt.Errorf("llm.models[%d]: name is required", i)
		}
	}
	if cfg.RetryAttempts < 1 {
		return fmt.Errorf("llm.retry_attempts must be at least 1, got %d", cfg.RetryAttempts)
	}
	if cfg.RetryDelay < 0 {
		return fmt.Errorf("llm.retry_delay must not be negative")
	}
	if cfg.Temperature < 0 || cfg.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be within [0, 2], got %v", cfg.Temperature)
	}
	return nil
}

// getList reads a list that may come from YAML as a sequence or from env as "a,b,c".
func getList(v *viper.Viper, key string) []string {
	var raw []string
	if s, ok := v.Get(key).(string); ok {
		raw = strings.Split(s, ",")
	} else {
		raw = v.GetStringSlice(key)
	}

	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

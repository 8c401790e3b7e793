package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Wardrobe specifics
	Storage StorageConfig
	Auth    AuthConfig
	Vision  VisionConfig
	Weather WeatherConfig
	Suggest SuggestConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// StorageConfig locates the snapshot database.
type StorageConfig struct {
	Path string
}

// AuthConfig configures bearer-token verification. An empty secret disables
// auth entirely, which is the single-user local setup.
type AuthConfig struct {
	JWTSecret string
}

// VisionConfig configures the image analysis client. An empty API key
// disables the analyze endpoint.
type VisionConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

type WeatherConfig struct {
	BaseURL     string
	UserAgent   string
	CacheTTL    time.Duration
	DefaultCity string
}

type SuggestConfig struct {
	Strategy       string
	MaxSuggestions int
	SessionTTL     time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Storage
	cfg.Storage.Path = viper.GetString("storage.path")

	// Auth
	cfg.Auth.JWTSecret = viper.GetString("auth.jwt_secret")
	if secret := viper.GetString("jwt_secret"); secret != "" {
		cfg.Auth.JWTSecret = secret
	}

	// Vision
	cfg.Vision.APIKey = viper.GetString("vision.api_key")
	cfg.Vision.Model = viper.GetString("vision.model")
	cfg.Vision.BaseURL = viper.GetString("vision.base_url")
	cfg.Vision.Timeout = viper.GetDuration("vision.timeout")
	if key := viper.GetString("gemini_api_key"); key != "" {
		cfg.Vision.APIKey = key
	}

	// Weather
	cfg.Weather.BaseURL = viper.GetString("weather.base_url")
	cfg.Weather.UserAgent = viper.GetString("weather.user_agent")
	cfg.Weather.CacheTTL = viper.GetDuration("weather.cache_ttl")
	cfg.Weather.DefaultCity = viper.GetString("weather.default_city")

	// Suggest
	cfg.Suggest.Strategy = viper.GetString("suggest.strategy")
	cfg.Suggest.MaxSuggestions = viper.GetInt("suggest.max_suggestions")
	cfg.Suggest.SessionTTL = viper.GetDuration("suggest.session_ttl")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("storage.path", "data/wardrobe.db")

	viper.SetDefault("vision.timeout", "30s")

	viper.SetDefault("weather.cache_ttl", "10m")
	viper.SetDefault("weather.default_city", "San Francisco")

	viper.SetDefault("suggest.strategy", "weighted")
	viper.SetDefault("suggest.max_suggestions", 3)
	viper.SetDefault("suggest.session_ttl", "30m")
}

func validate(cfg *Config) error {
	if cfg.Storage.Path == "" {
		return fmt.Errorf("storage.path is required")
	}
	switch cfg.Suggest.Strategy {
	case "weighted", "random":
	default:
		return fmt.Errorf("suggest.strategy must be weighted or random, got %q", cfg.Suggest.Strategy)
	}
	if cfg.Suggest.MaxSuggestions <= 0 {
		return fmt.Errorf("suggest.max_suggestions must be positive")
	}
	return nil
}

package utils

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App   AppConfig
	API   APIConfig
	Store StoreConfig
}

type AppConfig struct {
	Name            string
	Port            string
	Debug           bool
	LogPath         string
	ShutdownTimeout time.Duration
}

// APIConfig describes the remote movie-rental backend.
type APIConfig struct {
	BaseURL   string
	Timeout   time.Duration // 0 means no timeout
	RateLimit float64       // requests per second, 0 means unlimited
	RateBurst int
	UserAgent string
}

type StoreConfig struct {
	RollbackMode string
}

// LoadConfig reads settings from the given .env file and the environment.
// A missing file is not an error; environment variables and defaults apply.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "movie-rental")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("API_BASE_URL", "http://localhost:5555")
	v.SetDefault("API_TIMEOUT", "0s")
	v.SetDefault("API_RATE_LIMIT", 0)
	v.SetDefault("API_RATE_BURST", 1)
	v.SetDefault("API_USER_AGENT", "movie-rental/1.0")
	v.SetDefault("ROLLBACK_MODE", "placeholder")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:            v.GetString("APP_NAME"),
			Port:            v.GetString("PORT"),
			Debug:           v.GetBool("DEBUG"),
			LogPath:         v.GetString("LOG_PATH"),
			ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		},
		API: APIConfig{
			BaseURL:   v.GetString("API_BASE_URL"),
			Timeout:   v.GetDuration("API_TIMEOUT"),
			RateLimit: v.GetFloat64("API_RATE_LIMIT"),
			RateBurst: v.GetInt("API_RATE_BURST"),
			UserAgent: v.GetString("API_USER_AGENT"),
		},
		Store: StoreConfig{
			RollbackMode: v.GetString("ROLLBACK_MODE"),
		},
	}

	return config, nil
}

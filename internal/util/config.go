package util

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	AllowedOrigins          []string `mapstructure:"ALLOWED_ORIGINS"`
	HTTPServerAddress       string   `mapstructure:"HTTP_SERVER_ADDRESS"`
	FirebaseCredentialsFile string   `mapstructure:"FIREBASE_CREDENTIALS_FILE"`
	TMDBAPIKey              string   `mapstructure:"TMDB_API_KEY"`
	TMDBBaseURL             string   `mapstructure:"TMDB_BASE_URL"`
	ReleaseCheckTime        string   `mapstructure:"RELEASE_CHECK_TIME"`
	ReleaseCheckTimezone    string   `mapstructure:"RELEASE_CHECK_TIMEZONE"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	// Set defaults for non-sensitive config
	viper.SetDefault("ALLOWED_ORIGINS", []string{"*"})
	viper.SetDefault("HTTP_SERVER_ADDRESS", "0.0.0.0:8080")
	viper.SetDefault("TMDB_BASE_URL", "https://api.themoviedb.org/3")
	viper.SetDefault("RELEASE_CHECK_TIME", "12:00")
	viper.SetDefault("RELEASE_CHECK_TIMEZONE", "Europe/Paris")

	// Prefer environment variables over config file
	viper.AutomaticEnv()

	// Load config file
	viper.SetConfigFile(path)
	if err = viper.ReadInConfig(); err != nil {
		return
	}

	// Unmarshal config into struct
	err = viper.UnmarshalExact(&config)
	if err != nil {
		return
	}

	// Validate required configuration
	err = validateConfig(config)
	return
}

func validateConfig(config Config) error {
	if config.FirebaseCredentialsFile == "" {
		return fmt.Errorf("FIREBASE_CREDENTIALS_FILE is required")
	}
	if config.TMDBAPIKey == "" {
		return fmt.Errorf("TMDB_API_KEY is required")
	}
	if _, err := ReleaseCheckClock(config); err != nil {
		return err
	}

	return nil
}

// ReleaseCheckClock parses the configured schedule into an hour/minute pair
// and the time zone the daily release job should run in.
func ReleaseCheckClock(config Config) (ScheduleClock, error) {
	t, err := time.Parse("15:04", config.ReleaseCheckTime)
	if err != nil {
		return ScheduleClock{}, fmt.Errorf("RELEASE_CHECK_TIME must be HH:MM: %w", err)
	}

	loc, err := time.LoadLocation(config.ReleaseCheckTimezone)
	if err != nil {
		return ScheduleClock{}, fmt.Errorf("RELEASE_CHECK_TIMEZONE is invalid: %w", err)
	}

	return ScheduleClock{
		Hour:     t.Hour(),
		Minute:   t.Minute(),
		Location: loc,
	}, nil
}

type ScheduleClock struct {
	Hour     int
	Minute   int
	Location *time.Location
}

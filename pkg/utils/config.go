package utils

import (
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App        AppConfig
	BookingAPI BookingAPIConfig
	Form       FormConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type BookingAPIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type FormConfig struct {
	SessionTTL     time.Duration
	AutoCloseDelay time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "tourism-booking")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("BOOKING_API_BASE_URL", "http://localhost:4000")
	viper.SetDefault("BOOKING_API_TIMEOUT_SECONDS", 15)
	viper.SetDefault("FORM_SESSION_TTL_MINUTES", 30)
	viper.SetDefault("FORM_AUTO_CLOSE_MS", 1500)

	if err := viper.ReadInConfig(); err != nil {
		// Running without a .env file is fine; the environment still applies.
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		BookingAPI: BookingAPIConfig{
			BaseURL: viper.GetString("BOOKING_API_BASE_URL"),
			Timeout: time.Duration(viper.GetInt("BOOKING_API_TIMEOUT_SECONDS")) * time.Second,
		},
		Form: FormConfig{
			SessionTTL:     time.Duration(viper.GetInt("FORM_SESSION_TTL_MINUTES")) * time.Minute,
			AutoCloseDelay: time.Duration(viper.GetInt("FORM_AUTO_CLOSE_MS")) * time.Millisecond,
		},
	}

	return config, nil
}

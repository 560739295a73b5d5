package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port                          string        `mapstructure:"PORT"`
	DatabasePath                  string        `mapstructure:"DATABASE_PATH"`
	GenerateDelay                 time.Duration `mapstructure:"GENERATE_DELAY"`
	FrontendURL                   string        `mapstructure:"FRONTEND_URL"`
	EnableCORS                    bool          `mapstructure:"ENABLE_CORS"`
	AllowedOrigins                []string      `mapstructure:"ALLOWED_ORIGINS"`
	DiscordBotToken               string        `mapstructure:"DISCORD_BOT_TOKEN"`
	DiscordNotificationsChannelID string        `mapstructure:"DISCORD_NOTIFICATIONS_CHANNEL_ID"`
}

func LoadConfig() *Config {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DATABASE_PATH", "trips.db")
	viper.SetDefault("GENERATE_DELAY", "2s")
	viper.SetDefault("FRONTEND_URL", "http://127.0.0.1:4000")
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://127.0.0.1:4000"})

	viper.BindEnv("PORT")
	viper.BindEnv("DATABASE_PATH")
	viper.BindEnv("GENERATE_DELAY")
	viper.BindEnv("FRONTEND_URL")
	viper.BindEnv("ENABLE_CORS")
	viper.BindEnv("ALLOWED_ORIGINS")
	viper.BindEnv("DISCORD_BOT_TOKEN")
	viper.BindEnv("DISCORD_NOTIFICATIONS_CHANNEL_ID")

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}

	return &config
}

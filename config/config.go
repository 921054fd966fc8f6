package config

import (
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisQueueDB   int    `mapstructure:"REDIS_QUEUE_DB"`

	// Business-hours policy. These are the only recognized scheduling
	// options; everything else in the booking core derives from them.
	OpenHour    int    `mapstructure:"OPEN_HOUR"`
	OpenMinute  int    `mapstructure:"OPEN_MINUTE"`
	CloseHour   int    `mapstructure:"CLOSE_HOUR"`
	CloseMinute int    `mapstructure:"CLOSE_MINUTE"`
	WorkingDays string `mapstructure:"WORKING_DAYS"` // comma-separated weekday indices, Sunday=0

	// Booking duration policy.
	MaxBookingHours int `mapstructure:"MAX_BOOKING_HOURS"`
	MaxBookingDays  int `mapstructure:"MAX_BOOKING_DAYS"`

	// Status sweeper interval.
	SweepInterval time.Duration `mapstructure:"SWEEP_INTERVAL"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "workhive")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("OPEN_HOUR", 8)
	viper.SetDefault("OPEN_MINUTE", 30)
	viper.SetDefault("CLOSE_HOUR", 18)
	viper.SetDefault("CLOSE_MINUTE", 30)
	viper.SetDefault("WORKING_DAYS", "0,1,2,3,4") // Sunday through Thursday
	viper.SetDefault("MAX_BOOKING_HOURS", 168)
	viper.SetDefault("MAX_BOOKING_DAYS", 7)
	viper.SetDefault("SWEEP_INTERVAL", "5m")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// WorkingDayIndices parses the WORKING_DAYS list, skipping malformed entries.
func (c Config) WorkingDayIndices() []int {
	var days []int
	for _, part := range strings.Split(c.WorkingDays, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		d, err := strconv.Atoi(part)
		if err != nil || d < 0 || d > 6 {
			log.Printf("ignoring invalid working day %q", part)
			continue
		}
		days = append(days, d)
	}
	return days
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	RequireAuth       bool   `mapstructure:"REQUIRE_AUTH"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr         string `mapstructure:"REDIS_ADDR"`
	RedisPassword     string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB      int    `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB      int    `mapstructure:"REDIS_QUEUE_DB"`
	ProviderCacheTTL  int    `mapstructure:"PROVIDER_CACHE_TTL_SECONDS"`
	WorkerConcurrency int    `mapstructure:"WORKER_CONCURRENCY"`

	// Notification gateways.
	NotificationsEnabled    bool   `mapstructure:"NOTIFICATIONS_ENABLED"`
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`
	SMTPHost                string `mapstructure:"SMTP_HOST"`
	SMTPPort                int    `mapstructure:"SMTP_PORT"`
	SMTPUsername            string `mapstructure:"SMTP_USERNAME"`
	SMTPPassword            string `mapstructure:"SMTP_PASSWORD"`
	SMTPFrom                string `mapstructure:"SMTP_FROM"`

	// Booking and recommendation rules.
	BookingLeadDays     int     `mapstructure:"BOOKING_LEAD_DAYS"`
	BookingTimezone     string  `mapstructure:"BOOKING_TIMEZONE"`
	DefaultSlotCapacity int     `mapstructure:"DEFAULT_SLOT_CAPACITY"`
	RatingThreshold     float64 `mapstructure:"RATING_THRESHOLD"`
	RecommendationLimit int     `mapstructure:"RECOMMENDATION_LIMIT"`
}

var AppConfig Config

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("REQUIRE_AUTH", false)
	v.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "glowbook")

	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_CACHE_DB", 0)
	v.SetDefault("REDIS_QUEUE_DB", 3)
	v.SetDefault("PROVIDER_CACHE_TTL_SECONDS", 60)
	v.SetDefault("WORKER_CONCURRENCY", 10)

	v.SetDefault("NOTIFICATIONS_ENABLED", false)
	v.SetDefault("FIREBASE_CREDENTIALS_FILE", "serviceAccountKey.json")
	v.SetDefault("SMTP_HOST", "")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_USERNAME", "")
	v.SetDefault("SMTP_PASSWORD", "")
	v.SetDefault("SMTP_FROM", "no-reply@glowbook.app")

	v.SetDefault("BOOKING_LEAD_DAYS", 3)
	v.SetDefault("BOOKING_TIMEZONE", "UTC")
	v.SetDefault("DEFAULT_SLOT_CAPACITY", 1)
	v.SetDefault("RATING_THRESHOLD", 3.0)
	v.SetDefault("RECOMMENDATION_LIMIT", 5)
}

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	SetDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// Location resolves BOOKING_TIMEZONE, falling back to UTC when it is unknown.
func (c Config) Location() *time.Location {
	if c.BookingTimezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.BookingTimezone)
	if err != nil {
		log.Printf("unknown BOOKING_TIMEZONE %q, using UTC", c.BookingTimezone)
		return time.UTC
	}
	return loc
}

// ProviderCacheExpiry is the TTL of the approved provider catalogue in Redis.
func (c Config) ProviderCacheExpiry() time.Duration {
	return time.Duration(c.ProviderCacheTTL) * time.Second
}

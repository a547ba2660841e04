package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
// ADMIN_PASSWORD, CLOUDINARY_UPLOAD_PRESET and CLOUDINARY_CLOUD_NAME carry no
// defaults on purpose: an empty password never matches any login attempt and
// an empty cloud name yields an upload failure, so a misconfigured deploy
// fails closed instead of open.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// MongoDB
	MongoURL string `mapstructure:"MONGO_URL"`
	MongoDB  string `mapstructure:"MONGO_DB"`

	// Redis — catalog change fanout between instances
	RedisURL string `mapstructure:"REDIS_URL"`

	// Access gate
	AdminPassword      string `mapstructure:"ADMIN_PASSWORD"`
	JWTSecret          string `mapstructure:"JWT_SECRET"`
	JWTExpirationHours int    `mapstructure:"JWT_EXPIRATION_HOURS"`

	// Cloudinary
	CloudinaryCloudName    string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryUploadPreset string `mapstructure:"CLOUDINARY_UPLOAD_PRESET"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("MONGO_URL", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DB", "krevo")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("JWT_SECRET", "dev-only-secret")
	viper.SetDefault("JWT_EXPIRATION_HOURS", 8)

	// Keys without defaults must be bound explicitly or Unmarshal never sees
	// their env values.
	for _, key := range []string{"ADMIN_PASSWORD", "CLOUDINARY_CLOUD_NAME", "CLOUDINARY_UPLOAD_PRESET"} {
		_ = viper.BindEnv(key)
	}

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

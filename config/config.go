package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration, read once at boot.
type Config struct {
	Port        string
	Env         string
	CORSOrigins []string

	MongoURI string
	MongoDB  string

	RedisAddr     string
	RedisPassword string

	JWTSecret      string
	JWTExpiryHours int

	AdminEmail    string
	AdminPassword string
}

var cfg *Config

// Load reads configuration from environment variables with development
// defaults. MONGODB_URI has no default on purpose: boot fails without it.
func Load() *Config {
	v := viper.New()

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("MONGODB_DB", "piyush_lifespaces")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("JWT_EXPIRY_HOURS", 24)

	v.AutomaticEnv()

	cfg = &Config{
		Port:           v.GetString("PORT"),
		Env:            v.GetString("ENV"),
		CORSOrigins:    strings.Split(v.GetString("CORS_ORIGINS"), ","),
		MongoURI:       v.GetString("MONGODB_URI"),
		MongoDB:        v.GetString("MONGODB_DB"),
		RedisAddr:      v.GetString("REDIS_ADDR"),
		RedisPassword:  v.GetString("REDIS_PASSWORD"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		JWTExpiryHours: v.GetInt("JWT_EXPIRY_HOURS"),
		AdminEmail:     v.GetString("ADMIN_EMAIL"),
		AdminPassword:  v.GetString("ADMIN_PASSWORD"),
	}
	return cfg
}

// Get returns the loaded configuration, loading it on first use.
func Get() *Config {
	if cfg == nil {
		return Load()
	}
	return cfg
}

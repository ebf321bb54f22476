package config

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	AWS      AWSConfig
	Log      LogConfig
}

// DatabaseConfig holds database configuration. An empty URL disables persistence.
type DatabaseConfig struct {
	URL string
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           string
	Env            string
	AllowedOrigins []string
}

// AWSConfig holds AWS/S3 configuration. An empty bucket disables object storage.
type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	S3Bucket        string
	S3Endpoint      string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level zerolog.Level
}

// Load loads configuration from environment variables and .env files
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENVIRONMENT", "dev")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "")
	v.SetDefault("S3_BUCKET", "")
	v.SetDefault("S3_ENDPOINT", "")
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")

	keys := []string{
		"DATABASE_URL", "PORT", "ENVIRONMENT", "LOG_LEVEL",
		"AWS_REGION", "AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY",
		"S3_BUCKET", "S3_ENDPOINT", "ALLOWED_ORIGINS",
	}
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	env := v.GetString("ENVIRONMENT")
	if env == "" {
		env = "dev"
	}

	// .env.<env> is optional; environment variables still take precedence
	v.SetConfigName(".env." + env)
	v.SetConfigType("env")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	level, err := zerolog.ParseLevel(strings.ToLower(v.GetString("LOG_LEVEL")))
	if err != nil {
		log.Warn().Str("log_level", v.GetString("LOG_LEVEL")).Msg("Unknown log level, using info")
		level = zerolog.InfoLevel
	}

	var config Config
	config.Database.URL = v.GetString("DATABASE_URL")
	config.Server.Port = v.GetString("PORT")
	config.Server.Env = env
	config.Server.AllowedOrigins = splitList(v.GetString("ALLOWED_ORIGINS"))
	config.AWS.Region = v.GetString("AWS_REGION")
	config.AWS.AccessKeyID = v.GetString("AWS_ACCESS_KEY_ID")
	config.AWS.SecretAccessKey = v.GetString("AWS_SECRET_ACCESS_KEY")
	config.AWS.S3Bucket = v.GetString("S3_BUCKET")
	config.AWS.S3Endpoint = v.GetString("S3_ENDPOINT")
	config.Log.Level = level

	return &config, nil
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

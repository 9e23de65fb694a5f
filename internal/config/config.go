// internal/config/config.go
package config

import (
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Cache   CacheConfig
	Archive ArchiveConfig
}

type ServerConfig struct {
	Port           string
	Mode           string
	ReadTimeout    int
	WriteTimeout   int
	AllowedOrigins []string
}

type CacheConfig struct {
	Enabled                   bool
	RedisURL                  string
	RedisHost                 string
	RedisPort                 string
	RedisPassword             string
	RedisDB                   int
	RecommendationsTTLSeconds int
}

// ArchiveConfig configures the optional S3-compatible archive for
// generated export files. Disabled unless a bucket is configured.
type ArchiveConfig struct {
	Enabled   bool
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
	Prefix    string
}

var (
	once     sync.Once
	instance *Config
)

func Load() *Config {
	once.Do(func() {
		// Load .env file if it exists
		_ = godotenv.Load()

		// Set default values
		viper.SetDefault("SERVER_PORT", "8080")
		viper.SetDefault("SERVER_MODE", "debug")
		viper.SetDefault("SERVER_READ_TIMEOUT", 10)
		viper.SetDefault("SERVER_WRITE_TIMEOUT", 10)
		viper.SetDefault("SERVER_ALLOWED_ORIGINS", []string{"*"})
		viper.SetDefault("CACHE_ENABLED", false)
		viper.SetDefault("REDIS_URL", "")
		viper.SetDefault("REDIS_HOST", "127.0.0.1")
		viper.SetDefault("REDIS_PORT", "6379")
		viper.SetDefault("REDIS_PASSWORD", "")
		viper.SetDefault("REDIS_DB", 0)
		viper.SetDefault("CACHE_RECOMMENDATIONS_TTL_SECONDS", 60)
		viper.SetDefault("ARCHIVE_ENABLED", false)
		viper.SetDefault("ARCHIVE_ENDPOINT", "")
		viper.SetDefault("ARCHIVE_ACCESS_KEY", "")
		viper.SetDefault("ARCHIVE_SECRET_KEY", "")
		viper.SetDefault("ARCHIVE_BUCKET", "")
		viper.SetDefault("ARCHIVE_REGION", "us-east-1")
		viper.SetDefault("ARCHIVE_USE_SSL", true)
		viper.SetDefault("ARCHIVE_PREFIX", "reorder-exports")

		// Read from environment variables
		viper.AutomaticEnv()

		instance = &Config{
			Server: ServerConfig{
				Port:           viper.GetString("SERVER_PORT"),
				Mode:           viper.GetString("SERVER_MODE"),
				ReadTimeout:    viper.GetInt("SERVER_READ_TIMEOUT"),
				WriteTimeout:   viper.GetInt("SERVER_WRITE_TIMEOUT"),
				AllowedOrigins: viper.GetStringSlice("SERVER_ALLOWED_ORIGINS"),
			},
			Cache: CacheConfig{
				Enabled:                   viper.GetBool("CACHE_ENABLED"),
				RedisURL:                  viper.GetString("REDIS_URL"),
				RedisHost:                 viper.GetString("REDIS_HOST"),
				RedisPort:                 viper.GetString("REDIS_PORT"),
				RedisPassword:             viper.GetString("REDIS_PASSWORD"),
				RedisDB:                   viper.GetInt("REDIS_DB"),
				RecommendationsTTLSeconds: viper.GetInt("CACHE_RECOMMENDATIONS_TTL_SECONDS"),
			},
			Archive: ArchiveConfig{
				Enabled:   viper.GetBool("ARCHIVE_ENABLED"),
				Endpoint:  viper.GetString("ARCHIVE_ENDPOINT"),
				AccessKey: viper.GetString("ARCHIVE_ACCESS_KEY"),
				SecretKey: viper.GetString("ARCHIVE_SECRET_KEY"),
				Bucket:    viper.GetString("ARCHIVE_BUCKET"),
				Region:    viper.GetString("ARCHIVE_REGION"),
				UseSSL:    viper.GetBool("ARCHIVE_USE_SSL"),
				Prefix:    viper.GetString("ARCHIVE_PREFIX"),
			},
		}
	})

	return instance
}

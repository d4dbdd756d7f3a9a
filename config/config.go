package config

import (
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port            string        `envconfig:"STOREFRONT_PORT"  default:":8080"`
	BackendBaseURL  string        `envconfig:"BACKEND_BASE_URL" default:"http://localhost:8081"`
	UpstreamTimeout time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"5s"`
	SessionTTL      time.Duration `envconfig:"SESSION_TTL"      default:"30m"`
	RedisAddr       string        `envconfig:"REDIS_ADDR"` // empty means in-memory sessions
	LogLevel        string        `envconfig:"LOG_LEVEL"        default:"info"`
}

var (
	config Config
	once   sync.Once
)

func LoadConfig(logger *logrus.Logger) *Config {
	once.Do(func() {
		err := godotenv.Load()
		if err != nil && !os.IsNotExist(err) {
			logger.Warnf("Error loading .env file (but continuing): %v", err)
		} else if err == nil {
			logger.Info("Loaded configuration from .env file")
		}

		err = envconfig.Process("", &config)
		if err != nil {
			logger.Fatalf("Failed to process configuration from environment variables: %v", err)
		}

		logger.Infof("Configuration loaded: Port=%s, Backend=%s, LogLevel=%s", config.Port, config.BackendBaseURL, config.LogLevel)
		if config.RedisAddr != "" {
			logger.Infof("Configuration loaded: sessions backed by Redis at %s", config.RedisAddr)
		} else {
			logger.Info("Configuration loaded: REDIS_ADDR not set, sessions kept in memory")
		}
	})
	return &config
}

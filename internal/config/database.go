package config

import (
	"time"
)

type DatabaseConfig struct {
	URI            string
	Database       string
	MaxPoolSize    int
	MinPoolSize    int
	ConnectTimeout time.Duration
	SocketTimeout  time.Duration
}

func loadDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		URI:            getEnv("DATABASE_URL", "mongodb://localhost:27017"),
		Database:       getEnv("DATABASE_NAME", "nazarblog"),
		MaxPoolSize:    getEnvAsInt("DATABASE_MAX_POOL_SIZE", 100),
		MinPoolSize:    getEnvAsInt("DATABASE_MIN_POOL_SIZE", 5),
		ConnectTimeout: getEnvAsDuration("DATABASE_CONNECT_TIMEOUT", 10*time.Second),
		SocketTimeout:  getEnvAsDuration("DATABASE_SOCKET_TIMEOUT", 30*time.Second),
	}
}

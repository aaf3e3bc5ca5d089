package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	EnvPort           = "PORT"
	EnvGRPCAddress    = "GRPC_ADDRESS"
	EnvDatabaseDSN    = "DATABASE_DSN"
	EnvDBHost         = "DB_HOST"
	EnvDBPort         = "DB_PORT"
	EnvDBUser         = "DB_USER"
	EnvDBPassword     = "DB_PASSWORD"
	EnvDBName         = "DB_NAME"
	EnvDBDatabase     = "DB_DATABASE"
	EnvDBSSLMode      = "DB_SSLMODE"
	EnvMaxConns       = "DB_MAX_CONNS"
	EnvAcquireTimeout = "DB_ACQUIRE_TIMEOUT"
	EnvBcryptCost     = "BCRYPT_COST"
	EnvRunMigrations  = "RUN_MIGRATIONS"
	EnvLogLevel       = "LOG_LEVEL"
)

// parseEnv overlays values taken from environment variables. Unset or
// unparsable variables leave the current value untouched.
//
// PORT holds a bare port number and binds on all interfaces. DB_DATABASE is
// accepted for the database name; DB_NAME wins when both are set.
func parseEnv(config *Config) {
	if port := envOrDefault(EnvPort, ""); port != "" {
		config.EndpointAddrHTTP = ":" + port
	}
	config.EndpointAddrGRPC = envOrDefault(EnvGRPCAddress, config.EndpointAddrGRPC)
	config.DatabaseDSN = envOrDefault(EnvDatabaseDSN, config.DatabaseDSN)
	config.DBHost = envOrDefault(EnvDBHost, config.DBHost)
	config.DBPort = intEnvOrDefault(EnvDBPort, config.DBPort)
	config.DBUser = envOrDefault(EnvDBUser, config.DBUser)
	config.DBPassword = envOrDefault(EnvDBPassword, config.DBPassword)
	config.DBName = envOrDefault(EnvDBName, envOrDefault(EnvDBDatabase, config.DBName))
	config.DBSSLMode = envOrDefault(EnvDBSSLMode, config.DBSSLMode)
	config.MaxConns = intEnvOrDefault(EnvMaxConns, config.MaxConns)
	config.AcquireTimeout = durationEnvOrDefault(EnvAcquireTimeout, config.AcquireTimeout)
	config.BcryptCost = intEnvOrDefault(EnvBcryptCost, config.BcryptCost)
	config.RunMigrations = boolEnvOrDefault(EnvRunMigrations, config.RunMigrations)
	config.LogLevel = envOrDefault(EnvLogLevel, config.LogLevel)
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func intEnvOrDefault(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func boolEnvOrDefault(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func durationEnvOrDefault(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

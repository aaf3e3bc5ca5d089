package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/tallerkeeper/internal/flagx"
	"github.com/dmitrijs2005/tallerkeeper/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Durations
// accept "1s"-style strings or integer nanoseconds. Pointer fields tell
// "absent" apart from zero values.
type JsonConfig struct {
	EndpointAddrHTTP *string         `json:"endpoint_addr_http"`
	EndpointAddrGRPC *string         `json:"endpoint_addr_grpc"`
	DatabaseDSN      *string         `json:"database_dsn"`
	DBHost           *string         `json:"db_host"`
	DBPort           *int            `json:"db_port"`
	DBUser           *string         `json:"db_user"`
	DBPassword       *string         `json:"db_password"`
	DBName           *string         `json:"db_name"`
	DBSSLMode        *string         `json:"db_sslmode"`
	MaxConns         *int            `json:"max_conns"`
	AcquireTimeout   *timex.Duration `json:"acquire_timeout"`
	BcryptCost       *int            `json:"bcrypt_cost"`
	RunMigrations    *bool           `json:"run_migrations"`
	ShutdownTimeout  *timex.Duration `json:"shutdown_timeout"`
	LogLevel         *string         `json:"log_level"`
}

// parseJson loads configuration values from the file named by -c/-config.
// Nothing happens when neither flag is given. Unreadable files or invalid
// JSON panic, as the server cannot start with a broken config.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.DBHost, c.DBHost)
	setInt(&config.DBPort, c.DBPort)
	setString(&config.DBUser, c.DBUser)
	setString(&config.DBPassword, c.DBPassword)
	setString(&config.DBName, c.DBName)
	setString(&config.DBSSLMode, c.DBSSLMode)
	setInt(&config.MaxConns, c.MaxConns)
	if c.AcquireTimeout != nil {
		config.AcquireTimeout = c.AcquireTimeout.Duration
	}
	setInt(&config.BcryptCost, c.BcryptCost)
	if c.RunMigrations != nil {
		config.RunMigrations = *c.RunMigrations
	}
	if c.ShutdownTimeout != nil {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	setString(&config.LogLevel, c.LogLevel)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

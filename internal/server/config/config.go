// Package config handles configuration for the server component,
// including defaults, JSON overlay, environment variables and
// command-line flags.
package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"
)

// Config holds runtime settings for the server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the JSON API.
//   - EndpointAddrGRPC: bind address for the gRPC health service; empty disables it.
//   - DatabaseDSN: full PostgreSQL DSN; when set it wins over the DB* parts.
//   - DBHost / DBPort / DBUser / DBPassword / DBName / DBSSLMode: DSN parts.
//   - MaxConns / AcquireTimeout: connection pool bound and wait policy (0 waits forever).
//   - BcryptCost: work factor for password hashes.
//   - RunMigrations: create the schema on start.
//   - ShutdownTimeout: grace period for in-flight requests on stop.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	EndpointAddrHTTP string
	EndpointAddrGRPC string
	DatabaseDSN      string
	DBHost           string
	DBPort           int
	DBUser           string
	DBPassword       string
	DBName           string
	DBSSLMode        string
	MaxConns         int
	AcquireTimeout   time.Duration
	BcryptCost       int
	RunMigrations    bool
	ShutdownTimeout  time.Duration
	LogLevel         string
}

// LoadDefaults populates Config with development defaults.
// NOTE: the database credentials are insecure and meant to be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":3000"
	c.EndpointAddrGRPC = ":50051"
	c.DatabaseDSN = ""
	c.DBHost = "localhost"
	c.DBPort = 5432
	c.DBUser = "postgres"
	c.DBPassword = "postgres"
	c.DBName = "taller"
	c.DBSSLMode = "disable"
	c.MaxConns = 10
	c.AcquireTimeout = 0
	c.BcryptCost = 10
	c.RunMigrations = true
	c.ShutdownTimeout = 10 * time.Second
	c.LogLevel = "info"
}

// DSN returns the connection string for the pgx driver.
func (c *Config) DSN() string {
	if c.DatabaseDSN != "" {
		return c.DatabaseDSN
	}

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.DBUser, c.DBPassword),
		Host:   net.JoinHostPort(c.DBHost, strconv.Itoa(c.DBPort)),
		Path:   "/" + c.DBName,
	}
	if c.DBSSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {c.DBSSLMode}}.Encode()
	}
	return u.String()
}

// Validate reports settings the server cannot start with.
func (c *Config) Validate() error {
	if c.EndpointAddrHTTP == "" {
		return fmt.Errorf("invalid http address: must not be empty")
	}
	if c.MaxConns <= 0 {
		return fmt.Errorf("invalid max connections %d: must be > 0", c.MaxConns)
	}
	if c.AcquireTimeout < 0 {
		return fmt.Errorf("invalid acquire timeout %s: must be >= 0", c.AcquireTimeout)
	}
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return fmt.Errorf("invalid bcrypt cost %d: must be in range 4..31", c.BcryptCost)
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

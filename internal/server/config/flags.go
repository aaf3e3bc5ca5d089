package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/tallerkeeper/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":3000")
//	-g string   gRPC health bind address, empty disables it
//	-d string   PostgreSQL DSN
//	-n int      max pooled connections
//	-w int      acquire timeout, milliseconds (0 waits forever)
//	-b int      bcrypt cost
//	-m bool     run schema bootstrap on start
//	-l string   log level
//
// Only recognised flags are passed to the FlagSet (flagx.FilterArgs), so
// -c/-config for the JSON file does not collide.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-g", "-d", "-n", "-w", "-b", "-m", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.EndpointAddrGRPC, "g", config.EndpointAddrGRPC, "address and port of gRPC health service")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.IntVar(&config.MaxConns, "n", config.MaxConns, "max pooled connections")
	acquireTimeout := fs.Int("w", int(config.AcquireTimeout.Milliseconds()), "acquire timeout (in milliseconds)")
	fs.IntVar(&config.BcryptCost, "b", config.BcryptCost, "bcrypt cost")
	fs.BoolVar(&config.RunMigrations, "m", config.RunMigrations, "run schema bootstrap")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AcquireTimeout = time.Duration(*acquireTimeout) * time.Millisecond
}

// Package server wires the configuration, the connection pool, the services
// and the network servers together and runs them until a termination signal
// arrives.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/tallerkeeper/internal/dbx"
	"github.com/dmitrijs2005/tallerkeeper/internal/logging"
	"github.com/dmitrijs2005/tallerkeeper/internal/server/config"
	"github.com/dmitrijs2005/tallerkeeper/internal/server/httpapi"
	"github.com/dmitrijs2005/tallerkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/tallerkeeper/internal/server/services"
	_ "github.com/jackc/pgx/v5/stdlib"

	gs "github.com/dmitrijs2005/tallerkeeper/internal/server/grpc"
)

const startupTimeout = 10 * time.Second

type App struct {
	config           *config.Config
	logger           logging.Logger
	pool             *dbx.Pool
	equipmentService *services.EquipmentService
	userService      *services.UserService
}

func NewApp(c *config.Config) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	pool, err := dbx.Open(ctx, "pgx", c.DSN(), dbx.PoolOptions{
		MaxConns:       c.MaxConns,
		AcquireTimeout: c.AcquireTimeout,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()

	if c.RunMigrations {
		if err := rm.RunMigrations(ctx, pool.DB()); err != nil {
			logger.Error(ctx, "schema bootstrap failed", "error", err.Error())
		}
	}

	us, err := services.NewUserService(pool, rm, c.BcryptCost, logger)
	if err != nil {
		_ = pool.Close()
		return nil, err
	}
	es := services.NewEquipmentService(pool, rm, logger)

	return &App{config: c, logger: logger, pool: pool, equipmentService: es, userService: us}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger, app.equipmentService, app.userService, app.config.ShutdownTimeout)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.pool, 0)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until ctx is cancelled, a termination signal arrives or one of
// the servers fails, then closes the pool.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	if app.config.EndpointAddrGRPC != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.startGRPCServer(ctx, cancelFunc)
		}()
	}

	wg.Wait()

	if err := app.pool.Close(); err != nil {
		app.logger.Error(context.Background(), "closing pool", "error", err.Error())
	}

	app.logger.Info(context.Background(), "App stopped")
}

package cli

import (
	"bufio"
	"context"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/tallerkeeper/internal/client/client"
	"github.com/dmitrijs2005/tallerkeeper/internal/client/config"
	"github.com/dmitrijs2005/tallerkeeper/internal/client/models"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// apiClient is the part of client.HTTPClient the commands use.
type apiClient interface {
	List(ctx context.Context) ([]*models.Equipment, error)
	Get(ctx context.Context, id int64) (*models.Equipment, error)
	Create(ctx context.Context, e *models.Equipment) (*models.Equipment, error)
	Update(ctx context.Context, e *models.Equipment) (*models.Equipment, error)
	Delete(ctx context.Context, id int64) error
	Register(ctx context.Context, userName *string, email string, password []byte) (int64, error)
	Login(ctx context.Context, email string, password []byte) error
}

type pinger interface {
	Ping(ctx context.Context) error
}

type App struct {
	config  *config.Config
	api     apiClient
	health  pinger
	closers []io.Closer
	reader  *bufio.Reader
	out     io.Writer

	mu       sync.Mutex
	userName string
	mode     Mode
}

func NewApp(c *config.Config) (*App, error) {

	apiClient, err := client.NewHTTPClient(c.ServerURL, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	app := &App{config: c, api: apiClient, health: apiClient, reader: bufio.NewReader(os.Stdin), out: os.Stdout}

	if c.HealthAddr != "" {
		hc, err := client.NewHealthClient(c.HealthAddr)
		if err != nil {
			return nil, err
		}
		app.health = hc
		app.closers = append(app.closers, hc)
	}

	return app, nil
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.mode != mode {
		a.mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) Run(ctx context.Context) {
	defer func() {
		for _, c := range a.closers {
			_ = c.Close()
		}
	}()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.userName != ""
}

func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := a.health.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
	} else {
		a.setMode(ModeOnline)
	}
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	a.checkOnline(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

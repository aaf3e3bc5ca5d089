// Package httpapi exposes the equipment and credential services as a JSON
// API over HTTP.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/tallerkeeper/internal/logging"
	"github.com/dmitrijs2005/tallerkeeper/internal/server/models"
)

type equipmentSvc interface {
	List(ctx context.Context) ([]*models.Equipment, error)
	Get(ctx context.Context, id int64) (*models.Equipment, error)
	Create(ctx context.Context, e *models.Equipment) (*models.Equipment, error)
	Update(ctx context.Context, e *models.Equipment) (*models.Equipment, error)
	Delete(ctx context.Context, id int64) error
}

type userSvc interface {
	Register(ctx context.Context, userName *string, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
}

type HTTPServer struct {
	address         string
	equipment       equipmentSvc
	users           userSvc
	logger          logging.Logger
	shutdownTimeout time.Duration
}

func NewHTTPServer(a string, l logging.Logger, es equipmentSvc, us userSvc, shutdownTimeout time.Duration) *HTTPServer {
	return &HTTPServer{
		address:         a,
		logger:          l.With("module", "http_server"),
		equipment:       es,
		users:           us,
		shutdownTimeout: shutdownTimeout,
	}
}

// Handler returns the routed API with its middleware chain.
func (s *HTTPServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("GET /equipos", s.handleListEquipment)
	mux.HandleFunc("POST /equipos", s.handleCreateEquipment)
	mux.HandleFunc("PUT /equipos/{id}", s.handleUpdateEquipment)
	mux.HandleFunc("DELETE /equipos/{id}", s.handleDeleteEquipment)
	mux.HandleFunc("GET /equipos/{id}", s.handleGetEquipment)

	mux.HandleFunc("POST /register", s.handleRegister)
	mux.HandleFunc("POST /login", s.handleLogin)

	return s.withRequestID(s.withAccessLog(s.withRecover(withCORS(mux))))
}

// Run serves until ctx is cancelled, then drains in-flight requests for up
// to the shutdown timeout before returning.
func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.serve(ctx, listen)
}

func (s *HTTPServer) serve(ctx context.Context, listen net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		// requests keep ctx values but outlive its cancellation until drained
		BaseContext: func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		s.logger.Info(context.Background(), "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(shutdownCtx, "HTTP shutdown", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	<-stopped
	return nil
}

func (s *HTTPServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, messageResponse{Message: "ok"})
}

// Package grpc serves the standard gRPC health-checking protocol, reporting
// whether the store behind the API is reachable.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/tallerkeeper/internal/common"
	"github.com/dmitrijs2005/tallerkeeper/internal/logging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const defaultCheckInterval = 15 * time.Second

type pinger interface {
	Ping(ctx context.Context) error
}

type GRPCServer struct {
	address       string
	store         pinger
	health        *health.Server
	checkInterval time.Duration
	logger        logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, store pinger, checkInterval time.Duration) *GRPCServer {
	if checkInterval <= 0 {
		checkInterval = defaultCheckInterval
	}
	hs := health.NewServer()
	// not serving until the first store ping succeeds
	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	hs.SetServingStatus(common.HealthServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	return &GRPCServer{
		address:       a,
		logger:        l.With("module", "grpc_server"),
		store:         store,
		health:        hs,
		checkInterval: checkInterval,
	}
}

// refresh pings the store and publishes the result for both the overall
// server and the equipment service.
func (s *GRPCServer) refresh(ctx context.Context) {
	st := healthpb.HealthCheckResponse_SERVING

	pingCtx, cancel := context.WithTimeout(ctx, s.checkInterval)
	defer cancel()

	if err := s.store.Ping(pingCtx); err != nil {
		st = healthpb.HealthCheckResponse_NOT_SERVING
		s.logger.Warn(ctx, "store ping failed", "error", err.Error())
	}

	s.health.SetServingStatus("", st)
	s.health.SetServingStatus(common.HealthServiceName, st)
}

// watchStore publishes the store state right away and then on every tick.
func (s *GRPCServer) watchStore(ctx context.Context) {
	s.refresh(ctx)

	ticker := time.NewTicker(s.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.refresh(ctx)
		}
	}
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.serve(ctx, listen)
}

func (s *GRPCServer) serve(ctx context.Context, listen net.Listener) error {

	// creates gRPC-server
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessLogInterceptor))

	// registers service
	healthpb.RegisterHealthServer(srv, s.health)

	go s.watchStore(ctx)

	go func() {
		<-ctx.Done()
		s.logger.Info(context.Background(), "Stopping gRPC server...")
		s.health.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}

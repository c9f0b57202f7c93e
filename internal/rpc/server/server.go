package server

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/MrSnakeDoc/bookhive/internal/logger"
)

// Server wraps a gRPC server and its listener address.
type Server struct {
	grpc   *grpc.Server
	addr   string
	logger logger.Logger
}

// New builds a gRPC server. Callers register their services on Registrar()
// before calling Start.
func New(addr string, log logger.Logger) *Server {
	return &Server{
		grpc:   grpc.NewServer(),
		addr:   addr,
		logger: log,
	}
}

// Registrar exposes the underlying server for service registration.
func (s *Server) Registrar() grpc.ServiceRegistrar {
	return s.grpc
}

// Start runs the gRPC server (blocks until error or shutdown).
func (s *Server) Start() error {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.logger.Infof("gRPC server listening on %s", s.addr)
	return s.grpc.Serve(lis)
}

// Stop drains in-flight RPCs until the context deadline, then forces the
// stragglers.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("gRPC server shutting down...")
	done := make(chan struct{})
	go func() {
		s.grpc.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		s.grpc.Stop()
		return ctx.Err()
	}
}

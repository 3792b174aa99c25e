package server

import (
	"context"
	"fmt"
	"net"

	"github.com/MKhiriev/go-fin-tracker/internal/config"
	myGRPC "github.com/MKhiriev/go-fin-tracker/internal/handler/grpc"
	"google.golang.org/grpc"
)

type grpcServer struct {
	server   *grpc.Server
	listener net.Listener
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: grpc %s: %w", errListen, cfg.GRPCAddress, err)
	}

	server := grpc.NewServer(grpc.UnaryInterceptor(handler.LoggingInterceptor))
	handler.Register(server)

	return &grpcServer{server: server, listener: listener}, nil
}

func (g *grpcServer) addr() string { return g.listener.Addr().String() }

func (g *grpcServer) close() error { return g.listener.Close() }

func (g *grpcServer) name() string { return "grpc" }

func (g *grpcServer) serve() error {
	return g.server.Serve(g.listener)
}

// shutdown waits for pending RPCs, falling back to a hard stop when ctx
// expires first.
func (g *grpcServer) shutdown(ctx context.Context) error {
	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		<-stopped
		return ctx.Err()
	}
}

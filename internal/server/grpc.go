package server

import (
	"context"
	"net"
	"time"

	"github.com/MKhiriev/go-lockr/internal/config"
	myGRPC "github.com/MKhiriev/go-lockr/internal/handler/grpc"
	"github.com/MKhiriev/go-lockr/internal/logger"

	"google.golang.org/grpc"
)

// healthCheckInterval is how often the database is pinged for the health
// status.
const healthCheckInterval = 10 * time.Second

type grpcServer struct {
	handler *myGRPC.Handler
	address string

	server *grpc.Server
	ctx    context.Context
	cancel context.CancelFunc

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	s := grpc.NewServer()
	handler.Register(s)
	ctx, cancel := context.WithCancel(context.Background())

	return &grpcServer{
		handler: handler,
		address: cfg.GRPCAddress,
		server:  s,
		ctx:     ctx,
		cancel:  cancel,
		logger:  logger,
	}
}

func (g *grpcServer) RunServer() {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		g.logger.Err(err).Str("address", g.address).Msg("gRPC server Listen")
		return
	}

	go g.handler.Watch(g.ctx, healthCheckInterval)

	g.logger.Info().Str("address", g.address).Msg("gRPC server listening")
	if err = g.server.Serve(listener); err != nil {
		g.logger.Err(err).Msg("gRPC server Serve")
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.cancel()
	g.handler.Shutdown()
	g.server.GracefulStop()
}

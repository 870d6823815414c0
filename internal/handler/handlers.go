package handler

import (
	"github.com/MKhiriev/go-lockr/internal/config"
	"github.com/MKhiriev/go-lockr/internal/handler/grpc"
	"github.com/MKhiriev/go-lockr/internal/handler/http"
	"github.com/MKhiriev/go-lockr/internal/logger"
	"github.com/MKhiriev/go-lockr/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates the transports enabled in cfg. pinger backs the gRPC
// health status and may be nil.
func NewHandlers(services *service.Services, pinger grpc.Pinger, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger,
			http.WithHashKey(cfg.App.HashKey),
			http.WithRequestTimeout(cfg.Server.RequestTimeout),
		)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(pinger, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}

package http

import (
	"time"

	"github.com/MKhiriev/go-lockr/internal/logger"
	"github.com/MKhiriev/go-lockr/internal/service"
	"github.com/MKhiriev/go-lockr/internal/utils"
)

// Handler serves the lockr REST API.
type Handler struct {
	services *service.Services

	// hasher verifies the HashSHA256 header of request bodies. Nil disables
	// the check.
	hasher *utils.Hasher

	requestTimeout time.Duration

	logger *logger.Logger
}

// Option configures optional Handler behavior.
type Option func(*Handler)

// WithHashKey enables the body integrity check.
func WithHashKey(key string) Option {
	return func(h *Handler) {
		if key != "" {
			h.hasher = utils.NewHasher(key)
		}
	}
}

// WithRequestTimeout bounds every request. Zero leaves requests unbounded.
func WithRequestTimeout(d time.Duration) Option {
	return func(h *Handler) {
		h.requestTimeout = d
	}
}

func NewHandler(services *service.Services, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		services: services,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	logger.Info().Bool("integrity_check", h.hasher != nil).Msg("http handler created")
	return h
}

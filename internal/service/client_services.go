package service

import (
	"github.com/MKhiriev/go-lockr/internal/adapter"
	"github.com/MKhiriev/go-lockr/internal/crypto"
	"github.com/MKhiriev/go-lockr/internal/logger"
	"github.com/MKhiriev/go-lockr/internal/session"
	"github.com/MKhiriev/go-lockr/internal/store"
)

// ClientServices bundles the client-side services around one session.
type ClientServices struct {
	AuthService  ClientAuthService
	VaultService ClientVaultService
	LockJob      LockJob
}

func NewClientServices(local *store.LocalStorages, serverAdapter adapter.ServerAdapter, sess *session.Session, vault crypto.VaultStage, logger *logger.Logger) *ClientServices {
	identity := &Identity{}

	return &ClientServices{
		AuthService:  NewClientAuthService(local, serverAdapter, sess, identity, logger),
		VaultService: NewClientVaultService(local, serverAdapter, sess, vault, identity, logger),
		LockJob:      NewLockJob(sess, logger),
	}
}

package store

import "github.com/MKhiriev/go-lockr/internal/logger"

// LocalStorages groups the client cache repositories sharing one SQLite
// connection.
type LocalStorages struct {
	Sessions LocalSessionRepository
	Settings LocalSettingsRepository
}

func NewLocalStorages(db *DB, log *logger.Logger) *LocalStorages {
	return &LocalStorages{
		Sessions: NewLocalSessionRepository(db, log),
		Settings: NewLocalSettingsRepository(db, log),
	}
}

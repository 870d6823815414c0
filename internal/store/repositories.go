package store

import "github.com/MKhiriev/go-lockr/internal/logger"

// Repositories groups the server repositories sharing one PostgreSQL pool.
type Repositories struct {
	UserRepository     UserRepository
	CategoryRepository CategoryRepository
	EntryRepository    EntryRepository
	OTPRepository      OTPRepository
}

func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:     NewUserRepository(db, log),
		CategoryRepository: NewCategoryRepository(db, log),
		EntryRepository:    NewEntryRepository(db, log),
		OTPRepository:      NewOTPRepository(db, log),
	}
}

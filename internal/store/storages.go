package store

import "github.com/MKhiriev/go-posts/internal/logger"

// Storages bundles every repository together with the transaction and
// session facilities of the shared connection pool.
type Storages struct {
	UserRepository UserRepository
	PostRepository PostRepository
	Transactor     Transactor
	Sessions       SessionProvider
}

// NewStorages wires all repositories to db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		PostRepository: NewPostRepository(db, log),
		Transactor:     db,
		Sessions:       db,
	}
}

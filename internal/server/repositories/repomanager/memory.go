package repomanager

import (
	"context"
	"database/sql"

	"github.com/JoshuaSkootsky/roll-own-auth/internal/dbx"
	"github.com/JoshuaSkootsky/roll-own-auth/internal/server/repositories/users"
)

// MemoryRepositoryManager serves a single shared in-memory users repository,
// ignoring the DBTX it is handed. Used in tests and local development.
type MemoryRepositoryManager struct {
	users *users.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{users: users.NewMemoryRepository()}
}

func (m *MemoryRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return m.users
}

// UsersStore exposes the underlying store for test assertions.
func (m *MemoryRepositoryManager) UsersStore() *users.MemoryRepository {
	return m.users
}

func (m *MemoryRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return nil
}

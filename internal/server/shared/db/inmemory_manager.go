package db

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/authgate/internal/server/identities"
)

type InMemoryRepositoryManager struct {
	identities identities.Repository
}

func (m InMemoryRepositoryManager) Conn() *sql.DB {
	return nil
}

func (m InMemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m InMemoryRepositoryManager) Identities() identities.Repository {
	return m.identities
}

func NewInMemoryRepositoryManager() RepositoryManager {
	return InMemoryRepositoryManager{identities: identities.NewSeededMemoryRepository()}
}

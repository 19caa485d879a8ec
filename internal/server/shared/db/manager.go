// Package db selects and wires the identity storage backend. A DSN selects
// PostgreSQL with goose migrations; without one the seeded in-memory store
// is used.
package db

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/authgate/internal/server/identities"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Identities() identities.Repository
}

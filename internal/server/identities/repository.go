// Package identities stores registered accounts and provides lookup by
// username. Implementations exist for PostgreSQL and for a seeded in-memory
// store used in development and tests.
package identities

import "context"

type Repository interface {
	Create(ctx context.Context, identity *Identity) (*Identity, error)
	FindByUsername(ctx context.Context, username string) (*Identity, error)
	List(ctx context.Context) ([]*Identity, error)
}

package identities

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/authgate/internal/common"
	"github.com/google/uuid"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, identity *Identity) (*Identity, error) {

	if identity.ID == "" {
		identity.ID = uuid.NewString()
	}

	query :=
		`INSERT INTO identities (id, username, password)
         VALUES ($1, $2, $3)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		identity.ID, identity.Username, identity.Password).Scan(&identity.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return identity, nil
}

func (r *PostgresRepository) FindByUsername(ctx context.Context, username string) (*Identity, error) {
	query :=
		`SELECT id, username, password, created_at FROM identities
		 WHERE username = $1
		 `

	identity := &Identity{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&identity.ID, &identity.Username, &identity.Password, &identity.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return identity, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*Identity, error) {
	query :=
		`SELECT id, username, password, created_at FROM identities
		 ORDER BY created_at
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*Identity
	for rows.Next() {
		identity := &Identity{}
		if err := rows.Scan(&identity.ID, &identity.Username, &identity.Password, &identity.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, identity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

package identities

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/dmitrijs2005/authgate/internal/common"
)

// MemoryRepository keeps identities in process memory. Lookups and listings
// may run concurrently; writes take the exclusive lock.
type MemoryRepository struct {
	mu         sync.RWMutex
	byUsername map[string]*Identity
	order      []string
	nextID     int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byUsername: make(map[string]*Identity),
		nextID:     1,
	}
}

// NewSeededMemoryRepository returns a MemoryRepository preloaded with the
// development accounts. Only the first one can log in; the rest exist so the
// listing endpoint has something to show.
func NewSeededMemoryRepository() *MemoryRepository {
	r := NewMemoryRepository()
	seed := []*Identity{
		{Username: "sukkergris", Password: "troika"},
		{Username: "Robby Newby"},
		{Username: "Billy Strut"},
		{Username: "Curly Mavies"},
	}
	for _, identity := range seed {
		_, _ = r.Create(context.Background(), identity)
	}
	return r
}

// Create stores a new identity. Usernames are unique, matching the
// constraint the postgres schema enforces.
func (r *MemoryRepository) Create(ctx context.Context, identity *Identity) (*Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byUsername[identity.Username]; ok {
		return nil, common.ErrorAlreadyExists
	}

	if identity.ID == "" {
		identity.ID = strconv.Itoa(r.nextID)
	}
	r.nextID++
	if identity.CreatedAt.IsZero() {
		identity.CreatedAt = time.Now()
	}

	r.byUsername[identity.Username] = identity
	r.order = append(r.order, identity.Username)
	return identity, nil
}

func (r *MemoryRepository) FindByUsername(ctx context.Context, username string) (*Identity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	identity, ok := r.byUsername[username]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return identity, nil
}

// List returns identities in insertion order.
func (r *MemoryRepository) List(ctx context.Context) ([]*Identity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Identity, 0, len(r.order))
	for _, username := range r.order {
		result = append(result, r.byUsername[username])
	}
	return result, nil
}

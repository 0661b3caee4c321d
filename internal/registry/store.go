package registry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/sensorhub/sensorhub/internal/models"
)

// Store persists registered servers.
type Store struct {
	db *sql.DB

	// ULID entropy must be guarded: the monotonic reader is not safe
	// for concurrent use.
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
	now     func() time.Time
}

// NewStore creates a Store.
func NewStore(db *sql.DB) *Store {
	return &Store{
		db:      db,
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
		now:     time.Now,
	}
}

// CreateServer registers a server under a freshly generated ULID.
func (s *Store) CreateServer(ctx context.Context, serverName string) (models.Server, error) {
	now := s.now().UTC()

	s.mu.Lock()
	id, err := ulid.New(ulid.Timestamp(now), s.entropy)
	s.mu.Unlock()
	if err != nil {
		return models.Server{}, fmt.Errorf("generate ulid: %w", err)
	}

	server := models.Server{
		ServerULID: id.String(),
		ServerName: serverName,
		CreatedAt:  now,
	}

	if _, err := s.db.ExecContext(ctx, queryInsertServer,
		server.ServerULID, server.ServerName, server.CreatedAt); err != nil {
		return models.Server{}, fmt.Errorf("insert server: %w", err)
	}
	return server, nil
}

// GetServer looks up a registered server by its ULID.
// An unknown ULID yields models.ErrNotFound.
func (s *Store) GetServer(ctx context.Context, serverULID string) (models.Server, error) {
	var server models.Server
	err := s.db.QueryRowContext(ctx, queryServerByULID, serverULID).
		Scan(&server.ServerULID, &server.ServerName, &server.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Server{}, models.ErrNotFound
	case err != nil:
		return models.Server{}, fmt.Errorf("query server: %w", err)
	}
	return server, nil
}

package health

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sensorhub/sensorhub/internal/models"
)

// Store provides read-only access to the readings the deriver needs.
type Store struct {
	db *sql.DB
}

// NewStore creates a Store.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// LatestReading returns the most recent reading for the server.
// A server with no readings yields models.ErrNotFound; whether the
// server exists in the registry is not consulted here.
func (s *Store) LatestReading(ctx context.Context, serverULID string) (models.SensorReading, error) {
	var r models.SensorReading
	err := s.db.QueryRowContext(ctx, queryLatestReading, serverULID).Scan(
		&r.ID, &r.ServerULID, &r.ServerName, &r.Timestamp,
		&r.Temperature, &r.Humidity, &r.Voltage, &r.Current,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.SensorReading{}, models.ErrNotFound
	case err != nil:
		return models.SensorReading{}, fmt.Errorf("latest reading: %w", err)
	}
	return r, nil
}

// ObservedServers returns the distinct (server_ulid, server_name)
// pairs present in the readings table.
func (s *Store) ObservedServers(ctx context.Context) ([]ObservedServer, error) {
	rows, err := s.db.QueryContext(ctx, queryObservedServers)
	if err != nil {
		return nil, fmt.Errorf("observed servers: %w", err)
	}
	defer rows.Close()

	var servers []ObservedServer
	for rows.Next() {
		var o ObservedServer
		if err := rows.Scan(&o.ServerULID, &o.ServerName); err != nil {
			return nil, fmt.Errorf("scan observed server: %w", err)
		}
		servers = append(servers, o)
	}
	return servers, rows.Err()
}

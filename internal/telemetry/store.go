package telemetry

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/sensorhub/sensorhub/internal/models"
)

// Filter selects readings. All set fields are AND-composed; zero
// values mean "no constraint". Start and End are inclusive bounds.
type Filter struct {
	ServerULID string
	Start      *time.Time
	End        *time.Time
	SensorType string
}

// sensorColumns whitelists the presence-filterable sensor fields. An
// unrecognized SensorType applies no filter at all; that leniency is
// deliberate and documented.
var sensorColumns = map[string]string{
	"temperature": "temperature",
	"humidity":    "humidity",
	"voltage":     "voltage",
	"current":     "current",
}

// Store persists and queries sensor readings.
type Store struct {
	db *sql.DB
}

// NewStore creates a Store.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// InsertReading appends one reading and returns it with its assigned
// id. The server_ulid is not checked against the registry; readings
// for unregistered identifiers are accepted.
func (s *Store) InsertReading(ctx context.Context, r models.SensorReading) (models.SensorReading, error) {
	err := s.db.QueryRowContext(ctx, queryInsertReading,
		r.ServerULID, r.ServerName, r.Timestamp,
		r.Temperature, r.Humidity, r.Voltage, r.Current,
	).Scan(&r.ID)
	if err != nil {
		return models.SensorReading{}, fmt.Errorf("insert reading: %w", err)
	}
	return r, nil
}

// HasReading reports whether any reading exists for the server.
func (s *Store) HasReading(ctx context.Context, serverULID string) (bool, error) {
	var exists bool
	if err := s.db.QueryRowContext(ctx, queryReadingExists, serverULID).Scan(&exists); err != nil {
		return false, fmt.Errorf("reading exists: %w", err)
	}
	return exists, nil
}

// QueryReadings returns the readings matching all set filters, in
// store-natural order. No rows is an empty slice, not an error.
func (s *Store) QueryReadings(ctx context.Context, f Filter) ([]models.SensorReading, error) {
	query, args := buildQuery(f)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query readings: %w", err)
	}
	defer rows.Close()

	readings := []models.SensorReading{}
	for rows.Next() {
		var r models.SensorReading
		if err := rows.Scan(
			&r.ID, &r.ServerULID, &r.ServerName, &r.Timestamp,
			&r.Temperature, &r.Humidity, &r.Voltage, &r.Current,
		); err != nil {
			return nil, fmt.Errorf("scan reading: %w", err)
		}
		readings = append(readings, r)
	}
	return readings, rows.Err()
}

// buildQuery appends the conjunctive WHERE clause for the filter.
func buildQuery(f Filter) (string, []any) {
	var (
		conds []string
		args  []any
	)

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.ServerULID != "" {
		conds = append(conds, "server_ulid = "+arg(f.ServerULID))
	}
	if f.Start != nil {
		conds = append(conds, "timestamp >= "+arg(*f.Start))
	}
	if f.End != nil {
		conds = append(conds, "timestamp <= "+arg(*f.End))
	}
	if col, ok := sensorColumns[f.SensorType]; ok {
		conds = append(conds, col+" IS NOT NULL")
	}

	query := querySelectReadings
	if len(conds) > 0 {
		query += "\nWHERE " + strings.Join(conds, " AND ")
	}
	return query, args
}

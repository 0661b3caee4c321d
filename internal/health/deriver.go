package health

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sensorhub/sensorhub/internal/models"
)

// OnlineThreshold is the freshness window: a server whose most recent
// reading is at most this old is online.
const OnlineThreshold = 10 * time.Second

// UnknownName is reported when no server name is on record anywhere.
const UnknownName = "Unknown"

// ObservedServer is one distinct (server_ulid, server_name) pair seen
// in the readings table. The name is whatever the readings carried and
// may be absent.
type ObservedServer struct {
	ServerULID string
	ServerName *string
}

// ReadingSource is the reading access the deriver needs. *Store
// implements it; tests substitute fakes.
type ReadingSource interface {
	LatestReading(ctx context.Context, serverULID string) (models.SensorReading, error)
	ObservedServers(ctx context.Context) ([]ObservedServer, error)
}

// NameResolver resolves a server ULID to its registered record.
// The registry store implements it.
type NameResolver interface {
	GetServer(ctx context.Context, serverULID string) (models.Server, error)
}

// Deriver classifies servers as online or offline.
type Deriver struct {
	readings ReadingSource
	registry NameResolver
	now      func() time.Time
}

// NewDeriver creates a Deriver.
func NewDeriver(readings ReadingSource, registry NameResolver) *Deriver {
	return &Deriver{readings: readings, registry: registry, now: time.Now}
}

// ServerHealth derives the health view for one server. A server with
// no readings yields models.ErrNotFound; "never registered" and "no
// data yet" are not distinguished. The display name comes from the
// registry when available, else from the readings, else UnknownName.
func (d *Deriver) ServerHealth(ctx context.Context, serverULID string) (models.ServerHealth, error) {
	latest, err := d.readings.LatestReading(ctx, serverULID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.ServerHealth{}, models.ErrNotFound
		}
		return models.ServerHealth{}, fmt.Errorf("latest reading for %s: %w", serverULID, err)
	}

	name := UnknownName
	server, err := d.registry.GetServer(ctx, serverULID)
	switch {
	case err == nil:
		name = server.ServerName
	case errors.Is(err, models.ErrNotFound):
		if latest.ServerName != nil && *latest.ServerName != "" {
			name = *latest.ServerName
		}
	default:
		return models.ServerHealth{}, fmt.Errorf("resolve server name for %s: %w", serverULID, err)
	}

	return models.ServerHealth{
		ServerULID: serverULID,
		Status:     d.status(latest.Timestamp),
		ServerName: name,
	}, nil
}

// AllServersHealth derives the health view for every server observed
// in telemetry. This read model is independent of the registry:
// registered servers without readings are absent, unregistered
// identifiers with readings are present. Output order is unspecified.
func (d *Deriver) AllServersHealth(ctx context.Context) ([]models.ServerHealth, error) {
	observed, err := d.readings.ObservedServers(ctx)
	if err != nil {
		return nil, fmt.Errorf("observed servers: %w", err)
	}

	views := make([]models.ServerHealth, 0, len(observed))
	for _, o := range observed {
		latest, err := d.readings.LatestReading(ctx, o.ServerULID)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("latest reading for %s: %w", o.ServerULID, err)
		}

		name := UnknownName
		if o.ServerName != nil && *o.ServerName != "" {
			name = *o.ServerName
		}

		views = append(views, models.ServerHealth{
			ServerULID: o.ServerULID,
			Status:     d.status(latest.Timestamp),
			ServerName: name,
		})
	}
	return views, nil
}

// status applies the freshness policy against the injected clock.
func (d *Deriver) status(lastSeen time.Time) string {
	if d.now().UTC().Sub(lastSeen.UTC()) <= OnlineThreshold {
		return models.StatusOnline
	}
	return models.StatusOffline
}

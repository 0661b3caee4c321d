// Package health derives online/offline status for servers from the
// freshness of their most recent reading.
package health

// SQL queries for the health package.
const (
	queryLatestReading = `
SELECT id, server_ulid, server_name, timestamp, temperature, humidity, voltage, current
FROM sensor_data
WHERE server_ulid = $1
ORDER BY timestamp DESC
LIMIT 1`

	// queryObservedServers enumerates the servers seen in telemetry.
	// This is deliberately the readings table and not the registry: a
	// registered server with zero readings does not appear here, while
	// an unregistered identifier that sent readings does.
	queryObservedServers = `
SELECT DISTINCT server_ulid, server_name
FROM sensor_data`
)

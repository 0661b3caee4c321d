// Package telemetry implements the sensor reading store and the query
// and aggregation engine on top of it.
package telemetry

// SQL queries for the telemetry package. Filter conditions are
// appended dynamically in store.go; columns there are taken from a
// fixed whitelist, never from user input.
const (
	queryInsertReading = `
INSERT INTO sensor_data (server_ulid, server_name, timestamp, temperature, humidity, voltage, current)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

	queryReadingExists = `
SELECT EXISTS (SELECT 1 FROM sensor_data WHERE server_ulid = $1)`

	querySelectReadings = `
SELECT id, server_ulid, server_name, timestamp, temperature, humidity, voltage, current
FROM sensor_data`
)

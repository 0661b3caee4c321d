// Package registry maps generated server identifiers to human-readable
// names. Identifiers are ULIDs, so they sort lexicographically by
// creation time.
package registry

// SQL queries for the registry package.
const (
	queryInsertServer = `
INSERT INTO servers (server_ulid, server_name, created_at)
VALUES ($1, $2, $3)`

	queryServerByULID = `
SELECT server_ulid, server_name, created_at
FROM servers
WHERE server_ulid = $1`
)

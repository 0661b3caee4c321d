// Package auth implements the identity and credential store: user
// registration, password verification, and bearer-token issuance.
package auth

// SQL queries for the auth package.
const (
	queryInsertUser = `
INSERT INTO users (username, hashed_password)
VALUES ($1, $2)
RETURNING id, is_active`

	queryUserByUsername = `
SELECT id, username, hashed_password, is_active
FROM users
WHERE username = $1`
)

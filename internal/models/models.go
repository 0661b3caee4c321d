// Package models contains shared domain structs and the error taxonomy
// used across the service.
package models

import (
	"errors"
	"time"
)

// HealthResponse is returned by /healthz and /readyz endpoints.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// SensorReading is a single stored telemetry row. The four sensor
// fields are independently optional; at least one is present on any
// row that passed ingestion.
type SensorReading struct {
	ID          int64     `json:"id"`
	ServerULID  string    `json:"server_ulid"`
	ServerName  *string   `json:"server_name,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
	Temperature *float64  `json:"temperature"`
	Humidity    *float64  `json:"humidity"`
	Voltage     *float64  `json:"voltage"`
	Current     *float64  `json:"current"`
}

// Server is a registered logical server.
type Server struct {
	ServerULID string    `json:"server_ulid"`
	ServerName string    `json:"server_name"`
	CreatedAt  time.Time `json:"created_at"`
}

// User is an API principal. HashedPassword never leaves the auth
// package and is excluded from JSON.
type User struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	HashedPassword string `json:"-"`
	IsActive       bool   `json:"is_active"`
}

// AggregatedBucket is one time bucket of averaged readings. A field
// with no contributing rows stays nil, never zero.
type AggregatedBucket struct {
	Timestamp   time.Time `json:"timestamp"`
	Temperature *float64  `json:"temperature"`
	Humidity    *float64  `json:"humidity"`
	Voltage     *float64  `json:"voltage"`
	Current     *float64  `json:"current"`
}

// ServerHealth is the derived online/offline view of one server.
type ServerHealth struct {
	ServerULID string `json:"server_ulid"`
	Status     string `json:"status"`
	ServerName string `json:"server_name"`
}

// Health status values.
const (
	StatusOnline  = "online"
	StatusOffline = "offline"
)

// Sentinel errors mapped to HTTP status codes at the handler layer.
var (
	// ErrNotFound covers both "server unknown" and "server has no
	// readings" on health lookups; the two are not distinguished.
	ErrNotFound = errors.New("not found")

	// ErrConflict covers duplicate usernames and the
	// one-reading-per-server ingest rule.
	ErrConflict = errors.New("conflict")

	// ErrUnauthenticated covers bad credentials and missing, invalid
	// or expired tokens.
	ErrUnauthenticated = errors.New("unauthenticated")
)

// ValidationError is a user-visible 4xx input error with a
// human-readable message.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validationf builds a ValidationError from a plain message.
func Validationf(msg string) error { return &ValidationError{Msg: msg} }

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

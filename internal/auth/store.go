package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"github.com/sensorhub/sensorhub/internal/models"
)

// Store provides user persistence and credential checks.
type Store struct {
	db *sql.DB
}

// NewStore creates a Store.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// CreateUser registers a new user with a bcrypt-hashed password.
// A duplicate username yields models.ErrConflict.
func (s *Store) CreateUser(ctx context.Context, username, password string) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	u := models.User{Username: username, HashedPassword: string(hash)}
	err = s.db.QueryRowContext(ctx, queryInsertUser, username, string(hash)).
		Scan(&u.ID, &u.IsActive)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return models.User{}, fmt.Errorf("username %q: %w", username, models.ErrConflict)
		}
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

// Authenticate verifies username/password and returns the matching
// user. Any mismatch yields models.ErrUnauthenticated; the caller
// must not learn whether the username or the password was wrong.
func (s *Store) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	var u models.User
	err := s.db.QueryRowContext(ctx, queryUserByUsername, username).
		Scan(&u.ID, &u.Username, &u.HashedPassword, &u.IsActive)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, models.ErrUnauthenticated
	case err != nil:
		return models.User{}, fmt.Errorf("query user: %w", err)
	}

	if !u.IsActive {
		return models.User{}, models.ErrUnauthenticated
	}
	if bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte(password)) != nil {
		return models.User{}, models.ErrUnauthenticated
	}
	return u, nil
}

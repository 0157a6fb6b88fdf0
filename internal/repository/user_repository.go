package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/lib/pq"

	"news-api-be/internal/entities"
)

// UserRepository defines the interface for user database operations
type UserRepository interface {
	Create(username, email, passwordHash string) (*entities.User, error)
	FindByEmail(email string) (*entities.User, error)
}

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user. Uniqueness of email and username is enforced
// by the database; violations are classified into the matching sentinel
// error by constraint name.
func (r *userRepository) Create(username, email, passwordHash string) (*entities.User, error) {
	query := `
		INSERT INTO users (username, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, username, email, password_hash, created_at
	`

	var user entities.User
	err := r.db.QueryRow(query, username, email, passwordHash).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		if conflict := classifyUniqueViolation(err); conflict != nil {
			return nil, conflict
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// FindByEmail finds a user by email
func (r *userRepository) FindByEmail(email string) (*entities.User, error) {
	query := `
		SELECT id, username, email, password_hash, created_at
		FROM users
		WHERE email = $1
	`

	var user entities.User
	err := r.db.QueryRow(query, email).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &user, nil
}

// classifyUniqueViolation maps a postgres unique-violation error to the
// sentinel for the conflicting field, or nil if err is something else.
func classifyUniqueViolation(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || string(pqErr.Code) != pgerrcode.UniqueViolation {
		return nil
	}
	switch {
	case strings.Contains(pqErr.Constraint, "email"):
		return ErrEmailTaken
	case strings.Contains(pqErr.Constraint, "username"):
		return ErrUsernameTaken
	default:
		return nil
	}
}

package repository

import (
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userTestColumns = []string{"id", "username", "email", "password_hash", "created_at"}

func TestUserCreate(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (username, email, password_hash)")).
		WithArgs("benjamin", "ben@example.com", "hashed").
		WillReturnRows(sqlmock.NewRows(userTestColumns).
			AddRow("id-1", "benjamin", "ben@example.com", "hashed", time.Now()))

	user, err := repo.Create("benjamin", "ben@example.com", "hashed")
	require.NoError(t, err)
	assert.Equal(t, "benjamin", user.Username)
	assert.Equal(t, "ben@example.com", user.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("benjamin", "ben@example.com", "hashed").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_key"})

	_, err := repo.Create("benjamin", "ben@example.com", "hashed")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUserCreateDuplicateUsername(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("benjamin", "other@example.com", "hashed").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "users_username_key"})

	_, err := repo.Create("benjamin", "other@example.com", "hashed")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestUserCreateOtherDBErrorIsWrapped(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("benjamin", "ben@example.com", "hashed").
		WillReturnError(&pq.Error{Code: "57P01"})

	_, err := repo.Create("benjamin", "ben@example.com", "hashed")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmailTaken)
	assert.NotErrorIs(t, err, ErrUsernameTaken)
}

func TestUserFindByEmail(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery("SELECT .+ FROM users").
		WithArgs("ben@example.com").
		WillReturnRows(sqlmock.NewRows(userTestColumns).
			AddRow("id-1", "benjamin", "ben@example.com", "hashed", time.Now()))

	user, err := repo.FindByEmail("ben@example.com")
	require.NoError(t, err)
	assert.Equal(t, "id-1", user.ID)
	assert.Equal(t, "hashed", user.PasswordHash)
}

func TestUserFindByEmailNotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery("SELECT .+ FROM users").
		WithArgs("nobody@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByEmail("nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

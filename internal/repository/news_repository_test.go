package repository

import (
	"database/sql"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-api-be/internal/entities"
)

var newsTestColumns = []string{
	"id", "author", "title", "subtitle", "category", "url_to_image", "published_at", "content",
}

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func sampleNewsRow(id string, publishedAt time.Time) []driverValue {
	return []driverValue{
		id, "Juan Perez", "Climate change", "A detailed look", "Science",
		"https://example.com/image.jpg", publishedAt, "Full article body",
	}
}

type driverValue = driver.Value

func TestNewsCreateReturnsInsertedRow(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewNewsRepository(db)

	publishedAt := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO news (author, title, subtitle, category, url_to_image, content)")).
		WithArgs("Juan Perez", "Climate change", "A detailed look", "Science", "https://example.com/image.jpg", "Full article body").
		WillReturnRows(sqlmock.NewRows(newsTestColumns).AddRow(sampleNewsRow("id-1", publishedAt)...))

	created, err := repo.Create(entities.News{
		Author:     "Juan Perez",
		Title:      "Climate change",
		Subtitle:   "A detailed look",
		Category:   "Science",
		URLToImage: "https://example.com/image.jpg",
		Content:    "Full article body",
	})
	require.NoError(t, err)
	assert.Equal(t, "id-1", created.ID)
	assert.Equal(t, "Climate change", created.Title)
	assert.WithinDuration(t, publishedAt, created.PublishedAt, time.Second)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewsGetByIDNotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewNewsRepository(db)

	mock.ExpectQuery("SELECT .+ FROM news WHERE id").
		WithArgs("missing-id").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID("missing-id")
	assert.ErrorIs(t, err, ErrNewsNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewsListDefaultSort(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewNewsRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY published_at DESC OFFSET $1 LIMIT $2")).
		WithArgs(10, 10).
		WillReturnRows(sqlmock.NewRows(newsTestColumns).
			AddRow(sampleNewsRow("id-1", time.Now())...).
			AddRow(sampleNewsRow("id-2", time.Now().Add(-time.Hour))...))

	articles, err := repo.List(10, 10, "publishedAt", "desc")
	require.NoError(t, err)
	assert.Len(t, articles, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewsListUnknownSortFieldFallsBack(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewNewsRepository(db)

	// An unrecognized sortBy never reaches the SQL; the default column is
	// used instead.
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY published_at DESC")).
		WithArgs(0, 10).
		WillReturnRows(sqlmock.NewRows(newsTestColumns))

	_, err := repo.List(0, 10, "; DROP TABLE news;", "desc")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewsListAscendingByTitle(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewNewsRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY title ASC")).
		WithArgs(0, 5).
		WillReturnRows(sqlmock.NewRows(newsTestColumns))

	_, err := repo.List(0, 5, "title", "asc")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewsCount(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewNewsRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM news")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	total, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 42, total)
}

func TestNewsUpdateOnlyProvidedFields(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewNewsRepository(db)

	title := "New title"
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE news SET title = $1 WHERE id = $2")).
		WithArgs(title, "id-1").
		WillReturnRows(sqlmock.NewRows(newsTestColumns).AddRow(sampleNewsRow("id-1", time.Now())...))

	_, err := repo.Update("id-1", NewsUpdate{Title: &title})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewsUpdateWithoutFieldsReadsBack(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewNewsRepository(db)

	mock.ExpectQuery("SELECT .+ FROM news WHERE id").
		WithArgs("id-1").
		WillReturnRows(sqlmock.NewRows(newsTestColumns).AddRow(sampleNewsRow("id-1", time.Now())...))

	article, err := repo.Update("id-1", NewsUpdate{})
	require.NoError(t, err)
	assert.Equal(t, "id-1", article.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewsUpdateNotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewNewsRepository(db)

	author := "Someone"
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE news SET author = $1")).
		WithArgs(author, "missing-id").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Update("missing-id", NewsUpdate{Author: &author})
	assert.ErrorIs(t, err, ErrNewsNotFound)
}

func TestNewsDelete(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewNewsRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM news WHERE id = $1")).
		WithArgs("id-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete("id-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewsDeleteNotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewNewsRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM news WHERE id = $1")).
		WithArgs("missing-id").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete("missing-id"), ErrNewsNotFound)
}

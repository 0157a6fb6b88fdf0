package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"news-api-be/internal/entities"
)

const newsColumns = "id, author, title, subtitle, category, url_to_image, published_at, content"

// sortableColumns maps the sortBy query value to the underlying column.
// Unknown names fall back to published_at, keeping the listing lenient
// while never interpolating client input into SQL.
var sortableColumns = map[string]string{
	"author":      "author",
	"title":       "title",
	"subtitle":    "subtitle",
	"category":    "category",
	"publishedAt": "published_at",
}

// NewsUpdate describes a partial update. Nil fields are left untouched.
type NewsUpdate struct {
	Author     *string
	Title      *string
	Subtitle   *string
	Category   *string
	URLToImage *string
	Content    *string
}

// NewsRepository defines the interface for news database operations
type NewsRepository interface {
	Create(article entities.News) (*entities.News, error)
	GetByID(id string) (*entities.News, error)
	List(offset, limit int, sortBy, order string) ([]entities.News, error)
	Count() (int, error)
	Update(id string, update NewsUpdate) (*entities.News, error)
	Delete(id string) error
}

type newsRepository struct {
	db *sql.DB
}

// NewNewsRepository creates a new news repository
func NewNewsRepository(db *sql.DB) NewsRepository {
	return &newsRepository{db: db}
}

// Create inserts a new article. The id and publishedAt are assigned by the
// database.
func (r *newsRepository) Create(article entities.News) (*entities.News, error) {
	query := `
		INSERT INTO news (author, title, subtitle, category, url_to_image, content)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + newsColumns

	var created entities.News
	err := r.db.QueryRow(query,
		article.Author,
		article.Title,
		article.Subtitle,
		article.Category,
		article.URLToImage,
		article.Content,
	).Scan(
		&created.ID,
		&created.Author,
		&created.Title,
		&created.Subtitle,
		&created.Category,
		&created.URLToImage,
		&created.PublishedAt,
		&created.Content,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create news: %w", err)
	}

	return &created, nil
}

// GetByID finds an article by its UUID.
func (r *newsRepository) GetByID(id string) (*entities.News, error) {
	query := `SELECT ` + newsColumns + ` FROM news WHERE id = $1`

	var article entities.News
	err := r.db.QueryRow(query, id).Scan(
		&article.ID,
		&article.Author,
		&article.Title,
		&article.Subtitle,
		&article.Category,
		&article.URLToImage,
		&article.PublishedAt,
		&article.Content,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNewsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find news: %w", err)
	}

	return &article, nil
}

// List returns one page of articles sorted by the requested column.
func (r *newsRepository) List(offset, limit int, sortBy, order string) ([]entities.News, error) {
	column, ok := sortableColumns[sortBy]
	if !ok {
		column = "published_at"
	}

	direction := "DESC"
	if strings.EqualFold(order, "asc") {
		direction = "ASC"
	}

	query := fmt.Sprintf(
		`SELECT %s FROM news ORDER BY %s %s OFFSET $1 LIMIT $2`,
		newsColumns, column, direction,
	)

	rows, err := r.db.Query(query, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list news: %w", err)
	}
	defer rows.Close()

	var articles []entities.News
	for rows.Next() {
		var article entities.News
		err := rows.Scan(
			&article.ID,
			&article.Author,
			&article.Title,
			&article.Subtitle,
			&article.Category,
			&article.URLToImage,
			&article.PublishedAt,
			&article.Content,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan news: %w", err)
		}
		articles = append(articles, article)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating news: %w", err)
	}

	return articles, nil
}

// Count returns the total number of articles.
func (r *newsRepository) Count() (int, error) {
	var total int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM news`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count news: %w", err)
	}
	return total, nil
}

// Update merges the provided fields into an existing article and returns
// the updated record. An update with no fields just reads the record back.
func (r *newsRepository) Update(id string, update NewsUpdate) (*entities.News, error) {
	set := make([]string, 0, 6)
	args := make([]interface{}, 0, 7)

	add := func(column string, value *string) {
		if value != nil {
			args = append(args, *value)
			set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
		}
	}
	add("author", update.Author)
	add("title", update.Title)
	add("subtitle", update.Subtitle)
	add("category", update.Category)
	add("url_to_image", update.URLToImage)
	add("content", update.Content)

	if len(set) == 0 {
		return r.GetByID(id)
	}

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE news SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(set, ", "), len(args), newsColumns,
	)

	var article entities.News
	err := r.db.QueryRow(query, args...).Scan(
		&article.ID,
		&article.Author,
		&article.Title,
		&article.Subtitle,
		&article.Category,
		&article.URLToImage,
		&article.PublishedAt,
		&article.Content,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNewsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update news: %w", err)
	}

	return &article, nil
}

// Delete removes an article by id.
func (r *newsRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM news WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete news: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNewsNotFound
	}

	return nil
}

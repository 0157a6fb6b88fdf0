package models

// CreateNewsRequest represents the request body for creating a news article.
// Every field is required; publishedAt is never taken from the client, the
// database assigns it at insert time.
type CreateNewsRequest struct {
	Author     string `json:"author" binding:"required"`
	Title      string `json:"title" binding:"required"`
	Subtitle   string `json:"subtitle" binding:"required"`
	Category   string `json:"category" binding:"required"`
	URLToImage string `json:"urlToImage" binding:"required,url"`
	Content    string `json:"content" binding:"required"`
}

// UpdateNewsRequest represents the request body for a partial update. Every
// field is optional, but a field that is present must still pass its type
// checks and may not be set to empty.
type UpdateNewsRequest struct {
	Author     *string `json:"author" binding:"omitnil,min=1"`
	Title      *string `json:"title" binding:"omitnil,min=1"`
	Subtitle   *string `json:"subtitle" binding:"omitnil,min=1"`
	Category   *string `json:"category" binding:"omitnil,min=1"`
	URLToImage *string `json:"urlToImage" binding:"omitnil,url"`
	Content    *string `json:"content" binding:"omitnil,min=1"`
}

// IsEmpty reports whether the update carries no fields at all.
func (r *UpdateNewsRequest) IsEmpty() bool {
	return r.Author == nil && r.Title == nil && r.Subtitle == nil &&
		r.Category == nil && r.URLToImage == nil && r.Content == nil
}

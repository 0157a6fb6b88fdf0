package entities

import "time"

// News represents a news article entity in the database
type News struct {
	ID          string    `json:"id"` // UUID
	Author      string    `json:"author"`
	Title       string    `json:"title"`
	Subtitle    string    `json:"subtitle"`
	Category    string    `json:"category"`
	URLToImage  string    `json:"urlToImage"`
	PublishedAt time.Time `json:"publishedAt"`
	Content     string    `json:"content"`
}

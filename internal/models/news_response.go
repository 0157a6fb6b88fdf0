package models

import "news-api-be/internal/entities"

// ListNewsResponse represents the paginated news listing payload.
type ListNewsResponse struct {
	Message     string          `json:"message"`
	Data        []entities.News `json:"data"`
	TotalNews   int             `json:"totalNews"`
	TotalPages  int             `json:"totalPages"`
	CurrentPage int             `json:"currentPage"`
}

// NewsPage is the repository-level listing result before response shaping.
type NewsPage struct {
	Data        []entities.News
	TotalNews   int
	TotalPages  int
	CurrentPage int
}

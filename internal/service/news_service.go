package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"news-api-be/internal/cache"
	"news-api-be/internal/entities"
	"news-api-be/internal/logger"
	"news-api-be/internal/models"
	"news-api-be/internal/repository"
)

const articleCacheTTL = 5 * time.Minute

// NewsService defines the interface for news business logic
type NewsService interface {
	List(page, limit int, sortBy, order string) (*models.NewsPage, error)
	GetByID(id string) (*entities.News, error)
	Create(req *models.CreateNewsRequest) (*entities.News, error)
	Update(id string, req *models.UpdateNewsRequest) (*entities.News, error)
	Delete(id string) error
}

type newsService struct {
	repo  repository.NewsRepository
	cache cache.Cache // optional; nil disables caching
	log   *logger.Logger
	ctx   context.Context
}

// NewNewsService creates a new news service. cache may be nil.
func NewNewsService(repo repository.NewsRepository, cacheClient cache.Cache, log *logger.Logger) NewsService {
	return &newsService{
		repo:  repo,
		cache: cacheClient,
		log:   log,
		ctx:   context.Background(),
	}
}

// List returns one page of articles together with the pagination totals.
// Sorting falls back to publishedAt desc for unknown fields.
func (s *newsService) List(page, limit int, sortBy, order string) (*models.NewsPage, error) {
	offset := (page - 1) * limit

	articles, err := s.repo.List(offset, limit, sortBy, order)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Count()
	if err != nil {
		return nil, err
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	if articles == nil {
		articles = []entities.News{}
	}

	return &models.NewsPage{
		Data:        articles,
		TotalNews:   total,
		TotalPages:  totalPages,
		CurrentPage: page,
	}, nil
}

// GetByID returns a single article, from cache when possible. A malformed
// identifier is treated the same as an unknown one.
func (s *newsService) GetByID(id string) (*entities.News, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, repository.ErrNewsNotFound
	}

	if s.cache != nil {
		var cached entities.News
		if err := s.cache.GetJSON(s.ctx, articleCacheKey(id), &cached); err == nil {
			return &cached, nil
		}
	}

	article, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(s.ctx, articleCacheKey(id), article, articleCacheTTL); err != nil {
			s.log.Debug().Err(err).Str("id", id).Msg("failed to cache article")
		}
	}

	return article, nil
}

// Create persists a new article. publishedAt is assigned by the database
// at insert time.
func (s *newsService) Create(req *models.CreateNewsRequest) (*entities.News, error) {
	return s.repo.Create(entities.News{
		Author:     req.Author,
		Title:      req.Title,
		Subtitle:   req.Subtitle,
		Category:   req.Category,
		URLToImage: req.URLToImage,
		Content:    req.Content,
	})
}

// Update merges the provided fields into an existing article and drops the
// stale cache entry.
func (s *newsService) Update(id string, req *models.UpdateNewsRequest) (*entities.News, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, repository.ErrNewsNotFound
	}

	article, err := s.repo.Update(id, repository.NewsUpdate{
		Author:     req.Author,
		Title:      req.Title,
		Subtitle:   req.Subtitle,
		Category:   req.Category,
		URLToImage: req.URLToImage,
		Content:    req.Content,
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(id)
	return article, nil
}

// Delete removes an article and its cache entry.
func (s *newsService) Delete(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return repository.ErrNewsNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.invalidate(id)
	return nil
}

func (s *newsService) invalidate(id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(s.ctx, articleCacheKey(id)); err != nil {
		s.log.Debug().Err(err).Str("id", id).Msg("failed to invalidate article cache")
	}
}

func articleCacheKey(id string) string {
	return fmt.Sprintf("news:%s", id)
}

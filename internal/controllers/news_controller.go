package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"news-api-be/internal/entities"
	"news-api-be/internal/logger"
	"news-api-be/internal/models"
	"news-api-be/internal/repository"
	"news-api-be/internal/service"
	"news-api-be/internal/validation"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

type NewsController struct {
	newsService service.NewsService
	log         *logger.Logger
}

func NewNewsController(newsService service.NewsService, log *logger.Logger) *NewsController {
	return &NewsController{
		newsService: newsService,
		log:         log,
	}
}

// GetAll handles GET /news
//
// @Summary      List news
// @Description  Returns a paginated, sorted list of news articles.
// @Tags         news
// @Produce      json
// @Param        page    query  int     false  "Page number (default 1)"
// @Param        limit   query  int     false  "Articles per page (default 10)"
// @Param        sortBy  query  string  false  "Sort field (default publishedAt)"
// @Param        order   query  string  false  "asc or desc (default desc)"
// @Success      200  {object}  models.ListNewsResponse
// @Failure      500  {object}  map[string]string
// @Router       /news [get]
func (nc *NewsController) GetAll(c *gin.Context) {
	// Invalid or non-numeric values silently fall back to the defaults.
	// This leniency is part of the listing contract.
	page := parsePositiveInt(c.Query("page"), defaultPage)
	limit := parsePositiveInt(c.Query("limit"), defaultLimit)
	sortBy := c.DefaultQuery("sortBy", "publishedAt")
	order := c.DefaultQuery("order", "desc")

	result, err := nc.newsService.List(page, limit, sortBy, order)
	if err != nil {
		nc.log.Error().Err(err).Msg("failed to list news")
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "An error occurred while retrieving the news",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.ListNewsResponse{
		Message:     "News retrieved successfully",
		Data:        result.Data,
		TotalNews:   result.TotalNews,
		TotalPages:  result.TotalPages,
		CurrentPage: result.CurrentPage,
	})
}

// GetByID handles GET /news/:id
//
// @Summary      Get news by id
// @Tags         news
// @Produce      json
// @Param        id   path      string  true  "Article UUID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /news/{id} [get]
func (nc *NewsController) GetByID(c *gin.Context) {
	article, err := nc.newsService.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNewsNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "News not found"})
			return
		}
		nc.log.Error().Err(err).Msg("failed to get news")
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "An error occurred while retrieving the news",
			"error":   err.Error(),
		})
		return
	}

	// The payload wraps the article in a single-element array; clients
	// consume data uniformly across the list and detail endpoints.
	c.JSON(http.StatusOK, gin.H{
		"message": "News retrieved successfully",
		"data":    []entities.News{*article},
	})
}

// Save handles POST /news
//
// @Summary      Create news
// @Tags         news
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        article  body      models.CreateNewsRequest  true  "Article fields"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /news [post]
func (nc *NewsController) Save(c *gin.Context) {
	var req models.CreateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validation.FieldErrors(err)})
		return
	}

	article, err := nc.newsService.Create(&req)
	if err != nil {
		nc.log.Error().Err(err).Msg("failed to save news")
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "An error occurred while saving the news",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "News saved successfully",
		"news":    article,
	})
}

// Update handles PUT /news/:id
//
// @Summary      Update news
// @Description  Merges the provided fields into an existing article.
// @Tags         news
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                    true  "Article UUID"
// @Param        article  body      models.UpdateNewsRequest  true  "Fields to change"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /news/{id} [put]
func (nc *NewsController) Update(c *gin.Context) {
	var req models.UpdateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validation.FieldErrors(err)})
		return
	}

	article, err := nc.newsService.Update(c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, repository.ErrNewsNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "It was not possible to update the news"})
			return
		}
		nc.log.Error().Err(err).Msg("failed to update news")
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "An error occurred while updating the news",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "News updated successfully",
		"news":    article,
	})
}

// Delete handles DELETE /news/:id
//
// @Summary      Delete news
// @Tags         news
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Article UUID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /news/{id} [delete]
func (nc *NewsController) Delete(c *gin.Context) {
	if err := nc.newsService.Delete(c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNewsNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "It was not possible to delete the news"})
			return
		}
		nc.log.Error().Err(err).Msg("failed to delete news")
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "An error occurred while deleting the news",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "News deleted successfully"})
}

// parsePositiveInt parses s as a positive integer, falling back to def on
// any parse failure or non-positive value.
func parsePositiveInt(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return def
	}
	return n
}

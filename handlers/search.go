package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jdservices/services/search"
)

// SearchHandler proxies product searches straight to the upstream provider,
// for clients that manage their own wizard flow.
type SearchHandler struct {
	Client *search.Client
	Logger *zap.Logger
}

func NewSearchHandler(client *search.Client, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{Client: client, Logger: logger}
}

// SearchFlooring looks up flooring products by free-text query and zip code.
func (h *SearchHandler) SearchFlooring(c *gin.Context) {
	var input struct {
		Query   string `json:"query"`
		ZipCode string `json:"zipCode"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := search.ValidateQuery(input.Query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results, err := h.Client.SearchProducts(c.Request.Context(), input.Query, input.ZipCode)
	if err != nil {
		switch {
		case errors.Is(err, search.ErrNoResults):
			c.JSON(http.StatusNotFound, gin.H{"error": "No products found. Try a different search term."})
		case errors.Is(err, search.ErrSearchTimeout):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "The search took too long. Please try again."})
		default:
			h.Logger.Error("product search failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search products. Please try again."})
		}
		return
	}

	c.JSON(http.StatusOK, results)
}

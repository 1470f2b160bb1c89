package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jdservices/services/lookup"
)

// LookupHandler resolves free-text addresses into property data.
type LookupHandler struct {
	Provider lookup.Provider
	Logger   *zap.Logger
}

func NewLookupHandler(provider lookup.Provider, logger *zap.Logger) *LookupHandler {
	return &LookupHandler{Provider: provider, Logger: logger}
}

// LookupProperty parses the address and extracts what it can; found=false
// tells the client to collect the remaining fields manually.
func (h *LookupHandler) LookupProperty(c *gin.Context) {
	var input struct {
		Address string `json:"address"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.Provider.Lookup(c.Request.Context(), input.Address)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

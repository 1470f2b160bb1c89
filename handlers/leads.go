package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	leadsRepo "jdservices/database/repository/leads"
	"jdservices/models"
)

// LeadsHandler exposes the archived-lead store for the ops side: listing the
// captured leads per service and cleaning up handled ones.
type LeadsHandler struct {
	Repo   leadsRepo.LeadRepository
	Logger *zap.Logger
}

func NewLeadsHandler(repo leadsRepo.LeadRepository, logger *zap.Logger) *LeadsHandler {
	return &LeadsHandler{Repo: repo, Logger: logger}
}

// ListLeads returns all archived leads for the requested service.
func (h *LeadsHandler) ListLeads(c *gin.Context) {
	service := models.Service(c.Query("service"))
	if service != models.ServiceFlooring && service != models.ServiceCleaning {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown service type"})
		return
	}

	leads, err := h.Repo.GetByService(c.Request.Context(), service)
	if err != nil {
		h.Logger.Error("failed to list leads", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leads."})
		return
	}
	if leads == nil {
		leads = []models.Lead{}
	}
	c.JSON(http.StatusOK, gin.H{"leads": leads})
}

// GetLead returns a single archived lead by ID.
func (h *LeadsHandler) GetLead(c *gin.Context) {
	lead, err := h.Repo.GetByID(c.Request.Context(), c.Param("leadID"))
	if err != nil {
		if errors.Is(err, leadsRepo.ErrLeadNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found."})
			return
		}
		h.Logger.Error("failed to fetch lead", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch lead."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"lead": lead})
}

// DeleteLead removes an archived lead once it has been handled.
func (h *LeadsHandler) DeleteLead(c *gin.Context) {
	if err := h.Repo.DeleteByID(c.Request.Context(), c.Param("leadID")); err != nil {
		if errors.Is(err, leadsRepo.ErrLeadNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found."})
			return
		}
		h.Logger.Error("failed to delete lead", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete lead."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

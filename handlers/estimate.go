package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jdservices/models"
	"jdservices/services/wizard"
)

// EstimateHandler accepts finished submissions directly, for clients that run
// the wizard flow themselves.
type EstimateHandler struct {
	Sink     wizard.SubmissionSink
	Leads    wizard.LeadArchiver
	Notifier wizard.Notifier
	Logger   *zap.Logger
}

func NewEstimateHandler(sink wizard.SubmissionSink, leads wizard.LeadArchiver, notifier wizard.Notifier, logger *zap.Logger) *EstimateHandler {
	return &EstimateHandler{Sink: sink, Leads: leads, Notifier: notifier, Logger: logger}
}

// SubmitEstimate validates and persists a submission, then archives the lead
// and queues the alert email.
func (h *EstimateHandler) SubmitEstimate(c *gin.Context) {
	var sub models.EstimateSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if sub.Service != models.ServiceFlooring && sub.Service != models.ServiceCleaning {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown service type"})
		return
	}
	if sub.Type == "" {
		sub.Type = models.SubmissionEstimate
	}
	if err := wizard.ValidateContact(sub.Contact); err != nil {
		writeSubmissionError(c, err)
		return
	}
	if sub.Address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "address is required"})
		return
	}
	if err := wizard.ValidateZip(sub.ZipCode); err != nil {
		writeSubmissionError(c, err)
		return
	}

	if err := h.Sink.Submit(c.Request.Context(), sub); err != nil {
		h.Logger.Error("failed to persist submission", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save your request. Please try again."})
		return
	}

	if h.Leads != nil {
		lead := models.Lead{Submission: sub, CreatedAt: time.Now()}
		if _, err := h.Leads.Create(c.Request.Context(), lead); err != nil {
			h.Logger.Error("failed to archive lead", zap.Error(err))
		}
	}
	if h.Notifier != nil {
		if err := h.Notifier.EnqueueLeadAlert(sub); err != nil {
			h.Logger.Error("failed to enqueue lead alert", zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": string(sub.Service) + " " + string(sub.Type) + " saved successfully",
	})
}

func writeSubmissionError(c *gin.Context, err error) {
	var ve *wizard.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message, "field": ve.Field})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

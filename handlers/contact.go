package handlers

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jdservices/models"
	"jdservices/services/notification"
)

var (
	contactEmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nonDigitPattern     = regexp.MustCompile(`\D`)
)

// ContactHandler forwards standalone contact-form messages to the company
// inbox.
type ContactHandler struct {
	Sender notification.Sender
	Logger *zap.Logger
}

func NewContactHandler(sender notification.Sender, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{Sender: sender, Logger: logger}
}

// SubmitContact validates and sends a contact-form message.
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var msg models.ContactMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Phone = strings.TrimSpace(msg.Phone)
	msg.Message = strings.TrimSpace(msg.Message)

	if msg.Name == "" || msg.Email == "" || msg.Phone == "" || msg.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, email, phone and message are required"})
		return
	}
	if !contactEmailPattern.MatchString(msg.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid email format"})
		return
	}
	if len(nonDigitPattern.ReplaceAllString(msg.Phone, "")) < 10 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid phone number"})
		return
	}

	if err := h.Sender.SendContactMessage(c.Request.Context(), msg); err != nil {
		h.Logger.Error("failed to send contact message", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send your message. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Form submitted successfully. We will contact you soon."})
}

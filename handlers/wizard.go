package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jdservices/models"
	"jdservices/services/search"
	"jdservices/services/wizard"
)

// WizardHandler exposes the estimate wizard session endpoints.
type WizardHandler struct {
	Svc    wizard.SessionService
	Search *search.Registry
	Logger *zap.Logger
}

func NewWizardHandler(svc wizard.SessionService, registry *search.Registry, logger *zap.Logger) *WizardHandler {
	return &WizardHandler{Svc: svc, Search: registry, Logger: logger}
}

// advanceInput carries exactly one step payload; which one is set must match
// the session's current step.
type advanceInput struct {
	Contact     *models.Contact      `json:"contact"`
	Address     *addressInput        `json:"address"`
	Property    *propertyInput       `json:"property"`
	Frequency   *models.Frequency    `json:"frequency"`
	Coverage    *models.CoverageType `json:"coverage"`
	Measurement *measurementInput    `json:"measurement"`
	Rooms       *roomsInput          `json:"rooms"`
	Selection   *selectionInput      `json:"selection"`
}

type addressInput struct {
	Address string `json:"address"`
	Skip    bool   `json:"skip"`
}

type propertyInput struct {
	Address   string  `json:"address"`
	ZipCode   string  `json:"zipCode"`
	TotalSqFt float64 `json:"totalSqFt"`
}

type measurementInput struct {
	KnowsSqFt bool `json:"knowsSqFt"`
}

type roomsInput struct {
	Rooms    []models.Room `json:"rooms"`
	Selected []string      `json:"selected"`
}

type selectionInput struct {
	Offering      models.Offering       `json:"offering"`
	RoomMaterials []models.RoomMaterial `json:"roomMaterials"`
}

// CreateSession starts a new wizard session for the chosen service.
func (h *WizardHandler) CreateSession(c *gin.Context) {
	var input struct {
		Service models.Service `json:"service"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Svc.Create(c.Request.Context(), input.Service)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sessionView(session))
}

// GetSession returns the session along with its step metadata.
func (h *WizardHandler) GetSession(c *gin.Context) {
	session, err := h.Svc.Get(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionView(session))
}

// AdvanceSession applies the current step's payload and moves forward.
func (h *WizardHandler) AdvanceSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input advanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	// The address step runs the external lookup, so it takes its own path
	// through the service.
	if input.Address != nil {
		session, err := h.Svc.ResolveAddress(c.Request.Context(), sessionID, input.Address.Address, input.Address.Skip)
		if err != nil {
			h.writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, sessionView(session))
		return
	}

	ev, err := eventFromInput(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	session, err := h.Svc.Advance(c.Request.Context(), sessionID, ev)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionView(session))
}

// BackSession steps back one step, or discards the session when backing out
// of the first step.
func (h *WizardHandler) BackSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	session, exited, err := h.Svc.Back(c.Request.Context(), sessionID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if exited {
		h.Search.Drop(sessionID)
		c.JSON(http.StatusOK, gin.H{"exited": true})
		return
	}
	c.JSON(http.StatusOK, sessionView(session))
}

// SearchMaterials runs a governed product search scoped to the session's zip
// code and returns the governor snapshot.
func (h *WizardHandler) SearchMaterials(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		Query string `json:"query"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Svc.Get(c.Request.Context(), sessionID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	gov := h.Search.For(sessionID)
	_, err = gov.Search(c.Request.Context(), input.Query, session.ZipCode)
	if err != nil && !errors.Is(err, search.ErrSuperseded) && !errors.Is(err, search.ErrNoResults) {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gov.Snapshot())
}

// SearchState returns the governor snapshot without issuing a query.
func (h *WizardHandler) SearchState(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if _, err := h.Svc.Get(c.Request.Context(), sessionID); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.Search.For(sessionID).Snapshot())
}

// ConfirmSession persists the finished session and clears it.
func (h *WizardHandler) ConfirmSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	sub, err := h.Svc.Confirm(c.Request.Context(), sessionID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.Search.Drop(sessionID)
	c.JSON(http.StatusOK, gin.H{"submission": sub})
}

// CancelSession discards a session.
func (h *WizardHandler) CancelSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.Svc.Cancel(c.Request.Context(), sessionID); err != nil {
		h.writeError(c, err)
		return
	}
	h.Search.Drop(sessionID)
	c.JSON(http.StatusOK, gin.H{"cancelled": true})
}

func eventFromInput(input advanceInput) (wizard.Event, error) {
	switch {
	case input.Contact != nil:
		return wizard.SubmitContact{Contact: *input.Contact}, nil
	case input.Property != nil:
		return wizard.SubmitProperty{
			Address:   input.Property.Address,
			ZipCode:   input.Property.ZipCode,
			TotalSqFt: input.Property.TotalSqFt,
		}, nil
	case input.Frequency != nil:
		return wizard.ChooseFrequency{Frequency: *input.Frequency}, nil
	case input.Coverage != nil:
		return wizard.ChooseCoverage{Coverage: *input.Coverage}, nil
	case input.Measurement != nil:
		return wizard.AnswerMeasurement{Knows: input.Measurement.KnowsSqFt}, nil
	case input.Rooms != nil:
		return wizard.SetRooms{Rooms: input.Rooms.Rooms, Selected: input.Rooms.Selected}, nil
	case input.Selection != nil:
		return wizard.ChooseOffering{
			Offering:      input.Selection.Offering,
			RoomMaterials: input.Selection.RoomMaterials,
		}, nil
	}
	return nil, errors.New("no step payload provided")
}

func sessionView(s *models.WizardSession) gin.H {
	state := wizard.Current(s)
	return gin.H{
		"session": s,
		"step": gin.H{
			"number": s.Step,
			"total":  wizard.TotalSteps(s),
			"state":  state,
			"title":  wizard.Title(s.Service, state),
			"labels": wizard.Labels(s),
		},
	}
}

func (h *WizardHandler) writeError(c *gin.Context, err error) {
	var ve *wizard.ValidationError
	var throttled *search.ThrottledError
	var limited *search.RateLimitedError

	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message, "field": ve.Field})
	case errors.Is(err, wizard.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "wizard session not found or expired"})
	case errors.Is(err, wizard.ErrUnknownService):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, wizard.ErrStepOrder), errors.Is(err, wizard.ErrNotReadyToConfirm):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &throttled):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error(), "retryAt": throttled.RetryAt})
	case errors.As(err, &limited):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error(), "retryAt": limited.RetryAt})
	case errors.Is(err, search.ErrEmptyQuery), errors.Is(err, search.ErrQueryTooLong), errors.Is(err, search.ErrQueryForbiddenChars):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, search.ErrSearchTimeout):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "The search took too long. Please try again."})
	default:
		h.Logger.Error("wizard request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

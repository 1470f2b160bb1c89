package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Wizard session endpoints
	CreateSession   gin.HandlerFunc
	GetSession      gin.HandlerFunc
	AdvanceSession  gin.HandlerFunc
	BackSession     gin.HandlerFunc
	SearchMaterials gin.HandlerFunc
	SearchState     gin.HandlerFunc
	ConfirmSession  gin.HandlerFunc
	CancelSession   gin.HandlerFunc

	// Direct endpoints
	SearchFlooring gin.HandlerFunc
	LookupProperty gin.HandlerFunc
	SubmitEstimate gin.HandlerFunc
	SubmitContact  gin.HandlerFunc

	// Ops endpoints
	ListLeads  gin.HandlerFunc
	GetLead    gin.HandlerFunc
	DeleteLead gin.HandlerFunc
}

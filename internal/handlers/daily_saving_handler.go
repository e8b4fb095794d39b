package handlers

import (
	"net/http"

	"github.com/fintrack/edutoken-backend/internal/middleware"
	"github.com/fintrack/edutoken-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// DailySavingHandler handles daily-saving HTTP requests
type DailySavingHandler struct {
	savingService *services.DailySavingService
}

// NewDailySavingHandler creates a new DailySavingHandler
func NewDailySavingHandler(savingService *services.DailySavingService) *DailySavingHandler {
	return &DailySavingHandler{savingService: savingService}
}

// toggleRequest is the payload for the daily toggle endpoint.
type toggleRequest struct {
	DidSaveToday bool   `json:"didSaveToday"`
	Note         string `json:"note"`
}

// Toggle handles POST /savings/toggle
func (h *DailySavingHandler) Toggle(c *gin.Context) {
	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.savingService.Toggle(c, middleware.UserID(c), req.DidSaveToday, req.Note)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Today handles GET /savings/today
func (h *DailySavingHandler) Today(c *gin.Context) {
	status, err := h.savingService.Today(c, middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// History handles GET /savings/history
func (h *DailySavingHandler) History(c *gin.Context) {
	history, err := h.savingService.History(c, middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

// Quotes handles GET /savings/quotes
func (h *DailySavingHandler) Quotes(c *gin.Context) {
	c.JSON(http.StatusOK, h.savingService.Quotes())
}

// RandomQuote handles GET /savings/quote/random
func (h *DailySavingHandler) RandomQuote(c *gin.Context) {
	c.JSON(http.StatusOK, services.RandomQuote())
}

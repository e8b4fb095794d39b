package handlers

import (
	"net/http"

	"github.com/fintrack/edutoken-backend/internal/middleware"
	"github.com/fintrack/edutoken-backend/internal/models"
	"github.com/fintrack/edutoken-backend/internal/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChallengeHandler handles challenge HTTP requests
type ChallengeHandler struct {
	challengeService *services.ChallengeService
}

// NewChallengeHandler creates a new ChallengeHandler
func NewChallengeHandler(challengeService *services.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{challengeService: challengeService}
}

// Create handles POST /challenges/create
func (h *ChallengeHandler) Create(c *gin.Context) {
	var challenge models.Challenge
	if err := c.ShouldBindJSON(&challenge); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.challengeService.Create(c, middleware.UserID(c), &challenge)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// List handles GET /challenges
func (h *ChallengeHandler) List(c *gin.Context) {
	challenges, err := h.challengeService.List(c, middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, challenges)
}

// Rewards handles GET /challenges/rewards
func (h *ChallengeHandler) Rewards(c *gin.Context) {
	rewards, err := h.challengeService.Rewards(c, middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rewards)
}

// Get handles GET /challenges/:id
func (h *ChallengeHandler) Get(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	challenge, err := h.challengeService.Get(c, id, middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, challenge)
}

// Complete handles POST /challenges/complete/:id
func (h *ChallengeHandler) Complete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	challenge, tx, err := h.challengeService.Complete(c, id, middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Challenge completed",
		"challenge":   challenge,
		"transaction": tx,
	})
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/fintrack/edutoken-backend/internal/middleware"
	"github.com/fintrack/edutoken-backend/internal/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QuizHandler handles quiz HTTP requests
type QuizHandler struct {
	quizService *services.QuizService
}

// NewQuizHandler creates a new QuizHandler
func NewQuizHandler(quizService *services.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// All handles GET /quizzes
func (h *QuizHandler) All(c *gin.Context) {
	quizzes, err := h.quizService.All(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quizzes)
}

// Random handles GET /quizzes/random
func (h *QuizHandler) Random(c *gin.Context) {
	category := c.Query("category")
	count, _ := strconv.Atoi(c.DefaultQuery("count", "5"))

	quizzes, err := h.quizService.Random(c, category, count)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quizzes)
}

// submitRequest is the payload for answer submission.
type submitRequest struct {
	QuizID string `json:"quizId" binding:"required"`
	Answer string `json:"answer" binding:"required"`
}

// Submit handles POST /quizzes/submit
func (h *QuizHandler) Submit(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quiz ID and answer are required"})
		return
	}

	quizID, err := primitive.ObjectIDFromHex(req.QuizID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	result, err := h.quizService.Submit(c, middleware.UserID(c), quizID, req.Answer)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Leaderboard handles GET /quizzes/leaderboard
func (h *QuizHandler) Leaderboard(c *gin.Context) {
	leaderboard, err := h.quizService.Leaderboard(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, leaderboard)
}

// Stats handles GET /quizzes/stats
func (h *QuizHandler) Stats(c *gin.Context) {
	stats, err := h.quizService.Stats(c, middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Seed handles POST /quizzes/seed
func (h *QuizHandler) Seed(c *gin.Context) {
	count, err := h.quizService.Seed(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Quiz questions seeded successfully", "count": count})
}

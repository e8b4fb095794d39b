package handlers

import (
	"net/http"

	"github.com/fintrack/edutoken-backend/internal/middleware"
	"github.com/fintrack/edutoken-backend/internal/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CommunityHandler handles community feed HTTP requests
type CommunityHandler struct {
	communityService *services.CommunityService
}

// NewCommunityHandler creates a new CommunityHandler
func NewCommunityHandler(communityService *services.CommunityService) *CommunityHandler {
	return &CommunityHandler{communityService: communityService}
}

// createPostRequest is the payload for post creation.
type createPostRequest struct {
	Content   string `json:"content"`
	ExpenseID string `json:"expenseId"`
}

// CreatePost handles POST /community
func (h *CommunityHandler) CreatePost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var expenseID primitive.ObjectID
	if req.ExpenseID != "" {
		var err error
		expenseID, err = primitive.ObjectIDFromHex(req.ExpenseID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid expense ID format"})
			return
		}
	}

	result, err := h.communityService.CreatePost(c, middleware.UserID(c), req.Content, expenseID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":     "Post created successfully",
		"post":        result.Post,
		"tokenReward": result.TokenReward,
	})
}

// Posts handles GET /community
func (h *CommunityHandler) Posts(c *gin.Context) {
	posts, err := h.communityService.Posts(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// Like handles POST /community/like/:id
func (h *CommunityHandler) Like(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	post, err := h.communityService.Like(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// commentRequest is the payload for adding a comment.
type commentRequest struct {
	Content string `json:"content" binding:"required"`
}

// Comment handles POST /community/comment/:id
func (h *CommunityHandler) Comment(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.communityService.Comment(c, id, middleware.UserID(c), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

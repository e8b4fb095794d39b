package handlers

import (
	"net/http"

	"github.com/fintrack/edutoken-backend/internal/middleware"
	"github.com/fintrack/edutoken-backend/internal/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookHandler handles bookstore HTTP requests
type BookHandler struct {
	bookService *services.BookService
}

// NewBookHandler creates a new BookHandler
func NewBookHandler(bookService *services.BookService) *BookHandler {
	return &BookHandler{bookService: bookService}
}

// List handles GET /books
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.bookService.List(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, books)
}

// Get handles GET /books/:id
func (h *BookHandler) Get(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	book, err := h.bookService.Get(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, book)
}

// Purchase handles POST /books/purchase/:id
func (h *BookHandler) Purchase(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	userBook, err := h.bookService.Purchase(c, middleware.UserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Book purchased successfully",
		"book":    userBook,
	})
}

// Owned handles GET /books/user
func (h *BookHandler) Owned(c *gin.Context) {
	userBooks, err := h.bookService.Owned(c, middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, userBooks)
}

// Seed handles POST /books/seed
func (h *BookHandler) Seed(c *gin.Context) {
	if err := h.bookService.Seed(c); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Books seeded successfully"})
}

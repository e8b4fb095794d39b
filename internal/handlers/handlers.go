package handlers

import (
	"errors"
	"net/http"

	"github.com/fintrack/edutoken-backend/internal/services"
	"github.com/fintrack/edutoken-backend/pkg/stellar"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// respondError maps service errors to HTTP status codes. Ledger rejections
// surface their typed code so clients can distinguish a missing trustline
// from an underfunded distributor.
func respondError(c *gin.Context, err error) {
	var ledgerErr *stellar.LedgerError

	switch {
	case errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrNoDestination),
		errors.Is(err, services.ErrEmptyContent):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrWalletNotReady):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrAlreadyProcessed):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, mongo.ErrNoDocuments):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.As(err, &ledgerErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": ledgerErr.Error(), "code": ledgerErr.Code})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

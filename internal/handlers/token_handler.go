package handlers

import (
	"net/http"

	"github.com/fintrack/edutoken-backend/internal/middleware"
	"github.com/fintrack/edutoken-backend/internal/models"
	"github.com/fintrack/edutoken-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// TokenHandler handles wallet and token transfer HTTP requests
type TokenHandler struct {
	tokenService  *services.TokenService
	walletService *services.WalletService
}

// NewTokenHandler creates a new TokenHandler
func NewTokenHandler(tokenService *services.TokenService, walletService *services.WalletService) *TokenHandler {
	return &TokenHandler{
		tokenService:  tokenService,
		walletService: walletService,
	}
}

// transferRequest is the payload for reward and transfer endpoints.
type transferRequest struct {
	Amount          float64 `json:"amount"`
	RecipientWallet string  `json:"recipientWallet"`
}

// History handles GET /tokens/history
func (h *TokenHandler) History(c *gin.Context) {
	transactions, err := h.tokenService.History(c, middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, transactions)
}

// SetupWallet handles POST /tokens/setup. It drives the wallet lifecycle as
// far as possible and reports where it got to.
func (h *TokenHandler) SetupWallet(c *gin.Context) {
	status, err := h.walletService.EnsureWallet(c, middleware.UserID(c))
	if err != nil {
		if status != nil {
			c.JSON(http.StatusAccepted, gin.H{"wallet": status, "error": err.Error()})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"wallet": status})
}

// Wallet handles GET /tokens/wallet. Read-only: no ledger operations.
func (h *TokenHandler) Wallet(c *gin.Context) {
	status, err := h.walletService.Status(c, middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// Reward handles POST /tokens/reward. Pays tokens from the distributor to
// the authenticated user's wallet.
func (h *TokenHandler) Reward(c *gin.Context) {
	var req transferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tx, err := h.tokenService.Reward(c, middleware.UserID(c), req.Amount, models.ActivityRef{})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tokens transferred successfully", "transaction": tx})
}

// Transfer handles POST /tokens/transfer. Pays tokens from the distributor
// to an explicit recipient wallet.
func (h *TokenHandler) Transfer(c *gin.Context) {
	var req transferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tx, err := h.tokenService.Transfer(c, middleware.UserID(c), req.RecipientWallet, req.Amount, models.ActivityRef{Type: models.ActivityTransfer})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tokens transferred successfully", "transaction": tx})
}

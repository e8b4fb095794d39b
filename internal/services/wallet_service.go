package services

import (
	"context"
	"fmt"

	"github.com/fintrack/edutoken-backend/internal/models"
	"github.com/fintrack/edutoken-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WalletService brings a user's wallet from nonexistent to ready to receive
// the reward asset, in three idempotent steps: generate keys, fund with base
// currency via friendbot, establish the asset trustline. Each step persists
// its flag before the next starts, so a failed call resumes where it left
// off. Flags never regress.
type WalletService struct {
	userRepo repositories.UserRepository
	ledger   Ledger
}

// NewWalletService creates a new WalletService
func NewWalletService(userRepo repositories.UserRepository, ledger Ledger) *WalletService {
	return &WalletService{
		userRepo: userRepo,
		ledger:   ledger,
	}
}

// Status reads the wallet flags without touching the ledger.
func (s *WalletService) Status(ctx context.Context, userID primitive.ObjectID) (*models.WalletStatus, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &models.WalletStatus{
		PublicKey:      user.WalletPublicKey,
		Funded:         user.WalletFunded,
		TrustlineReady: user.WalletHasTrustline,
	}, nil
}

// EnsureWallet advances the user's wallet as far through the lifecycle as
// currently possible and returns its status. Safe to call on every login.
// A wallet that is already trustline-ready performs no ledger operations.
// The returned error reports the first failed step; callers treat it as a
// warning, not as a failure of their own operation.
func (s *WalletService) EnsureWallet(ctx context.Context, userID primitive.ObjectID) (*models.WalletStatus, error) {
	user, err := s.userRepo.FindByIDWithSecret(ctx, userID)
	if err != nil {
		return nil, err
	}

	status := &models.WalletStatus{
		PublicKey:      user.WalletPublicKey,
		Funded:         user.WalletFunded,
		TrustlineReady: user.WalletHasTrustline,
	}
	if user.WalletHasTrustline {
		return status, nil
	}

	if user.WalletPublicKey == "" {
		// Keys are permanent once created; this branch runs at most once
		// per user.
		publicKey, seed, err := s.ledger.NewKeypair()
		if err != nil {
			return status, fmt.Errorf("generating wallet keypair: %w", err)
		}
		user.WalletPublicKey = publicKey
		user.WalletSecretKey = seed
		if err := s.userRepo.Update(ctx, user); err != nil {
			return status, err
		}
		status.PublicKey = publicKey
	}

	if !user.WalletFunded {
		if err := s.ledger.FundAccount(user.WalletPublicKey); err != nil {
			return status, fmt.Errorf("funding wallet: %w", err)
		}
		user.WalletFunded = true
		if err := s.userRepo.Update(ctx, user); err != nil {
			return status, err
		}
		status.Funded = true
	}

	if err := s.ledger.EstablishTrustline(user.WalletSecretKey); err != nil {
		return status, fmt.Errorf("establishing trustline: %w", err)
	}
	user.WalletHasTrustline = true
	if err := s.userRepo.Update(ctx, user); err != nil {
		return status, err
	}
	status.TrustlineReady = true

	return status, nil
}

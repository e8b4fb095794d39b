package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/fintrack/edutoken-backend/internal/config"
	"github.com/fintrack/edutoken-backend/internal/models"
	"github.com/fintrack/edutoken-backend/internal/repositories"
	"github.com/fintrack/edutoken-backend/pkg/stellar"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TokenService is the single choke point through which every token reward and
// token debit flows. It performs the trustline pre-checks, submits the asset
// payment and appends the internal transaction record only after the ledger
// confirmed the transfer. It never retries; callers decide whether to retry.
type TokenService struct {
	userRepo repositories.UserRepository
	txRepo   repositories.TransactionRepository
	ledger   Ledger
	stellar  config.StellarConfig
	pageSize int64
}

// NewTokenService creates a new TokenService
func NewTokenService(userRepo repositories.UserRepository, txRepo repositories.TransactionRepository, ledger Ledger, cfg *config.Config) *TokenService {
	return &TokenService{
		userRepo: userRepo,
		txRepo:   txRepo,
		ledger:   ledger,
		stellar:  cfg.Stellar,
		pageSize: cfg.Rewards.HistoryPageSize,
	}
}

// Reward pays amount of the reward asset from the distributor to the user's
// own wallet and records a positive transaction.
func (s *TokenService) Reward(ctx context.Context, userID primitive.ObjectID, amount float64, activity models.ActivityRef) (*models.Transaction, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.WalletPublicKey == "" {
		return nil, ErrWalletNotReady
	}
	return s.issue(ctx, userID, s.stellar.DistributorSeed, s.stellar.DistributorAddress, user.WalletPublicKey, amount, amount, activity)
}

// Transfer pays amount from the distributor to an explicit recipient, or to
// the user's own wallet when recipient is empty.
func (s *TokenService) Transfer(ctx context.Context, userID primitive.ObjectID, recipient string, amount float64, activity models.ActivityRef) (*models.Transaction, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	destination := recipient
	if destination == "" {
		destination = user.WalletPublicKey
	}
	if destination == "" {
		return nil, ErrNoDestination
	}
	return s.issue(ctx, userID, s.stellar.DistributorSeed, s.stellar.DistributorAddress, destination, amount, amount, activity)
}

// Spend moves amount from the user's own wallet back to the distribution
// wallet and records a negative transaction. Used for purchases.
func (s *TokenService) Spend(ctx context.Context, userID primitive.ObjectID, amount float64, activity models.ActivityRef) (*models.Transaction, error) {
	user, err := s.userRepo.FindByIDWithSecret(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.WalletReady() || user.WalletSecretKey == "" {
		return nil, ErrWalletNotReady
	}
	return s.issue(ctx, userID, user.WalletSecretKey, user.WalletPublicKey, s.stellar.DistributorAddress, amount, -amount, activity)
}

// History returns the user's confirmed transfers, newest first.
func (s *TokenService) History(ctx context.Context, userID primitive.ObjectID) ([]*models.Transaction, error) {
	return s.txRepo.FindByUserID(ctx, userID, s.pageSize)
}

// issue runs one payment end to end: validate the amount, self-heal the
// source trustline, verify the destination exists and trusts the asset,
// submit, then append the transaction record. The record is written if and
// only if the ledger accepted the payment — failed attempts leave no trace
// in the internal log, and no reward-source flag is touched here.
func (s *TokenService) issue(ctx context.Context, userID primitive.ObjectID, sourceSeed, sourceAddress, destination string, payAmount, recordAmount float64, activity models.ActivityRef) (*models.Transaction, error) {
	if math.IsNaN(payAmount) || math.IsInf(payAmount, 0) || payAmount <= 0 {
		return nil, ErrInvalidAmount
	}

	source, err := s.ledger.LoadAccount(sourceAddress)
	if err != nil {
		if errors.Is(err, stellar.ErrAccountNotFound) {
			return nil, fmt.Errorf("%w: source account does not exist on the ledger", ErrWalletNotReady)
		}
		return nil, err
	}
	if sourceAddress != s.stellar.IssuerAddress && !source.HasTrustline(s.stellar.AssetCode, s.stellar.IssuerAddress) {
		// Self-healing: the distributor is expected to be trustline-ready
		// after first use, but establish it on the fly if it is not.
		if err := s.ledger.EstablishTrustline(sourceSeed); err != nil {
			return nil, err
		}
	}

	destAccount, err := s.ledger.LoadAccount(destination)
	if err != nil {
		if errors.Is(err, stellar.ErrAccountNotFound) {
			return nil, fmt.Errorf("%w: destination account does not exist on the ledger", ErrWalletNotReady)
		}
		return nil, err
	}
	if destination != s.stellar.IssuerAddress && !destAccount.HasTrustline(s.stellar.AssetCode, s.stellar.IssuerAddress) {
		return nil, fmt.Errorf("%w: destination has no trustline for %s", ErrWalletNotReady, s.stellar.AssetCode)
	}

	txHash, err := s.ledger.SubmitPayment(sourceSeed, destination, decimal.NewFromFloat(payAmount).String())
	if err != nil {
		return nil, err
	}

	record := &models.Transaction{
		UserID:       userID,
		Amount:       recordAmount,
		TxHash:       txHash,
		Date:         time.Now(),
		ActivityType: activity.Type,
		ActivityID:   activity.ID,
	}
	if err := s.txRepo.Create(ctx, record); err != nil {
		// The on-chain payment went through but the internal log write
		// failed; there is no compensation path for this orphan.
		log.Printf("[ERROR] transaction %s confirmed on ledger but not recorded: %v", txHash, err)
		return nil, err
	}

	if err := s.userRepo.IncrementTokens(ctx, userID, recordAmount); err != nil {
		log.Printf("[WARN] failed to update cached token balance for user %s: %v", userID.Hex(), err)
	}

	return record, nil
}

package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/fintrack/edutoken-backend/internal/config"
	"github.com/fintrack/edutoken-backend/internal/models"
	"github.com/fintrack/edutoken-backend/internal/repositories"
	"github.com/fintrack/edutoken-backend/internal/utils"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles signup and login. Both paths run the wallet lifecycle
// best effort: a ledger outage degrades the wallet, never the authentication.
type AuthService struct {
	userRepo repositories.UserRepository
	wallets  *WalletService
	cfg      *config.Config
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.UserRepository, wallets *WalletService, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		wallets:  wallets,
		cfg:      cfg,
	}
}

// Signup registers a new user and attempts to provision their wallet.
func (s *AuthService) Signup(ctx context.Context, req *models.SignupRequest) (*models.LoginResponse, error) {
	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:      req.Name,
		Email:     req.Email,
		Password:  string(hash),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.ensureWalletBestEffort(ctx, user)

	return s.loginResponse(user)
}

// Login authenticates a user and, as a side effect, pushes their wallet
// lifecycle forward if it is not trustline-ready yet.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.WalletHasTrustline {
		s.ensureWalletBestEffort(ctx, user)
	}

	return s.loginResponse(user)
}

func (s *AuthService) ensureWalletBestEffort(ctx context.Context, user *models.User) {
	status, err := s.wallets.EnsureWallet(ctx, user.ID)
	if err != nil {
		log.Printf("[WARN] wallet setup incomplete for user %s: %v", user.ID.Hex(), err)
	}
	if status != nil {
		user.WalletPublicKey = status.PublicKey
		user.WalletFunded = status.Funded
		user.WalletHasTrustline = status.TrustlineReady
	}
}

func (s *AuthService) loginResponse(user *models.User) (*models.LoginResponse, error) {
	token, err := utils.GenerateJWT(user.ID.Hex(), s.cfg)
	if err != nil {
		return nil, err
	}
	return &models.LoginResponse{
		Token: token,
		User: models.LoginUser{
			Name:               user.Name,
			Email:              user.Email,
			Tokens:             user.Tokens,
			WalletPublicKey:    user.WalletPublicKey,
			WalletFunded:       user.WalletFunded,
			WalletHasTrustline: user.WalletHasTrustline,
		},
	}, nil
}

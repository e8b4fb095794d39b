package services

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/fintrack/edutoken-backend/internal/config"
	"github.com/fintrack/edutoken-backend/internal/models"
	"github.com/fintrack/edutoken-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostResult is a created post together with the tokens granted for it.
type PostResult struct {
	Post        *models.CommunityPost `json:"post"`
	TokenReward float64               `json:"tokenReward"`
}

// CommunityService runs the community feed. Creating a post pays a flat
// reward to authors whose wallet is ready; everyone else still gets the post.
type CommunityService struct {
	postRepo    repositories.CommunityPostRepository
	expenseRepo repositories.ExpenseRepository
	userRepo    repositories.UserRepository
	tokens      *TokenService
	postReward  float64
}

// NewCommunityService creates a new CommunityService
func NewCommunityService(postRepo repositories.CommunityPostRepository, expenseRepo repositories.ExpenseRepository, userRepo repositories.UserRepository, tokens *TokenService, cfg *config.Config) *CommunityService {
	return &CommunityService{
		postRepo:    postRepo,
		expenseRepo: expenseRepo,
		userRepo:    userRepo,
		tokens:      tokens,
		postReward:  cfg.Rewards.CommunityPost,
	}
}

// CreatePost publishes a post, optionally sharing one of the author's
// expenses, and pays the posting reward best effort.
func (s *CommunityService) CreatePost(ctx context.Context, userID primitive.ObjectID, content string, expenseID primitive.ObjectID) (*PostResult, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	post := &models.CommunityPost{
		UserID:   userID,
		UserName: user.Name,
		Content:  content,
		Comments: []models.Comment{},
	}

	if !expenseID.IsZero() {
		expense, err := s.expenseRepo.FindByIDAndUser(ctx, expenseID, userID)
		if err != nil {
			return nil, err
		}
		post.ExpenseID = expense.ID
		post.Amount = expense.Amount
		post.Category = expense.Category
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	reward := 0.0
	if user.WalletReady() {
		if _, err := s.tokens.Reward(ctx, userID, s.postReward, models.ActivityRef{}); err != nil {
			log.Printf("[WARN] community post reward failed for user %s: %v", userID.Hex(), err)
		} else {
			reward = s.postReward
		}
	}

	return &PostResult{Post: post, TokenReward: reward}, nil
}

// Posts returns the 50 most recent posts.
func (s *CommunityService) Posts(ctx context.Context) ([]*models.CommunityPost, error) {
	return s.postRepo.FindRecent(ctx, 50)
}

// Like increments a post's like counter.
func (s *CommunityService) Like(ctx context.Context, postID primitive.ObjectID) (*models.CommunityPost, error) {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	post.Likes++
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Comment appends a comment to a post.
func (s *CommunityService) Comment(ctx context.Context, postID, userID primitive.ObjectID, content string) (*models.CommunityPost, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	post.Comments = append(post.Comments, models.Comment{
		UserID:    userID,
		UserName:  user.Name,
		Content:   content,
		CreatedAt: time.Now(),
	})
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

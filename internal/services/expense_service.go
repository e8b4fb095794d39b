package services

import (
	"context"
	"log"
	"time"

	"github.com/fintrack/edutoken-backend/internal/models"
	"github.com/fintrack/edutoken-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExpenseService tracks spending entries. Expenses carry no token rewards;
// they exist so posts can share them and budgets can be tracked.
type ExpenseService struct {
	expenseRepo repositories.ExpenseRepository
	userRepo    repositories.UserRepository
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(expenseRepo repositories.ExpenseRepository, userRepo repositories.UserRepository) *ExpenseService {
	return &ExpenseService{
		expenseRepo: expenseRepo,
		userRepo:    userRepo,
	}
}

// Create logs an expense for the user and bumps their total spent.
func (s *ExpenseService) Create(ctx context.Context, userID primitive.ObjectID, expense *models.Expense) (*models.Expense, error) {
	if expense.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	expense.UserID = userID
	if expense.Date.IsZero() {
		expense.Date = time.Now()
	}
	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err == nil {
		user.TotalSpent += expense.Amount
		if err := s.userRepo.Update(ctx, user); err != nil {
			log.Printf("[WARN] total spent update failed for user %s: %v", userID.Hex(), err)
		}
	}
	return expense, nil
}

// List returns the user's expenses.
func (s *ExpenseService) List(ctx context.Context, userID primitive.ObjectID) ([]*models.Expense, error) {
	return s.expenseRepo.FindByUserID(ctx, userID)
}

// Delete removes an expense, scoped to its owner.
func (s *ExpenseService) Delete(ctx context.Context, id, userID primitive.ObjectID) error {
	return s.expenseRepo.Delete(ctx, id, userID)
}

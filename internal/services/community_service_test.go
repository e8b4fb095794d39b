package services

import (
	"context"
	"testing"
	"time"

	"github.com/fintrack/edutoken-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakePostRepo struct {
	posts []*models.CommunityPost
}

func (r *fakePostRepo) Create(ctx context.Context, post *models.CommunityPost) error {
	post.ID = primitive.NewObjectID()
	post.CreatedAt = time.Now()
	r.posts = append(r.posts, post)
	return nil
}

func (r *fakePostRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.CommunityPost, error) {
	for _, post := range r.posts {
		if post.ID == id {
			return post, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakePostRepo) FindRecent(ctx context.Context, limit int64) ([]*models.CommunityPost, error) {
	result := []*models.CommunityPost{}
	for i := len(r.posts) - 1; i >= 0 && int64(len(result)) < limit; i-- {
		result = append(result, r.posts[i])
	}
	return result, nil
}

func (r *fakePostRepo) Update(ctx context.Context, post *models.CommunityPost) error {
	for i, stored := range r.posts {
		if stored.ID == post.ID {
			r.posts[i] = post
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

type fakeExpenseRepo struct {
	expenses []*models.Expense
}

func (r *fakeExpenseRepo) Create(ctx context.Context, expense *models.Expense) error {
	expense.ID = primitive.NewObjectID()
	r.expenses = append(r.expenses, expense)
	return nil
}

func (r *fakeExpenseRepo) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.Expense, error) {
	result := []*models.Expense{}
	for _, expense := range r.expenses {
		if expense.UserID == userID {
			result = append(result, expense)
		}
	}
	return result, nil
}

func (r *fakeExpenseRepo) FindByIDAndUser(ctx context.Context, id, userID primitive.ObjectID) (*models.Expense, error) {
	for _, expense := range r.expenses {
		if expense.ID == id && expense.UserID == userID {
			return expense, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeExpenseRepo) Delete(ctx context.Context, id, userID primitive.ObjectID) error {
	for i, expense := range r.expenses {
		if expense.ID == id && expense.UserID == userID {
			r.expenses = append(r.expenses[:i], r.expenses[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func newCommunityFixture(t *testing.T) (*CommunityService, *fakeLedger, *fakeUserRepo, *fakePostRepo, *fakeExpenseRepo, *fakeTxRepo, *models.User) {
	t.Helper()
	ledger := newFakeLedger()
	ledger.addAccount(testDistributor, testAsset, testIssuer)
	users := newFakeUserRepo()
	txs := &fakeTxRepo{}
	posts := &fakePostRepo{}
	expenses := &fakeExpenseRepo{}
	user := readyUser(ledger, users)

	tokens := NewTokenService(users, txs, ledger, testConfig())
	svc := NewCommunityService(posts, expenses, users, tokens, testConfig())
	return svc, ledger, users, posts, expenses, txs, user
}

func TestCreatePostRewardsAuthor(t *testing.T) {
	svc, ledger, _, posts, _, _, user := newCommunityFixture(t)

	result, err := svc.CreatePost(context.Background(), user.ID, "  Cooked at home all week  ", primitive.NilObjectID)

	require.NoError(t, err)
	assert.Equal(t, "Cooked at home all week", result.Post.Content)
	assert.Equal(t, user.Name, result.Post.UserName)
	assert.Equal(t, 5.0, result.TokenReward)
	assert.Len(t, ledger.payments, 1)
	assert.Len(t, posts.posts, 1)
}

func TestCreatePostWithoutWalletSkipsReward(t *testing.T) {
	svc, ledger, users, posts, _, _, _ := newCommunityFixture(t)

	bare := &models.User{Name: "No Wallet", Email: "nowallet@example.com"}
	users.add(bare)

	result, err := svc.CreatePost(context.Background(), bare.ID, "First post", primitive.NilObjectID)

	// The post goes through; only the reward is skipped.
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.TokenReward)
	assert.Empty(t, ledger.payments)
	assert.Len(t, posts.posts, 1)
}

func TestCreatePostRejectsEmptyContent(t *testing.T) {
	svc, _, _, posts, _, _, user := newCommunityFixture(t)

	_, err := svc.CreatePost(context.Background(), user.ID, "   ", primitive.NilObjectID)

	assert.ErrorIs(t, err, ErrEmptyContent)
	assert.Empty(t, posts.posts)
}

func TestCreatePostSharesOwnExpenseOnly(t *testing.T) {
	svc, _, _, _, expenses, _, user := newCommunityFixture(t)

	expense := &models.Expense{UserID: user.ID, Amount: 12.5, Category: "Food"}
	require.NoError(t, expenses.Create(context.Background(), expense))

	result, err := svc.CreatePost(context.Background(), user.ID, "Lunch spending", expense.ID)
	require.NoError(t, err)
	assert.Equal(t, expense.ID, result.Post.ExpenseID)
	assert.Equal(t, 12.5, result.Post.Amount)
	assert.Equal(t, "Food", result.Post.Category)

	foreign := &models.Expense{UserID: primitive.NewObjectID(), Amount: 99, Category: "Other"}
	require.NoError(t, expenses.Create(context.Background(), foreign))

	_, err = svc.CreatePost(context.Background(), user.ID, "Not my expense", foreign.ID)
	assert.Error(t, err)
}

func TestLikeAndComment(t *testing.T) {
	svc, _, _, _, _, _, user := newCommunityFixture(t)

	result, err := svc.CreatePost(context.Background(), user.ID, "Saved on groceries", primitive.NilObjectID)
	require.NoError(t, err)
	postID := result.Post.ID

	liked, err := svc.Like(context.Background(), postID)
	require.NoError(t, err)
	assert.Equal(t, 1, liked.Likes)

	commented, err := svc.Comment(context.Background(), postID, user.ID, "Nice work")
	require.NoError(t, err)
	require.Len(t, commented.Comments, 1)
	assert.Equal(t, "Nice work", commented.Comments[0].Content)
	assert.Equal(t, user.Name, commented.Comments[0].UserName)
}

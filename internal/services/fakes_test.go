package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/fintrack/edutoken-backend/internal/models"
	"github.com/fintrack/edutoken-backend/pkg/stellar"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// fakePayment records one submitted payment.
type fakePayment struct {
	SourceSeed  string
	Destination string
	Amount      string
}

// fakeLedger is an in-memory stand-in for the Stellar client.
type fakeLedger struct {
	accounts     map[string]*stellar.Account
	payments     []fakePayment
	trustlines   []string
	funded       []string
	keypairCount int
	loadCount    int

	payErr   error
	fundErr  error
	trustErr error
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{accounts: make(map[string]*stellar.Account)}
}

func (l *fakeLedger) NewKeypair() (string, string, error) {
	l.keypairCount++
	pub := fmt.Sprintf("GFAKE%d", l.keypairCount)
	seed := fmt.Sprintf("SFAKE%d", l.keypairCount)
	return pub, seed, nil
}

func (l *fakeLedger) LoadAccount(publicKey string) (*stellar.Account, error) {
	l.loadCount++
	acct, ok := l.accounts[publicKey]
	if !ok {
		return nil, stellar.ErrAccountNotFound
	}
	return acct, nil
}

func (l *fakeLedger) SubmitPayment(sourceSeed, destination, amount string) (string, error) {
	if l.payErr != nil {
		return "", l.payErr
	}
	l.payments = append(l.payments, fakePayment{SourceSeed: sourceSeed, Destination: destination, Amount: amount})
	return fmt.Sprintf("hash-%d", len(l.payments)), nil
}

func (l *fakeLedger) EstablishTrustline(seed string) error {
	if l.trustErr != nil {
		return l.trustErr
	}
	l.trustlines = append(l.trustlines, seed)
	return nil
}

func (l *fakeLedger) FundAccount(publicKey string) error {
	if l.fundErr != nil {
		return l.fundErr
	}
	l.funded = append(l.funded, publicKey)
	return nil
}

// addAccount registers an account that holds a trustline for the given asset.
func (l *fakeLedger) addAccount(id, assetCode, issuer string) {
	l.accounts[id] = &stellar.Account{
		ID: id,
		Balances: []stellar.Balance{
			{Type: "native", Amount: "100.0000000"},
			{Type: "credit_alphanum4", Code: assetCode, Issuer: issuer, Amount: "0.0000000"},
		},
	}
}

// addAccountWithoutTrustline registers an account holding only the native asset.
func (l *fakeLedger) addAccountWithoutTrustline(id string) {
	l.accounts[id] = &stellar.Account{
		ID:       id,
		Balances: []stellar.Balance{{Type: "native", Amount: "100.0000000"}},
	}
}

type fakeUserRepo struct {
	users map[primitive.ObjectID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*models.User)}
}

func (r *fakeUserRepo) add(user *models.User) primitive.ObjectID {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	r.users[user.ID] = user
	return user.ID
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	r.add(user)
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	clone := *user
	clone.WalletSecretKey = ""
	return &clone, nil
}

func (r *fakeUserRepo) FindByIDWithSecret(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeUserRepo) Update(ctx context.Context, user *models.User) error {
	stored, ok := r.users[user.ID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	clone := *user
	if clone.WalletSecretKey == "" {
		clone.WalletSecretKey = stored.WalletSecretKey
	}
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) IncrementTokens(ctx context.Context, id primitive.ObjectID, delta float64) error {
	user, ok := r.users[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	user.Tokens += delta
	return nil
}

type fakeTxRepo struct {
	transactions []*models.Transaction
	createErr    error
}

func (r *fakeTxRepo) Create(ctx context.Context, tx *models.Transaction) error {
	if r.createErr != nil {
		return r.createErr
	}
	tx.ID = primitive.NewObjectID()
	r.transactions = append(r.transactions, tx)
	return nil
}

func (r *fakeTxRepo) FindByUserID(ctx context.Context, userID primitive.ObjectID, limit int64) ([]*models.Transaction, error) {
	result := []*models.Transaction{}
	for i := len(r.transactions) - 1; i >= 0 && int64(len(result)) < limit; i-- {
		if r.transactions[i].UserID == userID {
			result = append(result, r.transactions[i])
		}
	}
	return result, nil
}

type fakeSavingRepo struct {
	entries []*models.DailySaving
}

func (r *fakeSavingRepo) Create(ctx context.Context, entry *models.DailySaving) error {
	entry.ID = primitive.NewObjectID()
	entry.CreatedAt = time.Now()
	clone := *entry
	r.entries = append(r.entries, &clone)
	return nil
}

func (r *fakeSavingRepo) Update(ctx context.Context, entry *models.DailySaving) error {
	for i, stored := range r.entries {
		if stored.ID == entry.ID {
			clone := *entry
			r.entries[i] = &clone
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (r *fakeSavingRepo) FindByUserAndDay(ctx context.Context, userID primitive.ObjectID, dayStart time.Time) (*models.DailySaving, error) {
	dayEnd := dayStart.AddDate(0, 0, 1)
	for _, entry := range r.entries {
		if entry.UserID == userID && !entry.Date.Before(dayStart) && entry.Date.Before(dayEnd) {
			clone := *entry
			return &clone, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeSavingRepo) FindRecentByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]*models.DailySaving, error) {
	result := []*models.DailySaving{}
	for _, entry := range r.entries {
		if entry.UserID == userID {
			clone := *entry
			result = append(result, &clone)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.After(result[j].Date) })
	if int64(len(result)) > limit {
		result = result[:limit]
	}
	return result, nil
}

type fakeChallengeRepo struct {
	challenges map[primitive.ObjectID]*models.Challenge
}

func newFakeChallengeRepo() *fakeChallengeRepo {
	return &fakeChallengeRepo{challenges: make(map[primitive.ObjectID]*models.Challenge)}
}

func (r *fakeChallengeRepo) Create(ctx context.Context, challenge *models.Challenge) error {
	challenge.ID = primitive.NewObjectID()
	clone := *challenge
	r.challenges[challenge.ID] = &clone
	return nil
}

func (r *fakeChallengeRepo) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.Challenge, error) {
	result := []*models.Challenge{}
	for _, challenge := range r.challenges {
		if challenge.UserID == userID {
			clone := *challenge
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (r *fakeChallengeRepo) FindByIDAndUser(ctx context.Context, id, userID primitive.ObjectID) (*models.Challenge, error) {
	challenge, ok := r.challenges[id]
	if !ok || challenge.UserID != userID {
		return nil, mongo.ErrNoDocuments
	}
	clone := *challenge
	return &clone, nil
}

func (r *fakeChallengeRepo) Update(ctx context.Context, challenge *models.Challenge) error {
	if _, ok := r.challenges[challenge.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	clone := *challenge
	r.challenges[challenge.ID] = &clone
	return nil
}

type fakeRewardRepo struct {
	rewards []*models.Reward
}

func (r *fakeRewardRepo) Create(ctx context.Context, reward *models.Reward) error {
	reward.ID = primitive.NewObjectID()
	r.rewards = append(r.rewards, reward)
	return nil
}

func (r *fakeRewardRepo) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.Reward, error) {
	result := []*models.Reward{}
	for _, reward := range r.rewards {
		if reward.UserID == userID {
			result = append(result, reward)
		}
	}
	return result, nil
}

type fakeQuizRepo struct {
	quizzes map[primitive.ObjectID]*models.Quiz
}

func newFakeQuizRepo() *fakeQuizRepo {
	return &fakeQuizRepo{quizzes: make(map[primitive.ObjectID]*models.Quiz)}
}

func (r *fakeQuizRepo) add(quiz *models.Quiz) primitive.ObjectID {
	if quiz.ID.IsZero() {
		quiz.ID = primitive.NewObjectID()
	}
	r.quizzes[quiz.ID] = quiz
	return quiz.ID
}

func (r *fakeQuizRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Quiz, error) {
	quiz, ok := r.quizzes[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return quiz, nil
}

func (r *fakeQuizRepo) FindAll(ctx context.Context) ([]*models.Quiz, error) {
	result := []*models.Quiz{}
	for _, quiz := range r.quizzes {
		result = append(result, quiz)
	}
	return result, nil
}

func (r *fakeQuizRepo) FindRandom(ctx context.Context, category string, count int) ([]*models.Quiz, error) {
	result := []*models.Quiz{}
	for _, quiz := range r.quizzes {
		if category != "" && quiz.Category != category {
			continue
		}
		clone := *quiz
		clone.CorrectAnswer = ""
		result = append(result, &clone)
		if len(result) == count {
			break
		}
	}
	return result, nil
}

func (r *fakeQuizRepo) InsertMany(ctx context.Context, quizzes []*models.Quiz) error {
	for _, quiz := range quizzes {
		r.add(quiz)
	}
	return nil
}

func (r *fakeQuizRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.quizzes)), nil
}

type fakeAttemptRepo struct {
	attempts []*models.QuizAttempt
}

func (r *fakeAttemptRepo) Create(ctx context.Context, attempt *models.QuizAttempt) error {
	attempt.ID = primitive.NewObjectID()
	if attempt.Date.IsZero() {
		attempt.Date = time.Now()
	}
	r.attempts = append(r.attempts, attempt)
	return nil
}

func (r *fakeAttemptRepo) CountCorrectBetween(ctx context.Context, userID primitive.ObjectID, start, end time.Time) (int64, error) {
	var count int64
	for _, attempt := range r.attempts {
		if attempt.UserID == userID && attempt.IsCorrect && !attempt.Date.Before(start) && attempt.Date.Before(end) {
			count++
		}
	}
	return count, nil
}

func (r *fakeAttemptRepo) Leaderboard(ctx context.Context, limit int64) ([]*models.LeaderboardEntry, error) {
	return nil, nil
}

func (r *fakeAttemptRepo) CountByUser(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	var count int64
	for _, attempt := range r.attempts {
		if attempt.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (r *fakeAttemptRepo) CountCorrectByUser(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	var count int64
	for _, attempt := range r.attempts {
		if attempt.UserID == userID && attempt.IsCorrect {
			count++
		}
	}
	return count, nil
}

func (r *fakeAttemptRepo) SumPointsByUser(ctx context.Context, userID primitive.ObjectID) (float64, error) {
	var sum float64
	for _, attempt := range r.attempts {
		if attempt.UserID == userID {
			sum += attempt.PointsEarned
		}
	}
	return sum, nil
}

func (r *fakeAttemptRepo) CategoryBreakdown(ctx context.Context, userID primitive.ObjectID) ([]models.CategoryStat, error) {
	return nil, nil
}

type fakeBookRepo struct {
	books map[primitive.ObjectID]*models.Book
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{books: make(map[primitive.ObjectID]*models.Book)}
}

func (r *fakeBookRepo) add(book *models.Book) primitive.ObjectID {
	if book.ID.IsZero() {
		book.ID = primitive.NewObjectID()
	}
	r.books[book.ID] = book
	return book.ID
}

func (r *fakeBookRepo) FindActive(ctx context.Context) ([]*models.Book, error) {
	result := []*models.Book{}
	for _, book := range r.books {
		if book.IsActive {
			result = append(result, book)
		}
	}
	return result, nil
}

func (r *fakeBookRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Book, error) {
	book, ok := r.books[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return book, nil
}

func (r *fakeBookRepo) FindActiveByID(ctx context.Context, id primitive.ObjectID) (*models.Book, error) {
	book, ok := r.books[id]
	if !ok || !book.IsActive {
		return nil, mongo.ErrNoDocuments
	}
	return book, nil
}

func (r *fakeBookRepo) InsertMany(ctx context.Context, books []*models.Book) error {
	for _, book := range books {
		r.add(book)
	}
	return nil
}

func (r *fakeBookRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.books)), nil
}

type fakeUserBookRepo struct {
	userBooks []*models.UserBook
}

func (r *fakeUserBookRepo) Create(ctx context.Context, userBook *models.UserBook) error {
	userBook.ID = primitive.NewObjectID()
	r.userBooks = append(r.userBooks, userBook)
	return nil
}

func (r *fakeUserBookRepo) FindByUserAndBook(ctx context.Context, userID, bookID primitive.ObjectID) (*models.UserBook, error) {
	for _, userBook := range r.userBooks {
		if userBook.UserID == userID && userBook.BookID == bookID {
			return userBook, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeUserBookRepo) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.UserBook, error) {
	result := []*models.UserBook{}
	for _, userBook := range r.userBooks {
		if userBook.UserID == userID {
			result = append(result, userBook)
		}
	}
	return result, nil
}

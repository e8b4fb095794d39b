package services

import (
	"context"
	"testing"
	"time"

	"github.com/fintrack/edutoken-backend/internal/models"
	"github.com/fintrack/edutoken-backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSavingFixture(t *testing.T) (*DailySavingService, *fakeLedger, *fakeUserRepo, *fakeSavingRepo, *fakeTxRepo, *models.User) {
	t.Helper()
	ledger := newFakeLedger()
	ledger.addAccount(testDistributor, testAsset, testIssuer)
	users := newFakeUserRepo()
	txs := &fakeTxRepo{}
	savings := &fakeSavingRepo{}
	user := readyUser(ledger, users)

	tokens := NewTokenService(users, txs, ledger, testConfig())
	svc := NewDailySavingService(savings, users, tokens, utils.NewUserLocker(), testConfig())
	return svc, ledger, users, savings, txs, user
}

func TestToggleRewardsFirstSave(t *testing.T) {
	svc, ledger, _, _, txs, user := newSavingFixture(t)

	result, err := svc.Toggle(context.Background(), user.ID, true, "saved lunch money")

	require.NoError(t, err)
	assert.True(t, result.DailySaving.DidSaveToday)
	assert.True(t, result.DailySaving.IsRewarded)
	assert.Equal(t, 10.0, result.DailySaving.TokensRewarded)
	assert.Equal(t, "saved lunch money", result.DailySaving.Note)
	assert.NotEmpty(t, result.Quote.Text)
	require.Len(t, ledger.payments, 1)
	require.Len(t, txs.transactions, 1)
	assert.Equal(t, models.ActivityDailySaving, txs.transactions[0].ActivityType)
	assert.Equal(t, result.DailySaving.ID, txs.transactions[0].ActivityID)
}

func TestToggleAddsStreakBonusWhenYesterdaySaved(t *testing.T) {
	svc, ledger, _, savings, _, user := newSavingFixture(t)

	yesterday := utils.DayStart(time.Now()).AddDate(0, 0, -1)
	require.NoError(t, savings.Create(context.Background(), &models.DailySaving{
		UserID:       user.ID,
		Date:         yesterday,
		DidSaveToday: true,
		IsRewarded:   true,
	}))

	result, err := svc.Toggle(context.Background(), user.ID, true, "")

	require.NoError(t, err)
	assert.Equal(t, 15.0, result.DailySaving.TokensRewarded)
	require.Len(t, ledger.payments, 1)
	assert.Equal(t, "15", ledger.payments[0].Amount)
}

func TestToggleRewardsOncePerDay(t *testing.T) {
	svc, ledger, _, _, _, user := newSavingFixture(t)

	_, err := svc.Toggle(context.Background(), user.ID, true, "")
	require.NoError(t, err)

	// Flip off and back on. The is-rewarded flag survives the round trip.
	result, err := svc.Toggle(context.Background(), user.ID, false, "")
	require.NoError(t, err)
	assert.False(t, result.DailySaving.DidSaveToday)
	assert.True(t, result.DailySaving.IsRewarded)

	result, err = svc.Toggle(context.Background(), user.ID, true, "")
	require.NoError(t, err)
	assert.True(t, result.DailySaving.IsRewarded)
	assert.Len(t, ledger.payments, 1)
}

func TestToggleSkipsRewardWithoutWallet(t *testing.T) {
	svc, ledger, users, _, txs, _ := newSavingFixture(t)

	bare := &models.User{Email: "nowallet@example.com"}
	users.add(bare)

	result, err := svc.Toggle(context.Background(), bare.ID, true, "")

	require.NoError(t, err)
	assert.True(t, result.DailySaving.DidSaveToday)
	assert.False(t, result.DailySaving.IsRewarded)
	assert.Empty(t, ledger.payments)
	assert.Empty(t, txs.transactions)
}

func TestTodayReturnsPlaceholderWhenNoEntry(t *testing.T) {
	svc, _, _, _, _, user := newSavingFixture(t)

	status, err := svc.Today(context.Background(), user.ID)

	require.NoError(t, err)
	assert.False(t, status.DailySaving.DidSaveToday)
	assert.False(t, status.DailySaving.IsRewarded)
	assert.NotEmpty(t, status.Quote.Text)
}

func TestHistoryDerivesStreak(t *testing.T) {
	svc, _, _, savings, _, user := newSavingFixture(t)

	today := utils.DayStart(time.Now())
	for _, daysAgo := range []int{0, 1, 2} {
		require.NoError(t, savings.Create(context.Background(), &models.DailySaving{
			UserID:       user.ID,
			Date:         today.AddDate(0, 0, -daysAgo),
			DidSaveToday: true,
		}))
	}

	history, err := svc.History(context.Background(), user.ID)

	require.NoError(t, err)
	assert.Len(t, history.History, 3)
	assert.Equal(t, 3, history.Streak)
}

func TestHistoryStreakStopsAtGap(t *testing.T) {
	svc, _, _, savings, _, user := newSavingFixture(t)

	today := utils.DayStart(time.Now())
	// Saved today and yesterday, gap at two days ago, saved three days ago.
	for _, daysAgo := range []int{0, 1, 3} {
		require.NoError(t, savings.Create(context.Background(), &models.DailySaving{
			UserID:       user.ID,
			Date:         today.AddDate(0, 0, -daysAgo),
			DidSaveToday: true,
		}))
	}

	history, err := svc.History(context.Background(), user.ID)

	require.NoError(t, err)
	assert.Equal(t, 2, history.Streak)
}

func TestQuotesReturnsFullCatalog(t *testing.T) {
	svc, _, _, _, _, _ := newSavingFixture(t)

	quotes := svc.Quotes()
	assert.Len(t, quotes, 10)
	for _, quote := range quotes {
		assert.NotEmpty(t, quote.Text)
		assert.NotEmpty(t, quote.Author)
	}
}

package utils

import (
	"sync"
	"testing"
	"time"

	"github.com/fintrack/edutoken-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func entry(daysAgo int, saved bool, now time.Time) *models.DailySaving {
	return &models.DailySaving{
		Date:         DayStart(now).AddDate(0, 0, -daysAgo),
		DidSaveToday: saved,
	}
}

func TestCalculateStreak(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		entries []*models.DailySaving
		want    int
	}{
		{
			name:    "no entries",
			entries: nil,
			want:    0,
		},
		{
			name:    "single saved day",
			entries: []*models.DailySaving{entry(0, true, now)},
			want:    1,
		},
		{
			name: "three consecutive days",
			entries: []*models.DailySaving{
				entry(0, true, now),
				entry(1, true, now),
				entry(2, true, now),
			},
			want: 3,
		},
		{
			name: "gap terminates streak",
			entries: []*models.DailySaving{
				entry(0, true, now),
				entry(1, true, now),
				entry(3, true, now),
			},
			want: 2,
		},
		{
			name: "unsaved day terminates streak",
			entries: []*models.DailySaving{
				entry(0, true, now),
				entry(1, false, now),
				entry(2, true, now),
			},
			want: 1,
		},
		{
			name: "no entry today counts from yesterday",
			entries: []*models.DailySaving{
				entry(1, true, now),
				entry(2, true, now),
			},
			want: 2,
		},
		{
			name: "only old entries",
			entries: []*models.DailySaving{
				entry(5, true, now),
				entry(6, true, now),
			},
			want: 0,
		},
		{
			name: "today unsaved",
			entries: []*models.DailySaving{
				entry(0, false, now),
				entry(1, true, now),
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateStreak(tt.entries, now))
		})
	}
}

func TestDayStartTruncatesToMidnight(t *testing.T) {
	ts := time.Date(2025, 6, 15, 23, 59, 59, 999, time.UTC)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), DayStart(ts))
}

func TestUserLockerSerializesPerKey(t *testing.T) {
	locker := NewUserLocker()

	var counter int
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locker.Lock("user-1")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}

func TestUserLockerReclaimsIdleEntries(t *testing.T) {
	locker := NewUserLocker()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		key := "user-1"
		if i%2 == 0 {
			key = "user-2"
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locker.Lock(key)
			unlock()
		}()
	}
	wg.Wait()

	locker.mu.Lock()
	defer locker.mu.Unlock()
	assert.Empty(t, locker.locks)
}

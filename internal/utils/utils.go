package utils

import (
	"errors"
	"time"

	"github.com/fintrack/edutoken-backend/internal/config"
	"github.com/fintrack/edutoken-backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWT generates a signed bearer token for the given user id
func GenerateJWT(userID string, cfg *config.Config) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(time.Second * time.Duration(cfg.JWT.ExpiresIn)).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWT.Secret))
}

// ValidateJWT validates a bearer token and returns its claims
func ValidateJWT(tokenString string, cfg *config.Config) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// DayStart truncates t to midnight in its own location. Calendar-day
// boundaries for the quiz cap and daily-saving entries all go through here.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// CalculateStreak counts consecutive saved days ending at now, walking the
// entries (newest first) backward one calendar day at a time. A missing day
// or an entry with didSaveToday=false terminates the walk; gaps are never
// skipped. When today has no entry yet, the walk starts from yesterday.
func CalculateStreak(entries []*models.DailySaving, now time.Time) int {
	expected := DayStart(now)
	streak := 0

	for _, entry := range entries {
		day := DayStart(entry.Date)
		if day.After(expected) {
			continue
		}
		if !day.Equal(expected) {
			if streak == 0 && day.Equal(expected.AddDate(0, 0, -1)) {
				// No entry for today yet; count from yesterday.
				expected = day
			} else {
				break
			}
		}
		if !entry.DidSaveToday {
			break
		}
		streak++
		expected = expected.AddDate(0, 0, -1)
	}

	return streak
}

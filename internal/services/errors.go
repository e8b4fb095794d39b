package services

import "errors"

// Service-level error taxonomy. Handlers branch on these with errors.Is to
// pick status codes and user-facing messages; ledger rejections additionally
// surface as *stellar.LedgerError with a specific code.
var (
	// ErrWalletNotReady means the acting user (or the destination) lacks a
	// wallet, base-currency funding or a trustline for the reward asset.
	ErrWalletNotReady = errors.New("wallet is not set up to receive tokens")

	// ErrInvalidAmount means a missing, non-numeric or non-positive amount.
	ErrInvalidAmount = errors.New("amount must be a positive number")

	// ErrNoDestination means no recipient wallet could be resolved.
	ErrNoDestination = errors.New("no recipient wallet address provided")

	// ErrAlreadyProcessed means the triggering activity was already
	// rewarded, completed or purchased. Rejected outright, never retried.
	ErrAlreadyProcessed = errors.New("already processed")

	// ErrInvalidCredentials is returned on failed login attempts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken is returned when signing up with a known email.
	ErrEmailTaken = errors.New("user already exists")

	// ErrEmptyContent is returned for community posts without content.
	ErrEmptyContent = errors.New("content is required")
)

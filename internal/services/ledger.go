package services

import "github.com/fintrack/edutoken-backend/pkg/stellar"

// Ledger is the subset of the Stellar client the services depend on.
// *stellar.Client satisfies it; tests substitute a fake.
type Ledger interface {
	NewKeypair() (publicKey, seed string, err error)
	LoadAccount(publicKey string) (*stellar.Account, error)
	SubmitPayment(sourceSeed, destination, amount string) (txHash string, err error)
	EstablishTrustline(seed string) error
	FundAccount(publicKey string) error
}

var _ Ledger = (*stellar.Client)(nil)

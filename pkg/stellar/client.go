package stellar

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/stellar/go/clients/horizonclient"
	"github.com/stellar/go/keypair"
	"github.com/stellar/go/txnbuild"
)

// Config holds the key material and network parameters for the reward asset.
// It is loaded once at startup and injected into every component that talks
// to the ledger.
type Config struct {
	HorizonURL        string
	FriendbotURL      string
	NetworkPassphrase string
	AssetCode         string
	IssuerAddress     string
	DistributorAddress string
	DistributorSeed   string
	TrustlineLimit    string
	SubmitTimeout     time.Duration
}

// Account is the subset of ledger account state the application cares about.
type Account struct {
	ID       string
	Balances []Balance
}

// Balance is a single asset balance held by an account. Native balances have
// Type "native" and empty Code/Issuer.
type Balance struct {
	Type   string
	Code   string
	Issuer string
	Amount string
	Limit  string
}

// HasTrustline reports whether the account holds a trustline for the given asset.
func (a *Account) HasTrustline(code, issuer string) bool {
	for _, b := range a.Balances {
		if b.Type != "native" && b.Code == code && b.Issuer == issuer {
			return true
		}
	}
	return false
}

// Client wraps a horizon client with the asset configuration. Every call is a
// network round-trip; no local state is mutated.
type Client struct {
	cfg     Config
	horizon *horizonclient.Client
	http    *http.Client
}

// NewClient creates a Stellar ledger client from the given configuration.
func NewClient(cfg Config) *Client {
	if cfg.SubmitTimeout == 0 {
		cfg.SubmitTimeout = 30 * time.Second
	}
	httpClient := &http.Client{Timeout: cfg.SubmitTimeout}
	return &Client{
		cfg: cfg,
		horizon: &horizonclient.Client{
			HorizonURL: cfg.HorizonURL,
			HTTP:       httpClient,
		},
		http: httpClient,
	}
}

// NewKeypair generates a fresh random keypair for a new wallet.
func NewKeypair() (publicKey, seed string, err error) {
	kp, err := keypair.Random()
	if err != nil {
		return "", "", err
	}
	return kp.Address(), kp.Seed(), nil
}

// NewKeypair generates a fresh random keypair for a new wallet.
func (c *Client) NewKeypair() (publicKey, seed string, err error) {
	return NewKeypair()
}

// LoadAccount fetches the account state for the given public key.
// Returns ErrAccountNotFound if the account does not exist on the ledger.
func (c *Client) LoadAccount(publicKey string) (*Account, error) {
	acct, err := c.horizon.AccountDetail(horizonclient.AccountRequest{AccountID: publicKey})
	if err != nil {
		var hErr *horizonclient.Error
		if errors.As(err, &hErr) && hErr.Problem.Status == http.StatusNotFound {
			return nil, ErrAccountNotFound
		}
		return nil, wrapHorizonError(err)
	}

	account := &Account{ID: acct.AccountID}
	for _, b := range acct.Balances {
		account.Balances = append(account.Balances, Balance{
			Type:   b.Type,
			Code:   b.Code,
			Issuer: b.Issuer,
			Amount: b.Balance,
			Limit:  b.Limit,
		})
	}
	return account, nil
}

// SubmitPayment sends amount of the reward asset from the account identified by
// sourceSeed to the destination public key. It returns the ledger transaction
// hash on success. The transaction carries a 30 second timebound; after that
// the network discards it and the call fails with a typed LedgerError.
func (c *Client) SubmitPayment(sourceSeed, destination, amount string) (string, error) {
	kp, err := keypair.ParseFull(sourceSeed)
	if err != nil {
		return "", fmt.Errorf("stellar: invalid source seed: %w", err)
	}

	sourceAcct, err := c.horizon.AccountDetail(horizonclient.AccountRequest{AccountID: kp.Address()})
	if err != nil {
		return "", wrapHorizonError(err)
	}

	tx, err := txnbuild.NewTransaction(txnbuild.TransactionParams{
		SourceAccount:        &sourceAcct,
		IncrementSequenceNum: true,
		BaseFee:              txnbuild.MinBaseFee,
		Preconditions:        txnbuild.Preconditions{TimeBounds: txnbuild.NewTimeout(30)},
		Operations: []txnbuild.Operation{
			&txnbuild.Payment{
				Destination: destination,
				Amount:      amount,
				Asset:       txnbuild.CreditAsset{Code: c.cfg.AssetCode, Issuer: c.cfg.IssuerAddress},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("stellar: building payment: %w", err)
	}

	tx, err = tx.Sign(c.cfg.NetworkPassphrase, kp)
	if err != nil {
		return "", fmt.Errorf("stellar: signing payment: %w", err)
	}

	resp, err := c.horizon.SubmitTransaction(tx)
	if err != nil {
		return "", wrapHorizonError(err)
	}
	return resp.Hash, nil
}

// EstablishTrustline submits a change-trust operation for the reward asset,
// signed by the wallet identified by seed. Idempotent: if the trustline
// already exists the call returns nil without submitting anything.
func (c *Client) EstablishTrustline(seed string) error {
	kp, err := keypair.ParseFull(seed)
	if err != nil {
		return fmt.Errorf("stellar: invalid seed: %w", err)
	}

	account, err := c.LoadAccount(kp.Address())
	if err != nil {
		return err
	}
	if account.HasTrustline(c.cfg.AssetCode, c.cfg.IssuerAddress) {
		return nil
	}

	sourceAcct, err := c.horizon.AccountDetail(horizonclient.AccountRequest{AccountID: kp.Address()})
	if err != nil {
		return wrapHorizonError(err)
	}

	tx, err := txnbuild.NewTransaction(txnbuild.TransactionParams{
		SourceAccount:        &sourceAcct,
		IncrementSequenceNum: true,
		BaseFee:              txnbuild.MinBaseFee,
		Preconditions:        txnbuild.Preconditions{TimeBounds: txnbuild.NewTimeout(30)},
		Operations: []txnbuild.Operation{
			&txnbuild.ChangeTrust{
				Line: txnbuild.ChangeTrustAssetWrapper{
					Asset: txnbuild.CreditAsset{Code: c.cfg.AssetCode, Issuer: c.cfg.IssuerAddress},
				},
				Limit: c.cfg.TrustlineLimit,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("stellar: building change trust: %w", err)
	}

	tx, err = tx.Sign(c.cfg.NetworkPassphrase, kp)
	if err != nil {
		return fmt.Errorf("stellar: signing change trust: %w", err)
	}

	if _, err := c.horizon.SubmitTransaction(tx); err != nil {
		return wrapHorizonError(err)
	}
	return nil
}

// FundAccount asks the friendbot service to fund the account with the base
// currency. Only meaningful on test networks.
func (c *Client) FundAccount(publicKey string) error {
	resp, err := c.http.Get(fmt.Sprintf("%s?addr=%s", c.cfg.FriendbotURL, publicKey))
	if err != nil {
		return &LedgerError{Code: CodeUnavailable, Detail: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return &LedgerError{Code: CodeRejected, Detail: fmt.Sprintf("friendbot returned status %d", resp.StatusCode)}
	}
	return nil
}

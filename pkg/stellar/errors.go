package stellar

import (
	"errors"
	"fmt"

	"github.com/stellar/go/clients/horizonclient"
)

// ErrAccountNotFound is returned when the requested account does not exist on the ledger.
var ErrAccountNotFound = errors.New("stellar: account not found")

// LedgerError codes. Callers branch on these to produce user-facing messages,
// so the horizon result codes are collapsed into a small, stable set.
const (
	CodeUnderfunded   = "underfunded"     // source lacks funds for the payment
	CodeNoDestination = "no_destination"  // destination account does not exist
	CodeNoTrust       = "no_trust"        // destination has no trustline for the asset
	CodeSourceNoTrust = "src_no_trust"    // source has no trustline for the asset
	CodeRejected      = "rejected"        // any other ledger rejection
	CodeUnavailable   = "unavailable"     // network error, horizon unreachable or timed out
)

// LedgerError represents a typed rejection from the Stellar network.
type LedgerError struct {
	Code   string
	Detail string
}

func (e *LedgerError) Error() string {
	return fmt.Sprintf("stellar: ledger error (%s): %s", e.Code, e.Detail)
}

// wrapHorizonError converts a horizon client error into a *LedgerError.
// A nil input returns nil.
func wrapHorizonError(err error) error {
	if err == nil {
		return nil
	}

	var hErr *horizonclient.Error
	if !errors.As(err, &hErr) {
		// Transport-level failure (DNS, timeout, connection refused).
		return &LedgerError{Code: CodeUnavailable, Detail: err.Error()}
	}

	codes, rcErr := hErr.ResultCodes()
	if rcErr != nil {
		return &LedgerError{Code: CodeRejected, Detail: hErr.Problem.Detail}
	}

	return &LedgerError{
		Code:   classifyResultCodes(codes.TransactionCode, codes.OperationCodes),
		Detail: fmt.Sprintf("tx: %s ops: %v", codes.TransactionCode, codes.OperationCodes),
	}
}

// classifyResultCodes picks the most specific code out of a horizon rejection.
func classifyResultCodes(txCode string, opCodes []string) string {
	for _, code := range opCodes {
		switch code {
		case "op_underfunded":
			return CodeUnderfunded
		case "op_no_destination":
			return CodeNoDestination
		case "op_no_trust":
			return CodeNoTrust
		case "op_src_no_trust":
			return CodeSourceNoTrust
		}
	}
	if txCode == "tx_insufficient_balance" {
		return CodeUnderfunded
	}
	return CodeRejected
}

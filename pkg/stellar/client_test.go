package stellar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyResultCodes(t *testing.T) {
	tests := []struct {
		name    string
		txCode  string
		opCodes []string
		want    string
	}{
		{
			name:    "underfunded source",
			txCode:  "tx_failed",
			opCodes: []string{"op_underfunded"},
			want:    CodeUnderfunded,
		},
		{
			name:    "missing destination account",
			txCode:  "tx_failed",
			opCodes: []string{"op_no_destination"},
			want:    CodeNoDestination,
		},
		{
			name:    "destination missing trustline",
			txCode:  "tx_failed",
			opCodes: []string{"op_no_trust"},
			want:    CodeNoTrust,
		},
		{
			name:    "source missing trustline",
			txCode:  "tx_failed",
			opCodes: []string{"op_src_no_trust"},
			want:    CodeSourceNoTrust,
		},
		{
			name:   "insufficient balance for fee",
			txCode: "tx_insufficient_balance",
			want:   CodeUnderfunded,
		},
		{
			name:    "unknown op code falls back to rejected",
			txCode:  "tx_failed",
			opCodes: []string{"op_malformed"},
			want:    CodeRejected,
		},
		{
			name:    "first specific code wins",
			txCode:  "tx_failed",
			opCodes: []string{"op_success", "op_no_trust"},
			want:    CodeNoTrust,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyResultCodes(tt.txCode, tt.opCodes))
		})
	}
}

func TestAccountHasTrustline(t *testing.T) {
	account := &Account{
		ID: "GABC",
		Balances: []Balance{
			{Type: "native", Amount: "10000.0000000"},
			{Type: "credit_alphanum4", Code: "EDU", Issuer: "GISSUER", Amount: "25.0000000", Limit: "1000000.0000000"},
		},
	}

	assert.True(t, account.HasTrustline("EDU", "GISSUER"))
	assert.False(t, account.HasTrustline("EDU", "GOTHER"), "issuer must match")
	assert.False(t, account.HasTrustline("USD", "GISSUER"), "code must match")

	nativeOnly := &Account{Balances: []Balance{{Type: "native", Amount: "1.0"}}}
	assert.False(t, nativeOnly.HasTrustline("EDU", "GISSUER"))
}

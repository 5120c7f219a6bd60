// Package service implements the session token client and the REST gateway
// ledger adapter.
package service

import (
	"context"

	ledgerDomain "github.com/allisson/parkledger/internal/ledger/domain"
)

// TokenLedger is the opaque, caller-owned ledger capability.
//
// Implementations are constructed once per process and passed by reference
// into every call; this package neither pools nor caches them, and performs
// exactly one submission attempt per operation. Timeouts, retries and backoff
// are layered by callers.
type TokenLedger interface {
	// Mint submits a mint transaction for tokenID carrying the metadata bytes
	// and awaits the receipt.
	Mint(ctx context.Context, tokenID string, metadata []byte) (*ledgerDomain.Receipt, error)

	// Burn submits a burn transaction for the given serial and awaits the receipt.
	Burn(ctx context.Context, tokenID string, serial int64) (*ledgerDomain.Receipt, error)
}

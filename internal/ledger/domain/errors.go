package domain

import (
	"github.com/allisson/parkledger/internal/errors"
)

var (
	// ErrLedgerFailure indicates a transaction receipt reported a non-success
	// status. Mint and burn failures always propagate to the caller; absorbing
	// them would corrupt the session lifecycle.
	ErrLedgerFailure = errors.New("ledger transaction failed")

	// ErrReceiptIntegrity indicates the ledger reported success for a mint but
	// supplied no serial number, violating its own contract.
	ErrReceiptIntegrity = errors.New("mint receipt reported success without a serial")
)

// Package domain defines the ledger-side types for session token operations.
package domain

// ReceiptStatus is the outcome code a ledger transaction receipt carries.
type ReceiptStatus string

const (
	// ReceiptStatusSuccess is the only status treated as a committed transaction.
	ReceiptStatusSuccess ReceiptStatus = "SUCCESS"
)

// Receipt is the ledger's answer to a submitted transaction.
//
// For mint transactions the ledger assigns one serial per minted record and
// reports it here; burn receipts carry no serials.
type Receipt struct {
	Status        ReceiptStatus
	Serials       []int64
	TransactionID string
}

// Success reports whether the receipt records a committed transaction.
func (r *Receipt) Success() bool {
	return r.Status == ReceiptStatusSuccess
}

// FirstSerial returns the first assigned serial, if the ledger supplied one.
func (r *Receipt) FirstSerial() (int64, bool) {
	if len(r.Serials) == 0 || r.Serials[0] <= 0 {
		return 0, false
	}
	return r.Serials[0], true
}

// MintResult is the successful outcome of minting a session token.
type MintResult struct {
	Serial        int64
	TransactionID string
}

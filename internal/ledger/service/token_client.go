package service

import (
	"context"
	"fmt"
	"log/slog"

	ledgerDomain "github.com/allisson/parkledger/internal/ledger/domain"
	sessionDomain "github.com/allisson/parkledger/internal/session/domain"
	sessionService "github.com/allisson/parkledger/internal/session/service"
)

// SessionTokenClient opens and closes a session's on-ledger record.
//
// Mint embeds the encrypted metadata envelope as the token's on-ledger
// metadata; burn destroys the serial. The client performs an unconditional
// mint: whether the plate already has an active session is the authoritative
// store's concern, never checked here.
type SessionTokenClient struct {
	ledger   TokenLedger
	envelope sessionService.Envelope
	logger   *slog.Logger
}

// NewSessionTokenClient creates a client over the caller-owned ledger handle.
func NewSessionTokenClient(
	ledger TokenLedger,
	envelope sessionService.Envelope,
	logger *slog.Logger,
) *SessionTokenClient {
	return &SessionTokenClient{
		ledger:   ledger,
		envelope: envelope,
		logger:   logger,
	}
}

// Mint seals the metadata, submits a mint transaction and awaits the receipt.
//
// Fails wrapping ErrLedgerFailure when the receipt status is not success, and
// with ErrReceiptIntegrity when the receipt reports success but carries no
// serial. On success returns the assigned serial and transaction id.
func (c *SessionTokenClient) Mint(
	ctx context.Context,
	tokenID string,
	meta sessionDomain.SessionMetadata,
) (*ledgerDomain.MintResult, error) {
	frame, err := c.envelope.Seal(meta)
	if err != nil {
		return nil, err
	}

	receipt, err := c.ledger.Mint(ctx, tokenID, frame)
	if err != nil {
		return nil, fmt.Errorf("failed to submit mint transaction: %w", err)
	}

	if !receipt.Success() {
		c.logger.Warn("mint rejected by ledger",
			slog.String("token_id", tokenID),
			slog.String("status", string(receipt.Status)))
		return nil, fmt.Errorf("%w: mint status %s", ledgerDomain.ErrLedgerFailure, receipt.Status)
	}

	serial, ok := receipt.FirstSerial()
	if !ok {
		return nil, ledgerDomain.ErrReceiptIntegrity
	}

	c.logger.Info("session token minted",
		slog.String("token_id", tokenID),
		slog.Int64("serial", serial),
		slog.String("transaction_id", receipt.TransactionID))

	return &ledgerDomain.MintResult{
		Serial:        serial,
		TransactionID: receipt.TransactionID,
	}, nil
}

// Burn submits a burn transaction for the serial and awaits the receipt.
//
// A non-success receipt fails wrapping ErrLedgerFailure. Burning an
// already-burned serial is expected to fail at the ledger and that failure
// propagates, never absorbed.
func (c *SessionTokenClient) Burn(ctx context.Context, tokenID string, serial int64) error {
	receipt, err := c.ledger.Burn(ctx, tokenID, serial)
	if err != nil {
		return fmt.Errorf("failed to submit burn transaction: %w", err)
	}

	if !receipt.Success() {
		c.logger.Warn("burn rejected by ledger",
			slog.String("token_id", tokenID),
			slog.Int64("serial", serial),
			slog.String("status", string(receipt.Status)))
		return fmt.Errorf("%w: burn status %s", ledgerDomain.ErrLedgerFailure, receipt.Status)
	}

	c.logger.Info("session token burned",
		slog.String("token_id", tokenID),
		slog.Int64("serial", serial),
		slog.String("transaction_id", receipt.TransactionID))

	return nil
}

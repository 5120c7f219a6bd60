// Package mocks provides mock implementations for testing ledger clients.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	ledgerDomain "github.com/allisson/parkledger/internal/ledger/domain"
)

// MockTokenLedger is a mock implementation of TokenLedger for testing.
type MockTokenLedger struct {
	mock.Mock
}

// Mint mocks the Mint method of TokenLedger.
func (m *MockTokenLedger) Mint(
	ctx context.Context,
	tokenID string,
	metadata []byte,
) (*ledgerDomain.Receipt, error) {
	args := m.Called(ctx, tokenID, metadata)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledgerDomain.Receipt), args.Error(1)
}

// Burn mocks the Burn method of TokenLedger.
func (m *MockTokenLedger) Burn(
	ctx context.Context,
	tokenID string,
	serial int64,
) (*ledgerDomain.Receipt, error) {
	args := m.Called(ctx, tokenID, serial)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledgerDomain.Receipt), args.Error(1)
}

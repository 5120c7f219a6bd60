// Package domain defines the read-only types reflected by the ledger mirror.
package domain

import (
	sessionDomain "github.com/allisson/parkledger/internal/session/domain"
)

// NFT is one token record as reported by the mirror listing. The mirror is
// eventually consistent; records are advisory snapshots, never authoritative.
type NFT struct {
	Serial         int64
	Deleted        bool
	MetadataBase64 string
}

// NFTStatus is the answer to a single-record existence check.
//
// The mirror cannot distinguish never-existed from later-deleted, so a 404 is
// reported as deleted; that conflation is preserved rather than invented away.
// Exists=false with Deleted=false is the explicit "unknown" outcome of a
// transport failure.
type NFTStatus struct {
	Exists         bool
	Deleted        bool
	MetadataBase64 string
}

// ActiveRecord is a non-deleted mirror record whose decrypted metadata matched
// a scanned plate digest.
type ActiveRecord struct {
	Serial   int64
	Metadata sessionDomain.SessionMetadata
}

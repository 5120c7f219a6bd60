package domain

import (
	"github.com/allisson/parkledger/internal/errors"
)

var (
	// ErrMirrorStatus indicates the mirror responded with an unexpected
	// non-success status. Transport failures are not errors on this path; they
	// degrade to an explicit unknown result instead.
	ErrMirrorStatus = errors.New("mirror responded with unexpected status")
)

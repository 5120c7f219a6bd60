// Package service implements the read-only mirror query client: single-record
// existence checks and the bounded scan-by-digest used when the primary
// database is unreachable.
package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	mirrorDomain "github.com/allisson/parkledger/internal/mirror/domain"
	sessionDomain "github.com/allisson/parkledger/internal/session/domain"
	sessionService "github.com/allisson/parkledger/internal/session/service"
)

// Scan cost bounds. The scan only runs during a degraded-primary incident and
// must return promptly, so it is a bounded best-effort lookup, never an
// exhaustive search.
const (
	// scanPageSize is the number of records requested per mirror page.
	scanPageSize = 100

	// maxScanPages caps the scan at 3 pages (300 records).
	maxScanPages = 3
)

// Client queries the eventually-consistent ledger mirror over HTTP.
//
// Results may lag the ledger by minutes and are advisory. Each page fetch and
// single-record lookup performs exactly one attempt with the injected
// http.Client; retry and timeout policy belong to the caller.
type Client struct {
	baseURL    string
	httpClient *http.Client
	envelope   sessionService.Envelope
	logger     *slog.Logger
}

// NewClient creates a mirror client for the given base URL.
// A nil httpClient falls back to http.DefaultClient.
func NewClient(
	baseURL string,
	httpClient *http.Client,
	envelope sessionService.Envelope,
	logger *slog.Logger,
) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		envelope:   envelope,
		logger:     logger,
	}
}

// nftResponse is the mirror's single-record representation.
type nftResponse struct {
	SerialNumber int64  `json:"serial_number"`
	Deleted      bool   `json:"deleted"`
	Metadata     string `json:"metadata"`
}

// nftListingResponse is one page of the mirror's token listing.
type nftListingResponse struct {
	NFTs  []nftResponse `json:"nfts"`
	Links struct {
		Next string `json:"next"`
	} `json:"links"`
}

// TokenInfo checks one serial's existence on the mirror.
//
// A 404 is reported as deleted (the mirror conflates never-existed with
// later-deleted). Other non-success statuses fail wrapping ErrMirrorStatus. A
// transport failure degrades to the explicit unknown result {Exists:false,
// Deleted:false} with a nil error: this is already a fallback path and must
// not become a harder failure than the condition it compensates for.
func (c *Client) TokenInfo(
	ctx context.Context,
	tokenID string,
	serial int64,
) (mirrorDomain.NFTStatus, error) {
	reqURL := fmt.Sprintf("%s/tokens/%s/nfts/%d", c.baseURL, tokenID, serial)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return mirrorDomain.NFTStatus{}, fmt.Errorf("failed to build mirror request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("mirror unreachable, reporting unknown",
			slog.String("token_id", tokenID),
			slog.Int64("serial", serial),
			slog.Any("error", err))
		return mirrorDomain.NFTStatus{}, nil
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return mirrorDomain.NFTStatus{Exists: false, Deleted: true}, nil
	case resp.StatusCode != http.StatusOK:
		return mirrorDomain.NFTStatus{}, fmt.Errorf(
			"%w: %d", mirrorDomain.ErrMirrorStatus, resp.StatusCode,
		)
	}

	var nft nftResponse
	if err := json.NewDecoder(resp.Body).Decode(&nft); err != nil {
		return mirrorDomain.NFTStatus{}, fmt.Errorf("failed to decode mirror response: %w", err)
	}

	return mirrorDomain.NFTStatus{
		Exists:         true,
		Deleted:        nft.Deleted,
		MetadataBase64: nft.Metadata,
	}, nil
}

// FindActiveByPlateHash scans the token listing newest-first for the first
// non-deleted record whose decrypted metadata matches the plate digest.
//
// The scan follows the mirror's pagination cursor in an explicit page loop and
// stops on the first of: match found (returned immediately, no further pages),
// page cap reached, cursor exhausted, context cancelled, or transport error
// mid-scan. Every non-match outcome returns found=false; a partial scan never
// produces a partial answer. Unparsable records (foreign metadata, rotated
// key, truncated data) are skipped, never fatal.
func (c *Client) FindActiveByPlateHash(
	ctx context.Context,
	tokenID string,
	plateHash []byte,
) (*mirrorDomain.ActiveRecord, bool) {
	pageURL := fmt.Sprintf(
		"%s/tokens/%s/nfts?order=desc&limit=%d",
		c.baseURL, tokenID, scanPageSize,
	)

	for page := 0; page < maxScanPages && pageURL != ""; page++ {
		if ctx.Err() != nil {
			c.logger.Warn("mirror scan cancelled",
				slog.String("token_id", tokenID),
				slog.Int("page", page))
			return nil, false
		}

		listing, err := c.fetchPage(ctx, pageURL)
		if err != nil {
			c.logger.Warn("mirror scan aborted",
				slog.String("token_id", tokenID),
				slog.Int("page", page),
				slog.Any("error", err))
			return nil, false
		}

		for _, nft := range listing.NFTs {
			if nft.Deleted {
				continue
			}

			meta, ok := c.decodeRecord(nft)
			if !ok {
				continue
			}

			if bytes.Equal(meta.PlateHash, plateHash) {
				return &mirrorDomain.ActiveRecord{
					Serial:   nft.SerialNumber,
					Metadata: meta,
				}, true
			}
		}

		pageURL = c.resolveNext(listing.Links.Next)
	}

	return nil, false
}

// fetchPage performs one page request; any non-200 outcome is an error.
func (c *Client) fetchPage(ctx context.Context, pageURL string) (*nftListingResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build mirror request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("mirror request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", mirrorDomain.ErrMirrorStatus, resp.StatusCode)
	}

	var listing nftListingResponse
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return nil, fmt.Errorf("failed to decode mirror page: %w", err)
	}

	return &listing, nil
}

// decodeRecord attempts base64 decode, authenticated decrypt and codec decode.
// Any failure in the chain reports ok=false so the caller skips the record.
func (c *Client) decodeRecord(nft nftResponse) (sessionDomain.SessionMetadata, bool) {
	frame, err := base64.StdEncoding.DecodeString(nft.Metadata)
	if err != nil {
		c.logger.Debug("skipping record with invalid base64 metadata",
			slog.Int64("serial", nft.SerialNumber))
		return sessionDomain.SessionMetadata{}, false
	}

	meta, ok := c.envelope.Open(frame)
	if !ok {
		c.logger.Debug("skipping undecryptable record",
			slog.Int64("serial", nft.SerialNumber))
		return sessionDomain.SessionMetadata{}, false
	}

	return meta, true
}

// resolveNext turns the listing's next link into an absolute page URL.
// An empty link means the cursor is exhausted.
func (c *Client) resolveNext(next string) string {
	if next == "" {
		return ""
	}

	base, err := url.Parse(c.baseURL)
	if err != nil {
		return ""
	}
	ref, err := url.Parse(next)
	if err != nil {
		return ""
	}

	return base.ResolveReference(ref).String()
}

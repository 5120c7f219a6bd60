package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	ledgerDomain "github.com/allisson/parkledger/internal/ledger/domain"
)

// RESTLedger implements TokenLedger against the ledger gateway's REST API.
//
// Each call performs exactly one HTTP attempt with the injected client and
// returns a definitive receipt or error; deadline and retry policy belong to
// the caller via the context and the http.Client configuration.
type RESTLedger struct {
	baseURL    string
	httpClient *http.Client
}

// NewRESTLedger creates a gateway client for the given base URL.
// A nil httpClient falls back to http.DefaultClient.
func NewRESTLedger(baseURL string, httpClient *http.Client) *RESTLedger {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &RESTLedger{baseURL: baseURL, httpClient: httpClient}
}

// mintRequest is the gateway's mint payload; metadata travels base64-encoded.
type mintRequest struct {
	Metadata string `json:"metadata"`
}

// receiptResponse is the gateway's receipt representation for mint and burn.
type receiptResponse struct {
	Status        string  `json:"status"`
	Serials       []int64 `json:"serials,omitempty"`
	TransactionID string  `json:"transaction_id"`
}

// Mint submits POST /tokens/{tokenID}/mint and decodes the receipt.
func (l *RESTLedger) Mint(
	ctx context.Context,
	tokenID string,
	metadata []byte,
) (*ledgerDomain.Receipt, error) {
	body, err := json.Marshal(mintRequest{
		Metadata: base64.StdEncoding.EncodeToString(metadata),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal mint request: %w", err)
	}

	url := fmt.Sprintf("%s/tokens/%s/mint", l.baseURL, tokenID)
	return l.submit(ctx, url, body)
}

// Burn submits POST /tokens/{tokenID}/serials/{serial}/burn and decodes the receipt.
func (l *RESTLedger) Burn(
	ctx context.Context,
	tokenID string,
	serial int64,
) (*ledgerDomain.Receipt, error) {
	url := fmt.Sprintf("%s/tokens/%s/serials/%d/burn", l.baseURL, tokenID, serial)
	return l.submit(ctx, url, nil)
}

// submit performs one POST and decodes the receipt body.
func (l *RESTLedger) submit(ctx context.Context, url string, body []byte) (*ledgerDomain.Receipt, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build gateway request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gateway responded with status %d", resp.StatusCode)
	}

	var receipt receiptResponse
	if err := json.NewDecoder(resp.Body).Decode(&receipt); err != nil {
		return nil, fmt.Errorf("failed to decode gateway receipt: %w", err)
	}

	return &ledgerDomain.Receipt{
		Status:        ledgerDomain.ReceiptStatus(receipt.Status),
		Serials:       receipt.Serials,
		TransactionID: receipt.TransactionID,
	}, nil
}

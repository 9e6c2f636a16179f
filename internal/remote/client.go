// Package remote is the HTTP boundary to the storefront backend. Failures
// cross this boundary as typed results (network down, server error status,
// malformed payload) so callers branch on them instead of catching anything.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

var (
	// ErrNetworkUnavailable indicates the backend could not be reached at all.
	ErrNetworkUnavailable = errors.New("network unavailable")

	// ErrMalformedResponse indicates the backend answered with a payload this
	// client could not decode.
	ErrMalformedResponse = errors.New("malformed response")
)

// ServerError indicates the backend answered with a non-success status.
type ServerError struct {
	Status int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error: status %d", e.Status)
}

// ProductRecord is one product as the backend serializes it.
type ProductRecord struct {
	Code        string `json:"code"`
	Category    string `json:"category"`
	Brand       string `json:"brand"`
	Name        string `json:"name"`
	PriceCents  int64  `json:"priceCents"`
	Description string `json:"description"`
}

// Client talks to the storefront backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// New builds a Client against baseURL (no trailing slash required).
func New(baseURL string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

// FetchProducts retrieves the full product list. The backend returns either
// the complete list or a failure; there are no partial lists.
func (c *Client) FetchProducts(ctx context.Context) ([]ProductRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/products", nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("fetch products: request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrNetworkUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("fetch products: bad status", zap.Int("status", resp.StatusCode))
		return nil, &ServerError{Status: resp.StatusCode}
	}

	var records []ProductRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		c.logger.Warn("fetch products: decode failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	c.logger.Info("fetched products", zap.Int("count", len(records)))
	return records, nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a bearer token issued by the backend.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return "", fmt.Errorf("encode login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/login", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("login: request failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrNetworkUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return "", &ServerError{Status: resp.StatusCode}
	}

	var lr loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if lr.Token == "" {
		return "", fmt.Errorf("%w: empty token", ErrMalformedResponse)
	}
	return lr.Token, nil
}

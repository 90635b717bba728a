package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/salesinsight/internal/common"
	"github.com/dmitrijs2005/salesinsight/internal/netx"
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// SalesClient is safe for concurrent use.
type SalesClient struct {
	baseURL string
	http    *http.Client
}

func NewSalesClient(baseURL string, timeout time.Duration) *SalesClient {
	return &SalesClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Login posts form-encoded credentials and returns the access token.
func (c *SalesClient) Login(ctx context.Context, username, password string) (string, error) {
	form := url.Values{"username": {username}, "password": {password}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	var tr tokenResponse
	if err := netx.DoJSON(c.http, req, &tr); err != nil {
		return "", mapError("login", err)
	}
	if tr.AccessToken == "" {
		return "", fmt.Errorf("%w: login: empty access token", ErrUnavailable)
	}
	return tr.AccessToken, nil
}

// GetSalesData returns the raw JSON array served by /get-sales-data.
func (c *SalesClient) GetSalesData(ctx context.Context, token string) (json.RawMessage, error) {
	req, err := netx.NewJSONRequest(ctx, http.MethodGet, c.baseURL+"/get-sales-data", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	req.Header.Set("Authorization", common.AuthScheme+" "+token)

	var records json.RawMessage
	if err := netx.DoJSON(c.http, req, &records); err != nil {
		return nil, mapError("get sales data", err)
	}
	if !isJSONArray(records) {
		return nil, fmt.Errorf("%w: get sales data: response is not a JSON array", ErrUnavailable)
	}
	return records, nil
}

func mapError(op string, err error) error {
	var se *netx.StatusError
	if errors.As(err, &se) && se.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%w: %s: %w", ErrUnauthorized, op, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrUnavailable, op, err)
}

func isJSONArray(b json.RawMessage) bool {
	s := strings.TrimSpace(string(b))
	return strings.HasPrefix(s, "[")
}

// Package llm calls the Gemini generateContent REST endpoint.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/salesinsight/internal/netx"
)

var ErrEmptyResponse = errors.New("model returned no text")

// Generator turns a prompt into model text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type GeminiConfig struct {
	BaseURL string
	Model   string
	APIKey  string
	Timeout time.Duration
}

type GeminiClient struct {
	endpoint string
	apiKey   string
	http     *http.Client
}

func NewGeminiClient(cfg GeminiConfig) *GeminiClient {
	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent",
		strings.TrimRight(cfg.BaseURL, "/"), url.PathEscape(cfg.Model))
	return &GeminiClient{
		endpoint: endpoint,
		apiKey:   cfg.APIKey,
		http:     &http.Client{Timeout: cfg.Timeout},
	}
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Generate sends prompt as a single user turn and returns the concatenated
// text parts of the first candidate.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	body := generateRequest{Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}}}

	req, err := netx.NewJSONRequest(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return "", err
	}
	req.Header.Set("x-goog-api-key", c.apiKey)

	var resp generateResponse
	if err := netx.DoJSON(c.http, req, &resp); err != nil {
		return "", describe(err)
	}

	if len(resp.Candidates) == 0 {
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return "", fmt.Errorf("%w: prompt blocked (%s)", ErrEmptyResponse, resp.PromptFeedback.BlockReason)
		}
		return "", ErrEmptyResponse
	}

	var sb strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("%w: finish reason %s", ErrEmptyResponse, resp.Candidates[0].FinishReason)
	}
	return sb.String(), nil
}

// describe replaces a raw status error with the API's own message when the
// body carries one.
func describe(err error) error {
	var se *netx.StatusError
	if !errors.As(err, &se) {
		return err
	}
	var ae apiError
	if json.Unmarshal([]byte(se.Body), &ae) == nil && ae.Error.Message != "" {
		return fmt.Errorf("%d %s: %s", se.StatusCode, ae.Error.Status, ae.Error.Message)
	}
	return err
}

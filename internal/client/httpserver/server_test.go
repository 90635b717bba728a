package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/salesinsight/internal/common"
	"github.com/dmitrijs2005/salesinsight/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAnalyzer struct {
	out string
	err error
}

func (f fakeAnalyzer) Analyze(context.Context) (string, error) {
	return f.out, f.err
}

func get(t *testing.T, a Analyzer, path string) (int, map[string]string) {
	t.Helper()
	s := NewHTTPServer(":0", logging.Discard(), a)
	resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var m map[string]string
	require.NoError(t, json.Unmarshal(b, &m), string(b))
	return resp.StatusCode, m
}

func TestAnalyzeSales(t *testing.T) {
	tests := []struct {
		name       string
		analyzer   fakeAnalyzer
		wantStatus int
		wantKey    string
		wantValue  string
	}{
		{
			name:       "success",
			analyzer:   fakeAnalyzer{out: `{"best":"Kopi"}`},
			wantStatus: http.StatusOK,
			wantKey:    "gemini_analysis",
			wantValue:  `{"best":"Kopi"}`,
		},
		{
			name:       "data server down",
			analyzer:   fakeAnalyzer{err: fmt.Errorf("%w: %w", common.ErrUpstreamUnavailable, errors.New("connection refused"))},
			wantStatus: http.StatusServiceUnavailable,
			wantKey:    "detail",
			wantValue:  "Cannot connect to data server: connection refused",
		},
		{
			name:       "model failure",
			analyzer:   fakeAnalyzer{err: fmt.Errorf("%w: %w", common.ErrorInternal, errors.New("quota exceeded"))},
			wantStatus: http.StatusInternalServerError,
			wantKey:    "detail",
			wantValue:  "An error occurred while communicating with Gemini: quota exceeded",
		},
		{
			name:       "unclassified",
			analyzer:   fakeAnalyzer{err: errors.New("weird")},
			wantStatus: http.StatusInternalServerError,
			wantKey:    "detail",
			wantValue:  "Internal server error",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := get(t, tt.analyzer, "/analyze-sales")
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantValue, body[tt.wantKey])
		})
	}
}

func TestHealth(t *testing.T) {
	status, body := get(t, fakeAnalyzer{}, "/healthz")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
}

package netx

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewJSONRequest(t *testing.T) {
	req, err := NewJSONRequest(context.Background(), http.MethodPost, "http://example.test/x", map[string]string{"a": "b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ct := req.Header.Get("Content-Type"); ct != "application/json" {
		t.Fatalf("Content-Type = %q, want application/json", ct)
	}
	b, _ := io.ReadAll(req.Body)
	if string(b) != `{"a":"b"}` {
		t.Fatalf("body = %q", string(b))
	}

	req, err = NewJSONRequest(context.Background(), http.MethodGet, "http://example.test/x", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Header.Get("Content-Type") != "" {
		t.Fatal("GET without body must not set Content-Type")
	}

	if _, err := NewJSONRequest(context.Background(), http.MethodPost, "http://x", make(chan int)); err == nil {
		t.Fatal("expected marshal error")
	}
}

func TestDoJSON(t *testing.T) {
	t.Run("success 200 OK", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"name":"kopi","qty":3}`))
		}))
		defer ts.Close()

		req, _ := NewJSONRequest(context.Background(), http.MethodGet, ts.URL, nil)
		var out struct {
			Name string `json:"name"`
			Qty  int    `json:"qty"`
		}
		if err := DoJSON(ts.Client(), req, &out); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Name != "kopi" || out.Qty != 3 {
			t.Fatalf("unexpected decode: %+v", out)
		}
	})

	t.Run("non-2xx -> StatusError", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"detail":"nope"}`))
		}))
		defer ts.Close()

		req, _ := NewJSONRequest(context.Background(), http.MethodGet, ts.URL, nil)
		err := DoJSON(ts.Client(), req, &struct{}{})

		var se *StatusError
		if !errors.As(err, &se) {
			t.Fatalf("expected *StatusError, got %T %v", err, err)
		}
		if se.StatusCode != http.StatusForbidden {
			t.Fatalf("StatusCode = %d, want 403", se.StatusCode)
		}
		if !strings.Contains(err.Error(), "403") || !strings.Contains(err.Error(), "nope") {
			t.Fatalf("error = %q, want status and body", err.Error())
		}
	})

	t.Run("bad json -> error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		defer ts.Close()

		req, _ := NewJSONRequest(context.Background(), http.MethodGet, ts.URL, nil)
		err := DoJSON(ts.Client(), req, &struct{}{})
		if err == nil || !strings.Contains(err.Error(), "decode response") {
			t.Fatalf("expected decode error, got %v", err)
		}
	})

	t.Run("network error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := ts.URL
		ts.Close()

		req, _ := NewJSONRequest(context.Background(), http.MethodGet, url, nil)
		if _, err := Do(http.DefaultClient, req); err == nil {
			t.Fatal("expected error for closed server")
		}
	})
}

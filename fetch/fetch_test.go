package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

func TestGetSendsParamsAndUserAgent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "aspirin drug" {
			t.Errorf("Expected q=aspirin drug, got %q", got)
		}
		if got := r.Header.Get("User-Agent"); got != "test-agent" {
			t.Errorf("Expected User-Agent test-agent, got %q", got)
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	c := New(server.Client(), "test-agent", time.Second)
	body, err := c.Get(context.Background(), server.URL, url.Values{"q": {"aspirin drug"}})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if string(body) != `{"ok":true}` {
		t.Errorf("Unexpected body %s", body)
	}
}

func TestGetReturnsStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := New(server.Client(), "", time.Second)
	_, err := c.Get(context.Background(), server.URL, nil)
	if !errors.Is(err, ErrUnexpectedStatus) {
		t.Fatalf("Expected ErrUnexpectedStatus, got %v", err)
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.Code != http.StatusNotFound {
		t.Errorf("Expected StatusError with 404, got %v", err)
	}
}

func TestGetTimesOut(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	c := New(server.Client(), "", 50*time.Millisecond)
	start := time.Now()
	if _, err := c.Get(context.Background(), server.URL, nil); err == nil {
		t.Fatal("Expected timeout error")
	}
	if time.Since(start) > time.Second {
		t.Errorf("Timeout was not applied, took %v", time.Since(start))
	}
}

func TestPostJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Expected JSON content type, got %q", ct)
		}
		var payload map[string]string
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("Failed to decode payload: %v", err)
		}
		w.Write([]byte(payload["q"]))
	}))
	defer server.Close()

	c := New(server.Client(), "", time.Second)
	body, err := c.PostJSON(context.Background(), server.URL, map[string]string{"q": "hello"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if string(body) != "hello" {
		t.Errorf("Expected echo, got %s", body)
	}
}

func TestStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			t.Errorf("Expected HEAD, got %s", r.Method)
		}
		w.WriteHeader(http.StatusMethodNotAllowed)
	}))
	defer server.Close()

	c := New(server.Client(), "", time.Second)
	code, err := c.Status(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if code != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405, got %d", code)
	}
}

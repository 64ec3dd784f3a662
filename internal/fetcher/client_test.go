package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetch_OK(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Fatalf("method = %s, want GET", r.Method)
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("hello, мир"))
	}))
	defer ts.Close()

	client := NewClient()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	data, err := client.Fetch(ctx, ts.URL)
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if data != "hello, мир" {
		t.Fatalf("Fetch = %q, want %q", data, "hello, мир")
	}
}

func TestFetch_FollowsRedirect(t *testing.T) {
	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("final"))
	}))
	defer target.Close()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, target.URL, http.StatusFound)
	}))
	defer ts.Close()

	client := NewClient()

	data, err := client.Fetch(context.Background(), ts.URL)
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if data != "final" {
		t.Fatalf("Fetch = %q, want %q", data, "final")
	}
}

func TestFetch_ErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	}))
	defer ts.Close()

	client := NewClient()

	_, err := client.Fetch(context.Background(), ts.URL)
	if err == nil {
		t.Fatalf("expected error for status 404")
	}
}

func TestFetch_NotUTF8(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte{0xff, 0xfe, 0xfd})
	}))
	defer ts.Close()

	client := NewClient()

	_, err := client.Fetch(context.Background(), ts.URL)
	if !errors.Is(err, ErrNotUTF8) {
		t.Fatalf("Fetch error = %v, want ErrNotUTF8", err)
	}
}

func TestFetch_ConnectionError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	client := NewClient()

	_, err := client.Fetch(context.Background(), url)
	if err == nil {
		t.Fatalf("expected error for closed server")
	}
}

func TestFetch_MalformedURL(t *testing.T) {
	client := NewClient()

	_, err := client.Fetch(context.Background(), "http://exa mple.com/%zz")
	if err == nil {
		t.Fatalf("expected error for malformed url")
	}
}

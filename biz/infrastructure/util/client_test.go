package util

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSendRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		w.Write([]byte(`{"code": 0, "data": {"marks": 7}}`))
	}))
	defer srv.Close()

	client := NewHttpClient()
	resp, err := client.SendRequest(context.Background(), http.MethodPost, srv.URL,
		map[string]string{"Content-Type": "application/json"},
		map[string]any{"answer": "F = ma"})
	if err != nil {
		t.Fatalf("SendRequest() error = %v", err)
	}
	if code := resp["code"].(float64); code != 0 {
		t.Errorf("code = %v", code)
	}
	data := resp["data"].(map[string]any)
	if marks := data["marks"].(float64); marks != 7 {
		t.Errorf("marks = %v, want 7", marks)
	}
}

func TestSendRequestRejectsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewHttpClient()
	if _, err := client.SendRequest(context.Background(), http.MethodPost, srv.URL, nil, nil); err == nil {
		t.Error("expected an error for a 502 response")
	}
}

func TestSendRequestRejectsBadJson(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := NewHttpClient()
	if _, err := client.SendRequest(context.Background(), http.MethodPost, srv.URL, nil, nil); err == nil {
		t.Error("expected an error for a non-JSON response")
	}
}

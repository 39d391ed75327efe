package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRows(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte("Name,User ID,Status\nAnn,a1,Current Employee\n"))
	}))
	defer srv.Close()

	rows, err := New(srv.URL, "").Rows(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 || rows[1][0] != "Ann" {
		t.Fatalf("unexpected rows: %v", rows)
	}
}

func TestRowsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	if _, err := New(srv.URL, "tok").Rows(context.Background()); err == nil {
		t.Fatal("expected error for 403 response")
	}
}

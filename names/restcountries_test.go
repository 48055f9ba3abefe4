package names

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"

	"badc0de.net/pkg/flagquiz/ttesting"
)

func TestFetch(t *testing.T) {
	var gotUA, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, testDataset)
	}))
	defer srv.Close()

	ix, err := Fetch(context.Background(), srv.Client(), srv.URL+"/v3.1/all")
	ttesting.AssertNoError(t, "Fetch", err)

	ttesting.AssertEqualString(t, "user agent", gotUA, UserAgent)
	ttesting.AssertEqualString(t, "accept", gotAccept, "application/json")
	ttesting.AssertEqualString(t, "lookup", ix.Lookup("USA").EN, "United States")
}

func TestFetchStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	ix, err := Fetch(context.Background(), srv.Client(), srv.URL)
	if err == nil {
		t.Fatalf("Fetch succeeded on a 429 response: %v", ix)
	}
	if errors.Cause(err) != ErrStatus {
		t.Errorf("Fetch error cause = %v; want ErrStatus", errors.Cause(err))
	}
}

func TestFetchUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	if _, err := Fetch(context.Background(), nil, url); err == nil {
		t.Errorf("Fetch succeeded against a closed server")
	}
}

package notion

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestQueryDatabase_Pagination(t *testing.T) {
	var requests []queryRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("Authorization = %q, want Bearer secret", got)
		}
		if got := r.Header.Get("Notion-Version"); got != apiVersion {
			t.Errorf("Notion-Version = %q, want %q", got, apiVersion)
		}

		var req queryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		requests = append(requests, req)

		resp := QueryResponse{Results: []PageDTO{{ID: "page-" + req.StartCursor}}}
		if req.StartCursor == "" {
			resp.HasMore = true
			resp.NextCursor = "c2"
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	client := newHTTPClient(Config{BaseURL: srv.URL, Token: "secret", RequestDelay: 1})
	pages, err := client.QueryDatabase("db-1", Query{
		Filter: ExcludeArchived(),
		Sorts:  []SortDTO{{Property: "Due", Direction: "ascending"}},
	})
	if err != nil {
		t.Fatalf("QueryDatabase: %v", err)
	}

	if len(pages) != 2 {
		t.Fatalf("got %d pages, want 2 across both cursors", len(pages))
	}
	if len(requests) != 2 {
		t.Fatalf("got %d requests, want 2", len(requests))
	}
	if requests[1].StartCursor != "c2" {
		t.Errorf("second request cursor = %q, want c2", requests[1].StartCursor)
	}
	if requests[0].Filter == nil || requests[0].Filter.Status.DoesNotEqual != StatusArchived {
		t.Errorf("filter not forwarded: %+v", requests[0].Filter)
	}
	if len(requests[0].Sorts) != 1 || requests[0].Sorts[0].Property != "Due" {
		t.Errorf("sorts not forwarded: %+v", requests[0].Sorts)
	}
}

func TestQueryDatabase_ErrorStatuses(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{http.StatusUnauthorized, "authentication failed"},
		{http.StatusNotFound, "not found"},
		{http.StatusTooManyRequests, "rate limit"},
		{http.StatusBadGateway, "status 502"},
	}

	for _, tt := range tests {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
		}))

		client := newHTTPClient(Config{BaseURL: srv.URL, Token: "secret", RequestDelay: 1})
		_, err := client.QueryDatabase("db-1", Query{})
		srv.Close()

		if err == nil {
			t.Errorf("status %d: expected error", tt.status)
			continue
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("status %d: error %q does not mention %q", tt.status, err, tt.want)
		}
	}
}

// Compose issues the three fetches concurrently through one shared
// client, so the throttle must serialize them and keep its state
// consistent under the race detector.
func TestQueryDatabase_ConcurrentCallsAreSpaced(t *testing.T) {
	var mu sync.Mutex
	var hits []time.Time

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		hits = append(hits, time.Now())
		mu.Unlock()
		_ = json.NewEncoder(w).Encode(QueryResponse{Results: []PageDTO{{ID: "p"}}})
	}))
	defer srv.Close()

	delay := 30 * time.Millisecond
	client := newHTTPClient(Config{BaseURL: srv.URL, Token: "secret", RequestDelay: delay})

	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := client.QueryDatabase("db-1", Query{}); err != nil {
				t.Errorf("QueryDatabase: %v", err)
			}
		}()
	}
	wg.Wait()

	if len(hits) != 3 {
		t.Fatalf("got %d requests, want 3", len(hits))
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].Before(hits[j]) })
	for i := 1; i < len(hits); i++ {
		if gap := hits[i].Sub(hits[i-1]); gap < delay-5*time.Millisecond {
			t.Errorf("requests %d and %d arrived %v apart, want at least %v", i-1, i, gap, delay)
		}
	}
}

func TestQueryDatabase_MissingConfiguration(t *testing.T) {
	client := newHTTPClient(Config{RequestDelay: 1})
	if _, err := client.QueryDatabase("db-1", Query{}); err == nil {
		t.Error("expected error for missing token")
	}

	client = newHTTPClient(Config{Token: "secret", RequestDelay: 1})
	if _, err := client.QueryDatabase("", Query{}); err == nil {
		t.Error("expected error for missing database id")
	}
}

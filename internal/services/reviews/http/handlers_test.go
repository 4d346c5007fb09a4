package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"arc/internal/core/canon"
	phttp "arc/internal/platform/net/http"
	rsvc "arc/internal/services/reviews/service"
)

type noopJournal struct{}

func (noopJournal) Append(context.Context, string, []canon.Review) error { return nil }
func (noopJournal) Truncate() error                                      { return nil }

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	svc := rsvc.New(rsvc.Options{Capacity: 10, Journal: noopJournal{}})

	mux := chi.NewRouter()
	Register(phttp.AdaptChi(mux), svc)

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("post %s: %v", url, err)
	}
	return resp
}

func decodeEnvelope(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var env map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return env
}

func TestIngestThenCount(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/ingest", `{"reviews":[
		{"review_key":"r-1","review_body":"good","author_name":"John Smith"},
		{"review_key":"r-2","review_body":"bad","author_name":"Jane Doe"}
	]}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("ingest status = %d", resp.StatusCode)
	}
	env := decodeEnvelope(t, resp)
	data := env["data"].(map[string]any)
	if data["accepted"].(float64) != 2 || data["store_size"].(float64) != 2 {
		t.Fatalf("ingest data = %v", data)
	}
	if data["batch_id"].(string) == "" {
		t.Fatal("batch_id missing")
	}

	resp, err := http.Get(ts.URL + "/count")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	env = decodeEnvelope(t, resp)
	if env["data"].(map[string]any)["count"].(float64) != 2 {
		t.Fatalf("count data = %v", env["data"])
	}
}

func TestIngestEmptyBatchIsNoop(t *testing.T) {
	ts := newTestServer(t)

	postJSON(t, ts.URL+"/ingest", `{"reviews":[{"review_key":"r-1","review_body":"x"}]}`).Body.Close()

	// an empty batch is not an error, it reports the current store size
	for _, body := range []string{`{"reviews":[]}`, `{}`} {
		resp := postJSON(t, ts.URL+"/ingest", body)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status for %s = %d want 200", body, resp.StatusCode)
		}
		env := decodeEnvelope(t, resp)
		data := env["data"].(map[string]any)
		if data["accepted"].(float64) != 0 || data["store_size"].(float64) != 1 {
			t.Fatalf("empty batch data = %v", data)
		}
	}
}

func TestPeekValidatesN(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/peek?n=banana")
	if err != nil {
		t.Fatalf("peek: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d want 400", resp.StatusCode)
	}
	env := decodeEnvelope(t, resp)
	if !strings.Contains(env["error"].(string), "banana") {
		t.Fatalf("error should echo the bad value: %v", env["error"])
	}
}

func TestPeekReturnsOldestFirst(t *testing.T) {
	ts := newTestServer(t)

	postJSON(t, ts.URL+"/ingest", `{"reviews":[
		{"review_key":"r-1","review_body":"one"},
		{"review_key":"r-2","review_body":"two"},
		{"review_key":"r-3","review_body":"three"}
	]}`).Body.Close()

	resp, err := http.Get(ts.URL + "/peek?n=2")
	if err != nil {
		t.Fatalf("peek: %v", err)
	}
	env := decodeEnvelope(t, resp)
	reviews := env["data"].(map[string]any)["reviews"].([]any)
	if len(reviews) != 2 {
		t.Fatalf("peek = %d", len(reviews))
	}
	if reviews[0].(map[string]any)["review_key"] != "r-1" {
		t.Fatalf("order: %v", reviews[0])
	}
}

func TestResetClearsStore(t *testing.T) {
	ts := newTestServer(t)

	postJSON(t, ts.URL+"/ingest", `{"reviews":[{"review_key":"r-1","review_body":"x"}]}`).Body.Close()

	resp := postJSON(t, ts.URL+"/reset", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("reset status = %d", resp.StatusCode)
	}
	env := decodeEnvelope(t, resp)
	if env["data"].(map[string]any)["cleared"] != true {
		t.Fatalf("reset data = %v", env["data"])
	}

	resp, err := http.Get(ts.URL + "/count")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	env = decodeEnvelope(t, resp)
	if env["data"].(map[string]any)["count"].(float64) != 0 {
		t.Fatalf("count after reset = %v", env["data"])
	}
}

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	phttp "arc/internal/platform/net/http"
	ssvc "arc/internal/services/score/service"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	svc := ssvc.New(ssvc.Options{})

	mux := chi.NewRouter()
	Register(phttp.AdaptChi(mux), svc)

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func TestScoreEndpoint(t *testing.T) {
	ts := newTestServer(t)

	body := `{"reviews":[
		{"review_key":"r-1","review_body":"solid product, does what it says","verified_purchase":true,"author_name":"John Smith"},
		{"review_key":"r-2","review_body":"bad","author_name":"user938475"}
	]}`
	resp, err := http.Post(ts.URL+"/", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var env struct {
		Data struct {
			Results []struct {
				Key     string `json:"review_key"`
				Total   int    `json:"total"`
				Label   string `json:"label"`
				History string `json:"history"`
			} `json:"results"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	results := env.Data.Results
	if len(results) != 2 {
		t.Fatalf("results = %d", len(results))
	}
	if results[0].Key != "r-1" || results[1].Key != "r-2" {
		t.Fatalf("order: %+v", results)
	}
	if results[0].Total <= results[1].Total {
		t.Fatalf("verified detailed review should outscore the short suspicious one: %d vs %d",
			results[0].Total, results[1].Total)
	}
	if results[1].History != "suspicious" {
		t.Fatalf("history = %q", results[1].History)
	}
}

func TestScoreEmptyBatchReturnsEmptyResults(t *testing.T) {
	ts := newTestServer(t)

	// an empty or missing batch is not an error, it yields an empty result set
	for _, body := range []string{`{"reviews":[]}`, `{}`} {
		resp, err := http.Post(ts.URL+"/", "application/json", strings.NewReader(body))
		if err != nil {
			t.Fatalf("post: %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status for %s = %d want 200", body, resp.StatusCode)
		}

		var env struct {
			Data struct {
				Results []any `json:"results"`
			} `json:"data"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
			t.Fatalf("decode: %v", err)
		}
		resp.Body.Close()
		if len(env.Data.Results) != 0 {
			t.Fatalf("results for %s = %v", body, env.Data.Results)
		}
	}
}

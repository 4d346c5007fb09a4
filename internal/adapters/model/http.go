package model

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"arc/internal/platform/config"
	"arc/internal/platform/logger"
)

// HTTPClient talks to a sidecar inference server over JSON
// the wire contract is POST {"texts":[...]} -> {"probs":[...]}
type HTTPClient struct {
	url     string
	timeout time.Duration
	client  *http.Client
}

// Options configures the HTTP model adapter
type Options struct {
	URL     string
	Timeout time.Duration
	Client  *http.Client
}

// NewHTTPClient builds an adapter against a sidecar inference URL
func NewHTTPClient(opt Options) *HTTPClient {
	if opt.Timeout <= 0 {
		opt.Timeout = 2 * time.Second
	}
	c := opt.Client
	if c == nil {
		c = &http.Client{}
	}
	return &HTTPClient{url: opt.URL, timeout: opt.Timeout, client: c}
}

// FromConf builds a Port from env configuration
// returns a Static neutral adapter when no model URL is configured
func FromConf(cfg config.Conf) Port {
	url := cfg.MayString("MODEL_URL", "")
	if url == "" {
		return NewStatic(cfg.MayFloat64("MODEL_DEFAULT_PROB", NeutralProb))
	}
	return NewHTTPClient(Options{
		URL:     url,
		Timeout: cfg.MayDuration("MODEL_TIMEOUT", 2*time.Second),
	})
}

type probRequest struct {
	Texts []string `json:"texts"`
}

type probResponse struct {
	Probs []float64 `json:"probs"`
}

// Probabilities posts the batch and returns one probability per text.
// Transport errors, bad status, decode failures, out-of-range values,
// and length mismatches all degrade to the neutral vector
func (h *HTTPClient) Probabilities(ctx context.Context, texts []string) []float64 {
	if len(texts) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	body, err := json.Marshal(probRequest{Texts: texts})
	if err != nil {
		return h.failOpen(ctx, len(texts), err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.url, bytes.NewReader(body))
	if err != nil {
		return h.failOpen(ctx, len(texts), err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return h.failOpen(ctx, len(texts), err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		logger.C(ctx).Warn().Int("status", resp.StatusCode).Msg("model sidecar returned non-200, neutral fallback")
		return neutral(len(texts))
	}

	var out probResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return h.failOpen(ctx, len(texts), err)
	}
	if len(out.Probs) != len(texts) {
		logger.C(ctx).Warn().
			Int("want", len(texts)).
			Int("got", len(out.Probs)).
			Msg("model sidecar returned partial batch, neutral fallback")
		return neutral(len(texts))
	}
	for _, p := range out.Probs {
		if p < 0 || p > 1 {
			logger.C(ctx).Warn().Float64("prob", p).Msg("model probability out of range, neutral fallback")
			return neutral(len(texts))
		}
	}
	return out.Probs
}

func (h *HTTPClient) failOpen(ctx context.Context, n int, err error) []float64 {
	logger.C(ctx).Warn().Err(err).Msg("model sidecar unavailable, neutral fallback")
	return neutral(n)
}

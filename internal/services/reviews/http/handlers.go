// Package http provides http transport for reviews
package http

import (
	stdhttp "net/http"
	"strconv"

	"arc/internal/modkit/httpkit"
	perr "arc/internal/platform/errors"
	"arc/internal/services/reviews/domain"
)

// Service is the surface the handlers need
type Service interface {
	domain.IngesterPort
	domain.InspectorPort
}

// Register mounts the router
func Register(r httpkit.Router, s Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.IngestInput](r, "/ingest", h.ingest)
	httpkit.Post(r, "/reset", h.reset)
	httpkit.Get(r, "/peek", h.peek)
	httpkit.Get(r, "/count", h.count)
}

type handlers struct{ svc Service }

func (h *handlers) ingest(r *stdhttp.Request, in domain.IngestInput) (any, error) {
	return h.svc.Ingest(r.Context(), in.Reviews)
}

func (h *handlers) reset(r *stdhttp.Request) (any, error) {
	return h.svc.Reset(r.Context())
}

func (h *handlers) peek(r *stdhttp.Request) (any, error) {
	n := -1 // all
	if q := r.URL.Query().Get("n"); q != "" {
		v, err := strconv.Atoi(q)
		if err != nil || v < 0 {
			return nil, perr.InvalidArgf("n must be a non-negative integer, got %q", q)
		}
		n = v
	}
	return h.svc.Peek(r.Context(), n)
}

func (h *handlers) count(r *stdhttp.Request) (any, error) {
	return h.svc.Count(r.Context())
}

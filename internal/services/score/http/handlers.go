// Package http provides http transport for scoring
package http

import (
	stdhttp "net/http"

	"arc/internal/modkit/httpkit"
	"arc/internal/services/score/domain"
)

// Service is the surface the handlers need
type Service interface {
	domain.ScorerPort
}

// Register mounts the router
func Register(r httpkit.Router, s Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.ScoreInput](r, "/", h.score)
}

type handlers struct{ svc Service }

func (h *handlers) score(r *stdhttp.Request, in domain.ScoreInput) (any, error) {
	return h.svc.ScoreBatch(r.Context(), in.Reviews)
}

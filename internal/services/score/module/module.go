// Package module wires the score service into the API using modkit
package module

import (
	"net/http"

	modkit "arc/internal/modkit"
	"arc/internal/modkit/httpkit"

	"arc/internal/adapters/model"
	"arc/internal/services/score/domain"
	shttp "arc/internal/services/score/http"
	"arc/internal/services/score/repo"
	ssvc "arc/internal/services/score/service"
)

// Module implements the score API module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc *ssvc.Service
}

// Ports exposes the service surfaces other modules may depend on
type Ports struct {
	Scorer domain.ScorerPort
}

// New constructs the score module.
// The model adapter is injected at bootstrap so both the API and the
// replay tool share one construction path
func New(deps modkit.Deps, mdl model.Port, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("score"),
		modkit.WithPrefix("/score"),
	}, opts...)...)

	svcOpts := ssvc.Options{Model: mdl}
	if deps.CH != nil {
		svcOpts.Sink = repo.NewCH(deps.CH)
	}
	svc := ssvc.New(svcOpts)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		shttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// Service returns the underlying service for cross-module wiring
func (m *Module) Service() *ssvc.Service { return m.svc }

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Ports returns the module port set
func (m *Module) Ports() any {
	return Ports{Scorer: m.svc}
}

// Name returns the module name
func (m *Module) Name() string { return m.name }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return m.prefix }

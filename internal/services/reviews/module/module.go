// Package module wires the reviews service into the API using modkit
package module

import (
	"net/http"

	modkit "arc/internal/modkit"
	"arc/internal/modkit/httpkit"

	rhttp "arc/internal/services/reviews/http"
	"arc/internal/services/reviews/domain"
	"arc/internal/services/reviews/repo"
	rsvc "arc/internal/services/reviews/service"
)

// Module implements the reviews API module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc *rsvc.Service
}

// Ports exposes the service surfaces other modules may depend on
type Ports struct {
	Ingester  domain.IngesterPort
	Inspector domain.InspectorPort
}

// New constructs the reviews module
// the journal is injected via WithPorts at bootstrap since it owns a file handle
func New(deps modkit.Deps, journal domain.JournalPort, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("reviews"),
		modkit.WithPrefix("/reviews"),
	}, opts...)...)

	svcOpts := rsvc.Options{
		Capacity: deps.Cfg.MayInt("REVIEWS_BUFFER_CAP", domain.DefaultCapacity),
		Journal:  journal,
	}
	if deps.PG != nil {
		svcOpts.PG = deps.PG
		svcOpts.Binder = repo.NewPG()
	}
	svc := rsvc.New(svcOpts)

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
		rhttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// Service returns the underlying service for cross-module wiring
func (m *Module) Service() *rsvc.Service { return m.svc }

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
	return Ports{Ingester: m.svc, Inspector: m.svc}
}

// Name returns the module name
func (m *Module) Name() string { return m.name }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return m.prefix }

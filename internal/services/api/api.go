// Package api provides the HTTP API for the application
package api

import (
	"arc/internal/platform/config"
	"arc/internal/platform/logger"
	phttp "arc/internal/platform/net/http"
	"arc/internal/platform/store"

	"arc/internal/platform/net/middleware"

	modkit "arc/internal/modkit"
	"arc/internal/modkit/httpkit"
	"arc/internal/modkit/module"
	"arc/internal/modkit/swaggerkit"

	"arc/internal/adapters/model"
	reviewsdomain "arc/internal/services/reviews/domain"
	reviewsmod "arc/internal/services/reviews/module"
	scoremod "arc/internal/services/score/module"
)

// Options are the API options
type Options struct {
	Config        config.Conf
	Store         *store.Store
	Logger        *logger.Logger
	Journal       reviewsdomain.JournalPort
	Model         model.Port
	EnableSwagger bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
	}
	if opt.Store != nil {
		deps.PG = opt.Store.PG
		deps.CH = opt.Store.CH
	}

	mdl := opt.Model
	if mdl == nil {
		mdl = model.FromConf(opt.Config)
	}

	mods := []module.Module{
		reviewsmod.New(deps, opt.Journal),
		scoremod.New(deps, mdl),
	}

	// root-level health check, outside the versioned prefix
	r.Use(middleware.Heartbeat("/health"))

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		swaggerkit.Mount(r, opt.EnableSwagger)

		for _, m := range mods {
			// register each module's ports under its own name for cross-module lookups
			module.Register(m.Name(), m.Ports())

			m.MountRoutes(api)
		}
	})
}

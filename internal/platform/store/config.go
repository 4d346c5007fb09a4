package store

import (
	"arc/internal/platform/config"
)

// Config aggregates per backend configuration
type Config struct {
	AppName string

	PG PGConfig
	CH CHConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int
}

// CHConfig configures clickhouse connectivity
type CHConfig struct {
	Enabled bool
	URL     string
	Role    string
}

// FromConf reads backend configuration under the given env prefix
// disabled backends only need their Enabled flag left false
func FromConf(cfg config.Conf) Config {
	return Config{
		AppName: cfg.MayString("APP_NAME", "arc"),
		PG: PGConfig{
			Enabled:     cfg.MayBool("PGSQL_ENABLED", false),
			URL:         cfg.MayString("PGSQL_URL", ""),
			MaxConns:    int32(cfg.MayInt("PGSQL_MAX_CONNS", 4)),
			LogSQL:      cfg.MayBool("PGSQL_LOG_SQL", false),
			SlowQueryMs: cfg.MayInt("PGSQL_SLOW_MS", 250),
		},
		CH: CHConfig{
			Enabled: cfg.MayBool("CLICKHOUSE_ENABLED", false),
			URL:     cfg.MayString("CLICKHOUSE_URL", ""),
			Role:    cfg.MayString("CLICKHOUSE_ROLE", "api"),
		},
	}
}

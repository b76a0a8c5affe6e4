package advisor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/udisondev/buildcraft/internal/config"
	"github.com/udisondev/buildcraft/internal/data"
	"github.com/udisondev/buildcraft/internal/db"
	"github.com/udisondev/buildcraft/internal/metrics"
	"github.com/udisondev/buildcraft/internal/refdata"
)

// Open wires a Service from config: reference data (Postgres or YAML file, optionally
// behind redis), the catalog (overrides, optional DB refinement) and role profiles.
// The returned close func releases connections.
func Open(ctx context.Context, cfg config.Advisor, reg prometheus.Registerer) (*Service, func(), error) {
	var closers []func()
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	var (
		src       refdata.Source
		itemStats data.ItemStatSource
	)

	switch {
	case cfg.Database.Enabled:
		database, err := db.New(ctx, cfg.Database.DSN())
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, database.Close)
		src = database.References()
		if cfg.RefineFromDB {
			itemStats = database.ItemStats()
		}
		slog.Info("reference data from database", "host", cfg.Database.Host, "dbname", cfg.Database.DBName)
	case cfg.ReferenceFile != "":
		mem, err := refdata.LoadFile(cfg.ReferenceFile)
		if err != nil {
			return nil, nil, err
		}
		src = mem
	default:
		slog.Warn("no reference data configured, decoded builds will carry raw ids only")
	}

	if src != nil && cfg.Redis.Address != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		closers = append(closers, func() { _ = rdb.Close() })
		if err := rdb.Ping(ctx).Err(); err != nil {
			slog.Warn("redis unavailable, cache bypassed on every call", "address", cfg.Redis.Address, "err", err)
		}
		src = refdata.NewCached(src, rdb, cfg.Redis.Prefix, cfg.Redis.TTL)
	}

	cat, err := data.LoadCatalog(ctx, data.LoadOptions{
		OverrideFile: cfg.CatalogFile,
		ItemStats:    itemStats,
	})
	if err != nil {
		closeAll()
		return nil, nil, fmt.Errorf("loading catalog: %w", err)
	}

	profiles, err := ProfilesFromConfig(cfg.Roles)
	if err != nil {
		closeAll()
		return nil, nil, err
	}

	var m *metrics.Metrics
	if reg != nil {
		m = metrics.New(reg)
	}

	svc := New(Options{
		Catalog:      cat,
		Source:       src,
		Profiles:     profiles,
		FetchTimeout: cfg.FetchTimeout,
		Workers:      cfg.SearchWorkers,
		Metrics:      m,
	})
	return svc, closeAll, nil
}

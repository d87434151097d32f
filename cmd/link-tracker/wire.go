package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"link-tracker/internal/conf"
	"link-tracker/internal/database"
	deliveryhttp "link-tracker/internal/delivery/http"
	"link-tracker/internal/domain"
	"link-tracker/internal/enrichment"
	"link-tracker/internal/eventbus"
	"link-tracker/internal/repository/memory"
	"link-tracker/internal/repository/postgres"
	"link-tracker/internal/repository/redis"
	"link-tracker/internal/repository/sqlite"
	"link-tracker/internal/server"
	"link-tracker/internal/usecase"

	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/log"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// stores groups the persistence ports chosen by configuration.
type stores struct {
	links    domain.LinkStore
	clicks   domain.ClickStore
	visitors domain.VisitorLedger
	ready    func(ctx context.Context) error
}

// wireApp builds the application graph. The returned cleanup releases every
// resource opened along the way.
func wireApp(bc *conf.Bootstrap, zl *zap.Logger, logger log.Logger) (*kratos.App, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}
	fail := func(err error) (*kratos.App, func(), error) {
		cleanup()
		return nil, nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	closers = append(closers, cancel)

	st, closeStorage, err := newStores(ctx, bc.Storage, zl)
	if err != nil {
		return fail(err)
	}
	closers = append(closers, closeStorage)

	if bc.Redis.Addr != "" {
		rdb := goredis.NewClient(&goredis.Options{
			Addr:     bc.Redis.Addr,
			Password: bc.Redis.Password,
			DB:       bc.Redis.DB,
		})
		closers = append(closers, func() { _ = rdb.Close() })
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fail(fmt.Errorf("failed to ping redis: %w", err))
		}
		cache := redis.NewLinkCache(rdb, bc.Redis.CacheTTL.Duration, zl)
		st.links = redis.NewCachedLinkStore(st.links, cache)
		if bc.Redis.VisitorLedger {
			st.visitors = redis.NewVisitorLedger(rdb)
		}
		zl.Info("redis enabled", zap.String("addr", bc.Redis.Addr), zap.Bool("visitor_ledger", bc.Redis.VisitorLedger))
	}

	classifier := enrichment.NewClassifier(nil)
	if path := bc.GeoIP.DatabasePath; path != "" {
		geoIP, err := enrichment.NewGeoIPResolver(path)
		if err != nil {
			zl.Warn("GeoIP database not available, country resolution disabled",
				zap.Error(err),
				zap.String("path", path),
			)
		} else {
			zl.Info("GeoIP database loaded successfully", zap.String("path", path))
			closers = append(closers, func() { _ = geoIP.Close() })
			classifier = enrichment.NewClassifier(geoIP)
		}
	}

	allocator := usecase.NewAllocator(st.links, zl,
		usecase.WithCodeLength(bc.Allocator.CodeLength),
		usecase.WithMaxAttempts(bc.Allocator.MaxAttempts),
	)
	links := usecase.NewLinkService(st.links, st.visitors, allocator, zl)
	recorder := usecase.NewRecorder(st.links, st.clicks, st.visitors, classifier, zl)
	aggregator := usecase.NewAggregator(st.links, st.clicks, zl)

	wl := eventbus.NewZapLoggerAdapter(zl)
	queue := eventbus.NewClickQueue(bc.Queue.Buffer, wl)
	router, err := eventbus.NewRouter(queue, wl)
	if err != nil {
		_ = queue.Close()
		return fail(err)
	}
	router.AddHandler(recorder)

	prefix := deliveryhttp.DefaultLinkPrefix
	if bc.Server.LinkPrefix != nil {
		prefix = *bc.Server.LinkPrefix
	}
	handler := deliveryhttp.NewHandler(links, aggregator, queue, deliveryhttp.Config{
		BaseURL:    bc.Server.BaseURL,
		LinkPrefix: prefix,
		Ready:      st.ready,
	}, zl)
	limiter := deliveryhttp.NewRateLimiter(ctx, bc.Server.RateLimit)

	hs := server.NewHTTPServer(bc.Server, deliveryhttp.NewRouter(handler, zl, limiter))
	consumer := server.NewClickConsumer(queue, router)

	app := kratos.New(
		kratos.ID(id),
		kratos.Name(Name),
		kratos.Version(Version),
		kratos.Metadata(map[string]string{}),
		kratos.Logger(logger),
		kratos.StopTimeout(bc.Server.StopWait.Duration),
		kratos.Server(
			server.StartAfter(hs, consumer.Ready()),
			consumer,
		),
	)
	return app, cleanup, nil
}

func newStores(ctx context.Context, c conf.Storage, zl *zap.Logger) (*stores, func(), error) {
	switch c.Driver {
	case conf.DriverMemory:
		store := memory.NewStore()
		zl.Info("using in-memory storage")
		st := &stores{links: store, visitors: store}
		if c.ClickStoreEnabled() {
			st.clicks = store
		}
		return st, func() {}, nil

	case conf.DriverPostgres:
		pool, err := database.OpenPostgres(ctx, c.DSN, c.MaxConns)
		if err != nil {
			return nil, nil, err
		}
		if err := database.MigratePostgres(pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		zl.Info("postgres storage initialized")
		st := &stores{
			links:    postgres.NewLinkStore(pool),
			visitors: postgres.NewVisitorLedger(pool),
			ready:    pool.Ping,
		}
		if c.ClickStoreEnabled() {
			st.clicks = postgres.NewClickStore(pool)
		}
		return st, pool.Close, nil

	default:
		db, err := openSQLite(c.DSN)
		if err != nil {
			return nil, nil, err
		}
		zl.Info("sqlite storage initialized", zap.String("path", c.DSN))
		st := &stores{
			links:    sqlite.NewLinkStore(db),
			visitors: sqlite.NewVisitorLedger(db),
			ready:    db.PingContext,
		}
		if c.ClickStoreEnabled() {
			st.clicks = sqlite.NewClickStore(db)
		}
		return st, func() { _ = db.Close() }, nil
	}
}

func openSQLite(path string) (*sql.DB, error) {
	if !strings.HasPrefix(path, ":memory:") && !strings.HasPrefix(path, "file:") {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}
	db, err := database.OpenSQLite(path)
	if err != nil {
		return nil, err
	}
	if err := database.MigrateSQLite(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

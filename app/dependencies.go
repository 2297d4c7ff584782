// Package app is the composition root: the one place where concrete
// providers are constructed, registered and bound to consumers. Nothing
// below this package ever chooses a provider.
package app

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/upb/solid-lab/config"
	"github.com/upb/solid-lab/contracts"
	"github.com/upb/solid-lab/observability"
	"github.com/upb/solid-lab/providers/arithmetic"
	"github.com/upb/solid-lab/providers/listsource"
	"github.com/upb/solid-lab/registry"
	"github.com/upb/solid-lab/repositories/postgres"
	"github.com/upb/solid-lab/services/calculator"
	"github.com/upb/solid-lab/services/listing"
	"go.uber.org/zap"
)

// Dependencies holds all application dependencies. This is the central
// wiring point for dependency injection: consumers receive exactly one
// provider each, chosen by name from the configured bindings. Swapping
// a provider means changing a binding here (via config), never touching
// consumer code.
type Dependencies struct {
	// Infrastructure
	Config          *config.Config
	Logger          *zap.Logger
	Metrics         *observability.Metrics
	MetricsRegistry *prometheus.Registry
	DB              *postgres.DB
	Redis           *redis.Client

	// Provider registries, one per contract
	ArithmeticProviders *registry.Registry[contracts.Arithmetic]
	ListProviders       *registry.Registry[contracts.ListSource]

	// Bound consumers
	Calculator *calculator.Service
	lists      map[string]*listing.Service
}

// NewDependencies creates and wires up all application dependencies.
func NewDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
		lists:  make(map[string]*listing.Service),
	}

	deps.initMetrics(cfg)

	if err := deps.initInfrastructure(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to initialize infrastructure: %w", err)
	}

	if err := deps.initProviders(cfg); err != nil {
		return nil, fmt.Errorf("failed to initialize providers: %w", err)
	}

	if err := deps.initConsumers(cfg); err != nil {
		return nil, fmt.Errorf("failed to bind consumers: %w", err)
	}

	logger.Info("all dependencies initialized",
		zap.Strings("arithmetic_providers", deps.ArithmeticProviders.Names()),
		zap.Strings("list_providers", deps.ListProviders.Names()))

	return deps, nil
}

// initMetrics sets up the prometheus registry and operation metrics.
// When metrics are disabled the nil *Metrics records nothing.
func (d *Dependencies) initMetrics(cfg *config.Config) {
	if !cfg.Observability.MetricsEnabled {
		return
	}

	d.MetricsRegistry = prometheus.NewRegistry()
	d.Metrics = observability.NewMetrics(d.MetricsRegistry)
}

// initInfrastructure connects the optional backing stores.
func (d *Dependencies) initInfrastructure(ctx context.Context, cfg *config.Config) error {
	if cfg.Postgres.Enabled {
		db, err := postgres.NewDB(cfg.Postgres, d.Logger)
		if err != nil {
			return fmt.Errorf("postgres: %w", err)
		}
		d.DB = db
	}

	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		if err := client.Ping(pingCtx).Err(); err != nil {
			return fmt.Errorf("redis: failed to ping %s: %w", cfg.Redis.Addr, err)
		}

		d.Redis = client
		d.Logger.Info("redis connection established", zap.String("addr", cfg.Redis.Addr))
	}

	return nil
}

// initProviders registers every available provider under its name.
// Registration makes a provider selectable; it does not bind it to
// anything.
func (d *Dependencies) initProviders(cfg *config.Config) error {
	d.ArithmeticProviders = registry.New[contracts.Arithmetic]("arithmetic")
	d.ListProviders = registry.New[contracts.ListSource]("listsource")

	if err := registerAll[contracts.Arithmetic](d.ArithmeticProviders,
		arithmetic.NewSensible(),
		arithmetic.NewInverted(),
	); err != nil {
		return err
	}

	if err := registerAll[contracts.ListSource](d.ListProviders,
		listsource.NewEmployees(),
		listsource.NewProducts(),
	); err != nil {
		return err
	}

	if d.DB != nil {
		source := listsource.NewPostgres("postgres", d.DB.DB, cfg.Postgres.Table, d.Logger)
		if err := d.ListProviders.Register(source.Name(), source); err != nil {
			return err
		}
	}

	if d.Redis != nil {
		source := listsource.NewRedis("redis", d.Redis, cfg.Redis.ListKey, d.Logger)
		if err := d.ListProviders.Register(source.Name(), source); err != nil {
			return err
		}
	}

	return nil
}

// initConsumers is the composition point: each consumer is constructed
// with the single provider its binding names, for the lifetime of the
// consumer.
func (d *Dependencies) initConsumers(cfg *config.Config) error {
	calcProvider, err := d.ArithmeticProviders.Get(cfg.Bindings.Calculator)
	if err != nil {
		return fmt.Errorf("bind calculator: %w", err)
	}
	d.Calculator = calculator.NewService(calcProvider, d.Metrics, d.Logger.Named("calculator"))

	listBindings := map[string]string{
		"directory": cfg.Bindings.Directory,
		"catalog":   cfg.Bindings.Catalog,
	}

	for name, providerName := range listBindings {
		provider, err := d.ListProviders.Get(providerName)
		if err != nil {
			return fmt.Errorf("bind list %q: %w", name, err)
		}
		d.lists[name] = listing.NewService(provider, d.Metrics, d.Logger.Named("listing").With(zap.String("list", name)))
	}

	d.Logger.Info("consumers bound",
		zap.String("calculator", cfg.Bindings.Calculator),
		zap.String("directory", cfg.Bindings.Directory),
		zap.String("catalog", cfg.Bindings.Catalog))

	return nil
}

// registerAll registers providers under their own names.
func registerAll[T interface{ Name() string }](r *registry.Registry[T], providers ...T) error {
	for _, p := range providers {
		if err := r.Register(p.Name(), p); err != nil {
			return err
		}
	}
	return nil
}

// ListConsumer returns the listing consumer bound under the given name.
func (d *Dependencies) ListConsumer(name string) (*listing.Service, bool) {
	svc, ok := d.lists[name]
	return svc, ok
}

// ListNames returns the names the listing consumers are exposed under,
// sorted.
func (d *Dependencies) ListNames() []string {
	names := make([]string, 0, len(d.lists))
	for name := range d.lists {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Bindings reports which provider each consumer is currently bound to.
func (d *Dependencies) Bindings() map[string]string {
	bindings := map[string]string{
		"calculator": d.Calculator.ProviderName(),
	}
	for name, svc := range d.lists {
		bindings[name] = svc.ProviderName()
	}
	return bindings
}

// Close gracefully shuts down all dependencies
func (d *Dependencies) Close(ctx context.Context) error {
	d.Logger.Info("shutting down dependencies")

	var errs []error

	if d.Redis != nil {
		if err := d.Redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close redis: %w", err))
		}
	}

	if d.DB != nil {
		if err := d.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if d.Logger != nil {
		_ = d.Logger.Sync()
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors during shutdown: %v", errs)
	}

	return nil
}

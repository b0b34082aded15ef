package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/ChristosMaragkos/ItemFactory/internal/ctxlog"
	"github.com/ChristosMaragkos/ItemFactory/internal/identifier"
	"github.com/ChristosMaragkos/ItemFactory/internal/item"
	"github.com/ChristosMaragkos/ItemFactory/internal/manifest"
	"github.com/ChristosMaragkos/ItemFactory/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	loader   *manifest.Loader
	config   *Config
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and registry,
// pre-populated with the compiled-in content packs.
func NewApp(outW io.Writer, appConfig *Config, packs ...registry.Pack) (*App, error) {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	policy, err := registry.ParsePolicy(appConfig.ConflictPolicy)
	if err != nil {
		return nil, err
	}

	reg := registry.New(registry.WithConflictPolicy(policy))
	logger.Debug("Registry created.", "conflict_policy", policy.String())

	if len(packs) == 0 {
		packs = corePacks
	}
	for _, pack := range packs {
		if err := pack.Register(reg); err != nil {
			return nil, fmt.Errorf("failed to register content pack: %w", err)
		}
	}
	logger.Debug("Compiled-in content packs registered.", "packs", len(packs), "items", reg.Len())

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		loader:   manifest.NewLoader(),
		config:   appConfig,
	}, nil
}

// Run loads the content manifests and prints the registration summary.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	loaded, err := a.loader.LoadInto(ctx, a.registry, a.config.ContentPath)
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	a.logger.Info("Registration phase complete.",
		"manifest_items", loaded, "total_items", a.registry.Len())

	a.printSummary()
	return nil
}

// printSummary writes the ordered listing of registered items.
func (a *App) printSummary() {
	items := a.registry.Items()
	fmt.Fprintf(a.outW, "Registered items (%d):\n", len(items))
	for _, it := range items {
		id := identifier.FromItem(it)
		if def, ok := it.(*item.Definition); ok {
			fmt.Fprintf(a.outW, "  %-32s stack=%d flammable=%t\n",
				id.String(), def.Settings().MaxStack, def.Settings().Flammable)
			continue
		}
		fmt.Fprintf(a.outW, "  %-32s (%T)\n", id.String(), it)
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

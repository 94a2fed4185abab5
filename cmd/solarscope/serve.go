package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/ougirez/solarscope/internal/api"
	"github.com/ougirez/solarscope/internal/notify"
	"github.com/ougirez/solarscope/internal/pkg/logger"
	"github.com/ougirez/solarscope/internal/pkg/sessions"
	"github.com/ougirez/solarscope/internal/pkg/store"
	"github.com/ougirez/solarscope/internal/pkg/task"
	"github.com/ougirez/solarscope/internal/scraper"
	"github.com/ougirez/solarscope/internal/service/enrichment"
	"github.com/ougirez/solarscope/internal/service/listing"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		kv, closeStore, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer closeStore()

		limits := sessions.Limits{Max: cfg.Session.MaxSessions, IdleTTL: cfg.Session.IdleTTL}
		hub := notify.NewHub(cfg.Notify.FeedLimit, limits)
		tasks := task.NewRunner()

		listingService := listing.NewListingService(
			kv,
			scraper.NewHTMLScraper(cfg.Scrape.SourceURL, cfg.Scrape.Retries),
			hub,
			tasks,
			listing.Options{
				ItemsPerPage:  cfg.Listing.ItemsPerPage,
				CatalogTotal:  cfg.Listing.CatalogTotal,
				FilteredTotal: cfg.Listing.FilteredTotal,
				Delays: listing.Delays{
					Search: cfg.Delays.ListingSearch,
					Scrape: cfg.Delays.Scrape,
					Enrich: cfg.Delays.Enrich,
				},
				Sessions: limits,
			},
		)
		enrichmentService := enrichment.NewEnrichmentService(hub, tasks, enrichment.Delays{
			Search:  cfg.Delays.EnrichmentSearch,
			Details: cfg.Delays.Enrich,
		}, limits)

		svc, err := api.NewAPIService(cfg.Server, listingService, enrichmentService, hub)
		if err != nil {
			return fmt.Errorf("api.NewAPIService: %w", err)
		}

		go svc.Serve(cfg.Server.Addr)
		logger.Infof(ctx, "listening on %s with %s store", cfg.Server.Addr, cfg.Store.Driver)

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := svc.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		logger.Infof(shutdownCtx, "server stopped")

		return nil
	},
}

// openStore opens the configured store and applies its schema.
func openStore(ctx context.Context) (store.KVStore, func(), error) {
	kv, closeStore, err := store.Open(ctx, cfg.Store)
	if err != nil {
		return nil, nil, fmt.Errorf("store.Open: %w", err)
	}

	if m, ok := kv.(store.Migrator); ok {
		if err := m.Migrate(ctx); err != nil {
			closeStore()
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
	}

	return kv, closeStore, nil
}

package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/MrSnakeDoc/bookhive/internal/domain"
	"github.com/MrSnakeDoc/bookhive/internal/logger"
	"github.com/MrSnakeDoc/bookhive/internal/sources/catalog"
)

// Importer applies a batch of catalog books to storage.
type Importer interface {
	Import(ctx context.Context, books []domain.Book) (int, error)
}

// CatalogReloader handles periodic re-import of the catalog seed file
type CatalogReloader struct {
	loader   *catalog.Loader
	mapper   *catalog.Mapper
	store    Importer
	logger   logger.Logger
	interval time.Duration
	stopCh   chan struct{}
}

// NewCatalogReloader creates a new catalog reloader
func NewCatalogReloader(
	catalogFile string,
	store Importer,
	log logger.Logger,
	interval time.Duration,
) *CatalogReloader {
	return &CatalogReloader{
		loader:   catalog.NewLoader(catalogFile),
		mapper:   catalog.NewMapper(),
		store:    store,
		logger:   log,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the periodic reload process
func (cr *CatalogReloader) Start(ctx context.Context) error {
	// Load immediately on start
	if err := cr.Reload(ctx); err != nil {
		return fmt.Errorf("initial catalog import failed: %w", err)
	}

	ticker := time.NewTicker(cr.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := cr.Reload(ctx); err != nil {
					cr.logger.Error("failed to reload catalog",
						logger.Error(err))
				}
			case <-cr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the reloader
func (cr *CatalogReloader) Stop() {
	close(cr.stopCh)
}

// Reload loads the catalog file and imports new entries. The import is
// idempotent, so re-reading an unchanged file is a no-op.
func (cr *CatalogReloader) Reload(ctx context.Context) error {
	cr.logger.Info("importing books catalog")

	file, err := cr.loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	books, err := cr.mapper.MapBooks(file)
	if err != nil {
		return fmt.Errorf("failed to map catalog: %w", err)
	}

	imported, err := cr.store.Import(ctx, books)
	if err != nil {
		return fmt.Errorf("failed to import catalog: %w", err)
	}

	cr.logger.Info("books catalog imported",
		logger.Int("total", len(books)),
		logger.Int("new", imported))
	return nil
}

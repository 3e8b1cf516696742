package processors

import (
	"context"
	"time"

	"awinfeed/internal/config"
	"awinfeed/internal/events"
	"awinfeed/internal/logger"
	"awinfeed/internal/services/awin"
	"awinfeed/internal/services/shopify"
	"awinfeed/internal/worker/processors/export"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

// Source yields one page of raw catalog records.
type Source interface {
	FetchProducts(ctx context.Context) ([]shopify.Record, error)
}

// Output file roles, used as keys in RunResult.Files.
const (
	FileRaw     = "raw"
	FileFull    = "full"
	FileMinimal = "minimal"
)

type RunResult struct {
	RunID    string
	Fetched  int
	Exported int
	Files    map[string]string
}

// Pipeline runs fetch → normalize → write for one store.
type Pipeline struct {
	config     *config.Config
	logger     *logger.Logger
	source     Source
	normalizer *awin.Normalizer
	exporter   *export.Exporter
	publisher  *events.Publisher
}

// NewPipeline wires a pipeline. publisher may be nil.
func NewPipeline(cfg *config.Config, logger *logger.Logger, source Source, categories *awin.CategoryMap, publisher *events.Publisher) *Pipeline {
	return &Pipeline{
		config: cfg,
		logger: logger,
		source: source,
		normalizer: awin.NewNormalizer(awin.Options{
			StorefrontURL: cfg.StorefrontURL,
			Currency:      cfg.Currency,
			Language:      cfg.Language,
			Categories:    categories,
			Logger:        logger,
		}),
		exporter:  export.New(logger),
		publisher: publisher,
	}
}

// Generate fetches the catalog and returns the normalized feed without writing files.
func (p *Pipeline) Generate(ctx context.Context) ([]awin.Record, error) {
	_, records, err := p.fetchAndNormalize(ctx)
	return records, err
}

func (p *Pipeline) fetchAndNormalize(ctx context.Context) ([]shopify.Record, []awin.Record, error) {
	products, err := p.source.FetchProducts(ctx)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to fetch products")
	}
	records, skipped := p.normalizer.NormalizeWithStats(products)
	p.logger.Info("Normalized %d of %d products (%d skipped)", len(records), len(products), skipped)
	return products, records, nil
}

// Run performs a full run: raw dump, full feed and minimal feed, then
// announces the result. Files are written one after another; a failure stops
// the run and later files are not written.
func (p *Pipeline) Run(ctx context.Context) (*RunResult, error) {
	result := &RunResult{
		RunID: uuid.New().String(),
		Files: map[string]string{},
	}
	log := p.logger.With("run_id", result.RunID)

	products, records, err := p.fetchAndNormalize(ctx)
	if err != nil {
		return nil, err
	}
	result.Fetched = len(products)
	result.Exported = len(records)

	if err := p.exporter.WriteRaw(p.config.RawOutput, products); err != nil {
		return nil, errors.Wrap(err, "failed to write raw catalog")
	}
	if len(products) > 0 {
		result.Files[FileRaw] = p.config.RawOutput
		log.Info("Shopify data saved: %s", p.config.RawOutput)
	}

	rows := Rows(records)
	if err := p.exporter.WriteTable(p.config.FeedOutput, rows, awin.FullColumns()); err != nil {
		return nil, errors.Wrap(err, "failed to write feed")
	}
	result.Files[FileFull] = p.config.FeedOutput
	log.Info("AWIN product feed generated: %s", p.config.FeedOutput)

	if err := p.exporter.WriteTable(p.config.MinimalFeedOutput, rows, awin.MinimalColumns()); err != nil {
		return nil, errors.Wrap(err, "failed to write minimal feed")
	}
	result.Files[FileMinimal] = p.config.MinimalFeedOutput
	log.Info("AWIN minimal feed generated: %s", p.config.MinimalFeedOutput)

	if err := p.publisher.PublishFeedGenerated(ctx, events.FeedGenerated{
		RunID:       result.RunID,
		Store:       p.config.ShopifyStore,
		Fetched:     result.Fetched,
		Exported:    result.Exported,
		Files:       result.Files,
		GeneratedAt: time.Now().UTC(),
	}); err != nil {
		// publish failures do not fail the run
		log.Error("Failed to publish feed event: %v", err)
	}

	return result, nil
}

// Rows adapts normalized records for the exporter.
func Rows(records []awin.Record) []export.Row {
	rows := make([]export.Row, len(records))
	for i := range records {
		rows[i] = &records[i]
	}
	return rows
}

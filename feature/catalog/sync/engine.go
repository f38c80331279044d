package sync

import (
	"context"
	"fmt"
	"time"

	"catalog-sync/core/logger"
	"catalog-sync/feature/catalog/models"
	"catalog-sync/feature/catalog/source"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Options control one sync pass.
type Options struct {
	// Source is the path of the spreadsheet or CSV file to ingest.
	Source string

	// PurgeMissing marks products absent from the source as inactive
	// after the pass completes.
	PurgeMissing bool
}

// Summary reports the outcome of one completed pass.
type Summary struct {
	// PassID is the unique id carried in the pass's log entries.
	PassID string

	// Rows is the number of source rows processed.
	Rows int

	// Products is the number of distinct product ids seen.
	Products int

	// TagsLinked is the total size of the reconciled tag sets.
	TagsLinked int

	// Purged is the number of products deactivated by the purge step.
	Purged int64

	// Duration is the wall time of the pass.
	Duration time.Duration
}

// Engine drives full reconciliation passes against the store. It derives
// inserts, updates, and removals from row content alone; it is never
// given a diff.
type Engine struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewEngine creates a sync engine.
func NewEngine(db *gorm.DB, l *zap.Logger) *Engine {
	return &Engine{db: db, logger: l}
}

// Run performs one full pass: load the source, ensure the schema, then for
// each row in source order resolve dimensions, upsert the product and its
// children, and reconcile tags; finally purge if requested. A failure on
// any row aborts the remaining rows; rows already written stand, and the
// idempotent upserts make a retry convergent. Purge only runs after row
// processing completed in full.
func (e *Engine) Run(ctx context.Context, opts Options) (*Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	passID := uuid.NewString()
	l := logger.WithPassID(e.logger, passID)
	start := time.Now()

	sheet, err := source.Load(opts.Source)
	if err != nil {
		return nil, err
	}
	l.Info("Loaded source",
		zap.String("source", opts.Source),
		zap.Int("rows", sheet.Len()))

	if err := models.EnsureSchema(e.db); err != nil {
		return nil, err
	}

	// Pass-scoped state. The resolver cache and the seen set are rebuilt
	// for every pass; nothing but the store survives between passes.
	resolver := NewResolver(e.db)
	upserter := NewUpserter(e.db)
	seen := make(map[int64]struct{}, sheet.Len())
	tagsLinked := 0

	for i, row := range sheet.Rows() {
		refs, err := e.resolveRow(resolver, row)
		if err != nil {
			return nil, rowError(i, err)
		}

		id, err := upserter.UpsertRow(row, refs)
		if err != nil {
			return nil, rowError(i, err)
		}
		seen[id] = struct{}{}

		raw, _ := row.Get(source.ColTags)
		n, err := ReconcileTags(e.db, id, raw)
		if err != nil {
			return nil, rowError(i, err)
		}
		tagsLinked += n
	}

	summary := &Summary{
		PassID:     passID,
		Rows:       sheet.Len(),
		Products:   len(seen),
		TagsLinked: tagsLinked,
	}

	if opts.PurgeMissing {
		purged, err := PurgeMissing(e.db, seen)
		if err != nil {
			return nil, err
		}
		summary.Purged = purged
	}

	summary.Duration = time.Since(start)
	l.Info("Pass complete",
		zap.Int("rows", summary.Rows),
		zap.Int("products", summary.Products),
		zap.Int("tags_linked", summary.TagsLinked),
		zap.Int64("purged", summary.Purged),
		zap.Duration("duration", summary.Duration))

	return summary, nil
}

// resolveRow resolves the row's three dimension names. Absent names yield
// nil references; the store decides whether that is acceptable (category
// and brand are required there, material is not).
func (e *Engine) resolveRow(resolver *Resolver, row source.Row) (DimensionRefs, error) {
	var refs DimensionRefs
	var err error

	category, _ := row.Get(source.ColCategory)
	if refs.CategoryID, err = resolver.Resolve(DimensionCategory, category); err != nil {
		return refs, err
	}

	brand, _ := row.Get(source.ColBrand)
	if refs.BrandID, err = resolver.Resolve(DimensionBrand, brand); err != nil {
		return refs, err
	}

	material, _ := row.Get(source.ColMaterial)
	if refs.MaterialID, err = resolver.Resolve(DimensionMaterial, material); err != nil {
		return refs, err
	}

	return refs, nil
}

// rowError annotates a row failure with its spreadsheet line number
// (1-based, after the header row).
func rowError(index int, err error) error {
	return fmt.Errorf("row %d: %w", index+2, err)
}

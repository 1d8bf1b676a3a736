// Package store holds the persistence capabilities the pipeline
// consumes. All of them are optional: the orchestrator degrades to
// in-memory results when a store is absent.
package store

import (
	"context"

	"github.com/Ben-ecom/Marketpulse-AI-sub007/internal/models"
)

// SourceResultStore serves raw scraped records per collection job.
type SourceResultStore interface {
	FetchResultsForJob(ctx context.Context, jobID string) ([]models.SourceResult, error)
}

// AnalysisResultStore persists pipeline output and links results back
// to their originating source records.
type AnalysisResultStore interface {
	Save(ctx context.Context, result models.AnalysisResult) (string, error)
	LinkResults(ctx context.Context, sourceResultID string, analysisResultIDs []string) error
}

// ProcessedCache remembers which source records were already analyzed
// so re-runs of a collection skip them.
type ProcessedCache interface {
	MarkProcessed(ctx context.Context, id string) error
	IsProcessed(ctx context.Context, id string) bool
}

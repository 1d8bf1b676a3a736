package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ben-ecom/Marketpulse-AI-sub007/internal/models"
)

func TestMemoryResultStoreSaveAssignsID(t *testing.T) {
	s := NewMemoryResultStore()

	id, err := s.Save(context.Background(), models.AnalysisResult{NormalizedText: "hello"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	saved, ok := s.Get(id)
	require.True(t, ok)
	assert.Equal(t, id, saved.ID)
	assert.Equal(t, "hello", saved.NormalizedText)
	assert.Equal(t, 1, s.Len())
}

func TestMemoryResultStoreKeepsProvidedID(t *testing.T) {
	s := NewMemoryResultStore()

	id, err := s.Save(context.Background(), models.AnalysisResult{ID: "fixed-id"})
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", id)
}

func TestMemoryResultStoreLinks(t *testing.T) {
	s := NewMemoryResultStore()
	ctx := context.Background()

	require.NoError(t, s.LinkResults(ctx, "src-1", []string{"a", "b"}))
	require.NoError(t, s.LinkResults(ctx, "src-1", []string{"c"}))

	assert.Equal(t, []string{"a", "b", "c"}, s.Links("src-1"))
	assert.Empty(t, s.Links("src-2"))
}

func TestMemorySourceStoreFetchByJob(t *testing.T) {
	s := NewMemorySourceStore()
	s.AddResults("job-1",
		models.SourceResult{ID: "r1", Platform: "reddit"},
		models.SourceResult{ID: "r2", Platform: "trustpilot"})
	s.AddResults("job-2", models.SourceResult{ID: "r3", Platform: "twitter"})

	got, err := s.FetchResultsForJob(context.Background(), "job-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "r1", got[0].ID)

	empty, err := s.FetchResultsForJob(context.Background(), "missing")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMemoryProcessedCache(t *testing.T) {
	c := NewMemoryProcessedCache()
	ctx := context.Background()

	assert.False(t, c.IsProcessed(ctx, "x"))
	require.NoError(t, c.MarkProcessed(ctx, "x"))
	assert.True(t, c.IsProcessed(ctx, "x"))
	assert.False(t, c.IsProcessed(ctx, "y"))
}

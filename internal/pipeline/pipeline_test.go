package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ben-ecom/Marketpulse-AI-sub007/internal/language"
	"github.com/Ben-ecom/Marketpulse-AI-sub007/internal/models"
	"github.com/Ben-ecom/Marketpulse-AI-sub007/internal/store"
)

func TestProcessOneFullFlow(t *testing.T) {
	p := New(Config{})

	item := models.AnalysisItem{
		Text:     "The delivery was great! Order again at shop@example.com or https://shop.example",
		SourceID: "src-1",
	}
	got, err := p.ProcessOne(context.Background(), item, Options{ExtractTopics: true})
	require.NoError(t, err)

	assert.NotEmpty(t, got.ID)
	assert.Equal(t, item, got.Item)
	assert.NotEmpty(t, got.NormalizedText)
	assert.Equal(t, "en", got.Language.Language)
	assert.NotEmpty(t, got.Entities)
	assert.Equal(t, models.SentimentPositive, got.Sentiment.Label)
	require.NotNil(t, got.Topics)
	assert.False(t, got.ProcessedAt.IsZero())
}

func TestProcessOneEmptyTextProducesPlaceholders(t *testing.T) {
	p := New(Config{})

	got, err := p.ProcessOne(context.Background(), models.AnalysisItem{Text: ""}, Options{})
	require.NoError(t, err)

	assert.Empty(t, got.NormalizedText)
	assert.Equal(t, models.LanguageUnknown, got.Language.Language)
	assert.Empty(t, got.Entities)
	assert.Equal(t, models.SentimentNeutral, got.Sentiment.Label)
	assert.Zero(t, got.Sentiment.Score)
	assert.NotEmpty(t, got.ID, "in-memory results still get synthesized identifiers")
}

func TestProcessOneUnsupportedTranslationFails(t *testing.T) {
	p := New(Config{})

	_, err := p.ProcessOne(context.Background(), models.AnalysisItem{
		Text: "the delivery arrived quickly and everything was fine",
	}, Options{TargetLanguage: "zz"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, language.ErrUnsupportedLanguage))
}

func TestProcessOnePersistsThroughStore(t *testing.T) {
	results := store.NewMemoryResultStore()
	p := New(Config{Results: results})

	got, err := p.ProcessOne(context.Background(), models.AnalysisItem{Text: "great product, fast shipping"}, Options{Persist: true})
	require.NoError(t, err)
	require.NotEmpty(t, got.ID)

	saved, ok := results.Get(got.ID)
	require.True(t, ok)
	assert.Equal(t, got.Sentiment.Label, saved.Sentiment.Label)
}

func TestProcessBatchCapturesPerItemFailure(t *testing.T) {
	p := New(Config{})

	items := []models.AnalysisItem{
		{Text: "ok"},
		{Text: "the service was good and the delivery arrived quickly"},
		{Text: "fine"},
	}
	// Only the middle item detects a language, so only it requests the
	// unsupported translation and fails; its neighbors stay intact.
	got := p.ProcessBatch(context.Background(), items, Options{TargetLanguage: "zz", Concurrency: 3})

	require.Len(t, got, 3)
	for i, r := range got {
		assert.Equal(t, i, r.Index)
		assert.Equal(t, items[i], r.Item)
	}
	assert.NoError(t, got[0].Err)
	require.Error(t, got[1].Err)
	assert.True(t, errors.Is(got[1].Err, language.ErrUnsupportedLanguage))
	assert.NoError(t, got[2].Err)
}

func TestProcessBatchOrderMatchesInput(t *testing.T) {
	p := New(Config{})

	items := make([]models.AnalysisItem, 30)
	for i := range items {
		items[i] = models.AnalysisItem{Text: "good service", SourceID: string(rune('a' + i))}
	}

	got := p.ProcessBatch(context.Background(), items, Options{Concurrency: 8})
	require.Len(t, got, len(items))
	for i, r := range got {
		require.NoError(t, r.Err)
		assert.Equal(t, items[i].SourceID, r.Value.Item.SourceID)
	}
}

func TestProcessSourceCollection(t *testing.T) {
	sources := store.NewMemorySourceStore()
	results := store.NewMemoryResultStore()
	cache := store.NewMemoryProcessedCache()

	sources.AddResults("job-1",
		models.SourceResult{
			ID:       "tp-1",
			Platform: "trustpilot",
			Payload: map[string]any{
				"reviews": []any{
					map[string]any{
						"body":           "Great service, very happy with the delivery.",
						"business_reply": "Thank you for the kind words!",
					},
				},
			},
		},
		models.SourceResult{
			ID:       "rd-1",
			Platform: "reddit",
			Payload: map[string]any{
				"title":    "Anyone tried this webshop?",
				"selftext": "Ordered last week, shipping was slow but support was helpful.",
			},
		},
	)

	p := New(Config{Sources: sources, Results: results, Cache: cache})

	summary, err := p.ProcessSourceCollection(context.Background(), "job-1", Options{})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Sources)
	assert.Equal(t, 4, summary.Fragments)
	assert.Equal(t, 4, summary.Succeeded)
	assert.Zero(t, summary.Failed)
	assert.Zero(t, summary.Skipped)
	require.Len(t, summary.Results, 4)

	assert.Len(t, results.Links("tp-1"), 2)
	assert.Len(t, results.Links("rd-1"), 2)

	// A re-run skips everything via the processed cache.
	again, err := p.ProcessSourceCollection(context.Background(), "job-1", Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, again.Skipped)
	assert.Zero(t, again.Fragments)
}

func TestProcessSourceCollectionUnknownPlatformSkipped(t *testing.T) {
	sources := store.NewMemorySourceStore()
	sources.AddResults("job-2", models.SourceResult{
		ID:       "x-1",
		Platform: "myspace",
		Payload:  map[string]any{"text": "hello"},
	})

	p := New(Config{Sources: sources})
	summary, err := p.ProcessSourceCollection(context.Background(), "job-2", Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Skipped)
	assert.Zero(t, summary.Fragments)
}

func TestProcessSourceCollectionWithoutStoresStillReturnsResults(t *testing.T) {
	sources := store.NewMemorySourceStore()
	sources.AddResults("job-3", models.SourceResult{
		ID:       "tw-1",
		Platform: "twitter",
		Payload:  map[string]any{"text": "love the new update, works great"},
	})

	p := New(Config{Sources: sources})
	summary, err := p.ProcessSourceCollection(context.Background(), "job-3", Options{})
	require.NoError(t, err)
	require.Len(t, summary.Results, 1)
	assert.NotEmpty(t, summary.Results[0].ID)
}

func TestFragmentsForPlatforms(t *testing.T) {
	amazon := fragmentsFor(models.PlatformAmazonReviews, map[string]any{
		"reviews": []any{
			map[string]any{"title": "Solid", "body": "Works as advertised."},
			map[string]any{"body": "Broke after a week."},
		},
	})
	assert.Equal(t, []string{"Solid", "Works as advertised.", "Broke after a week."}, amazon)

	instagram := fragmentsFor(models.PlatformInstagram, map[string]any{
		"caption":  "New arrivals!",
		"comments": []any{map[string]any{"text": "love it"}},
	})
	assert.Equal(t, []string{"New arrivals!", "love it"}, instagram)

	assert.Empty(t, fragmentsFor(models.PlatformTwitter, map[string]any{}))
}

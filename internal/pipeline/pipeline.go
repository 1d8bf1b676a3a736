package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Ben-ecom/Marketpulse-AI-sub007/internal/batch"
	"github.com/Ben-ecom/Marketpulse-AI-sub007/internal/entities"
	"github.com/Ben-ecom/Marketpulse-AI-sub007/internal/language"
	"github.com/Ben-ecom/Marketpulse-AI-sub007/internal/models"
	"github.com/Ben-ecom/Marketpulse-AI-sub007/internal/normalizer"
	"github.com/Ben-ecom/Marketpulse-AI-sub007/internal/sentiment"
	"github.com/Ben-ecom/Marketpulse-AI-sub007/internal/store"
	"github.com/Ben-ecom/Marketpulse-AI-sub007/internal/topics"
)

// Config carries the injected components. Nil analyzers are replaced
// with built-in defaults; nil stores disable the corresponding
// capability (the pipeline then returns in-memory results with
// synthesized identifiers).
type Config struct {
	Normalizer *normalizer.Normalizer
	Language   *language.Identifier
	Entities   *entities.Extractor
	Sentiment  *sentiment.Analyzer
	Topics     *topics.Extractor

	Sources store.SourceResultStore
	Results store.AnalysisResultStore
	Cache   store.ProcessedCache
}

// Options controls one processing run.
type Options struct {
	// TargetLanguage, when set, requests translation of texts whose
	// detected language differs. An unsupported target fails the item.
	TargetLanguage string
	// Domain forces the lexicon domain instead of inferring it.
	Domain string
	// ExtractTopics enables the optional topic stage.
	ExtractTopics bool
	// Persist saves each result through the analysis result store and
	// propagates persistence failures.
	Persist bool
	// Normalizer overrides the pipeline's normalization flags.
	Normalizer *normalizer.Options

	// Batch execution tuning for ProcessBatch and collections.
	BatchSize       int
	Concurrency     int
	RateLimit       *batch.RateLimit
	InterBatchPause time.Duration
}

// Summary reports a ProcessSourceCollection run.
type Summary struct {
	JobID     string
	Sources   int
	Fragments int
	Succeeded int
	Failed    int
	Skipped   int
	Results   []models.AnalysisResult
}

// Pipeline wires the analyzers into one per-item flow: normalize →
// resolve language → extract entities → score sentiment → optionally
// extract topics → persist. Stages degrade to empty placeholders on
// empty input but are never skipped on non-empty input.
type Pipeline struct {
	normalizer *normalizer.Normalizer
	language   *language.Identifier
	entities   *entities.Extractor
	sentiment  *sentiment.Analyzer
	topics     *topics.Extractor

	sources store.SourceResultStore
	results store.AnalysisResultStore
	cache   store.ProcessedCache
}

func New(cfg Config) *Pipeline {
	p := &Pipeline{
		normalizer: cfg.Normalizer,
		language:   cfg.Language,
		entities:   cfg.Entities,
		sentiment:  cfg.Sentiment,
		topics:     cfg.Topics,
		sources:    cfg.Sources,
		results:    cfg.Results,
		cache:      cfg.Cache,
	}
	if p.normalizer == nil {
		p.normalizer = normalizer.New()
	}
	if p.language == nil {
		p.language = language.NewIdentifier(nil)
	}
	if p.entities == nil {
		p.entities = entities.NewExtractor(nil)
	}
	if p.sentiment == nil {
		p.sentiment = sentiment.NewAnalyzer()
	}
	if p.topics == nil {
		p.topics = topics.NewExtractor()
	}
	return p
}

// defaultNormalizerOptions keeps links, addresses, symbols and letter
// case so the entity stage still sees its spans; callers that want the
// aggressive cleanup pass their own options.
func defaultNormalizerOptions() normalizer.Options {
	opts := normalizer.DefaultOptions()
	opts.RemoveLinks = false
	opts.RemoveAddresses = false
	opts.RemoveSpecialChars = false
	opts.Lowercase = false
	return opts
}

// ProcessOne runs the full per-item pipeline and returns an immutable
// AnalysisResult. Only translation to an unsupported language and
// required persistence can fail; analyzer stages fail open.
func (p *Pipeline) ProcessOne(ctx context.Context, item models.AnalysisItem, opts Options) (models.AnalysisResult, error) {
	normOpts := defaultNormalizerOptions()
	if opts.Normalizer != nil {
		normOpts = *opts.Normalizer
	}

	normalized := p.normalizer.Normalize(item.Text, normOpts)

	lang := models.LanguageUnknown
	if normalized != "" {
		lang = p.language.Detect(normalized)
	}

	processed := normalized
	langResult := models.LanguageResult{Language: lang}
	if opts.TargetLanguage != "" && lang != models.LanguageUnknown && lang != opts.TargetLanguage {
		translated, err := p.language.Translate(ctx, normalized, lang, opts.TargetLanguage)
		if err != nil {
			return models.AnalysisResult{}, fmt.Errorf("translation for item %q: %w", item.SourceID, err)
		}
		langResult.TranslatedText = translated
		processed = translated
	}

	sentimentLang := lang
	if langResult.TranslatedText != "" {
		sentimentLang = opts.TargetLanguage
	}
	if sentimentLang == models.LanguageUnknown {
		sentimentLang = ""
	}

	result := models.AnalysisResult{
		Item:           item,
		NormalizedText: normalized,
		Language:       langResult,
		Entities:       p.entities.Extract(ctx, processed),
		Sentiment: p.sentiment.Analyze(processed, sentiment.Options{
			Language: sentimentLang,
			Domain:   opts.Domain,
		}),
		ProcessedAt: time.Now().UTC(),
		OptionsUsed: optionsFingerprint(opts),
	}

	if opts.ExtractTopics {
		topicResult := p.topics.ExtractTopics(processed, topics.Options{
			Domain:   opts.Domain,
			Language: sentimentLang,
		})
		result.Topics = &topicResult
	}

	if opts.Persist && p.results != nil {
		id, err := p.results.Save(ctx, result)
		if err != nil {
			return models.AnalysisResult{}, fmt.Errorf("persisting analysis result: %w", err)
		}
		result.ID = id
		return result, nil
	}

	result.ID = uuid.NewString()
	if opts.Persist && p.results == nil {
		slog.Warn("[Pipeline] Persistence requested but no result store configured, returning in-memory result",
			slog.String("result_id", result.ID))
	}
	return result, nil
}

// ProcessBatch runs ProcessOne over many items through the batch
// engine. The output has one slot per input item in input order;
// failures are captured per slot.
func (p *Pipeline) ProcessBatch(ctx context.Context, items []models.AnalysisItem, opts Options) []batch.Result[models.AnalysisItem, models.AnalysisResult] {
	return batch.Run(ctx, items, func(ctx context.Context, item models.AnalysisItem) (models.AnalysisResult, error) {
		return p.ProcessOne(ctx, item, opts)
	}, batch.Options{
		BatchSize:       opts.BatchSize,
		Concurrency:     opts.Concurrency,
		RateLimit:       opts.RateLimit,
		InterBatchPause: opts.InterBatchPause,
		OnProgress: func(completed, total int) {
			slog.Info("[Pipeline] Batch progress",
				slog.Int("completed", completed),
				slog.Int("total", total))
		},
	})
}

// ProcessSourceCollection pulls raw records for a collection job,
// extracts text fragments per platform, analyzes them as one batch and
// links results back to their source records.
func (p *Pipeline) ProcessSourceCollection(ctx context.Context, jobID string, opts Options) (Summary, error) {
	if p.sources == nil {
		return Summary{}, fmt.Errorf("no source result store configured")
	}

	sourceResults, err := p.sources.FetchResultsForJob(ctx, jobID)
	if err != nil {
		return Summary{}, fmt.Errorf("fetching source results for job %q: %w", jobID, err)
	}

	summary := Summary{JobID: jobID, Sources: len(sourceResults)}
	var items []models.AnalysisItem
	for _, sr := range sourceResults {
		if p.cache != nil && p.cache.IsProcessed(ctx, sr.ID) {
			summary.Skipped++
			continue
		}

		platform, err := models.ParsePlatform(sr.Platform)
		if err != nil {
			slog.Warn("[Pipeline] Skipping source result with unknown platform",
				slog.String("source_id", sr.ID),
				slog.String("platform", sr.Platform))
			summary.Skipped++
			continue
		}

		for _, fragment := range fragmentsFor(platform, sr.Payload) {
			items = append(items, models.AnalysisItem{
				Text:       fragment,
				SourceType: platform.String(),
				SourceID:   sr.ID,
				RecordID:   jobID,
			})
		}
	}
	summary.Fragments = len(items)

	results := p.ProcessBatch(ctx, items, opts)

	linked := make(map[string][]string)
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
			slog.Warn("[Pipeline] Item failed",
				slog.String("source_id", r.Item.SourceID),
				slog.String("error", r.Err.Error()))
			continue
		}
		summary.Succeeded++
		summary.Results = append(summary.Results, r.Value)
		linked[r.Item.SourceID] = append(linked[r.Item.SourceID], r.Value.ID)
	}

	for sourceID, resultIDs := range linked {
		if p.results != nil {
			if err := p.results.LinkResults(ctx, sourceID, resultIDs); err != nil {
				if opts.Persist {
					return summary, fmt.Errorf("linking results for source %q: %w", sourceID, err)
				}
				slog.Warn("[Pipeline] Failed to link results",
					slog.String("source_id", sourceID),
					slog.String("error", err.Error()))
			}
		}
		if p.cache != nil {
			if err := p.cache.MarkProcessed(ctx, sourceID); err != nil {
				slog.Warn("[Pipeline] Failed to mark source processed",
					slog.String("source_id", sourceID),
					slog.String("error", err.Error()))
			}
		}
	}

	slog.Info("[Pipeline] Collection processed",
		slog.String("job_id", jobID),
		slog.Int("sources", summary.Sources),
		slog.Int("fragments", summary.Fragments),
		slog.Int("succeeded", summary.Succeeded),
		slog.Int("failed", summary.Failed),
		slog.Int("skipped", summary.Skipped))
	return summary, nil
}

func optionsFingerprint(opts Options) string {
	return fmt.Sprintf("target=%s domain=%s topics=%t persist=%t",
		opts.TargetLanguage, opts.Domain, opts.ExtractTopics, opts.Persist)
}

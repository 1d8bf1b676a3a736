package entities

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/Ben-ecom/Marketpulse-AI-sub007/internal/models"
)

// ExternalExtractor is the optional high-accuracy capability. Its
// absence or failure degrades to the built-in rule-based behavior.
type ExternalExtractor interface {
	Extract(ctx context.Context, text string) ([]models.Entity, error)
}

type Extractor struct {
	matchers []gazetteerMatcher
	external ExternalExtractor
}

func NewExtractor(external ExternalExtractor) *Extractor {
	return &Extractor{
		matchers: buildGazetteerMatchers(defaultGazetteers),
		external: external,
	}
}

// Extract finds structured spans in text: pattern rules first, then
// gazetteer lookups, then the external capability when configured.
// Duplicates per (lowercased text, type) keep the highest-confidence
// instance; results come back sorted by confidence descending.
func (e *Extractor) Extract(ctx context.Context, text string) []models.Entity {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var found []models.Entity

	for _, rule := range patternRules {
		if rule.submatch {
			for _, idx := range rule.pattern.FindAllStringSubmatchIndex(text, -1) {
				start, end := idx[2], idx[3]
				found = append(found, models.Entity{
					Text:        text[start:end],
					Type:        rule.entityType,
					StartOffset: start,
					EndOffset:   end,
					Confidence:  patternConfidence,
					Method:      models.EntityMethodPattern,
				})
			}
			continue
		}
		for _, idx := range rule.pattern.FindAllStringIndex(text, -1) {
			found = append(found, models.Entity{
				Text:        text[idx[0]:idx[1]],
				Type:        rule.entityType,
				StartOffset: idx[0],
				EndOffset:   idx[1],
				Confidence:  patternConfidence,
				Method:      models.EntityMethodPattern,
			})
		}
	}

	for _, m := range e.matchers {
		for _, idx := range m.pattern.FindAllStringIndex(text, -1) {
			found = append(found, models.Entity{
				Text:        text[idx[0]:idx[1]],
				Type:        m.entityType,
				StartOffset: idx[0],
				EndOffset:   idx[1],
				Confidence:  gazetteerConfidence,
				Method:      models.EntityMethodGazetteer,
			})
		}
	}

	if e.external != nil {
		external, err := e.external.Extract(ctx, text)
		if err != nil {
			slog.Warn("[EntityExtractor] External extractor failed, keeping rule-based entities",
				slog.String("error", err.Error()))
		} else {
			found = append(found, external...)
		}
	}

	deduped := dedupe(found)
	sort.SliceStable(deduped, func(i, j int) bool {
		if deduped[i].Confidence != deduped[j].Confidence {
			return deduped[i].Confidence > deduped[j].Confidence
		}
		return deduped[i].StartOffset < deduped[j].StartOffset
	})
	return deduped
}

// dedupe keeps, per (lowercased text, type) key, the instance with the
// highest confidence. First occurrence wins ties so offsets stay
// deterministic.
func dedupe(entities []models.Entity) []models.Entity {
	type key struct {
		text string
		typ  models.EntityType
	}

	best := make(map[key]int, len(entities))
	var out []models.Entity
	for _, ent := range entities {
		k := key{strings.ToLower(ent.Text), ent.Type}
		if i, ok := best[k]; ok {
			if ent.Confidence > out[i].Confidence {
				out[i] = ent
			}
			continue
		}
		best[k] = len(out)
		out = append(out, ent)
	}
	return out
}

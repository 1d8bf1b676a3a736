package sentiment

import (
	"strings"

	"github.com/Ben-ecom/Marketpulse-AI-sub007/internal/models"
)

// minAspectTokenLength is the candidate cutoff: any longer token that
// is not a negator or intensifier counts as an aspect. This rule has
// no part-of-speech awareness and will treat many non-aspect words as
// aspects; it is kept as-is because the lexicon carries no stronger
// signal, so callers should read aspect lists as recall-oriented.
const minAspectTokenLength = 3

// distanceDecay controls how fast a sentiment word's influence on an
// aspect falls off with token distance: weight = 1/(1+0.5*distance).
const distanceDecay = 0.5

// extractAspects computes a local sentiment score per candidate aspect
// from lexicon hits in the same sentence, weighted by inverse token
// distance. Candidates without any nearby sentiment hit are dropped.
func extractAspects(sentences []string, lex Lexicon, markers markerSet) []models.AspectSentiment {
	var aspects []models.AspectSentiment
	seen := make(map[string]struct{})

	for si, sentence := range sentences {
		tokens := tokenize(sentence)
		for pos, tok := range tokens {
			if len([]rune(tok)) <= minAspectTokenLength {
				continue
			}
			if _, ok := markers.negators[tok]; ok {
				continue
			}
			if _, ok := markers.intensifiers[tok]; ok {
				continue
			}
			if _, ok := seen[tok]; ok {
				continue
			}

			score, related := aspectScore(tokens, pos, lex)
			if len(related) == 0 {
				continue
			}

			seen[tok] = struct{}{}
			aspects = append(aspects, models.AspectSentiment{
				Term:          tok,
				Label:         labelFor(score),
				Intensity:     intensityFor(score),
				Score:         score,
				Position:      pos,
				SentenceIndex: si,
				RelatedTerms:  related,
			})
		}
	}
	return aspects
}

// aspectScore averages distance-weighted lexicon hits around the
// aspect token, skipping the aspect's own position.
func aspectScore(tokens []string, aspectPos int, lex Lexicon) (float64, []string) {
	var sum float64
	var related []string

	for i := 0; i < len(tokens); i++ {
		entry, width, ok := lookup(lex, tokens, i)
		if !ok {
			continue
		}
		if aspectPos >= i && aspectPos < i+width {
			i += width - 1
			continue
		}

		distance := i - aspectPos
		if distance < 0 {
			distance = -distance
		}
		weight := 1 / (1 + distanceDecay*float64(distance))
		sum += entry.Score * weight
		related = append(related, strings.Join(tokens[i:i+width], " "))
		i += width - 1
	}

	if len(related) == 0 {
		return 0, nil
	}
	return clamp(sum/float64(len(related)), -1, 1), related
}

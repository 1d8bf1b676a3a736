package topics

import (
	"sort"
	"strings"

	"github.com/Ben-ecom/Marketpulse-AI-sub007/internal/models"
	"github.com/Ben-ecom/Marketpulse-AI-sub007/internal/normalizer"
	"github.com/Ben-ecom/Marketpulse-AI-sub007/internal/sentiment"
)

const (
	maxTopics   = 5
	maxKeywords = 10
	maxNgrams   = 10
)

type Options struct {
	Domain   string
	Language string
}

// Extractor derives topic scores from fixed domain keyword tables plus
// frequency and n-gram statistics over the normalized text.
type Extractor struct {
	normalizer *normalizer.Normalizer
}

func NewExtractor() *Extractor {
	return &Extractor{normalizer: normalizer.New()}
}

func (e *Extractor) ExtractTopics(text string, opts Options) models.TopicResult {
	normOpts := normalizer.DefaultOptions()
	normOpts.RemoveStopwords = true
	if opts.Language != "" {
		normOpts.Language = opts.Language
	}

	normalized := e.normalizer.Normalize(text, normOpts)
	tokens := normalizer.Tokenize(normalized)
	if len(tokens) == 0 {
		return models.TopicResult{Domain: opts.Domain}
	}

	domain := opts.Domain
	if domain == "" {
		domain = sentiment.DetectDomain(tokens)
	}

	freq := make(map[string]int, len(tokens))
	for _, t := range tokens {
		freq[t]++
	}

	joined := " " + strings.Join(tokens, " ") + " "
	result := models.TopicResult{Domain: domain}

	for topic, keywords := range tablesForDomain(domain) {
		score, count := scoreTopic(keywords, freq, joined)
		if count == 0 {
			continue
		}
		result.Topics = append(result.Topics, models.TopicScore{
			Name:     topic,
			Score:    score,
			Keywords: keywords,
			Count:    count,
		})
	}
	sort.SliceStable(result.Topics, func(i, j int) bool {
		if result.Topics[i].Score != result.Topics[j].Score {
			return result.Topics[i].Score > result.Topics[j].Score
		}
		return result.Topics[i].Name < result.Topics[j].Name
	})
	if len(result.Topics) > maxTopics {
		result.Topics = result.Topics[:maxTopics]
	}

	result.Keywords = rankKeywords(freq)
	result.Ngrams = topNgrams(tokens)
	return result
}

// scoreTopic sums exact single-token frequency hits, doubled multi-word
// phrase containment, and half-weighted partial hits on constituent
// tokens of multi-word keywords.
func scoreTopic(keywords []string, freq map[string]int, joined string) (float64, int) {
	var score float64
	var count int

	for _, kw := range keywords {
		if !strings.Contains(kw, " ") {
			if n := freq[kw]; n > 0 {
				score += float64(n)
				count += n
			}
			continue
		}

		if n := strings.Count(joined, " "+kw+" "); n > 0 {
			score += 2 * float64(n)
			count += n
		}
		for _, part := range strings.Fields(kw) {
			if n := freq[part]; n > 0 {
				score += 0.5 * float64(n)
			}
		}
	}
	return score, count
}

// rankKeywords is a plain frequency ranking normalized by the top
// count, a stand-in for a corpus-relative weighting scheme.
func rankKeywords(freq map[string]int) []models.KeywordScore {
	type tf struct {
		term string
		n    int
	}
	terms := make([]tf, 0, len(freq))
	for term, n := range freq {
		if len(term) < 3 {
			continue
		}
		terms = append(terms, tf{term, n})
	}
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].n != terms[j].n {
			return terms[i].n > terms[j].n
		}
		return terms[i].term < terms[j].term
	})
	if len(terms) > maxKeywords {
		terms = terms[:maxKeywords]
	}
	if len(terms) == 0 {
		return nil
	}

	top := float64(terms[0].n)
	out := make([]models.KeywordScore, len(terms))
	for i, t := range terms {
		out[i] = models.KeywordScore{Term: t.term, Score: float64(t.n) / top}
	}
	return out
}

// topNgrams counts bigrams and trigrams over the token stream.
func topNgrams(tokens []string) []models.NgramCount {
	counts := make(map[string]int)
	for size := 2; size <= 3; size++ {
		for i := 0; i+size <= len(tokens); i++ {
			counts[strings.Join(tokens[i:i+size], " ")]++
		}
	}

	out := make([]models.NgramCount, 0, len(counts))
	for phrase, n := range counts {
		out = append(out, models.NgramCount{Phrase: phrase, Frequency: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Frequency != out[j].Frequency {
			return out[i].Frequency > out[j].Frequency
		}
		return out[i].Phrase < out[j].Phrase
	})
	if len(out) > maxNgrams {
		out = out[:maxNgrams]
	}
	return out
}

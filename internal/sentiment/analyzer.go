package sentiment

import (
	"math"
	"sort"
	"strings"

	"github.com/jonreiter/govader"

	"github.com/Ben-ecom/Marketpulse-AI-sub007/internal/models"
)

// Options selects the lexicon. An empty Language falls back to the
// default lexicon; an empty Domain triggers keyword-based inference.
type Options struct {
	Language string
	Domain   string
}

// Analyzer scores polarity, intensity, emotion and aspect-level
// sentiment from immutable lexicon tables. One instance is safe for
// concurrent use.
type Analyzer struct {
	vader *govader.SentimentIntensityAnalyzer
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{vader: govader.NewSentimentIntensityAnalyzer()}
}

const (
	emphasisMultiplier   = 1.5
	intensifierMultiplier = 2.0
	contrastBeforeWeight = 0.5
	contrastAfterWeight  = 1.5
	conditionWeight      = 0.7
	labelThreshold       = 0.1
)

// Analyze never fails: empty or invalid input produces a neutral,
// zero-score result with empty collections so the pipeline cannot
// stall on bad input.
func (a *Analyzer) Analyze(text string, opts Options) models.SentimentResult {
	if strings.TrimSpace(text) == "" {
		return neutralResult()
	}

	lang := opts.Language
	if _, ok := baseLexicons[lang]; !ok {
		lang = defaultLanguage
	}

	allTokens := tokenize(text)
	domain := opts.Domain
	if domain == "" {
		domain = DetectDomain(allTokens)
	}

	lex := baseLexicons[lang]
	if overlay, ok := domainLexicons[domain]; ok {
		lex = merged(lex, overlay)
	}
	markers := markersFor(lang)

	sentences := splitSentences(text)
	result := models.SentimentResult{Domain: domain}
	emotionTotals := make(map[string]float64)

	var totalScore float64
	var totalHits int

	for _, sentence := range sentences {
		ss, score, hits := a.scoreSentence(sentence, lex, markers, emotionTotals)
		result.Sentences = append(result.Sentences, ss)
		totalScore += score
		totalHits += hits
	}

	var score float64
	if totalHits > 0 {
		score = clamp(totalScore/float64(totalHits), -1, 1)
	}
	result.Score = score
	result.Label = labelFor(score)
	result.Intensity = intensityFor(score)
	result.Confidence = confidenceFor(score)
	result.Emotions = normalizeEmotions(emotionTotals)
	result.Aspects = extractAspects(sentences, lex, markers)

	if lang == "en" && a.vader != nil {
		compound := a.vader.PolarityScores(text).Compound
		result.VaderScore = &compound
	}
	return result
}

// scoreSentence scans tokens left to right with two transient
// multipliers: negation (-1) and intensity (x2), each consumed by the
// next lexicon hit. Contrast shifts weight toward the clause after the
// marker; condition discounts everything after the marker; emphasis
// scales the whole sentence.
func (a *Analyzer) scoreSentence(sentence string, lex Lexicon, markers markerSet, emotionTotals map[string]float64) (models.SentenceSentiment, float64, int) {
	tokens := tokenize(sentence)

	contrastIdx := markerIndex(tokens, markers.contrast)
	conditionIdx := markerIndex(tokens, markers.condition)
	hasEmphasis := markerIndex(tokens, markers.emphasis) >= 0

	emphasis := 1.0
	if hasEmphasis {
		emphasis = emphasisMultiplier
	}

	negMult, intMult := 1.0, 1.0
	var sum float64
	var hits int

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if _, ok := markers.negators[tok]; ok {
			negMult = -1
			continue
		}
		if _, ok := markers.intensifiers[tok]; ok {
			intMult = intensifierMultiplier
			continue
		}

		entry, width, ok := lookup(lex, tokens, i)
		if !ok {
			continue
		}

		tokenScore := entry.Score * negMult * intMult * emphasis
		if contrastIdx >= 0 {
			if i < contrastIdx {
				tokenScore *= contrastBeforeWeight
			} else {
				tokenScore *= contrastAfterWeight
			}
		}
		if conditionIdx >= 0 && i > conditionIdx {
			tokenScore *= conditionWeight
		}

		sum += tokenScore
		hits++

		for emotion, weight := range entry.Emotions {
			emotionTotals[emotion] += weight * math.Abs(negMult) * intMult
		}

		negMult, intMult = 1.0, 1.0
		i += width - 1
	}

	var mean float64
	if hits > 0 {
		mean = clamp(sum/float64(hits), -1, 1)
	}
	ss := models.SentenceSentiment{
		Text:         strings.TrimSpace(sentence),
		Label:        labelFor(mean),
		Score:        mean,
		Confidence:   confidenceFor(mean),
		HasContrast:  contrastIdx >= 0,
		HasCondition: conditionIdx >= 0,
		HasEmphasis:  hasEmphasis,
	}
	return ss, sum, hits
}

// lookup tries the longest lexicon phrase starting at position i,
// returning the matched entry and its width in tokens.
func lookup(lex Lexicon, tokens []string, i int) (Entry, int, bool) {
	for n := maxPhraseTokens; n >= 1; n-- {
		if i+n > len(tokens) {
			continue
		}
		term := strings.Join(tokens[i:i+n], " ")
		if entry, ok := lex[term]; ok {
			return entry, n, true
		}
	}
	return Entry{}, 0, false
}

// markerIndex returns the token index of the first marker occurrence,
// checking bigrams for multi-word markers, or -1.
func markerIndex(tokens []string, set map[string]struct{}) int {
	for i, tok := range tokens {
		if _, ok := set[tok]; ok {
			return i
		}
		if i+1 < len(tokens) {
			if _, ok := set[tok+" "+tokens[i+1]]; ok {
				return i
			}
		}
	}
	return -1
}

func neutralResult() models.SentimentResult {
	return models.SentimentResult{
		Label:      models.SentimentNeutral,
		Intensity:  models.IntensityNeutral,
		Score:      0,
		Confidence: 0.5,
	}
}

func labelFor(score float64) models.SentimentLabel {
	switch {
	case score > labelThreshold:
		return models.SentimentPositive
	case score < -labelThreshold:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}

// intensityFor maps a score onto the four-level ladder per polarity
// with thresholds 0.2, 0.5, 0.8, 1.0.
func intensityFor(score float64) models.IntensityLevel {
	abs := math.Abs(score)
	switch {
	case abs == 0:
		return models.IntensityNeutral
	case abs <= 0.2:
		return models.IntensityMild
	case abs <= 0.5:
		return models.IntensityModerate
	case abs <= 0.8:
		return models.IntensityStrong
	default:
		return models.IntensityIntense
	}
}

func confidenceFor(score float64) float64 {
	return 0.5 + math.Min(math.Abs(score)/2, 0.45)
}

// normalizeEmotions keeps positive entries only, renormalizes them to
// sum to 1, and sorts descending by weight.
func normalizeEmotions(totals map[string]float64) []models.EmotionWeight {
	var sum float64
	for _, w := range totals {
		if w > 0 {
			sum += w
		}
	}
	if sum <= 0 {
		return nil
	}

	out := make([]models.EmotionWeight, 0, len(totals))
	for emotion, w := range totals {
		if w <= 0 {
			continue
		}
		out = append(out, models.EmotionWeight{Emotion: emotion, Weight: w / sum})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Weight != out[j].Weight {
			return out[i].Weight > out[j].Weight
		}
		return out[i].Emotion < out[j].Emotion
	})
	return out
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// splitSentences breaks text on '.', '!' or '?' runs followed by
// whitespace.
func splitSentences(text string) []string {
	var sentences []string
	var start int
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '.' && runes[i] != '!' && runes[i] != '?' {
			continue
		}
		j := i
		for j+1 < len(runes) && (runes[j+1] == '.' || runes[j+1] == '!' || runes[j+1] == '?') {
			j++
		}
		if j+1 == len(runes) || runes[j+1] == ' ' || runes[j+1] == '\n' || runes[j+1] == '\t' || runes[j+1] == '\r' {
			s := strings.TrimSpace(string(runes[start : j+1]))
			if s != "" {
				sentences = append(sentences, s)
			}
			start = j + 1
		}
		i = j
	}
	if tail := strings.TrimSpace(string(runes[start:])); tail != "" {
		sentences = append(sentences, tail)
	}
	return sentences
}

// tokenize lowercases and strips clause punctuation, keeping inner
// apostrophes so negations like "don't" survive.
func tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		t := strings.Trim(f, `.,!?;:"'()[]{}«»…`)
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

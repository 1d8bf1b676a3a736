package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ben-ecom/Marketpulse-AI-sub007/internal/models"
)

func TestAnalyzeEmptyTextIsNeutral(t *testing.T) {
	a := NewAnalyzer()

	for _, in := range []string{"", "   ", "\n\t"} {
		got := a.Analyze(in, Options{Language: "en"})
		assert.Equal(t, models.SentimentNeutral, got.Label)
		assert.Equal(t, models.IntensityNeutral, got.Intensity)
		assert.Zero(t, got.Score)
		assert.Equal(t, 0.5, got.Confidence)
		assert.Empty(t, got.Emotions)
		assert.Empty(t, got.Aspects)
		assert.Empty(t, got.Sentences)
	}
}

func TestAnalyzeNoLexiconMatchScoresZero(t *testing.T) {
	a := NewAnalyzer()
	got := a.Analyze("the table is brown", Options{Language: "en"})

	assert.Zero(t, got.Score)
	assert.Equal(t, models.SentimentNeutral, got.Label)
	require.Len(t, got.Sentences, 1)
}

func TestNegationFlipsPolarity(t *testing.T) {
	a := NewAnalyzer()

	plain := a.Analyze("good", Options{Language: "en"})
	negated := a.Analyze("not good", Options{Language: "en"})

	assert.Greater(t, plain.Score, 0.0)
	assert.Less(t, negated.Score, plain.Score)
	assert.Less(t, negated.Score, 0.0)
	assert.Equal(t, -plain.Score, negated.Score)
}

func TestIntensifierMonotonicity(t *testing.T) {
	a := NewAnalyzer()

	plain := a.Analyze("good", Options{Language: "en"})
	boosted := a.Analyze("very good", Options{Language: "en"})

	assert.GreaterOrEqual(t, boosted.Score, plain.Score)
}

func TestContrastShiftsWeightToSecondClause(t *testing.T) {
	a := NewAnalyzer()

	got := a.Analyze("The interface is good but the battery is terrible.", Options{Language: "en"})
	require.Len(t, got.Sentences, 1)
	assert.True(t, got.Sentences[0].HasContrast)
	// "good" is halved before the marker, "terrible" boosted after it.
	assert.Less(t, got.Score, 0.0)
	assert.Equal(t, models.SentimentNegative, got.Label)
}

func TestConditionDiscountsFollowingTokens(t *testing.T) {
	a := NewAnalyzer()

	unconditional := a.Analyze("this is good", Options{Language: "en"})
	conditional := a.Analyze("maybe if it works this is good", Options{Language: "en"})

	require.Len(t, conditional.Sentences, 1)
	assert.True(t, conditional.Sentences[0].HasCondition)
	assert.Less(t, conditional.Score, unconditional.Score)
	assert.Greater(t, conditional.Score, 0.0)
}

func TestEmphasisBoostsScore(t *testing.T) {
	a := NewAnalyzer()

	plain := a.Analyze("the food was good", Options{Language: "en"})
	emphasized := a.Analyze("the food was especially good", Options{Language: "en"})

	require.Len(t, emphasized.Sentences, 1)
	assert.True(t, emphasized.Sentences[0].HasEmphasis)
	assert.Greater(t, emphasized.Score, plain.Score)
}

func TestEmotionsNormalizedAndSorted(t *testing.T) {
	a := NewAnalyzer()

	got := a.Analyze("good", Options{Language: "en"})
	require.NotEmpty(t, got.Emotions)

	var sum float64
	for i, e := range got.Emotions {
		assert.Greater(t, e.Weight, 0.0)
		sum += e.Weight
		if i > 0 {
			assert.GreaterOrEqual(t, got.Emotions[i-1].Weight, e.Weight)
		}
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
	assert.Equal(t, EmotionJoy, got.Emotions[0].Emotion)
}

func TestDomainDetectionEcommerce(t *testing.T) {
	a := NewAnalyzer()

	got := a.Analyze("My order arrived quickly and shipping was free.", Options{Language: "en"})
	assert.Equal(t, DomainEcommerce, got.Domain)

	// An explicit domain bypasses inference.
	got = a.Analyze("great stay", Options{Language: "en", Domain: DomainHospitality})
	assert.Equal(t, DomainHospitality, got.Domain)
}

func TestDomainLexiconTakesPrecedence(t *testing.T) {
	merged := merged(baseLexicons["en"], domainLexicons[DomainHospitality])
	entry, ok := merged["dirty"]
	require.True(t, ok)
	assert.Equal(t, -0.7, entry.Score)

	// Base terms survive the merge.
	_, ok = merged["good"]
	assert.True(t, ok)
}

func TestSentenceSplitting(t *testing.T) {
	got := splitSentences("Great product. Would buy again! Right?  Sure...")
	require.Len(t, got, 4)
	assert.Equal(t, "Great product.", got[0])
	assert.Equal(t, "Would buy again!", got[1])
	assert.Equal(t, "Right?", got[2])
	assert.Equal(t, "Sure...", got[3])

	// Decimal points do not split.
	got = splitSentences("It cost 49.99 which is fine")
	assert.Len(t, got, 1)
}

func TestSentenceScoresAndConfidence(t *testing.T) {
	a := NewAnalyzer()

	got := a.Analyze("The staff was excellent. The room was dirty.", Options{Language: "en", Domain: DomainHospitality})
	require.Len(t, got.Sentences, 2)

	assert.Equal(t, models.SentimentPositive, got.Sentences[0].Label)
	assert.Equal(t, models.SentimentNegative, got.Sentences[1].Label)
	for _, s := range got.Sentences {
		assert.GreaterOrEqual(t, s.Confidence, 0.5)
		assert.LessOrEqual(t, s.Confidence, 0.95)
	}
}

func TestAspectExtraction(t *testing.T) {
	a := NewAnalyzer()

	got := a.Analyze("The delivery was fast.", Options{Language: "en"})
	require.NotEmpty(t, got.Aspects)

	var delivery *models.AspectSentiment
	for i := range got.Aspects {
		if got.Aspects[i].Term == "delivery" {
			delivery = &got.Aspects[i]
		}
	}
	require.NotNil(t, delivery, "expected a 'delivery' aspect")
	assert.Equal(t, models.SentimentPositive, delivery.Label)
	assert.Greater(t, delivery.Score, 0.0)
	assert.Equal(t, 0, delivery.SentenceIndex)
	assert.Contains(t, delivery.RelatedTerms, "fast")
}

func TestIntensityLadder(t *testing.T) {
	cases := []struct {
		score float64
		want  models.IntensityLevel
	}{
		{0, models.IntensityNeutral},
		{0.15, models.IntensityMild},
		{-0.15, models.IntensityMild},
		{0.4, models.IntensityModerate},
		{-0.6, models.IntensityStrong},
		{0.9, models.IntensityIntense},
		{-1.0, models.IntensityIntense},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, intensityFor(c.score), "score %v", c.score)
	}
}

func TestVaderSecondaryScoreForEnglish(t *testing.T) {
	a := NewAnalyzer()

	en := a.Analyze("this is absolutely great", Options{Language: "en"})
	require.NotNil(t, en.VaderScore)
	assert.Greater(t, *en.VaderScore, 0.0)

	es := a.Analyze("el producto es excelente", Options{Language: "es"})
	assert.Nil(t, es.VaderScore)
}

func TestSpanishLexicon(t *testing.T) {
	a := NewAnalyzer()

	got := a.Analyze("el servicio es excelente", Options{Language: "es"})
	assert.Greater(t, got.Score, 0.0)

	got = a.Analyze("no bueno", Options{Language: "es"})
	assert.Less(t, got.Score, 0.0)
}

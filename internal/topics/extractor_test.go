package topics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTopicsEcommerce(t *testing.T) {
	e := NewExtractor()

	got := e.ExtractTopics(
		"The shipping was fast and the package arrived intact. Shipping updates were clear. Great price and the refund process for my return was painless.",
		Options{Domain: "ecommerce"})

	assert.Equal(t, "ecommerce", got.Domain)
	require.NotEmpty(t, got.Topics)
	assert.LessOrEqual(t, len(got.Topics), 5)

	names := make(map[string]float64, len(got.Topics))
	for _, topic := range got.Topics {
		names[topic.Name] = topic.Score
	}
	assert.Contains(t, names, "delivery")
	assert.Contains(t, names, "returns")
	// Two "shipping" hits plus "package" and "arrived" outrank returns.
	assert.Greater(t, names["delivery"], names["returns"])

	for i := 1; i < len(got.Topics); i++ {
		assert.GreaterOrEqual(t, got.Topics[i-1].Score, got.Topics[i].Score)
	}
}

func TestExtractTopicsInfersDomain(t *testing.T) {
	e := NewExtractor()

	got := e.ExtractTopics("My order shipped same day and the delivery tracking worked.", Options{})
	assert.Equal(t, "ecommerce", got.Domain)
}

func TestExtractTopicsUnknownDomainUsesUnion(t *testing.T) {
	e := NewExtractor()

	// No domain reaches the inference threshold; the union table still
	// finds the hotel topics.
	got := e.ExtractTopics("The bathroom smelled and housekeeping never came.", Options{})
	assert.Empty(t, got.Domain)

	var found bool
	for _, topic := range got.Topics {
		if topic.Name == "cleanliness" || topic.Name == "room" {
			found = true
		}
	}
	assert.True(t, found, "union table should include hospitality topics, got %+v", got.Topics)
}

func TestExtractTopicsPhraseScoring(t *testing.T) {
	// A multi-word keyword hit scores double and its constituents add
	// half weight each.
	freq := map[string]int{"value": 1, "money": 1, "price": 1}
	joined := " great value for money price "

	score, count := scoreTopic([]string{"price", "value for money"}, freq, joined)
	assert.Equal(t, 2, count)
	// price (1.0) + phrase (2.0) + partials value/money (0.5 each) = 4.0
	assert.InDelta(t, 4.0, score, 1e-9)
}

func TestNgramsAndKeywords(t *testing.T) {
	e := NewExtractor()

	got := e.ExtractTopics("battery life is short, battery life matters", Options{Domain: "technology"})

	require.NotEmpty(t, got.Ngrams)
	assert.Equal(t, "battery life", got.Ngrams[0].Phrase)
	assert.Equal(t, 2, got.Ngrams[0].Frequency)

	require.NotEmpty(t, got.Keywords)
	assert.Equal(t, "battery", got.Keywords[0].Term)
	assert.Equal(t, 1.0, got.Keywords[0].Score)
}

func TestExtractTopicsEmptyText(t *testing.T) {
	e := NewExtractor()

	got := e.ExtractTopics("", Options{Domain: "finance"})
	assert.Empty(t, got.Topics)
	assert.Empty(t, got.Keywords)
	assert.Empty(t, got.Ngrams)
	assert.Equal(t, "finance", got.Domain)
}

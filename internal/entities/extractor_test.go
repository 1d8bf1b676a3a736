package entities

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ben-ecom/Marketpulse-AI-sub007/internal/models"
)

func findByType(ents []models.Entity, t models.EntityType) []models.Entity {
	var out []models.Entity
	for _, e := range ents {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func TestExtractEmailAndURL(t *testing.T) {
	e := NewExtractor(nil)

	got := e.Extract(context.Background(), "Contact me at a@b.com or visit https://x.com")
	require.Len(t, got, 2)

	emails := findByType(got, models.EntityEmail)
	require.Len(t, emails, 1)
	assert.Equal(t, "a@b.com", emails[0].Text)
	assert.Equal(t, models.EntityMethodPattern, emails[0].Method)

	urls := findByType(got, models.EntityURL)
	require.Len(t, urls, 1)
	assert.Equal(t, "https://x.com", urls[0].Text)
}

func TestExtractOffsetsInsideText(t *testing.T) {
	e := NewExtractor(nil)
	text := "Paid $49.99 on 2024-03-01, receipt at billing@store.example.com, see #deals or ask @support"

	got := e.Extract(context.Background(), text)
	require.NotEmpty(t, got)
	for _, ent := range got {
		require.GreaterOrEqual(t, ent.StartOffset, 0)
		require.LessOrEqual(t, ent.EndOffset, len(text))
		require.Less(t, ent.StartOffset, ent.EndOffset)
		assert.Equal(t, ent.Text, text[ent.StartOffset:ent.EndOffset])
	}

	assert.Len(t, findByType(got, models.EntityMoney), 1)
	assert.Len(t, findByType(got, models.EntityDate), 1)
	assert.Len(t, findByType(got, models.EntityHashtag), 1)
	assert.Len(t, findByType(got, models.EntityMention), 1)
}

func TestExtractMentionNotInsideEmail(t *testing.T) {
	e := NewExtractor(nil)
	got := e.Extract(context.Background(), "mail a@b.com today")
	assert.Empty(t, findByType(got, models.EntityMention))
}

func TestExtractGazetteerHits(t *testing.T) {
	e := NewExtractor(nil)
	got := e.Extract(context.Background(), "Ordered an iPhone from bol.com, delivered to Amsterdam")

	orgs := findByType(got, models.EntityOrganization)
	require.Len(t, orgs, 1)
	assert.Equal(t, "bol.com", orgs[0].Text)
	assert.Equal(t, models.EntityMethodGazetteer, orgs[0].Method)
	assert.Equal(t, 0.9, orgs[0].Confidence)

	require.Len(t, findByType(got, models.EntityProduct), 1)
	require.Len(t, findByType(got, models.EntityLocation), 1)
}

func TestDeduplicationKeepsHighestConfidence(t *testing.T) {
	in := []models.Entity{
		{Text: "Amazon", Type: models.EntityOrganization, Confidence: 0.8, Method: models.EntityMethodPattern},
		{Text: "amazon", Type: models.EntityOrganization, Confidence: 0.9, Method: models.EntityMethodGazetteer},
	}

	got := dedupe(in)
	require.Len(t, got, 1)
	assert.Equal(t, 0.9, got[0].Confidence)
	assert.Equal(t, models.EntityMethodGazetteer, got[0].Method)
}

func TestDeduplicationKeepsDistinctTypes(t *testing.T) {
	in := []models.Entity{
		{Text: "Galaxy", Type: models.EntityProduct, Confidence: 0.9},
		{Text: "Galaxy", Type: models.EntityOrganization, Confidence: 0.7},
	}
	assert.Len(t, dedupe(in), 2)
}

func TestExternalExtractorMergeAndFailure(t *testing.T) {
	external := externalFunc(func(context.Context, string) ([]models.Entity, error) {
		return []models.Entity{{
			Text: "Acme", Type: models.EntityOrganization,
			StartOffset: 0, EndOffset: 4,
			Confidence: 0.95, Method: models.EntityMethodExternal,
		}}, nil
	})

	e := NewExtractor(external)
	got := e.Extract(context.Background(), "Acme shipped fast")
	orgs := findByType(got, models.EntityOrganization)
	require.Len(t, orgs, 1)
	assert.Equal(t, models.EntityMethodExternal, orgs[0].Method)

	// A failing capability degrades to the rule-based path.
	failing := NewExtractor(externalFunc(func(context.Context, string) ([]models.Entity, error) {
		return nil, errors.New("model unavailable")
	}))
	got = failing.Extract(context.Background(), "visit https://x.com")
	require.Len(t, got, 1)
	assert.Equal(t, models.EntityURL, got[0].Type)
}

func TestExtractSortedByConfidenceDesc(t *testing.T) {
	e := NewExtractor(nil)
	got := e.Extract(context.Background(), "Amazon order #x123 shipped, track at https://t.example")
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Confidence, got[i].Confidence)
	}
}

func TestExtractEmptyText(t *testing.T) {
	e := NewExtractor(nil)
	assert.Empty(t, e.Extract(context.Background(), ""))
	assert.Empty(t, e.Extract(context.Background(), "   "))
}

type externalFunc func(ctx context.Context, text string) ([]models.Entity, error)

func (f externalFunc) Extract(ctx context.Context, text string) ([]models.Entity, error) {
	return f(ctx, text)
}

package entities

import (
	"regexp"

	"github.com/Ben-ecom/Marketpulse-AI-sub007/internal/models"
)

// patternConfidence is assigned to every rule-based match; gazetteer
// hits rank above it and external extractors carry their own scores.
const (
	patternConfidence   = 0.8
	gazetteerConfidence = 0.9
)

type patternRule struct {
	entityType models.EntityType
	pattern    *regexp.Regexp
	// submatch marks rules whose pattern needs a leading guard because
	// the regexp engine has no lookbehind; the entity is capture group 1.
	submatch bool
}

// patternRules covers the structured span types the scrapers see most
// often. Order does not matter; overlaps are resolved by dedup.
var patternRules = []patternRule{
	{entityType: models.EntityEmail, pattern: regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)},
	{entityType: models.EntityURL, pattern: regexp.MustCompile(`https?://[^\s<>"')]+|www\.[^\s<>"')]+`)},
	{entityType: models.EntityPhone, pattern: regexp.MustCompile(`\+?\d{1,3}[-.\s]?\(?\d{2,4}\)?[-.\s]?\d{3,4}[-.\s]?\d{2,4}\b`)},
	{entityType: models.EntityIPAddress, pattern: regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`)},
	{entityType: models.EntityMoney, pattern: regexp.MustCompile(`[$€£¥]\s?\d+(?:[.,]\d{1,2})?|\b\d+(?:[.,]\d{1,2})?\s?(?:USD|EUR|GBP|dollars?|euros?|cents?)\b`)},
	{entityType: models.EntityDate, pattern: regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b|\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b|\b(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.? \d{1,2}(?:st|nd|rd|th)?,? \d{4}\b`)},
	{entityType: models.EntityTime, pattern: regexp.MustCompile(`\b\d{1,2}:\d{2}(?::\d{2})?(?:\s?[APap][Mm])?\b`)},
	{entityType: models.EntityHashtag, pattern: regexp.MustCompile(`(?:^|[^0-9A-Za-z_&])(#[A-Za-z][A-Za-z0-9_]*)`), submatch: true},
	{entityType: models.EntityMention, pattern: regexp.MustCompile(`(?:^|[^0-9A-Za-z_@.])(@[A-Za-z0-9_][A-Za-z0-9_.]*)`), submatch: true},
}

package entities

import (
	"regexp"

	"github.com/Ben-ecom/Marketpulse-AI-sub007/internal/models"
)

// Gazetteers are fixed sets of known literal names matched with
// case-insensitive word boundaries. They are built once and shared
// read-only across concurrent extractions.
type gazetteer struct {
	entityType models.EntityType
	names      []string
}

var defaultGazetteers = []gazetteer{
	{models.EntityOrganization, []string{
		"Amazon", "Google", "Apple", "Microsoft", "Samsung", "Netflix",
		"Tesla", "Nike", "Adidas", "Sony", "Philips", "Zalando",
		"bol.com", "Coolblue", "MediaMarkt", "PayPal", "Shopify",
		"AliExpress", "eBay", "IKEA",
	}},
	{models.EntityLocation, []string{
		"Amsterdam", "Rotterdam", "Utrecht", "Eindhoven", "Berlin",
		"Hamburg", "Munich", "London", "Manchester", "Paris", "Madrid",
		"Barcelona", "New York", "Los Angeles", "Chicago", "Brussels",
		"Antwerp", "Vienna", "Zurich", "Dublin",
	}},
	{models.EntityProduct, []string{
		"iPhone", "iPad", "MacBook", "AirPods", "Galaxy", "Pixel",
		"PlayStation", "Xbox", "Switch", "Kindle", "Echo", "Surface",
		"ThinkPad", "GoPro", "Fitbit", "Roomba",
	}},
}

type gazetteerMatcher struct {
	entityType models.EntityType
	name       string
	pattern    *regexp.Regexp
}

// buildGazetteerMatchers compiles one boundary pattern per known name.
// Names are literal, so metacharacters (as in "bol.com") are escaped
// before the pattern is built.
func buildGazetteerMatchers(gazetteers []gazetteer) []gazetteerMatcher {
	var matchers []gazetteerMatcher
	for _, g := range gazetteers {
		for _, name := range g.names {
			matchers = append(matchers, gazetteerMatcher{
				entityType: g.entityType,
				name:       name,
				pattern:    regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(name) + `\b`),
			})
		}
	}
	return matchers
}

package pipeline

import (
	"github.com/Ben-ecom/Marketpulse-AI-sub007/internal/models"
)

// fragmentsFor maps a source payload to its analyzable text fragments.
// The switch is exhaustive over the closed Platform set; extending the
// set means extending this switch. The mapping is pure: no side
// effects, no mutation of the payload.
func fragmentsFor(platform models.Platform, payload map[string]any) []string {
	switch platform {
	case models.PlatformAmazonReviews:
		var fragments []string
		for _, review := range listOfMaps(payload, "reviews") {
			fragments = appendNonEmpty(fragments, stringValue(review, "title"))
			fragments = appendNonEmpty(fragments, stringValue(review, "body"))
		}
		return fragments

	case models.PlatformTrustpilot:
		// One fragment per review body plus one per business reply.
		var fragments []string
		for _, review := range listOfMaps(payload, "reviews") {
			fragments = appendNonEmpty(fragments, stringValue(review, "body"))
			fragments = appendNonEmpty(fragments, stringValue(review, "business_reply"))
		}
		return fragments

	case models.PlatformReddit:
		fragments := appendNonEmpty(nil, stringValue(payload, "title"))
		fragments = appendNonEmpty(fragments, stringValue(payload, "selftext"))
		for _, comment := range listOfMaps(payload, "comments") {
			fragments = appendNonEmpty(fragments, stringValue(comment, "body"))
		}
		return fragments

	case models.PlatformInstagram:
		fragments := appendNonEmpty(nil, stringValue(payload, "caption"))
		for _, comment := range listOfMaps(payload, "comments") {
			fragments = appendNonEmpty(fragments, stringValue(comment, "text"))
		}
		return fragments

	case models.PlatformTwitter:
		fragments := appendNonEmpty(nil, stringValue(payload, "text"))
		for _, reply := range listOfMaps(payload, "replies") {
			fragments = appendNonEmpty(fragments, stringValue(reply, "text"))
		}
		return fragments
	}
	return nil
}

func stringValue(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}

func listOfMaps(m map[string]any, key string) []map[string]any {
	raw, _ := m[key].([]any)
	out := make([]map[string]any, 0, len(raw))
	for _, entry := range raw {
		if em, ok := entry.(map[string]any); ok {
			out = append(out, em)
		}
	}
	return out
}

func appendNonEmpty(fragments []string, s string) []string {
	if s == "" {
		return fragments
	}
	return append(fragments, s)
}

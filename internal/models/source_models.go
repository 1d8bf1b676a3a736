package models

import "fmt"

// Platform identifies where a SourceResult was scraped from. The set is
// closed: fragment extraction switches over every member, so adding a
// platform means extending both the constant list and the switch.
type Platform int

const (
	PlatformAmazonReviews Platform = iota
	PlatformTrustpilot
	PlatformReddit
	PlatformInstagram
	PlatformTwitter
)

var platformNames = map[Platform]string{
	PlatformAmazonReviews: "amazon_reviews",
	PlatformTrustpilot:    "trustpilot",
	PlatformReddit:        "reddit",
	PlatformInstagram:     "instagram",
	PlatformTwitter:       "twitter",
}

func (p Platform) String() string {
	if name, ok := platformNames[p]; ok {
		return name
	}
	return fmt.Sprintf("platform(%d)", int(p))
}

// ParsePlatform maps a stored platform string onto the closed Platform
// set. Unknown strings are an error, not a silent fallthrough.
func ParsePlatform(s string) (Platform, error) {
	for p, name := range platformNames {
		if name == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown platform %q", s)
}

// SourceResult is one raw scraped record pulled from the source-result
// store. Payload keys depend on the platform; the pipeline maps them to
// analyzable text fragments.
type SourceResult struct {
	ID       string         `json:"id" dynamodbav:"id"`
	Platform string         `json:"platform" dynamodbav:"platform"`
	Payload  map[string]any `json:"payload" dynamodbav:"payload"`
}

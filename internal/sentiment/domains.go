package sentiment

import "strings"

const (
	DomainEcommerce   = "ecommerce"
	DomainFinance     = "finance"
	DomainHealthcare  = "healthcare"
	DomainHospitality = "hospitality"
	DomainTechnology  = "technology"
)

// minDomainHits is the keyword-hit threshold below which no domain is
// inferred.
const minDomainHits = 2

// domainKeywords drive domain inference: the domain with the most
// keyword hits wins if it reaches minDomainHits.
var domainKeywords = map[string][]string{
	DomainEcommerce: {
		"order", "shipping", "delivery", "refund", "return", "checkout",
		"cart", "package", "warehouse", "seller", "purchase", "shop",
		"tracking", "invoice",
	},
	DomainFinance: {
		"bank", "account", "payment", "loan", "interest", "credit",
		"debit", "mortgage", "investment", "transfer", "balance", "fee",
		"savings", "insurance",
	},
	DomainHealthcare: {
		"doctor", "hospital", "clinic", "patient", "treatment",
		"appointment", "prescription", "medication", "nurse", "surgery",
		"diagnosis", "pharmacy", "therapy",
	},
	DomainHospitality: {
		"hotel", "room", "booking", "reservation", "restaurant", "menu",
		"staff", "breakfast", "checkin", "checkout", "waiter", "stay",
		"lobby", "housekeeping",
	},
	DomainTechnology: {
		"app", "software", "update", "bug", "device", "battery", "screen",
		"interface", "login", "server", "feature", "install", "crash",
		"sync",
	},
}

// domainLexicons are merged over the base lexicon when a domain is
// resolved; domain terms take precedence on key collision.
var domainLexicons = map[string]Lexicon{
	DomainEcommerce: {
		"fast shipping":   {Score: 0.7, Emotions: map[string]float64{EmotionJoy: 0.4, EmotionTrust: 0.4}},
		"free shipping":   {Score: 0.6, Emotions: map[string]float64{EmotionJoy: 0.5}},
		"late":            {Score: -0.5, Emotions: map[string]float64{EmotionAnger: 0.4, EmotionSadness: 0.3}},
		"delayed":         {Score: -0.5, Emotions: map[string]float64{EmotionSadness: 0.4, EmotionAnger: 0.3}},
		"lost":            {Score: -0.6, Emotions: map[string]float64{EmotionSadness: 0.5, EmotionAnger: 0.3}},
		"refunded":        {Score: 0.3, Emotions: map[string]float64{EmotionTrust: 0.5}},
		"counterfeit":     {Score: -0.9, Emotions: map[string]float64{EmotionAnger: 0.6, EmotionDisgust: 0.5}},
		"well packaged":   {Score: 0.5, Emotions: map[string]float64{EmotionTrust: 0.5}},
		"missing":         {Score: -0.6, Emotions: map[string]float64{EmotionSadness: 0.4, EmotionAnger: 0.4}},
		"as described":    {Score: 0.5, Emotions: map[string]float64{EmotionTrust: 0.7}},
	},
	DomainFinance: {
		"hidden fees":   {Score: -0.8, Emotions: map[string]float64{EmotionAnger: 0.6, EmotionDisgust: 0.3}},
		"secure":        {Score: 0.6, Emotions: map[string]float64{EmotionTrust: 0.8}},
		"declined":      {Score: -0.5, Emotions: map[string]float64{EmotionSadness: 0.4, EmotionAnger: 0.3}},
		"blocked":       {Score: -0.6, Emotions: map[string]float64{EmotionAnger: 0.5, EmotionFear: 0.3}},
		"transparent":   {Score: 0.6, Emotions: map[string]float64{EmotionTrust: 0.8}},
		"overdraft":     {Score: -0.4, Emotions: map[string]float64{EmotionFear: 0.4, EmotionSadness: 0.3}},
		"high interest": {Score: -0.5, Emotions: map[string]float64{EmotionSadness: 0.4}},
		"approved":      {Score: 0.5, Emotions: map[string]float64{EmotionJoy: 0.4, EmotionTrust: 0.4}},
	},
	DomainHealthcare: {
		"caring":        {Score: 0.7, Emotions: map[string]float64{EmotionTrust: 0.6, EmotionJoy: 0.3}},
		"professional":  {Score: 0.6, Emotions: map[string]float64{EmotionTrust: 0.8}},
		"misdiagnosed":  {Score: -0.8, Emotions: map[string]float64{EmotionFear: 0.5, EmotionAnger: 0.4}},
		"painful":       {Score: -0.6, Emotions: map[string]float64{EmotionFear: 0.4, EmotionSadness: 0.4}},
		"recovered":     {Score: 0.7, Emotions: map[string]float64{EmotionJoy: 0.6, EmotionTrust: 0.3}},
		"long wait":     {Score: -0.5, Emotions: map[string]float64{EmotionAnger: 0.4, EmotionSadness: 0.3}},
		"attentive":     {Score: 0.6, Emotions: map[string]float64{EmotionTrust: 0.6}},
		"unhygienic":    {Score: -0.8, Emotions: map[string]float64{EmotionDisgust: 0.8}},
	},
	DomainHospitality: {
		"cozy":          {Score: 0.6, Emotions: map[string]float64{EmotionJoy: 0.6}},
		"spacious":      {Score: 0.5, Emotions: map[string]float64{EmotionJoy: 0.4}},
		"dirty":         {Score: -0.7, Emotions: map[string]float64{EmotionDisgust: 0.8}},
		"noisy":         {Score: -0.5, Emotions: map[string]float64{EmotionAnger: 0.4, EmotionSadness: 0.2}},
		"delicious":     {Score: 0.8, Emotions: map[string]float64{EmotionJoy: 0.8}},
		"tasteless":     {Score: -0.5, Emotions: map[string]float64{EmotionDisgust: 0.6}},
		"welcoming":     {Score: 0.6, Emotions: map[string]float64{EmotionJoy: 0.4, EmotionTrust: 0.5}},
		"overbooked":    {Score: -0.7, Emotions: map[string]float64{EmotionAnger: 0.6}},
		"great view":    {Score: 0.6, Emotions: map[string]float64{EmotionJoy: 0.7}},
	},
	DomainTechnology: {
		"buggy":          {Score: -0.6, Emotions: map[string]float64{EmotionAnger: 0.5, EmotionSadness: 0.3}},
		"crashes":        {Score: -0.7, Emotions: map[string]float64{EmotionAnger: 0.6}},
		"intuitive":      {Score: 0.6, Emotions: map[string]float64{EmotionJoy: 0.4, EmotionTrust: 0.4}},
		"responsive":     {Score: 0.6, Emotions: map[string]float64{EmotionJoy: 0.3, EmotionTrust: 0.5}},
		"laggy":          {Score: -0.5, Emotions: map[string]float64{EmotionAnger: 0.4}},
		"seamless":       {Score: 0.7, Emotions: map[string]float64{EmotionJoy: 0.4, EmotionTrust: 0.5}},
		"outdated":       {Score: -0.4, Emotions: map[string]float64{EmotionSadness: 0.4}},
		"battery drain":  {Score: -0.6, Emotions: map[string]float64{EmotionAnger: 0.4, EmotionSadness: 0.3}},
		"user friendly":  {Score: 0.6, Emotions: map[string]float64{EmotionJoy: 0.4, EmotionTrust: 0.4}},
	},
}

// DetectDomain counts domain-keyword hits per candidate domain over
// lowercased tokens and picks the maximum if it reaches minDomainHits.
// Returns "" when no domain is confident enough.
func DetectDomain(tokens []string) string {
	present := make(map[string]int, len(tokens))
	for _, t := range tokens {
		present[strings.ToLower(t)]++
	}

	best, bestHits := "", 0
	for domain, keywords := range domainKeywords {
		hits := 0
		for _, kw := range keywords {
			hits += present[kw]
		}
		if hits > bestHits || (hits == bestHits && hits > 0 && domain < best) {
			best, bestHits = domain, hits
		}
	}
	if bestHits < minDomainHits {
		return ""
	}
	return best
}

package topics

// topicKeywords is the fixed topic→keyword-list table per domain.
// Multi-word keywords are matched as phrases and, at half weight, by
// their constituent tokens.
var topicKeywords = map[string]map[string][]string{
	"ecommerce": {
		"delivery":         {"shipping", "delivery", "package", "courier", "delivery time", "arrived"},
		"pricing":          {"price", "cost", "expensive", "cheap", "value for money", "discount"},
		"customer service": {"service", "support", "helpdesk", "customer service", "response"},
		"product quality":  {"quality", "defective", "broken", "durable", "material", "build quality"},
		"returns":          {"return", "refund", "exchange", "return policy", "warranty"},
	},
	"finance": {
		"fees":           {"fee", "charge", "commission", "hidden fees", "cost"},
		"mobile banking": {"app", "login", "transfer", "mobile banking", "online banking"},
		"support":        {"support", "service", "helpdesk", "phone", "response"},
		"trust":          {"secure", "trust", "safe", "fraud", "scam", "reliable"},
		"products":       {"account", "loan", "mortgage", "savings", "credit card"},
	},
	"healthcare": {
		"staff":        {"doctor", "nurse", "staff", "specialist", "receptionist"},
		"waiting time": {"wait", "waiting", "queue", "appointment", "waiting time", "delay"},
		"treatment":    {"treatment", "diagnosis", "surgery", "medication", "therapy"},
		"facilities":   {"clinic", "hospital", "room", "equipment", "hygiene", "parking"},
	},
	"hospitality": {
		"room":        {"room", "bed", "bathroom", "view", "air conditioning"},
		"food":        {"breakfast", "dinner", "restaurant", "food", "menu", "buffet"},
		"staff":       {"staff", "reception", "waiter", "service", "friendly"},
		"location":    {"location", "center", "distance", "parking", "neighborhood"},
		"cleanliness": {"clean", "dirty", "housekeeping", "hygiene", "smell"},
	},
	"technology": {
		"performance": {"fast", "slow", "lag", "speed", "performance", "loading"},
		"usability":   {"interface", "intuitive", "design", "navigation", "user friendly"},
		"reliability": {"crash", "bug", "stable", "freeze", "error", "reliable"},
		"updates":     {"update", "version", "upgrade", "patch", "release"},
		"battery":     {"battery", "charge", "charging", "battery life", "drain"},
	},
}

// tablesForDomain returns the domain's table, or the union of every
// domain's tables when no domain is resolved. Topic names collide
// across domains ("staff"); the union keeps the larger keyword list.
func tablesForDomain(domain string) map[string][]string {
	if table, ok := topicKeywords[domain]; ok {
		return table
	}

	union := make(map[string][]string)
	for _, table := range topicKeywords {
		for topic, keywords := range table {
			if existing, ok := union[topic]; ok && len(existing) >= len(keywords) {
				continue
			}
			union[topic] = keywords
		}
	}
	return union
}

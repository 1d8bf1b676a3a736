package normalizer

// Language-specific stopword sets. English is the richest; the others
// cover the highest-frequency function words, which is enough for
// topic and keyword extraction over short scraped texts.
var stopwordSets = map[string]map[string]struct{}{
	"en": toSet([]string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "when",
		"at", "by", "for", "with", "about", "against", "between", "into",
		"through", "during", "before", "after", "above", "below", "to",
		"from", "up", "down", "in", "out", "on", "off", "over", "under",
		"again", "further", "once", "here", "there", "all", "any", "both",
		"each", "few", "more", "most", "other", "some", "such", "only",
		"own", "same", "so", "than", "too", "very", "can", "will", "just",
		"should", "now", "i", "me", "my", "we", "our", "you", "your", "he",
		"him", "his", "she", "her", "it", "its", "they", "them", "their",
		"what", "which", "who", "this", "that", "these", "those", "am",
		"is", "are", "was", "were", "be", "been", "being", "have", "has",
		"had", "having", "do", "does", "did", "doing", "of", "as", "until",
		"while",
	}),
	"es": toSet([]string{
		"el", "la", "los", "las", "un", "una", "unos", "unas", "y", "o",
		"pero", "si", "de", "del", "a", "en", "por", "para", "con", "sin",
		"sobre", "entre", "que", "como", "mas", "muy", "no", "se", "su",
		"sus", "lo", "le", "les", "es", "son", "era", "fue", "ser", "estar",
		"esta", "este", "esto", "ya", "tambien", "todo", "nos", "mi", "tu",
	}),
	"de": toSet([]string{
		"der", "die", "das", "ein", "eine", "einer", "eines", "und",
		"oder", "aber", "wenn", "von", "zu", "mit", "bei", "nach", "aus",
		"auf", "in", "an", "ist", "sind", "war", "waren", "sein", "haben",
		"hat", "hatte", "ich", "du", "er", "sie", "es", "wir", "ihr",
		"nicht", "auch", "noch", "nur", "so", "als", "wie", "dass", "den",
		"dem", "des", "im", "am", "um", "für",
	}),
	"fr": toSet([]string{
		"le", "la", "les", "un", "une", "des", "du", "de", "et", "ou",
		"mais", "si", "a", "en", "dans", "sur", "avec", "sans", "pour",
		"par", "que", "qui", "quoi", "ce", "cette", "ces", "est", "sont",
		"était", "être", "avoir", "il", "elle", "ils", "elles", "je", "tu",
		"nous", "vous", "ne", "pas", "plus", "très", "aussi", "se", "son",
		"sa", "ses", "au", "aux",
	}),
	"nl": toSet([]string{
		"de", "het", "een", "en", "of", "maar", "als", "van", "naar",
		"met", "bij", "uit", "op", "in", "aan", "is", "zijn", "was",
		"waren", "hebben", "heeft", "had", "ik", "jij", "hij", "zij",
		"wij", "jullie", "niet", "ook", "nog", "maar", "zo", "dan", "dat",
		"dit", "deze", "die", "er", "te", "om", "voor", "door",
	}),
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// StopwordsFor returns the stopword set for a two-letter language code,
// falling back to English for unknown codes.
func StopwordsFor(lang string) map[string]struct{} {
	if set, ok := stopwordSets[lang]; ok {
		return set
	}
	return stopwordSets["en"]
}

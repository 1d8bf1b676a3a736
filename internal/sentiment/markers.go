package sentiment

// markerSet holds the language-specific context words. Negators and
// intensifiers act on the next sentiment-bearing token; contrast,
// condition and emphasis markers re-weight whole clause ranges.
type markerSet struct {
	negators     map[string]struct{}
	intensifiers map[string]struct{}
	contrast     map[string]struct{}
	condition    map[string]struct{}
	emphasis     map[string]struct{}
}

func newMarkerSet(negators, intensifiers, contrast, condition, emphasis []string) markerSet {
	return markerSet{
		negators:     toSet(negators),
		intensifiers: toSet(intensifiers),
		contrast:     toSet(contrast),
		condition:    toSet(condition),
		emphasis:     toSet(emphasis),
	}
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

var markerSets = map[string]markerSet{
	"en": newMarkerSet(
		[]string{"not", "no", "never", "neither", "nobody", "nothing", "hardly", "barely", "don't", "doesn't", "didn't", "won't", "can't", "cannot", "isn't", "wasn't", "aren't", "couldn't", "wouldn't", "shouldn't"},
		[]string{"very", "really", "extremely", "incredibly", "absolutely", "totally", "completely", "highly", "so", "super", "truly", "utterly"},
		[]string{"but", "however", "although", "though", "yet", "nevertheless", "nonetheless", "still", "whereas"},
		[]string{"if", "unless", "whether", "provided", "assuming", "supposing", "in case"},
		[]string{"especially", "particularly", "notably", "definitely", "certainly", "indeed", "remarkably"},
	),
	"es": newMarkerSet(
		[]string{"no", "nunca", "jamás", "nadie", "nada", "ni", "tampoco", "apenas"},
		[]string{"muy", "realmente", "extremadamente", "increíblemente", "absolutamente", "totalmente", "completamente", "bastante", "súper"},
		[]string{"pero", "sin embargo", "aunque", "no obstante", "mas"},
		[]string{"si", "a menos que", "en caso de"},
		[]string{"especialmente", "particularmente", "sobre todo", "definitivamente", "ciertamente"},
	),
	"de": newMarkerSet(
		[]string{"nicht", "kein", "keine", "keiner", "nie", "niemals", "niemand", "nichts", "kaum"},
		[]string{"sehr", "wirklich", "extrem", "unglaublich", "absolut", "total", "völlig", "äußerst", "besonders"},
		[]string{"aber", "jedoch", "obwohl", "dennoch", "trotzdem", "allerdings"},
		[]string{"wenn", "falls", "sofern"},
		[]string{"besonders", "insbesondere", "vor allem", "definitiv", "wirklich"},
	),
	"fr": newMarkerSet(
		[]string{"ne", "pas", "non", "jamais", "personne", "rien", "aucun", "ni", "guère"},
		[]string{"très", "vraiment", "extrêmement", "incroyablement", "absolument", "totalement", "complètement", "super"},
		[]string{"mais", "cependant", "pourtant", "toutefois", "néanmoins", "bien que"},
		[]string{"si", "à moins que", "au cas où"},
		[]string{"surtout", "particulièrement", "notamment", "certainement", "vraiment"},
	),
}

// markersFor falls back to English the same way lexicon selection does.
func markersFor(lang string) markerSet {
	if set, ok := markerSets[lang]; ok {
		return set
	}
	return markerSets[defaultLanguage]
}

package normalizer

import (
	"html"
	"log/slog"
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

// Options toggles the individual cleaning steps. The processing order
// is fixed regardless of which steps are enabled; see Normalize.
type Options struct {
	RemoveMarkup       bool
	RemoveLinks        bool
	RemoveAddresses    bool
	RemoveDecorative   bool
	RemoveSpecialChars bool
	RemoveNumbers      bool
	RemoveStopwords    bool
	Lowercase          bool
	// Language selects the stopword set when RemoveStopwords is on.
	Language string
}

func DefaultOptions() Options {
	return Options{
		RemoveMarkup:       true,
		RemoveLinks:        true,
		RemoveAddresses:    true,
		RemoveDecorative:   true,
		RemoveSpecialChars: true,
		RemoveNumbers:      false,
		RemoveStopwords:    false,
		Lowercase:          true,
		Language:           "en",
	}
}

var (
	markdownLinkPattern = regexp.MustCompile(`\[(.*?)\]\((https?://[^\s)]+)\)`)
	urlPattern          = regexp.MustCompile(`https?://\S+|www\.\S+`)
	emailPattern        = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	htmlTagPattern      = regexp.MustCompile(`<[^>]*>`)
	decorativePattern   = regexp.MustCompile(`[\x{1F000}-\x{1FAFF}\x{2600}-\x{27BF}\x{2190}-\x{21FF}\x{FE00}-\x{FE0F}\x{2B00}-\x{2BFF}]`)
	specialCharPattern  = regexp.MustCompile(`[^\p{L}\p{N}\s.,!?'-]`)
	numberPattern       = regexp.MustCompile(`\d+`)
	whitespacePattern   = regexp.MustCompile(`\s+`)
)

type Normalizer struct{}

func New() *Normalizer {
	return &Normalizer{}
}

// Normalize cleans raw scraped text. It never fails: on any internal
// error the original text is returned unchanged, since downstream
// stages must always receive a string. Step order is fixed: markup →
// links → addresses → decorative → special chars → numbers →
// whitespace collapse → stopwords → lowercase → trim. Stopword removal
// runs after special-character stripping so punctuation-attached
// stopwords still match.
func (n *Normalizer) Normalize(text string, opts Options) (result string) {
	result = text
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("[Normalizer] Recovered from normalization failure, returning input unchanged",
				slog.Any("panic", r))
			result = text
		}
	}()

	out := text
	if opts.RemoveMarkup {
		out = stripMarkup(out)
	}
	if opts.RemoveLinks {
		out = markdownLinkPattern.ReplaceAllString(out, "$1")
		out = urlPattern.ReplaceAllString(out, "")
	}
	if opts.RemoveAddresses {
		out = emailPattern.ReplaceAllString(out, "")
	}
	if opts.RemoveDecorative {
		out = decorativePattern.ReplaceAllString(out, " ")
	}
	if opts.RemoveSpecialChars {
		out = specialCharPattern.ReplaceAllString(out, " ")
	}
	if opts.RemoveNumbers {
		out = numberPattern.ReplaceAllString(out, " ")
	}
	out = whitespacePattern.ReplaceAllString(out, " ")
	if opts.RemoveStopwords {
		out = removeStopwords(out, opts.Language)
	}
	if opts.Lowercase {
		out = strings.ToLower(out)
	}
	return strings.TrimSpace(out)
}

// stripMarkup renders markdown to HTML and strips every tag, which
// flattens both markdown and embedded HTML to plain text. Entities are
// unescaped afterwards so a second pass is a no-op.
func stripMarkup(input string) string {
	rendered := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plain := htmlTagPattern.ReplaceAllString(string(rendered), " ")
	return html.UnescapeString(plain)
}

// Tokenize splits normalized text into word tokens, dropping
// punctuation-only tokens.
func Tokenize(text string) []string {
	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		t := strings.Trim(f, ".,!?'-")
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

func removeStopwords(text, lang string) string {
	stops := StopwordsFor(lang)
	if len(stops) == 0 {
		return text
	}
	fields := strings.Fields(text)
	kept := make([]string, 0, len(fields))
	for _, f := range fields {
		probe := strings.ToLower(strings.Trim(f, ".,!?'-"))
		if _, ok := stops[probe]; ok {
			continue
		}
		kept = append(kept, f)
	}
	return strings.Join(kept, " ")
}

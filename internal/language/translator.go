package language

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// ErrUnsupportedLanguage is returned when a translation target is
// outside the supported set. It propagates to the caller: silently
// skipping a requested translation would be a silent data-quality bug.
var ErrUnsupportedLanguage = errors.New("unsupported target language")

var supportedLanguages = map[string]struct{}{
	"en": {}, "es": {}, "de": {}, "fr": {}, "nl": {}, "it": {}, "pt": {},
}

func IsSupported(code string) bool {
	_, ok := supportedLanguages[code]
	return ok
}

// Translator is the pluggable translation capability. Implementations
// may call out to an external service; the reference implementation is
// a passthrough.
type Translator interface {
	Translate(ctx context.Context, text, from, to string) (string, error)
}

// PassthroughTranslator is the reference no-op capability: it returns
// the input unchanged. Useful in tests and when no translation backend
// is configured.
type PassthroughTranslator struct{}

func (PassthroughTranslator) Translate(_ context.Context, text, _, _ string) (string, error) {
	return text, nil
}

// Identifier bundles detection with the translation capability.
type Identifier struct {
	detector   *Detector
	translator Translator
}

func NewIdentifier(translator Translator) *Identifier {
	if translator == nil {
		translator = PassthroughTranslator{}
	}
	return &Identifier{
		detector:   NewDetector(),
		translator: translator,
	}
}

func (i *Identifier) Detect(text string) string {
	return i.detector.Detect(text)
}

// Translate converts text between two-letter language codes. Equal
// source and target short-circuit without a capability call. An
// unsupported target fails with ErrUnsupportedLanguage; a capability
// failure degrades to the untranslated text.
func (i *Identifier) Translate(ctx context.Context, text, from, to string) (string, error) {
	if from == to {
		return text, nil
	}
	if !IsSupported(to) {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, to)
	}

	translated, err := i.translator.Translate(ctx, text, from, to)
	if err != nil {
		slog.Warn("[Language] Translation capability failed, keeping original text",
			slog.String("from", from),
			slog.String("to", to),
			slog.String("error", err.Error()))
		return text, nil
	}
	return translated, nil
}

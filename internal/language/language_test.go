package language

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ben-ecom/Marketpulse-AI-sub007/internal/models"
)

func TestDetectKnownLanguages(t *testing.T) {
	d := NewDetector()

	assert.Equal(t, "en", d.Detect("the delivery arrived quickly and the packaging was excellent"))
	assert.Equal(t, "es", d.Detect("el producto llegó muy rápido y la calidad es excelente para el precio"))
	assert.Equal(t, "de", d.Detect("die Lieferung war schnell und der Kundenservice hat sofort geantwortet"))
}

func TestDetectShortTextIsUnknown(t *testing.T) {
	d := NewDetector()

	assert.Equal(t, models.LanguageUnknown, d.Detect(""))
	assert.Equal(t, models.LanguageUnknown, d.Detect("ok"))
	assert.Equal(t, models.LanguageUnknown, d.Detect("great product"))
}

func TestTranslateSameLanguageSkipsCapability(t *testing.T) {
	calls := 0
	id := NewIdentifier(translatorFunc(func(_ context.Context, text, _, _ string) (string, error) {
		calls++
		return text, nil
	}))

	out, err := id.Translate(context.Background(), "hello", "en", "en")
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
	assert.Zero(t, calls, "same-language translation must not call the capability")
}

func TestTranslateUnsupportedTarget(t *testing.T) {
	id := NewIdentifier(nil)

	_, err := id.Translate(context.Background(), "hello", "en", "zz")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedLanguage))
}

func TestTranslateCapabilityFailureKeepsOriginal(t *testing.T) {
	id := NewIdentifier(translatorFunc(func(context.Context, string, string, string) (string, error) {
		return "", errors.New("backend down")
	}))

	out, err := id.Translate(context.Background(), "hello", "en", "es")
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
}

func TestPassthroughTranslator(t *testing.T) {
	out, err := PassthroughTranslator{}.Translate(context.Background(), "bonjour", "fr", "en")
	require.NoError(t, err)
	assert.Equal(t, "bonjour", out)
}

type translatorFunc func(ctx context.Context, text, from, to string) (string, error)

func (f translatorFunc) Translate(ctx context.Context, text, from, to string) (string, error) {
	return f(ctx, text, from, to)
}

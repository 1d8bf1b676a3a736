package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStripsLinksAndMarkup(t *testing.T) {
	n := New()
	opts := DefaultOptions()

	got := n.Normalize("Check [our shop](https://shop.example.com) or https://example.com now!", opts)
	assert.NotContains(t, got, "http")
	assert.Contains(t, got, "our shop")

	got = n.Normalize("<p>Great <b>product</b></p>", opts)
	assert.NotContains(t, got, "<")
	assert.Contains(t, got, "great")
	assert.Contains(t, got, "product")
}

func TestNormalizeRemovesEmailAddresses(t *testing.T) {
	n := New()
	got := n.Normalize("Reach me at someone@example.com please", DefaultOptions())
	assert.NotContains(t, got, "@")
	assert.NotContains(t, got, "example.com")
}

func TestNormalizeNumbersToggle(t *testing.T) {
	n := New()

	opts := DefaultOptions()
	assert.Contains(t, n.Normalize("ordered 3 units", opts), "3")

	opts.RemoveNumbers = true
	assert.NotContains(t, n.Normalize("ordered 3 units", opts), "3")
}

func TestNormalizeStopwordRemovalAfterPunctuation(t *testing.T) {
	n := New()
	opts := DefaultOptions()
	opts.RemoveStopwords = true

	// "the," must still match the stopword list once punctuation is gone.
	got := n.Normalize("the, delivery was fast", opts)
	assert.NotContains(t, " "+got+" ", " the ")
	assert.Contains(t, got, "delivery")
	assert.Contains(t, got, "fast")
}

func TestNormalizeIsIdempotent(t *testing.T) {
	n := New()
	inputs := []string{
		"Great **product**, fast shipping! Visit https://example.com 🚀",
		"<div>AT&amp;T support was slow &amp; unhelpful</div>",
		"  plain   text with    spaces  ",
		"",
	}

	for _, opts := range []Options{DefaultOptions(), {RemoveMarkup: true, RemoveStopwords: true, Lowercase: true, Language: "en"}} {
		for _, in := range inputs {
			once := n.Normalize(in, opts)
			twice := n.Normalize(once, opts)
			assert.Equal(t, once, twice, "normalize must be a fixed point after one pass: %q", in)
		}
	}
}

func TestNormalizeEmptyAndWhitespace(t *testing.T) {
	n := New()
	assert.Equal(t, "", n.Normalize("", DefaultOptions()))
	assert.Equal(t, "", n.Normalize("   \n\t ", DefaultOptions()))
}

func TestTokenize(t *testing.T) {
	tokens := Tokenize("great product, fast shipping!")
	assert.Equal(t, []string{"great", "product", "fast", "shipping"}, tokens)

	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("... !!"))
}

func TestStopwordsForFallsBackToEnglish(t *testing.T) {
	set := StopwordsFor("xx")
	_, ok := set["the"]
	assert.True(t, ok)

	es := StopwordsFor("es")
	_, ok = es["pero"]
	assert.True(t, ok)
}

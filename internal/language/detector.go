package language

import (
	"strings"

	"github.com/abadojack/whatlanggo"

	"github.com/Ben-ecom/Marketpulse-AI-sub007/internal/models"
)

// minDetectionTokens guards against one- and two-word inputs, where
// trigram statistics are meaningless.
const minDetectionTokens = 3

// iso3to2 maps the classifier's internal ISO 639-3 code set onto the
// canonical two-letter codes the rest of the pipeline speaks. Codes
// missing here come out as "unknown".
var iso3to2 = map[string]string{
	"eng": "en",
	"spa": "es",
	"deu": "de",
	"fra": "fr",
	"nld": "nl",
	"ita": "it",
	"por": "pt",
	"rus": "ru",
	"pol": "pl",
	"swe": "sv",
	"dan": "da",
	"nob": "no",
	"fin": "fi",
	"tur": "tr",
	"arb": "ar",
	"cmn": "zh",
	"jpn": "ja",
	"kor": "ko",
	"hin": "hi",
	"ind": "id",
	"vie": "vi",
	"ukr": "uk",
	"ces": "cs",
	"ron": "ro",
	"ell": "el",
	"heb": "he",
	"tha": "th",
}

// Detector identifies the source language of short scraped texts with
// a statistical trigram classifier.
type Detector struct{}

func NewDetector() *Detector {
	return &Detector{}
}

// Detect returns the two-letter language code for text, or the
// "unknown" sentinel when the text is too short, no script is
// recognized, or the detected language has no canonical mapping.
func (d *Detector) Detect(text string) string {
	if len(strings.Fields(text)) < minDetectionTokens {
		return models.LanguageUnknown
	}

	info := whatlanggo.Detect(text)
	if info.Script == nil {
		return models.LanguageUnknown
	}

	code, ok := iso3to2[whatlanggo.LangToString(info.Lang)]
	if !ok {
		return models.LanguageUnknown
	}
	return code
}

package models

import "time"

// AnalysisItem is the input unit for the pipeline: raw text plus
// free-form provenance metadata. Items are immutable once submitted.
type AnalysisItem struct {
	Text       string `json:"text"`
	SourceType string `json:"source_type,omitempty"`
	SourceID   string `json:"source_id,omitempty"`
	RecordID   string `json:"record_id,omitempty"`
}

type LanguageResult struct {
	Language       string `json:"language"`
	TranslatedText string `json:"translated_text,omitempty"`
}

// LanguageUnknown is returned when detection confidence is insufficient.
const LanguageUnknown = "unknown"

type EntityMethod string

const (
	EntityMethodPattern   EntityMethod = "pattern"
	EntityMethodGazetteer EntityMethod = "gazetteer"
	EntityMethodExternal  EntityMethod = "external"
)

type EntityType string

const (
	EntityEmail        EntityType = "EMAIL"
	EntityURL          EntityType = "URL"
	EntityPhone        EntityType = "PHONE"
	EntityIPAddress    EntityType = "IP_ADDRESS"
	EntityMoney        EntityType = "MONEY"
	EntityDate         EntityType = "DATE"
	EntityTime         EntityType = "TIME"
	EntityHashtag      EntityType = "HASHTAG"
	EntityMention      EntityType = "MENTION"
	EntityOrganization EntityType = "ORGANIZATION"
	EntityLocation     EntityType = "LOCATION"
	EntityProduct      EntityType = "PRODUCT"
)

// Entity is a structured span found in the analyzed text. Offsets are
// byte offsets into the text the entity was extracted from, with
// [StartOffset, EndOffset) always inside that text.
type Entity struct {
	Text        string       `json:"text"`
	Type        EntityType   `json:"type"`
	StartOffset int          `json:"start_offset"`
	EndOffset   int          `json:"end_offset"`
	Confidence  float64      `json:"confidence"`
	Method      EntityMethod `json:"method"`
}

type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNegative SentimentLabel = "negative"
	SentimentNeutral  SentimentLabel = "neutral"
)

type IntensityLevel string

const (
	IntensityNeutral  IntensityLevel = "neutral"
	IntensityMild     IntensityLevel = "mild"
	IntensityModerate IntensityLevel = "moderate"
	IntensityStrong   IntensityLevel = "strong"
	IntensityIntense  IntensityLevel = "intense"
)

// EmotionWeight is one entry of a normalized emotion distribution.
type EmotionWeight struct {
	Emotion string  `json:"emotion"`
	Weight  float64 `json:"weight"`
}

type SentimentResult struct {
	Label      SentimentLabel      `json:"label"`
	Intensity  IntensityLevel      `json:"intensity"`
	Score      float64             `json:"score"`
	Confidence float64             `json:"confidence"`
	Emotions   []EmotionWeight     `json:"emotions,omitempty"`
	Aspects    []AspectSentiment   `json:"aspects,omitempty"`
	Sentences  []SentenceSentiment `json:"sentences,omitempty"`
	Domain     string              `json:"domain,omitempty"`
	// VaderScore is the optional secondary compound score from the
	// external VADER capability; nil when the capability is absent or
	// the text is not English.
	VaderScore *float64 `json:"vader_score,omitempty"`
}

type AspectSentiment struct {
	Term          string         `json:"term"`
	Label         SentimentLabel `json:"label"`
	Intensity     IntensityLevel `json:"intensity"`
	Score         float64        `json:"score"`
	Position      int            `json:"position"`
	SentenceIndex int            `json:"sentence_index"`
	RelatedTerms  []string       `json:"related_terms,omitempty"`
}

type SentenceSentiment struct {
	Text        string         `json:"text"`
	Label       SentimentLabel `json:"label"`
	Score       float64        `json:"score"`
	Confidence  float64        `json:"confidence"`
	HasContrast bool           `json:"has_contrast"`
	HasCondition bool          `json:"has_condition"`
	HasEmphasis bool           `json:"has_emphasis"`
}

type TopicScore struct {
	Name     string   `json:"name"`
	Score    float64  `json:"score"`
	Keywords []string `json:"keywords,omitempty"`
	Count    int      `json:"count"`
}

type KeywordScore struct {
	Term  string  `json:"term"`
	Score float64 `json:"score"`
}

type NgramCount struct {
	Phrase    string `json:"phrase"`
	Frequency int    `json:"frequency"`
}

type TopicResult struct {
	Topics   []TopicScore   `json:"topics"`
	Keywords []KeywordScore `json:"keywords,omitempty"`
	Ngrams   []NgramCount   `json:"ngrams,omitempty"`
	Domain   string         `json:"domain,omitempty"`
}

// AnalysisResult aggregates everything the pipeline produced for one
// item. It is created once per item and never mutated afterwards;
// re-analysis produces a new result with a new ID.
// AnalysisRequest is the wire envelope consumed from the analysis
// request topic.
type AnalysisRequest struct {
	BatchID        string         `json:"batch_id"`
	TargetLanguage string         `json:"target_language,omitempty"`
	Domain         string         `json:"domain,omitempty"`
	ExtractTopics  bool           `json:"extract_topics,omitempty"`
	Items          []AnalysisItem `json:"items"`
}

// AnalysisBatchResult is the wire envelope published to the analysis
// results topic.
type AnalysisBatchResult struct {
	BatchID   string           `json:"batch_id"`
	Succeeded int              `json:"succeeded"`
	Failed    int              `json:"failed"`
	Results   []AnalysisResult `json:"results"`
}

type AnalysisResult struct {
	ID             string          `json:"id" dynamodbav:"id"`
	Item           AnalysisItem    `json:"item" dynamodbav:"item"`
	NormalizedText string          `json:"normalized_text" dynamodbav:"normalized_text"`
	Language       LanguageResult  `json:"language" dynamodbav:"language"`
	Entities       []Entity        `json:"entities,omitempty" dynamodbav:"entities,omitempty"`
	Sentiment      SentimentResult `json:"sentiment" dynamodbav:"sentiment"`
	Topics         *TopicResult    `json:"topics,omitempty" dynamodbav:"topics,omitempty"`
	ProcessedAt    time.Time       `json:"processed_at" dynamodbav:"processed_at,unixtime"`
	OptionsUsed    string          `json:"options_used,omitempty" dynamodbav:"options_used,omitempty"`
}

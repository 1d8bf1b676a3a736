package sentiment

// Emotion names follow the Plutchik wheel; weights per term are
// relative and re-normalized per document.
const (
	EmotionJoy          = "joy"
	EmotionTrust        = "trust"
	EmotionFear         = "fear"
	EmotionSurprise     = "surprise"
	EmotionSadness      = "sadness"
	EmotionDisgust      = "disgust"
	EmotionAnger        = "anger"
	EmotionAnticipation = "anticipation"
)

// Entry maps a literal term (single word or fixed multi-word phrase)
// to a polarity score in [-1,1] and optional emotion weights.
type Entry struct {
	Score    float64
	Emotions map[string]float64
}

// Lexicon is an immutable term table, built once and shared read-only
// across concurrent analyses.
type Lexicon map[string]Entry

// maxPhraseTokens bounds the lookahead for multi-word lexicon terms.
const maxPhraseTokens = 2

var englishLexicon = Lexicon{
	"good":          {Score: 0.6, Emotions: map[string]float64{EmotionJoy: 0.5, EmotionTrust: 0.3}},
	"great":         {Score: 0.8, Emotions: map[string]float64{EmotionJoy: 0.7, EmotionTrust: 0.3}},
	"excellent":     {Score: 0.9, Emotions: map[string]float64{EmotionJoy: 0.7, EmotionTrust: 0.5}},
	"amazing":       {Score: 0.9, Emotions: map[string]float64{EmotionJoy: 0.7, EmotionSurprise: 0.5}},
	"awesome":       {Score: 0.85, Emotions: map[string]float64{EmotionJoy: 0.7, EmotionSurprise: 0.4}},
	"fantastic":     {Score: 0.85, Emotions: map[string]float64{EmotionJoy: 0.7, EmotionSurprise: 0.3}},
	"wonderful":     {Score: 0.8, Emotions: map[string]float64{EmotionJoy: 0.8}},
	"perfect":       {Score: 0.9, Emotions: map[string]float64{EmotionJoy: 0.6, EmotionTrust: 0.5}},
	"love":          {Score: 0.8, Emotions: map[string]float64{EmotionJoy: 0.8, EmotionTrust: 0.4}},
	"like":          {Score: 0.4, Emotions: map[string]float64{EmotionJoy: 0.4}},
	"happy":         {Score: 0.7, Emotions: map[string]float64{EmotionJoy: 0.9}},
	"pleased":       {Score: 0.6, Emotions: map[string]float64{EmotionJoy: 0.6, EmotionTrust: 0.2}},
	"satisfied":     {Score: 0.6, Emotions: map[string]float64{EmotionJoy: 0.4, EmotionTrust: 0.5}},
	"recommend":     {Score: 0.7, Emotions: map[string]float64{EmotionTrust: 0.7}},
	"reliable":      {Score: 0.6, Emotions: map[string]float64{EmotionTrust: 0.8}},
	"fast":          {Score: 0.5, Emotions: map[string]float64{EmotionJoy: 0.3, EmotionAnticipation: 0.3}},
	"quick":         {Score: 0.5, Emotions: map[string]float64{EmotionJoy: 0.3, EmotionAnticipation: 0.3}},
	"easy":          {Score: 0.5, Emotions: map[string]float64{EmotionJoy: 0.3, EmotionTrust: 0.3}},
	"helpful":       {Score: 0.6, Emotions: map[string]float64{EmotionTrust: 0.6, EmotionJoy: 0.2}},
	"friendly":      {Score: 0.6, Emotions: map[string]float64{EmotionJoy: 0.5, EmotionTrust: 0.4}},
	"smooth":        {Score: 0.5, Emotions: map[string]float64{EmotionJoy: 0.3, EmotionTrust: 0.3}},
	"impressive":    {Score: 0.7, Emotions: map[string]float64{EmotionSurprise: 0.6, EmotionJoy: 0.3}},
	"beautiful":     {Score: 0.7, Emotions: map[string]float64{EmotionJoy: 0.7}},
	"solid":         {Score: 0.5, Emotions: map[string]float64{EmotionTrust: 0.6}},
	"worth":         {Score: 0.5, Emotions: map[string]float64{EmotionTrust: 0.4, EmotionAnticipation: 0.2}},
	"value":         {Score: 0.4, Emotions: map[string]float64{EmotionTrust: 0.4}},
	"top notch":     {Score: 0.85, Emotions: map[string]float64{EmotionJoy: 0.6, EmotionTrust: 0.4}},
	"well made":     {Score: 0.6, Emotions: map[string]float64{EmotionTrust: 0.6}},
	"works well":    {Score: 0.6, Emotions: map[string]float64{EmotionTrust: 0.5, EmotionJoy: 0.2}},
	"highly recommend": {Score: 0.85, Emotions: map[string]float64{EmotionTrust: 0.8, EmotionJoy: 0.3}},

	"bad":           {Score: -0.6, Emotions: map[string]float64{EmotionSadness: 0.4, EmotionDisgust: 0.3}},
	"terrible":      {Score: -0.9, Emotions: map[string]float64{EmotionDisgust: 0.6, EmotionAnger: 0.4}},
	"horrible":      {Score: -0.9, Emotions: map[string]float64{EmotionDisgust: 0.6, EmotionFear: 0.3}},
	"awful":         {Score: -0.85, Emotions: map[string]float64{EmotionDisgust: 0.7}},
	"worst":         {Score: -0.95, Emotions: map[string]float64{EmotionDisgust: 0.5, EmotionAnger: 0.5}},
	"hate":          {Score: -0.8, Emotions: map[string]float64{EmotionAnger: 0.8, EmotionDisgust: 0.4}},
	"poor":          {Score: -0.6, Emotions: map[string]float64{EmotionSadness: 0.5, EmotionDisgust: 0.2}},
	"disappointing": {Score: -0.7, Emotions: map[string]float64{EmotionSadness: 0.7}},
	"disappointed":  {Score: -0.7, Emotions: map[string]float64{EmotionSadness: 0.8}},
	"useless":       {Score: -0.8, Emotions: map[string]float64{EmotionAnger: 0.5, EmotionDisgust: 0.4}},
	"broken":        {Score: -0.7, Emotions: map[string]float64{EmotionSadness: 0.5, EmotionAnger: 0.4}},
	"slow":          {Score: -0.5, Emotions: map[string]float64{EmotionSadness: 0.3, EmotionAnger: 0.3}},
	"expensive":     {Score: -0.4, Emotions: map[string]float64{EmotionSadness: 0.3}},
	"overpriced":    {Score: -0.6, Emotions: map[string]float64{EmotionAnger: 0.4, EmotionDisgust: 0.3}},
	"cheap":         {Score: -0.3, Emotions: map[string]float64{EmotionDisgust: 0.4}},
	"rude":          {Score: -0.7, Emotions: map[string]float64{EmotionAnger: 0.7, EmotionDisgust: 0.3}},
	"scam":          {Score: -0.9, Emotions: map[string]float64{EmotionAnger: 0.6, EmotionFear: 0.4}},
	"fraud":         {Score: -0.9, Emotions: map[string]float64{EmotionAnger: 0.6, EmotionFear: 0.5}},
	"waste":         {Score: -0.7, Emotions: map[string]float64{EmotionAnger: 0.5, EmotionSadness: 0.3}},
	"annoying":      {Score: -0.6, Emotions: map[string]float64{EmotionAnger: 0.6}},
	"frustrating":   {Score: -0.7, Emotions: map[string]float64{EmotionAnger: 0.7}},
	"defective":     {Score: -0.7, Emotions: map[string]float64{EmotionDisgust: 0.4, EmotionSadness: 0.4}},
	"faulty":        {Score: -0.7, Emotions: map[string]float64{EmotionDisgust: 0.4, EmotionAnger: 0.3}},
	"unreliable":    {Score: -0.6, Emotions: map[string]float64{EmotionFear: 0.4, EmotionSadness: 0.3}},
	"damaged":       {Score: -0.6, Emotions: map[string]float64{EmotionSadness: 0.5, EmotionAnger: 0.3}},
	"worried":       {Score: -0.5, Emotions: map[string]float64{EmotionFear: 0.8}},
	"scared":        {Score: -0.6, Emotions: map[string]float64{EmotionFear: 0.9}},
	"angry":         {Score: -0.7, Emotions: map[string]float64{EmotionAnger: 0.9}},
	"sad":           {Score: -0.6, Emotions: map[string]float64{EmotionSadness: 0.9}},
	"never again":   {Score: -0.8, Emotions: map[string]float64{EmotionAnger: 0.6, EmotionDisgust: 0.4}},
	"fell apart":    {Score: -0.7, Emotions: map[string]float64{EmotionSadness: 0.5, EmotionDisgust: 0.3}},
	"waste of money": {Score: -0.85, Emotions: map[string]float64{EmotionAnger: 0.6, EmotionSadness: 0.3}},
}

var spanishLexicon = Lexicon{
	"bueno":        {Score: 0.6, Emotions: map[string]float64{EmotionJoy: 0.5, EmotionTrust: 0.3}},
	"excelente":    {Score: 0.9, Emotions: map[string]float64{EmotionJoy: 0.7, EmotionTrust: 0.5}},
	"increíble":    {Score: 0.85, Emotions: map[string]float64{EmotionJoy: 0.6, EmotionSurprise: 0.5}},
	"perfecto":     {Score: 0.9, Emotions: map[string]float64{EmotionJoy: 0.6, EmotionTrust: 0.5}},
	"encanta":      {Score: 0.8, Emotions: map[string]float64{EmotionJoy: 0.8}},
	"rápido":       {Score: 0.5, Emotions: map[string]float64{EmotionJoy: 0.3, EmotionAnticipation: 0.3}},
	"recomiendo":   {Score: 0.7, Emotions: map[string]float64{EmotionTrust: 0.7}},
	"contento":     {Score: 0.7, Emotions: map[string]float64{EmotionJoy: 0.8}},
	"fácil":        {Score: 0.5, Emotions: map[string]float64{EmotionJoy: 0.3, EmotionTrust: 0.3}},
	"calidad":      {Score: 0.4, Emotions: map[string]float64{EmotionTrust: 0.5}},
	"malo":         {Score: -0.6, Emotions: map[string]float64{EmotionSadness: 0.4, EmotionDisgust: 0.3}},
	"terrible":     {Score: -0.9, Emotions: map[string]float64{EmotionDisgust: 0.6, EmotionAnger: 0.4}},
	"horrible":     {Score: -0.9, Emotions: map[string]float64{EmotionDisgust: 0.6, EmotionFear: 0.3}},
	"pésimo":       {Score: -0.85, Emotions: map[string]float64{EmotionDisgust: 0.6}},
	"lento":        {Score: -0.5, Emotions: map[string]float64{EmotionSadness: 0.3, EmotionAnger: 0.3}},
	"caro":         {Score: -0.4, Emotions: map[string]float64{EmotionSadness: 0.3}},
	"decepcionado": {Score: -0.7, Emotions: map[string]float64{EmotionSadness: 0.8}},
	"roto":         {Score: -0.7, Emotions: map[string]float64{EmotionSadness: 0.5, EmotionAnger: 0.4}},
	"estafa":       {Score: -0.9, Emotions: map[string]float64{EmotionAnger: 0.6, EmotionFear: 0.4}},
	"odio":         {Score: -0.8, Emotions: map[string]float64{EmotionAnger: 0.8}},
}

var germanLexicon = Lexicon{
	"gut":           {Score: 0.6, Emotions: map[string]float64{EmotionJoy: 0.5, EmotionTrust: 0.3}},
	"sehr gut":      {Score: 0.75, Emotions: map[string]float64{EmotionJoy: 0.6, EmotionTrust: 0.3}},
	"ausgezeichnet": {Score: 0.9, Emotions: map[string]float64{EmotionJoy: 0.7, EmotionTrust: 0.5}},
	"toll":          {Score: 0.7, Emotions: map[string]float64{EmotionJoy: 0.7}},
	"super":         {Score: 0.7, Emotions: map[string]float64{EmotionJoy: 0.6, EmotionSurprise: 0.2}},
	"perfekt":       {Score: 0.9, Emotions: map[string]float64{EmotionJoy: 0.6, EmotionTrust: 0.5}},
	"schnell":       {Score: 0.5, Emotions: map[string]float64{EmotionJoy: 0.3, EmotionAnticipation: 0.3}},
	"empfehlen":     {Score: 0.7, Emotions: map[string]float64{EmotionTrust: 0.7}},
	"zufrieden":     {Score: 0.6, Emotions: map[string]float64{EmotionJoy: 0.4, EmotionTrust: 0.5}},
	"schlecht":      {Score: -0.6, Emotions: map[string]float64{EmotionSadness: 0.4, EmotionDisgust: 0.3}},
	"furchtbar":     {Score: -0.85, Emotions: map[string]float64{EmotionDisgust: 0.6, EmotionFear: 0.3}},
	"schrecklich":   {Score: -0.85, Emotions: map[string]float64{EmotionDisgust: 0.5, EmotionFear: 0.4}},
	"langsam":       {Score: -0.5, Emotions: map[string]float64{EmotionSadness: 0.3, EmotionAnger: 0.3}},
	"teuer":         {Score: -0.4, Emotions: map[string]float64{EmotionSadness: 0.3}},
	"enttäuscht":    {Score: -0.7, Emotions: map[string]float64{EmotionSadness: 0.8}},
	"kaputt":        {Score: -0.7, Emotions: map[string]float64{EmotionSadness: 0.5, EmotionAnger: 0.4}},
	"betrug":        {Score: -0.9, Emotions: map[string]float64{EmotionAnger: 0.6, EmotionFear: 0.4}},
}

var frenchLexicon = Lexicon{
	"bon":        {Score: 0.6, Emotions: map[string]float64{EmotionJoy: 0.5, EmotionTrust: 0.3}},
	"excellent":  {Score: 0.9, Emotions: map[string]float64{EmotionJoy: 0.7, EmotionTrust: 0.5}},
	"parfait":    {Score: 0.9, Emotions: map[string]float64{EmotionJoy: 0.6, EmotionTrust: 0.5}},
	"génial":     {Score: 0.8, Emotions: map[string]float64{EmotionJoy: 0.7, EmotionSurprise: 0.3}},
	"rapide":     {Score: 0.5, Emotions: map[string]float64{EmotionJoy: 0.3, EmotionAnticipation: 0.3}},
	"recommande": {Score: 0.7, Emotions: map[string]float64{EmotionTrust: 0.7}},
	"content":    {Score: 0.7, Emotions: map[string]float64{EmotionJoy: 0.8}},
	"mauvais":    {Score: -0.6, Emotions: map[string]float64{EmotionSadness: 0.4, EmotionDisgust: 0.3}},
	"terrible":   {Score: -0.9, Emotions: map[string]float64{EmotionDisgust: 0.6, EmotionAnger: 0.4}},
	"horrible":   {Score: -0.9, Emotions: map[string]float64{EmotionDisgust: 0.6, EmotionFear: 0.3}},
	"lent":       {Score: -0.5, Emotions: map[string]float64{EmotionSadness: 0.3, EmotionAnger: 0.3}},
	"cher":       {Score: -0.4, Emotions: map[string]float64{EmotionSadness: 0.3}},
	"déçu":       {Score: -0.7, Emotions: map[string]float64{EmotionSadness: 0.8}},
	"cassé":      {Score: -0.7, Emotions: map[string]float64{EmotionSadness: 0.5, EmotionAnger: 0.4}},
	"arnaque":    {Score: -0.9, Emotions: map[string]float64{EmotionAnger: 0.6, EmotionFear: 0.4}},
}

// baseLexicons by two-letter language code. English doubles as the
// fallback for unknown codes.
var baseLexicons = map[string]Lexicon{
	"en": englishLexicon,
	"es": spanishLexicon,
	"de": germanLexicon,
	"fr": frenchLexicon,
}

const defaultLanguage = "en"

// merged returns a copy of base with overlay terms taking precedence
// on key collision. Neither input is mutated.
func merged(base, overlay Lexicon) Lexicon {
	out := make(Lexicon, len(base)+len(overlay))
	for term, entry := range base {
		out[term] = entry
	}
	for term, entry := range overlay {
		out[term] = entry
	}
	return out
}

package persona

import "regexp"

// patternGroup is one weighted scoring rule: each regexp match in the
// message contributes weight × matchCount to the mode's score. The tables
// are declarative data so the classifier is a fold over them; weights are
// tuning defaults validated by the scenario tests, not calibrated
// constants.
type patternGroup struct {
	re     *regexp.Regexp
	weight float64
}

// modePatterns holds the ordered pattern groups per mode.
var modePatterns = map[Mode][]patternGroup{
	ModeCoach: {
		{regexp.MustCompile(`\bhow (?:do|can|should) i\b`), 3},
		{regexp.MustCompile(`\bhow to\b`), 2},
		{regexp.MustCompile(`\b(?:advice|guidance|mentor|coach)\b`), 3},
		{regexp.MustCompile(`\b(?:improve|better at|get better|practice|habit)\b`), 2},
		{regexp.MustCompile(`\bshould i\b`), 2},
		{regexp.MustCompile(`\bhelp me\b`), 1},
	},
	ModeEmpathetic: {
		{regexp.MustCompile(`\bi (?:feel|felt|am feeling)\b`), 3},
		{regexp.MustCompile(`\b(?:sad|lonely|alone|depressed|anxious|stressed|worried|overwhelmed|hurt|scared)\b`), 3},
		{regexp.MustCompile(`\b(?:miss|crying|cried|tears)\b`), 2},
		{regexp.MustCompile(`\b(?:hard day|rough day|tough time|struggling)\b`), 2},
		{regexp.MustCompile(`\bno one (?:understands|cares|listens)\b`), 3},
	},
	ModeStrategic: {
		{regexp.MustCompile(`\bstrateg(?:y|ic|ies|ize)\b`), 3},
		{regexp.MustCompile(`\bplan(?:ning|s)?\b`), 2},
		{regexp.MustCompile(`\b(?:business|market|launch(?:ing)?|growth|revenue|career move)\b`), 2},
		{regexp.MustCompile(`\b(?:decide|decision|option|trade-?off|prioritize|priorities)\b`), 2},
		{regexp.MustCompile(`\b(?:roadmap|milestone|long[- ]term)\b`), 2},
	},
	ModeCreative: {
		{regexp.MustCompile(`\bbrainstorm(?:ing)?\b`), 3},
		{regexp.MustCompile(`\b(?:idea|ideas|concept)\b`), 2},
		{regexp.MustCompile(`\b(?:creative|creativity|imagine|invent|design)\b`), 3},
		{regexp.MustCompile(`\b(?:write|story|poem|song|art|draw|paint)\b`), 2},
		{regexp.MustCompile(`\bwhat if\b`), 2},
	},
	ModeRoleplay: {
		{regexp.MustCompile(`\b(?:role-?play|pretend|in character)\b`), 3},
		{regexp.MustCompile(`\bact as\b`), 3},
		{regexp.MustCompile(`\bimagine you(?:'re| are)\b`), 3},
		{regexp.MustCompile(`\blet's play\b`), 2},
		{regexp.MustCompile(`\byou are a\b`), 2},
	},
}

// Keyword lists for the sentiment, urgency, and complexity passes.
var (
	sentimentPositive = []string{"happy", "great", "love", "wonderful", "excited", "amazing", "good", "fantastic", "glad"}
	sentimentNegative = []string{"sad", "angry", "hate", "terrible", "awful", "worried", "anxious", "bad", "alone", "lonely", "upset", "frustrated"}

	urgencyHigh   = []string{"urgent", "emergency", "right now", "immediately", "asap", "crisis", "can't wait"}
	urgencyMedium = []string{"soon", "today", "quickly", "this week", "deadline"}

	complexityWords = []string{"analyze", "complex", "architecture", "system", "trade-off", "tradeoff", "evaluate", "compare", "integrate", "implications"}

	// Recent-context nudges: mentions in the conversation window lean the
	// classification without overriding a clear pattern signal.
	contextStrategic = []string{"strategy", "strategic", "plan", "planning", "roadmap", "goal", "business"}
	contextCreative  = []string{"creative", "idea", "ideas", "brainstorm", "design", "story", "imagine"}
)

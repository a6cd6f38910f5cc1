package persona

import "strings"

// Classification is the full result of evaluating one message: the chosen
// mode plus the intermediate signals, useful for diagnostics and for the
// response generator.
type Classification struct {
	Mode       Mode             `json:"mode"`
	Sentiment  Sentiment        `json:"sentiment"`
	Urgency    Urgency          `json:"urgency"`
	Complexity Complexity       `json:"complexity"`
	Scores     map[Mode]float64 `json:"scores"`
}

// Classify returns the communication mode for a message, optionally
// informed by recent conversation lines.
func Classify(message string, recentContext ...string) Mode {
	return Evaluate(message, recentContext).Mode
}

// Evaluate runs the full classification: pattern scoring per mode,
// sentiment/urgency/complexity passes, score adjustments, and selection
// with the default policy when nothing matched. It is a pure function.
func Evaluate(message string, recentContext []string) Classification {
	lower := strings.ToLower(message)

	scores := make(map[Mode]float64, len(Modes))
	for _, mode := range Modes {
		var s float64
		for _, pg := range modePatterns[mode] {
			if n := len(pg.re.FindAllStringIndex(lower, -1)); n > 0 {
				s += pg.weight * float64(n)
			}
		}
		scores[mode] = s
	}

	sentiment := detectSentiment(lower)
	urgency := detectUrgency(lower)
	complexity := detectComplexity(lower)

	// Adjustments, applied after pattern scoring and before selection.
	if sentiment == SentimentNegative || urgency == UrgencyHigh {
		scores[ModeEmpathetic] += 2
	}
	if sentiment == SentimentPositive && complexity == ComplexityHigh {
		scores[ModeStrategic] += 1
	}
	if strings.Contains(lower, "how to") || strings.Contains(lower, "what should") {
		scores[ModeCoach] += 1
	}
	if strings.Contains(lower, "why") || strings.Contains(lower, "what if") {
		scores[ModeCreative] += 1
	}
	if mentionsAny(recentContext, contextStrategic) {
		scores[ModeStrategic] += 1
	}
	if mentionsAny(recentContext, contextCreative) {
		scores[ModeCreative] += 1
	}

	return Classification{
		Mode:       selectMode(scores, sentiment, urgency, complexity),
		Sentiment:  sentiment,
		Urgency:    urgency,
		Complexity: complexity,
		Scores:     scores,
	}
}

// selectMode picks the mode with the highest final score, iterating in
// the fixed Modes order so ties resolve deterministically. A zero maximum
// means nothing matched, which falls back to the default policy.
func selectMode(scores map[Mode]float64, sentiment Sentiment, urgency Urgency, complexity Complexity) Mode {
	best := Modes[0]
	for _, mode := range Modes[1:] {
		if scores[mode] > scores[best] {
			best = mode
		}
	}

	if scores[best] > 0 {
		return best
	}

	// Default policy: lead with empathy unless the message is clearly a
	// complex ask.
	switch {
	case urgency == UrgencyHigh || sentiment == SentimentNegative:
		return ModeEmpathetic
	case complexity == ComplexityHigh:
		return ModeStrategic
	default:
		return ModeEmpathetic
	}
}

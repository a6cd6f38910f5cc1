// Package persona implements the personality mode classifier: a
// deterministic, data-driven scoring function that maps a message (plus a
// short window of recent conversation) to one of a fixed set of
// communication modes. It performs no I/O and holds no mutable state.
package persona

// Mode is one of the fixed communication modes used to steer response
// generation.
type Mode string

const (
	ModeCoach      Mode = "coach"
	ModeEmpathetic Mode = "empathetic"
	ModeStrategic  Mode = "strategic"
	ModeCreative   Mode = "creative"
	ModeRoleplay   Mode = "roleplay"
)

// Modes lists all modes in evaluation order. The order doubles as the
// deterministic tie-break: the first mode holding the maximum score wins.
var Modes = []Mode{ModeCoach, ModeEmpathetic, ModeStrategic, ModeCreative, ModeRoleplay}

// Style is human-readable guidance consumed by the response generator,
// not by the classifier itself.
type Style struct {
	Tone            string `json:"tone"`
	Vocabulary      string `json:"vocabulary"`
	ResponsePattern string `json:"response_pattern"`
}

// Styles maps each mode to its response-generation guidance.
var Styles = map[Mode]Style{
	ModeCoach: {
		Tone:            "encouraging and direct",
		Vocabulary:      "action-oriented, concrete steps",
		ResponsePattern: "acknowledge, then propose a small next step",
	},
	ModeEmpathetic: {
		Tone:            "warm and validating",
		Vocabulary:      "feeling words, gentle hedges",
		ResponsePattern: "reflect the emotion before anything else",
	},
	ModeStrategic: {
		Tone:            "analytical and structured",
		Vocabulary:      "trade-offs, options, priorities",
		ResponsePattern: "frame the decision, compare paths, recommend one",
	},
	ModeCreative: {
		Tone:            "playful and curious",
		Vocabulary:      "imagery, open questions",
		ResponsePattern: "riff on the idea, offer unexpected angles",
	},
	ModeRoleplay: {
		Tone:            "in-character and committed",
		Vocabulary:      "scene-setting, second person",
		ResponsePattern: "stay in the fiction, advance the scene",
	},
}

// StyleFor returns the style metadata for a mode, falling back to the
// empathetic style for unknown values.
func StyleFor(m Mode) Style {
	if s, ok := Styles[m]; ok {
		return s
	}
	return Styles[ModeEmpathetic]
}

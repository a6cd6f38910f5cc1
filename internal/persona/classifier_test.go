package persona_test

import (
	"reflect"
	"testing"

	"github.com/mnemo-chat/mnemo/internal/persona"
)

func TestClassify_PatternDriven(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		message string
		want    persona.Mode
	}{
		{"planning language", "I need a strategy to plan my business launch", persona.ModeStrategic},
		{"emotional disclosure", "I feel so sad and alone today", persona.ModeEmpathetic},
		{"idea generation", "let's brainstorm some creative ideas for a story", persona.ModeCreative},
		{"self improvement ask", "how can I get better at public speaking", persona.ModeCoach},
		{"scene setup", "let's play pretend, you are a pirate captain", persona.ModeRoleplay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := persona.Classify(tt.message); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestEvaluate_Signals(t *testing.T) {
	t.Parallel()

	c := persona.Evaluate("I feel so sad and alone today", nil)
	if c.Sentiment != persona.SentimentNegative {
		t.Errorf("sentiment = %q, want negative", c.Sentiment)
	}
	if c.Mode != persona.ModeEmpathetic {
		t.Errorf("mode = %q, want empathetic", c.Mode)
	}

	c = persona.Evaluate("I need help right now, this is urgent", nil)
	if c.Urgency != persona.UrgencyHigh {
		t.Errorf("urgency = %q, want high", c.Urgency)
	}
	if c.Mode != persona.ModeEmpathetic {
		t.Errorf("urgent message: mode = %q, want empathetic", c.Mode)
	}

	c = persona.Evaluate("I'm excited to analyze the system architecture with you", nil)
	if c.Sentiment != persona.SentimentPositive {
		t.Errorf("sentiment = %q, want positive", c.Sentiment)
	}
	if c.Complexity != persona.ComplexityHigh {
		t.Errorf("complexity = %q, want high", c.Complexity)
	}
	if c.Mode != persona.ModeStrategic {
		t.Errorf("positive complex message: mode = %q, want strategic", c.Mode)
	}
}

func TestEvaluate_DefaultPolicy(t *testing.T) {
	t.Parallel()

	// Nothing matches and no signal fires: empathy is the resting state.
	if got := persona.Classify("hello there"); got != persona.ModeEmpathetic {
		t.Errorf("neutral greeting: mode = %q, want empathetic", got)
	}

	// No pattern hits but the message reads complex.
	c := persona.Evaluate("the system has many interconnected components to evaluate", nil)
	if c.Complexity != persona.ComplexityHigh {
		t.Fatalf("complexity = %q, want high", c.Complexity)
	}
	if c.Mode != persona.ModeStrategic {
		t.Errorf("complex unmatched message: mode = %q, want strategic", c.Mode)
	}
}

func TestEvaluate_ContextNudge(t *testing.T) {
	t.Parallel()

	msg := "what do you think about that"

	got := persona.Classify(msg, "we were planning our product roadmap")
	if got != persona.ModeStrategic {
		t.Errorf("strategic context: mode = %q, want strategic", got)
	}

	got = persona.Classify(msg, "loved your story idea from yesterday")
	if got != persona.ModeCreative {
		t.Errorf("creative context: mode = %q, want creative", got)
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	t.Parallel()

	msg := "how should I plan my week, I feel a bit stressed"
	ctx := []string{"talked about the roadmap", "mentioned a poem"}

	first := persona.Evaluate(msg, ctx)
	for i := 0; i < 5; i++ {
		if got := persona.Evaluate(msg, ctx); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d diverged: %+v vs %+v", i, got, first)
		}
	}
}

func TestStyleFor(t *testing.T) {
	t.Parallel()

	if s := persona.StyleFor(persona.ModeCoach); s.Tone == "" {
		t.Error("coach style missing tone")
	}
	if s := persona.StyleFor(persona.Mode("bogus")); !reflect.DeepEqual(s, persona.Styles[persona.ModeEmpathetic]) {
		t.Error("unknown mode should fall back to the empathetic style")
	}
}

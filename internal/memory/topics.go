package memory

import (
	"slices"
	"strings"
)

// topicKeywords maps each topic to the keywords that signal it. Matching is
// case-insensitive substring matching against the utterance, so "working"
// counts toward "work". The lists are tuning defaults, validated by the
// scenario tests rather than derived from any corpus.
var topicKeywords = map[string][]string{
	"relationship": {"friend", "partner", "boyfriend", "girlfriend", "relationship", "date", "dating", "love", "marriage"},
	"work":         {"work", "job", "career", "boss", "office", "colleague", "meeting", "project", "deadline"},
	"family":       {"family", "mother", "father", "mom", "dad", "sister", "brother", "parents", "grandma", "grandpa"},
	"technology":   {"computer", "software", "phone", "app", "internet", "code", "program", "tech", "ai"},
	"emotions":     {"happy", "sad", "angry", "excited", "worried", "anxious", "feel", "feeling", "mood"},
	"goals":        {"goal", "dream", "plan", "future", "hope", "want to", "wish", "ambition", "aspire"},
	"health":       {"health", "doctor", "exercise", "sleep", "tired", "sick", "gym", "diet", "workout"},
	"creative":     {"music", "art", "write", "writing", "draw", "paint", "create", "song", "story"},
}

// positiveWords and negativeWords drive emotional tone derivation. The
// majority count wins; ties resolve to neutral.
var (
	positiveWords = []string{"happy", "great", "love", "wonderful", "excited", "amazing", "good", "joy", "fantastic", "glad", "fun", "proud"}
	negativeWords = []string{"sad", "angry", "hate", "terrible", "awful", "worried", "anxious", "bad", "alone", "lonely", "upset", "frustrated", "hurt", "scared"}
)

// DeriveTopics returns the sorted set of topics whose keywords appear in
// content. Computed once at ingestion.
func DeriveTopics(content string) []string {
	lower := strings.ToLower(content)
	var topics []string
	for topic, keywords := range topicKeywords {
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				topics = append(topics, topic)
				break
			}
		}
	}
	slices.Sort(topics)
	return topics
}

// DeriveTone classifies content as positive, negative, or neutral by
// counting keyword occurrences from the fixed word lists. Computed once at
// ingestion.
func DeriveTone(content string) Tone {
	lower := strings.ToLower(content)

	var pos, neg int
	for _, w := range positiveWords {
		pos += strings.Count(lower, w)
	}
	for _, w := range negativeWords {
		neg += strings.Count(lower, w)
	}

	switch {
	case pos > neg:
		return TonePositive
	case neg > pos:
		return ToneNegative
	default:
		return ToneNeutral
	}
}

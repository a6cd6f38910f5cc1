package persona

import "strings"

// Sentiment is the coarse emotional polarity of a message.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Urgency is how time-pressed the message reads.
type Urgency string

const (
	UrgencyHigh   Urgency = "high"
	UrgencyMedium Urgency = "medium"
	UrgencyLow    Urgency = "low"
)

// Complexity is a rough measure of how involved the message is.
type Complexity string

const (
	ComplexityHigh   Complexity = "high"
	ComplexityMedium Complexity = "medium"
	ComplexityLow    Complexity = "low"
)

// detectSentiment counts fixed positive and negative keywords; the larger
// count wins and ties are neutral. Operates on a lower-cased message.
func detectSentiment(lower string) Sentiment {
	var pos, neg int
	for _, w := range sentimentPositive {
		pos += strings.Count(lower, w)
	}
	for _, w := range sentimentNegative {
		neg += strings.Count(lower, w)
	}
	switch {
	case pos > neg:
		return SentimentPositive
	case neg > pos:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

// detectUrgency returns high when any high-urgency keyword appears,
// medium for medium keywords, low otherwise.
func detectUrgency(lower string) Urgency {
	for _, w := range urgencyHigh {
		if strings.Contains(lower, w) {
			return UrgencyHigh
		}
	}
	for _, w := range urgencyMedium {
		if strings.Contains(lower, w) {
			return UrgencyMedium
		}
	}
	return UrgencyLow
}

// detectComplexity combines complex-keyword hits with message length:
// two keywords or more than 50 words is high, one keyword or more than
// 20 words is medium.
func detectComplexity(lower string) Complexity {
	var hits int
	for _, w := range complexityWords {
		if strings.Contains(lower, w) {
			hits++
		}
	}
	words := len(strings.Fields(lower))

	switch {
	case hits >= 2 || words > 50:
		return ComplexityHigh
	case hits >= 1 || words > 20:
		return ComplexityMedium
	default:
		return ComplexityLow
	}
}

// mentionsAny reports whether any of the context lines contains one of
// the given terms.
func mentionsAny(lines []string, terms []string) bool {
	for _, line := range lines {
		lower := strings.ToLower(line)
		for _, term := range terms {
			if strings.Contains(lower, term) {
				return true
			}
		}
	}
	return false
}

package engine

import "strings"

// Sentiment is a per-message heuristic classification. It steers phrasing
// and the emergency flag on submissions; it is not an affect model.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// The word lists deliberately overlap with other vocabularies ("sick" is
// both a leave type and a negative cue); the heuristics stay independent.
var positiveWords = []string{
	"thank", "thanks", "great", "good", "excellent", "awesome",
	"perfect", "wonderful", "amazing", "helpful", "please",
}

var negativeWords = []string{
	"urgent", "emergency", "sick", "problem", "issue", "error",
	"wrong", "bad", "terrible", "frustrated", "angry", "upset",
}

// AnalyzeSentiment counts which list words appear in the lower-cased message
// and returns whichever polarity has more hits, neutral on a tie.
func AnalyzeSentiment(message string) Sentiment {
	lower := strings.ToLower(message)

	var positive, negative int
	for _, word := range positiveWords {
		if strings.Contains(lower, word) {
			positive++
		}
	}
	for _, word := range negativeWords {
		if strings.Contains(lower, word) {
			negative++
		}
	}

	switch {
	case positive > negative:
		return SentimentPositive
	case negative > positive:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

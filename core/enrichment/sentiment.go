// ABOUTME: Keyword sentiment analysis used to turn forum posts into rated reviews
// ABOUTME: Also decides whether a post is relevant to a given product

package enrichment

import (
	"regexp"
	"strings"
)

var positiveWords = []string{
	"good", "great", "excellent", "amazing", "awesome", "fantastic",
	"love", "best", "perfect", "recommend", "worth", "happy", "satisfied",
	"quality", "reliable", "durable", "impressive", "solid", "nice",
}

var negativeWords = []string{
	"bad", "poor", "terrible", "awful", "horrible", "worst",
	"hate", "disappointing", "disappointed", "waste", "regret", "unhappy",
	"cheap", "unreliable", "break", "broke", "issue", "problem", "defective",
	"return", "fail", "failure", "avoid",
}

var (
	positivePatterns = compileWordPatterns(positiveWords)
	negativePatterns = compileWordPatterns(negativeWords)
)

func compileWordPatterns(words []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(words))
	for i, w := range words {
		patterns[i] = regexp.MustCompile(`\b` + w + `\b`)
	}
	return patterns
}

// Sentiment scores text on a -1 to 1 scale from keyword counts and derives a
// 1-5 star rating. Text with no sentiment keywords is neutral and rates 3.
func Sentiment(text string) (score, rating float64) {
	textLower := strings.ToLower(text)

	var positive, negative int
	for _, p := range positivePatterns {
		if p.MatchString(textLower) {
			positive++
		}
	}
	for _, p := range negativePatterns {
		if p.MatchString(textLower) {
			negative++
		}
	}

	total := positive + negative
	if total > 0 {
		score = float64(positive-negative) / float64(total)
	}

	rating = 3 + score*2
	if rating < 1 {
		rating = 1
	}
	if rating > 5 {
		rating = 5
	}
	return score, rating
}

// Relevant reports whether text mentions the product, either the full name as
// a substring or at least two words of a multi-word name.
func Relevant(text, productName string) bool {
	textLower := strings.ToLower(text)
	nameLower := strings.ToLower(productName)

	if strings.Contains(textLower, nameLower) {
		return true
	}

	parts := strings.Fields(nameLower)
	if len(parts) > 1 {
		matches := 0
		for _, part := range parts {
			if strings.Contains(textLower, part) {
				matches++
			}
		}
		if matches >= 2 {
			return true
		}
	}

	return false
}

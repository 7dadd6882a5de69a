package validation

import (
	"math"
	"strings"
	"unicode/utf16"
)

// Feedback messages, highest band first.
const (
	FeedbackExcellent = "Excellent work! Your DAX covers all the key patterns perfectly."
	FeedbackGood      = "Good job! Your DAX hits most of the important patterns. Review the missing items below."
	FeedbackOnTrack   = "You're on the right track. Check the hints and try to include the missing patterns."
	FeedbackKeepGoing = "Keep going! Review the lesson and hints, then try incorporating the expected patterns."
)

// Lower bounds of the feedback bands.
const (
	excellentScore = 90
	goodScore      = 70
	onTrackScore   = 40
)

// keywordSeparators are treated as whitespace when splitting a solution
// into keywords, so comments and line breaks never glue tokens together.
var keywordSeparators = strings.NewReplacer("#", " ", "\n", " ", "\r", " ", "/", " ")

// round rounds half up. Sub-scores are never negative, so this agrees with
// rounding half away from zero on every input the engine produces.
func round(x float64) int {
	return int(math.Floor(x + 0.5))
}

// percent returns part/total as a rounded percentage, or 0 when total is 0.
func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return round(float64(part) / float64(total) * 100)
}

// extractKeywords splits the solution into tokens and keeps those with at
// least minLength UTF-16 code units, so a character outside the BMP counts twice. Duplicates are kept; each occurrence counts.
func extractKeywords(solution string, minLength int) []string {
	fields := strings.Fields(keywordSeparators.Replace(solution))
	keywords := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(utf16.Encode([]rune(f))) >= minLength {
			keywords = append(keywords, f)
		}
	}
	return keywords
}

// keywordSimilarity returns the percentage of solution keywords found in
// the submission. lowerSubmission must already be lowercased.
func keywordSimilarity(lowerSubmission, solution string, minLength int) int {
	keywords := extractKeywords(solution, minLength)
	matched := 0
	for _, kw := range keywords {
		if strings.Contains(lowerSubmission, strings.ToLower(kw)) {
			matched++
		}
	}
	return percent(matched, len(keywords))
}

// ruleScore returns the percentage of passing rules, 0 for an empty ruleset.
func ruleScore(details []RuleDetail) int {
	passed := 0
	for _, d := range details {
		if d.Passed {
			passed++
		}
	}
	return percent(passed, len(details))
}

// blendScore combines the sub-scores into the overall score.
func blendScore(rules, similarity int, params *Params) int {
	if similarity > 100 {
		similarity = 100
	}
	score := round(float64(rules)*params.RuleWeight + float64(similarity)*params.SimilarityWeight)
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// feedbackFor picks the message for a score.
func feedbackFor(score int) string {
	switch {
	case score >= excellentScore:
		return FeedbackExcellent
	case score >= goodScore:
		return FeedbackGood
	case score >= onTrackScore:
		return FeedbackOnTrack
	default:
		return FeedbackKeepGoing
	}
}

// improvementsFor lists a hint for every failed rule, in rule order.
func improvementsFor(details []RuleDetail) []string {
	improvements := make([]string, 0, len(details))
	for _, d := range details {
		if !d.Passed {
			improvements = append(improvements, "Missing pattern: "+d.Pattern)
		}
	}
	return improvements
}

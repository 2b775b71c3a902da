package talk

import (
	"fmt"
	"strings"
)

// includeThreshold is the minimum average rating for a rated talk to stay
// in the generated feed. Strictly greater than: an average of exactly 2.0
// is excluded.
const includeThreshold = 2.0

// AverageRating returns the arithmetic mean over all rated entries. The
// second return is false when no entry carries a rating.
func AverageRating(feedback []Feedback) (float64, bool) {
	sum, count := 0, 0
	for _, f := range feedback {
		if f.Rated() {
			sum += *f.Rating
			count++
		}
	}

	if count == 0 {
		return 0, false
	}

	return float64(sum) / float64(count), true
}

// RatedCount returns the number of entries that carry a rating.
func RatedCount(feedback []Feedback) int {
	count := 0
	for _, f := range feedback {
		if f.Rated() {
			count++
		}
	}

	return count
}

// ShouldInclude decides whether a talk belongs in the generated feed.
// Talks without any rated feedback always stay: absence of opinion is not
// low quality.
func ShouldInclude(record Record, includeAll bool) bool {
	if includeAll {
		return true
	}

	avg, ok := AverageRating(record.Feedback)
	if !ok {
		return true
	}

	return avg > includeThreshold
}

// FormatStars renders a rating as a run of star characters. Out-of-range
// ratings render as nothing.
func FormatStars(rating int) string {
	if rating < 1 || rating > 5 {
		return ""
	}

	return strings.Repeat("⭐", rating)
}

// FormatFeedbackLine renders a single rated entry, e.g.
// "⭐⭐⭐⭐⭐ (5/5) - max: Must see talk!". Unrated entries render as
// nothing.
func FormatFeedbackLine(f Feedback) string {
	if !f.Rated() {
		return ""
	}

	ratingText := fmt.Sprintf("%s (%d/5)", FormatStars(*f.Rating), *f.Rating)

	username := strings.TrimSpace(f.Username)
	comment := strings.TrimSpace(f.Comment)

	switch {
	case username != "" && comment != "":
		return fmt.Sprintf("%s - %s: %s", ratingText, username, comment)
	case username != "":
		return fmt.Sprintf("%s - %s", ratingText, username)
	case comment != "":
		return fmt.Sprintf("%s %s", ratingText, comment)
	default:
		return ratingText
	}
}

// FormatFeedbackSection renders the ratings block that precedes a talk's
// description in the feed. Empty when no entry carries a rating.
func FormatFeedbackSection(feedback []Feedback) string {
	rated := make([]Feedback, 0, len(feedback))
	for _, f := range feedback {
		if f.Rated() {
			rated = append(rated, f)
		}
	}

	if len(rated) == 0 {
		return ""
	}

	avg, _ := AverageRating(rated)

	plural := "s"
	if len(rated) == 1 {
		plural = ""
	}

	divider := strings.Repeat("━", 30)

	lines := []string{
		divider,
		fmt.Sprintf("📊 RATINGS (Average: %.1f/5 from %d rating%s)", avg, len(rated), plural),
		"",
	}

	for _, f := range rated {
		if line := FormatFeedbackLine(f); line != "" {
			lines = append(lines, line)
		}
	}

	lines = append(lines, "", divider, "")

	return strings.Join(lines, "\n")
}

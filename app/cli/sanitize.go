package cli

import (
	"fmt"
	"strings"
)

const (
	maxUsernameLength = 50
	maxCommentLength  = 500
)

// SanitizeUsername strips control characters and enforces the length cap.
func SanitizeUsername(username string) (string, error) {
	if username == "" {
		return "", fmt.Errorf("username cannot be empty")
	}

	sanitized := stripControl(username, false)
	sanitized = strings.TrimSpace(sanitized)
	if len(sanitized) > maxUsernameLength {
		sanitized = sanitized[:maxUsernameLength]
	}

	if sanitized == "" {
		return "", fmt.Errorf("username contains only invalid characters")
	}

	return sanitized, nil
}

// SanitizeComment strips control characters except newlines and tabs and
// enforces the length cap. Empty input stays empty.
func SanitizeComment(comment string) string {
	sanitized := stripControl(comment, true)
	sanitized = strings.TrimSpace(sanitized)
	if len(sanitized) > maxCommentLength {
		sanitized = sanitized[:maxCommentLength]
	}

	return sanitized
}

// ValidateRating checks the 1-5 range.
func ValidateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("rating must be an integer between 1 and 5")
	}

	return nil
}

func stripControl(s string, keepWhitespace bool) string {
	return strings.Map(func(r rune) rune {
		if keepWhitespace && (r == '\n' || r == '\t') {
			return r
		}
		if r < 0x20 || r == 0x7f || (r >= 0x80 && r <= 0x9f) {
			return -1
		}
		return r
	}, s)
}

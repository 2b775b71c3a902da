package cli

import (
	"strings"
	"testing"
)

func TestSanitizeUsername(t *testing.T) {
	got, err := SanitizeUsername("  max  ")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if got != "max" {
		t.Errorf("Expected trimmed username, got %q", got)
	}
}

func TestSanitizeUsernameStripsControl(t *testing.T) {
	got, err := SanitizeUsername("ma\x00x\x1b")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if got != "max" {
		t.Errorf("Control characters should be stripped, got %q", got)
	}
}

func TestSanitizeUsernameLength(t *testing.T) {
	got, err := SanitizeUsername(strings.Repeat("a", 80))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(got) != 50 {
		t.Errorf("Expected username capped at 50, got %d", len(got))
	}
}

func TestSanitizeUsernameInvalid(t *testing.T) {
	if _, err := SanitizeUsername(""); err == nil {
		t.Error("Empty username should fail")
	}

	if _, err := SanitizeUsername("\x00\x01"); err == nil {
		t.Error("Control-only username should fail")
	}
}

func TestSanitizeComment(t *testing.T) {
	if got := SanitizeComment("  nice talk  "); got != "nice talk" {
		t.Errorf("Expected trimmed comment, got %q", got)
	}

	if got := SanitizeComment(""); got != "" {
		t.Errorf("Empty comment stays empty, got %q", got)
	}

	// Newlines and tabs survive, other control characters do not
	if got := SanitizeComment("line one\nline\ttwo\x00"); got != "line one\nline\ttwo" {
		t.Errorf("Unexpected comment %q", got)
	}

	if got := SanitizeComment(strings.Repeat("a", 600)); len(got) != 500 {
		t.Errorf("Expected comment capped at 500, got %d", len(got))
	}
}

func TestValidateRating(t *testing.T) {
	for _, valid := range []int{1, 3, 5} {
		if err := ValidateRating(valid); err != nil {
			t.Errorf("Rating %d should be valid: %v", valid, err)
		}
	}

	for _, invalid := range []int{0, 6, -1} {
		if err := ValidateRating(invalid); err == nil {
			t.Errorf("Rating %d should be invalid", invalid)
		}
	}
}

func TestFeedOutputPath(t *testing.T) {
	got := feedOutputPath("feeds", "media/media_38c3.yml")
	if got != "feeds/feed_38c3.xml" {
		t.Errorf("Expected feeds/feed_38c3.xml, got %q", got)
	}
}

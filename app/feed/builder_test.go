package feed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"talkfeed/app/talk"
)

func TestBuilderWritesAndSkips(t *testing.T) {
	builder := NewBuilder(zerolog.Nop())
	outputPath := filepath.Join(t.TempDir(), "feed_38c3.xml")

	written, err := builder.Run(testData(), testChannel(), outputPath, false)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !written {
		t.Fatal("First build should write the file")
	}

	// Second build: same content, only timestamps differ
	written, err = builder.Run(testData(), testChannel(), outputPath, false)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if written {
		t.Error("Unchanged content should skip the write")
	}
}

func TestBuilderDetectsContentChange(t *testing.T) {
	builder := NewBuilder(zerolog.Nop())
	outputPath := filepath.Join(t.TempDir(), "feed_38c3.xml")

	if _, err := builder.Run(testData(), testChannel(), outputPath, false); err != nil {
		t.Fatal(err)
	}

	changed := testData()
	changed.Feed[0].Feedback[0].Rating = intPtr(4)

	written, err := builder.Run(changed, testChannel(), outputPath, false)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !written {
		t.Error("A rating change alters the description and must trigger a write")
	}
}

func TestBuilderRatingFilter(t *testing.T) {
	builder := NewBuilder(zerolog.Nop())
	outputPath := filepath.Join(t.TempDir(), "feed_38c3.xml")

	data := testData()
	data.Feed[0].Feedback = []talk.Feedback{{Rating: intPtr(1)}}

	if _, err := builder.Run(data, testChannel(), outputPath, false); err != nil {
		t.Fatal(err)
	}

	content, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatal(err)
	}

	if strings.Contains(string(content), "Intro to Widgets") {
		t.Error("Low-rated talk should be excluded from the feed")
	}
	if !strings.Contains(string(content), "Quantum Gardening") {
		t.Error("Unrated talk should stay in the feed")
	}
}

func TestBuilderRatingFilterChangesFeed(t *testing.T) {
	builder := NewBuilder(zerolog.Nop())
	outputPath := filepath.Join(t.TempDir(), "feed_38c3.xml")

	if _, err := builder.Run(testData(), testChannel(), outputPath, false); err != nil {
		t.Fatal(err)
	}

	// Dropping the rating from 5 to 1 removes the record entirely
	changed := testData()
	changed.Feed[0].Feedback = []talk.Feedback{{Rating: intPtr(1)}}

	written, err := builder.Run(changed, testChannel(), outputPath, false)
	if err != nil {
		t.Fatal(err)
	}
	if !written {
		t.Error("Filtering out a record must trigger a write")
	}
}

func TestBuilderIncludeAll(t *testing.T) {
	builder := NewBuilder(zerolog.Nop())
	outputPath := filepath.Join(t.TempDir(), "feed_38c3.xml")

	data := testData()
	data.Feed[0].Feedback = []talk.Feedback{{Rating: intPtr(1)}}

	if _, err := builder.Run(data, testChannel(), outputPath, true); err != nil {
		t.Fatal(err)
	}

	content, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(string(content), "Intro to Widgets") {
		t.Error("Include-all must keep low-rated talks")
	}
}

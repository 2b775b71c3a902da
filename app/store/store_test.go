package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"talkfeed/app/talk"
)

func intPtr(v int) *int {
	return &v
}

func testData() *Data {
	return &Data{
		Meta: Meta{
			Title:       "38C3 media feed",
			Description: "A curated feed",
			ImageURL:    "https://static.example.org/logo.png",
		},
		Feed: []talk.Record{
			{
				Title:       "Intro to Widgets",
				Published:   "Mon, 30 Dec 2024 10:00:00 +0000",
				Speakers:    "alice, bob",
				MediaURL:    "https://media.example.org/widgets.mp4",
				MediaType:   "video/mp4",
				MediaLength: 12345,
				WebURL:      "https://events.example.org/talks/101",
				Description: "Everything about widgets",
				Category:    "Technology",
				Feedback: []talk.Feedback{
					{Rating: intPtr(5), Username: "max", Comment: "Must see!"},
				},
			},
		},
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "media_38c3.yml")

	original := testData()
	if err := Save(path, original); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if diff := cmp.Diff(original, loaded); diff != "" {
		t.Errorf("Round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yml")
	if err := os.WriteFile(path, []byte("feed: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "media_38c3.yml")

	if err := Save(path, testData()); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("File should exist after save: %v", err)
	}
}

func TestFeedbackRatingSurvivesRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "media_38c3.yml")

	if err := Save(path, testData()); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	feedback := loaded.Feed[0].Feedback[0]
	if feedback.Rating == nil || *feedback.Rating != 5 {
		t.Errorf("Rating should survive round trip, got %v", feedback.Rating)
	}
}

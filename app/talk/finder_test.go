package talk

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"talkfeed/app/media"
	"talkfeed/app/schedule"
)

func testFinder(opts FinderOptions) *Finder {
	return NewFinder(CategoryMapping{}, opts, zerolog.Nop())
}

func testEvents() []schedule.Event {
	return []schedule.Event{
		{
			ID:          "101",
			Title:       "Quantum Gardening",
			Track:       "Science",
			Description: "Long description about gardening",
			URL:         "https://events.example.org/talks/101",
			Persons:     []string{"alice"},
		},
		{
			ID:          "202",
			Title:       "Intro to Widgets",
			Subtitle:    "A Deep Dive",
			Track:       "Security",
			Description: "Long widget description",
			Persons:     []string{"bob", "carol"},
		},
	}
}

func testItems() []media.Item {
	return []media.Item{
		{
			Title:           "INTRO TO WIDGETS (38c3)",
			Published:       "Mon, 30 Dec 2024 10:00:00 +0000",
			Description:     "Short widget description",
			EnclosureURL:    "https://media.example.org/widgets.mp4",
			EnclosureLength: 12345,
			EnclosureType:   "video/mp4",
		},
	}
}

func TestFinderRun(t *testing.T) {
	finder := testFinder(FinderOptions{
		URLPatternHead: "https://events.example.org/talks/",
		URLPatternTail: ".html",
	})

	record, err := finder.Run("widgets", testEvents(), testItems())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if record.Title != "Intro to Widgets" {
		t.Errorf("Expected schedule title, got %q", record.Title)
	}
	if record.Speakers != "bob, carol" {
		t.Errorf("Expected joined speakers, got %q", record.Speakers)
	}
	if record.MediaURL != "https://media.example.org/widgets.mp4" {
		t.Errorf("Unexpected media URL %q", record.MediaURL)
	}
	if record.MediaLength != 12345 {
		t.Errorf("Unexpected media length %d", record.MediaLength)
	}
	if record.Published != "Mon, 30 Dec 2024 10:00:00 +0000" {
		t.Errorf("Published should be carried verbatim, got %q", record.Published)
	}
	if record.Description != "Short widget description" {
		t.Errorf("Expected media description by default, got %q", record.Description)
	}
	if record.Category != "Technology" {
		t.Errorf("Empty mapping should fall back to Technology, got %q", record.Category)
	}
	// No embedded URL on this event, pattern applies
	if record.WebURL != "https://events.example.org/talks/202.html" {
		t.Errorf("Expected synthesized web URL, got %q", record.WebURL)
	}
}

func TestFinderRunQueryIsCaseInsensitive(t *testing.T) {
	finder := testFinder(FinderOptions{})

	if _, err := finder.Run("WIDGETS", testEvents(), testItems()); err != nil {
		t.Errorf("Uppercase query should match, got: %v", err)
	}

	if _, err := finder.Run("InTrO", testEvents(), testItems()); err != nil {
		t.Errorf("Mixed-case query should match, got: %v", err)
	}
}

func TestFinderRunLongDescription(t *testing.T) {
	finder := testFinder(FinderOptions{UseLongDescription: true})

	record, err := finder.Run("widgets", testEvents(), testItems())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if record.Description != "Long widget description" {
		t.Errorf("Expected schedule description, got %q", record.Description)
	}
}

func TestFinderRunLongDescriptionEmptyFallsBack(t *testing.T) {
	finder := testFinder(FinderOptions{UseLongDescription: true})

	events := testEvents()
	events[1].Description = ""

	record, err := finder.Run("widgets", events, testItems())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if record.Description != "Short widget description" {
		t.Errorf("Empty long description should fall back to media, got %q", record.Description)
	}
}

func TestFinderRunEmbeddedURLPreferred(t *testing.T) {
	finder := testFinder(FinderOptions{
		URLPatternHead: "https://events.example.org/talks/",
		URLPatternTail: ".html",
	})

	items := []media.Item{{
		Title:         "Quantum Gardening",
		EnclosureURL:  "https://media.example.org/quantum.mp4",
		EnclosureType: "video/mp4",
	}}

	record, err := finder.Run("quantum", testEvents(), items)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if record.WebURL != "https://events.example.org/talks/101" {
		t.Errorf("Embedded URL should win over the pattern, got %q", record.WebURL)
	}
}

func TestFinderRunNoPatternLeavesURLEmpty(t *testing.T) {
	finder := testFinder(FinderOptions{})

	record, err := finder.Run("widgets", testEvents(), testItems())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if record.WebURL != "" {
		t.Errorf("Without pattern or embedded URL, web URL should be empty, got %q", record.WebURL)
	}
}

func TestFinderRunSkipsItemsWithoutEnclosure(t *testing.T) {
	finder := testFinder(FinderOptions{})

	items := []media.Item{
		{Title: "Intro to Widgets"}, // no enclosure
		{
			Title:         "Intro to Widgets",
			EnclosureURL:  "https://media.example.org/widgets-2.mp4",
			EnclosureType: "video/mp4",
		},
	}

	record, err := finder.Run("widgets", testEvents(), items)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if record.MediaURL != "https://media.example.org/widgets-2.mp4" {
		t.Errorf("Expected the second item's enclosure, got %q", record.MediaURL)
	}
}

func TestFinderRunTalkNotFound(t *testing.T) {
	finder := testFinder(FinderOptions{})

	_, err := finder.Run("nonexistent", testEvents(), testItems())
	if !errors.Is(err, ErrTalkNotFound) {
		t.Errorf("Expected ErrTalkNotFound, got: %v", err)
	}
}

func TestFinderRunMediaNotFound(t *testing.T) {
	finder := testFinder(FinderOptions{})

	_, err := finder.Run("quantum", testEvents(), testItems())
	if !errors.Is(err, ErrMediaNotFound) {
		t.Errorf("Expected ErrMediaNotFound, got: %v", err)
	}
}

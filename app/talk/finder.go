package talk

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"talkfeed/app/media"
	"talkfeed/app/schedule"
)

var (
	// ErrTalkNotFound means no schedule entry's title contained the query.
	ErrTalkNotFound = errors.New("no talk matches query")
	// ErrMediaNotFound means a schedule entry matched the query but no
	// recording paired with it.
	ErrMediaNotFound = errors.New("no media entry matches talk")
)

// FinderOptions tune how a found talk's fields are resolved.
type FinderOptions struct {
	// UseLongDescription prefers the schedule's long description over the
	// media feed's short one when it is non-empty.
	UseLongDescription bool
	// URLPatternHead and URLPatternTail synthesize a talk's web URL around
	// its event ID when the schedule does not embed one. Both must be set.
	URLPatternHead string
	URLPatternTail string
}

// Finder pairs schedule entries with media recordings and merges both
// sides into a single talk record.
type Finder struct {
	mapping CategoryMapping
	opts    FinderOptions
	log     zerolog.Logger
}

func NewFinder(mapping CategoryMapping, opts FinderOptions, log zerolog.Logger) *Finder {
	return &Finder{
		mapping: mapping,
		opts:    opts,
		log:     log,
	}
}

// Run searches the schedule for the first entry whose raw title contains
// the query case-insensitively, then pairs it with the first media item
// whose title matches it. Query matching is deliberately looser than the
// cross-source title matching: it is a human search term.
func (f *Finder) Run(query string, events []schedule.Event, items []media.Item) (*Record, error) {
	queryUpper := strings.ToUpper(query)

	for i := range events {
		event := &events[i]
		if !strings.Contains(strings.ToUpper(event.Title), queryUpper) {
			continue
		}

		f.log.Debug().
			Str("title", event.Title).
			Str("event_id", event.ID).
			Msg("schedule candidate found")

		record, err := f.pair(event, items)
		if err != nil {
			return nil, err
		}

		f.log.Info().Str("title", record.Title).Msg("found talk")

		return record, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrTalkNotFound, query)
}

func (f *Finder) pair(event *schedule.Event, items []media.Item) (*Record, error) {
	for _, item := range items {
		if !TitlesMatch(event.Title, item.Title) {
			continue
		}

		if !item.HasEnclosure() {
			f.log.Warn().
				Str("title", item.Title).
				Msg("media entry without enclosure skipped")
			continue
		}

		return f.merge(event, item), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrMediaNotFound, event.Title)
}

func (f *Finder) merge(event *schedule.Event, item media.Item) *Record {
	description := item.Description
	if f.opts.UseLongDescription && event.Description != "" {
		description = event.Description
	}

	categories := MapTrackToCategories(f.mapping, event.Track)

	return &Record{
		Title:       event.Title,
		Published:   item.Published,
		Speakers:    event.Speakers(),
		Subtitle:    event.Subtitle,
		MediaURL:    item.EnclosureURL,
		MediaType:   item.EnclosureType,
		MediaLength: item.EnclosureLength,
		WebURL:      f.resolveWebURL(event),
		Description: description,
		Category:    categories[0],
	}
}

func (f *Finder) resolveWebURL(event *schedule.Event) string {
	if event.URL != "" {
		return event.URL
	}

	if f.opts.URLPatternHead != "" && f.opts.URLPatternTail != "" {
		url := f.opts.URLPatternHead + event.ID + f.opts.URLPatternTail
		f.log.Debug().Str("web_url", url).Msg("constructed web URL from pattern")

		return url
	}

	f.log.Warn().
		Str("event_id", event.ID).
		Msg("no URL in schedule and no URL pattern configured")

	return ""
}

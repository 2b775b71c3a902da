package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"talkfeed/app/cfg"
	"talkfeed/app/config"
	"talkfeed/app/fetcher"
	"talkfeed/app/media"
	"talkfeed/app/schedule"
	"talkfeed/app/store"
)

type NewEventCommand struct {
	CongressNumber int  `short:"c" long:"congress-number" description:"Congress number (derived from the latest configured event if omitted)"`
	NoValidate     bool `long:"no-validate" description:"Skip URL probing"`

	Args struct {
		Year int `positional-arg-name:"year" required:"true" description:"Event year"`
	} `positional-args:"true"`
}

func (c *NewEventCommand) Execute(_ []string) error {
	log := setupLogger("new-event")
	ctx := context.Background()

	conf, err := loadConfig()
	if err != nil {
		return err
	}

	congressNumber := c.CongressNumber
	if congressNumber == 0 {
		congressNumber, err = conf.CongressNumberFor(c.Args.Year)
		if err != nil {
			return fmt.Errorf("%w (provide one with -c)", err)
		}
		fmt.Printf("Auto-calculated congress number: %d\n", congressNumber)
	}

	eventID := fmt.Sprintf("%dc3", congressNumber)

	if _, exists := conf.Events[eventID]; exists {
		return fmt.Errorf("event %q already exists in configuration", eventID)
	}

	// Known schedule URL layouts, newest first
	fahrplanPatterns := []string{
		fmt.Sprintf("https://fahrplan.events.ccc.de/congress/%d/fahrplan/schedules/schedule.xml", c.Args.Year),
		fmt.Sprintf("https://pretalx.c3voc.de/%s/schedule/export/schedule.xml", eventID),
		fmt.Sprintf("https://fahrplan.events.ccc.de/congress/%d/fahrplan/schedule.xml", c.Args.Year),
	}

	mediaFeedURL := fmt.Sprintf("https://media.ccc.de/c/%s/podcast/mp4-hq.xml", eventID)

	db, documents, err := openDocuments(log)
	if err != nil {
		return err
	}
	defer db.Close()

	fetch := fetcher.New(documents, cfg.Get().UserAgent, log, fetcher.WithoutCache())

	fahrplanURL := fahrplanPatterns[0]
	if !c.NoValidate {
		fahrplanURL, err = c.probeSchedule(ctx, fetch, fahrplanPatterns)
		if err != nil {
			return err
		}

		if err := c.probeMediaFeed(ctx, fetch, mediaFeedURL); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			fmt.Fprintln(os.Stderr, "  The podcast feed usually appears once recordings are published.")
		}
	}

	conf.Events[eventID] = &config.Event{
		Year:           c.Args.Year,
		CongressNumber: congressNumber,
		FahrplanURL:    fahrplanURL,
		MediaFeedURL:   mediaFeedURL,
	}

	if err := config.Save(cfg.Get().ConfigPath, conf); err != nil {
		return err
	}

	fmt.Printf("Event %q added to %s\n", eventID, cfg.Get().ConfigPath)

	return c.initializeMediaFile(ctx, fetch, eventID, c.Args.Year)
}

// probeSchedule tries the known URL layouts until one serves a parseable
// schedule that actually contains events.
func (c *NewEventCommand) probeSchedule(ctx context.Context, fetch *fetcher.Fetcher, patterns []string) (string, error) {
	for _, url := range patterns {
		data, err := fetch.Fetch(ctx, url)
		if err != nil {
			fmt.Printf("  %s: %v\n", url, err)
			continue
		}

		doc, err := schedule.NewParser().Run(data)
		if err != nil {
			fmt.Printf("  %s: %v\n", url, err)
			continue
		}

		if len(doc.Events()) == 0 {
			fmt.Printf("  %s: valid XML but no events\n", url)
			continue
		}

		fmt.Printf("fahrplan_url: OK (%d events) %s\n", len(doc.Events()), url)
		return url, nil
	}

	return "", fmt.Errorf("no working schedule URL found for the event")
}

func (c *NewEventCommand) probeMediaFeed(ctx context.Context, fetch *fetcher.Fetcher, url string) error {
	data, err := fetch.Fetch(ctx, url)
	if err != nil {
		return fmt.Errorf("media feed not reachable: %w", err)
	}

	items, err := media.NewParser().Run(data)
	if err != nil {
		return fmt.Errorf("media feed not parseable: %w", err)
	}

	fmt.Printf("media_feed_url: OK (%d items) %s\n", len(items), url)

	return nil
}

// initializeMediaFile creates the event's empty media YAML, probing for
// the congress logo (PNG, as podcast clients reject SVG).
func (c *NewEventCommand) initializeMediaFile(ctx context.Context, fetch *fetcher.Fetcher, eventID string, year int) error {
	path := mediaFilePath(eventID)

	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Media file already exists: %s\n", path)
		return nil
	}

	logoURL := fmt.Sprintf("https://static.media.ccc.de/media/congress/%d/logo.png", year)
	if !fetch.CheckURL(ctx, logoURL) {
		fmt.Fprintf(os.Stderr, "Warning: event logo not found at %s\n", logoURL)
		logoURL = ""
	}

	data := &store.Data{
		Meta: store.Meta{
			Title: fmt.Sprintf("%s media feed", strings.ToUpper(eventID)),
			Description: fmt.Sprintf(
				"A curated feed for different talks of the %s (Chaos Communication Congress %d).",
				strings.ToUpper(eventID), year),
			ImageURL: logoURL,
		},
	}

	if err := store.Save(path, data); err != nil {
		return fmt.Errorf("failed to initialize media file: %w", err)
	}

	fmt.Printf("Created media file: %s\n", path)

	return nil
}

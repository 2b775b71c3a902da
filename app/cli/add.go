package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"talkfeed/app/cfg"
	"talkfeed/app/fetcher"
	"talkfeed/app/media"
	"talkfeed/app/schedule"
	"talkfeed/app/store"
	"talkfeed/app/talk"
)

type AddCommand struct {
	Event       string `short:"e" long:"event" description:"Event name (e.g., 38c3)"`
	Year        int    `short:"y" long:"year" description:"Year of the event"`
	Output      string `short:"o" long:"output" description:"Output media YAML file"`
	LongDesc    bool   `short:"l" long:"long-desc" description:"Use long description from the schedule"`
	Category    string `short:"c" long:"category" description:"Override category (first of a comma-separated list)"`
	ExtractDesc bool   `short:"x" long:"extract-desc" description:"Extract a description from the talk's web page when none is available"`
	NoCache     bool   `long:"no-cache" description:"Bypass the document cache"`

	Args struct {
		Query string `positional-arg-name:"query" required:"true" description:"Search term matched against talk titles"`
	} `positional-args:"true"`
}

func (c *AddCommand) Execute(_ []string) error {
	log := setupLogger("add")
	ctx := context.Background()

	conf, err := loadConfig()
	if err != nil {
		return err
	}

	eventKey, event, err := resolveEvent(conf, c.Event, c.Year)
	if err != nil {
		return err
	}

	db, documents, err := openDocuments(log)
	if err != nil {
		return err
	}
	defer db.Close()

	var opts []fetcher.Option
	if c.NoCache {
		opts = append(opts, fetcher.WithoutCache())
	}
	fetch := fetcher.New(documents, cfg.Get().UserAgent, log, opts...)

	scheduleData, err := fetch.Fetch(ctx, event.FahrplanURL)
	if err != nil {
		return fmt.Errorf("failed to fetch schedule: %w", err)
	}

	mediaData, err := fetch.Fetch(ctx, event.MediaFeedURL)
	if err != nil {
		return fmt.Errorf("failed to fetch media feed: %w", err)
	}

	scheduleDoc, err := schedule.NewParser().Run(scheduleData)
	if err != nil {
		return err
	}

	items, err := media.NewParser().Run(mediaData)
	if err != nil {
		return err
	}

	finder := talk.NewFinder(conf.Global.CategoryMapping, talk.FinderOptions{
		UseLongDescription: c.LongDesc,
		URLPatternHead:     event.EventPatternHead,
		URLPatternTail:     event.EventPatternTail,
	}, log)

	record, err := finder.Run(c.Args.Query, scheduleDoc.Events(), items)
	if err != nil {
		if errors.Is(err, talk.ErrTalkNotFound) || errors.Is(err, talk.ErrMediaNotFound) {
			fmt.Fprintf(os.Stderr, "No matching talk found for %q in %s (Congress #%d, %d)\n",
				c.Args.Query, strings.ToUpper(eventKey), event.CongressNumber, event.Year)
			fmt.Fprintf(os.Stderr, "  Tip: try a shorter or more specific search term, or check %s\n",
				event.FahrplanURL)
		}
		return err
	}

	if c.Category != "" {
		parts := strings.Split(c.Category, ",")
		record.Category = strings.TrimSpace(parts[0])
	}

	if record.Description == "" && c.ExtractDesc && record.WebURL != "" {
		if desc := c.extractDescription(ctx, fetch, record.WebURL); desc != "" {
			record.Description = desc
		}
	}

	fmt.Println("\nFound talk:")
	fmt.Printf("  Title:    %s\n", record.Title)
	fmt.Printf("  Speakers: %s\n", record.Speakers)
	fmt.Printf("  Category: %s\n", record.Category)

	prompt := newPrompter()
	fmt.Println("\n" + strings.Repeat("━", 50))
	if prompt.confirm("Would you like to rate this talk?") {
		username := prompt.ask("Username (optional, Enter to skip)")
		if feedback := prompt.promptForFeedback(username); feedback != nil {
			record.Feedback = []talk.Feedback{*feedback}
			fmt.Println("Rating saved")
		}
	}

	outputFile := c.Output
	if outputFile == "" {
		outputFile = mediaFilePath(eventKey)
	}

	data, err := store.Load(outputFile)
	if err != nil {
		return fmt.Errorf("media file not found, run new-event first: %w", err)
	}

	// Newest entries first
	data.Feed = append([]talk.Record{*record}, data.Feed...)

	if err := store.Save(outputFile, data); err != nil {
		return err
	}

	fmt.Printf("\nAdded entry to %s\n", outputFile)

	return nil
}

func (c *AddCommand) extractDescription(ctx context.Context, fetch *fetcher.Fetcher, url string) string {
	page, err := fetch.Fetch(ctx, url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not fetch talk page: %v\n", err)
		return ""
	}

	text, err := media.NewContentExtractor().Run(page)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not extract description: %v\n", err)
		return ""
	}

	return text
}

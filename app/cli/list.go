package cli

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"talkfeed/app/cfg"
	"talkfeed/app/store"
	"talkfeed/app/talk"
)

type ListCommand struct {
	Event     string  `short:"e" long:"event" description:"Filter by event (e.g., 38c3 or a media file path)"`
	MinRating float64 `short:"m" long:"min-rating" description:"Minimum average rating"`
	Category  string  `short:"c" long:"category" description:"Filter by category"`
}

type ratedTalk struct {
	title    string
	event    string
	category string
	average  float64
	count    int
}

func (c *ListCommand) Execute(_ []string) error {
	setupLogger("list")

	files, err := c.resolveFiles()
	if err != nil {
		return err
	}

	var talks []ratedTalk

	for _, file := range files {
		data, err := store.Load(file)
		if err != nil {
			fmt.Printf("Failed to load %s: %v\n", file, err)
			continue
		}

		eventName := strings.ToUpper(strings.TrimSuffix(
			strings.TrimPrefix(filepath.Base(file), "media_"), filepath.Ext(file)))

		for _, record := range data.Feed {
			avg, ok := talk.AverageRating(record.Feedback)
			if !ok {
				continue
			}

			if c.MinRating > 0 && avg < c.MinRating {
				continue
			}

			if c.Category != "" && !strings.EqualFold(record.Category, c.Category) {
				continue
			}

			talks = append(talks, ratedTalk{
				title:    record.Title,
				event:    eventName,
				category: record.Category,
				average:  avg,
				count:    talk.RatedCount(record.Feedback),
			})
		}
	}

	if len(talks) == 0 {
		fmt.Println("No rated talks found.")
		return nil
	}

	sort.SliceStable(talks, func(i, j int) bool {
		return talks[i].average > talks[j].average
	})

	fmt.Println(renderTable(talks))
	fmt.Printf("\nTotal: %d rated talk(s)\n", len(talks))

	return nil
}

func (c *ListCommand) resolveFiles() ([]string, error) {
	if c.Event != "" {
		if strings.ContainsRune(c.Event, '/') || strings.HasSuffix(c.Event, ".yml") {
			return []string{c.Event}, nil
		}
		return []string{mediaFilePath(c.Event)}, nil
	}

	files, err := filepath.Glob(filepath.Join(cfg.Get().MediaDir, "media_*.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list media files: %w", err)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no media files found in %s", cfg.Get().MediaDir)
	}

	return files, nil
}

func renderTable(talks []ratedTalk) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	tw.AppendHeader(table.Row{"Rating", "Title", "Category", "Event", "# Ratings"})

	for _, t := range talks {
		tw.AppendRow(table.Row{
			fmt.Sprintf("%.1f/5", t.average),
			t.title,
			t.category,
			t.event,
			t.count,
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, WidthMax: 40},
		{Number: 5, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}

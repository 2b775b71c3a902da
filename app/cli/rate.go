package cli

import (
	"fmt"
	"strings"

	"talkfeed/app/store"
)

type RateCommand struct {
	Args struct {
		File string `positional-arg-name:"file" required:"true" description:"Media YAML file to rate"`
	} `positional-args:"true"`
}

func (c *RateCommand) Execute(_ []string) error {
	setupLogger("rate")

	data, err := store.Load(c.Args.File)
	if err != nil {
		return err
	}

	if len(data.Feed) == 0 {
		return fmt.Errorf("no feed items found in %s", c.Args.File)
	}

	divider := strings.Repeat("━", 50)

	fmt.Println("\nInteractive Rating Mode")
	fmt.Println(divider)

	prompt := newPrompter()
	username := prompt.ask("Username (optional, Enter to skip)")
	if username != "" {
		fmt.Printf("\nRating as: %s\n\n", username)
	} else {
		fmt.Print("\nRating anonymously\n\n")
	}

	rated, skipped := 0, 0

	for i := range data.Feed {
		record := &data.Feed[i]

		fmt.Println(divider)
		fmt.Printf("\n%s (%d/%d)\n", record.Title, i+1, len(data.Feed))
		if record.Speakers != "" {
			fmt.Printf("   Speakers: %s\n", record.Speakers)
		}
		fmt.Println()

		feedback := prompt.promptForFeedback(username)
		if feedback == nil {
			fmt.Println("Skipped")
			skipped++
			continue
		}

		record.Feedback = append(record.Feedback, *feedback)
		fmt.Println("Saved")
		rated++
	}

	if err := store.Save(c.Args.File, data); err != nil {
		return err
	}

	fmt.Println("\n" + divider)
	fmt.Println("\nRating complete!")
	fmt.Printf("   Rated:   %d\n", rated)
	fmt.Printf("   Skipped: %d\n", skipped)
	fmt.Printf("\nSaved to: %s\n", c.Args.File)

	return nil
}

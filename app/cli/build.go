package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"talkfeed/app/cfg"
	"talkfeed/app/config"
	"talkfeed/app/feed"
	"talkfeed/app/store"
)

type BuildCommand struct {
	All        bool   `short:"a" long:"all" description:"Build all media YAML files"`
	OutputDir  string `short:"o" long:"output-dir" default:"feeds" description:"Output directory"`
	AllRatings bool   `long:"all-ratings" description:"Include all talks regardless of rating"`

	Args struct {
		Files []string `positional-arg-name:"files" description:"Media YAML files to build"`
	} `positional-args:"true"`
}

func (c *BuildCommand) Execute(_ []string) error {
	log := setupLogger("build")

	conf, err := loadConfig()
	if err != nil {
		return err
	}

	files := c.Args.Files
	if c.All {
		files, err = filepath.Glob(filepath.Join(cfg.Get().MediaDir, "media_*.yml"))
		if err != nil {
			return fmt.Errorf("failed to list media files: %w", err)
		}
	}

	if len(files) == 0 {
		return fmt.Errorf("no files to build, use --all or specify files")
	}

	builder := feed.NewBuilder(log)
	failures := 0

	for _, file := range files {
		if err := c.buildOne(builder, conf.Global, file); err != nil {
			fmt.Fprintf(os.Stderr, "Failed %s: %v\n", file, err)
			failures++
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d files failed", failures, len(files))
	}

	return nil
}

func (c *BuildCommand) buildOne(builder *feed.Builder, global config.Global, file string) error {
	data, err := store.Load(file)
	if err != nil {
		return err
	}

	result := store.Validate(data)

	for _, warning := range result.Warnings {
		fmt.Fprintf(os.Stderr, "Warning (%s): %s\n", filepath.Base(file), warning)
	}

	if !result.Valid() {
		for _, e := range result.Errors {
			fmt.Fprintf(os.Stderr, "Error (%s): %s\n", filepath.Base(file), e)
		}
		return fmt.Errorf("validation failed")
	}

	outputPath := feedOutputPath(c.OutputDir, file)

	channel := feed.Channel{
		Link:         global.Link,
		Language:     global.Language,
		AuthorName:   global.Author,
		ContactEmail: global.Contact.Email,
		FeedName:     filepath.Base(outputPath),
		Version:      cfg.Get().Version,
	}

	written, err := builder.Run(data, channel, outputPath, c.AllRatings)
	if err != nil {
		return err
	}

	if written {
		fmt.Printf("Built: %s\n", outputPath)
	} else {
		fmt.Printf("Unchanged: %s\n", outputPath)
	}

	return nil
}

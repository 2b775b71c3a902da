package feed

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
	"github.com/rs/zerolog"

	"talkfeed/app/store"
	"talkfeed/app/talk"
)

// Builder filters, renders and writes one event's feed. The output file
// is replaced only when its substantive content changed.
type Builder struct {
	generator *Generator
	log       zerolog.Logger
}

func NewBuilder(log zerolog.Logger) *Builder {
	return &Builder{
		generator: NewGenerator(),
		log:       log,
	}
}

// Run generates the feed for data and writes it to outputPath. The bool
// return reports whether the file was actually written.
func (b *Builder) Run(data *store.Data, channel Channel, outputPath string, includeAllRatings bool) (bool, error) {
	filtered := b.filterByRating(data, includeAllRatings)

	content, err := b.generator.Run(filtered, channel)
	if err != nil {
		return false, fmt.Errorf("failed to generate feed: %w", err)
	}

	if !b.hasChanged(outputPath, content) {
		b.log.Info().Str("output", outputPath).Msg("feed unchanged, skipping write")
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return false, fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := renameio.WriteFile(outputPath, []byte(content), 0644); err != nil {
		return false, fmt.Errorf("failed to write feed: %w", err)
	}

	return true, nil
}

func (b *Builder) filterByRating(data *store.Data, includeAllRatings bool) *store.Data {
	if includeAllRatings {
		return data
	}

	filtered := &store.Data{Meta: data.Meta}
	for _, record := range data.Feed {
		if !talk.ShouldInclude(record, includeAllRatings) {
			avg, _ := talk.AverageRating(record.Feedback)
			b.log.Debug().
				Str("title", record.Title).
				Float64("average", avg).
				Msg("excluding low-rated talk")
			continue
		}
		filtered.Feed = append(filtered.Feed, record)
	}

	if excluded := len(data.Feed) - len(filtered.Feed); excluded > 0 {
		b.log.Info().Int("excluded", excluded).Msg("excluded low-rated talks")
	}

	return filtered
}

// hasChanged compares the new rendering against the previous file with
// volatile timestamps blanked. An unreadable previous file counts as
// changed.
func (b *Builder) hasChanged(outputPath, content string) bool {
	previous, err := os.ReadFile(outputPath)
	if err != nil {
		return true
	}

	return NormalizeForComparison(string(previous)) != NormalizeForComparison(content)
}

package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"talkfeed/app/cfg"
	"talkfeed/app/config"
	"talkfeed/app/database"
	"talkfeed/app/logger"
)

// setupLogger configures the process logger from the verbosity flag and
// returns a component child.
func setupLogger(component string) zerolog.Logger {
	logger.Configure(logger.Config{
		Level: logger.LevelFromVerbosity(cfg.Get().Verbose),
	})

	return logger.WithComponent(component)
}

func loadConfig() (*config.Config, error) {
	return config.Load(cfg.Get().ConfigPath)
}

// resolveEvent picks an event by explicit key, by year, or falls back to
// the latest configured one.
func resolveEvent(conf *config.Config, eventKey string, year int) (string, *config.Event, error) {
	if eventKey != "" {
		event, ok := conf.EventByKey(strings.ToLower(eventKey))
		if !ok {
			return "", nil, fmt.Errorf("event %q not found in configuration", eventKey)
		}
		return strings.ToLower(eventKey), event, nil
	}

	if year != 0 {
		key, event, ok := conf.EventByYear(year)
		if !ok {
			return "", nil, fmt.Errorf("no event found for year %d", year)
		}
		return key, event, nil
	}

	return conf.LatestEvent()
}

// openDocuments opens the document cache and applies migrations.
func openDocuments(log zerolog.Logger) (*database.DB, *database.DocumentRepository, error) {
	db, err := database.NewConnection(cfg.Get().CachePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open document cache: %w", err)
	}

	version, dirty, err := database.RunMigrations(db)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to migrate document cache: %w", err)
	}

	log.Debug().Uint("version", version).Bool("dirty", dirty).Msg("document cache ready")

	return db, database.NewDocumentRepository(db), nil
}

func mediaFilePath(eventKey string) string {
	return filepath.Join(cfg.Get().MediaDir, fmt.Sprintf("media_%s.yml", strings.ToLower(eventKey)))
}

// feedOutputPath maps media_38c3.yml to <outputDir>/feed_38c3.xml.
func feedOutputPath(outputDir, mediaFile string) string {
	name := filepath.Base(mediaFile)
	name = strings.Replace(name, "media_", "feed_", 1)
	name = strings.TrimSuffix(name, filepath.Ext(name)) + ".xml"

	return filepath.Join(outputDir, name)
}

package cli

import "github.com/jessevdk/go-flags"

// Register attaches every command to the parser.
func Register(parser *flags.Parser) error {
	commands := []struct {
		name, short, long string
		command           interface{}
	}{
		{"add", "Add a talk to an event's media file",
			"Search the schedule and media feed for a talk, merge both sides and append the result to the event's media YAML file.", &AddCommand{}},
		{"build", "Generate RSS feeds from media files",
			"Generate RSS feeds from media YAML files. Talks with an average rating of 2.0 or lower are excluded unless --all-ratings is given.", &BuildCommand{}},
		{"rate", "Interactively rate talks in a media file",
			"Walk every talk in a media YAML file and prompt for a rating and optional comment.", &RateCommand{}},
		{"list", "List talks sorted by average rating",
			"List rated talks across media files, sorted by average rating.", &ListCommand{}},
		{"new-event", "Register a new congress event",
			"Derive the congress number, probe known schedule URL layouts, register the event in the configuration and initialize its media file.", &NewEventCommand{}},
		{"clear-cache", "Drop the cached source documents",
			"Remove every cached schedule and media feed document.", &ClearCacheCommand{}},
		{"serve", "Serve generated feeds over HTTP",
			"Run an HTTP server exposing the generated feeds plus health and stats endpoints.", &ServeCommand{}},
	}

	for _, c := range commands {
		if _, err := parser.AddCommand(c.name, c.short, c.long, c.command); err != nil {
			return err
		}
	}

	return nil
}

package store

import "talkfeed/app/talk"

// Data is the full contents of one event's media file.
type Data struct {
	Meta Meta          `yaml:"meta"`
	Feed []talk.Record `yaml:"feed"`
}

// Meta carries the per-event channel presentation fields.
type Meta struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	ImageURL    string `yaml:"image_url,omitempty"`
}

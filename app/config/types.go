package config

import "talkfeed/app/talk"

// Config is the full contents of config.yaml: global channel settings
// plus one entry per congress event.
type Config struct {
	Global Global            `yaml:"global"`
	Events map[string]*Event `yaml:"events"`
}

type Global struct {
	Author          string               `yaml:"author"`
	Link            string               `yaml:"link"`
	Language        string               `yaml:"language"`
	Contact         Contact              `yaml:"contact"`
	CategoryMapping talk.CategoryMapping `yaml:"category_mapping"`
}

type Contact struct {
	Email string `yaml:"email"`
	Name  string `yaml:"name,omitempty"`
}

// Event describes one congress: where its schedule and recordings live
// and, for older exports without embedded talk URLs, the halves of the
// talk page URL pattern.
type Event struct {
	Year             int    `yaml:"year"`
	CongressNumber   int    `yaml:"congress_number"`
	FahrplanURL      string `yaml:"fahrplan_url"`
	MediaFeedURL     string `yaml:"media_feed_url"`
	EventPatternHead string `yaml:"event_pattern_head,omitempty"`
	EventPatternTail string `yaml:"event_pattern_tail,omitempty"`
}

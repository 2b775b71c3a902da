package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/google/renameio/v2"
	"gopkg.in/yaml.v3"
)

const maxFileSize = 1024 * 1024

// Load reads and validates config.yaml.
func Load(path string) (*Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}

	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &cfg, nil
}

// Save writes config.yaml atomically.
func Save(path string, cfg *Config) error {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := renameio.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (c *Config) validate() error {
	if c.Events == nil {
		return fmt.Errorf("missing 'events' section")
	}

	for key, event := range c.Events {
		if event == nil {
			return fmt.Errorf("event %q: empty configuration", key)
		}
		if event.Year == 0 {
			return fmt.Errorf("event %q: missing year", key)
		}
		if event.CongressNumber == 0 {
			return fmt.Errorf("event %q: missing congress_number", key)
		}
		if event.FahrplanURL == "" {
			return fmt.Errorf("event %q: missing fahrplan_url", key)
		}
		if event.MediaFeedURL == "" {
			return fmt.Errorf("event %q: missing media_feed_url", key)
		}
		// The pattern halves only make sense together
		if (event.EventPatternHead == "") != (event.EventPatternTail == "") {
			return fmt.Errorf("event %q: event_pattern_head and event_pattern_tail must both be set", key)
		}
	}

	return nil
}

// EventByYear returns the event configured for the given year.
func (c *Config) EventByYear(year int) (string, *Event, bool) {
	for key, event := range c.Events {
		if event.Year == year {
			return key, event, true
		}
	}

	return "", nil, false
}

// EventByKey returns the event registered under the given key, e.g. "38c3".
func (c *Config) EventByKey(key string) (*Event, bool) {
	event, ok := c.Events[key]
	return event, ok
}

// LatestEvent returns the event with the highest year.
func (c *Config) LatestEvent() (string, *Event, error) {
	if len(c.Events) == 0 {
		return "", nil, fmt.Errorf("no events configured")
	}

	keys := make([]string, 0, len(c.Events))
	for key := range c.Events {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	latestKey := keys[0]
	for _, key := range keys[1:] {
		if c.Events[key].Year > c.Events[latestKey].Year {
			latestKey = key
		}
	}

	return latestKey, c.Events[latestKey], nil
}

// CongressNumberFor extrapolates the congress number for a year from the
// latest configured event, assuming annual congresses.
func (c *Config) CongressNumberFor(year int) (int, error) {
	_, latest, err := c.LatestEvent()
	if err != nil {
		return 0, fmt.Errorf("cannot calculate congress number: %w", err)
	}

	return latest.CongressNumber + (year - latest.Year), nil
}

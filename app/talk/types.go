package talk

// Record is the canonical merged representation of a talk, combining
// schedule and media fields. The YAML tags define the on-disk media
// store format.
type Record struct {
	Title       string     `yaml:"title"`
	Published   string     `yaml:"published"`
	Speakers    string     `yaml:"speakers"`
	Subtitle    string     `yaml:"subtitle"`
	MediaURL    string     `yaml:"media_url"`
	MediaType   string     `yaml:"media_type"`
	MediaLength int64      `yaml:"media_length"`
	WebURL      string     `yaml:"web_url"`
	Description string     `yaml:"description"`
	Category    string     `yaml:"category,omitempty"`
	Feedback    []Feedback `yaml:"feedback,omitempty"`
}

// Feedback is a single rating entry. A nil Rating marks an entry that
// does not count toward aggregation; the validation layer treats it as a
// data-integrity error before feed generation.
type Feedback struct {
	Rating   *int   `yaml:"rating"`
	Username string `yaml:"username,omitempty"`
	Comment  string `yaml:"comment,omitempty"`
}

// Rated reports whether the entry carries a rating.
func (f Feedback) Rated() bool {
	return f.Rating != nil
}

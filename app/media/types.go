package media

// Item is a single recording from the podcast feed. The publish date is
// carried as the feed's original string; it is republished verbatim and
// never interpreted.
type Item struct {
	Title           string
	Published       string
	Description     string
	EnclosureURL    string
	EnclosureLength int64
	EnclosureType   string
}

// HasEnclosure reports whether the item carries a usable media reference.
// Items without one are skipped during pairing rather than failing a search.
func (i Item) HasEnclosure() bool {
	return i.EnclosureURL != ""
}

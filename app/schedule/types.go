package schedule

import (
	"strings"
)

// Document is the parsed Fahrplan schedule. The expected shape is
// schedule/day*/room*/event*; anything beyond that is ignored.
type Document struct {
	Version string `xml:"version"`
	Days    []Day  `xml:"day"`
}

type Day struct {
	Index int    `xml:"index,attr"`
	Date  string `xml:"date,attr"`
	Rooms []Room `xml:"room"`
}

type Room struct {
	Name   string  `xml:"name,attr"`
	Events []Event `xml:"event"`
}

// Event is a single scheduled talk. All child elements are optional in
// real-world exports except the title; missing elements decode to empty
// values rather than errors.
type Event struct {
	ID          string   `xml:"id,attr"`
	Title       string   `xml:"title"`
	Subtitle    string   `xml:"subtitle"`
	Track       string   `xml:"track"`
	Description string   `xml:"description"`
	URL         string   `xml:"url"`
	Persons     []string `xml:"persons>person"`
}

// Events returns every event in document order, flattened across days
// and rooms. Document order is the tie-break for query matching.
func (d *Document) Events() []Event {
	var events []Event
	for _, day := range d.Days {
		for _, room := range day.Rooms {
			events = append(events, room.Events...)
		}
	}
	return events
}

// Speakers joins the event's person names with ", " for display,
// skipping empty entries.
func (e *Event) Speakers() string {
	names := make([]string, 0, len(e.Persons))
	for _, person := range e.Persons {
		person = strings.TrimSpace(person)
		if person != "" {
			names = append(names, person)
		}
	}
	return strings.Join(names, ", ")
}

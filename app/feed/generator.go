package feed

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"html"
	"strings"
	"time"

	"talkfeed/app/store"
	"talkfeed/app/talk"
)

// Channel carries the event-independent channel fields from the global
// configuration.
type Channel struct {
	Link         string
	Language     string
	AuthorName   string
	ContactEmail string
	FeedName     string
	Version      string
}

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Run(data *store.Data, channel Channel) (string, error) {
	var buf bytes.Buffer

	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	buf.WriteString("\n")
	buf.WriteString(`<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom">`)
	buf.WriteString("\n  <channel>\n")

	g.writeElement(&buf, "title", data.Meta.Title, 4)
	g.writeElement(&buf, "link", channel.Link, 4)
	g.writeElement(&buf, "description", data.Meta.Description, 4)
	g.writeElement(&buf, "language", channel.Language, 4)

	if channel.ContactEmail != "" {
		editor := channel.ContactEmail
		if channel.AuthorName != "" {
			editor = fmt.Sprintf("%s (%s)", channel.ContactEmail, channel.AuthorName)
		}
		g.writeElement(&buf, "managingEditor", editor, 4)
	}

	if channel.Link != "" && channel.FeedName != "" {
		selfLink := strings.TrimSuffix(channel.Link, "/") + "/feeds/" + channel.FeedName
		buf.WriteString(fmt.Sprintf("    <atom:link href=\"%s\" rel=\"self\" type=\"application/rss+xml\" />\n",
			html.EscapeString(selfLink)))
	}

	// Channel pubDate tracks the newest recording; lastBuildDate tracks the
	// build. Both are blanked during idempotence comparison.
	if len(data.Feed) > 0 && data.Feed[0].Published != "" {
		g.writeElement(&buf, "pubDate", data.Feed[0].Published, 4)
	}
	g.writeElement(&buf, "lastBuildDate", time.Now().UTC().Format(time.RFC1123Z), 4)
	g.writeElement(&buf, "generator", fmt.Sprintf("talkfeed/%s", channel.Version), 4)

	if data.Meta.ImageURL != "" {
		buf.WriteString("    <image>\n")
		g.writeElement(&buf, "url", data.Meta.ImageURL, 6)
		g.writeElement(&buf, "title", data.Meta.Title, 6)
		g.writeElement(&buf, "link", channel.Link, 6)
		buf.WriteString("    </image>\n")
	}

	for i := range data.Feed {
		g.writeItem(&buf, &data.Feed[i])
	}

	buf.WriteString("  </channel>\n</rss>")

	return buf.String(), nil
}

func (g *Generator) writeItem(buf *bytes.Buffer, record *talk.Record) {
	buf.WriteString("    <item>\n")

	g.writeElement(buf, "title", record.Title, 6)

	if record.MediaURL != "" {
		buf.WriteString(`      <guid isPermaLink="true">`)
		xml.EscapeText(buf, []byte(record.MediaURL))
		buf.WriteString("</guid>\n")
	}

	g.writeElement(buf, "link", record.WebURL, 6)

	description := talk.FormatFeedbackSection(record.Feedback) + record.Description
	if description == "" {
		description = "No description available"
	}
	g.writeElement(buf, "description", description, 6)

	if record.Speakers != "" {
		g.writeElement(buf, "author", record.Speakers, 6)
	}

	g.writeElement(buf, "category", record.Category, 6)
	g.writeElement(buf, "pubDate", record.Published, 6)

	// RSS 2.0 spec: url, length, type are all required on enclosure
	if record.MediaURL != "" && record.MediaType != "" {
		buf.WriteString(fmt.Sprintf("      <enclosure url=\"%s\" length=\"%d\" type=\"%s\" />\n",
			html.EscapeString(record.MediaURL),
			record.MediaLength,
			html.EscapeString(record.MediaType)))
	}

	buf.WriteString("    </item>\n")
}

func (g *Generator) writeElement(buf *bytes.Buffer, tag, content string, indent int) {
	if content == "" {
		return
	}

	for i := 0; i < indent; i++ {
		buf.WriteByte(' ')
	}

	buf.WriteString("<")
	buf.WriteString(tag)
	buf.WriteString(">")
	xml.EscapeText(buf, []byte(content))
	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteString(">\n")
}

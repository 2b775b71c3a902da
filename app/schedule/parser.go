package schedule

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"golang.org/x/net/html/charset"
)

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Run(data []byte) (*Document, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("schedule data is empty")
	}

	decoder := xml.NewDecoder(bytes.NewReader(data))
	// Older Fahrplan exports declare ISO-8859-1 and friends
	decoder.CharsetReader = charset.NewReaderLabel

	var doc Document
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse schedule: %w", err)
	}

	return &doc, nil
}

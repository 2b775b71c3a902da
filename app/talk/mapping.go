package talk

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

const defaultMappingKey = "_default"

// CategoryMapping maps podcast category names to the schedule track names
// they cover. Entry order is preserved across load and save, and lookups
// honor it: the first category whose track list contains a track wins.
type CategoryMapping struct {
	entries []mappingEntry
}

type mappingEntry struct {
	category string
	tracks   []string
}

func (m *CategoryMapping) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("category mapping must be a mapping, got %s", value.Tag)
	}

	m.entries = m.entries[:0]
	for i := 0; i < len(value.Content); i += 2 {
		keyNode, valNode := value.Content[i], value.Content[i+1]

		var tracks []string
		if err := valNode.Decode(&tracks); err != nil {
			return fmt.Errorf("category %q: %w", keyNode.Value, err)
		}

		m.entries = append(m.entries, mappingEntry{
			category: keyNode.Value,
			tracks:   tracks,
		})
	}

	return nil
}

func (m CategoryMapping) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, entry := range m.entries {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Value: entry.category}

		valNode := &yaml.Node{}
		if err := valNode.Encode(entry.tracks); err != nil {
			return nil, err
		}

		node.Content = append(node.Content, keyNode, valNode)
	}

	return node, nil
}

// Lookup returns every category covering the given track, in declaration
// order. The "_default" entry never matches by track; it only supplies
// Default.
func (m CategoryMapping) Lookup(track string) []string {
	var categories []string
	for _, entry := range m.entries {
		if entry.category == defaultMappingKey {
			continue
		}
		for _, t := range entry.tracks {
			if t == track {
				categories = append(categories, entry.category)
				break
			}
		}
	}

	return categories
}

// Default returns the category list declared under "_default", if any.
func (m CategoryMapping) Default() []string {
	for _, entry := range m.entries {
		if entry.category == defaultMappingKey {
			return entry.tracks
		}
	}

	return nil
}

// Len reports the number of mapping entries, "_default" included.
func (m CategoryMapping) Len() int {
	return len(m.entries)
}

package talk

// fallbackCategory covers configurations that define no "_default" entry.
const fallbackCategory = "Technology"

// MapTrackToCategories resolves a schedule track to its podcast categories
// via the configured mapping. The result is never empty: when no entry
// covers the track, the mapping's "_default" list applies, and failing
// that, "Technology".
func MapTrackToCategories(mapping CategoryMapping, track string) []string {
	if categories := mapping.Lookup(track); len(categories) > 0 {
		return categories
	}

	if fallback := mapping.Default(); len(fallback) > 0 {
		return fallback
	}

	return []string{fallbackCategory}
}

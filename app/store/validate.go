package store

import "fmt"

// ValidationResult separates blocking problems from advisories. Errors
// block feed generation for the file; warnings do not.
type ValidationResult struct {
	Warnings []string
	Errors   []string
}

func (r ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// Validate checks one event's media data for integrity problems before
// feed generation. A feedback entry without a rating is an error; a talk
// without a category or without any feedback is only a warning.
func Validate(data *Data) ValidationResult {
	var result ValidationResult

	for _, record := range data.Feed {
		if record.Category == "" {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("talk %q has no category", record.Title))
		}

		if len(record.Feedback) == 0 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("talk %q has no feedback", record.Title))
			continue
		}

		for _, f := range record.Feedback {
			if f.Rated() {
				continue
			}

			detail := ""
			if f.Username != "" {
				detail = " from " + f.Username
			}
			if f.Comment != "" {
				comment := f.Comment
				if len(comment) > 40 {
					comment = comment[:40] + "..."
				}
				detail += fmt.Sprintf(" (%q)", comment)
			}

			result.Errors = append(result.Errors,
				fmt.Sprintf("talk %q has feedback without rating%s", record.Title, detail))
		}
	}

	return result
}

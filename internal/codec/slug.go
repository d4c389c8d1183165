package codec

import "strings"

// Slugify lowercases the title and collapses every non-alphanumeric run
// into a single hyphen, for use in export filenames. An empty result falls
// back to "schedule".
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return "schedule"
	}
	return slug
}

// ExportFileName names an export file after the schedule title.
func ExportFileName(title string) string {
	return Slugify(title) + ".json"
}

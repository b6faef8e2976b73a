package hotel

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)
	slugHyphenRuns   = regexp.MustCompile(`-{2,}`)

	titleCaser = cases.Title(language.English)
)

// Slugify derives a URL slug from a hotel name: lowercase, runs of
// non-alphanumerics collapsed to single hyphens, no leading or trailing
// hyphen.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugInvalidChars.ReplaceAllString(s, "-")
	s = slugHyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// NameFromSlug reverses Slugify for lookup purposes: hyphens become spaces
// and each word is title-cased, so "grand-plaza" matches a hotel saved as
// "Grand Plaza".
func NameFromSlug(slug string) string {
	words := strings.ReplaceAll(strings.TrimSpace(slug), "-", " ")
	return titleCaser.String(words)
}

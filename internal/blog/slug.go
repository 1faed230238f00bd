package blog

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxSlugLength is the upper bound for a generated base slug.
const MaxSlugLength = 100

var (
	reSeparators = regexp.MustCompile(`[\s\v\x{85}\p{Z}_]+`)
	reInvalid    = regexp.MustCompile(`[^a-z0-9-]`)
	reDashes     = regexp.MustCompile(`-+`)
)

// GenerateBaseSlug converts a title into a lowercase, URL-safe slug.
// The result may be empty when nothing in the title survives normalization.
func GenerateBaseSlug(title string) string {
	s := strings.ToLower(title)
	s = stripDiacritics(s)
	s = reSeparators.ReplaceAllString(s, "-")
	s = reInvalid.ReplaceAllString(s, "")
	s = reDashes.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if len(s) > MaxSlugLength {
		s = strings.TrimRight(s[:MaxSlugLength], "-")
	}

	return s
}

// UniqueSuffix returns base for counter 0 and base-counter otherwise.
func UniqueSuffix(base string, counter int) string {
	if counter == 0 {
		return base
	}

	return base + "-" + strconv.Itoa(counter)
}

// CategorySlug is the slug of a category, computed from its name on every read.
// It only lowercases and replaces spaces, existing category URLs depend on it.
func CategorySlug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

func stripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}

	return result
}

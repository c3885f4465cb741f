package services

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NotAvailable is the sentinel stored when a source name field is empty or
// reduces to nothing after cleaning.
const NotAvailable = "Not Available"

var (
	multipleSpacesRe     = regexp.MustCompile(`\s+`)
	specialCharsRe       = regexp.MustCompile(`[^a-zA-Z0-9\s.,&/]`)
	multipleDelimitersRe = regexp.MustCompile(`[,&/]+`)
	edgeCommasRe         = regexp.MustCompile(`^,+|,+$`)
)

// CleanNames strips noise from a raw party or advocate name string from a
// cause list. The steps run in a fixed order: unicode NFKC normalization,
// whole-word removal of legal boilerplate, removal of characters outside the
// allow-list, collapsing runs of delimiters into a single comma, whitespace
// collapsing, and trimming of leading/trailing commas.
func CleanNames(rawName string) string {
	if strings.TrimSpace(rawName) == "" {
		return NotAvailable
	}

	cleaned := norm.NFKC.String(rawName)

	if re := reference().boilerplateRe; re != nil {
		cleaned = re.ReplaceAllString(cleaned, "")
	}

	cleaned = specialCharsRe.ReplaceAllString(cleaned, "")
	cleaned = multipleDelimitersRe.ReplaceAllString(cleaned, ",")
	cleaned = strings.TrimSpace(multipleSpacesRe.ReplaceAllString(cleaned, " "))
	cleaned = strings.TrimSpace(edgeCommasRe.ReplaceAllString(cleaned, ""))

	if cleaned == "" {
		return NotAvailable
	}
	return cleaned
}

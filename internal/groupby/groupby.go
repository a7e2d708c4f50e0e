// Package groupby implements the streaming group-by / author-affiliation
// reshape stage that runs over a doi- or work_id-sorted extraction file:
// it buffers contiguous rows sharing one key, reshapes the author,
// affiliation, and institution field rows into one output row per
// (author, affiliation) pair, and emits normalized name/affiliation text
// alongside the verbatim values.
package groupby

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rainycape/unidecode"
)

var normalizeRe = regexp.MustCompile(`[^[:alnum:]\s]`)

// normalizeText transliterates text to ASCII, lowercases it, strips
// everything that isn't alphanumeric or whitespace, and trims the result.
func normalizeText(text string) string {
	ascii := unidecode.Unidecode(text)
	lower := strings.ToLower(ascii)
	cleaned := normalizeRe.ReplaceAllString(lower, "")
	return strings.TrimSpace(cleaned)
}

// extractIndex applies re to path and parses its first capture group as an
// integer, returning false if re doesn't match or the capture isn't a
// valid integer.
func extractIndex(re *regexp.Regexp, path string) (int, bool) {
	m := re.FindStringSubmatch(path)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

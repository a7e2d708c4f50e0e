package groupby

import (
	"regexp"
	"sort"
	"strings"
)

// CrossrefHeader is the column order for the Crossref author/affiliation
// reshape output. Crossref author objects are either a person (given +
// family) or an organization (a single name), so the output carries both
// forms plus a derived full_name.
var CrossrefHeader = []string{
	"doi", "author_sequence", "full_name", "normalized_full_name",
	"given_name", "normalized_given_name", "family_name", "normalized_family_name",
	"affiliation_sequence", "affiliation", "normalized_affiliation",
}

var (
	crossrefAuthorIndexRe      = regexp.MustCompile(`author\[(\d+)\]`)
	crossrefAffiliationIndexRe = regexp.MustCompile(`affiliation\[(\d+)\]`)
)

// crossrefMissingAffiliationSentinel is written into affiliation_sequence
// when an author has no affiliation rows at all, instead of the "0" used
// by OpenAlex - a divergence preserved from the reference pipeline rather
// than normalized away.
const crossrefMissingAffiliationSentinel = "None"

type crossrefAuthor struct {
	sequence int
	given    string
	family   string
	name     string
}

func (a *crossrefAuthor) fullName() string {
	if a.name != "" {
		return a.name
	}
	return strings.TrimSpace(a.given + " " + a.family)
}

type crossrefAffiliation struct {
	sequence  int
	rawString string
}

// MaterializeCrossrefGroup reshapes one doi's buffered extraction rows
// into author/affiliation output rows. It satisfies the Materializer
// signature; key is the doi itself since Crossref groups directly on it.
func MaterializeCrossrefGroup(doi string, rows []Row) [][]string {
	authors := make(map[int]*crossrefAuthor)
	affiliations := make(map[affKey]*crossrefAffiliation)

	for _, row := range rows {
		authorIdx, ok := extractIndex(crossrefAuthorIndexRe, row.SubfieldPath)
		if !ok {
			continue
		}
		if _, exists := authors[authorIdx]; !exists {
			authors[authorIdx] = &crossrefAuthor{sequence: authorIdx}
		}

		switch row.FieldName {
		case "author.given":
			authors[authorIdx].given = row.Value
		case "author.family":
			authors[authorIdx].family = row.Value
		case "author.name":
			authors[authorIdx].name = row.Value
		case "author.affiliation.name":
			if affIdx, ok := extractIndex(crossrefAffiliationIndexRe, row.SubfieldPath); ok {
				key := affKey{authorIdx, affIdx}
				affiliations[key] = &crossrefAffiliation{sequence: affIdx, rawString: row.Value}
			}
		}
	}

	sortedAuthors := make([]*crossrefAuthor, 0, len(authors))
	for _, a := range authors {
		sortedAuthors = append(sortedAuthors, a)
	}
	sort.Slice(sortedAuthors, func(i, j int) bool { return sortedAuthors[i].sequence < sortedAuthors[j].sequence })

	var out [][]string
	for _, author := range sortedAuthors {
		fullName := author.fullName()
		normalizedFullName := normalizeText(fullName)
		normalizedGiven := normalizeText(author.given)
		normalizedFamily := normalizeText(author.family)

		var authorAffs []*crossrefAffiliation
		for key, aff := range affiliations {
			if key.authorIdx == author.sequence {
				authorAffs = append(authorAffs, aff)
			}
		}
		sort.Slice(authorAffs, func(i, j int) bool { return authorAffs[i].sequence < authorAffs[j].sequence })

		if len(authorAffs) == 0 {
			out = append(out, []string{
				doi, itoa(author.sequence), fullName, normalizedFullName,
				author.given, normalizedGiven, author.family, normalizedFamily,
				crossrefMissingAffiliationSentinel, "", "",
			})
			continue
		}

		for _, aff := range authorAffs {
			normalizedAffiliation := normalizeText(aff.rawString)
			out = append(out, []string{
				doi, itoa(author.sequence), fullName, normalizedFullName,
				author.given, normalizedGiven, author.family, normalizedFamily,
				itoa(aff.sequence), aff.rawString, normalizedAffiliation,
			})
		}
	}
	return out
}

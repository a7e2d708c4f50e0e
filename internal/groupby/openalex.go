package groupby

import (
	"regexp"
	"sort"
	"strconv"
)

func itoa(n int) string { return strconv.Itoa(n) }

// OpenAlexHeader is the column order for the OpenAlex author/affiliation
// reshape output.
var OpenAlexHeader = []string{
	"work_id", "doi", "author_sequence", "author_name", "normalized_author_name",
	"affiliation_sequence", "affiliation_name", "normalized_affiliation_name", "affiliation_ror",
}

var (
	authorshipIndexRe   = regexp.MustCompile(`authorships\[(\d+)\]`)
	affiliationIndexReO = regexp.MustCompile(`affiliations\[(\d+)\]`)
	institutionIndexRe  = regexp.MustCompile(`institutions\[(\d+)\]`)
)

type openAlexAuthor struct {
	sequence    int
	displayName string
}

type affKey struct {
	authorIdx int
	affIdx    int
}

type openAlexAffiliation struct {
	sequence       int
	rawString      string
	institutionIDs []string
}

type instKey struct {
	authorIdx int
	instIdx   int
}

type openAlexInstitution struct {
	id  string
	ror string
}

// MaterializeOpenAlexGroup reshapes one work_id's buffered extraction rows
// into author/affiliation output rows. It satisfies the Materializer
// signature; the work's DOI is read off the first buffered row since it
// is constant within one work_id group.
func MaterializeOpenAlexGroup(workID string, rows []Row) [][]string {
	doi := ""
	if len(rows) > 0 {
		doi = rows[0].DOI
	}

	authors := make(map[int]*openAlexAuthor)
	affiliations := make(map[affKey]*openAlexAffiliation)
	institutions := make(map[instKey]*openAlexInstitution)

	for _, row := range rows {
		authorIdx, ok := extractIndex(authorshipIndexRe, row.SubfieldPath)
		if !ok {
			continue
		}
		if _, exists := authors[authorIdx]; !exists {
			authors[authorIdx] = &openAlexAuthor{sequence: authorIdx}
		}

		switch row.FieldName {
		case "authorships.author.display_name":
			authors[authorIdx].displayName = row.Value

		case "authorships.affiliations.raw_affiliation_string":
			if affIdx, ok := extractIndex(affiliationIndexReO, row.SubfieldPath); ok {
				key := affKey{authorIdx, affIdx}
				aff := affiliations[key]
				if aff == nil {
					aff = &openAlexAffiliation{}
					affiliations[key] = aff
				}
				aff.rawString = row.Value
				aff.sequence = affIdx
			}

		case "authorships.affiliations.institution_ids":
			if affIdx, ok := extractIndex(affiliationIndexReO, row.SubfieldPath); ok {
				key := affKey{authorIdx, affIdx}
				aff := affiliations[key]
				if aff == nil {
					aff = &openAlexAffiliation{}
					affiliations[key] = aff
				}
				aff.institutionIDs = append(aff.institutionIDs, row.Value)
			}

		case "authorships.institutions.id":
			if instIdx, ok := extractIndex(institutionIndexRe, row.SubfieldPath); ok {
				key := instKey{authorIdx, instIdx}
				inst := institutions[key]
				if inst == nil {
					inst = &openAlexInstitution{}
					institutions[key] = inst
				}
				inst.id = row.Value
			}

		case "authorships.institutions.ror":
			if instIdx, ok := extractIndex(institutionIndexRe, row.SubfieldPath); ok {
				key := instKey{authorIdx, instIdx}
				inst := institutions[key]
				if inst == nil {
					inst = &openAlexInstitution{}
					institutions[key] = inst
				}
				inst.ror = row.Value
			}
		}
	}

	rorLookup := make(map[string]string)
	for _, inst := range institutions {
		if inst.id != "" && inst.ror != "" {
			rorLookup[inst.id] = inst.ror
		}
	}

	sortedAuthors := make([]*openAlexAuthor, 0, len(authors))
	for _, a := range authors {
		sortedAuthors = append(sortedAuthors, a)
	}
	sort.Slice(sortedAuthors, func(i, j int) bool { return sortedAuthors[i].sequence < sortedAuthors[j].sequence })

	var out [][]string
	for _, author := range sortedAuthors {
		normalizedAuthorName := normalizeText(author.displayName)

		var authorAffs []*openAlexAffiliation
		for key, aff := range affiliations {
			if key.authorIdx == author.sequence {
				authorAffs = append(authorAffs, aff)
			}
		}
		sort.Slice(authorAffs, func(i, j int) bool { return authorAffs[i].sequence < authorAffs[j].sequence })

		if len(authorAffs) == 0 {
			out = append(out, []string{
				workID, doi,
				itoa(author.sequence), author.displayName, normalizedAuthorName,
				"0", "", "", "",
			})
			continue
		}

		for _, aff := range authorAffs {
			normalizedAffName := normalizeText(aff.rawString)

			ror := ""
			for _, instID := range aff.institutionIDs {
				if r, ok := rorLookup[instID]; ok {
					ror = r
					break
				}
			}

			out = append(out, []string{
				workID, doi,
				itoa(author.sequence), author.displayName, normalizedAuthorName,
				itoa(aff.sequence), aff.rawString, normalizedAffName, ror,
			})
		}
	}
	return out
}

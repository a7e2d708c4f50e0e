package schema

// Crossref is the dotted-path field-type table for Crossref work records.
// Ported from the reference extractor's SCHEMA_STRUCTURE.
var Crossref = Table{
	"DOI":              Value,
	"ISSN":             Array,
	"URL":              Value,
	"alternative-id":   Array,
	"author":           Array,
	"author.affiliation":              Array,
	"author.affiliation.name":         Value,
	"author.affiliation.place":        Array,
	"author.affiliation.id":           Array,
	"author.affiliation.id.asserted-by": Value,
	"author.affiliation.id.id":          Value,
	"author.affiliation.id.id-type":     Value,
	"author.affiliation.department":     Array,
	"author.affiliation.acronym":        Array,
	"author.family":               Value,
	"author.given":                Value,
	"author.sequence":             Value,
	"author.name":                 Value,
	"author.suffix":               Value,
	"author.ORCID":                Value,
	"author.authenticated-orcid":  Value,
	"container-title":             Array,
	"content-domain":              Object,
	"content-domain.crossmark-restriction": Value,
	"content-domain.domain":                Array,
	"created":                  Object,
	"created.date-parts":       Array,
	"created.date-time":        Value,
	"created.timestamp":        Value,
	"deposited":                Object,
	"deposited.date-parts":     Array,
	"deposited.date-time":      Value,
	"deposited.timestamp":      Value,
	"indexed":                  Object,
	"indexed.date-parts":       Array,
	"indexed.date-time":        Value,
	"indexed.timestamp":        Value,
	"indexed.version":          Value,
	"is-referenced-by-count":   Value,
	"issn-type":                Array,
	"issn-type.type":           Value,
	"issn-type.value":          Value,
	"issue":                    Value,
	"issued":                   Object,
	"issued.date-parts":        Array,
	"journal-issue":                           Object,
	"journal-issue.issue":                     Value,
	"journal-issue.published-print":           Object,
	"journal-issue.published-print.date-parts": Array,
	"journal-issue.published-online":           Object,
	"journal-issue.published-online.date-parts": Array,
	"language":          Value,
	"license":           Array,
	"license.URL":       Value,
	"license.content-version": Value,
	"license.delay-in-days":   Value,
	"license.start":           Object,
	"license.start.date-parts": Array,
	"license.start.date-time":  Value,
	"license.start.timestamp":  Value,
	"link":                           Array,
	"link.URL":                       Value,
	"link.content-type":              Value,
	"link.content-version":           Value,
	"link.intended-application":      Value,
	"member":                         Value,
	"page":                           Value,
	"prefix":                         Value,
	"published":                      Object,
	"published.date-parts":           Array,
	"published-print":                Object,
	"published-print.date-parts":     Array,
	"publisher":                      Value,
	"reference":                      Array,
	"reference.article-title":        Value,
	"reference.author":               Value,
	"reference.first-page":           Value,
	"reference.journal-title":        Value,
	"reference.key":                  Value,
	"reference.volume":                Value,
	"reference.year":                  Value,
	"reference.DOI":                   Value,
	"reference.doi-asserted-by":       Value,
	"reference.unstructured":          Value,
	"reference.issue":                 Value,
	"reference.series-title":          Value,
	"reference.volume-title":          Value,
	"reference.edition":               Value,
	"reference.ISSN":                  Value,
	"reference.issn-type":             Value,
	"reference.ISBN":                  Value,
	"reference.isbn-type":             Value,
	"reference.component":             Value,
	"reference.standards-body":        Value,
	"reference.standard-designator":   Value,
	"reference-count":                 Value,
	"references-count":                Value,
	"resource":                        Object,
	"resource.primary":                Object,
	"resource.primary.URL":            Value,
	"resource.secondary":              Array,
	"resource.secondary.URL":          Value,
	"resource.secondary.label":        Value,
	"score":                           Value,
	"short-container-title":           Array,
	"source":                          Value,
	"title":                           Array,
	"volume":                          Value,
	"special_numbering":               Value,
	"published-online":                Object,
	"published-online.date-parts":     Array,
	"abstract":                        Value,
	"article-number":                  Value,
	"archive":                         Array,
	"assertion":                       Array,
	"assertion.group":                 Object,
	"assertion.group.label":           Value,
	"assertion.group.name":            Value,
	"assertion.label":                 Value,
	"assertion.name":                  Value,
	"assertion.order":                 Value,
	"assertion.value":                 Value,
	"assertion.explanation":           Object,
	"assertion.explanation.URL":       Value,
	"assertion.URL":                   Value,
	"update-policy":                   Value,
	"subtitle":                        Array,
	"updated-by":                      Array,
	"updated-by.DOI":                  Value,
	"updated-by.label":                Value,
	"updated-by.source":               Value,
	"updated-by.type":                 Value,
	"updated-by.updated":              Object,
	"updated-by.updated.date-parts":   Array,
	"updated-by.updated.date-time":    Value,
	"updated-by.updated.timestamp":    Value,
	"updated-by.record-id":            Value,
	"relation":                        Object,
	"relation.*":                      Array,
	"relation.*.asserted-by":          Value,
	"relation.*.id":                   Value,
	"relation.*.id-type":              Value,
	"funder":                          Array,
	"funder.DOI":                      Value,
	"funder.doi-asserted-by":          Value,
	"funder.id":                       Array,
	"funder.id.asserted-by":           Value,
	"funder.id.id":                    Value,
	"funder.id.id-type":               Value,
	"funder.name":                     Value,
	"funder.award":                    Array,
	"update-to":                       Array,
	"update-to.DOI":                   Value,
	"update-to.label":                 Value,
	"update-to.record-id":             Value,
	"update-to.source":                Value,
	"update-to.type":                  Value,
	"update-to.updated":               Object,
	"update-to.updated.date-parts":    Array,
	"update-to.updated.date-time":     Value,
	"update-to.updated.timestamp":     Value,
	"published-other":                 Object,
	"published-other.date-parts":      Array,
	"editor":                           Array,
	"editor.affiliation":               Array,
	"editor.affiliation.name":          Value,
	"editor.affiliation.id":            Array,
	"editor.affiliation.id.asserted-by": Value,
	"editor.affiliation.id.id":          Value,
	"editor.affiliation.id.id-type":     Value,
	"editor.affiliation.place":          Array,
	"editor.affiliation.acronym":        Array,
	"editor.affiliation.department":     Array,
	"editor.family":                     Value,
	"editor.given":                      Value,
	"editor.sequence":                   Value,
	"editor.ORCID":                      Value,
	"editor.authenticated-orcid":        Value,
	"editor.name":                       Value,
	"editor.suffix":                     Value,
	"aliases":                           Array,
	"original-title":                    Array,
	"ISBN":                              Array,
	"isbn-type":                         Array,
	"isbn-type.type":                    Value,
	"isbn-type.value":                   Value,
	"publisher-location":                Value,
	"description":                       Value,
	"event":                             Object,
	"event.location":                    Value,
	"event.name":                        Value,
	"event.end":                         Object,
	"event.end.date-parts":              Array,
	"event.start":                       Object,
	"event.start.date-parts":            Array,
	"event.acronym":                     Value,
	"event.sponsor":                     Array,
	"event.number":                      Value,
	"event.theme":                       Value,
	"accepted":                          Object,
	"accepted.date-parts":               Array,
	"short-title":                       Array,
	"review":                            Object,
	"review.competing-interest-statement": Value,
	"review.recommendation":             Value,
	"review.revision-round":             Value,
	"review.stage":                      Value,
	"review.type":                       Value,
	"review.language":                   Value,
	"review.running-number":             Value,
	"group-title":                       Value,
	"institution":                       Array,
	"institution.name":                  Value,
	"institution.place":                 Array,
	"institution.acronym":               Array,
	"institution.department":            Array,
	"institution.id":                    Array,
	"institution.id.asserted-by":        Value,
	"institution.id.id":                 Value,
	"institution.id.id-type":            Value,
	"posted":                            Object,
	"posted.date-parts":                 Array,
	"subtype":                           Value,
	"approved":                          Object,
	"approved.date-parts":               Array,
	"standards-body":                    Object,
	"standards-body.acronym":            Value,
	"standards-body.name":               Value,
	"content-created":                   Object,
	"content-created.date-parts":        Array,
	"edition-number":                    Value,
	"degree":                            Array,
	"issue-title":                       Array,
	"translator":                        Array,
	"translator.affiliation":            Array,
	"translator.affiliation.name":       Value,
	"translator.affiliation.id":         Array,
	"translator.affiliation.id.asserted-by": Value,
	"translator.affiliation.id.id":          Value,
	"translator.affiliation.id.id-type":     Value,
	"translator.affiliation.place":          Array,
	"translator.family":                     Value,
	"translator.given":                      Value,
	"translator.sequence":                   Value,
	"translator.name":                       Value,
	"translator.ORCID":                      Value,
	"translator.authenticated-orcid":        Value,
	"translator.suffix":                     Value,
	"clinical-trial-number":                 Array,
	"clinical-trial-number.clinical-trial-number": Value,
	"clinical-trial-number.registry":              Value,
	"clinical-trial-number.type":                  Value,
	"award":                                       Value,
	"award-start":                                 Object,
	"award-start.date-parts":                      Array,
	"project":                                      Array,
	"project.award-end":                            Object,
	"project.award-end.date-parts":                 Array,
	"project.award-start":                          Object,
	"project.award-start.date-parts":               Array,
	"project.funding":                              Array,
	"project.funding.funder":                       Object,
	"project.funding.funder.id":                    Array,
	"project.funding.funder.id.asserted-by":        Value,
	"project.funding.funder.id.id":                 Value,
	"project.funding.funder.id.id-type":            Value,
	"project.funding.funder.name":                  Value,
	"project.funding.type":                         Value,
	"project.funding.scheme":                       Value,
	"project.funding.award-amount":                 Object,
	"project.funding.award-amount.amount":          Value,
	"project.funding.award-amount.currency":        Value,
	"project.funding.award-amount.percentage":      Value,
	"project.investigator":                         Array,
	"project.investigator.affiliation":             Array,
	"project.investigator.affiliation.country":     Value,
	"project.investigator.affiliation.name":        Value,
	"project.investigator.affiliation.id":          Array,
	"project.investigator.affiliation.id.asserted-by": Value,
	"project.investigator.affiliation.id.id":          Value,
	"project.investigator.affiliation.id.id-type":     Value,
	"project.investigator.family":                     Value,
	"project.investigator.given":                      Value,
	"project.investigator.ORCID":                      Value,
	"project.investigator.authenticated-orcid":        Value,
	"project.investigator.alternate-name":             Array,
	"project.investigator.role-start":                 Object,
	"project.investigator.role-start.date-parts":      Array,
	"project.investigator.role-end":                   Object,
	"project.investigator.role-end.date-parts":        Array,
	"project.lead-investigator":                       Array,
	"project.lead-investigator.affiliation":           Array,
	"project.lead-investigator.affiliation.country":   Value,
	"project.lead-investigator.affiliation.name":      Value,
	"project.lead-investigator.affiliation.id":        Array,
	"project.lead-investigator.affiliation.id.asserted-by": Value,
	"project.lead-investigator.affiliation.id.id":          Value,
	"project.lead-investigator.affiliation.id.id-type":     Value,
	"project.lead-investigator.family":                     Value,
	"project.lead-investigator.given":                      Value,
	"project.lead-investigator.ORCID":                      Value,
	"project.lead-investigator.authenticated-orcid":        Value,
	"project.lead-investigator.alternate-name":             Array,
	"project.lead-investigator.role-start":                 Object,
	"project.lead-investigator.role-start.date-parts":      Array,
	"project.lead-investigator.role-end":                   Object,
	"project.lead-investigator.role-end.date-parts":        Array,
	"project.project-title":                     Array,
	"project.project-title.title":                Value,
	"project.project-title.language":             Value,
	"project.project-description":                Array,
	"project.project-description.description":    Value,
	"project.project-description.language":       Value,
	"project.award-amount":                       Object,
	"project.award-amount.amount":                Value,
	"project.award-amount.currency":              Value,
	"project.co-lead-investigator":               Array,
	"project.co-lead-investigator.ORCID":         Value,
	"project.co-lead-investigator.affiliation":   Array,
}

package schema

import "fmt"

// OpenAlex is the dotted-path field-type table for OpenAlex work records.
// Ported from the reference extractor's SCHEMA_STRUCTURE, including the
// per-location synthesis loop for primary_location/best_oa_location/locations.
var OpenAlex = buildOpenAlexSchema()

func buildOpenAlexSchema() Table {
	t := Table{
		"id":                         Value,
		"doi":                        Value,
		"doi_registration_agency":    Value,
		"display_name":               Value,
		"title":                      Value,
		"publication_year":           Value,
		"publication_date":           Value,
		"language":                   Value,
		"language_id":                Value,
		"type":                       Value,
		"type_id":                    Value,
		"type_crossref":              Value,
		"is_retracted":               Value,
		"is_paratext":                Value,
		"cited_by_count":             Value,
		"countries_distinct_count":   Value,
		"institutions_distinct_count": Value,
		"locations_count":            Value,
		"referenced_works_count":     Value,
		"authors_count":              Value,
		"concepts_count":             Value,
		"topics_count":               Value,
		"has_fulltext":               Value,
		"cited_by_api_url":           Value,
		"updated_date":               Value,
		"created_date":               Value,
		"updated":                    Value,

		"ids":            Object,
		"ids.openalex":   Value,
		"ids.mag":        Value,
		"ids.pmid":       Value,

		"open_access":                              Object,
		"open_access.is_oa":                        Value,
		"open_access.oa_status":                    Value,
		"open_access.oa_url":                       Value,
		"open_access.any_repository_has_fulltext":  Value,

		"authorships":                                     Array,
		"authorships.author_position":                     Value,
		"authorships.is_corresponding":                     Value,
		"authorships.raw_author_name":                      Value,
		"authorships.raw_affiliation_string":                Value,
		"authorships.raw_affiliation_strings":               Array,
		"authorships.countries":                            Array,
		"authorships.country_ids":                          Array,
		"authorships.author":                               Object,
		"authorships.author.id":                            Value,
		"authorships.author.display_name":                  Value,
		"authorships.author.orcid":                         Value,
		"authorships.affiliations":                         Array,
		"authorships.affiliations.raw_affiliation_string":  Value,
		"authorships.affiliations.institution_ids":         Array,
		"authorships.institutions":                         Array,
		"authorships.institutions.id":                      Value,
		"authorships.institutions.display_name":            Value,
		"authorships.institutions.ror":                     Value,
		"authorships.institutions.country_code":            Value,
		"authorships.institutions.type":                    Value,
		"authorships.institutions.lineage":                 Array,

		"corresponding_author_ids":      Array,
		"corresponding_institution_ids": Array,
		"referenced_works":              Array,
		"related_works":                 Array,
		"indexed_in":                    Array,

		"summary_stats":                 Object,
		"summary_stats.cited_by_count":  Value,
		"summary_stats.2yr_cited_by_count": Value,

		"biblio":             Object,
		"biblio.volume":      Value,
		"biblio.issue":       Value,
		"biblio.first_page":  Value,
		"biblio.last_page":   Value,

		"concepts":               Array,
		"concepts.id":            Value,
		"concepts.wikidata":      Value,
		"concepts.display_name":  Value,
		"concepts.level":         Value,
		"concepts.score":         Value,

		"topics":                      Array,
		"topics.id":                   Value,
		"topics.display_name":         Value,
		"topics.score":                Value,
		"topics.subfield":             Object,
		"topics.subfield.id":          Value,
		"topics.subfield.display_name": Value,
		"topics.field":                Object,
		"topics.field.id":             Value,
		"topics.field.display_name":   Value,
		"topics.domain":               Object,
		"topics.domain.id":            Value,
		"topics.domain.display_name":  Value,

		"primary_topic":                       Object,
		"primary_topic.id":                    Value,
		"primary_topic.display_name":          Value,
		"primary_topic.score":                 Value,
		"primary_topic.subfield":              Object,
		"primary_topic.subfield.id":           Value,
		"primary_topic.subfield.display_name": Value,
		"primary_topic.field":                 Object,
		"primary_topic.field.id":              Value,
		"primary_topic.field.display_name":    Value,
		"primary_topic.domain":                Object,
		"primary_topic.domain.id":             Value,
		"primary_topic.domain.display_name":   Value,

		"mesh":                    Array,
		"mesh.is_major_topic":     Value,
		"mesh.descriptor_ui":      Value,
		"mesh.descriptor_name":    Value,
		"mesh.qualifier_ui":       Value,
		"mesh.qualifier_name":     Value,

		"keywords":         Array,
		"keywords.keyword": Value,
		"keywords.score":   Value,

		"sustainable_development_goals":              Array,
		"sustainable_development_goals.id":           Value,
		"sustainable_development_goals.display_name": Value,
		"sustainable_development_goals.score":        Value,

		"counts_by_year":               Array,
		"counts_by_year.year":          Value,
		"counts_by_year.cited_by_count": Value,

		"cited_by_percentile_year":     Object,
		"cited_by_percentile_year.min": Value,
		"cited_by_percentile_year.max": Value,

		"abstract_inverted_index":   Object,
		"abstract_inverted_index.*": Array,

		"versions": Array,
		"datasets": Array,
		"grants":   Array,
		"apc_list": Object,
		"apc_paid": Object,
	}

	locationFields := []string{
		"is_oa", "version", "license", "doi", "is_accepted", "is_published",
		"pdf_url", "landing_page_url",
	}
	sourceFields := []string{
		"id", "issn_l", "issn", "display_name", "publisher", "host_organization",
		"host_organization_name", "is_oa", "is_in_doaj", "type", "type_id",
	}
	locationPrefixes := []string{"primary_location", "best_oa_location", "locations"}

	for _, prefix := range locationPrefixes {
		if prefix == "locations" {
			t[prefix] = Array
		} else {
			t[prefix] = Object
		}
		for _, field := range locationFields {
			t[fmt.Sprintf("%s.%s", prefix, field)] = Value
		}
		t[fmt.Sprintf("%s.source", prefix)] = Object
		for _, field := range sourceFields {
			t[fmt.Sprintf("%s.source.%s", prefix, field)] = Value
		}
		t[fmt.Sprintf("%s.source.host_organization_lineage", prefix)] = Array
		t[fmt.Sprintf("%s.source.host_organization_lineage_names", prefix)] = Array
	}

	return t
}

package groupby

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ternarybob/corpusfield/internal/common"
)

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "ada", normalizeText("Ada"))
	assert.Equal(t, "jose garcia", normalizeText("José García!"))
	assert.Equal(t, "mit csail", normalizeText("  MIT, CSAIL.  "))
}

// TestMaterializeOpenAlexGroup_TwoAffiliationsOneWithROR implements spec
// scenario 6: one author with two affiliations, only the first resolves
// to a ROR via its institution_ids.
func TestMaterializeOpenAlexGroup_TwoAffiliationsOneWithROR(t *testing.T) {
	rows := []Row{
		{DOI: "10.1/x", FieldName: "authorships.author.display_name", SubfieldPath: "authorships[0].author.display_name", Value: "Ada"},
		{DOI: "10.1/x", FieldName: "authorships.affiliations.raw_affiliation_string", SubfieldPath: "authorships[0].affiliations[0].raw_affiliation_string", Value: "MIT"},
		{DOI: "10.1/x", FieldName: "authorships.affiliations.raw_affiliation_string", SubfieldPath: "authorships[0].affiliations[1].raw_affiliation_string", Value: "CERN"},
		{DOI: "10.1/x", FieldName: "authorships.affiliations.institution_ids", SubfieldPath: "authorships[0].affiliations[0].institution_ids", Value: "I1"},
		{DOI: "10.1/x", FieldName: "authorships.institutions.id", SubfieldPath: "authorships[0].institutions[0].id", Value: "I1"},
		{DOI: "10.1/x", FieldName: "authorships.institutions.ror", SubfieldPath: "authorships[0].institutions[0].ror", Value: "ror1"},
	}

	out := MaterializeOpenAlexGroup("W123", rows)
	require.Len(t, out, 2)

	assert.Equal(t, []string{"W123", "10.1/x", "0", "Ada", "ada", "0", "MIT", "mit", "ror1"}, out[0])
	assert.Equal(t, []string{"W123", "10.1/x", "0", "Ada", "ada", "1", "CERN", "cern", ""}, out[1])
}

func TestMaterializeOpenAlexGroup_AuthorWithNoAffiliations(t *testing.T) {
	rows := []Row{
		{DOI: "10.1/y", FieldName: "authorships.author.display_name", SubfieldPath: "authorships[0].author.display_name", Value: "Grace"},
	}
	out := MaterializeOpenAlexGroup("W456", rows)
	require.Len(t, out, 1)
	assert.Equal(t, []string{"W456", "10.1/y", "0", "Grace", "grace", "0", "", "", ""}, out[0])
}

func TestMaterializeCrossrefGroup_OrganizationalAuthorUsesName(t *testing.T) {
	rows := []Row{
		{FieldName: "author.name", SubfieldPath: "author[0].name", Value: "World Health Organization"},
	}
	out := MaterializeCrossrefGroup("10.1/z", rows)
	require.Len(t, out, 1)
	row := out[0]
	assert.Equal(t, "10.1/z", row[0])
	assert.Equal(t, "World Health Organization", row[2])
	assert.Equal(t, crossrefMissingAffiliationSentinel, row[8])
}

func TestMaterializeCrossrefGroup_PersonAuthorWithAffiliation(t *testing.T) {
	rows := []Row{
		{FieldName: "author.given", SubfieldPath: "author[0].given", Value: "Marie"},
		{FieldName: "author.family", SubfieldPath: "author[0].family", Value: "Curie"},
		{FieldName: "author.affiliation.name", SubfieldPath: "author[0].affiliation[0].name", Value: "University of Paris"},
	}
	out := MaterializeCrossrefGroup("10.1/radium", rows)
	require.Len(t, out, 1)
	row := out[0]
	assert.Equal(t, "Marie Curie", row[2])
	assert.Equal(t, "marie curie", row[3])
	assert.Equal(t, "0", row[8])
	assert.Equal(t, "University of Paris", row[9])
}

func TestRun_GroupsContiguousKeysAndWritesReshapedRows(t *testing.T) {
	input := strings.Join([]string{
		"work_id,doi,field_name,subfield_path,value,source_id,doi_prefix,source_file_path",
		`W1,10.1/a,authorships.author.display_name,authorships[0].author.display_name,Ada,src1,10.1,f.gz`,
		`W2,10.1/b,authorships.author.display_name,authorships[0].author.display_name,Grace,src1,10.1,f.gz`,
	}, "\n") + "\n"

	cols := Columns{Key: 0, DOI: 1, FieldName: 2, SubfieldPath: 3, Value: 4}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	require.NoError(t, w.Write(OpenAlexHeader))

	logger := common.GetLogger()
	rowsWritten, err := Run(logger, strings.NewReader(input), cols, MaterializeOpenAlexGroup, w)
	require.NoError(t, err)
	assert.Equal(t, 2, rowsWritten)

	out := buf.String()
	assert.Contains(t, out, "W1,10.1/a,0,Ada,ada,0,,,\n")
	assert.Contains(t, out, "W2,10.1/b,0,Grace,grace,0,,,\n")
}

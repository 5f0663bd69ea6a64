package record_test

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/katalvlaran/lvtree/record"
	"github.com/katalvlaran/lvtree/tree"
)

const flatJSON = `[
  {"id": 11, "parentId": null, "name": "Head office", "order": 1},
  {"id": 32, "parentId": 11, "name": "Sales", "order": 11},
  {"id": "2", "parentId": "11", "name": "Research", "order": 2},
  {"id": 5, "parentId": 32, "name": "Retail", "order": 1, "attrs": {"region": "north"}},
  {"id": 4, "parentId": 32, "name": "Wholesale", "order": 2}
]`

const flatYAML = `
- id: 11
  parentId: ~
  name: Head office
  order: 1
- {id: 32, parentId: 11, name: Sales, order: 11}
- {id: "2", parentId: "11", name: Research, order: 2}
- {id: 5, parentId: 32, name: Retail, order: 1, attrs: {region: north}}
- {id: 4, parentId: 32, name: Wholesale, order: 2}
`

func keys(rs []*record.Record) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Key
	}

	return out
}

func TestDecodeJSON_StringifiesIDs(t *testing.T) {
	recs, err := record.DecodeJSON(strings.NewReader(flatJSON))
	require.NoError(t, err)
	require.Len(t, recs, 5)

	assert.Equal(t, []string{"11", "32", "2", "5", "4"}, keys(recs))
	assert.Equal(t, "", recs[0].ParentKey, "null parent is blank")
	assert.Equal(t, "11", recs[1].ParentKey)
	assert.Equal(t, "north", recs[3].Attrs["region"])
}

func TestDecodeYAML_MatchesJSON(t *testing.T) {
	fromJSON, err := record.DecodeJSON(strings.NewReader(flatJSON))
	require.NoError(t, err)
	fromYAML, err := record.DecodeYAML(strings.NewReader(flatYAML))
	require.NoError(t, err)

	assert.Equal(t, fromJSON, fromYAML)
}

func TestDecodeYAML_QuotedNullStaysLiteral(t *testing.T) {
	recs, err := record.DecodeYAML(strings.NewReader(`- {id: a, parentId: "null"}` + "\n" + `- {id: b, parentId: null}`))
	require.NoError(t, err)
	assert.Equal(t, "null", recs[0].ParentKey)
	assert.Equal(t, "", recs[1].ParentKey)
}

func TestDecodeYAML_Empty(t *testing.T) {
	recs, err := record.DecodeYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestDecode_Errors(t *testing.T) {
	_, err := record.DecodeJSON(strings.NewReader(`[{"id": true}]`))
	assert.ErrorIs(t, err, record.ErrBadID)

	_, err = record.DecodeJSON(strings.NewReader(`[{"parentId": "1"}]`))
	assert.ErrorIs(t, err, record.ErrEmptyID)

	_, err = record.DecodeYAML(strings.NewReader("- id: [1, 2]\n"))
	assert.ErrorIs(t, err, record.ErrBadID)

	_, err = record.DecodeJSON(strings.NewReader(`{`))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "org.json")
	yamlPath := filepath.Join(dir, "org.YML")
	require.NoError(t, os.WriteFile(jsonPath, []byte(flatJSON), 0o644))
	require.NoError(t, os.WriteFile(yamlPath, []byte(flatYAML), 0o644))

	a, err := record.LoadFile(jsonPath)
	require.NoError(t, err)
	b, err := record.LoadFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	_, err = record.LoadFile(filepath.Join(dir, "org.csv"))
	assert.ErrorIs(t, err, record.ErrUnsupportedFormat)

	_, err = record.LoadFile(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = record.LoadReader(strings.NewReader("[]"), record.Format("toml"))
	assert.ErrorIs(t, err, record.ErrUnsupportedFormat)
}

func TestRecord_AssemblesAsNode(t *testing.T) {
	recs, err := record.DecodeJSON(strings.NewReader(flatJSON))
	require.NoError(t, err)

	forest, err := tree.BuildWithRoot("", recs, record.ByOrder)
	require.NoError(t, err)
	require.Len(t, forest, 1)
	assert.Equal(t, []string{"2", "32"}, keys(forest[0].Children))
	assert.Equal(t, []string{"5", "4"}, keys(forest[0].Children[1].Children))
	assert.Equal(t, 5, record.Count(forest))
}

func TestComparators(t *testing.T) {
	recs := []*record.Record{
		{Key: "10", Name: "été", Order: 3},
		{Key: "b", Name: "Zèbre", Order: 1},
		{Key: "2", Name: "eta", Order: 2},
		{Key: "a", Name: "apple", Order: 1},
	}

	byOrder := slices.Clone(recs)
	slices.SortStableFunc(byOrder, record.ByOrder)
	assert.Equal(t, []string{"b", "a", "2", "10"}, keys(byOrder))

	byKey := slices.Clone(recs)
	slices.SortFunc(byKey, record.ByKey)
	assert.Equal(t, []string{"2", "10", "a", "b"}, keys(byKey))

	byName := slices.Clone(recs)
	slices.SortFunc(byName, record.ByName(language.French))
	assert.Equal(t, []string{"a", "2", "10", "b"}, keys(byName))
}

func TestComparator_Resolve(t *testing.T) {
	fn, err := record.Comparator("", "")
	require.NoError(t, err)
	assert.Nil(t, fn)

	for _, key := range []string{"order", "id", "name"} {
		fn, err = record.Comparator(key, "de")
		require.NoError(t, err, key)
		assert.NotNil(t, fn, key)
	}

	_, err = record.Comparator("size", "")
	assert.ErrorIs(t, err, record.ErrUnknownSort)

	_, err = record.Comparator("name", "not a locale!")
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	r := record.New("7", "3")
	assert.Equal(t, "7", r.ID())
	assert.Equal(t, "3", r.ParentID())
	r.SetChildren([]*record.Record{record.New("8", "7")})
	assert.Equal(t, 2, record.Count([]*record.Record{r}))
}

package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopsites/internal/sitegen/config"
)

const testLinkPrefix = "https://maps.example/place"

func testLoader(t *testing.T) *CSVLoader {
	t.Helper()
	return &CSVLoader{
		Config: &config.Config{
			Data: config.DataConfig{LinkPrefix: testLinkPrefix},
		},
	}
}

// validRow builds a minimal acceptable row: columns 0-3 unused, link at 4,
// name at 5.
func validRow(link, name string) []string {
	return []string{"x", "x", "x", "x", link, name}
}

func TestNormalize_RowFiltering(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]string
		expected int
	}{
		{
			name:     "short row dropped",
			rows:     [][]string{{"a", "b", "c"}},
			expected: 0,
		},
		{
			name:     "bad link dropped",
			rows:     [][]string{validRow("not-a-url", "Joe's Cafe")},
			expected: 0,
		},
		{
			name:     "empty name dropped",
			rows:     [][]string{validRow(testLinkPrefix+"/1", "   ")},
			expected: 0,
		},
		{
			name: "duplicate link dropped",
			rows: [][]string{
				validRow(testLinkPrefix+"/1", "Joe's Cafe"),
				validRow(testLinkPrefix+"/1", "Joe's Cafe II"),
			},
			expected: 1,
		},
		{
			name: "distinct links kept",
			rows: [][]string{
				validRow(testLinkPrefix+"/1", "Alpha"),
				validRow(testLinkPrefix+"/2", "Beta"),
			},
			expected: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shops := testLoader(t).Normalize(tt.rows)
			assert.Len(t, shops, tt.expected)
		})
	}
}

func TestNormalize_DedupDisabled(t *testing.T) {
	l := testLoader(t)
	dedup := false
	l.Config.Data.DedupLinks = &dedup

	shops := l.Normalize([][]string{
		validRow(testLinkPrefix+"/1", "Joe's Cafe"),
		validRow(testLinkPrefix+"/1", "Joe's Cafe"),
	})

	require.Len(t, shops, 2)
	assert.NotEqual(t, shops[0].Slug, shops[1].Slug)
}

func TestNormalize_FieldCleaning(t *testing.T) {
	row := validRow(testLinkPrefix+"/1", "  Joe　Cafe  ")
	row = append(row, "4.5", "(120)", "x", "·", "Cafe", "x", "·")

	shops := testLoader(t).Normalize([][]string{row})
	require.Len(t, shops, 1)

	s := shops[0]
	assert.Equal(t, "Joe Cafe", s.Name)
	assert.Equal(t, "", s.Price, "placeholder dot is absent data")
	assert.Equal(t, "", s.Address, "placeholder dot is absent data")
	assert.Equal(t, "Cafe", s.Category)
}

func TestNormalize_Ordering(t *testing.T) {
	shops := testLoader(t).Normalize([][]string{
		validRow(testLinkPrefix+"/a", "Alpha"),
		validRow(testLinkPrefix+"/b", "Beta"),
		validRow(testLinkPrefix+"/c", "Gamma"),
	})

	require.Len(t, shops, 3)
	assert.Equal(t, "Alpha", shops[0].Name)
	assert.Equal(t, "Beta", shops[1].Name)
	assert.Equal(t, "Gamma", shops[2].Name)
}

func TestNormalize_HeaderRowSkipped(t *testing.T) {
	l := testLoader(t)
	l.Config.Data.HasHeader = true

	shops := l.Normalize([][]string{
		validRow(testLinkPrefix+"/1", "Alpha"),
		validRow(testLinkPrefix+"/2", "Beta"),
	})

	require.Len(t, shops, 1)
	assert.Equal(t, "Beta", shops[0].Name)
}

func TestNormalize_FullRow(t *testing.T) {
	row := []string{
		"x", "x", "x", "x",
		testLinkPrefix + "/1",
		"Joe's Cafe",
		"4.5", "(120)",
		"x",
		"$$", "Cafe",
		"x",
		"123 Main St", "Open", "7am-2pm",
		"",
		"Seating", "·", "Takeout",
	}

	shops := testLoader(t).Normalize([][]string{row})
	require.Len(t, shops, 1)

	s := shops[0]
	assert.Equal(t, "Joe's Cafe", s.Name)
	assert.Equal(t, "joes-cafe", s.Slug)
	assert.Equal(t, testLinkPrefix+"/1", s.MapLink)
	assert.Equal(t, "4.5", s.Rating)
	assert.Equal(t, "(120)", s.Reviews)
	assert.Equal(t, "$$", s.Price)
	assert.Equal(t, "Cafe", s.Category)
	assert.Equal(t, "123 Main St", s.Address)
	assert.Equal(t, "Open", s.Status)
	assert.Equal(t, "7am-2pm", s.Hours)
	assert.Equal(t, "", s.Image)
	assert.Equal(t, "", s.OrderLink)
	assert.Equal(t, []string{"Seating", "Takeout"}, s.Services)
}

func TestNormalize_OrderLink(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{name: "https kept", raw: "https://order.example/joes", expected: "https://order.example/joes"},
		{name: "http kept", raw: "http://order.example/joes", expected: "http://order.example/joes"},
		{name: "relative dropped", raw: "/order/joes", expected: ""},
		{name: "not a url dropped", raw: "order here", expected: ""},
		{name: "wrong scheme dropped", raw: "ftp://order.example/joes", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := validRow(testLinkPrefix+"/1", "Joe's Cafe")
			for len(row) < 21 {
				row = append(row, "")
			}
			row = append(row, tt.raw)

			shops := testLoader(t).Normalize([][]string{row})
			require.Len(t, shops, 1)
			assert.Equal(t, tt.expected, shops[0].OrderLink)
		})
	}
}

func TestCSVLoader_Load(t *testing.T) {
	dir := t.TempDir()
	dataPath := filepath.Join(dir, "listings.csv")
	csv := "x,x,x,x," + testLinkPrefix + "/1,Joe's Cafe,4.5,(120)\n" +
		"x,x,x,x," + testLinkPrefix + "/2,Beta Shop\n" +
		"junk,row\n"
	require.NoError(t, os.WriteFile(dataPath, []byte(csv), 0o644))

	l := testLoader(t)
	l.Config.Paths.Data = dataPath

	shops, err := l.Load()
	require.NoError(t, err)
	require.Len(t, shops, 2)
	assert.Equal(t, "joes-cafe", shops[0].Slug)
	assert.Equal(t, "beta-shop", shops[1].Slug)
}

func TestCSVLoader_Load_MissingFile(t *testing.T) {
	l := testLoader(t)
	l.Config.Paths.Data = filepath.Join(t.TempDir(), "nope.csv")

	_, err := l.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening data file")
}

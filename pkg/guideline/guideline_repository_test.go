package guideline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) GuidelineRepository {
	t.Helper()
	repo, err := NewGuidelineRepository(16)
	require.NoError(t, err)
	return repo
}

func TestNewGuidelineRepository_LoadsEmbeddedTable(t *testing.T) {
	repo := newTestRepository(t)

	assert.Equal(t, 1, repo.Version())
	entries := repo.Entries()
	require.Len(t, entries, 49)
	assert.Equal(t, "Milk", entries[0].Name)
	assert.Equal(t, "Casserole", entries[len(entries)-1].Name)

	lettuce, ok := repo.Lookup("Lettuce")
	require.True(t, ok)
	assert.Nil(t, lettuce.Entry.Freezer)
	require.NotNil(t, lettuce.Entry.Refrigerator)
	assert.Equal(t, 10, *lettuce.Entry.Refrigerator)
}

func TestLookup(t *testing.T) {
	repo := newTestRepository(t)

	tests := []struct {
		name      string
		query     string
		wantName  string
		wantExact bool
		wantFound bool
	}{
		{name: "exact", query: "Milk", wantName: "Milk", wantExact: true, wantFound: true},
		{name: "exact ignores case and space", query: "  sOuR cReAm ", wantName: "Sour Cream", wantExact: true, wantFound: true},
		{name: "query contains key", query: "whole milk", wantName: "Milk", wantFound: true},
		{name: "key contains query", query: "chicken", wantName: "Chicken (raw)", wantFound: true},
		{name: "longest key wins", query: "fresh sour cream", wantName: "Sour Cream", wantFound: true},
		{name: "equal length keeps table order", query: "cheese", wantName: "Cheese (hard)", wantFound: true},
		{name: "no match", query: "xyzzy", wantFound: false},
		{name: "blank query", query: "   ", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, found := repo.Lookup(tt.query)
			assert.Equal(t, tt.wantFound, found)
			if !tt.wantFound {
				return
			}
			assert.Equal(t, tt.wantName, match.Entry.Name)
			assert.Equal(t, tt.wantExact, match.Exact)
		})
	}
}

func TestLookup_CachedResultIsStable(t *testing.T) {
	repo := newTestRepository(t)

	first, ok := repo.Lookup("ice cream")
	require.True(t, ok)
	second, ok := repo.Lookup("ICE CREAM")
	require.True(t, ok)
	assert.Equal(t, first, second)
	assert.Equal(t, "Cream", second.Entry.Name)

	_, ok = repo.Lookup("xyzzy")
	assert.False(t, ok)
	_, ok = repo.Lookup("xyzzy")
	assert.False(t, ok)
}

func TestReturnedEntriesDoNotAliasTable(t *testing.T) {
	repo := newTestRepository(t)

	entries := repo.Entries()
	*entries[0].Refrigerator = 999

	match, ok := repo.Lookup("milk")
	require.True(t, ok)
	*match.Entry.Freezer = 999

	found := repo.Search("milk")
	require.NotEmpty(t, found)
	*found[0].Room = 999

	milk, ok := repo.Lookup("Milk")
	require.True(t, ok)
	assert.Equal(t, 7, *milk.Entry.Refrigerator)
	assert.Equal(t, 90, *milk.Entry.Freezer)
	assert.Equal(t, 2, *milk.Entry.Room)
	assert.Equal(t, 7, *repo.Entries()[0].Refrigerator)
}

func TestSearch(t *testing.T) {
	repo := newTestRepository(t)

	names := func(term string) []string {
		var out []string
		for _, e := range repo.Search(term) {
			out = append(out, e.Name)
		}
		return out
	}

	assert.Equal(t, []string{"Cream", "Sour Cream"}, names("cream"))
	assert.Equal(t, []string{"Cheese (hard)", "Cheese (soft)"}, names("CHEESE"))
	assert.Empty(t, names("xyzzy"))
	assert.Len(t, repo.Search(""), len(repo.Entries()))
}

func TestNewGuidelineRepositoryFromYAML_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "empty table", data: "version: 1\nguidelines: []\n"},
		{name: "unknown field", data: "version: 1\nguidelines:\n  - {name: Milk, fridge: 7}\n"},
		{name: "duplicate entry", data: "version: 1\nguidelines:\n  - {name: Milk, refrigerator: 7}\n  - {name: milk, refrigerator: 5}\n"},
		{name: "missing name", data: "version: 1\nguidelines:\n  - {refrigerator: 7}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGuidelineRepositoryFromYAML([]byte(tt.data), 4)
			assert.Error(t, err)
		})
	}
}

package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(n int) time.Time {
	return time.Date(2025, 6, n, 0, 0, 0, 0, time.UTC)
}

func names(products []Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name)
	}
	return out
}

func TestApplyEmptySnapshot(t *testing.T) {
	for _, sortKey := range []string{SortName, SortRating, SortNewest, "bogus"} {
		got := Apply(nil, Query{Category: "windows", Search: "x", Sort: sortKey})
		assert.Empty(t, got)
	}
}

func TestApplyCategoryAllReturnsEverything(t *testing.T) {
	products := []Product{
		{ID: "1", Name: "a", Category: "windows"},
		{ID: "2", Name: "b", Category: "doors"},
		{ID: "3", Name: "c"},
	}

	got := Apply(products, Query{Category: CategoryAll})

	assert.Len(t, got, 3)
}

func TestApplyCategoryFilter(t *testing.T) {
	products := []Product{
		{ID: "1", Name: "a", Category: "windows"},
		{ID: "2", Name: "b", Category: "doors"},
		{ID: "3", Name: "c", Category: "windows"},
	}

	got := Apply(products, Query{Category: "windows"})

	require.Len(t, got, 2)
	assert.Equal(t, []string{"a", "c"}, names(got))
}

func TestApplySearchIsCaseInsensitiveSubstring(t *testing.T) {
	products := []Product{
		{ID: "1", Name: "Premium Sliding Window"},
		{ID: "2", Name: "Hinged Door", Description: "A sliding mechanism included"},
		{ID: "3", Name: "Casement", Model: "SLD-200"},
		{ID: "4", Name: "Fixed Panel"},
	}

	got := Apply(products, Query{Search: "sliding"})
	assert.Equal(t, []string{"Hinged Door", "Premium Sliding Window"}, names(got))

	got = Apply(products, Query{Search: "sld-2"})
	assert.Equal(t, []string{"Casement"}, names(got))
}

func TestApplySearchNeverMatchesAbsentFields(t *testing.T) {
	products := []Product{{ID: "1"}}

	got := Apply(products, Query{Search: "anything"})

	assert.Empty(t, got)
}

func TestApplyFiltersAreConjunctive(t *testing.T) {
	products := []Product{
		{ID: "1", Name: "Sliding Window", Category: "windows"},
		{ID: "2", Name: "Sliding Door", Category: "doors"},
	}

	got := Apply(products, Query{Category: "doors", Search: "sliding"})

	require.Len(t, got, 1)
	assert.Equal(t, "Sliding Door", got[0].Name)
}

func TestApplyFilterIsIdempotent(t *testing.T) {
	products := []Product{
		{ID: "1", Name: "Sliding Window", Category: "windows", Rating: 4},
		{ID: "2", Name: "Door", Category: "doors", Rating: 5},
		{ID: "3", Name: "Window Frame", Category: "windows", Rating: 3},
	}
	q := Query{Category: "windows", Search: "window", Sort: SortRating}

	once := Apply(products, q)
	twice := Apply(once, q)

	assert.Equal(t, once, twice)
}

func TestApplySortNameIsCaseInsensitiveAscending(t *testing.T) {
	products := []Product{{ID: "1", Name: "Zeta"}, {ID: "2", Name: "alpha"}}

	got := Apply(products, Query{Sort: SortName})

	assert.Equal(t, []string{"alpha", "Zeta"}, names(got))
}

func TestApplySortRatingDescendingStable(t *testing.T) {
	products := []Product{
		{ID: "1", Name: "three", Rating: 3},
		{ID: "2", Name: "five-first", Rating: 5},
		{ID: "3", Name: "absent"},
		{ID: "4", Name: "five-second", Rating: 5},
	}

	got := Apply(products, Query{Sort: SortRating})

	assert.Equal(t, []string{"five-first", "five-second", "three", "absent"}, names(got))
}

func TestApplySortNewestDescendingStable(t *testing.T) {
	products := []Product{
		{ID: "1", Name: "old", CreatedAt: day(1)},
		{ID: "2", Name: "new-first", CreatedAt: day(9)},
		{ID: "3", Name: "undated"},
		{ID: "4", Name: "new-second", CreatedAt: day(9)},
	}

	got := Apply(products, Query{Sort: SortNewest})

	assert.Equal(t, []string{"new-first", "new-second", "old", "undated"}, names(got))
}

func TestApplyUnknownSortFallsBackToName(t *testing.T) {
	products := []Product{{ID: "1", Name: "b"}, {ID: "2", Name: "a"}}

	got := Apply(products, Query{Sort: "price"})

	assert.Equal(t, []string{"a", "b"}, names(got))
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	products := []Product{
		{ID: "1", Name: "zeta", Rating: 1},
		{ID: "2", Name: "alpha", Rating: 5},
	}

	_ = Apply(products, Query{Sort: SortRating})

	assert.Equal(t, "zeta", products[0].Name)
	assert.Equal(t, "alpha", products[1].Name)
}

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCategoriesEmptySnapshot(t *testing.T) {
	cats := BuildCategories(nil)

	require.Len(t, cats, 1)
	assert.Equal(t, Category{ID: "all", Name: "All Products", Count: 0}, cats[0])
}

func TestBuildCategoriesAllCountEqualsTotal(t *testing.T) {
	products := []Product{
		{ID: "1", Category: "windows"},
		{ID: "2", Category: "doors"},
		{ID: "3"},
		{ID: "4", Category: "windows"},
	}

	cats := BuildCategories(products)

	require.NotEmpty(t, cats)
	assert.Equal(t, "all", cats[0].ID)
	assert.Equal(t, len(products), cats[0].Count)
}

func TestBuildCategoriesCountsAndFirstSeenOrder(t *testing.T) {
	products := []Product{
		{ID: "1", Category: "doors"},
		{ID: "2", Category: "windows"},
		{ID: "3", Category: "doors"},
		{ID: "4"},
		{ID: "5", Category: "roofing"},
		{ID: "6", Category: "doors"},
	}

	cats := BuildCategories(products)

	require.Len(t, cats, 4)
	assert.Equal(t, Category{ID: "all", Name: "All Products", Count: 6}, cats[0])
	assert.Equal(t, Category{ID: "doors", Name: "Doors & Frames", Count: 3}, cats[1])
	assert.Equal(t, Category{ID: "windows", Name: "Aluminium Windows", Count: 1}, cats[2])
	assert.Equal(t, Category{ID: "roofing", Name: "Roofing Systems", Count: 1}, cats[3])

	// Per-category counts must add up to the categorised products only.
	sum := 0
	for _, c := range cats[1:] {
		sum += c.Count
	}
	assert.Equal(t, 5, sum)
}

func TestBuildCategoriesUncategorisedOnlyInAll(t *testing.T) {
	products := []Product{{ID: "1"}, {ID: "2"}}

	cats := BuildCategories(products)

	require.Len(t, cats, 1)
	assert.Equal(t, 2, cats[0].Count)
}

func TestCategoryName(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"windows", "Aluminium Windows"},
		{"doors", "Doors & Frames"},
		{"railings", "Railings & Balustrades"},
		{"curtain-walls", "Curtain Walls"},
		{"roofing", "Roofing Systems"},
		{"gates", "Gates"},
		{"shower-cubicles", "Shower-cubicles"},
		{"", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, CategoryName(tc.id), "id %q", tc.id)
	}
}

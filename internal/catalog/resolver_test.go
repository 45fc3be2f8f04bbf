package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	products := []Product{
		{ID: "abc123", Name: "Premium Sliding Window"},
		{ID: "def456", Name: "Hinged Door"},
	}

	got, err := Resolve("premium-sliding-window-abc123", products)
	require.NoError(t, err)
	assert.Equal(t, "abc123", got.ID)

	// A bare id with no readable prefix still resolves.
	got, err = Resolve("def456", products)
	require.NoError(t, err)
	assert.Equal(t, "def456", got.ID)
}

func TestResolveUnknownID(t *testing.T) {
	products := []Product{{ID: "abc123"}}

	_, err := Resolve("some-product-zzz999", products)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveInvalidSegment(t *testing.T) {
	products := []Product{{ID: "abc123"}}

	for _, s := range []string{"", "   ", "trailing-"} {
		_, err := Resolve(s, products)
		assert.ErrorIs(t, err, ErrInvalidSlug, "segment=%q", s)
	}
}

func TestResolveDuplicateIDFirstWins(t *testing.T) {
	products := []Product{
		{ID: "abc123", Name: "first"},
		{ID: "abc123", Name: "second"},
	}

	got, err := Resolve("anything-abc123", products)

	require.NoError(t, err)
	assert.Equal(t, "first", got.Name)
}

func TestResolveEmptySnapshot(t *testing.T) {
	_, err := Resolve("window-abc123", nil)

	assert.ErrorIs(t, err, ErrNotFound)
}

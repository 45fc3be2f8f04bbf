package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURLAndKeyRoundTrip(t *testing.T) {
	s := New(nil, "catalogue", "https://media.example.com/")

	url := s.URL("products/u1_window.jpg")
	assert.Equal(t, "https://media.example.com/products/u1_window.jpg", url)

	key, ok := s.KeyForURL(url)
	assert.True(t, ok)
	assert.Equal(t, "products/u1_window.jpg", key)
}

func TestKeyForURLRejectsForeignURLs(t *testing.T) {
	s := New(nil, "catalogue", "https://media.example.com")

	for _, url := range []string{
		"https://elsewhere.example/pic.jpg",
		"https://media.example.com/",
		"",
	} {
		_, ok := s.KeyForURL(url)
		assert.False(t, ok, "url=%q", url)
	}
}

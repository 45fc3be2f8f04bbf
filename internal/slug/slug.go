// Package slug builds and parses the product-detail URL segment. The
// segment is a readable prefix derived from the product name followed by
// the product id as the final hyphen-delimited token; the id therefore
// must not contain hyphens.
package slug

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Make composes the URL segment for a product. The name is lowercased
// with runs of non-alphanumerics collapsed to single hyphens; an empty
// prefix leaves the bare id.
func Make(name, id string) string {
	head := nonAlnum.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
	head = strings.Trim(head, "-")
	if head == "" {
		return id
	}
	return head + "-" + id
}

// ID extracts the trailing id token from a segment. A segment without
// hyphens is a bare id. The second return is false for empty segments or
// segments ending in the delimiter.
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	id := s[strings.LastIndexByte(s, '-')+1:]
	if id == "" {
		return "", false
	}
	return id, true
}

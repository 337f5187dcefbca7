package util

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slug lowercases raw and strips everything that is not a letter or digit.
// Used to turn synthesized names into email local parts.
func Slug(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))

	return nonAlnum.ReplaceAllString(s, "")
}

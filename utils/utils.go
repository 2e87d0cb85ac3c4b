package utils

import (
	"os"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// GenerateSlug lowercases name, strips accents and collapses everything
// else into hyphens ("Marketing Digital" -> "marketing-digital").
func GenerateSlug(name string) string {
	// Normalize accents
	t := norm.NFD.String(name)
	var b strings.Builder
	for _, r := range t {
		if unicode.Is(unicode.Mn, r) {
			continue // remove accent marks
		}
		b.WriteRune(r)
	}

	s := strings.ToLower(b.String())
	s = nonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// FileExtension returns the text after the final '.' of filename, or "txt"
// when the name carries no dot at all. A trailing dot yields an empty
// extension, matching how stored paths have always been derived.
func FileExtension(filename string) string {
	i := strings.LastIndex(filename, ".")
	if i < 0 {
		return "txt"
	}
	return filename[i+1:]
}

// EnvDefault reads key from the environment, falling back to def when the
// variable is unset or empty.
func EnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

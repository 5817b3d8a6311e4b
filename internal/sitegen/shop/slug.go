package shop

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// ToSlug converts a string to a URL-safe slug.
// Lowercase, replace non-alphanumeric with hyphens, trim leading/trailing hyphens.
func ToSlug(s string) string {
	s = strings.ToLower(s)
	s = nonAlnum.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	return s
}

// Slugger assigns slugs that are unique within a single normalization pass.
// It is not safe for concurrent use; slug assignment is sequential.
type Slugger struct {
	seen map[string]bool
}

// NewSlugger creates an empty slug assigner.
func NewSlugger() *Slugger {
	return &Slugger{seen: make(map[string]bool)}
}

// Assign derives a unique slug from name. position is the 1-based position
// of the shop in the output sequence, used as a fallback when the name slugs
// to nothing. Collisions get a short digest of the original name appended;
// a repeated identical name falls through to a numeric suffix.
func (sl *Slugger) Assign(name string, position int) string {
	base := ToSlug(name)
	if base == "" {
		base = fmt.Sprintf("shop-%d", position)
	}

	slug := base
	if sl.seen[slug] {
		slug = base + "-" + nameDigest(name)
	}
	for n := 2; sl.seen[slug]; n++ {
		slug = fmt.Sprintf("%s-%s-%d", base, nameDigest(name), n)
	}

	sl.seen[slug] = true
	return slug
}

// nameDigest returns the first 6 hex characters of the name's md5 digest.
func nameDigest(name string) string {
	sum := md5.Sum([]byte(name))
	return hex.EncodeToString(sum[:])[:6]
}

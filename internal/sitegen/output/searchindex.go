package output

import (
	"encoding/json"

	"shopsites/internal/sitegen/shop"
)

type searchEntry struct {
	N string `json:"n"`           // name
	S string `json:"s"`           // slug
	C string `json:"c,omitempty"` // category
	A string `json:"a,omitempty"` // address
}

// GenerateSearchIndex builds a compact JSON index of every shop, in shop
// order, for client-side filtering on the overview page.
func GenerateSearchIndex(shops []*shop.Shop) ([]byte, error) {
	entries := make([]searchEntry, 0, len(shops))
	for _, s := range shops {
		entries = append(entries, searchEntry{
			N: s.Name,
			S: s.Slug,
			C: s.Category,
			A: s.Address,
		})
	}
	return json.Marshal(entries)
}

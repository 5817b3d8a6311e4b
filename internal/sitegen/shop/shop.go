package shop

// Shop is one normalized business listing parsed from a single source row.
// Shops are immutable once normalization completes.
type Shop struct {
	Slug      string
	Name      string
	MapLink   string
	Rating    string
	Reviews   string
	Price     string
	Category  string
	Address   string
	Status    string
	Hours     string
	Image     string
	OrderLink string
	Services  []string
}

// HasImage reports whether the listing carried a usable image URL.
func (s *Shop) HasImage() bool {
	return s.Image != ""
}

// HasOrderLink reports whether the listing carried a well-formed order URL.
func (s *Shop) HasOrderLink() bool {
	return s.OrderLink != ""
}

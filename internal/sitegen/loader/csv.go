package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"go.uber.org/zap"

	"shopsites/internal/sitegen/config"
	"shopsites/internal/sitegen/shop"
)

// Column positions in the maps export. Semantics are fixed by index, never
// by header name; rows shorter than a column index simply lack that field.
const (
	colLink     = 4
	colName     = 5
	colRating   = 6
	colReviews  = 7
	colPrice    = 9
	colCategory = 10
	colAddress  = 12
	colStatus   = 13
	colHours    = 14
	colImage    = 15
	colOrder    = 21

	// Service tags occupy a fixed run of trailing columns.
	colServicesStart = 16
	colServicesEnd   = 21 // exclusive

	minColumns = 6
)

// placeholderToken is the export's "no data" marker, not a literal value.
const placeholderToken = "·"

// CSVLoader loads shops from a positional CSV export.
type CSVLoader struct {
	Config *config.Config
	Logger *zap.Logger
}

// Load reads the configured CSV file and normalizes its rows into shops.
func (l *CSVLoader) Load() ([]*shop.Shop, error) {
	f, err := os.Open(l.Config.Paths.Data)
	if err != nil {
		return nil, fmt.Errorf("opening data file %s: %w", l.Config.Paths.Data, err)
	}
	defer f.Close()

	rows, err := readRows(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", l.Config.Paths.Data, err)
	}

	return l.Normalize(rows), nil
}

// readRows reads every record, tolerating rows of differing length.
func readRows(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}

// Normalize converts raw rows into shops, preserving first-occurrence order.
// Malformed, short, and duplicate rows are dropped without error; slug
// collision state never outlives the pass.
func (l *CSVLoader) Normalize(rows [][]string) []*shop.Shop {
	if l.Config.Data.HasHeader && len(rows) > 0 {
		rows = rows[1:]
	}

	slugger := shop.NewSlugger()
	seenLinks := make(map[string]bool)

	var shops []*shop.Shop
	skipped := 0

	for _, row := range rows {
		s, ok := l.normalizeRow(row, seenLinks)
		if !ok {
			skipped++
			continue
		}
		s.Slug = slugger.Assign(s.Name, len(shops)+1)
		shops = append(shops, s)
	}

	if skipped > 0 && l.Logger != nil {
		l.Logger.Info("skipped rows during ingestion",
			zap.Int("skipped", skipped),
			zap.Int("accepted", len(shops)))
	}

	return shops
}

func (l *CSVLoader) normalizeRow(row []string, seenLinks map[string]bool) (*shop.Shop, bool) {
	if len(row) < minColumns {
		return nil, false
	}

	link := cleanField(column(row, colLink))
	name := cleanField(column(row, colName))
	if !strings.HasPrefix(link, l.Config.Data.LinkPrefix) {
		return nil, false
	}
	if name == "" {
		return nil, false
	}
	if l.Config.Data.DedupEnabled() && seenLinks[link] {
		return nil, false
	}
	seenLinks[link] = true

	var services []string
	for i := colServicesStart; i < colServicesEnd; i++ {
		if v := cleanField(column(row, i)); v != "" {
			services = append(services, v)
		}
	}

	return &shop.Shop{
		Name:      name,
		MapLink:   link,
		Rating:    cleanField(column(row, colRating)),
		Reviews:   cleanField(column(row, colReviews)),
		Price:     cleanField(column(row, colPrice)),
		Category:  cleanField(column(row, colCategory)),
		Address:   cleanField(column(row, colAddress)),
		Status:    cleanField(column(row, colStatus)),
		Hours:     cleanField(column(row, colHours)),
		Image:     cleanField(column(row, colImage)),
		OrderLink: absoluteURL(cleanField(column(row, colOrder))),
		Services:  services,
	}, true
}

// column safely retrieves a positional value from a possibly short row.
func column(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

// cleanField normalizes the ideographic space, trims surrounding whitespace,
// and maps the lone placeholder dot to empty.
func cleanField(v string) string {
	v = strings.ReplaceAll(v, "　", " ")
	v = strings.TrimSpace(v)
	if v == placeholderToken {
		return ""
	}
	return v
}

// absoluteURL keeps v only when it is a well-formed absolute http(s) URL.
func absoluteURL(v string) string {
	if v == "" {
		return ""
	}
	u, err := url.Parse(v)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ""
	}
	return v
}

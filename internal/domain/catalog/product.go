package catalog

import (
	"strings"
	"time"

	"github.com/smartsolar/backend/internal/domain/document"
)

// Product is a catalog entry read from the products collection.
// Specification and Guide are ordered step lists; legacy documents
// store them as a single free-text string and newer ones as arrays,
// and both shapes are accepted at decode time.
type Product struct {
	ID            string
	Title         string
	Category      string
	Price         document.Price
	About         string
	Description   string
	Specification []string
	Guide         []string
	Image         string
	CreatedAt     time.Time
}

// ParseProduct decodes a product document.
func ParseProduct(doc document.Document) Product {
	return Product{
		ID:            doc.ID,
		Title:         doc.Str("title"),
		Category:      doc.Str("category"),
		Price:         doc.Price("price"),
		About:         doc.Str("about"),
		Description:   doc.Str("description"),
		Specification: doc.StrList("specification"),
		Guide:         doc.StrList("guide"),
		Image:         doc.Str("image"),
		CreatedAt:     doc.Time("createdAt"),
	}
}

// EventTime is the ordering key for the newest-first sort.
func (p Product) EventTime() time.Time {
	return p.CreatedAt
}

// DisplayTitle falls back to a label when the document has no title.
func (p Product) DisplayTitle() string {
	if p.Title == "" {
		return "Unnamed Product"
	}
	return p.Title
}

// DescriptionPreview truncates the description for the card view.
func (p Product) DescriptionPreview() string {
	if p.Description == "" {
		return "No description available"
	}
	runes := []rune(p.Description)
	if len(runes) <= 100 {
		return p.Description
	}
	return string(runes[:100]) + "..."
}

// NewProductInput carries the fields of the product creation form.
// Price arrives as the raw form value; it is stored pre-formatted with
// the currency prefix, matching how existing product documents hold it.
type NewProductInput struct {
	Title         string
	Category      string
	Price         string
	About         string
	Description   string
	Specification []string
	Guide         []string
	Image         string
}

// Fields builds the document to insert. A lowercase copy of the title
// is stored alongside it as the search index field, and the step lists
// are normalized before storage.
func (in NewProductInput) Fields(now time.Time) map[string]any {
	return map[string]any{
		"title":           in.Title,
		"title_lowercase": strings.ToLower(in.Title),
		"category":        in.Category,
		"price":           "RS " + strings.TrimSpace(in.Price),
		"about":           in.About,
		"description":     in.Description,
		"specification":   NormalizeSteps(in.Specification),
		"guide":           NormalizeSteps(in.Guide),
		"image":           in.Image,
		"createdAt":       now.UTC().Format(time.RFC3339),
	}
}

// NormalizeSteps trims each entry and drops the ones that are blank
// after trimming, preserving order. The result is never nil so the
// stored field is always an array.
func NormalizeSteps(steps []string) []string {
	out := make([]string, 0, len(steps))
	for _, step := range steps {
		if trimmed := strings.TrimSpace(step); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

package commerce

import (
	"strings"
	"time"

	"github.com/smartsolar/backend/internal/domain/document"
)

// StatusPending is the status assumed for any order or booking whose
// document does not carry one.
const StatusPending = "pending"

// OrderItem is one line of an order.
type OrderItem struct {
	Quantity  int
	Title     string
	UnitPrice document.Price
	LineTotal document.Price
}

// Order is a customer purchase read from the orders collection.
type Order struct {
	ID            string
	CreatedAt     time.Time
	TotalAmount   document.Price
	PaymentMethod string
	Address       string
	City          string
	Items         []OrderItem
	Status        string
	UserID        string
}

// ParseOrder decodes an order document. Every field is optional; the
// view layer substitutes placeholders for anything missing.
func ParseOrder(doc document.Document) Order {
	order := Order{
		ID:            doc.ID,
		CreatedAt:     doc.Time("createdAt"),
		TotalAmount:   doc.Price("totalAmount"),
		PaymentMethod: doc.Str("paymentMethod"),
		Address:       doc.Str("address"),
		City:          doc.Str("city"),
		Status:        doc.StrOr("status", StatusPending),
		UserID:        doc.Str("userId"),
	}
	for _, item := range doc.Maps("items") {
		entry := document.Document{Fields: item}
		order.Items = append(order.Items, OrderItem{
			Quantity:  entry.Int("quantity"),
			Title:     entry.Str("title"),
			UnitPrice: entry.Price("price"),
			LineTotal: entry.Price("total"),
		})
	}
	return order
}

// Reference is the short order reference shown on the card header:
// the first six characters of the id, uppercased.
func (o Order) Reference() string {
	ref := o.ID
	if len(ref) > 6 {
		ref = ref[:6]
	}
	return strings.ToUpper(ref)
}

// EventTime is the ordering key for the newest-first sort.
func (o Order) EventTime() time.Time {
	return o.CreatedAt
}

// ShipTo joins the shipping address fields for display.
func (o Order) ShipTo() string {
	return joinComma(o.Address, o.City)
}

func joinComma(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ", ")
}

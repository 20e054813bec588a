package commerce

import (
	"time"

	"github.com/smartsolar/backend/internal/domain/document"
)

// ServicePackage is one service selected on a booking.
type ServicePackage struct {
	Name  string
	Price document.Price
}

// Booking is a service appointment read from the bookings collection.
type Booking struct {
	ID              string
	Timestamp       time.Time
	Date            string
	Time            string
	ServiceType     string
	Category        string
	Location        string
	CompanyAndModel string
	Watt            string
	TotalPrice      document.Price
	Packages        []ServicePackage
	Status          string
	UserID          string
	UserEmail       string
}

// ParseBooking decodes a booking document. Legacy documents store the
// selected packages as two index-aligned arrays (packageNames and
// packagePrices); they are zipped into ServicePackage pairs here, at
// the gateway boundary, so nothing downstream depends on the parallel
// arrays staying in sync. A name without a matching price keeps the
// name and renders the price as a placeholder.
func ParseBooking(doc document.Document) Booking {
	booking := Booking{
		ID:              doc.ID,
		Timestamp:       doc.Time("timestamp"),
		Date:            doc.Str("date"),
		Time:            doc.Str("time"),
		ServiceType:     doc.Str("serviceType"),
		Category:        doc.Str("category"),
		Location:        doc.Str("location"),
		CompanyAndModel: doc.Str("companyAndModel"),
		Watt:            doc.Str("watt"),
		TotalPrice:      doc.Price("totalPrice"),
		Status:          doc.StrOr("status", StatusPending),
		UserID:          doc.Str("userId"),
		UserEmail:       doc.Str("userEmail"),
	}

	names := doc.StrList("packageNames")
	prices, _ := doc.Fields["packagePrices"].([]any)
	for i, name := range names {
		pkg := ServicePackage{Name: name}
		if i < len(prices) {
			pkg.Price = document.ParsePrice(prices[i])
		}
		booking.Packages = append(booking.Packages, pkg)
	}
	return booking
}

// EventTime is the ordering key for the newest-first sort. Bookings
// without a stored timestamp fall back to their date string.
func (b Booking) EventTime() time.Time {
	if !b.Timestamp.IsZero() {
		return b.Timestamp
	}
	return document.ParseTime(b.Date)
}

// System describes the booked equipment, e.g. "Acme X2 (5kW)".
func (b Booking) System() string {
	if b.CompanyAndModel == "" && b.Watt == "" {
		return ""
	}
	model := b.CompanyAndModel
	if model == "" {
		model = document.Placeholder
	}
	watt := b.Watt
	if watt == "" {
		watt = document.Placeholder
	}
	return model + " (" + watt + ")"
}

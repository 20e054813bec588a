// Package dashboard implements the admin dashboard's list controllers:
// one per collection, each fetching the full set from the gateway,
// caching it in memory, slicing it into fixed-size pages and handing
// view models to a pluggable renderer. Collections are loaded lazily on
// first visit and rebuilt wholesale after every mutation.
package dashboard

import (
	"github.com/smartsolar/backend/internal/domain/document"
	"go.uber.org/zap"
)

// Dashboard aggregates the four tab controllers around a shared store,
// cross-reference resolver and notifier. Each controller renders into
// its own capture surface, read back by the HTTP layer.
type Dashboard struct {
	Orders   *OrderController
	Bookings *BookingController
	Products *ProductController
	Users    *UserController

	views map[document.Collection]*CaptureRenderer
}

// NewDashboard wires the controllers. One resolver is shared by orders
// and bookings so a customer looked up for an order is a cache hit for
// their booking.
func NewDashboard(store document.Store, blobs document.BlobStore, notifier Notifier, logger *zap.Logger) *Dashboard {
	resolver := NewUserResolver(store, logger)
	views := map[document.Collection]*CaptureRenderer{
		document.Orders:   NewCaptureRenderer(),
		document.Bookings: NewCaptureRenderer(),
		document.Products: NewCaptureRenderer(),
		document.Users:    NewCaptureRenderer(),
	}

	return &Dashboard{
		Orders:   NewOrderController(store, resolver, views[document.Orders], notifier, logger),
		Bookings: NewBookingController(store, resolver, views[document.Bookings], notifier, logger),
		Products: NewProductController(store, blobs, views[document.Products], notifier, logger),
		Users:    NewUserController(store, views[document.Users], notifier, logger),
		views:    views,
	}
}

// View returns the last rendered page of a collection's tab.
func (d *Dashboard) View(col document.Collection) (PageView, bool) {
	renderer, ok := d.views[col]
	if !ok {
		return PageView{}, false
	}
	return renderer.Last()
}

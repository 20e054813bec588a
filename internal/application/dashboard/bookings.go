package dashboard

import (
	"context"

	"github.com/smartsolar/backend/internal/domain/commerce"
	"github.com/smartsolar/backend/internal/domain/document"
	"github.com/smartsolar/backend/internal/domain/identity"
	"go.uber.org/zap"
)

// BookingController drives the bookings tab.
type BookingController struct {
	listController[commerce.Booking]
	resolver *UserResolver
}

// NewBookingController creates the bookings tab controller.
func NewBookingController(
	store document.Store,
	resolver *UserResolver,
	renderer Renderer,
	notifier Notifier,
	logger *zap.Logger,
) *BookingController {
	c := &BookingController{resolver: resolver}
	c.listController = listController[commerce.Booking]{
		collection:    document.Bookings,
		store:         store,
		renderer:      renderer,
		notifier:      notifier,
		logger:        logger,
		decode:        commerce.ParseBooking,
		eventTime:     commerce.Booking.EventTime,
		deletePrompt:  "Are you sure you want to delete this booking?",
		deletedMsg:    "Booking deleted successfully!",
		deleteFailMsg: "Failed to delete booking. Please try again.",
	}
	c.present = c.presentPage
	return c
}

func (c *BookingController) presentPage(ctx context.Context, bookings []commerce.Booking) any {
	views := make([]BookingView, 0, len(bookings))
	for _, booking := range bookings {
		var customer *identity.User
		if booking.UserID != "" {
			customer = c.resolver.Resolve(ctx, booking.UserID)
		}
		views = append(views, newBookingView(booking, customer))
	}
	return views
}

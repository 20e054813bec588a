package dashboard

import (
	"time"

	"github.com/smartsolar/backend/internal/domain/catalog"
	"github.com/smartsolar/backend/internal/domain/commerce"
	"github.com/smartsolar/backend/internal/domain/document"
	"github.com/smartsolar/backend/internal/domain/identity"
)

// View models are the pure data-to-view mapping: everything the cards
// show, already formatted, with placeholders substituted. Renderers
// bind them to a concrete surface without further lookups.

// CustomerView is the resolved cross-reference block shown on order and
// booking cards. Every field degrades to the placeholder when the
// referenced profile is missing.
type CustomerView struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

func newCustomerView(user *identity.User) CustomerView {
	if user == nil {
		return CustomerView{
			Name:    document.Placeholder,
			Address: document.Placeholder,
			Email:   document.Placeholder,
			Phone:   document.Placeholder,
		}
	}
	return CustomerView{
		Name:    user.FullName(),
		Address: orPlaceholder(user.HomeAddress()),
		Email:   orPlaceholder(user.Email),
		Phone:   orPlaceholder(user.Phone),
	}
}

// OrderItemView is one formatted order line.
type OrderItemView struct {
	Quantity int    `json:"quantity"`
	Title    string `json:"title"`
	Price    string `json:"price"`
	Total    string `json:"total"`
}

// OrderView is one order card.
type OrderView struct {
	ID            string          `json:"id"`
	Reference     string          `json:"reference"`
	Status        string          `json:"status"`
	Date          string          `json:"date"`
	TotalAmount   string          `json:"total_amount"`
	PaymentMethod string          `json:"payment_method"`
	ShipTo        string          `json:"ship_to"`
	Items         []OrderItemView `json:"items"`
	Customer      CustomerView    `json:"customer"`
}

func newOrderView(order commerce.Order, customer *identity.User) OrderView {
	view := OrderView{
		ID:            order.ID,
		Reference:     order.Reference(),
		Status:        order.Status,
		Date:          formatDate(order.CreatedAt),
		TotalAmount:   order.TotalAmount.Display(),
		PaymentMethod: orPlaceholder(order.PaymentMethod),
		ShipTo:        orPlaceholder(order.ShipTo()),
		Items:         []OrderItemView{},
		Customer:      newCustomerView(customer),
	}
	for _, item := range order.Items {
		view.Items = append(view.Items, OrderItemView{
			Quantity: item.Quantity,
			Title:    item.Title,
			Price:    item.UnitPrice.Display(),
			Total:    item.LineTotal.Display(),
		})
	}
	return view
}

// PackageView is one selected service on a booking card.
type PackageView struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

// BookingView is one booking card.
type BookingView struct {
	ID         string        `json:"id"`
	Title      string        `json:"title"`
	Status     string        `json:"status"`
	DateTime   string        `json:"date_time"`
	Category   string        `json:"category"`
	Location   string        `json:"location"`
	System     string        `json:"system"`
	TotalPrice string        `json:"total_price"`
	Packages   []PackageView `json:"packages"`
	Customer   CustomerView  `json:"customer"`
}

func newBookingView(booking commerce.Booking, customer *identity.User) BookingView {
	view := BookingView{
		ID:         booking.ID,
		Title:      orDefault(booking.ServiceType, "Service Booking"),
		Status:     booking.Status,
		DateTime:   orPlaceholder(booking.Date) + " at " + orPlaceholder(booking.Time),
		Category:   orPlaceholder(booking.Category),
		Location:   orPlaceholder(booking.Location),
		System:     orPlaceholder(booking.System()),
		TotalPrice: booking.TotalPrice.Display(),
		Packages:   []PackageView{},
		Customer:   newCustomerView(customer),
	}
	// Older bookings carry the customer email inline; use it when the
	// profile reference does not resolve.
	if customer == nil && booking.UserEmail != "" {
		view.Customer.Email = booking.UserEmail
	}
	for _, pkg := range booking.Packages {
		view.Packages = append(view.Packages, PackageView{
			Name:  pkg.Name,
			Price: pkg.Price.Display(),
		})
	}
	return view
}

// ProductView is one product card.
type ProductView struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Price         string   `json:"price"`
	Category      string   `json:"category"`
	About         string   `json:"about"`
	Description   string   `json:"description"`
	Specification []string `json:"specification"`
	Guide         []string `json:"guide"`
	Image         string   `json:"image,omitempty"`
}

func newProductView(product catalog.Product) ProductView {
	return ProductView{
		ID:            product.ID,
		Title:         product.DisplayTitle(),
		Price:         product.Price.Display(),
		Category:      orPlaceholder(product.Category),
		About:         orPlaceholder(product.About),
		Description:   product.DescriptionPreview(),
		Specification: product.Specification,
		Guide:         product.Guide,
		Image:         product.Image,
	}
}

// UserView is one customer card.
type UserView struct {
	Name    string `json:"name"`
	ID      string `json:"id"`
	Role    string `json:"role"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Created string `json:"created"`
	Updated string `json:"updated"`
}

func newUserView(user identity.User) UserView {
	return UserView{
		ID:      user.ID,
		Name:    user.FullName(),
		Role:    user.RoleLabel(),
		Email:   orPlaceholder(user.Email),
		Phone:   orPlaceholder(user.Phone),
		Address: orPlaceholder(user.HomeAddress()),
		Created: formatDateTime(user.CreatedAt),
		Updated: formatDateTime(user.UpdatedAt),
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return document.Placeholder
	}
	return t.Format("Jan 2, 2006")
}

func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return document.Placeholder
	}
	return t.Format("Jan 2, 2006 3:04 PM")
}

func orPlaceholder(s string) string {
	return orDefault(s, document.Placeholder)
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

package dashboard

import (
	"context"

	"github.com/smartsolar/backend/internal/domain/commerce"
	"github.com/smartsolar/backend/internal/domain/document"
	"github.com/smartsolar/backend/internal/domain/identity"
	"go.uber.org/zap"
)

// OrderController drives the orders tab. Each rendered order is
// enriched with the referenced customer profile through the shared
// resolver.
type OrderController struct {
	listController[commerce.Order]
	resolver *UserResolver
}

// NewOrderController creates the orders tab controller.
func NewOrderController(
	store document.Store,
	resolver *UserResolver,
	renderer Renderer,
	notifier Notifier,
	logger *zap.Logger,
) *OrderController {
	c := &OrderController{resolver: resolver}
	c.listController = listController[commerce.Order]{
		collection:    document.Orders,
		store:         store,
		renderer:      renderer,
		notifier:      notifier,
		logger:        logger,
		decode:        commerce.ParseOrder,
		eventTime:     commerce.Order.EventTime,
		deletePrompt:  "Are you sure you want to delete this order?",
		deletedMsg:    "Order deleted successfully!",
		deleteFailMsg: "Failed to delete order. Please try again.",
	}
	c.present = c.presentPage
	return c
}

func (c *OrderController) presentPage(ctx context.Context, orders []commerce.Order) any {
	views := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		var customer *identity.User
		if order.UserID != "" {
			customer = c.resolver.Resolve(ctx, order.UserID)
		}
		views = append(views, newOrderView(order, customer))
	}
	return views
}

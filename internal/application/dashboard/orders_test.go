package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/smartsolar/backend/internal/domain/document"
	"github.com/smartsolar/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func orderDoc(id, userID string, created time.Time) document.Document {
	fields := map[string]any{
		"createdAt":     created.Format(time.RFC3339),
		"totalAmount":   float64(4000),
		"paymentMethod": "cod",
		"address":       "4 Mall Road",
		"city":          "Lahore",
		"items": []any{
			map[string]any{
				"quantity": float64(2),
				"title":    "Solar Panel 550W",
				"price":    float64(2000),
				"total":    float64(4000),
			},
		},
	}
	if userID != "" {
		fields["userId"] = userID
	}
	return document.Document{ID: id, Fields: fields}
}

func TestOrderControllerEnrichesCustomers(t *testing.T) {
	base := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	store := new(MockStore)
	store.On("List", mock.Anything, document.Orders).Return([]document.Document{
		orderDoc("aaa111", "u1", base),
		orderDoc("bbb222", "ghost", base.Add(time.Hour)),
		orderDoc("ccc333", "", base.Add(2*time.Hour)),
	}, nil)
	store.On("Get", mock.Anything, document.Users, "u1").Return(&document.Document{
		ID: "u1",
		Fields: map[string]any{
			"firstName": "Sara",
			"lastName":  "Khan",
			"email":     "sara@example.com",
			"phone":     "0300-1234567",
			"address":   "7 Canal Bank",
			"city":      "Lahore",
		},
	}, nil).Once()
	store.On("Get", mock.Anything, document.Users, "ghost").Return(nil, shared.ErrNotFound).Once()

	renderer := NewCaptureRenderer()
	resolver := NewUserResolver(store, zap.NewNop())
	ctrl := NewOrderController(store, resolver, renderer, &recordingNotifier{}, zap.NewNop())

	ctrl.FetchAll(context.Background())

	view, rendered := renderer.Last()
	require.True(t, rendered)
	items := view.Items.([]OrderView)
	require.Len(t, items, 3)

	// Enrichment never reorders: newest order stays first.
	assert.Equal(t, "ccc333", items[0].ID)
	assert.Equal(t, "bbb222", items[1].ID)
	assert.Equal(t, "aaa111", items[2].ID)
	assert.Equal(t, "CCC333", items[0].Reference)

	// Orders without a user reference and orders whose profile is gone
	// both degrade to placeholders.
	for _, card := range []OrderView{items[0], items[1]} {
		assert.Equal(t, document.Placeholder, card.Customer.Name)
		assert.Equal(t, document.Placeholder, card.Customer.Email)
		assert.Equal(t, document.Placeholder, card.Customer.Phone)
		assert.Equal(t, document.Placeholder, card.Customer.Address)
	}

	resolved := items[2].Customer
	assert.Equal(t, "Sara Khan", resolved.Name)
	assert.Equal(t, "sara@example.com", resolved.Email)
	assert.Equal(t, "7 Canal Bank, Lahore", resolved.Address)

	require.Len(t, items[2].Items, 1)
	assert.Equal(t, "Solar Panel 550W", items[2].Items[0].Title)
	assert.Equal(t, 2, items[2].Items[0].Quantity)
	assert.Equal(t, "RS 4000", items[2].TotalAmount)

	store.AssertExpectations(t)
}

func TestOrderControllerResolvesEachUserOnce(t *testing.T) {
	base := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	store := new(MockStore)
	store.On("List", mock.Anything, document.Orders).Return([]document.Document{
		orderDoc("aaa111", "u1", base),
		orderDoc("bbb222", "u1", base.Add(time.Hour)),
	}, nil)
	// Both cards reference u1; the Once() expectation fails if the
	// second card reaches the store instead of the cache.
	store.On("Get", mock.Anything, document.Users, "u1").Return(&document.Document{
		ID:     "u1",
		Fields: map[string]any{"firstName": "Sara"},
	}, nil).Once()

	renderer := NewCaptureRenderer()
	resolver := NewUserResolver(store, zap.NewNop())
	ctrl := NewOrderController(store, resolver, renderer, &recordingNotifier{}, zap.NewNop())

	ctrl.FetchAll(context.Background())

	view, _ := renderer.Last()
	items := view.Items.([]OrderView)
	require.Len(t, items, 2)
	assert.Equal(t, "Sara", items[0].Customer.Name)
	assert.Equal(t, "Sara", items[1].Customer.Name)
	store.AssertExpectations(t)
}

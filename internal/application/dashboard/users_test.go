package dashboard

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/smartsolar/backend/internal/domain/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func userDoc(id, firstName, role string, created time.Time) document.Document {
	return document.Document{
		ID: id,
		Fields: map[string]any{
			"firstName": firstName,
			"userType":  role,
			"createdAt": created.Format(time.RFC3339),
		},
	}
}

func TestUserControllerFiltersAdmins(t *testing.T) {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	docs := make([]document.Document, 0, 8)
	for i := 0; i < 6; i++ {
		docs = append(docs, userDoc(fmt.Sprintf("c%d", i), fmt.Sprintf("Customer%d", i), "customer", base.Add(time.Duration(i)*time.Hour)))
	}
	docs = append(docs,
		userDoc("a1", "Root", "admin", base.Add(100*time.Hour)),
		userDoc("a2", "Backup", "admin", base.Add(101*time.Hour)),
	)

	store := new(MockStore)
	store.On("List", mock.Anything, document.Users).Return(docs, nil)

	renderer := NewCaptureRenderer()
	ctrl := NewUserController(store, renderer, &recordingNotifier{}, zap.NewNop())
	ctrl.FetchAll(context.Background())

	// Admin profiles never enter the collection, so the count and the
	// page math reflect customers only.
	assert.Equal(t, 6, ctrl.Count())
	assert.Equal(t, 2, ctrl.TotalPages())

	view, rendered := renderer.Last()
	require.True(t, rendered)
	assert.Equal(t, 6, view.Total)

	items := view.Items.([]UserView)
	require.Len(t, items, PageSize)
	for _, item := range items {
		assert.NotEqual(t, "Admin", item.Role)
	}
	assert.Equal(t, "Customer5", items[0].Name)
}

func TestUserControllerAllAdmins(t *testing.T) {
	store := new(MockStore)
	store.On("List", mock.Anything, document.Users).Return([]document.Document{
		userDoc("a1", "Root", "admin", time.Now()),
	}, nil)

	renderer := NewCaptureRenderer()
	ctrl := NewUserController(store, renderer, &recordingNotifier{}, zap.NewNop())
	ctrl.FetchAll(context.Background())

	assert.Equal(t, 0, ctrl.Count())
	view, _ := renderer.Last()
	assert.True(t, view.Empty)
	assert.Equal(t, 0, view.TotalPages)
}

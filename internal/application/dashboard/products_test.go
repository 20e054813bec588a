package dashboard

import (
	"context"
	"strings"
	"testing"

	"github.com/smartsolar/backend/internal/domain/catalog"
	"github.com/smartsolar/backend/internal/domain/document"
	"github.com/smartsolar/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestProductCreate(t *testing.T) {
	store := new(MockStore)
	store.On("Insert", mock.Anything, document.Products, mock.MatchedBy(func(fields map[string]any) bool {
		return fields["title"] == "Solar Panel 550W" &&
			fields["title_lowercase"] == "solar panel 550w"
	})).Return("new-id", nil).Once()
	store.On("List", mock.Anything, document.Products).Return([]document.Document{}, nil).Once()

	notifier := &recordingNotifier{}
	ctrl := NewProductController(store, new(MockBlobStore), NewCaptureRenderer(), notifier, zap.NewNop())

	err := ctrl.Create(context.Background(), catalog.NewProductInput{
		Title: "Solar Panel 550W",
		Price: "185000",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Product added successfully!"}, notifier.successes)
	store.AssertExpectations(t)
}

func TestProductCreateInsertFails(t *testing.T) {
	store := new(MockStore)
	store.On("Insert", mock.Anything, document.Products, mock.Anything).
		Return("", shared.ErrGatewayUnavailable).Once()

	notifier := &recordingNotifier{}
	ctrl := NewProductController(store, new(MockBlobStore), NewCaptureRenderer(), notifier, zap.NewNop())

	err := ctrl.Create(context.Background(), catalog.NewProductInput{Title: "Inverter"})
	assert.ErrorIs(t, err, shared.ErrMutationFailed)
	assert.Equal(t, []string{"Failed to add product. Please try again."}, notifier.failures)

	// A failed insert does not refetch; the form stays open.
	store.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestProductUploadImage(t *testing.T) {
	blobs := new(MockBlobStore)
	blobs.On("Upload", mock.Anything, mock.MatchedBy(func(path string) bool {
		return strings.HasPrefix(path, "product_images/product_") &&
			strings.HasSuffix(path, "_panel.jpg")
	}), []byte("img-bytes"), "image/jpeg").Return("https://cdn.example.com/panel.jpg", nil).Once()

	ctrl := NewProductController(new(MockStore), blobs, NewCaptureRenderer(), &recordingNotifier{}, zap.NewNop())

	url, err := ctrl.UploadImage(context.Background(), "panel.jpg", []byte("img-bytes"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/panel.jpg", url)
	blobs.AssertExpectations(t)
}

func TestProductUploadImageFails(t *testing.T) {
	blobs := new(MockBlobStore)
	blobs.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", shared.ErrGatewayUnavailable).Once()

	ctrl := NewProductController(new(MockStore), blobs, NewCaptureRenderer(), &recordingNotifier{}, zap.NewNop())

	url, err := ctrl.UploadImage(context.Background(), "panel.jpg", []byte("x"), "image/jpeg")
	assert.ErrorIs(t, err, shared.ErrMutationFailed)
	assert.Empty(t, url)
}

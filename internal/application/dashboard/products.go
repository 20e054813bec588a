package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/smartsolar/backend/internal/domain/catalog"
	"github.com/smartsolar/backend/internal/domain/document"
	"github.com/smartsolar/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ProductController drives the products tab. It is the only controller
// with a create operation, fed by the add-product form.
type ProductController struct {
	listController[catalog.Product]
	blobs document.BlobStore
}

// NewProductController creates the products tab controller.
func NewProductController(
	store document.Store,
	blobs document.BlobStore,
	renderer Renderer,
	notifier Notifier,
	logger *zap.Logger,
) *ProductController {
	c := &ProductController{blobs: blobs}
	c.listController = listController[catalog.Product]{
		collection:    document.Products,
		store:         store,
		renderer:      renderer,
		notifier:      notifier,
		logger:        logger,
		decode:        catalog.ParseProduct,
		eventTime:     catalog.Product.EventTime,
		deletePrompt:  "Are you sure you want to delete this product?",
		deletedMsg:    "Product deleted successfully!",
		deleteFailMsg: "Failed to delete product. Please try again.",
	}
	c.present = c.presentPage
	return c
}

func (c *ProductController) presentPage(_ context.Context, products []catalog.Product) any {
	views := make([]ProductView, 0, len(products))
	for _, product := range products {
		views = append(views, newProductView(product))
	}
	return views
}

// Create inserts a new product built from the form input. Field values
// are stored as provided apart from the derived lowercase title and the
// normalized step lists. On success the creation surface closes and the
// list refetches; on failure the surface stays open with the entered
// values intact, so the caller only gets the error back.
func (c *ProductController) Create(ctx context.Context, input catalog.NewProductInput) error {
	fields := input.Fields(time.Now())
	if _, err := c.store.Insert(ctx, document.Products, fields); err != nil {
		c.logger.Error("failed to add product", zap.String("title", input.Title), zap.Error(err))
		c.notifier.Failure("Failed to add product. Please try again.")
		return shared.ErrMutationFailed
	}

	c.FetchAll(ctx)
	c.notifier.Success("Product added successfully!")
	return nil
}

// UploadImage stores a product image in the blob store and returns the
// URL to put in the product's image field.
func (c *ProductController) UploadImage(ctx context.Context, filename string, data []byte, contentType string) (string, error) {
	path := fmt.Sprintf("product_images/product_%d_%s", time.Now().UnixMilli(), filename)
	url, err := c.blobs.Upload(ctx, path, data, contentType)
	if err != nil {
		c.logger.Error("failed to upload product image", zap.String("path", path), zap.Error(err))
		return "", shared.ErrMutationFailed
	}
	return url, nil
}

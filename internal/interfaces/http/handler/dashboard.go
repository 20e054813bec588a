package handler

import (
	"context"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/smartsolar/backend/internal/application/dashboard"
	"github.com/smartsolar/backend/internal/domain/catalog"
	"github.com/smartsolar/backend/internal/domain/document"
	"github.com/smartsolar/backend/internal/interfaces/http/dto"
)

// tabController is the slice of controller behavior the HTTP surface
// drives. All four tab controllers satisfy it.
type tabController interface {
	FetchAll(ctx context.Context)
	Navigate(ctx context.Context, target int) bool
	RenderCurrent(ctx context.Context)
	State() dashboard.State
	Delete(ctx context.Context, id string, confirm dashboard.ConfirmFunc) (bool, error)
	DeletedMessage() string
}

// DashboardHandler exposes the four dashboard tabs over HTTP. Each GET
// drives the tab's controller (lazy first load, page navigation) and
// returns whatever the controller rendered.
type DashboardHandler struct {
	BaseHandler
	dash *dashboard.Dashboard
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dash *dashboard.Dashboard) *DashboardHandler {
	return &DashboardHandler{dash: dash}
}

// ListOrders renders a page of the orders tab
// GET /api/v1/dashboard/orders
func (h *DashboardHandler) ListOrders(c *gin.Context) {
	h.list(c, h.dash.Orders, document.Orders)
}

// ListBookings renders a page of the bookings tab
// GET /api/v1/dashboard/bookings
func (h *DashboardHandler) ListBookings(c *gin.Context) {
	h.list(c, h.dash.Bookings, document.Bookings)
}

// ListProducts renders a page of the products tab
// GET /api/v1/dashboard/products
func (h *DashboardHandler) ListProducts(c *gin.Context) {
	h.list(c, h.dash.Products, document.Products)
}

// ListUsers renders a page of the users tab
// GET /api/v1/dashboard/users
func (h *DashboardHandler) ListUsers(c *gin.Context) {
	h.list(c, h.dash.Users, document.Users)
}

// DeleteOrder deletes one order after confirmation
// DELETE /api/v1/dashboard/orders/:id
func (h *DashboardHandler) DeleteOrder(c *gin.Context) {
	h.remove(c, h.dash.Orders, document.Orders)
}

// DeleteBooking deletes one booking after confirmation
// DELETE /api/v1/dashboard/bookings/:id
func (h *DashboardHandler) DeleteBooking(c *gin.Context) {
	h.remove(c, h.dash.Bookings, document.Bookings)
}

// DeleteProduct deletes one product after confirmation
// DELETE /api/v1/dashboard/products/:id
func (h *DashboardHandler) DeleteProduct(c *gin.Context) {
	h.remove(c, h.dash.Products, document.Products)
}

// DeleteUser deletes one user after confirmation
// DELETE /api/v1/dashboard/users/:id
func (h *DashboardHandler) DeleteUser(c *gin.Context) {
	h.remove(c, h.dash.Users, document.Users)
}

// CreateProduct adds a product from the add-product form
// POST /api/v1/dashboard/products
func (h *DashboardHandler) CreateProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Title and price are required")
		return
	}

	input := catalog.NewProductInput{
		Title:         req.Title,
		Category:      req.Category,
		Price:         req.Price,
		About:         req.About,
		Description:   req.Description,
		Specification: req.Specification,
		Guide:         req.Guide,
		Image:         req.Image,
	}
	if err := h.dash.Products.Create(c.Request.Context(), input); err != nil {
		h.HandleError(c, err)
		return
	}

	view, _ := h.dash.View(document.Products)
	c.JSON(201, dto.NewSuccessResponseWithMessage(view, "Product added successfully!"))
}

// UploadProductImage stores a product image and returns its URL
// POST /api/v1/dashboard/products/image
func (h *DashboardHandler) UploadProductImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		h.BadRequest(c, "An image file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.BadRequest(c, "Could not read the uploaded image")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := h.dash.Products.UploadImage(c.Request.Context(), header.Filename, data, contentType)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, dto.UploadImageResponse{URL: url})
}

// list drives one tab controller from query parameters and returns the
// rendered page. The collection loads lazily on first visit; pass
// refresh=true to force a refetch, page=N to navigate. An out-of-range
// page is ignored and the current page comes back instead. A failed
// load is retried on the next request.
func (h *DashboardHandler) list(c *gin.Context, ctrl tabController, col document.Collection) {
	ctx := c.Request.Context()

	fetched := false
	state := ctrl.State()
	if c.Query("refresh") == "true" || state == dashboard.StateUnloaded || state == dashboard.StateFailed {
		ctrl.FetchAll(ctx)
		fetched = true
	}

	if ctrl.State() != dashboard.StateFailed {
		if raw := c.Query("page"); raw != "" {
			target, err := strconv.Atoi(raw)
			if err != nil {
				h.BadRequest(c, "page must be a number")
				return
			}
			if !ctrl.Navigate(ctx, target) {
				ctrl.RenderCurrent(ctx)
			}
		} else if !fetched {
			ctrl.RenderCurrent(ctx)
		}
	}

	view, ok := h.dash.View(col)
	if !ok {
		h.InternalError(c, "Unknown collection")
		return
	}
	if view.Error != "" {
		c.JSON(dto.GetHTTPStatus(dto.ErrCodeGatewayUnavailable),
			dto.NewErrorResponse(dto.ErrCodeGatewayUnavailable, view.Error))
		return
	}
	h.Success(c, view)
}

// remove drives one tab controller's delete. The confirm=true query
// parameter stands in for the interactive confirmation dialog; without
// it the delete is declined and nothing is touched.
func (h *DashboardHandler) remove(c *gin.Context, ctrl tabController, col document.Collection) {
	id := c.Param("id")
	confirmed := c.Query("confirm") == "true"

	deleted, err := ctrl.Delete(c.Request.Context(), id, func(string) bool { return confirmed })
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if !deleted {
		h.SuccessWithMessage(c, nil, "Deletion cancelled")
		return
	}

	view, _ := h.dash.View(col)
	h.SuccessWithMessage(c, view, ctrl.DeletedMessage())
}

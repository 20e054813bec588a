package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/smartsolar/backend/internal/application/dashboard"
	"github.com/smartsolar/backend/internal/domain/document"
	"github.com/smartsolar/backend/internal/domain/shared"
	"github.com/smartsolar/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newDashboardRouter(store *fakeStore, blobs *fakeBlobs) *gin.Engine {
	gin.SetMode(gin.TestMode)
	dash := dashboard.NewDashboard(store, blobs, silentNotifier{}, zap.NewNop())
	h := NewDashboardHandler(dash)

	r := gin.New()
	g := r.Group("/dashboard")
	g.GET("/products", h.ListProducts)
	g.GET("/users", h.ListUsers)
	g.POST("/products", h.CreateProduct)
	g.POST("/products/image", h.UploadProductImage)
	g.DELETE("/products/:id", h.DeleteProduct)
	return r
}

func seedProducts(store *fakeStore, n int) {
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		store.seed(document.Products, fmt.Sprintf("p%02d", i), map[string]any{
			"title":     fmt.Sprintf("Product %02d", i),
			"price":     "RS 1000",
			"createdAt": base.Add(time.Duration(i) * time.Hour).Format(time.RFC3339),
		})
	}
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, dto.Response) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func pageData(t *testing.T, resp dto.Response) map[string]any {
	t.Helper()
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok, "data is not an object: %v", resp.Data)
	return data
}

func TestListProductsLazyLoad(t *testing.T) {
	store := newFakeStore()
	seedProducts(store, 7)
	r := newDashboardRouter(store, newFakeBlobs())

	w, resp := doJSON(t, r, http.MethodGet, "/dashboard/products", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, resp.Success)

	data := pageData(t, resp)
	assert.Equal(t, float64(1), data["page"])
	assert.Equal(t, float64(2), data["total_pages"])
	assert.Equal(t, float64(7), data["total"])
	assert.Len(t, data["items"], 5)
}

func TestListProductsPagination(t *testing.T) {
	store := newFakeStore()
	seedProducts(store, 7)
	r := newDashboardRouter(store, newFakeBlobs())

	w, resp := doJSON(t, r, http.MethodGet, "/dashboard/products?page=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := pageData(t, resp)
	assert.Equal(t, float64(2), data["page"])
	assert.Len(t, data["items"], 2)

	// Out-of-range page keeps the current one.
	w, resp = doJSON(t, r, http.MethodGet, "/dashboard/products?page=9", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), pageData(t, resp)["page"])

	w, _ = doJSON(t, r, http.MethodGet, "/dashboard/products?page=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListProductsGatewayDown(t *testing.T) {
	store := newFakeStore()
	store.listErr = shared.ErrGatewayUnavailable
	r := newDashboardRouter(store, newFakeBlobs())

	w, resp := doJSON(t, r, http.MethodGet, "/dashboard/products", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeGatewayUnavailable, resp.Error.Code)
	assert.Equal(t, "Error loading products. Please try again later.", resp.Error.Message)
}

func TestListUsersExcludesAdmins(t *testing.T) {
	store := newFakeStore()
	store.seed(document.Users, "u1", map[string]any{"firstName": "Sara", "userType": "customer"})
	store.seed(document.Users, "a1", map[string]any{"firstName": "Root", "userType": "admin"})
	r := newDashboardRouter(store, newFakeBlobs())

	w, resp := doJSON(t, r, http.MethodGet, "/dashboard/users", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := pageData(t, resp)
	assert.Equal(t, float64(1), data["total"])
	assert.Len(t, data["items"], 1)
}

func TestDeleteProduct(t *testing.T) {
	store := newFakeStore()
	seedProducts(store, 3)
	r := newDashboardRouter(store, newFakeBlobs())

	// Without confirm=true nothing happens.
	w, resp := doJSON(t, r, http.MethodDelete, "/dashboard/products/p01", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Deletion cancelled", resp.Message)
	assert.True(t, store.has(document.Products, "p01"))

	w, resp = doJSON(t, r, http.MethodDelete, "/dashboard/products/p01?confirm=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Product deleted successfully!", resp.Message)
	assert.False(t, store.has(document.Products, "p01"))
	assert.Equal(t, float64(2), pageData(t, resp)["total"])
}

func TestCreateProduct(t *testing.T) {
	store := newFakeStore()
	r := newDashboardRouter(store, newFakeBlobs())

	w, resp := doJSON(t, r, http.MethodPost, "/dashboard/products", dto.CreateProductRequest{
		Title:    "Solar Panel 550W",
		Price:    "185000",
		Category: "panels",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Product added successfully!", resp.Message)
	assert.Equal(t, float64(1), pageData(t, resp)["total"])
}

func TestCreateProductValidation(t *testing.T) {
	r := newDashboardRouter(newFakeStore(), newFakeBlobs())

	w, resp := doJSON(t, r, http.MethodPost, "/dashboard/products", map[string]any{
		"category": "panels",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeBadRequest, resp.Error.Code)
}

func TestUploadProductImage(t *testing.T) {
	blobs := newFakeBlobs()
	r := newDashboardRouter(newFakeStore(), blobs)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", "panel.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/dashboard/products/image", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	url, _ := resp.Data.(map[string]any)["url"].(string)
	assert.True(t, strings.HasPrefix(url, "https://cdn.test/product_images/product_"))
	assert.True(t, strings.HasSuffix(url, "_panel.jpg"))
}

func TestUploadProductImageMissingFile(t *testing.T) {
	r := newDashboardRouter(newFakeStore(), newFakeBlobs())

	req := httptest.NewRequest(http.MethodPost, "/dashboard/products/image", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

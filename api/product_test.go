package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tvstore/catalog/configs"
	"github.com/tvstore/catalog/internal/catalog"
	"github.com/tvstore/catalog/internal/domain"
	"github.com/tvstore/catalog/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter() *gin.Engine {
	engine := catalog.New(
		store.NewMemory[domain.Brand](),
		store.NewMemory[domain.Category](),
		store.NewMemoryProducts(),
		catalog.DefaultFloors(),
		nil,
	)

	router := gin.New()
	configs.SetupRoutes(router, engine, zap.NewNop())
	return router
}

func do(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var envelope struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	var data T
	require.NoError(t, json.Unmarshal(envelope.Data, &data))
	return data
}

func seedCatalog(t *testing.T, router *gin.Engine) (brandID, categoryID int) {
	t.Helper()

	rec := do(t, router, http.MethodPost, "/api/v1/brands", domain.BrandInput{Name: "Acme"})
	require.Equal(t, http.StatusCreated, rec.Code)
	brand := decodeData[domain.Brand](t, rec)

	rec = do(t, router, http.MethodPost, "/api/v1/categories", domain.CategoryInput{Name: "LED"})
	require.Equal(t, http.StatusCreated, rec.Code)
	category := decodeData[domain.Category](t, rec)

	return brand.BrandID, category.CategoryID
}

func TestCreateProductEndpoint(t *testing.T) {
	router := newTestRouter()
	brandID, categoryID := seedCatalog(t, router)

	rec := do(t, router, http.MethodPost, "/api/v1/products", domain.ProductInput{
		Name:       "X32",
		Price:      199.99,
		Quantity:   5,
		Diagonal:   32,
		BrandID:    brandID,
		CategoryID: categoryID,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	product := decodeData[domain.Product](t, rec)
	assert.Equal(t, 100, product.ProductID)
}

func TestCreateProductDanglingReference(t *testing.T) {
	router := newTestRouter()
	_, categoryID := seedCatalog(t, router)

	rec := do(t, router, http.MethodPost, "/api/v1/products", domain.ProductInput{
		Name:       "X32",
		Price:      199.99,
		Quantity:   5,
		Diagonal:   32,
		BrandID:    42,
		CategoryID: categoryID,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCreateProductInvalidInput(t *testing.T) {
	router := newTestRouter()
	brandID, categoryID := seedCatalog(t, router)

	rec := do(t, router, http.MethodPost, "/api/v1/products", domain.ProductInput{
		Name:       "X32",
		Price:      -5,
		Diagonal:   32,
		BrandID:    brandID,
		CategoryID: categoryID,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListProductsEnriched(t *testing.T) {
	router := newTestRouter()
	brandID, categoryID := seedCatalog(t, router)

	rec := do(t, router, http.MethodPost, "/api/v1/products", domain.ProductInput{
		Name: "X32", Price: 199.99, Quantity: 5, Diagonal: 32,
		BrandID: brandID, CategoryID: categoryID,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/v1/products", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	listed := decodeData[[]domain.EnrichedProduct](t, rec)
	require.Len(t, listed, 1)
	assert.Equal(t, "Acme", listed[0].BrandName)
	assert.Equal(t, "LED", listed[0].CategoryName)
}

func TestListProductsBrandFilter(t *testing.T) {
	router := newTestRouter()
	brandID, categoryID := seedCatalog(t, router)

	rec := do(t, router, http.MethodPost, "/api/v1/brands", domain.BrandInput{Name: "Visio"})
	require.Equal(t, http.StatusCreated, rec.Code)
	other := decodeData[domain.Brand](t, rec)

	for _, id := range []int{brandID, other.BrandID} {
		rec := do(t, router, http.MethodPost, "/api/v1/products", domain.ProductInput{
			Name: "X32", Price: 199.99, Quantity: 5, Diagonal: 32,
			BrandID: id, CategoryID: categoryID,
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec = do(t, router, http.MethodGet, fmt.Sprintf("/api/v1/products?brand=%d", other.BrandID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	listed := decodeData[[]domain.EnrichedProduct](t, rec)
	require.Len(t, listed, 1)
	assert.Equal(t, "Visio", listed[0].BrandName)

	rec = do(t, router, http.MethodGet, "/api/v1/products?brand=oops", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteBrandCascadesOverHTTP(t *testing.T) {
	router := newTestRouter()
	brandID, categoryID := seedCatalog(t, router)

	rec := do(t, router, http.MethodPost, "/api/v1/products", domain.ProductInput{
		Name: "X32", Price: 199.99, Quantity: 5, Diagonal: 32,
		BrandID: brandID, CategoryID: categoryID,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, router, http.MethodDelete, fmt.Sprintf("/api/v1/brands/%d", brandID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/v1/products", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	listed := decodeData[[]domain.EnrichedProduct](t, rec)
	assert.Empty(t, listed)

	// Deleting again reports the absence.
	rec = do(t, router, http.MethodDelete, fmt.Sprintf("/api/v1/brands/%d", brandID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProductNotFoundAndBadID(t *testing.T) {
	router := newTestRouter()

	rec := do(t, router, http.MethodGet, "/api/v1/products/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/v1/products/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestShortListings(t *testing.T) {
	router := newTestRouter()
	seedCatalog(t, router)

	rec := do(t, router, http.MethodGet, "/api/v1/brands/short", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	brands := decodeData[[]domain.ShortRecord](t, rec)
	require.Len(t, brands, 1)
	assert.Equal(t, domain.ShortRecord{ID: 0, Name: "Acme"}, brands[0])
}

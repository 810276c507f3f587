package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tvstore/catalog/internal/domain"
	"github.com/tvstore/catalog/internal/store"
)

func TestListProductsEnrichesNames(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()
	brandID, categoryID := seedRefs(t, e)

	_, err := e.CreateProduct(ctx, productInput(brandID, categoryID))
	require.NoError(t, err)

	listed, err := e.ListProducts(ctx, All())
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Acme", listed[0].BrandName)
	assert.Equal(t, "LED", listed[0].CategoryName)
}

func TestListProductsAscendingByID(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()
	brandID, categoryID := seedRefs(t, e)

	for i := 0; i < 4; i++ {
		_, err := e.CreateProduct(ctx, productInput(brandID, categoryID))
		require.NoError(t, err)
	}

	listed, err := e.ListProducts(ctx, All())
	require.NoError(t, err)
	require.Len(t, listed, 4)
	for i := 1; i < len(listed); i++ {
		assert.Less(t, listed[i-1].ProductID, listed[i].ProductID)
	}
}

func TestListProductsByBrandFilter(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()
	brandID, categoryID := seedRefs(t, e)

	other, err := e.CreateBrand(ctx, domain.BrandInput{Name: "Visio"})
	require.NoError(t, err)

	_, err = e.CreateProduct(ctx, productInput(brandID, categoryID))
	require.NoError(t, err)
	wanted, err := e.CreateProduct(ctx, productInput(other.BrandID, categoryID))
	require.NoError(t, err)

	listed, err := e.ListProducts(ctx, ByBrand(other.BrandID))
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, wanted.ProductID, listed[0].ProductID)
	assert.Equal(t, "Visio", listed[0].BrandName)
}

func TestListProductsByCategoryFilter(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()
	brandID, categoryID := seedRefs(t, e)

	oled, err := e.CreateCategory(ctx, domain.CategoryInput{Name: "OLED"})
	require.NoError(t, err)

	_, err = e.CreateProduct(ctx, productInput(brandID, categoryID))
	require.NoError(t, err)
	wanted, err := e.CreateProduct(ctx, productInput(brandID, oled.CategoryID))
	require.NoError(t, err)

	listed, err := e.ListProducts(ctx, ByCategory(oled.CategoryID))
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, wanted.ProductID, listed[0].ProductID)
	assert.Equal(t, "OLED", listed[0].CategoryName)
}

// A row whose foreign key cannot be resolved is rendered with the sentinel
// label instead of failing the listing. The engine never produces such a row
// itself, so seed the store directly.
func TestListProductsUnknownSentinel(t *testing.T) {
	brands := store.NewMemory[domain.Brand]()
	categories := store.NewMemory[domain.Category]()
	products := store.NewMemoryProducts()
	e := New(brands, categories, products, DefaultFloors(), nil)
	ctx := context.Background()

	orphan := domain.Product{
		ProductID:  100,
		Name:       "X32",
		Price:      199.99,
		Quantity:   1,
		Diagonal:   32,
		BrandID:    7,
		CategoryID: 9,
	}
	require.NoError(t, products.Insert(ctx, &orphan))

	listed, err := e.ListProducts(ctx, All())
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, domain.UnknownLabel, listed[0].BrandName)
	assert.Equal(t, domain.UnknownLabel, listed[0].CategoryName)
}

func TestListShortRecords(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()

	for _, name := range []string{"Acme", "Visio", "Orion"} {
		_, err := e.CreateBrand(ctx, domain.BrandInput{Name: name})
		require.NoError(t, err)
	}

	brands, err := e.ListBrandsShort(ctx)
	require.NoError(t, err)
	require.Len(t, brands, 3)
	assert.Equal(t, []domain.ShortRecord{
		{ID: 0, Name: "Acme"},
		{ID: 1, Name: "Visio"},
		{ID: 2, Name: "Orion"},
	}, brands)
}

func TestListShortEmptyCollections(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()

	brands, err := e.ListBrandsShort(ctx)
	require.NoError(t, err)
	assert.Empty(t, brands)

	products, err := e.ListProductsShort(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}

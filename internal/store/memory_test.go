package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tvstore/catalog/internal/apperror"
	"github.com/tvstore/catalog/internal/domain"
)

func TestMemoryInsertDuplicateKey(t *testing.T) {
	s := NewMemory[domain.Brand]()
	ctx := context.Background()

	first := domain.Brand{BrandID: 0, Name: "Acme"}
	require.NoError(t, s.Insert(ctx, &first))

	second := domain.Brand{BrandID: 0, Name: "Visio"}
	err := s.Insert(ctx, &second)
	require.Error(t, err)
	assert.True(t, apperror.IsDuplicateKey(err))

	// Loser of the race must not clobber the stored row.
	row, err := s.FindByID(ctx, 0)
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, "Acme", row.Name)
}

func TestMemoryInsertSetsTimestamps(t *testing.T) {
	s := NewMemory[domain.Brand]()
	ctx := context.Background()

	brand := domain.Brand{BrandID: 0, Name: "Acme"}
	require.NoError(t, s.Insert(ctx, &brand))
	assert.NotZero(t, brand.CreatedAt)
	assert.Equal(t, brand.CreatedAt, brand.UpdatedAt)
}

func TestMemoryFindByIDAbsent(t *testing.T) {
	s := NewMemory[domain.Category]()

	row, err := s.FindByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Nil(t, row)
}

func TestMemoryFindAllSortedByID(t *testing.T) {
	s := NewMemory[domain.Category]()
	ctx := context.Background()

	for _, id := range []int{2, 0, 1} {
		row := domain.Category{CategoryID: id, Name: "c"}
		require.NoError(t, s.Insert(ctx, &row))
	}

	rows, err := s.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for i, row := range rows {
		assert.Equal(t, i, row.CategoryID)
	}
}

func TestMemoryUpdatePatchesNamedFieldsOnly(t *testing.T) {
	s := NewMemoryProducts()
	ctx := context.Background()

	product := domain.Product{
		ProductID:   100,
		Name:        "X32",
		Price:       199.99,
		Quantity:    5,
		Diagonal:    32,
		Description: "entry level",
		BrandID:     0,
		CategoryID:  0,
	}
	require.NoError(t, s.Insert(ctx, &product))

	updated, err := s.Update(ctx, 100, map[string]any{
		"price":    149.99,
		"quantity": 3,
	})
	require.NoError(t, err)
	assert.Equal(t, 149.99, updated.Price)
	assert.Equal(t, 3, updated.Quantity)
	assert.Equal(t, "X32", updated.Name)
	assert.Equal(t, "entry level", updated.Description)
	assert.Equal(t, 100, updated.ProductID)
}

func TestMemoryUpdateAbsentNotFound(t *testing.T) {
	s := NewMemory[domain.Brand]()

	_, err := s.Update(context.Background(), 9, map[string]any{"brandName": "Acme"})
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestMemoryDeleteAbsentNotFound(t *testing.T) {
	s := NewMemory[domain.Brand]()

	err := s.Delete(context.Background(), 9)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestMemoryProductsFilteredScans(t *testing.T) {
	s := NewMemoryProducts()
	ctx := context.Background()

	rows := []domain.Product{
		{ProductID: 100, Name: "a", BrandID: 0, CategoryID: 0},
		{ProductID: 101, Name: "b", BrandID: 1, CategoryID: 0},
		{ProductID: 102, Name: "c", BrandID: 0, CategoryID: 1},
	}
	for i := range rows {
		require.NoError(t, s.Insert(ctx, &rows[i]))
	}

	byBrand, err := s.FindByBrand(ctx, 0)
	require.NoError(t, err)
	require.Len(t, byBrand, 2)
	assert.Equal(t, 100, byBrand[0].ProductID)
	assert.Equal(t, 102, byBrand[1].ProductID)

	byCategory, err := s.FindByCategory(ctx, 0)
	require.NoError(t, err)
	require.Len(t, byCategory, 2)

	none, err := s.FindByBrand(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, none)
}

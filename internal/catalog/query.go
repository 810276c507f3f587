package catalog

import (
	"context"

	"github.com/tvstore/catalog/internal/domain"
)

// Filter selects which products a listing returns. The zero value matches
// everything.
type Filter struct {
	BrandID    *int
	CategoryID *int
}

func All() Filter { return Filter{} }

func ByBrand(id int) Filter { return Filter{BrandID: &id} }

func ByCategory(id int) Filter { return Filter{CategoryID: &id} }

// ListProducts returns the matching products ascending by id, each enriched
// with its brand and category names. The brand and category tables are loaded
// once per call, never cached across calls; a foreign key that no longer
// resolves renders as "Unknown" instead of failing the listing.
func (e *Engine) ListProducts(ctx context.Context, f Filter) ([]domain.EnrichedProduct, error) {
	var (
		products []domain.Product
		err      error
	)
	switch {
	case f.BrandID != nil:
		products, err = e.products.FindByBrand(ctx, *f.BrandID)
	case f.CategoryID != nil:
		products, err = e.products.FindByCategory(ctx, *f.CategoryID)
	default:
		products, err = e.products.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	brands, err := e.brands.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	brandNames := make(map[int]string, len(brands))
	for _, b := range brands {
		brandNames[b.BrandID] = b.Name
	}

	categories, err := e.categories.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	categoryNames := make(map[int]string, len(categories))
	for _, c := range categories {
		categoryNames[c.CategoryID] = c.Name
	}

	enriched := make([]domain.EnrichedProduct, 0, len(products))
	for _, p := range products {
		row := domain.EnrichedProduct{
			Product:      p,
			BrandName:    domain.UnknownLabel,
			CategoryName: domain.UnknownLabel,
		}
		if name, ok := brandNames[p.BrandID]; ok {
			row.BrandName = name
		}
		if name, ok := categoryNames[p.CategoryID]; ok {
			row.CategoryName = name
		}
		enriched = append(enriched, row)
	}
	return enriched, nil
}

// ListBrands returns all brands ascending by id.
func (e *Engine) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	return e.brands.FindAll(ctx)
}

// ListCategories returns all categories ascending by id.
func (e *Engine) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return e.categories.FindAll(ctx)
}

// ListBrandsShort returns id+name pairs ascending by id.
func (e *Engine) ListBrandsShort(ctx context.Context) ([]domain.ShortRecord, error) {
	brands, err := e.brands.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]domain.ShortRecord, len(brands))
	for i, b := range brands {
		records[i] = domain.ShortRecord{ID: b.BrandID, Name: b.Name}
	}
	return records, nil
}

// ListCategoriesShort returns id+name pairs ascending by id.
func (e *Engine) ListCategoriesShort(ctx context.Context) ([]domain.ShortRecord, error) {
	categories, err := e.categories.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]domain.ShortRecord, len(categories))
	for i, c := range categories {
		records[i] = domain.ShortRecord{ID: c.CategoryID, Name: c.Name}
	}
	return records, nil
}

// ListProductsShort returns id+name pairs ascending by id.
func (e *Engine) ListProductsShort(ctx context.Context) ([]domain.ShortRecord, error) {
	products, err := e.products.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]domain.ShortRecord, len(products))
	for i, p := range products {
		records[i] = domain.ShortRecord{ID: p.ProductID, Name: p.Name}
	}
	return records, nil
}

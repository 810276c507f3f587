// Package catalog implements the consistency engine for the three-entity
// catalog: surrogate id allocation, reference validation across collections
// and cascading deletion. The engine holds no state beyond its store handles;
// every operation works against the collections as they are at call time.
package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/tvstore/catalog/internal/apperror"
	"github.com/tvstore/catalog/internal/domain"
	"github.com/tvstore/catalog/internal/store"
)

// Floors holds the per-collection id allocation floors. They are plain
// configuration; nothing is derived from their values.
type Floors struct {
	Product  int
	Brand    int
	Category int
}

// DefaultFloors matches the store's historical layout: products start at 100,
// brands and categories at 0.
func DefaultFloors() Floors {
	return Floors{Product: 100, Brand: 0, Category: 0}
}

// Engine applies the catalog consistency rules over three store handles.
type Engine struct {
	brands     store.Store[domain.Brand]
	categories store.Store[domain.Category]
	products   store.ProductStore
	floors     Floors
	log        *zap.Logger
}

func New(
	brands store.Store[domain.Brand],
	categories store.Store[domain.Category],
	products store.ProductStore,
	floors Floors,
	log *zap.Logger,
) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		brands:     brands,
		categories: categories,
		products:   products,
		floors:     floors,
		log:        log,
	}
}

// validateProductRefs checks that both foreign keys resolve to live rows.
// Called before every product create, and before updates that re-point a key.
func (e *Engine) validateProductRefs(ctx context.Context, brandID, categoryID int) error {
	brand, err := e.brands.FindByID(ctx, brandID)
	if err != nil {
		return err
	}
	if brand == nil {
		return apperror.NewDanglingReference("brandId", brandID)
	}

	category, err := e.categories.FindByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return apperror.NewDanglingReference("categoryId", categoryID)
	}
	return nil
}

// ------------------ Brands ------------------

func (e *Engine) CreateBrand(ctx context.Context, in domain.BrandInput) (*domain.Brand, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	existing, err := e.brands.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]int, len(existing))
	for i, b := range existing {
		ids[i] = b.BrandID
	}

	brand := domain.Brand{
		BrandID:     nextID(ids, e.floors.Brand),
		Name:        in.Name,
		Description: in.Description,
		HQ:          in.HQ,
		FoundedYear: in.FoundedYear,
		Website:     in.Website,
	}
	if err := e.brands.Insert(ctx, &brand); err != nil {
		return nil, err
	}

	e.log.Info("brand created", zap.Int("brandId", brand.BrandID), zap.String("name", brand.Name))
	return &brand, nil
}

func (e *Engine) GetBrand(ctx context.Context, id int) (*domain.Brand, error) {
	brand, err := e.brands.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, apperror.NewNotFound("brand", id)
	}
	return brand, nil
}

func (e *Engine) UpdateBrand(ctx context.Context, id int, in domain.BrandInput) (*domain.Brand, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	return e.brands.Update(ctx, id, map[string]any{
		"brandName":        in.Name,
		"brandDescription": in.Description,
		"headquarters":     in.HQ,
		"foundedYear":      in.FoundedYear,
		"website":          in.Website,
	})
}

// DeleteBrand removes the brand together with every product referencing it.
// Products go first so that no live product ever points at a missing brand,
// even if the process dies between the two steps.
func (e *Engine) DeleteBrand(ctx context.Context, id int) error {
	brand, err := e.brands.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if brand == nil {
		return apperror.NewNotFound("brand", id)
	}

	referencing, err := e.products.FindByBrand(ctx, id)
	if err != nil {
		return err
	}
	for _, p := range referencing {
		if err := e.products.Delete(ctx, p.ProductID); err != nil {
			return err
		}
	}

	if err := e.brands.Delete(ctx, id); err != nil {
		return err
	}

	e.log.Info("brand deleted",
		zap.Int("brandId", id),
		zap.Int("cascadedProducts", len(referencing)))
	return nil
}

// ------------------ Categories ------------------

func (e *Engine) CreateCategory(ctx context.Context, in domain.CategoryInput) (*domain.Category, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	existing, err := e.categories.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]int, len(existing))
	for i, c := range existing {
		ids[i] = c.CategoryID
	}

	category := domain.Category{
		CategoryID:     nextID(ids, e.floors.Category),
		Name:           in.Name,
		Description:    in.Description,
		Type:           in.Type,
		TargetAudience: in.TargetAudience,
	}
	if err := e.categories.Insert(ctx, &category); err != nil {
		return nil, err
	}

	e.log.Info("category created", zap.Int("categoryId", category.CategoryID), zap.String("name", category.Name))
	return &category, nil
}

func (e *Engine) GetCategory(ctx context.Context, id int) (*domain.Category, error) {
	category, err := e.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFound("category", id)
	}
	return category, nil
}

func (e *Engine) UpdateCategory(ctx context.Context, id int, in domain.CategoryInput) (*domain.Category, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	return e.categories.Update(ctx, id, map[string]any{
		"categoryName":        in.Name,
		"categoryDescription": in.Description,
		"categoryType":        in.Type,
		"targetAudience":      in.TargetAudience,
	})
}

// DeleteCategory cascades the same way DeleteBrand does: products first.
func (e *Engine) DeleteCategory(ctx context.Context, id int) error {
	category, err := e.categories.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return apperror.NewNotFound("category", id)
	}

	referencing, err := e.products.FindByCategory(ctx, id)
	if err != nil {
		return err
	}
	for _, p := range referencing {
		if err := e.products.Delete(ctx, p.ProductID); err != nil {
			return err
		}
	}

	if err := e.categories.Delete(ctx, id); err != nil {
		return err
	}

	e.log.Info("category deleted",
		zap.Int("categoryId", id),
		zap.Int("cascadedProducts", len(referencing)))
	return nil
}

// ------------------ Products ------------------

func (e *Engine) CreateProduct(ctx context.Context, in domain.ProductInput) (*domain.Product, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if err := e.validateProductRefs(ctx, in.BrandID, in.CategoryID); err != nil {
		return nil, err
	}

	existing, err := e.products.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]int, len(existing))
	for i, p := range existing {
		ids[i] = p.ProductID
	}

	product := domain.Product{
		ProductID:   nextID(ids, e.floors.Product),
		Name:        in.Name,
		Price:       in.Price,
		Quantity:    in.Quantity,
		Diagonal:    in.Diagonal,
		Description: in.Description,
		BrandID:     in.BrandID,
		CategoryID:  in.CategoryID,
	}
	if err := e.products.Insert(ctx, &product); err != nil {
		return nil, err
	}

	e.log.Info("product created",
		zap.Int("productId", product.ProductID),
		zap.Int("brandId", product.BrandID),
		zap.Int("categoryId", product.CategoryID))
	return &product, nil
}

func (e *Engine) GetProduct(ctx context.Context, id int) (*domain.Product, error) {
	product, err := e.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFound("product", id)
	}
	return product, nil
}

func (e *Engine) UpdateProduct(ctx context.Context, id int, in domain.ProductInput) (*domain.Product, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	current, err := e.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, apperror.NewNotFound("product", id)
	}

	if in.BrandID != current.BrandID || in.CategoryID != current.CategoryID {
		if err := e.validateProductRefs(ctx, in.BrandID, in.CategoryID); err != nil {
			return nil, err
		}
	}

	return e.products.Update(ctx, id, map[string]any{
		"name":        in.Name,
		"price":       in.Price,
		"quantity":    in.Quantity,
		"diagonal":    in.Diagonal,
		"description": in.Description,
		"brandId":     in.BrandID,
		"categoryId":  in.CategoryID,
	})
}

func (e *Engine) DeleteProduct(ctx context.Context, id int) error {
	return e.products.Delete(ctx, id)
}

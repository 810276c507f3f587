// Package store holds the persistent collections backing the catalog. Each
// collection supports insert, point lookup, ordered enumeration, patch update
// and delete; everything above that (reference checks, cascades, joins) lives
// in the catalog engine, never here.
package store

import (
	"context"

	"github.com/tvstore/catalog/internal/domain"
)

// Store defines the common operations for one collection.
//
// Contract notes:
//   - Insert fails with DuplicateKey when the row's id is already live.
//   - FindByID returns (nil, nil) when the id is absent.
//   - FindAll returns rows sorted ascending by surrogate id.
//   - Update applies the named attributes only and fails with NotFound when
//     the id is absent; the id attribute itself is never part of a patch.
//   - Delete fails with NotFound when the id is absent and never cascades.
type Store[T domain.Entity] interface {
	Insert(ctx context.Context, row *T) error
	FindByID(ctx context.Context, id int) (*T, error)
	FindAll(ctx context.Context) ([]T, error)
	Update(ctx context.Context, id int, patch map[string]any) (*T, error)
	Delete(ctx context.Context, id int) error
}

// ProductStore adds the foreign-key filtered scans the cascade and listing
// paths need.
type ProductStore interface {
	Store[domain.Product]

	FindByBrand(ctx context.Context, brandID int) ([]domain.Product, error)
	FindByCategory(ctx context.Context, categoryID int) ([]domain.Product, error)
}

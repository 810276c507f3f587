package domain

import "github.com/tvstore/catalog/internal/apperror"

// BrandInput carries the mutable fields of a brand. The surrogate id is never
// part of an input; it is allocated on create and immutable afterwards.
type BrandInput struct {
	Name        string `json:"brandName"`
	Description string `json:"brandDescription"`
	HQ          string `json:"headquarters"`
	FoundedYear int    `json:"foundedYear"`
	Website     string `json:"website"`
}

func (in BrandInput) Validate() error {
	if in.Name == "" {
		return apperror.NewInvalidInput("brand name must not be empty")
	}
	return nil
}

// CategoryInput carries the mutable fields of a category.
type CategoryInput struct {
	Name           string `json:"categoryName"`
	Description    string `json:"categoryDescription"`
	Type           string `json:"categoryType"`
	TargetAudience string `json:"targetAudience"`
}

func (in CategoryInput) Validate() error {
	if in.Name == "" {
		return apperror.NewInvalidInput("category name must not be empty")
	}
	return nil
}

// ProductInput carries the mutable fields of a product, including the two
// foreign keys. Reference validation is the engine's job, not the input's.
type ProductInput struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Diagonal    float64 `json:"diagonal"`
	Description string  `json:"description"`
	BrandID     int     `json:"brandId"`
	CategoryID  int     `json:"categoryId"`
}

func (in ProductInput) Validate() error {
	if in.Name == "" {
		return apperror.NewInvalidInput("product name must not be empty")
	}
	if in.Price <= 0 {
		return apperror.NewInvalidInput("price must be greater than zero")
	}
	if in.Quantity < 0 {
		return apperror.NewInvalidInput("quantity must not be negative")
	}
	if in.Diagonal <= 0 {
		return apperror.NewInvalidInput("diagonal must be greater than zero")
	}
	return nil
}

package store

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/tvstore/catalog/internal/domain"
)

// DynamoProducts extends the generic Dynamo store with the foreign-key
// filtered scans used by cascades and listings.
type DynamoProducts struct {
	*Dynamo[domain.Product]
}

func NewDynamoProducts(client *dynamodb.Client, table string) *DynamoProducts {
	return &DynamoProducts{Dynamo: NewDynamo[domain.Product](client, table, "productId")}
}

// FindByBrand returns every product referencing the brand, ascending by id.
func (s *DynamoProducts) FindByBrand(ctx context.Context, brandID int) ([]domain.Product, error) {
	filter := expression.Equal(expression.Name("brandId"), expression.Value(brandID))
	return s.scan(ctx, &filter)
}

// FindByCategory returns every product referencing the category, ascending by id.
func (s *DynamoProducts) FindByCategory(ctx context.Context, categoryID int) ([]domain.Product, error) {
	filter := expression.Equal(expression.Name("categoryId"), expression.Value(categoryID))
	return s.scan(ctx, &filter)
}

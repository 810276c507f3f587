package store

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/tvstore/catalog/internal/apperror"
	"github.com/tvstore/catalog/internal/domain"
)

const tableCreationTimeout = 5 * time.Minute

// Dynamo is the DynamoDB-backed Store implementation. The insert, update and
// delete paths are conditional on the key attribute so that a lost allocation
// race or a stale id surfaces as DuplicateKey/NotFound instead of silently
// overwriting another row.
type Dynamo[T domain.Entity] struct {
	client  *dynamodb.Client
	table   string
	keyAttr string
}

// NewDynamo creates a Dynamo store for one collection. keyAttr is the
// attribute holding the surrogate id ("productId", "brandId", "categoryId").
func NewDynamo[T domain.Entity](client *dynamodb.Client, table, keyAttr string) *Dynamo[T] {
	return &Dynamo[T]{client: client, table: table, keyAttr: keyAttr}
}

func (s *Dynamo[T]) key(id int) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		s.keyAttr: &types.AttributeValueMemberN{Value: strconv.Itoa(id)},
	}
}

// EnsureTable creates the collection's table when it does not exist yet and
// waits for it to become active.
func (s *Dynamo[T]) EnsureTable(ctx context.Context) error {
	_, err := s.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(s.table),
	})
	if err == nil {
		return nil
	}
	var notFound *types.ResourceNotFoundException
	if !errors.As(err, &notFound) {
		return apperror.NewUpstreamUnavailable(err)
	}

	_, err = s.client.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName: aws.String(s.table),
		AttributeDefinitions: []types.AttributeDefinition{
			{
				AttributeName: aws.String(s.keyAttr),
				AttributeType: types.ScalarAttributeTypeN,
			},
		},
		KeySchema: []types.KeySchemaElement{
			{
				AttributeName: aws.String(s.keyAttr),
				KeyType:       types.KeyTypeHash,
			},
		},
		BillingMode: types.BillingModePayPerRequest,
	})
	if err != nil {
		var inUse *types.ResourceInUseException
		if errors.As(err, &inUse) {
			return nil
		}
		return apperror.NewUpstreamUnavailable(err)
	}

	waiter := dynamodb.NewTableExistsWaiter(s.client)
	err = waiter.Wait(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(s.table),
	}, tableCreationTimeout)
	if err != nil {
		return apperror.NewUpstreamUnavailable(err)
	}
	return nil
}

// Insert adds a row, guarded by attribute_not_exists on the key so a
// concurrent claim of the same id fails as DuplicateKey.
func (s *Dynamo[T]) Insert(ctx context.Context, row *T) error {
	if ts, ok := any(row).(domain.TimestampedEntity); ok {
		now := time.Now().Unix()
		ts.SetCreatedAt(now)
		ts.SetUpdatedAt(now)
	}

	item, err := attributevalue.MarshalMap(*row)
	if err != nil {
		return apperror.NewUpstreamUnavailable(err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(s.table),
		Item:                     item,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": s.keyAttr},
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return apperror.NewDuplicateKey(s.table, (*row).ID())
		}
		return apperror.NewUpstreamUnavailable(err)
	}
	return nil
}

// FindByID returns the row or (nil, nil) when absent.
func (s *Dynamo[T]) FindByID(ctx context.Context, id int) (*T, error) {
	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.table),
		Key:            s.key(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, apperror.NewUpstreamUnavailable(err)
	}
	if result.Item == nil {
		return nil, nil
	}

	var row T
	if err := attributevalue.UnmarshalMap(result.Item, &row); err != nil {
		return nil, apperror.NewUpstreamUnavailable(err)
	}
	return &row, nil
}

// FindAll scans the whole collection and returns it sorted ascending by id.
func (s *Dynamo[T]) FindAll(ctx context.Context) ([]T, error) {
	return s.scan(ctx, nil)
}

func (s *Dynamo[T]) scan(ctx context.Context, filter *expression.ConditionBuilder) ([]T, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(s.table),
	}
	if filter != nil {
		expr, err := expression.NewBuilder().WithFilter(*filter).Build()
		if err != nil {
			return nil, apperror.NewUpstreamUnavailable(err)
		}
		input.FilterExpression = expr.Filter()
		input.ExpressionAttributeNames = expr.Names()
		input.ExpressionAttributeValues = expr.Values()
	}

	var rows []T
	paginator := dynamodb.NewScanPaginator(s.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, apperror.NewUpstreamUnavailable(err)
		}
		var pageRows []T
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &pageRows); err != nil {
			return nil, apperror.NewUpstreamUnavailable(err)
		}
		rows = append(rows, pageRows...)
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].ID() < rows[j].ID() })
	return rows, nil
}

// Update applies the named attributes to the row with the given id and
// returns the new state. The key attribute is never patched.
func (s *Dynamo[T]) Update(ctx context.Context, id int, patch map[string]any) (*T, error) {
	update := expression.UpdateBuilder{}
	for name, value := range patch {
		update = update.Set(expression.Name(name), expression.Value(value))
	}
	update = update.Set(expression.Name("updatedAt"), expression.Value(time.Now().Unix()))

	expr, err := expression.NewBuilder().
		WithUpdate(update).
		WithCondition(expression.AttributeExists(expression.Name(s.keyAttr))).
		Build()
	if err != nil {
		return nil, apperror.NewUpstreamUnavailable(err)
	}

	result, err := s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(s.table),
		Key:                       s.key(id),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return nil, apperror.NewNotFound(s.table, id)
		}
		return nil, apperror.NewUpstreamUnavailable(err)
	}

	var row T
	if err := attributevalue.UnmarshalMap(result.Attributes, &row); err != nil {
		return nil, apperror.NewUpstreamUnavailable(err)
	}
	return &row, nil
}

// Delete removes the row, failing with NotFound when it is absent.
func (s *Dynamo[T]) Delete(ctx context.Context, id int) error {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:                aws.String(s.table),
		Key:                      s.key(id),
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": s.keyAttr},
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return apperror.NewNotFound(s.table, id)
		}
		return apperror.NewUpstreamUnavailable(err)
	}
	return nil
}

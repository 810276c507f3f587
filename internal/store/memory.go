package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"

	"github.com/tvstore/catalog/internal/apperror"
	"github.com/tvstore/catalog/internal/domain"
)

// Memory is an in-process Store with the same contract as the Dynamo backend,
// used as the test double and for isolated store instances.
type Memory[T domain.Entity] struct {
	mu    sync.Mutex
	table string
	rows  map[int]T
}

func NewMemory[T domain.Entity]() *Memory[T] {
	var zero T
	return &Memory[T]{table: zero.TableName(), rows: make(map[int]T)}
}

func (s *Memory[T]) Insert(_ context.Context, row *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := (*row).ID()
	if _, exists := s.rows[id]; exists {
		return apperror.NewDuplicateKey(s.table, id)
	}

	if ts, ok := any(row).(domain.TimestampedEntity); ok {
		now := time.Now().Unix()
		ts.SetCreatedAt(now)
		ts.SetUpdatedAt(now)
	}

	s.rows[id] = *row
	return nil
}

func (s *Memory[T]) FindByID(_ context.Context, id int) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, exists := s.rows[id]
	if !exists {
		return nil, nil
	}
	return &row, nil
}

func (s *Memory[T]) FindAll(_ context.Context) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sorted(), nil
}

func (s *Memory[T]) sorted() []T {
	rows := make([]T, 0, len(s.rows))
	for _, row := range s.rows {
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID() < rows[j].ID() })
	return rows
}

// Update merges the patch into the stored row through the same attribute
// names the Dynamo backend uses, so both backends accept identical patches.
func (s *Memory[T]) Update(_ context.Context, id int, patch map[string]any) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, exists := s.rows[id]
	if !exists {
		return nil, apperror.NewNotFound(s.table, id)
	}

	item, err := attributevalue.MarshalMap(row)
	if err != nil {
		return nil, apperror.NewUpstreamUnavailable(err)
	}
	for name, value := range patch {
		av, err := attributevalue.Marshal(value)
		if err != nil {
			return nil, apperror.NewUpstreamUnavailable(err)
		}
		item[name] = av
	}
	now, err := attributevalue.Marshal(time.Now().Unix())
	if err != nil {
		return nil, apperror.NewUpstreamUnavailable(err)
	}
	item["updatedAt"] = now

	var updated T
	if err := attributevalue.UnmarshalMap(item, &updated); err != nil {
		return nil, apperror.NewUpstreamUnavailable(err)
	}

	s.rows[id] = updated
	return &updated, nil
}

func (s *Memory[T]) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.rows[id]; !exists {
		return apperror.NewNotFound(s.table, id)
	}
	delete(s.rows, id)
	return nil
}

// MemoryProducts extends the generic memory store with the product-specific
// filtered scans.
type MemoryProducts struct {
	*Memory[domain.Product]
}

func NewMemoryProducts() *MemoryProducts {
	return &MemoryProducts{Memory: NewMemory[domain.Product]()}
}

func (s *MemoryProducts) FindByBrand(_ context.Context, brandID int) ([]domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rows []domain.Product
	for _, row := range s.sorted() {
		if row.BrandID == brandID {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func (s *MemoryProducts) FindByCategory(_ context.Context, categoryID int) ([]domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rows []domain.Product
	for _, row := range s.sorted() {
		if row.CategoryID == categoryID {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

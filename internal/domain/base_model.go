package domain

// Entity is implemented by every row type persisted in the catalog.
// The surrogate id is the partition key in every table.
type Entity interface {
	ID() int
	TableName() string
}

// TimestampedEntity is implemented by entities carrying created/updated times.
type TimestampedEntity interface {
	SetCreatedAt(timestamp int64)
	SetUpdatedAt(timestamp int64)
	GetCreatedAt() int64
	GetUpdatedAt() int64
}

// UnknownLabel is rendered in place of a brand or category name that can no
// longer be resolved from a product's foreign key.
const UnknownLabel = "Unknown"

// ShortRecord is the id+name projection used when an operator picks a target
// row before an update or delete.
type ShortRecord struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

package domain

type Category struct {
	CategoryID     int    `dynamodbav:"categoryId" json:"categoryId"`
	Name           string `dynamodbav:"categoryName" json:"categoryName"`
	Description    string `dynamodbav:"categoryDescription" json:"categoryDescription"`
	Type           string `dynamodbav:"categoryType" json:"categoryType"`
	TargetAudience string `dynamodbav:"targetAudience" json:"targetAudience"`
	CreatedAt      int64  `dynamodbav:"createdAt" json:"createdAt"`
	UpdatedAt      int64  `dynamodbav:"updatedAt" json:"updatedAt"`
}

// Implement Entity interface for Category
func (c Category) ID() int { return c.CategoryID }

func (c Category) TableName() string { return "categories" }

// Implement TimestampedEntity interface for Category
func (c *Category) SetCreatedAt(timestamp int64) { c.CreatedAt = timestamp }
func (c *Category) SetUpdatedAt(timestamp int64) { c.UpdatedAt = timestamp }
func (c Category) GetCreatedAt() int64           { return c.CreatedAt }
func (c Category) GetUpdatedAt() int64           { return c.UpdatedAt }

package domain

type Brand struct {
	BrandID     int    `dynamodbav:"brandId" json:"brandId"`
	Name        string `dynamodbav:"brandName" json:"brandName"`
	Description string `dynamodbav:"brandDescription" json:"brandDescription"`
	HQ          string `dynamodbav:"headquarters" json:"headquarters"`
	FoundedYear int    `dynamodbav:"foundedYear" json:"foundedYear"`
	Website     string `dynamodbav:"website" json:"website"`
	CreatedAt   int64  `dynamodbav:"createdAt" json:"createdAt"`
	UpdatedAt   int64  `dynamodbav:"updatedAt" json:"updatedAt"`
}

// Implement Entity interface for Brand
func (b Brand) ID() int { return b.BrandID }

func (b Brand) TableName() string { return "brands" }

// Implement TimestampedEntity interface for Brand
func (b *Brand) SetCreatedAt(timestamp int64) { b.CreatedAt = timestamp }
func (b *Brand) SetUpdatedAt(timestamp int64) { b.UpdatedAt = timestamp }
func (b Brand) GetCreatedAt() int64           { return b.CreatedAt }
func (b Brand) GetUpdatedAt() int64           { return b.UpdatedAt }

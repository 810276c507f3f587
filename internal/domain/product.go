package domain

type Product struct {
	ProductID   int     `dynamodbav:"productId" json:"productId"`
	Name        string  `dynamodbav:"name" json:"name"`
	Price       float64 `dynamodbav:"price" json:"price"`
	Quantity    int     `dynamodbav:"quantity" json:"quantity"`
	Diagonal    float64 `dynamodbav:"diagonal" json:"diagonal"`
	Description string  `dynamodbav:"description" json:"description"`
	BrandID     int     `dynamodbav:"brandId" json:"brandId"`
	CategoryID  int     `dynamodbav:"categoryId" json:"categoryId"`
	CreatedAt   int64   `dynamodbav:"createdAt" json:"createdAt"`
	UpdatedAt   int64   `dynamodbav:"updatedAt" json:"updatedAt"`
}

// EnrichedProduct is the read model returned by product listings: the stored
// row plus the brand and category names resolved at read time.
type EnrichedProduct struct {
	Product
	BrandName    string `json:"brandName"`
	CategoryName string `json:"categoryName"`
}

// Implement Entity interface for Product
func (p Product) ID() int { return p.ProductID }

func (p Product) TableName() string { return "products" }

// Implement TimestampedEntity interface for Product
func (p *Product) SetCreatedAt(timestamp int64) { p.CreatedAt = timestamp }
func (p *Product) SetUpdatedAt(timestamp int64) { p.UpdatedAt = timestamp }
func (p Product) GetCreatedAt() int64           { return p.CreatedAt }
func (p Product) GetUpdatedAt() int64           { return p.UpdatedAt }

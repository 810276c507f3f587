package configs

import (
	"context"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tvstore/catalog/api"
	"github.com/tvstore/catalog/internal/catalog"
	"github.com/tvstore/catalog/internal/domain"
	"github.com/tvstore/catalog/internal/store"
	"github.com/tvstore/catalog/middleware"
)

// BuildEngine wires the DynamoDB stores and the catalog engine from config,
// ensuring the three tables exist.
func BuildEngine(ctx context.Context, cfg *Config, log *zap.Logger) (*catalog.Engine, error) {
	client := dynamodb.NewFromConfig(cfg.AWS)

	brands := store.NewDynamo[domain.Brand](client, cfg.Tables.Brands, "brandId")
	categories := store.NewDynamo[domain.Category](client, cfg.Tables.Categories, "categoryId")
	products := store.NewDynamoProducts(client, cfg.Tables.Products)

	if err := brands.EnsureTable(ctx); err != nil {
		return nil, err
	}
	if err := categories.EnsureTable(ctx); err != nil {
		return nil, err
	}
	if err := products.EnsureTable(ctx); err != nil {
		return nil, err
	}

	return catalog.New(brands, categories, products, cfg.Floors, log), nil
}

// SetupRoutes installs middleware and the versioned API routes.
func SetupRoutes(router *gin.Engine, engine *catalog.Engine, log *zap.Logger) {
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(CORSMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		brands := v1.Group("/brands")
		{
			api.RegisterBrandRoutes(brands, engine)
		}

		categories := v1.Group("/categories")
		{
			api.RegisterCategoryRoutes(categories, engine)
		}

		products := v1.Group("/products")
		{
			api.RegisterProductRoutes(products, engine)
		}
	}
}

func CORSMiddleware() gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})
}

package configs

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/joho/godotenv"

	"github.com/tvstore/catalog/internal/catalog"
)

type AppConfig struct {
	AppEnv  string
	AppPort string
}

type TableConfig struct {
	Products   string
	Brands     string
	Categories string
}

type Config struct {
	App    AppConfig
	Tables TableConfig
	Floors catalog.Floors
	AWS    aws.Config
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, raw)
	}
	return value, nil
}

func LoadConfig() (*Config, error) {
	// A missing .env file is fine; plain environment variables still apply.
	_ = godotenv.Load()

	appConfig := AppConfig{
		AppEnv:  getEnv("APP_ENV", "development"),
		AppPort: getEnv("APP_PORT", "8080"),
	}

	tables := TableConfig{
		Products:   getEnv("PRODUCTS_TABLE", "products"),
		Brands:     getEnv("BRANDS_TABLE", "brands"),
		Categories: getEnv("CATEGORIES_TABLE", "categories"),
	}

	defaults := catalog.DefaultFloors()
	floors := catalog.Floors{}
	var err error
	if floors.Product, err = getEnvInt("PRODUCT_ID_FLOOR", defaults.Product); err != nil {
		return nil, err
	}
	if floors.Brand, err = getEnvInt("BRAND_ID_FLOOR", defaults.Brand); err != nil {
		return nil, err
	}
	if floors.Category, err = getEnvInt("CATEGORY_ID_FLOOR", defaults.Category); err != nil {
		return nil, err
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}

	return &Config{
		App:    appConfig,
		Tables: tables,
		Floors: floors,
		AWS:    awsCfg,
	}, nil
}

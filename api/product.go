package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tvstore/catalog/internal/apperror"
	"github.com/tvstore/catalog/internal/catalog"
	"github.com/tvstore/catalog/internal/domain"
)

type ProductHandler struct {
	engine *catalog.Engine
}

func NewProductHandler(engine *catalog.Engine) *ProductHandler {
	return &ProductHandler{engine: engine}
}

func RegisterProductRoutes(rg *gin.RouterGroup, engine *catalog.Engine) {
	handler := NewProductHandler(engine)

	rg.GET("", handler.GetAll)
	rg.GET("/short", handler.GetShort)
	rg.POST("", handler.AddProduct)
	rg.GET("/:id", handler.GetProductById)
	rg.PUT("/:id", handler.UpdateProduct)
	rg.DELETE("/:id", handler.DeleteProduct)
}

// GetAll lists enriched products, optionally filtered with ?brand= or
// ?category=.
func (h *ProductHandler) GetAll(c *gin.Context) {
	filter := catalog.All()
	if raw := c.Query("brand"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			fail(c, apperror.NewInvalidInput("brand filter must be an integer"))
			return
		}
		filter = catalog.ByBrand(id)
	} else if raw := c.Query("category"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			fail(c, apperror.NewInvalidInput("category filter must be an integer"))
			return
		}
		filter = catalog.ByCategory(id)
	}

	products, err := h.engine.ListProducts(c, filter)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, BaseResponse{Success: true, Data: products})
}

func (h *ProductHandler) GetShort(c *gin.Context) {
	products, err := h.engine.ListProductsShort(c)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, BaseResponse{Success: true, Data: products})
}

func (h *ProductHandler) AddProduct(c *gin.Context) {
	var request domain.ProductInput
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, BaseResponse{Success: false, Message: "Invalid request body"})
		return
	}

	product, err := h.engine.CreateProduct(c, request)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, BaseResponse{Success: true, Message: "Product created successfully", Data: product})
}

func (h *ProductHandler) GetProductById(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		fail(c, err)
		return
	}

	product, err := h.engine.GetProduct(c, id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, BaseResponse{Success: true, Data: product})
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		fail(c, err)
		return
	}

	var request domain.ProductInput
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, BaseResponse{Success: false, Message: "Invalid request body"})
		return
	}

	updated, err := h.engine.UpdateProduct(c, id, request)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, BaseResponse{Success: true, Message: "Product updated successfully", Data: updated})
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		fail(c, err)
		return
	}

	if err := h.engine.DeleteProduct(c, id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, BaseResponse{Success: true, Message: "Delete product successfully"})
}

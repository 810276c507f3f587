package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tvstore/catalog/internal/catalog"
	"github.com/tvstore/catalog/internal/domain"
)

type BrandHandler struct {
	engine *catalog.Engine
}

func NewBrandHandler(engine *catalog.Engine) *BrandHandler {
	return &BrandHandler{engine: engine}
}

func RegisterBrandRoutes(rg *gin.RouterGroup, engine *catalog.Engine) {
	handler := NewBrandHandler(engine)

	rg.GET("", handler.GetAll)
	rg.GET("/short", handler.GetShort)
	rg.POST("", handler.AddBrand)
	rg.GET("/:id", handler.GetBrandById)
	rg.PUT("/:id", handler.UpdateBrand)
	rg.DELETE("/:id", handler.DeleteBrand)
}

func (h *BrandHandler) GetAll(c *gin.Context) {
	brands, err := h.engine.ListBrands(c)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, BaseResponse{Success: true, Data: brands})
}

func (h *BrandHandler) GetShort(c *gin.Context) {
	brands, err := h.engine.ListBrandsShort(c)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, BaseResponse{Success: true, Data: brands})
}

func (h *BrandHandler) AddBrand(c *gin.Context) {
	var request domain.BrandInput
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, BaseResponse{Success: false, Message: "Invalid request body"})
		return
	}

	brand, err := h.engine.CreateBrand(c, request)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, BaseResponse{Success: true, Message: "Brand created successfully", Data: brand})
}

func (h *BrandHandler) GetBrandById(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		fail(c, err)
		return
	}

	brand, err := h.engine.GetBrand(c, id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, BaseResponse{Success: true, Data: brand})
}

func (h *BrandHandler) UpdateBrand(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		fail(c, err)
		return
	}

	var request domain.BrandInput
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, BaseResponse{Success: false, Message: "Invalid request body"})
		return
	}

	updated, err := h.engine.UpdateBrand(c, id, request)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, BaseResponse{Success: true, Message: "Brand updated successfully", Data: updated})
}

// DeleteBrand removes the brand and every product referencing it.
func (h *BrandHandler) DeleteBrand(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		fail(c, err)
		return
	}

	if err := h.engine.DeleteBrand(c, id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, BaseResponse{Success: true, Message: "Delete brand successfully"})
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tvstore/catalog/internal/catalog"
	"github.com/tvstore/catalog/internal/domain"
)

type CategoryHandler struct {
	engine *catalog.Engine
}

func NewCategoryHandler(engine *catalog.Engine) *CategoryHandler {
	return &CategoryHandler{engine: engine}
}

func RegisterCategoryRoutes(rg *gin.RouterGroup, engine *catalog.Engine) {
	handler := NewCategoryHandler(engine)

	rg.GET("", handler.GetAll)
	rg.GET("/short", handler.GetShort)
	rg.POST("", handler.AddCategory)
	rg.GET("/:id", handler.GetCategoryById)
	rg.PUT("/:id", handler.UpdateCategory)
	rg.DELETE("/:id", handler.DeleteCategory)
}

func (h *CategoryHandler) GetAll(c *gin.Context) {
	categories, err := h.engine.ListCategories(c)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, BaseResponse{Success: true, Data: categories})
}

func (h *CategoryHandler) GetShort(c *gin.Context) {
	categories, err := h.engine.ListCategoriesShort(c)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, BaseResponse{Success: true, Data: categories})
}

func (h *CategoryHandler) AddCategory(c *gin.Context) {
	var request domain.CategoryInput
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, BaseResponse{Success: false, Message: "Invalid request body"})
		return
	}

	category, err := h.engine.CreateCategory(c, request)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, BaseResponse{Success: true, Message: "Category created successfully", Data: category})
}

func (h *CategoryHandler) GetCategoryById(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		fail(c, err)
		return
	}

	category, err := h.engine.GetCategory(c, id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, BaseResponse{Success: true, Data: category})
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		fail(c, err)
		return
	}

	var request domain.CategoryInput
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, BaseResponse{Success: false, Message: "Invalid request body"})
		return
	}

	updated, err := h.engine.UpdateCategory(c, id, request)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, BaseResponse{Success: true, Message: "Category updated successfully", Data: updated})
}

// DeleteCategory removes the category and every product referencing it.
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		fail(c, err)
		return
	}

	if err := h.engine.DeleteCategory(c, id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, BaseResponse{Success: true, Message: "Delete category successfully"})
}

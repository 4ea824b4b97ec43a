package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Chikimuras/ezlife/internal/adapter/http/dto"
	"github.com/Chikimuras/ezlife/internal/adapter/http/mapper"
	"github.com/Chikimuras/ezlife/internal/adapter/http/validation"
	"github.com/Chikimuras/ezlife/internal/core/ports"
)

type CategoryHandler struct {
	categoryService ports.CategoryService
}

func NewCategoryHandler(categoryService ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	categories, err := h.categoryService.ListCategories(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to list categories")
		return
	}
	c.JSON(http.StatusOK, mapper.ToCategoryItems(categories))
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	category, err := h.categoryService.GetCategory(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, err, "failed to get category", zap.String("category_id", id.String()))
		return
	}
	c.JSON(http.StatusOK, mapper.ToCategoryItem(category))
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.CreateCategoryRequest
	if _, ok := bindJSON(c, &req); !ok {
		return
	}
	input, err := validation.BuildCategory(userID, req)
	if err != nil {
		respondError(c, err, "invalid category payload")
		return
	}
	category, err := h.categoryService.CreateCategory(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, "failed to create category")
		return
	}
	c.JSON(http.StatusCreated, mapper.ToCategoryItem(category))
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateCategoryRequest
	raw, ok := bindJSON(c, &req)
	if !ok {
		return
	}
	patch, err := validation.BuildCategoryPatch(req, raw)
	if err != nil {
		respondError(c, err, "invalid category payload")
		return
	}
	category, err := h.categoryService.UpdateCategory(c.Request.Context(), id, userID, patch)
	if err != nil {
		respondError(c, err, "failed to update category", zap.String("category_id", id.String()))
		return
	}
	c.JSON(http.StatusOK, mapper.ToCategoryItem(category))
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.categoryService.DeleteCategory(c.Request.Context(), id, userID); err != nil {
		respondError(c, err, "failed to delete category", zap.String("category_id", id.String()))
		return
	}
	c.Status(http.StatusNoContent)
}

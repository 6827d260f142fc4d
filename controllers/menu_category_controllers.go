package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fastfood-pos/models"
	"fastfood-pos/utils"
)

type MenuCategoryController struct {
	DB *gorm.DB
}

func NewMenuCategoryController(db *gorm.DB) *MenuCategoryController {
	return &MenuCategoryController{DB: db}
}

// GetAllCategories -> GET /api/menu-categories
func (mc *MenuCategoryController) GetAllCategories(c *gin.Context) {
	var categories []models.MenuCategory
	if err := mc.DB.Order("name").Find(&categories).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of categories", categories)
}

// CreateCategory -> POST /api/menu-categories
func (mc *MenuCategoryController) CreateCategory(c *gin.Context) {
	var body struct {
		Name   string `json:"name" binding:"required"`
		Active *bool  `json:"active"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, err)
		return
	}

	active := true
	if body.Active != nil {
		active = *body.Active
	}

	category := models.MenuCategory{Name: body.Name, Active: active}
	if err := mc.DB.Create(&category).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Category created", category)
}

// UpdateCategory -> PATCH /api/menu-categories/:category_id
func (mc *MenuCategoryController) UpdateCategory(c *gin.Context) {
	var body struct {
		Name   *string `json:"name"`
		Active *bool   `json:"active"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	updates := map[string]interface{}{}
	if body.Name != nil {
		updates["name"] = *body.Name
	}
	if body.Active != nil {
		updates["active"] = *body.Active
	}
	if len(updates) == 0 {
		utils.RespondError(c, http.StatusUnprocessableEntity, ErrNothingToUpdate)
		return
	}

	if err := mc.DB.Model(&models.MenuCategory{}).Where("id = ?", parseID(c, "category_id")).
		Updates(updates).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Category updated", gin.H{"updated": true})
}

// DeleteCategory -> DELETE /api/menu-categories/:category_id
func (mc *MenuCategoryController) DeleteCategory(c *gin.Context) {
	if err := mc.DB.Delete(&models.MenuCategory{}, parseID(c, "category_id")).Error; err != nil {
		utils.RespondError(c, http.StatusConflict, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Category deleted", gin.H{"deleted": true})
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fastfood-pos/models"
	"fastfood-pos/utils"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

// GetAllMenuItems -> GET /api/menu-items?category_id=&active=
func (mc *MenuController) GetAllMenuItems(c *gin.Context) {
	q := mc.DB.Order("name")
	if cat := c.Query("category_id"); cat != "" {
		q = q.Where("category_id = ?", cat)
	}
	if active := c.Query("active"); active != "" {
		q = q.Where("active = ?", active == "1" || active == "true")
	}

	var items []models.MenuItem
	if err := q.Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of menu items", items)
}

// CreateMenuItem -> POST /api/menu-items
func (mc *MenuController) CreateMenuItem(c *gin.Context) {
	var body struct {
		CategoryID  uint    `json:"category_id" binding:"required"`
		Name        string  `json:"name" binding:"required"`
		Price       float64 `json:"price" binding:"required,gt=0"`
		Active      *bool   `json:"active"`
		Description string  `json:"description"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, err)
		return
	}

	active := true
	if body.Active != nil {
		active = *body.Active
	}

	item := models.MenuItem{
		CategoryID:  body.CategoryID,
		Name:        body.Name,
		Price:       utils.Round2(body.Price),
		Active:      active,
		Description: body.Description,
	}
	if err := mc.DB.Create(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Menu item created", item)
}

// UpdateMenuItem -> PATCH /api/menu-items/:item_id
// Price edits never touch lines already on orders: unit prices are frozen at
// insert time.
func (mc *MenuController) UpdateMenuItem(c *gin.Context) {
	var body struct {
		CategoryID  *uint    `json:"category_id"`
		Name        *string  `json:"name"`
		Price       *float64 `json:"price"`
		Active      *bool    `json:"active"`
		Description *string  `json:"description"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	updates := map[string]interface{}{}
	if body.CategoryID != nil {
		updates["category_id"] = *body.CategoryID
	}
	if body.Name != nil {
		updates["name"] = *body.Name
	}
	if body.Price != nil {
		updates["price"] = utils.Round2(*body.Price)
	}
	if body.Active != nil {
		updates["active"] = *body.Active
	}
	if body.Description != nil {
		updates["description"] = *body.Description
	}
	if len(updates) == 0 {
		utils.RespondError(c, http.StatusUnprocessableEntity, ErrNothingToUpdate)
		return
	}

	if err := mc.DB.Model(&models.MenuItem{}).Where("id = ?", parseID(c, "item_id")).
		Updates(updates).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item updated", gin.H{"updated": true})
}

// DeleteMenuItem -> DELETE /api/menu-items/:item_id
func (mc *MenuController) DeleteMenuItem(c *gin.Context) {
	if err := mc.DB.Delete(&models.MenuItem{}, parseID(c, "item_id")).Error; err != nil {
		utils.RespondError(c, http.StatusConflict, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item deleted", gin.H{"deleted": true})
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fastfood-pos/models"
	"fastfood-pos/utils"
)

type DealController struct {
	DB *gorm.DB
}

func NewDealController(db *gorm.DB) *DealController {
	return &DealController{DB: db}
}

// GetAllDeals -> GET /api/deals?active=1
func (dc *DealController) GetAllDeals(c *gin.Context) {
	q := dc.DB.Preload("Items").Order("id DESC")
	if active := c.Query("active"); active != "" {
		q = q.Where("active = ?", active == "1" || active == "true")
	}

	var deals []models.Deal
	if err := q.Find(&deals).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of deals", deals)
}

// GetDealByID -> GET /api/deals/:deal_id
func (dc *DealController) GetDealByID(c *gin.Context) {
	var deal models.Deal
	if err := dc.DB.Preload("Items.MenuItem").First(&deal, parseID(c, "deal_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Deal detail", deal)
}

// CreateDeal -> POST /api/deals
// CASHIER is allowed so the POS can save counter-built deals.
func (dc *DealController) CreateDeal(c *gin.Context) {
	var body struct {
		Name   string  `json:"name" binding:"required"`
		Price  float64 `json:"price" binding:"required,gt=0"`
		Active *bool   `json:"active"`
		Notes  *string `json:"notes"`
		Items  []struct {
			MenuItemID uint    `json:"menu_item_id"`
			Qty        float64 `json:"qty"`
		} `json:"items"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, err)
		return
	}

	active := true
	if body.Active != nil {
		active = *body.Active
	}

	deal := models.Deal{
		Name:   body.Name,
		Price:  utils.Round2(body.Price),
		Active: active,
		Notes:  body.Notes,
	}

	err := dc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&deal).Error; err != nil {
			return err
		}
		for _, it := range body.Items {
			if it.MenuItemID == 0 || it.Qty <= 0 {
				continue
			}
			di := models.DealItem{DealID: deal.ID, MenuItemID: it.MenuItemID, Qty: it.Qty}
			if err := tx.Create(&di).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Deal created", gin.H{"id": deal.ID})
}

// UpdateDeal -> PATCH /api/deals/:deal_id
func (dc *DealController) UpdateDeal(c *gin.Context) {
	var body struct {
		Name   *string  `json:"name"`
		Price  *float64 `json:"price"`
		Active *bool    `json:"active"`
		Notes  *string  `json:"notes"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	updates := map[string]interface{}{}
	if body.Name != nil {
		updates["name"] = *body.Name
	}
	if body.Price != nil {
		updates["price"] = utils.Round2(*body.Price)
	}
	if body.Active != nil {
		updates["active"] = *body.Active
	}
	if body.Notes != nil {
		updates["notes"] = *body.Notes
	}
	if len(updates) == 0 {
		utils.RespondError(c, http.StatusUnprocessableEntity, ErrNothingToUpdate)
		return
	}

	if err := dc.DB.Model(&models.Deal{}).Where("id = ?", parseID(c, "deal_id")).
		Updates(updates).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Deal updated", gin.H{"updated": true})
}

// DeleteDeal -> DELETE /api/deals/:deal_id
func (dc *DealController) DeleteDeal(c *gin.Context) {
	if err := dc.DB.Delete(&models.Deal{}, parseID(c, "deal_id")).Error; err != nil {
		utils.RespondError(c, http.StatusConflict, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Deal deleted", gin.H{"deleted": true})
}

// AddDealItem -> POST /api/deals/:deal_id/items
func (dc *DealController) AddDealItem(c *gin.Context) {
	var body struct {
		MenuItemID uint    `json:"menu_item_id" binding:"required"`
		Qty        float64 `json:"qty" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, err)
		return
	}

	di := models.DealItem{
		DealID:     parseID(c, "deal_id"),
		MenuItemID: body.MenuItemID,
		Qty:        body.Qty,
	}
	if err := dc.DB.Create(&di).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Deal item added", gin.H{"id": di.ID})
}

// UpdateDealItem -> PATCH /api/deals/:deal_id/items/:deal_item_id
func (dc *DealController) UpdateDealItem(c *gin.Context) {
	var body struct {
		Qty *float64 `json:"qty"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.Qty == nil || *body.Qty <= 0 {
		utils.RespondError(c, http.StatusUnprocessableEntity, ErrQtyRequired)
		return
	}

	if err := dc.DB.Model(&models.DealItem{}).
		Where("id = ? AND deal_id = ?", parseID(c, "deal_item_id"), parseID(c, "deal_id")).
		Update("qty", *body.Qty).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Deal item updated", gin.H{"updated": true})
}

// DeleteDealItem -> DELETE /api/deals/:deal_id/items/:deal_item_id
func (dc *DealController) DeleteDealItem(c *gin.Context) {
	if err := dc.DB.Where("id = ? AND deal_id = ?", parseID(c, "deal_item_id"), parseID(c, "deal_id")).
		Delete(&models.DealItem{}).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Deal item deleted", gin.H{"deleted": true})
}

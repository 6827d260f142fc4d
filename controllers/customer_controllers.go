package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fastfood-pos/models"
	"fastfood-pos/utils"
)

type CustomerController struct {
	DB *gorm.DB
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{DB: db}
}

// GetAllCustomers -> GET /api/customers?phone=
func (cc *CustomerController) GetAllCustomers(c *gin.Context) {
	q := cc.DB.Order("id DESC").Limit(200)
	if phone := c.Query("phone"); phone != "" {
		q = q.Where("phone LIKE ?", "%"+phone+"%")
	}

	var customers []models.Customer
	if err := q.Find(&customers).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of customers", customers)
}

// GetCustomerByID -> GET /api/customers/:customer_id
func (cc *CustomerController) GetCustomerByID(c *gin.Context) {
	var customer models.Customer
	if err := cc.DB.First(&customer, parseID(c, "customer_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("customer not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Customer detail", customer)
}

// UpdateCustomer -> PATCH /api/customers/:customer_id
func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	var body struct {
		Name  *string `json:"name"`
		Notes *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	updates := map[string]interface{}{}
	if body.Name != nil {
		updates["name"] = *body.Name
	}
	if body.Notes != nil {
		updates["notes"] = *body.Notes
	}
	if len(updates) == 0 {
		utils.RespondError(c, http.StatusUnprocessableEntity, ErrNothingToUpdate)
		return
	}

	if err := cc.DB.Model(&models.Customer{}).Where("id = ?", parseID(c, "customer_id")).
		Updates(updates).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Customer updated", gin.H{"updated": true})
}

package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fastfood-pos/models"
	"fastfood-pos/utils"
)

type ExpenseController struct {
	DB *gorm.DB
}

func NewExpenseController(db *gorm.DB) *ExpenseController {
	return &ExpenseController{DB: db}
}

// GetAllExpenseCategories -> GET /api/expense-categories
func (ec *ExpenseController) GetAllExpenseCategories(c *gin.Context) {
	var categories []models.ExpenseCategory
	if err := ec.DB.Order("name").Find(&categories).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of expense categories", categories)
}

// CreateExpenseCategory -> POST /api/expense-categories
func (ec *ExpenseController) CreateExpenseCategory(c *gin.Context) {
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

	category := models.ExpenseCategory{Name: body.Name, Active: active}
	if err := ec.DB.Create(&category).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Expense category created", gin.H{"id": category.ID})
}

// GetAllExpenses -> GET /api/expenses?branch_id=
func (ec *ExpenseController) GetAllExpenses(c *gin.Context) {
	q := ec.DB.Order("id DESC").Limit(200)
	if branch := c.Query("branch_id"); branch != "" {
		q = q.Where("branch_id = ?", branch)
	}

	var expenses []models.Expense
	if err := q.Find(&expenses).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of expenses", expenses)
}

// CreateExpense -> POST /api/expenses
func (ec *ExpenseController) CreateExpense(c *gin.Context) {
	var body struct {
		BranchID      uint    `json:"branch_id" binding:"required"`
		CategoryID    uint    `json:"category_id" binding:"required"`
		Amount        float64 `json:"amount" binding:"required,gt=0"`
		Vendor        *string `json:"vendor"`
		Notes         *string `json:"notes"`
		AttachmentURL *string `json:"attachment_url"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, err)
		return
	}

	expense := models.Expense{
		BranchID:      body.BranchID,
		CategoryID:    body.CategoryID,
		Amount:        utils.Round2(body.Amount),
		Vendor:        body.Vendor,
		Notes:         body.Notes,
		AttachmentURL: body.AttachmentURL,
		CreatedBy:     currentUserID(c),
	}
	if err := ec.DB.Create(&expense).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Expense created", gin.H{"id": expense.ID})
}

// UpdateExpense -> PATCH /api/expenses/:expense_id
func (ec *ExpenseController) UpdateExpense(c *gin.Context) {
	var body struct {
		BranchID      uint    `json:"branch_id" binding:"required"`
		CategoryID    uint    `json:"category_id" binding:"required"`
		Amount        float64 `json:"amount" binding:"required,gt=0"`
		Vendor        *string `json:"vendor"`
		Notes         *string `json:"notes"`
		AttachmentURL *string `json:"attachment_url"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, err)
		return
	}

	expenseID := parseID(c, "expense_id")
	var expense models.Expense
	if err := ec.DB.First(&expense, expenseID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("expense not found"))
		return
	}

	if err := ec.DB.Model(&expense).Updates(map[string]interface{}{
		"branch_id":      body.BranchID,
		"category_id":    body.CategoryID,
		"amount":         utils.Round2(body.Amount),
		"vendor":         body.Vendor,
		"notes":          body.Notes,
		"attachment_url": body.AttachmentURL,
	}).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Expense updated", gin.H{"updated": true})
}

// DeleteExpense -> DELETE /api/expenses/:expense_id
func (ec *ExpenseController) DeleteExpense(c *gin.Context) {
	if err := ec.DB.Delete(&models.Expense{}, parseID(c, "expense_id")).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Expense deleted", gin.H{"deleted": true})
}

package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fastfood-pos/models"
	"fastfood-pos/utils"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// Login -> POST /api/auth/login with username + PIN
func (ac *AuthController) Login(c *gin.Context) {
	var body struct {
		Username string `json:"username" binding:"required"`
		Pin      string `json:"pin" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var user models.User
	if err := ac.DB.Where("username = ? AND active = ?", body.Username, true).
		First(&user).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PinHash), []byte(body.Pin)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Role, user.BranchID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"user": gin.H{
			"id":        user.ID,
			"name":      user.Name,
			"username":  user.Username,
			"role":      user.Role,
			"branch_id": user.BranchID,
		},
	})
}

// Me -> GET /api/auth/me
func (ac *AuthController) Me(c *gin.Context) {
	var user models.User
	if err := ac.DB.First(&user, currentUserID(c)).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Current user", user)
}

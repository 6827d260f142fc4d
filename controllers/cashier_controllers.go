package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fastfood-pos/services"
	"fastfood-pos/utils"
)

type CashierController struct {
	Sessions *services.CashierService
}

func NewCashierController(sessions *services.CashierService) *CashierController {
	return &CashierController{Sessions: sessions}
}

// OpenSession -> POST /api/cashier/sessions/open
func (cc *CashierController) OpenSession(c *gin.Context) {
	var body struct {
		BranchID     uint    `json:"branch_id"`
		OpeningFloat float64 `json:"opening_float"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	branchID := body.BranchID
	if branchID == 0 {
		branchID = currentBranchID(c)
	}

	session, err := cc.Sessions.Open(branchID, currentUserID(c), body.OpeningFloat)
	if err != nil {
		respondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Session opened", gin.H{"session_id": session.ID})
}

// CloseSession -> POST /api/cashier/sessions/close
func (cc *CashierController) CloseSession(c *gin.Context) {
	var body struct {
		Payouts float64 `json:"payouts"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	session, err := cc.Sessions.Close(currentUserID(c), body.Payouts)
	if err != nil {
		respondAppError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Session closed", gin.H{
		"closed":          true,
		"session_id":      session.ID,
		"opening_float":   utils.Money2(session.OpeningFloat),
		"cash_sales":      utils.Money2(session.CashSales),
		"payouts":         utils.Money2(session.Payouts),
		"closing_balance": utils.Money2(session.ClosingBalance),
	})
}

// CurrentSession -> GET /api/cashier/sessions/current
func (cc *CashierController) CurrentSession(c *gin.Context) {
	session, metrics, err := cc.Sessions.Current(currentUserID(c))
	if err != nil {
		respondAppError(c, err)
		return
	}

	if session == nil {
		utils.RespondJSON(c, http.StatusOK, "No open session", gin.H{"session": nil, "metrics": nil})
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Current session", gin.H{
		"session": session,
		"metrics": metrics,
	})
}

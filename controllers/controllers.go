package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fastfood-pos/services"
	"fastfood-pos/utils"
)

var (
	ErrNothingToUpdate = errors.New("nothing to update")
	ErrQtyRequired     = errors.New("qty must be > 0")
)

// respondAppError maps a structured service error onto the HTTP surface.
// Conflict payloads keep their details so the client can act (e.g. offer a
// force path) without re-deriving state.
func respondAppError(c *gin.Context, err error) {
	ae, ok := services.AsAppError(err).(*services.AppError)
	if !ok {
		utils.ErrorLogger.Printf("internal error: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var code int
	switch ae.Kind {
	case services.ErrValidation:
		code = http.StatusUnprocessableEntity
	case services.ErrNotFound:
		code = http.StatusNotFound
	case services.ErrConflict:
		code = http.StatusConflict
	default:
		code = http.StatusInternalServerError
		utils.ErrorLogger.Printf("internal error: %v", ae)
	}

	if len(ae.Details) > 0 {
		utils.RespondErrorDetails(c, code, ae, ae.Details)
		return
	}
	utils.RespondError(c, code, ae)
}

// currentUserID reads the authenticated caller set by the auth middleware.
func currentUserID(c *gin.Context) uint {
	if v, ok := c.Get("userID"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// currentBranchID returns the caller's home branch, or 0 when unbound.
func currentBranchID(c *gin.Context) uint {
	if v, ok := c.Get("branchID"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"fastfood-pos/models"
	"fastfood-pos/utils"
)

const (
	SessionStatusOpen   = "OPEN"
	SessionStatusClosed = "CLOSED"
)

// CashierService tracks shift sessions at the till. It reads the payment
// ledger but never mutates orders.
type CashierService struct {
	db *gorm.DB
}

func NewCashierService(db *gorm.DB) *CashierService {
	return &CashierService{db: db}
}

// Open starts a shift with the counted opening float. A cashier can have at
// most one OPEN session at a time.
func (s *CashierService) Open(branchID, cashierID uint, openingFloat float64) (*models.CashierSession, error) {
	if branchID == 0 {
		return nil, ValidationErr("branch_id required")
	}
	if openingFloat < 0 {
		return nil, ValidationErr("opening_float must be >= 0")
	}

	var existing models.CashierSession
	err := s.db.Where("cashier_id = ? AND status = ?", cashierID, SessionStatusOpen).
		First(&existing).Error
	if err == nil {
		return nil, ConflictErr("you already have an open session", map[string]interface{}{
			"session_id": existing.ID,
		})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, AsAppError(err)
	}

	session := models.CashierSession{
		BranchID:     branchID,
		CashierID:    cashierID,
		Status:       SessionStatusOpen,
		OpeningFloat: utils.Round2(openingFloat),
		OpenedAt:     time.Now(),
	}
	if err := s.db.Create(&session).Error; err != nil {
		return nil, AsAppError(err)
	}
	return &session, nil
}

// cashSales sums CASH tenders taken on this cashier's orders since the shift
// opened.
func (s *CashierService) cashSales(tx *gorm.DB, cashierID uint, since time.Time) (float64, error) {
	var total float64
	err := tx.Model(&models.Payment{}).
		Joins("JOIN orders ON orders.id = payments.order_id").
		Where("payments.method = ? AND orders.cashier_id = ? AND payments.created_at >= ?",
			PayMethodCash, cashierID, since).
		Select("COALESCE(SUM(payments.amount), 0)").
		Scan(&total).Error
	return total, err
}

// Close ends the cashier's open shift: cash sales are computed from the
// payment ledger, payouts subtracted, and the closing balance written with
// the session in one transaction.
func (s *CashierService) Close(cashierID uint, payouts float64) (*models.CashierSession, error) {
	if payouts < 0 {
		return nil, ValidationErr("payouts must be >= 0")
	}

	var session models.CashierSession
	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("cashier_id = ? AND status = ?", cashierID, SessionStatusOpen).
			Order("id DESC").First(&session).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFoundErr("no open session")
		}
		if err != nil {
			return err
		}

		sales, err := s.cashSales(tx, cashierID, session.OpenedAt)
		if err != nil {
			return err
		}

		now := time.Now()
		session.CashSales = utils.Round2(sales)
		session.Payouts = utils.Round2(payouts)
		session.ClosingBalance = utils.Round2(session.OpeningFloat + sales - payouts)
		session.ClosedAt = &now
		session.Status = SessionStatusClosed

		return tx.Model(&models.CashierSession{}).Where("id = ?", session.ID).
			Updates(map[string]interface{}{
				"cash_sales":      session.CashSales,
				"payouts":         session.Payouts,
				"closing_balance": session.ClosingBalance,
				"closed_at":       now,
				"status":          SessionStatusClosed,
			}).Error
	})
	if err != nil {
		return nil, AsAppError(err)
	}
	return &session, nil
}

// SessionMetrics is the live projection shown while a shift is running.
// Payouts are unknown until close, so estimated_closing excludes them.
type SessionMetrics struct {
	OpeningFloat     float64 `json:"opening_float"`
	CashSales        float64 `json:"cash_sales"`
	EstimatedClosing float64 `json:"estimated_closing"`
}

// Current returns the cashier's open session with live cash-sales metrics,
// or (nil, nil, nil) when no shift is open.
func (s *CashierService) Current(cashierID uint) (*models.CashierSession, *SessionMetrics, error) {
	var session models.CashierSession
	err := s.db.Where("cashier_id = ? AND status = ?", cashierID, SessionStatusOpen).
		Order("id DESC").First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, AsAppError(err)
	}

	sales, err := s.cashSales(s.db, cashierID, session.OpenedAt)
	if err != nil {
		return nil, nil, AsAppError(err)
	}

	metrics := &SessionMetrics{
		OpeningFloat:     utils.Round2(session.OpeningFloat),
		CashSales:        utils.Round2(sales),
		EstimatedClosing: utils.Round2(session.OpeningFloat + sales),
	}
	return &session, metrics, nil
}

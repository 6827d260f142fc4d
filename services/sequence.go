package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fastfood-pos/models"
)

// nextDaySequence allocates the next ticket number for (branch, date).
// The increment is a single atomic upsert; the post-increment value is read
// back while the upsert's row lock is still held by this transaction, so two
// concurrent creators can never mint the same sequence.
func nextDaySequence(tx *gorm.DB, branchID uint, counterDate string) (int, error) {
	counter := models.DailyCounter{BranchID: branchID, CounterDate: counterDate, LastSeq: 1}
	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "branch_id"}, {Name: "counter_date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"last_seq": gorm.Expr("last_seq + 1"),
		}),
	}).Create(&counter).Error
	if err != nil {
		return 0, err
	}

	var row models.DailyCounter
	if err := tx.Where("branch_id = ? AND counter_date = ?", branchID, counterDate).
		Take(&row).Error; err != nil {
		return 0, err
	}
	return row.LastSeq, nil
}

// formatOrderNo builds the human-facing ticket string, e.g. BR01-20250901-0007.
func formatOrderNo(branchID uint, ymd string, seq int) string {
	return fmt.Sprintf("BR%02d-%s-%04d", branchID, ymd, seq)
}

// fallbackOrderNo is the non-colliding rename target used by a forced
// sequence reset, e.g. BR01-20250901-R42.
func fallbackOrderNo(branchID uint, ymd string, orderID uint) string {
	return fmt.Sprintf("BR%02d-%s-R%d", branchID, ymd, orderID)
}

// ResetSequenceResult reports what a reset did (or would refuse to do).
type ResetSequenceResult struct {
	Reset           bool   `json:"reset"`
	BranchID        uint   `json:"branch_id"`
	Date            string `json:"date"`
	RenamedExisting bool   `json:"renamed_existing"`
	ExistingCount   int64  `json:"existing_count"`
}

// ResetSequence restarts today's numbering for a branch. With existing orders
// and force=false it refuses with a structured conflict so the client can
// offer an explicit override; with force=true it renames today's orders to
// the -R{id} fallback, zeroes their day_seq and drops the counter row so the
// next allocation starts at 1. Destructive and admin-only by routing.
func (s *OrderService) ResetSequence(branchID uint, force bool) (*ResetSequenceResult, error) {
	if branchID == 0 {
		return nil, ValidationErr("branch_id required")
	}

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	counterDate := now.Format("2006-01-02")

	res := &ResetSequenceResult{
		Reset:    true,
		BranchID: branchID,
		Date:     counterDate,
	}

	// The count sits inside the transaction so an order created between the
	// force=false guard and the counter delete cannot slip past it.
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Order{}).
			Where("branch_id = ? AND created_at >= ?", branchID, dayStart).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 && !force {
			return ConflictErr("existing orders found", map[string]interface{}{
				"existing_orders": count,
				"branch_id":       branchID,
				"date":            counterDate,
			})
		}
		res.RenamedExisting = count > 0 && force
		res.ExistingCount = count

		if count > 0 && force {
			var orders []models.Order
			if err := tx.Where("branch_id = ? AND created_at >= ?", branchID, dayStart).
				Find(&orders).Error; err != nil {
				return err
			}
			for _, o := range orders {
				updates := map[string]interface{}{
					"order_no": fallbackOrderNo(branchID, o.CreatedAt.Format("20060102"), o.ID),
					"day_seq":  0,
				}
				if err := tx.Model(&models.Order{}).Where("id = ?", o.ID).
					Updates(updates).Error; err != nil {
					return err
				}
			}
		}

		return tx.Where("branch_id = ? AND counter_date = ?", branchID, counterDate).
			Delete(&models.DailyCounter{}).Error
	})
	if err != nil {
		var ae *AppError
		if errors.As(err, &ae) {
			return nil, ae
		}
		return nil, PersistenceErr("failed to reset sequence", err)
	}
	return res, nil
}

package services

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"fastfood-pos/models"
	"fastfood-pos/utils"
)

// Order statuses
const (
	OrderStatusOpen      = "OPEN"
	OrderStatusKitchen   = "KITCHEN"
	OrderStatusReady     = "READY"
	OrderStatusPartial   = "PARTIAL"
	OrderStatusPaid      = "PAID"
	OrderStatusVoid      = "VOID"
	OrderStatusCancelled = "CANCELLED"
	OrderStatusRefunded  = "REFUNDED"
)

// Order types
const (
	OrderTypeTakeaway = "TAKEAWAY"
	OrderTypeDelivery = "DELIVERY"
	OrderTypeDineIn   = "DINEIN"
	OrderTypePickup   = "PICKUP"
)

// Payment methods
const (
	PayMethodCash   = "CASH"
	PayMethodCard   = "CARD"
	PayMethodWallet = "WALLET"
	PayMethodQR     = "QR"
	PayMethodSplit  = "SPLIT"
)

const (
	// priceMatchEpsilon bounds unit-price equality when merging lines.
	priceMatchEpsilon = 1e-5
	// paymentEpsilon absorbs cent-rounding when comparing paid vs grand total.
	paymentEpsilon = 1e-4
)

var orderStatuses = []string{
	OrderStatusOpen, OrderStatusKitchen, OrderStatusReady, OrderStatusPartial,
	OrderStatusPaid, OrderStatusVoid, OrderStatusCancelled, OrderStatusRefunded,
}

var orderTypes = []string{OrderTypeTakeaway, OrderTypeDelivery, OrderTypeDineIn, OrderTypePickup}

var payMethods = []string{PayMethodCash, PayMethodCard, PayMethodWallet, PayMethodQR, PayMethodSplit}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// terminal statuses are immutable to item mutation.
var terminalStatuses = []string{OrderStatusPaid, OrderStatusVoid, OrderStatusCancelled, OrderStatusRefunded}

// OrderService owns the order lifecycle: creation with daily numbering,
// item/deal/charge mutation while OPEN, kitchen transitions, payment and
// closure. Every mutating call runs in one transaction and ends with a
// totals recompute, so readers never observe items with stale totals.
type OrderService struct {
	db                   *gorm.DB
	serviceChargePercent float64
	taxRatePercent       float64
}

func NewOrderService(db *gorm.DB, servicePct, taxPct float64) *OrderService {
	return &OrderService{db: db, serviceChargePercent: servicePct, taxRatePercent: taxPct}
}

func (s *OrderService) DB() *gorm.DB { return s.db }

// chargeCfg builds the recompute configuration, keeping the order's stored
// delivery fee unless the caller overrides it.
func (s *OrderService) chargeCfg(deliveryFee float64, servicePct, taxPct *float64) ChargeConfig {
	cfg := ChargeConfig{
		DeliveryFee:          deliveryFee,
		ServiceChargePercent: s.serviceChargePercent,
		TaxRatePercent:       s.taxRatePercent,
	}
	if servicePct != nil {
		cfg.ServiceChargePercent = *servicePct
	}
	if taxPct != nil {
		cfg.TaxRatePercent = *taxPct
	}
	return cfg
}

type CreateOrderInput struct {
	BranchID      uint
	OrderType     string
	CustomerPhone string
	Notes         *string
	UserID        uint
}

type CreateOrderResult struct {
	OrderID uint   `json:"order_id"`
	OrderNo string `json:"order_no"`
	DaySeq  int    `json:"day_seq"`
}

// sanitizePhone keeps digits and a leading plus, mirroring how numbers are
// keyed in the customers table.
func sanitizePhone(raw string) string {
	return strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '+' {
			return r
		}
		return -1
	}, strings.TrimSpace(raw))
}

// Create opens a new OPEN order and mints its daily ticket number inside the
// same transaction. An unknown order type falls back to TAKEAWAY.
func (s *OrderService) Create(in CreateOrderInput) (*CreateOrderResult, error) {
	if in.BranchID == 0 {
		return nil, ValidationErr("branch_id required")
	}

	orderType := strings.ToUpper(strings.TrimSpace(in.OrderType))
	if !contains(orderTypes, orderType) {
		orderType = OrderTypeTakeaway
	}
	phone := sanitizePhone(in.CustomerPhone)

	var result CreateOrderResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		counterDate := now.Format("2006-01-02")
		ymd := now.Format("20060102")

		seq, err := nextDaySequence(tx, in.BranchID, counterDate)
		if err != nil {
			return err
		}
		orderNo := formatOrderNo(in.BranchID, ymd, seq)

		// Duplicate guard: defends against manual tampering with the
		// counter row. One re-allocation is enough by construction.
		var clash int64
		if err := tx.Model(&models.Order{}).Where("order_no = ?", orderNo).Count(&clash).Error; err != nil {
			return err
		}
		if clash > 0 {
			if seq, err = nextDaySequence(tx, in.BranchID, counterDate); err != nil {
				return err
			}
			orderNo = formatOrderNo(in.BranchID, ymd, seq)
		}

		var customerID *uint
		var customerPhone *string
		if phone != "" {
			var customer models.Customer
			err := tx.Where("phone = ?", phone).First(&customer).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				customer = models.Customer{Name: phone, Phone: phone}
				if err := tx.Create(&customer).Error; err != nil {
					return err
				}
			} else if err != nil {
				return err
			}
			customerID = &customer.ID
			customerPhone = &phone
		}

		order := models.Order{
			BranchID:      in.BranchID,
			OrderNo:       orderNo,
			DaySeq:        seq,
			OrderType:     orderType,
			Status:        OrderStatusOpen,
			CustomerID:    customerID,
			CustomerPhone: customerPhone,
			CashierID:     &in.UserID,
			CreatedBy:     in.UserID,
			Notes:         in.Notes,
			OpenedAt:      now,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		result = CreateOrderResult{OrderID: order.ID, OrderNo: orderNo, DaySeq: seq}
		return nil
	})
	if err != nil {
		return nil, AsAppError(err)
	}
	return &result, nil
}

// loadOpenOrder fetches an order and verifies it accepts item mutation.
func loadOpenOrder(tx *gorm.DB, orderID uint) (*models.Order, error) {
	var order models.Order
	if err := tx.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundErr("order not found")
		}
		return nil, err
	}
	if order.Status != OrderStatusOpen {
		return nil, ConflictErr("order is not open", map[string]interface{}{
			"status": order.Status,
		})
	}
	return &order, nil
}

type AddItemResult struct {
	Added  bool `json:"added"`
	Merged bool `json:"merged"`
}

// AddItem puts one menu item on the cart, merging into an existing
// undiscounted line with the same item and frozen price when the incoming
// line is also undiscounted. Repeated taps of a menu button accumulate on
// one receipt line; any discounted line stays separate so the discount
// semantics are not corrupted by merging.
func (s *OrderService) AddItem(orderID, itemID uint, qty, lineDiscount float64) (*AddItemResult, error) {
	if orderID == 0 || itemID == 0 || qty <= 0 {
		return nil, ValidationErr("order_id, item_id and positive qty required")
	}
	if lineDiscount < 0 {
		return nil, ValidationErr("line_discount must be >= 0")
	}

	res := &AddItemResult{Added: true}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		order, err := loadOpenOrder(tx, orderID)
		if err != nil {
			return err
		}

		var menuItem models.MenuItem
		if err := tx.Where("id = ? AND active = ?", itemID, true).First(&menuItem).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFoundErr("menu item not found or inactive")
			}
			return err
		}

		unitPrice := utils.Round2(menuItem.Price)
		lineDiscount = utils.Round2(lineDiscount)
		if gross := qty * unitPrice; lineDiscount > gross {
			lineDiscount = utils.Round2(gross)
		}

		var existing models.OrderItem
		findErr := tx.Where(
			"order_id = ? AND item_id = ? AND line_discount = 0 AND ABS(unit_price - ?) < ?",
			orderID, itemID, unitPrice, priceMatchEpsilon,
		).Order("id").First(&existing).Error

		if findErr == nil && lineDiscount == 0 {
			newQty := existing.Qty + qty
			if err := tx.Model(&models.OrderItem{}).Where("id = ?", existing.ID).Updates(map[string]interface{}{
				"qty":        newQty,
				"unit_price": unitPrice,
				"line_total": utils.Round2(newQty*unitPrice - existing.LineDiscount),
			}).Error; err != nil {
				return err
			}
			res.Merged = true
		} else if findErr == nil || errors.Is(findErr, gorm.ErrRecordNotFound) {
			line := models.OrderItem{
				OrderID:          orderID,
				IsDeal:           false,
				ItemID:           &menuItem.ID,
				ItemNameSnapshot: menuItem.Name,
				Qty:              qty,
				UnitPrice:        unitPrice,
				LineDiscount:     lineDiscount,
				LineTotal:        utils.Round2(qty*unitPrice - lineDiscount),
			}
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
		} else {
			return findErr
		}

		return recalcTotals(tx, orderID, s.chargeCfg(order.DeliveryFee, nil, nil))
	})
	if err != nil {
		return nil, AsAppError(err)
	}
	return res, nil
}

// UpdateItem edits qty and/or line discount of a line while the order is
// OPEN. The discount is clamped at qty*unit_price rather than rejected, so
// the line total can reach zero but never goes negative.
func (s *OrderService) UpdateItem(orderID, orderItemID uint, qty, lineDiscount *float64) error {
	if orderID == 0 || orderItemID == 0 {
		return ValidationErr("order_id and order_item_id required")
	}
	if qty == nil && lineDiscount == nil {
		return ValidationErr("nothing to update")
	}
	if qty != nil && *qty <= 0 {
		return ValidationErr("qty must be > 0")
	}
	if lineDiscount != nil && *lineDiscount < 0 {
		return ValidationErr("line_discount must be >= 0")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		order, err := loadOpenOrder(tx, orderID)
		if err != nil {
			return err
		}

		var line models.OrderItem
		if err := tx.Where("id = ? AND order_id = ?", orderItemID, orderID).First(&line).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFoundErr("order item not found")
			}
			return err
		}

		newQty := line.Qty
		if qty != nil {
			newQty = *qty
		}
		newDisc := line.LineDiscount
		if lineDiscount != nil {
			newDisc = utils.Round2(*lineDiscount)
		}

		gross := newQty * line.UnitPrice
		if newDisc > gross {
			newDisc = gross
		}

		if err := tx.Model(&models.OrderItem{}).Where("id = ? AND order_id = ?", orderItemID, orderID).
			Updates(map[string]interface{}{
				"qty":           newQty,
				"line_discount": utils.Round2(newDisc),
				"line_total":    utils.Round2(gross - newDisc),
			}).Error; err != nil {
			return err
		}

		return recalcTotals(tx, orderID, s.chargeCfg(order.DeliveryFee, nil, nil))
	})
	return AsAppError(err)
}

// RemoveItem deletes a line from an OPEN order and recomputes totals.
func (s *OrderService) RemoveItem(orderID, orderItemID uint) error {
	if orderID == 0 || orderItemID == 0 {
		return ValidationErr("order_id and order_item_id required")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		order, err := loadOpenOrder(tx, orderID)
		if err != nil {
			return err
		}

		if err := tx.Where("id = ? AND order_id = ?", orderItemID, orderID).
			Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}

		return recalcTotals(tx, orderID, s.chargeCfg(order.DeliveryFee, nil, nil))
	})
	return AsAppError(err)
}

// SetCharges updates the delivery fee (only while OPEN; silently left alone
// otherwise) and recomputes totals with the supplied percentages.
func (s *OrderService) SetCharges(orderID uint, servicePct, taxPct, deliveryFee *float64) error {
	if orderID == 0 {
		return ValidationErr("order_id required")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFoundErr("order not found")
			}
			return err
		}

		fee := order.DeliveryFee
		if deliveryFee != nil && order.Status == OrderStatusOpen {
			fee = utils.Round2(*deliveryFee)
			if err := tx.Model(&models.Order{}).
				Where("id = ? AND status = ?", orderID, OrderStatusOpen).
				Update("delivery_fee", fee).Error; err != nil {
				return err
			}
		}

		return recalcTotals(tx, orderID, s.chargeCfg(fee, servicePct, taxPct))
	})
	return AsAppError(err)
}

type AdHocDealItem struct {
	MenuItemID uint    `json:"menu_item_id"`
	Qty        float64 `json:"qty"`
}

type AddDealInput struct {
	DealID uint
	Name   string
	Price  float64
	Qty    float64
	Items  []AdHocDealItem
}

func formatQty(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

// AddDeal expands a saved deal (or an ad-hoc bundle supplied inline) into a
// single cart line with a frozen price and component breakdown. One line per
// deal keeps receipts compact; component quantities are informational and
// never separately priced. Later edits to the deal template or its menu
// items do not reach existing lines.
func (s *OrderService) AddDeal(orderID uint, in AddDealInput) error {
	if orderID == 0 {
		return ValidationErr("order_id required")
	}
	qty := in.Qty
	if qty <= 0 {
		qty = 1
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		order, err := loadOpenOrder(tx, orderID)
		if err != nil {
			return err
		}

		var dealName string
		var dealPrice float64
		var dealID *uint
		var components []models.DealComponent

		if in.DealID > 0 {
			var deal models.Deal
			if err := tx.Where("id = ? AND active = ?", in.DealID, true).First(&deal).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return NotFoundErr("deal not found or inactive")
				}
				return err
			}
			dealName = deal.Name
			dealPrice = deal.Price
			dealID = &deal.ID

			var dealItems []models.DealItem
			if err := tx.Preload("MenuItem").Where("deal_id = ?", deal.ID).
				Order("id").Find(&dealItems).Error; err != nil {
				return err
			}
			for _, di := range dealItems {
				components = append(components, models.DealComponent{
					MenuItemID: di.MenuItemID,
					ItemName:   di.MenuItem.Name,
					Qty:        di.Qty,
				})
			}
		} else {
			dealName = strings.TrimSpace(in.Name)
			if dealName == "" {
				dealName = "Custom Deal"
			}
			dealPrice = utils.Round2(in.Price)
			if dealPrice <= 0 {
				return ValidationErr("deal price required")
			}
			if len(in.Items) == 0 {
				return ValidationErr("deal items required")
			}
			// Entries with bad ids or non-positive qty are dropped, not rejected.
			for _, it := range in.Items {
				if it.MenuItemID == 0 || it.Qty <= 0 {
					continue
				}
				var mi models.MenuItem
				if err := tx.First(&mi, it.MenuItemID).Error; err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						continue
					}
					return err
				}
				components = append(components, models.DealComponent{
					MenuItemID: mi.ID,
					ItemName:   mi.Name,
					Qty:        it.Qty,
				})
			}
			if len(components) == 0 {
				return ValidationErr("invalid deal items")
			}
		}

		nameSnapshot := "Deal: " + dealName
		if len(components) > 0 {
			parts := make([]string, 0, len(components))
			for _, comp := range components {
				parts = append(parts, comp.ItemName+" x"+formatQty(comp.Qty))
			}
			nameSnapshot += " — " + strings.Join(parts, ", ")
		}

		unitPrice := utils.Round2(dealPrice)
		line := models.OrderItem{
			OrderID:          orderID,
			IsDeal:           true,
			DealID:           dealID,
			ItemNameSnapshot: nameSnapshot,
			DealSnapshot: &models.DealSnapshot{
				Version: 1,
				Name:    dealName,
				Price:   unitPrice,
				Items:   components,
			},
			Qty:          qty,
			UnitPrice:    unitPrice,
			LineDiscount: 0,
			LineTotal:    utils.Round2(unitPrice * qty),
		}
		if err := tx.Create(&line).Error; err != nil {
			return err
		}

		return recalcTotals(tx, orderID, s.chargeCfg(order.DeliveryFee, nil, nil))
	})
	return AsAppError(err)
}

type TransitionResult struct {
	Already bool `json:"already,omitempty"`
}

// SendToKitchen moves an order to KITCHEN and stamps kitchen_at once.
// Idempotent when already in KITCHEN; refused from READY and terminal states
// and for empty carts.
func (s *OrderService) SendToKitchen(orderID uint) (*TransitionResult, error) {
	res := &TransitionResult{}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFoundErr("order not found")
			}
			return err
		}

		if order.Status == OrderStatusKitchen {
			res.Already = true
			return nil
		}
		if contains([]string{OrderStatusReady, OrderStatusPaid, OrderStatusVoid, OrderStatusCancelled}, order.Status) {
			return ConflictErr("order cannot be sent to kitchen in current status: "+order.Status,
				map[string]interface{}{"status": order.Status})
		}

		var itemCount int64
		if err := tx.Model(&models.OrderItem{}).Where("order_id = ?", orderID).Count(&itemCount).Error; err != nil {
			return err
		}
		if itemCount == 0 {
			return ValidationErr("order has no items")
		}

		now := time.Now()
		return tx.Model(&models.Order{}).Where("id = ?", orderID).Updates(map[string]interface{}{
			"status":     OrderStatusKitchen,
			"kitchen_at": now,
		}).Error
	})
	if err != nil {
		return nil, AsAppError(err)
	}
	return res, nil
}

// MarkReady moves an order to READY from KITCHEN, PARTIAL or OPEN and stamps
// ready_at once. Idempotent when already READY.
func (s *OrderService) MarkReady(orderID uint) (*TransitionResult, error) {
	res := &TransitionResult{}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFoundErr("order not found")
			}
			return err
		}

		if order.Status == OrderStatusReady {
			res.Already = true
			return nil
		}
		if !contains([]string{OrderStatusKitchen, OrderStatusPartial, OrderStatusOpen}, order.Status) {
			return ConflictErr("order cannot be marked ready from status: "+order.Status,
				map[string]interface{}{"status": order.Status})
		}

		now := time.Now()
		return tx.Model(&models.Order{}).Where("id = ?", orderID).Updates(map[string]interface{}{
			"status":   OrderStatusReady,
			"ready_at": now,
		}).Error
	})
	if err != nil {
		return nil, AsAppError(err)
	}
	return res, nil
}

type PayResult struct {
	PaidTotal float64 `json:"paid_total"`
	Status    string  `json:"status"`
}

// Pay appends one tender to the order's payment ledger. When the cumulative
// amount covers the grand total (within paymentEpsilon) the order closes as
// PAID with closed_at stamped and the acting cashier bound; a first partial
// tender moves it to PARTIAL.
func (s *OrderService) Pay(orderID, userID uint, method string, amount float64, reference *string) (*PayResult, error) {
	method = strings.ToUpper(strings.TrimSpace(method))
	if !contains(payMethods, method) {
		return nil, ValidationErr("invalid payment method")
	}
	if amount <= 0 {
		return nil, ValidationErr("amount must be > 0")
	}

	res := &PayResult{}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFoundErr("order not found")
			}
			return err
		}

		if contains([]string{OrderStatusPaid, OrderStatusVoid, OrderStatusCancelled}, order.Status) {
			return ConflictErr("order not payable", map[string]interface{}{
				"status": order.Status,
			})
		}

		payment := models.Payment{
			OrderID:   orderID,
			Method:    method,
			Amount:    utils.Round2(amount),
			Reference: reference,
			CreatedAt: time.Now(),
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		var paid float64
		if err := tx.Model(&models.Payment{}).Where("order_id = ?", orderID).
			Select("COALESCE(SUM(amount), 0)").Scan(&paid).Error; err != nil {
			return err
		}

		status := order.Status
		if paid+paymentEpsilon >= order.GrandTotal {
			now := time.Now()
			if err := tx.Model(&models.Order{}).Where("id = ?", orderID).Updates(map[string]interface{}{
				"status":     OrderStatusPaid,
				"closed_at":  now,
				"cashier_id": userID,
			}).Error; err != nil {
				return err
			}
			status = OrderStatusPaid
		} else if paid > 0 && order.Status != OrderStatusPartial {
			if err := tx.Model(&models.Order{}).Where("id = ?", orderID).Updates(map[string]interface{}{
				"status":     OrderStatusPartial,
				"cashier_id": userID,
			}).Error; err != nil {
				return err
			}
			status = OrderStatusPartial
		}

		res.PaidTotal = utils.Round2(paid)
		res.Status = status
		return nil
	})
	if err != nil {
		return nil, AsAppError(err)
	}
	return res, nil
}

// Reopen returns a finalized order to OPEN for corrections. Payments already
// taken stay on the ledger (append-only); closed_at is cleared and totals
// recomputed. A later pay call may immediately re-close the order when the
// ledger still covers the grand total.
func (s *OrderService) Reopen(orderID uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFoundErr("order not found")
			}
			return err
		}

		if !contains([]string{OrderStatusPaid, OrderStatusReady, OrderStatusPartial}, order.Status) {
			return ConflictErr("order cannot be reopened from status: "+order.Status,
				map[string]interface{}{"status": order.Status})
		}

		if err := tx.Model(&models.Order{}).Where("id = ?", orderID).Updates(map[string]interface{}{
			"status":    OrderStatusOpen,
			"closed_at": nil,
		}).Error; err != nil {
			return err
		}

		return recalcTotals(tx, orderID, s.chargeCfg(order.DeliveryFee, nil, nil))
	})
	return AsAppError(err)
}

// Get loads one order with its lines and payment ledger.
func (s *OrderService) Get(orderID uint) (*models.Order, error) {
	var order models.Order
	err := s.db.Preload("OrderItems", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.id") }).
		Preload("Payments", func(db *gorm.DB) *gorm.DB { return db.Order("payments.id") }).
		First(&order, orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFoundErr("order not found")
	}
	if err != nil {
		return nil, AsAppError(err)
	}
	return &order, nil
}

type ListOrdersFilter struct {
	Status   string
	BranchID uint
	Limit    int
}

// List returns recent orders, newest first, optionally filtered by status
// (any known status including REFUNDED) and branch.
func (s *OrderService) List(f ListOrdersFilter) ([]models.Order, error) {
	q := s.db.Model(&models.Order{}).Order("id DESC")

	status := strings.ToUpper(strings.TrimSpace(f.Status))
	if status != "" && contains(orderStatuses, status) {
		q = q.Where("status = ?", status)
	}
	if f.BranchID > 0 {
		q = q.Where("branch_id = ?", f.BranchID)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 200
	} else if limit > 500 {
		limit = 500
	}

	var orders []models.Order
	if err := q.Limit(limit).Find(&orders).Error; err != nil {
		return nil, AsAppError(err)
	}
	return orders, nil
}

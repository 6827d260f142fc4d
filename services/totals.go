package services

import (
	"gorm.io/gorm"

	"fastfood-pos/models"
	"fastfood-pos/utils"
)

// ChargeConfig is the charge configuration a recompute runs against.
// Percentages default from app config and may be overridden per request;
// only the delivery fee is ever stored on the order itself.
type ChargeConfig struct {
	DeliveryFee          float64
	ServiceChargePercent float64
	TaxRatePercent       float64
}

type Totals struct {
	Subtotal      float64
	DiscountTotal float64
	ServiceCharge float64
	TaxTotal      float64
	DeliveryFee   float64
	GrandTotal    float64
}

// ComputeTotals derives every money field of an order from its current line
// items. The base ordering is load-bearing: service charge applies to
// subtotal minus discounts, tax applies on top of the service charge (not on
// the raw subtotal), and the grand total is clamped at zero.
func ComputeTotals(items []models.OrderItem, cfg ChargeConfig) Totals {
	var subtotal, discountTotal float64
	for _, it := range items {
		subtotal += it.Qty * it.UnitPrice
		discountTotal += it.LineDiscount
	}

	serviceBase := subtotal - discountTotal
	if serviceBase < 0 {
		serviceBase = 0
	}
	serviceCharge := cfg.ServiceChargePercent / 100.0 * serviceBase

	taxBase := serviceBase + serviceCharge
	if taxBase < 0 {
		taxBase = 0
	}
	taxTotal := cfg.TaxRatePercent / 100.0 * taxBase

	grand := serviceBase + serviceCharge + taxTotal + cfg.DeliveryFee
	if grand < 0 {
		grand = 0
	}

	return Totals{
		Subtotal:      utils.Round2(subtotal),
		DiscountTotal: utils.Round2(discountTotal),
		ServiceCharge: utils.Round2(serviceCharge),
		TaxTotal:      utils.Round2(taxTotal),
		DeliveryFee:   utils.Round2(cfg.DeliveryFee),
		GrandTotal:    utils.Round2(grand),
	}
}

// recalcTotals reloads the order's items and persists fresh totals. It must
// run inside the same transaction as the mutation that changed the item set,
// so a concurrent reader never sees items with stale totals.
func recalcTotals(tx *gorm.DB, orderID uint, cfg ChargeConfig) error {
	var items []models.OrderItem
	if err := tx.Where("order_id = ?", orderID).Find(&items).Error; err != nil {
		return err
	}

	t := ComputeTotals(items, cfg)
	return tx.Model(&models.Order{}).Where("id = ?", orderID).Updates(map[string]interface{}{
		"subtotal":       t.Subtotal,
		"discount_total": t.DiscountTotal,
		"service_charge": t.ServiceCharge,
		"tax_total":      t.TaxTotal,
		"delivery_fee":   t.DeliveryFee,
		"grand_total":    t.GrandTotal,
	}).Error
}

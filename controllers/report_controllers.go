package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fastfood-pos/services"
	"fastfood-pos/utils"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// SalesSummary -> GET /api/reports/sales?from=&to=&branch_id=
// Paid orders grouped per day: count and money columns.
func (rc *ReportController) SalesSummary(c *gin.Context) {
	type row struct {
		Day           string  `json:"day"`
		Orders        int64   `json:"orders"`
		Subtotal      float64 `json:"subtotal"`
		DiscountTotal float64 `json:"discount_total"`
		ServiceCharge float64 `json:"service_charge"`
		TaxTotal      float64 `json:"tax_total"`
		DeliveryFee   float64 `json:"delivery_fee"`
		GrandTotal    float64 `json:"grand_total"`
	}

	q := rc.DB.Table("orders").
		Select(`DATE(created_at) AS day, COUNT(*) AS orders,
			SUM(subtotal) AS subtotal, SUM(discount_total) AS discount_total,
			SUM(service_charge) AS service_charge, SUM(tax_total) AS tax_total,
			SUM(delivery_fee) AS delivery_fee, SUM(grand_total) AS grand_total`).
		Where("status = ?", services.OrderStatusPaid).
		Group("DATE(created_at)").
		Order("day DESC")

	if from := c.Query("from"); from != "" {
		q = q.Where("created_at >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		q = q.Where("created_at < ?", to)
	}
	if branch := c.Query("branch_id"); branch != "" {
		q = q.Where("branch_id = ?", branch)
	}

	var rows []row
	if err := q.Scan(&rows).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Sales summary", rows)
}

// PaymentBreakdown -> GET /api/reports/payments?from=&to=
func (rc *ReportController) PaymentBreakdown(c *gin.Context) {
	type row struct {
		Method string  `json:"method"`
		Count  int64   `json:"count"`
		Amount float64 `json:"amount"`
	}

	q := rc.DB.Table("payments").
		Select("method, COUNT(*) AS count, SUM(amount) AS amount").
		Group("method").
		Order("amount DESC")

	if from := c.Query("from"); from != "" {
		q = q.Where("created_at >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		q = q.Where("created_at < ?", to)
	}

	var rows []row
	if err := q.Scan(&rows).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Payment breakdown", rows)
}

// TopItems -> GET /api/reports/top-items
// Revenue per line snapshot name, so deals and renamed items report as sold.
func (rc *ReportController) TopItems(c *gin.Context) {
	type row struct {
		Name    string  `json:"name"`
		Qty     float64 `json:"qty"`
		Revenue float64 `json:"revenue"`
	}

	var rows []row
	err := rc.DB.Raw(`
		SELECT oi.item_name_snapshot AS name,
		       SUM(oi.qty) AS qty,
		       SUM(oi.line_total) AS revenue
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.status = ?
		GROUP BY oi.item_name_snapshot
		ORDER BY revenue DESC
		LIMIT 10
	`, services.OrderStatusPaid).Scan(&rows).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Top items", rows)
}

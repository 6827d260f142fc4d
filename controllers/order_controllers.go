package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fastfood-pos/kds"
	"fastfood-pos/services"
	"fastfood-pos/utils"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

func parseID(c *gin.Context, name string) uint {
	id, _ := strconv.Atoi(c.Param(name))
	if id < 0 {
		return 0
	}
	return uint(id)
}

// CreateOrder -> POST /api/orders
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var body struct {
		BranchID      uint    `json:"branch_id"`
		OrderType     string  `json:"order_type"`
		CustomerPhone string  `json:"customer_phone"`
		Notes         *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	branchID := body.BranchID
	if branchID == 0 {
		branchID = currentBranchID(c)
	}

	res, err := oc.Orders.Create(services.CreateOrderInput{
		BranchID:      branchID,
		OrderType:     body.OrderType,
		CustomerPhone: body.CustomerPhone,
		Notes:         body.Notes,
		UserID:        currentUserID(c),
	})
	if err != nil {
		respondAppError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Order created", res)
}

// GetAllOrders -> GET /api/orders?status=&branch_id=&limit=
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	branchID, _ := strconv.Atoi(c.Query("branch_id"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	orders, err := oc.Orders.List(services.ListOrdersFilter{
		Status:   c.Query("status"),
		BranchID: uint(branchID),
		Limit:    limit,
	})
	if err != nil {
		respondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// GetOrderByID -> GET /api/orders/:order_id with items and payments
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	order, err := oc.Orders.Get(parseID(c, "order_id"))
	if err != nil {
		respondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// AddItem -> POST /api/orders/:order_id/items
func (oc *OrderController) AddItem(c *gin.Context) {
	var body struct {
		ItemID       uint    `json:"item_id"`
		Qty          float64 `json:"qty"`
		LineDiscount float64 `json:"line_discount"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.Qty == 0 {
		body.Qty = 1
	}

	orderID := parseID(c, "order_id")
	res, err := oc.Orders.AddItem(orderID, body.ItemID, body.Qty, body.LineDiscount)
	if err != nil {
		respondAppError(c, err)
		return
	}
	oc.broadcastOrder(orderID)
	utils.RespondJSON(c, http.StatusOK, "Item added", res)
}

// UpdateOrderItem -> PATCH /api/orders/:order_id/items/:order_item_id
func (oc *OrderController) UpdateOrderItem(c *gin.Context) {
	var body struct {
		Qty          *float64 `json:"qty"`
		LineDiscount *float64 `json:"line_discount"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	orderID := parseID(c, "order_id")
	err := oc.Orders.UpdateItem(orderID, parseID(c, "order_item_id"), body.Qty, body.LineDiscount)
	if err != nil {
		respondAppError(c, err)
		return
	}
	oc.broadcastOrder(orderID)
	utils.RespondJSON(c, http.StatusOK, "Item updated", gin.H{"updated": true})
}

// RemoveItem -> DELETE /api/orders/:order_id/items/:order_item_id
func (oc *OrderController) RemoveItem(c *gin.Context) {
	orderID := parseID(c, "order_id")
	err := oc.Orders.RemoveItem(orderID, parseID(c, "order_item_id"))
	if err != nil {
		respondAppError(c, err)
		return
	}
	oc.broadcastOrder(orderID)
	utils.RespondJSON(c, http.StatusOK, "Item removed", gin.H{"removed": true})
}

// SetCharges -> PATCH /api/orders/:order_id/charges
func (oc *OrderController) SetCharges(c *gin.Context) {
	var body struct {
		ServiceChargePercent *float64 `json:"service_charge_percent"`
		TaxRatePercent       *float64 `json:"tax_rate_percent"`
		DeliveryFee          *float64 `json:"delivery_fee"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	orderID := parseID(c, "order_id")
	err := oc.Orders.SetCharges(orderID, body.ServiceChargePercent, body.TaxRatePercent, body.DeliveryFee)
	if err != nil {
		respondAppError(c, err)
		return
	}
	oc.broadcastOrder(orderID)
	utils.RespondJSON(c, http.StatusOK, "Charges updated", gin.H{"updated": true})
}

// AddDeal -> POST /api/orders/:order_id/deals
func (oc *OrderController) AddDeal(c *gin.Context) {
	var body struct {
		DealID uint                     `json:"deal_id"`
		Name   string                   `json:"name"`
		Price  float64                  `json:"price"`
		Qty    float64                  `json:"qty"`
		Items  []services.AdHocDealItem `json:"items"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	orderID := parseID(c, "order_id")
	err := oc.Orders.AddDeal(orderID, services.AddDealInput{
		DealID: body.DealID,
		Name:   body.Name,
		Price:  body.Price,
		Qty:    body.Qty,
		Items:  body.Items,
	})
	if err != nil {
		respondAppError(c, err)
		return
	}
	oc.broadcastOrder(orderID)
	utils.RespondJSON(c, http.StatusOK, "Deal added", gin.H{"added": true})
}

// SendToKitchen -> POST /api/orders/:order_id/send-to-kitchen
func (oc *OrderController) SendToKitchen(c *gin.Context) {
	orderID := parseID(c, "order_id")
	res, err := oc.Orders.SendToKitchen(orderID)
	if err != nil {
		respondAppError(c, err)
		return
	}

	if !res.Already {
		oc.broadcast(kds.EventOrderKitchen, orderID)
	}
	utils.RespondJSON(c, http.StatusOK, "Order sent to kitchen", gin.H{"sent": true, "already": res.Already})
}

// MarkReady -> POST /api/orders/:order_id/ready
func (oc *OrderController) MarkReady(c *gin.Context) {
	orderID := parseID(c, "order_id")
	res, err := oc.Orders.MarkReady(orderID)
	if err != nil {
		respondAppError(c, err)
		return
	}

	if !res.Already {
		oc.broadcast(kds.EventOrderReady, orderID)
	}
	utils.RespondJSON(c, http.StatusOK, "Order ready", gin.H{"ready": true, "already": res.Already})
}

// Pay -> POST /api/orders/:order_id/pay
func (oc *OrderController) Pay(c *gin.Context) {
	var body struct {
		Method    string  `json:"method"`
		Amount    float64 `json:"amount"`
		Reference *string `json:"reference"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.Method == "" {
		body.Method = services.PayMethodCash
	}

	orderID := parseID(c, "order_id")
	res, err := oc.Orders.Pay(orderID, currentUserID(c), body.Method, body.Amount, body.Reference)
	if err != nil {
		respondAppError(c, err)
		return
	}

	if res.Status == services.OrderStatusPaid {
		oc.broadcast(kds.EventOrderPaid, orderID)
	}
	utils.RespondJSON(c, http.StatusOK, "Payment recorded", res)
}

// Reopen -> POST /api/orders/:order_id/reopen (ADMIN/MANAGER by routing)
func (oc *OrderController) Reopen(c *gin.Context) {
	orderID := parseID(c, "order_id")
	if err := oc.Orders.Reopen(orderID); err != nil {
		respondAppError(c, err)
		return
	}
	oc.broadcast(kds.EventOrderUpdate, orderID)
	utils.RespondJSON(c, http.StatusOK, "Order reopened", gin.H{"reopened": true})
}

// ResetSequence -> POST /api/orders/reset-sequence
func (oc *OrderController) ResetSequence(c *gin.Context) {
	var body struct {
		BranchID uint `json:"branch_id"`
		Force    bool `json:"force"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	branchID := body.BranchID
	if branchID == 0 {
		branchID = currentBranchID(c)
	}

	res, err := oc.Orders.ResetSequence(branchID, body.Force)
	if err != nil {
		respondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Sequence reset", res)
}

func (oc *OrderController) broadcast(event string, orderID uint) {
	var orderNo string
	if err := oc.Orders.DB().Table("orders").Where("id = ?", orderID).
		Select("order_no").Scan(&orderNo).Error; err != nil {
		utils.ErrorLogger.Printf("broadcast lookup for order %d failed: %v", orderID, err)
		return
	}
	kds.BroadcastOrderEvent(event, orderID, orderNo)
}

// broadcastOrder pushes the full ticket so counter screens can redraw a cart
// that changed under them.
func (oc *OrderController) broadcastOrder(orderID uint) {
	order, err := oc.Orders.Get(orderID)
	if err != nil {
		utils.ErrorLogger.Printf("broadcast lookup for order %d failed: %v", orderID, err)
		return
	}
	kds.BroadcastOrderUpdate(*order)
}

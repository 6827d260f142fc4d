package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fastfood-pos/models"
	"fastfood-pos/services"
	"fastfood-pos/utils"
)

type DeliveryController struct {
	DB     *gorm.DB
	Orders *services.OrderService
}

func NewDeliveryController(db *gorm.DB, orders *services.OrderService) *DeliveryController {
	return &DeliveryController{DB: db, Orders: orders}
}

// DeliveryUpdate carries one optional field per mutable delivery column; nil
// means "leave alone". No dynamic SQL assembly.
type DeliveryUpdate struct {
	CustomerName  *string  `json:"customer_name"`
	CustomerPhone *string  `json:"customer_phone"`
	AddressLine1  *string  `json:"address_line1"`
	AddressLine2  *string  `json:"address_line2"`
	Area          *string  `json:"area"`
	City          *string  `json:"city"`
	Notes         *string  `json:"notes"`
	RiderName     *string  `json:"rider_name"`
	RiderPhone    *string  `json:"rider_phone"`
	Status        *string  `json:"status"`
	DeliveryFee   *float64 `json:"delivery_fee"`
}

func (u *DeliveryUpdate) apply(d *models.Delivery) {
	if u.CustomerName != nil {
		d.CustomerName = u.CustomerName
	}
	if u.CustomerPhone != nil {
		d.CustomerPhone = u.CustomerPhone
	}
	if u.AddressLine1 != nil {
		d.AddressLine1 = u.AddressLine1
	}
	if u.AddressLine2 != nil {
		d.AddressLine2 = u.AddressLine2
	}
	if u.Area != nil {
		d.Area = u.Area
	}
	if u.City != nil {
		d.City = u.City
	}
	if u.Notes != nil {
		d.Notes = u.Notes
	}
	if u.RiderName != nil {
		d.RiderName = u.RiderName
	}
	if u.RiderPhone != nil {
		d.RiderPhone = u.RiderPhone
	}
	if u.Status != nil {
		d.Status = u.Status
	}
}

// UpsertDelivery -> PUT /api/orders/:order_id/delivery
// Creates or updates the delivery record; a non-DELIVERY order is converted
// silently. An explicit delivery_fee lands on the order and retriggers the
// totals recompute through the order service.
func (dc *DeliveryController) UpsertDelivery(c *gin.Context) {
	orderID := parseID(c, "order_id")

	var order models.Order
	if err := dc.DB.First(&order, orderID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}

	var body DeliveryUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if order.OrderType != services.OrderTypeDelivery {
		if err := dc.DB.Model(&models.Order{}).Where("id = ?", orderID).
			Update("order_type", services.OrderTypeDelivery).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	var delivery models.Delivery
	err := dc.DB.Where("order_id = ?", orderID).First(&delivery).Error
	created := false
	if errors.Is(err, gorm.ErrRecordNotFound) {
		delivery = models.Delivery{OrderID: orderID}
		created = true
	} else if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	body.apply(&delivery)
	if err := dc.DB.Save(&delivery).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if body.DeliveryFee != nil {
		if err := dc.Orders.SetCharges(orderID, nil, nil, body.DeliveryFee); err != nil {
			respondAppError(c, err)
			return
		}
	}

	if created {
		utils.RespondJSON(c, http.StatusCreated, "Delivery created", gin.H{"order_id": orderID, "created": true})
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Delivery updated", gin.H{"order_id": orderID, "updated": true})
}

// GetDelivery -> GET /api/orders/:order_id/delivery
func (dc *DeliveryController) GetDelivery(c *gin.Context) {
	var delivery models.Delivery
	if err := dc.DB.Where("order_id = ?", parseID(c, "order_id")).First(&delivery).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("delivery not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Delivery detail", delivery)
}

// ListDeliveries -> GET /api/deliveries
func (dc *DeliveryController) ListDeliveries(c *gin.Context) {
	type row struct {
		ID           uint    `json:"id"`
		OrderNo      string  `json:"order_no"`
		OrderStatus  string  `json:"order_status"`
		CustomerName *string `json:"customer_name"`
		Area         *string `json:"area"`
		DeliveryFee  float64 `json:"delivery_fee"`
	}

	var rows []row
	err := dc.DB.Table("orders").
		Select("orders.id, orders.order_no, orders.status AS order_status, deliveries.customer_name, deliveries.area, orders.delivery_fee").
		Joins("LEFT JOIN deliveries ON deliveries.order_id = orders.id").
		Where("orders.order_type = ?", services.OrderTypeDelivery).
		Order("orders.id DESC").Limit(200).
		Scan(&rows).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of deliveries", rows)
}

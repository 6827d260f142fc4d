package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fastfood-pos/models"
)

func TestCreateOrderMintsDailyNumber(t *testing.T) {
	db := newTestDB(t)
	branch, _, _ := seedBranchAndMenu(t, db)
	svc := newOrderSvc(db)

	first := mustCreateOrder(t, svc, branch.ID)
	second := mustCreateOrder(t, svc, branch.ID)

	assert.Equal(t, 1, first.DaySeq)
	assert.Equal(t, 2, second.DaySeq)
	assert.Regexp(t, `^BR01-\d{8}-0001$`, first.OrderNo)
	assert.Regexp(t, `^BR01-\d{8}-0002$`, second.OrderNo)

	order := loadOrder(t, db, first.OrderID)
	assert.Equal(t, OrderStatusOpen, order.Status)
	assert.Equal(t, 0.0, order.GrandTotal)
}

func TestCreateOrderUnknownTypeFallsBack(t *testing.T) {
	db := newTestDB(t)
	branch, _, _ := seedBranchAndMenu(t, db)
	svc := newOrderSvc(db)

	res, err := svc.Create(CreateOrderInput{BranchID: branch.ID, OrderType: "drivethru", UserID: 1})
	require.NoError(t, err)

	order := loadOrder(t, db, res.OrderID)
	assert.Equal(t, OrderTypeTakeaway, order.OrderType)
}

func TestCreateOrderReusesCustomerByPhone(t *testing.T) {
	db := newTestDB(t)
	branch, _, _ := seedBranchAndMenu(t, db)
	svc := newOrderSvc(db)

	first, err := svc.Create(CreateOrderInput{
		BranchID: branch.ID, OrderType: OrderTypeDelivery,
		CustomerPhone: "0300-1234567", UserID: 1,
	})
	require.NoError(t, err)
	second, err := svc.Create(CreateOrderInput{
		BranchID: branch.ID, OrderType: OrderTypeDelivery,
		CustomerPhone: "0300 1234567", UserID: 1,
	})
	require.NoError(t, err)

	o1 := loadOrder(t, db, first.OrderID)
	o2 := loadOrder(t, db, second.OrderID)
	require.NotNil(t, o1.CustomerID)
	require.NotNil(t, o2.CustomerID)
	assert.Equal(t, *o1.CustomerID, *o2.CustomerID)
	assert.Equal(t, "03001234567", *o1.CustomerPhone)

	var customers int64
	db.Model(&models.Customer{}).Count(&customers)
	assert.EqualValues(t, 1, customers)
}

func TestAddItemMergesRepeatedTaps(t *testing.T) {
	db := newTestDB(t)
	branch, burger, _ := seedBranchAndMenu(t, db)
	svc := newOrderSvc(db)
	order := mustCreateOrder(t, svc, branch.ID)

	res, err := svc.AddItem(order.OrderID, burger.ID, 1, 0)
	require.NoError(t, err)
	assert.False(t, res.Merged)

	res, err = svc.AddItem(order.OrderID, burger.ID, 2, 0)
	require.NoError(t, err)
	assert.True(t, res.Merged)

	items := loadItems(t, db, order.OrderID)
	require.Len(t, items, 1)
	assert.Equal(t, 3.0, items[0].Qty)
	assert.Equal(t, 1650.0, items[0].LineTotal)

	got := loadOrder(t, db, order.OrderID)
	assert.Equal(t, 1650.0, got.Subtotal)
	assert.Equal(t, 1650.0, got.GrandTotal)
}

func TestAddItemDiscountedLineStaysSeparate(t *testing.T) {
	db := newTestDB(t)
	branch, burger, _ := seedBranchAndMenu(t, db)
	svc := newOrderSvc(db)
	order := mustCreateOrder(t, svc, branch.ID)

	_, err := svc.AddItem(order.OrderID, burger.ID, 1, 0)
	require.NoError(t, err)
	_, err = svc.AddItem(order.OrderID, burger.ID, 1, 50)
	require.NoError(t, err)

	items := loadItems(t, db, order.OrderID)
	require.Len(t, items, 2)
	assert.Equal(t, 0.0, items[0].LineDiscount)
	assert.Equal(t, 50.0, items[1].LineDiscount)
	assert.Equal(t, 500.0, items[1].LineTotal)
}

func TestAddItemFreezesPriceSnapshot(t *testing.T) {
	db := newTestDB(t)
	branch, burger, _ := seedBranchAndMenu(t, db)
	svc := newOrderSvc(db)
	order := mustCreateOrder(t, svc, branch.ID)

	_, err := svc.AddItem(order.OrderID, burger.ID, 1, 0)
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.MenuItem{}).Where("id = ?", burger.ID).
		Updates(map[string]interface{}{"name": "Mega Zinger", "price": 700.0}).Error)

	items := loadItems(t, db, order.OrderID)
	require.Len(t, items, 1)
	assert.Equal(t, "Zinger Burger", items[0].ItemNameSnapshot)
	assert.Equal(t, 550.0, items[0].UnitPrice)

	// a renamed and repriced item no longer merges into the frozen line
	_, err = svc.AddItem(order.OrderID, burger.ID, 1, 0)
	require.NoError(t, err)
	items = loadItems(t, db, order.OrderID)
	require.Len(t, items, 2)
	assert.Equal(t, "Mega Zinger", items[1].ItemNameSnapshot)
	assert.Equal(t, 700.0, items[1].UnitPrice)
}

func TestAddItemInactiveMenuItem(t *testing.T) {
	db := newTestDB(t)
	branch, burger, _ := seedBranchAndMenu(t, db)
	svc := newOrderSvc(db)
	order := mustCreateOrder(t, svc, branch.ID)

	require.NoError(t, db.Model(&models.MenuItem{}).Where("id = ?", burger.ID).
		Update("active", false).Error)

	_, err := svc.AddItem(order.OrderID, burger.ID, 1, 0)
	var ae *AppError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, ErrNotFound, ae.Kind)
}

func TestUpdateItemClampsDiscountToGross(t *testing.T) {
	db := newTestDB(t)
	branch, burger, _ := seedBranchAndMenu(t, db)
	svc := newOrderSvc(db)
	order := mustCreateOrder(t, svc, branch.ID)

	_, err := svc.AddItem(order.OrderID, burger.ID, 2, 0)
	require.NoError(t, err)
	items := loadItems(t, db, order.OrderID)
	require.Len(t, items, 1)

	disc := 9999.0
	require.NoError(t, svc.UpdateItem(order.OrderID, items[0].ID, nil, &disc))

	items = loadItems(t, db, order.OrderID)
	assert.Equal(t, 1100.0, items[0].LineDiscount)
	assert.Equal(t, 0.0, items[0].LineTotal)

	got := loadOrder(t, db, order.OrderID)
	assert.Equal(t, 0.0, got.GrandTotal)
}

func TestAddItemClampsDiscountToGross(t *testing.T) {
	db := newTestDB(t)
	branch, burger, fries := seedBranchAndMenu(t, db)
	svc := newOrderSvc(db)
	order := mustCreateOrder(t, svc, branch.ID)

	_, err := svc.AddItem(order.OrderID, fries.ID, 1, 0)
	require.NoError(t, err)
	_, err = svc.AddItem(order.OrderID, burger.ID, 1, 9999)
	require.NoError(t, err)

	items := loadItems(t, db, order.OrderID)
	require.Len(t, items, 2)
	for _, it := range items {
		assert.LessOrEqual(t, it.LineDiscount, it.Qty*it.UnitPrice)
		assert.GreaterOrEqual(t, it.LineTotal, 0.0)
	}

	// The burger line is fully discounted away, fries still cost 250.
	got := loadOrder(t, db, order.OrderID)
	assert.Equal(t, 800.0, got.Subtotal)
	assert.Equal(t, 550.0, got.DiscountTotal)
	assert.Equal(t, 250.0, got.GrandTotal)
}

func TestRemoveItemRecomputesTotals(t *testing.T) {
	db := newTestDB(t)
	branch, burger, fries := seedBranchAndMenu(t, db)
	svc := newOrderSvc(db)
	order := mustCreateOrder(t, svc, branch.ID)

	_, err := svc.AddItem(order.OrderID, burger.ID, 1, 0)
	require.NoError(t, err)
	_, err = svc.AddItem(order.OrderID, fries.ID, 1, 0)
	require.NoError(t, err)

	items := loadItems(t, db, order.OrderID)
	require.Len(t, items, 2)
	require.NoError(t, svc.RemoveItem(order.OrderID, items[0].ID))

	got := loadOrder(t, db, order.OrderID)
	assert.Equal(t, 250.0, got.Subtotal)
	assert.Equal(t, 250.0, got.GrandTotal)
}

func TestItemMutationRefusedWhenNotOpen(t *testing.T) {
	db := newTestDB(t)
	branch, burger, fries := seedBranchAndMenu(t, db)
	svc := newOrderSvc(db)
	order := mustCreateOrder(t, svc, branch.ID)

	_, err := svc.AddItem(order.OrderID, burger.ID, 1, 0)
	require.NoError(t, err)
	_, err = svc.Pay(order.OrderID, 1, PayMethodCash, 550, nil)
	require.NoError(t, err)
	require.Equal(t, OrderStatusPaid, loadOrder(t, db, order.OrderID).Status)

	before := loadItems(t, db, order.OrderID)

	_, err = svc.AddItem(order.OrderID, fries.ID, 1, 0)
	var ae *AppError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, ErrConflict, ae.Kind)
	assert.Equal(t, OrderStatusPaid, ae.Details["status"])

	qty := 5.0
	err = svc.UpdateItem(order.OrderID, before[0].ID, &qty, nil)
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, ErrConflict, ae.Kind)

	err = svc.RemoveItem(order.OrderID, before[0].ID)
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, ErrConflict, ae.Kind)

	after := loadItems(t, db, order.OrderID)
	require.Len(t, after, len(before))
	assert.Equal(t, before[0].Qty, after[0].Qty)
	assert.Equal(t, 550.0, loadOrder(t, db, order.OrderID).GrandTotal)
}

func TestSetChargesRecomputeAndFeePersistence(t *testing.T) {
	db := newTestDB(t)
	branch, burger, _ := seedBranchAndMenu(t, db)
	svc := NewOrderService(db, 5, 16)
	order := mustCreateOrder(t, svc, branch.ID)

	_, err := svc.AddItem(order.OrderID, burger.ID, 2, 100)
	require.NoError(t, err)

	fee := 150.0
	require.NoError(t, svc.SetCharges(order.OrderID, nil, nil, &fee))

	got := loadOrder(t, db, order.OrderID)
	// base 1000, service 50, tax on 1050
	assert.Equal(t, 1100.0, got.Subtotal)
	assert.Equal(t, 50.0, got.ServiceCharge)
	assert.Equal(t, 168.0, got.TaxTotal)
	assert.Equal(t, 150.0, got.DeliveryFee)
	assert.Equal(t, 1368.0, got.GrandTotal)

	// per-request override wins over configured defaults
	zero := 0.0
	require.NoError(t, svc.SetCharges(order.OrderID, &zero, &zero, nil))
	got = loadOrder(t, db, order.OrderID)
	assert.Equal(t, 0.0, got.ServiceCharge)
	assert.Equal(t, 0.0, got.TaxTotal)
	assert.Equal(t, 1150.0, got.GrandTotal)
}

func TestSetChargesFeeIgnoredAfterClose(t *testing.T) {
	db := newTestDB(t)
	branch, burger, _ := seedBranchAndMenu(t, db)
	svc := newOrderSvc(db)
	order := mustCreateOrder(t, svc, branch.ID)

	_, err := svc.AddItem(order.OrderID, burger.ID, 1, 0)
	require.NoError(t, err)
	_, err = svc.Pay(order.OrderID, 1, PayMethodCash, 550, nil)
	require.NoError(t, err)

	fee := 500.0
	require.NoError(t, svc.SetCharges(order.OrderID, nil, nil, &fee))

	got := loadOrder(t, db, order.OrderID)
	assert.Equal(t, 0.0, got.DeliveryFee)
	assert.Equal(t, 550.0, got.GrandTotal)
}

func TestAddDealSnapshotSurvivesTemplateEdits(t *testing.T) {
	db := newTestDB(t)
	branch, burger, fries := seedBranchAndMenu(t, db)
	svc := newOrderSvc(db)
	order := mustCreateOrder(t, svc, branch.ID)

	deal := models.Deal{Name: "Family Box", Price: 1200, Active: true}
	require.NoError(t, db.Create(&deal).Error)
	require.NoError(t, db.Create(&models.DealItem{DealID: deal.ID, MenuItemID: burger.ID, Qty: 2}).Error)
	require.NoError(t, db.Create(&models.DealItem{DealID: deal.ID, MenuItemID: fries.ID, Qty: 1}).Error)

	require.NoError(t, svc.AddDeal(order.OrderID, AddDealInput{DealID: deal.ID, Qty: 1}))

	require.NoError(t, db.Model(&models.Deal{}).Where("id = ?", deal.ID).
		Updates(map[string]interface{}{"name": "Mega Box", "price": 1500.0}).Error)
	require.NoError(t, db.Model(&models.MenuItem{}).Where("id = ?", burger.ID).
		Update("name", "Renamed Burger").Error)

	items := loadItems(t, db, order.OrderID)
	require.Len(t, items, 1)
	line := items[0]
	assert.True(t, line.IsDeal)
	assert.Equal(t, 1200.0, line.UnitPrice)
	assert.Contains(t, line.ItemNameSnapshot, "Deal: Family Box")
	assert.Contains(t, line.ItemNameSnapshot, "Zinger Burger x2")
	assert.Contains(t, line.ItemNameSnapshot, "Fries x1")

	require.NotNil(t, line.DealSnapshot)
	assert.Equal(t, 1, line.DealSnapshot.Version)
	assert.Equal(t, "Family Box", line.DealSnapshot.Name)
	assert.Equal(t, 1200.0, line.DealSnapshot.Price)
	require.Len(t, line.DealSnapshot.Items, 2)
	assert.Equal(t, "Zinger Burger", line.DealSnapshot.Items[0].ItemName)
	assert.Equal(t, 2.0, line.DealSnapshot.Items[0].Qty)

	got := loadOrder(t, db, order.OrderID)
	assert.Equal(t, 1200.0, got.GrandTotal)
}

func TestAddDealAdHocDropsInvalidComponents(t *testing.T) {
	db := newTestDB(t)
	branch, burger, _ := seedBranchAndMenu(t, db)
	svc := newOrderSvc(db)
	order := mustCreateOrder(t, svc, branch.ID)

	err := svc.AddDeal(order.OrderID, AddDealInput{
		Name:  "Counter Special",
		Price: 800,
		Qty:   2,
		Items: []AdHocDealItem{
			{MenuItemID: burger.ID, Qty: 1},
			{MenuItemID: 9999, Qty: 1},
			{MenuItemID: burger.ID, Qty: 0},
		},
	})
	require.NoError(t, err)

	items := loadItems(t, db, order.OrderID)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].DealSnapshot)
	require.Len(t, items[0].DealSnapshot.Items, 1)
	assert.Equal(t, 2.0, items[0].Qty)
	assert.Equal(t, 1600.0, items[0].LineTotal)
}

func TestAddDealAdHocAllInvalidRejected(t *testing.T) {
	db := newTestDB(t)
	branch, _, _ := seedBranchAndMenu(t, db)
	svc := newOrderSvc(db)
	order := mustCreateOrder(t, svc, branch.ID)

	err := svc.AddDeal(order.OrderID, AddDealInput{
		Name:  "Ghost Deal",
		Price: 500,
		Items: []AdHocDealItem{{MenuItemID: 9999, Qty: 1}},
	})
	var ae *AppError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, ErrValidation, ae.Kind)
}

func TestKitchenTransitions(t *testing.T) {
	db := newTestDB(t)
	branch, burger, _ := seedBranchAndMenu(t, db)
	svc := newOrderSvc(db)
	order := mustCreateOrder(t, svc, branch.ID)

	// empty cart cannot be fired
	_, err := svc.SendToKitchen(order.OrderID)
	var ae *AppError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, ErrValidation, ae.Kind)

	_, err = svc.AddItem(order.OrderID, burger.ID, 1, 0)
	require.NoError(t, err)

	res, err := svc.SendToKitchen(order.OrderID)
	require.NoError(t, err)
	assert.False(t, res.Already)

	got := loadOrder(t, db, order.OrderID)
	assert.Equal(t, OrderStatusKitchen, got.Status)
	require.NotNil(t, got.KitchenAt)
	firstStamp := *got.KitchenAt

	// repeat is a no-op, the stamp does not move
	res, err = svc.SendToKitchen(order.OrderID)
	require.NoError(t, err)
	assert.True(t, res.Already)
	assert.Equal(t, firstStamp, *loadOrder(t, db, order.OrderID).KitchenAt)

	ready, err := svc.MarkReady(order.OrderID)
	require.NoError(t, err)
	assert.False(t, ready.Already)
	got = loadOrder(t, db, order.OrderID)
	assert.Equal(t, OrderStatusReady, got.Status)
	require.NotNil(t, got.ReadyAt)

	ready, err = svc.MarkReady(order.OrderID)
	require.NoError(t, err)
	assert.True(t, ready.Already)

	// READY never goes back to the kitchen
	_, err = svc.SendToKitchen(order.OrderID)
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, ErrConflict, ae.Kind)
}

func TestMarkReadyStraightFromOpen(t *testing.T) {
	db := newTestDB(t)
	branch, burger, _ := seedBranchAndMenu(t, db)
	svc := newOrderSvc(db)
	order := mustCreateOrder(t, svc, branch.ID)

	_, err := svc.AddItem(order.OrderID, burger.ID, 1, 0)
	require.NoError(t, err)

	res, err := svc.MarkReady(order.OrderID)
	require.NoError(t, err)
	assert.False(t, res.Already)
	assert.Equal(t, OrderStatusReady, loadOrder(t, db, order.OrderID).Status)
}

func TestPayPartialThenSettle(t *testing.T) {
	db := newTestDB(t)
	branch, _, _ := seedBranchAndMenu(t, db)
	cat := models.MenuCategory{Name: "Edge"}
	require.NoError(t, db.Create(&cat).Error)
	item := models.MenuItem{CategoryID: cat.ID, Name: "Edge Meal", Price: 100.01, Active: true}
	require.NoError(t, db.Create(&item).Error)

	svc := newOrderSvc(db)
	order := mustCreateOrder(t, svc, branch.ID)
	_, err := svc.AddItem(order.OrderID, item.ID, 1, 0)
	require.NoError(t, err)

	res, err := svc.Pay(order.OrderID, 1, PayMethodCash, 99.99, nil)
	require.NoError(t, err)
	assert.Equal(t, OrderStatusPartial, res.Status)
	assert.Equal(t, 99.99, res.PaidTotal)
	assert.Nil(t, loadOrder(t, db, order.OrderID).ClosedAt)

	res, err = svc.Pay(order.OrderID, 1, PayMethodCard, 0.02, nil)
	require.NoError(t, err)
	assert.Equal(t, OrderStatusPaid, res.Status)
	assert.Equal(t, 100.01, res.PaidTotal)

	got := loadOrder(t, db, order.OrderID)
	assert.Equal(t, OrderStatusPaid, got.Status)
	require.NotNil(t, got.ClosedAt)

	var payments []models.Payment
	require.NoError(t, db.Where("order_id = ?", order.OrderID).Find(&payments).Error)
	assert.Len(t, payments, 2)
}

func TestPayRefusedOnClosedOrder(t *testing.T) {
	db := newTestDB(t)
	branch, burger, _ := seedBranchAndMenu(t, db)
	svc := newOrderSvc(db)
	order := mustCreateOrder(t, svc, branch.ID)

	_, err := svc.AddItem(order.OrderID, burger.ID, 1, 0)
	require.NoError(t, err)
	_, err = svc.Pay(order.OrderID, 1, PayMethodCash, 550, nil)
	require.NoError(t, err)

	_, err = svc.Pay(order.OrderID, 1, PayMethodCash, 10, nil)
	var ae *AppError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, ErrConflict, ae.Kind)
}

func TestPayValidation(t *testing.T) {
	db := newTestDB(t)
	branch, _, _ := seedBranchAndMenu(t, db)
	svc := newOrderSvc(db)
	order := mustCreateOrder(t, svc, branch.ID)

	var ae *AppError
	_, err := svc.Pay(order.OrderID, 1, "BARTER", 10, nil)
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, ErrValidation, ae.Kind)

	_, err = svc.Pay(order.OrderID, 1, PayMethodCash, 0, nil)
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, ErrValidation, ae.Kind)
}

func TestReopenKeepsPaymentLedger(t *testing.T) {
	db := newTestDB(t)
	branch, burger, _ := seedBranchAndMenu(t, db)
	svc := newOrderSvc(db)
	order := mustCreateOrder(t, svc, branch.ID)

	_, err := svc.AddItem(order.OrderID, burger.ID, 1, 0)
	require.NoError(t, err)
	_, err = svc.Pay(order.OrderID, 1, PayMethodCash, 550, nil)
	require.NoError(t, err)

	require.NoError(t, svc.Reopen(order.OrderID))

	got := loadOrder(t, db, order.OrderID)
	assert.Equal(t, OrderStatusOpen, got.Status)
	assert.Nil(t, got.ClosedAt)

	var payments int64
	db.Model(&models.Payment{}).Where("order_id = ?", order.OrderID).Count(&payments)
	assert.EqualValues(t, 1, payments)

	// back in OPEN, the cart accepts mutation again
	_, err = svc.AddItem(order.OrderID, burger.ID, 1, 0)
	require.NoError(t, err)
}

func TestReopenRefusedFromOpen(t *testing.T) {
	db := newTestDB(t)
	branch, _, _ := seedBranchAndMenu(t, db)
	svc := newOrderSvc(db)
	order := mustCreateOrder(t, svc, branch.ID)

	err := svc.Reopen(order.OrderID)
	var ae *AppError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, ErrConflict, ae.Kind)
}

func TestListFiltersStatusAndBranch(t *testing.T) {
	db := newTestDB(t)
	branch, burger, _ := seedBranchAndMenu(t, db)
	other := models.Branch{Name: "Second", Active: true}
	require.NoError(t, db.Create(&other).Error)

	svc := newOrderSvc(db)
	a := mustCreateOrder(t, svc, branch.ID)
	mustCreateOrder(t, svc, branch.ID)
	mustCreateOrder(t, svc, other.ID)

	_, err := svc.AddItem(a.OrderID, burger.ID, 1, 0)
	require.NoError(t, err)
	_, err = svc.Pay(a.OrderID, 1, PayMethodCash, 550, nil)
	require.NoError(t, err)

	open, err := svc.List(ListOrdersFilter{Status: "open", BranchID: branch.ID})
	require.NoError(t, err)
	assert.Len(t, open, 1)

	paid, err := svc.List(ListOrdersFilter{Status: OrderStatusPaid})
	require.NoError(t, err)
	require.Len(t, paid, 1)
	assert.Equal(t, a.OrderID, paid[0].ID)

	all, err := svc.List(ListOrdersFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

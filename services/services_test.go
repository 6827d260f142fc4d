package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"fastfood-pos/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Branch{},
		&models.User{},
		&models.Customer{},
		&models.MenuCategory{},
		&models.MenuItem{},
		&models.Deal{},
		&models.DealItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.CashierSession{},
		&models.DailyCounter{},
	)
	require.NoError(t, err)
	return db
}

// seedBranchAndMenu creates one branch, one category and two menu items.
func seedBranchAndMenu(t *testing.T, db *gorm.DB) (models.Branch, models.MenuItem, models.MenuItem) {
	t.Helper()

	branch := models.Branch{Name: "Test Branch", Active: true}
	require.NoError(t, db.Create(&branch).Error)

	cat := models.MenuCategory{Name: "Burgers"}
	require.NoError(t, db.Create(&cat).Error)

	burger := models.MenuItem{CategoryID: cat.ID, Name: "Zinger Burger", Price: 550, Active: true}
	require.NoError(t, db.Create(&burger).Error)

	fries := models.MenuItem{CategoryID: cat.ID, Name: "Fries", Price: 250, Active: true}
	require.NoError(t, db.Create(&fries).Error)

	return branch, burger, fries
}

func newOrderSvc(db *gorm.DB) *OrderService {
	return NewOrderService(db, 0, 0)
}

func mustCreateOrder(t *testing.T, svc *OrderService, branchID uint) *CreateOrderResult {
	t.Helper()
	res, err := svc.Create(CreateOrderInput{BranchID: branchID, OrderType: OrderTypeTakeaway, UserID: 1})
	require.NoError(t, err)
	return res
}

func loadOrder(t *testing.T, db *gorm.DB, id uint) models.Order {
	t.Helper()
	var order models.Order
	require.NoError(t, db.First(&order, id).Error)
	return order
}

func loadItems(t *testing.T, db *gorm.DB, orderID uint) []models.OrderItem {
	t.Helper()
	var items []models.OrderItem
	require.NoError(t, db.Where("order_id = ?", orderID).Order("id").Find(&items).Error)
	return items
}

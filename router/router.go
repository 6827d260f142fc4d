package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fastfood-pos/config"
	"fastfood-pos/controllers"
	"fastfood-pos/middlewares"
	"fastfood-pos/services"
)

// SetupRouter wires every endpoint. Mutating order routes sit behind auth;
// sequence reset and reopen additionally require an ADMIN or MANAGER token.
func SetupRouter(db *gorm.DB, cfg config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	orderSvc := services.NewOrderService(db, cfg.ServiceChargePercent, cfg.TaxRatePercent)
	cashierSvc := services.NewCashierService(db)

	authCtrl := controllers.NewAuthController(db)
	orderCtrl := controllers.NewOrderController(orderSvc)
	cashierCtrl := controllers.NewCashierController(cashierSvc)
	dealCtrl := controllers.NewDealController(db)
	menuCtrl := controllers.NewMenuController(db)
	categoryCtrl := controllers.NewMenuCategoryController(db)
	customerCtrl := controllers.NewCustomerController(db)
	deliveryCtrl := controllers.NewDeliveryController(db, orderSvc)
	expenseCtrl := controllers.NewExpenseController(db)
	reportCtrl := controllers.NewReportController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Login sits behind a strict limiter so PIN guessing gets throttled.
	public := r.Group("/api/auth")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/login", authCtrl.Login)
	}

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/auth/me", authCtrl.Me)

		// ORDERS
		api.POST("/orders", orderCtrl.CreateOrder)
		api.GET("/orders", orderCtrl.GetAllOrders)
		api.GET("/orders/:order_id", orderCtrl.GetOrderByID)
		api.POST("/orders/:order_id/items", orderCtrl.AddItem)
		api.PATCH("/orders/:order_id/items/:order_item_id", orderCtrl.UpdateOrderItem)
		api.DELETE("/orders/:order_id/items/:order_item_id", orderCtrl.RemoveItem)
		api.PATCH("/orders/:order_id/charges", orderCtrl.SetCharges)
		api.POST("/orders/:order_id/deals", orderCtrl.AddDeal)
		api.POST("/orders/:order_id/send-to-kitchen", orderCtrl.SendToKitchen)
		api.POST("/orders/:order_id/ready", orderCtrl.MarkReady)
		api.POST("/orders/:order_id/pay", orderCtrl.Pay)

		// CASHIER SESSIONS
		api.POST("/cashier/sessions/open", cashierCtrl.OpenSession)
		api.POST("/cashier/sessions/close", cashierCtrl.CloseSession)
		api.GET("/cashier/sessions/current", cashierCtrl.CurrentSession)

		// DEALS
		api.GET("/deals", dealCtrl.GetAllDeals)
		api.GET("/deals/:deal_id", dealCtrl.GetDealByID)
		api.POST("/deals", dealCtrl.CreateDeal)
		api.PATCH("/deals/:deal_id", dealCtrl.UpdateDeal)
		api.DELETE("/deals/:deal_id", dealCtrl.DeleteDeal)
		api.POST("/deals/:deal_id/items", dealCtrl.AddDealItem)
		api.PATCH("/deals/:deal_id/items/:deal_item_id", dealCtrl.UpdateDealItem)
		api.DELETE("/deals/:deal_id/items/:deal_item_id", dealCtrl.DeleteDealItem)

		// MENU (reads for every role; writes are registered below)
		api.GET("/menu-items", menuCtrl.GetAllMenuItems)
		api.GET("/menu-categories", categoryCtrl.GetAllCategories)

		// CUSTOMERS
		api.GET("/customers", customerCtrl.GetAllCustomers)
		api.GET("/customers/:customer_id", customerCtrl.GetCustomerByID)
		api.PATCH("/customers/:customer_id", customerCtrl.UpdateCustomer)

		// DELIVERIES
		api.PUT("/orders/:order_id/delivery", deliveryCtrl.UpsertDelivery)
		api.GET("/orders/:order_id/delivery", deliveryCtrl.GetDelivery)
		api.GET("/deliveries", deliveryCtrl.ListDeliveries)

		// EXPENSES
		api.GET("/expense-categories", expenseCtrl.GetAllExpenseCategories)
		api.POST("/expense-categories", expenseCtrl.CreateExpenseCategory)
		api.GET("/expenses", expenseCtrl.GetAllExpenses)
		api.POST("/expenses", expenseCtrl.CreateExpense)
		api.PATCH("/expenses/:expense_id", expenseCtrl.UpdateExpense)
		api.DELETE("/expenses/:expense_id", expenseCtrl.DeleteExpense)

		// REPORTS
		api.GET("/reports/sales", reportCtrl.SalesSummary)
		api.GET("/reports/payments", reportCtrl.PaymentBreakdown)
		api.GET("/reports/top-items", reportCtrl.TopItems)

		// Live order feed for counter and kitchen screens.
		api.GET("/ws/orders", controllers.OrderStreamHandler)

		manager := api.Group("")
		manager.Use(middlewares.RequireRoles("ADMIN", "MANAGER"))
		{
			manager.POST("/orders/:order_id/reopen", orderCtrl.Reopen)
			manager.POST("/orders/reset-sequence", orderCtrl.ResetSequence)

			manager.POST("/menu-items", menuCtrl.CreateMenuItem)
			manager.PATCH("/menu-items/:item_id", menuCtrl.UpdateMenuItem)
			manager.DELETE("/menu-items/:item_id", menuCtrl.DeleteMenuItem)

			manager.POST("/menu-categories", categoryCtrl.CreateCategory)
			manager.PATCH("/menu-categories/:category_id", categoryCtrl.UpdateCategory)
			manager.DELETE("/menu-categories/:category_id", categoryCtrl.DeleteCategory)
		}
	}

	return r
}

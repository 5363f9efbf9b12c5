package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hisabat/backend/internal/domain/identity"
	"github.com/hisabat/backend/internal/infrastructure/auth"
	"github.com/hisabat/backend/internal/interfaces/http/handler"
	"github.com/hisabat/backend/internal/interfaces/http/middleware"
)

// Handlers bundles every HTTP handler the router wires up.
type Handlers struct {
	Auth            *handler.AuthHandler
	Product         *handler.ProductHandler
	Asset           *handler.AssetHandler
	Customer        *handler.CustomerHandler
	Supplier        *handler.SupplierHandler
	PurchaseInvoice *handler.PurchaseInvoiceHandler
	SalesInvoice    *handler.SalesInvoiceHandler
	Expense         *handler.ExpenseHandler
	Voucher         *handler.VoucherHandler
	User            *handler.UserHandler
	Report          *handler.ReportHandler
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping() error
}

// New builds the gin engine with the full middleware stack and route table.
// Every route under /api/v1 except /auth/login requires a valid token, and
// each resource group is gated by the matching capability.
func New(handlers Handlers, jwtService *auth.JWTService, db Pinger, log *zap.Logger) (*gin.Engine, error) {
	if err := middleware.RegisterValidators(); err != nil {
		return nil, err
	}

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(log))

	engine.GET("/health", healthHandler(db))

	api := engine.Group("/api/v1")

	api.POST("/auth/login", handlers.Auth.Login)

	authed := api.Group("")
	authed.Use(middleware.JWTAuth(jwtService))

	// The desktop client has no standalone products page; the catalog is
	// maintained from the purchasing screen.
	products := authed.Group("/products", middleware.RequireCapability(identity.CapPurchases))
	{
		products.POST("", handlers.Product.Create)
		products.GET("", handlers.Product.List)
		products.GET("/:id", handlers.Product.Get)
		products.PUT("/:id", handlers.Product.Update)
		products.DELETE("/:id", handlers.Product.Delete)
	}

	assets := authed.Group("/assets", middleware.RequireCapability(identity.CapAssets))
	{
		assets.POST("", handlers.Asset.Create)
		assets.GET("", handlers.Asset.List)
		assets.GET("/:id", handlers.Asset.Get)
		assets.PUT("/:id", handlers.Asset.Update)
		assets.DELETE("/:id", handlers.Asset.Delete)
	}

	customers := authed.Group("/customers", middleware.RequireCapability(identity.CapCustomers))
	{
		customers.POST("", handlers.Customer.Create)
		customers.GET("", handlers.Customer.List)
		customers.GET("/:id", handlers.Customer.Get)
		customers.PUT("/:id", handlers.Customer.Update)
		customers.DELETE("/:id", handlers.Customer.Delete)
	}

	suppliers := authed.Group("/suppliers", middleware.RequireCapability(identity.CapSuppliers))
	{
		suppliers.POST("", handlers.Supplier.Create)
		suppliers.GET("", handlers.Supplier.List)
		suppliers.GET("/:id", handlers.Supplier.Get)
		suppliers.PUT("/:id", handlers.Supplier.Update)
		suppliers.DELETE("/:id", handlers.Supplier.Delete)
	}

	purchases := authed.Group("/purchase-invoices", middleware.RequireCapability(identity.CapPurchases))
	{
		purchases.POST("", handlers.PurchaseInvoice.Create)
		purchases.GET("", handlers.PurchaseInvoice.List)
		purchases.GET("/:id", handlers.PurchaseInvoice.Get)
		purchases.DELETE("/:id", handlers.PurchaseInvoice.Delete)
	}

	sales := authed.Group("/sales-invoices", middleware.RequireCapability(identity.CapSales))
	{
		sales.POST("", handlers.SalesInvoice.Create)
		sales.GET("", handlers.SalesInvoice.List)
		sales.GET("/:id", handlers.SalesInvoice.Get)
		sales.DELETE("/:id", handlers.SalesInvoice.Delete)
	}

	expenses := authed.Group("/expenses", middleware.RequireCapability(identity.CapExpenses))
	{
		expenses.POST("", handlers.Expense.Create)
		expenses.GET("", handlers.Expense.List)
		expenses.GET("/:id", handlers.Expense.Get)
		expenses.PUT("/:id", handlers.Expense.Update)
		expenses.DELETE("/:id", handlers.Expense.Delete)
	}

	payments := authed.Group("/payments", middleware.RequireCapability(identity.CapPayments))
	{
		payments.POST("", handlers.Voucher.CreatePayment)
		payments.GET("", handlers.Voucher.ListPayments)
		payments.DELETE("/:id", handlers.Voucher.Delete)
	}

	receipts := authed.Group("/receipts", middleware.RequireCapability(identity.CapReceipts))
	{
		receipts.POST("", handlers.Voucher.CreateReceipt)
		receipts.GET("", handlers.Voucher.ListReceipts)
		receipts.DELETE("/:id", handlers.Voucher.Delete)
	}

	users := authed.Group("/users", middleware.RequireCapability(identity.CapUsers))
	{
		users.POST("", handlers.User.Create)
		users.GET("", handlers.User.List)
		users.GET("/:id", handlers.User.Get)
		users.PUT("/:id", handlers.User.Update)
		users.PUT("/:id/password", handlers.User.SetPassword)
		users.DELETE("/:id", handlers.User.Delete)
	}

	reports := authed.Group("/reports", middleware.RequireCapability(identity.CapReports))
	{
		reports.GET("/summary", handlers.Report.Summary)
		reports.GET("/products", handlers.Report.Products)
		reports.GET("/customers", handlers.Report.Customers)
		reports.GET("/suppliers", handlers.Report.Suppliers)
		reports.GET("/alerts", handlers.Report.Alerts)
	}

	authed.GET("/dashboard",
		middleware.RequireCapability(identity.CapDashboard),
		handlers.Report.Dashboard,
	)

	return engine, nil
}

func healthHandler(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sahamit/backoffice/internal/branch"
	branchdomain "github.com/sahamit/backoffice/internal/branch/domain"
	"github.com/sahamit/backoffice/internal/catalog"
	catalogdomain "github.com/sahamit/backoffice/internal/catalog/domain"
	"github.com/sahamit/backoffice/internal/config"
	"github.com/sahamit/backoffice/internal/expense"
	expensedomain "github.com/sahamit/backoffice/internal/expense/domain"
	"github.com/sahamit/backoffice/internal/observability"
	obsmiddleware "github.com/sahamit/backoffice/internal/observability/logger"
	obsmetrics "github.com/sahamit/backoffice/internal/observability/metrics"
	"github.com/sahamit/backoffice/internal/paymentmethod"
	paymentmethoddomain "github.com/sahamit/backoffice/internal/paymentmethod/domain"
	"github.com/sahamit/backoffice/internal/providers/pdf"
	"github.com/sahamit/backoffice/internal/purchasing"
	purchasingdomain "github.com/sahamit/backoffice/internal/purchasing/domain"
	"github.com/sahamit/backoffice/internal/reminder"
	reminderdomain "github.com/sahamit/backoffice/internal/reminder/domain"
	"github.com/sahamit/backoffice/internal/supplier"
	supplierdomain "github.com/sahamit/backoffice/internal/supplier/domain"
	"github.com/sahamit/backoffice/internal/voucher"
	voucherdomain "github.com/sahamit/backoffice/internal/voucher/domain"
	"go.uber.org/fx"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	pdf.Module,
	supplier.Module,
	paymentmethod.Module,
	branch.Module,
	expense.Module,
	voucher.Module,
	reminder.Module,
	purchasing.Module,
	catalog.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug: obsCfg.Debug(),
	}))
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(obsCfg, httpMetrics)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine           *gin.Engine
	cfg              config.Config
	supplierSvc      supplierdomain.Service
	paymentMethodSvc paymentmethoddomain.Service
	branchSvc        branchdomain.Service
	expenseSvc       expensedomain.Service
	voucherSvc       voucherdomain.Service
	reminderSvc      reminderdomain.Service
	purchasingSvc    purchasingdomain.Service
	catalogSvc       catalogdomain.Service
}

type ServerParams struct {
	fx.In

	Gin              *gin.Engine
	Cfg              config.Config
	SupplierSvc      supplierdomain.Service
	PaymentMethodSvc paymentmethoddomain.Service
	BranchSvc        branchdomain.Service
	ExpenseSvc       expensedomain.Service
	VoucherSvc       voucherdomain.Service
	ReminderSvc      reminderdomain.Service
	PurchasingSvc    purchasingdomain.Service
	CatalogSvc       catalogdomain.Service
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:           p.Gin,
		cfg:              p.Cfg,
		supplierSvc:      p.SupplierSvc,
		paymentMethodSvc: p.PaymentMethodSvc,
		branchSvc:        p.BranchSvc,
		expenseSvc:       p.ExpenseSvc,
		voucherSvc:       p.VoucherSvc,
		reminderSvc:      p.ReminderSvc,
		purchasingSvc:    p.PurchasingSvc,
		catalogSvc:       p.CatalogSvc,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api/v1")

	// -------- Suppliers --------
	api.GET("/suppliers", s.ListSuppliers)
	api.POST("/suppliers", s.CreateSupplier)
	api.GET("/suppliers/:id", s.GetSupplierByID)
	api.PATCH("/suppliers/:id", s.UpdateSupplier)

	// -------- Payment methods --------
	api.GET("/payment-methods", s.ListPaymentMethods)
	api.POST("/payment-methods", s.CreatePaymentMethod)
	api.GET("/payment-methods/:id", s.GetPaymentMethodByID)
	api.PATCH("/payment-methods/:id", s.UpdatePaymentMethod)

	// -------- Branches --------
	api.GET("/branches", s.ListBranches)
	api.POST("/branches", s.CreateBranch)
	api.GET("/branches/:id", s.GetBranchByID)
	api.PATCH("/branches/:id", s.UpdateBranch)

	// -------- Expense receipts --------
	api.GET("/expenses", s.ListExpenses)
	api.POST("/expenses", s.CreateExpense)
	api.GET("/expenses/:id", s.GetExpenseByID)
	api.PATCH("/expenses/:id", s.UpdateExpense)
	api.DELETE("/expenses/:id", s.DeleteExpense)

	// Vouchers are derived per cycle, so the collection itself is the
	// preview. Gin forbids a static segment next to a path parameter,
	// hence no /vouchers/preview alias.
	api.GET("/vouchers", s.PreviewVouchers)
	api.GET("/vouchers/:voucherId/pdf", s.RenderVoucherPDF)

	// -------- Payment reminders --------
	api.GET("/reminders", s.ListReminders)
	api.POST("/reminders", s.CreateReminder)
	api.POST("/reminder-sweeps", s.SweepReminders)
	api.GET("/reminders/:id", s.GetReminderByID)
	api.PATCH("/reminders/:id", s.UpdateReminder)
	api.DELETE("/reminders/:id", s.DeleteReminder)
	api.POST("/reminders/:id/paid", s.MarkReminderPaid)

	// -------- Purchasing --------
	api.GET("/purchase-invoices", s.ListPurchaseInvoices)
	api.POST("/purchase-invoices", s.CreatePurchaseInvoice)
	api.GET("/purchase-invoices/:id", s.GetPurchaseInvoiceByID)
	api.GET("/delivery-notes", s.ListDeliveryNotes)
	api.POST("/delivery-notes", s.CreateDeliveryNote)
	api.GET("/delivery-notes/:id", s.GetDeliveryNoteByID)
	api.POST("/delivery-notes/:id/match", s.MatchDeliveryNote)

	// -------- Catalog --------
	api.GET("/products", s.ListProducts)
	api.POST("/products", s.CreateProduct)
	api.GET("/products/:id", s.GetProductByID)
	api.PATCH("/products/:id", s.UpdateProduct)
	api.GET("/products/:id/stock", s.GetStockBalance)
	api.POST("/products/:id/stock-adjustments", s.AdjustStock)
}

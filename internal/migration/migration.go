package migration

import (
	"errors"

	branchdomain "github.com/sahamit/backoffice/internal/branch/domain"
	catalogdomain "github.com/sahamit/backoffice/internal/catalog/domain"
	expensedomain "github.com/sahamit/backoffice/internal/expense/domain"
	paymentmethoddomain "github.com/sahamit/backoffice/internal/paymentmethod/domain"
	purchasingdomain "github.com/sahamit/backoffice/internal/purchasing/domain"
	reminderdomain "github.com/sahamit/backoffice/internal/reminder/domain"
	supplierdomain "github.com/sahamit/backoffice/internal/supplier/domain"
	"gorm.io/gorm"
)

// AutoMigrate creates or updates every table the service owns, so a fresh
// database is usable out of the box for local and self-hosted setups.
func AutoMigrate(db *gorm.DB) error {
	if db == nil {
		return errors.New("migration database handle is required")
	}

	return db.AutoMigrate(
		&supplierdomain.Supplier{},
		&paymentmethoddomain.PaymentMethod{},
		&branchdomain.Branch{},
		&expensedomain.Receipt{},
		&reminderdomain.PaymentReminder{},
		&purchasingdomain.PurchaseInvoice{},
		&purchasingdomain.PurchaseInvoiceLine{},
		&purchasingdomain.DeliveryNote{},
		&purchasingdomain.DeliveryNoteLine{},
		&catalogdomain.Product{},
		&catalogdomain.StockAdjustment{},
	)
}

package sales

import (
	"context"

	"github.com/skumaran/petti-kadai-api/internal/domain/entity"
	"github.com/skumaran/petti-kadai-api/internal/domain/repository"
)

// SaleTxRunner runs a function inside a DB transaction, handing it
// repositories bound to that transaction. Guarantees the sale commit is
// all-or-nothing: header, items, stock decrements and customer balance.
type SaleTxRunner interface {
	RunSale(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		customerRepo repository.CustomerRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// CartStore holds session carts keyed by user id. Implementations: Redis
// (with TTL) and in-process memory. Carts are not part of the sale
// transaction; checkout clears them best-effort after commit.
type CartStore interface {
	Get(ctx context.Context, userID string) ([]entity.CartItem, error)
	Save(ctx context.Context, userID string, items []entity.CartItem) error
	Clear(ctx context.Context, userID string) error
}

// SettingsProvider supplies the seller's settings (tax rate, store header)
// to checkout and receipt generation.
type SettingsProvider interface {
	GetOrDefault(userID string) (*entity.Settings, error)
}

// ReceiptData is everything the PDF generator needs for one receipt.
type ReceiptData struct {
	ReceiptNumber string
	Sale          *entity.Sale
	Items         []*entity.SaleItem
	CustomerName  string // empty for walk-in sales
	Settings      *entity.Settings
}

// ReceiptPDFGenerator renders the receipt artifact.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, data ReceiptData) ([]byte, error)
}

package sales

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/skumaran/petti-kadai-api/internal/domain"
	"github.com/skumaran/petti-kadai-api/internal/domain/entity"
	"github.com/skumaran/petti-kadai-api/internal/domain/repository"
)

// ReceiptUseCase generates the PDF receipt for a completed sale and records
// the artifact. One receipt per sale: regenerating returns the stored
// number, re-rendering the file only when it went missing on disk.
type ReceiptUseCase struct {
	receiptRepo  repository.ReceiptRepository
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
	settings     SettingsProvider
	generator    ReceiptPDFGenerator
	dir          string
}

// NewReceiptUseCase builds the use case. dir is where PDF files are written.
func NewReceiptUseCase(
	receiptRepo repository.ReceiptRepository,
	saleRepo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
	settings SettingsProvider,
	generator ReceiptPDFGenerator,
	dir string,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		receiptRepo:  receiptRepo,
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		settings:     settings,
		generator:    generator,
		dir:          dir,
	}
}

// Generate returns the receipt PDF for a sale, creating row and file on
// first call.
//
// Returns:
//   - (pdfBytes, receipt, nil) on success.
//   - domain.ErrNotFound when the sale does not exist.
//   - domain.ErrConflict when the sale was cancelled.
func (uc *ReceiptUseCase) Generate(ctx context.Context, saleID string) ([]byte, *entity.Receipt, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, nil, fmt.Errorf("receipt: load sale: %w", err)
	}
	if sale == nil {
		return nil, nil, domain.ErrNotFound
	}
	if sale.Status == entity.SaleStatusCancelled {
		return nil, nil, domain.ErrConflict
	}

	// Existing receipt: serve the stored artifact, re-render only if the
	// file vanished.
	existing, err := uc.receiptRepo.GetBySaleID(saleID)
	if err != nil {
		return nil, nil, fmt.Errorf("receipt: lookup: %w", err)
	}
	if existing != nil {
		if pdfBytes, err := os.ReadFile(existing.FilePath); err == nil {
			return pdfBytes, existing, nil
		}
		pdfBytes, err := uc.render(ctx, sale, existing.ReceiptNumber)
		if err != nil {
			return nil, nil, err
		}
		if err := uc.writeFile(existing.FilePath, pdfBytes); err != nil {
			return nil, nil, err
		}
		return pdfBytes, existing, nil
	}

	number := newReceiptNumber(sale.SoldAt)
	pdfBytes, err := uc.render(ctx, sale, number)
	if err != nil {
		return nil, nil, err
	}

	path := filepath.Join(uc.dir, number+".pdf")
	if err := uc.writeFile(path, pdfBytes); err != nil {
		return nil, nil, err
	}

	receipt := &entity.Receipt{
		ID:            uuid.New().String(),
		SaleID:        sale.ID,
		ReceiptNumber: number,
		Format:        entity.ReceiptFormatPDF,
		FilePath:      path,
		GeneratedAt:   time.Now(),
	}
	if err := uc.receiptRepo.Create(receipt); err != nil {
		return nil, nil, fmt.Errorf("receipt: save: %w", err)
	}
	return pdfBytes, receipt, nil
}

func (uc *ReceiptUseCase) render(ctx context.Context, sale *entity.Sale, number string) ([]byte, error) {
	items, err := uc.saleRepo.GetItemsBySaleID(sale.ID)
	if err != nil {
		return nil, fmt.Errorf("receipt: load items: %w", err)
	}
	customerName := ""
	if sale.CustomerID != "" {
		if customer, err := uc.customerRepo.GetByID(sale.CustomerID); err == nil && customer != nil {
			customerName = customer.Name
		}
	}
	settings, err := uc.settings.GetOrDefault(sale.UserID)
	if err != nil {
		return nil, fmt.Errorf("receipt: load settings: %w", err)
	}
	pdfBytes, err := uc.generator.GenerateReceiptPDF(ctx, ReceiptData{
		ReceiptNumber: number,
		Sale:          sale,
		Items:         items,
		CustomerName:  customerName,
		Settings:      settings,
	})
	if err != nil {
		return nil, fmt.Errorf("receipt: render: %w", err)
	}
	return pdfBytes, nil
}

func (uc *ReceiptUseCase) writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("receipt: create dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("receipt: write file: %w", err)
	}
	return nil
}

// newReceiptNumber builds RCP-YYYYMMDD-xxxxxxxx with a random uuid suffix.
func newReceiptNumber(soldAt time.Time) string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	return fmt.Sprintf("RCP-%s-%s", soldAt.Format("20060102"), suffix)
}

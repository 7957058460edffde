package sales_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skumaran/petti-kadai-api/internal/application/sales"
	"github.com/skumaran/petti-kadai-api/internal/domain"
	"github.com/skumaran/petti-kadai-api/internal/domain/entity"
	"github.com/skumaran/petti-kadai-api/internal/domain/repository"
)

type fakeReceiptRepo struct {
	bySale map[string]*entity.Receipt
}

var _ repository.ReceiptRepository = (*fakeReceiptRepo)(nil)

func (r *fakeReceiptRepo) Create(receipt *entity.Receipt) error {
	if _, ok := r.bySale[receipt.SaleID]; ok {
		return domain.ErrDuplicate
	}
	cp := *receipt
	r.bySale[receipt.SaleID] = &cp
	return nil
}

func (r *fakeReceiptRepo) GetBySaleID(saleID string) (*entity.Receipt, error) {
	receipt, ok := r.bySale[saleID]
	if !ok {
		return nil, nil
	}
	cp := *receipt
	return &cp, nil
}

// fakePDFGenerator records invocations and returns a fixed payload.
type fakePDFGenerator struct {
	calls    int
	lastData sales.ReceiptData
}

func (g *fakePDFGenerator) GenerateReceiptPDF(_ context.Context, data sales.ReceiptData) ([]byte, error) {
	g.calls++
	g.lastData = data
	return []byte("%PDF-fake " + data.ReceiptNumber), nil
}

type receiptEnv struct {
	store     *fakeStore
	receipts  *fakeReceiptRepo
	generator *fakePDFGenerator
	uc        *sales.ReceiptUseCase
}

func newReceiptEnv(t *testing.T) *receiptEnv {
	t.Helper()
	store := newFakeStore()
	receipts := &fakeReceiptRepo{bySale: map[string]*entity.Receipt{}}
	generator := &fakePDFGenerator{}
	uc := sales.NewReceiptUseCase(
		receipts,
		&fakeSaleRepo{s: store},
		&fakeCustomerRepo{s: store},
		&fakeSettings{taxRate: d("0")},
		generator,
		t.TempDir(),
	)
	return &receiptEnv{store: store, receipts: receipts, generator: generator, uc: uc}
}

func (e *receiptEnv) addSale(id, status string) {
	e.store.sales[id] = &entity.Sale{
		ID:          id,
		UserID:      testUser,
		SoldAt:      time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
		Subtotal:    d("100"),
		TotalAmount: d("100"),
		PaymentType: entity.PaymentCash,
		Status:      status,
	}
	e.store.saleItems[id] = []*entity.SaleItem{{
		ID: "i1", SaleID: id, ProductID: "p1", ProductName: "Rice 5kg",
		Quantity: d("1"), UnitPrice: d("100"), CostPrice: d("60"),
		Discount: d("0"), Subtotal: d("100"), Profit: d("40"),
	}}
}

func TestReceipt_GenerateFirstCall(t *testing.T) {
	env := newReceiptEnv(t)
	env.addSale("s1", entity.SaleStatusCompleted)

	pdfBytes, receipt, err := env.uc.Generate(context.Background(), "s1")
	require.NoError(t, err)
	require.NotNil(t, receipt)

	assert.Regexp(t, `^RCP-20260314-[0-9a-f]{8}$`, receipt.ReceiptNumber)
	assert.Equal(t, entity.ReceiptFormatPDF, receipt.Format)
	assert.Equal(t, 1, env.generator.calls)
	assert.Equal(t, "Rice 5kg", env.generator.lastData.Items[0].ProductName)

	// artifact written where the row says
	onDisk, err := os.ReadFile(receipt.FilePath)
	require.NoError(t, err)
	assert.Equal(t, pdfBytes, onDisk)
}

func TestReceipt_SecondCallReusesArtifact(t *testing.T) {
	env := newReceiptEnv(t)
	env.addSale("s1", entity.SaleStatusCompleted)
	ctx := context.Background()

	_, first, err := env.uc.Generate(ctx, "s1")
	require.NoError(t, err)

	_, second, err := env.uc.Generate(ctx, "s1")
	require.NoError(t, err)

	assert.Equal(t, first.ReceiptNumber, second.ReceiptNumber)
	assert.Equal(t, 1, env.generator.calls, "stored file should be served without re-rendering")
}

func TestReceipt_RerendersWhenFileMissing(t *testing.T) {
	env := newReceiptEnv(t)
	env.addSale("s1", entity.SaleStatusCompleted)
	ctx := context.Background()

	_, first, err := env.uc.Generate(ctx, "s1")
	require.NoError(t, err)
	require.NoError(t, os.Remove(first.FilePath))

	pdfBytes, second, err := env.uc.Generate(ctx, "s1")
	require.NoError(t, err)

	assert.Equal(t, first.ReceiptNumber, second.ReceiptNumber, "the number never changes")
	assert.Equal(t, 2, env.generator.calls)
	onDisk, err := os.ReadFile(first.FilePath)
	require.NoError(t, err)
	assert.Equal(t, pdfBytes, onDisk)
}

func TestReceipt_SaleNotFound(t *testing.T) {
	env := newReceiptEnv(t)
	_, _, err := env.uc.Generate(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReceipt_CancelledSale(t *testing.T) {
	env := newReceiptEnv(t)
	env.addSale("s1", entity.SaleStatusCancelled)
	_, _, err := env.uc.Generate(context.Background(), "s1")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

package entity

import "time"

// ReceiptFormatPDF is the only artifact format currently produced.
const ReceiptFormatPDF = "pdf"

// Receipt references the generated artifact for a completed sale.
// One receipt per sale; regeneration reuses the stored number.
type Receipt struct {
	ID            string
	SaleID        string
	ReceiptNumber string // RCP-YYYYMMDD-xxxxxxxx
	Format        string
	FilePath      string
	GeneratedAt   time.Time
}

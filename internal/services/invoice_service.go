package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/Mpictdev01/adventure-hub/internal/domain/models"
	"github.com/Mpictdev01/adventure-hub/internal/pricing"
	"github.com/Mpictdev01/adventure-hub/internal/utils"
)

// InvoiceService renders a booking invoice PDF for the back office.
type InvoiceService struct {
	Repo BookingStore
	Now  func() time.Time
}

func (s InvoiceService) Generate(ctx context.Context, bookingID string) ([]byte, string, error) {
	b, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, "", err
	}
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}
	utils.LogEvent(utils.RequestIDFrom(ctx), "docs", "generate_invoice", "booking_id="+b.ID)
	return buildInvoicePDF(b, now)
}

func buildInvoicePDF(b models.Booking, issued time.Time) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice "+b.ID, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "No Invoice   : INV-"+b.ID)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Tanggal      : "+issued.Format("2006-01-02 15:04"))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Status       : %s / %s", safe(string(b.Status), "-"), safe(string(b.PaymentStatus), "-")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Ditagihkan kepada:")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Nama   : "+safe(b.CustomerName, "-"))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Email  : "+safe(b.Email, "-"))
	pdf.Ln(7)
	pdf.Cell(0, 7, "No HP  : "+safe(b.Phone, "-"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Rincian:")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	desc := fmt.Sprintf("%s (%s) - %s, %d peserta",
		safe(b.TripName, b.TripID), safe(b.TripLocation, "-"), safe(b.Date, "-"), b.Guests)
	pdf.MultiCell(0, 6, "1) "+desc, "", "", false)
	pdf.Ln(2)

	breakdown := pricing.NewBreakdown(b.PricePerPax, b.Guests)
	rows := [][2]string{
		{"Harga per peserta", utils.FormatRupiah(b.PricePerPax)},
		{fmt.Sprintf("Subtotal (x%d)", b.Guests), utils.FormatRupiah(breakdown.Subtotal)},
		{"Biaya layanan", utils.FormatRupiah(breakdown.ServiceFee)},
		{"Diskon", "-" + utils.FormatRupiah(breakdown.Discount)},
	}
	for _, r := range rows {
		pdf.CellFormat(70, 6, r[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, r[1], "", 1, "R", false, 0, "")
	}
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(70, 8, "Total", "T", 0, "L", false, 0, "")
	pdf.CellFormat(0, 8, utils.FormatRupiah(b.TotalPrice), "T", 1, "R", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 11)
	if len(b.Participants) > 0 {
		pdf.Cell(0, 6, "Peserta:")
		pdf.Ln(6)
		for i, p := range b.Participants {
			pdf.Cell(0, 6, fmt.Sprintf("%d. %s", i+1, safe(p.FullName, "-")))
			pdf.Ln(6)
		}
		pdf.Ln(2)
	}

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Metode pembayaran: "+safe(b.PaymentMethod, "-"), "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("INVOICE_%s_%s.pdf", utils.SafeFilenamePart(b.ID), utils.SafeFilenamePart(b.CustomerName))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

package pdf

import (
	"bytes"
	"context"
	"io"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// VoucherData is the print model of one payment voucher. All money fields
// arrive pre-formatted; the renderer does layout only.
type VoucherData struct {
	BusinessName    string
	BusinessAddress string

	VoucherNumber string
	VoucherDate   string
	SupplierName  string
	CyclePeriod   string

	Lines []VoucherLine

	TotalAmount      string
	TotalVAT         string
	TotalWithholding string
	TotalNet         string
	TotalNetWords    string
}

// VoucherLine is one receipt row on the voucher.
type VoucherLine struct {
	ReceiptNo     string
	ReceiptDate   string
	PaymentMethod string
	Amount        string
	VAT           string
	Withholding   string
	Net           string
}

type PDFProvider struct{}

func New() Provider {
	return &PDFProvider{}
}

func (p *PDFProvider) GeneratePaymentVoucher(ctx context.Context, data VoucherData) (io.Reader, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(12,
		col.New(8).Add(
			text.New(data.BusinessName, props.Text{Size: 12, Style: fontstyle.Bold}),
			text.New(data.BusinessAddress, props.Text{Size: 8, Top: 6}),
		),
		text.NewCol(4, "Payment Voucher", props.Text{
			Size:  16,
			Style: fontstyle.Bold,
			Align: align.Right,
		}),
	)

	m.AddRow(18,
		col.New(6).Add(
			text.New("Voucher no: "+data.VoucherNumber, props.Text{Top: 0}),
			text.New("Voucher date: "+data.VoucherDate, props.Text{Top: 5}),
			text.New("Billing period: "+data.CyclePeriod, props.Text{Top: 10}),
		),
		col.New(6).Add(
			text.New("Pay to", props.Text{Style: fontstyle.Bold}),
			text.New(data.SupplierName, props.Text{Top: 5}),
		),
	)

	// Table Header
	m.AddRow(8,
		text.NewCol(2, "Receipt no", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Date", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Amount", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "VAT", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "WHT", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Net", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	for _, line := range data.Lines {
		m.AddRow(7,
			text.NewCol(2, line.ReceiptNo, props.Text{Size: 9}),
			text.NewCol(2, line.ReceiptDate, props.Text{Size: 9}),
			text.NewCol(2, line.Amount, props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, line.VAT, props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, line.Withholding, props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, line.Net, props.Text{Size: 9, Align: align.Right}),
		)
	}

	// Footer Totals
	m.AddRow(8,
		col.New(6),
		text.NewCol(3, "Total amount", props.Text{Size: 9}),
		text.NewCol(3, data.TotalAmount, props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(8,
		col.New(6),
		text.NewCol(3, "VAT", props.Text{Size: 9}),
		text.NewCol(3, data.TotalVAT, props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(8,
		col.New(6),
		text.NewCol(3, "Withholding tax", props.Text{Size: 9}),
		text.NewCol(3, data.TotalWithholding, props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(8,
		col.New(6),
		text.NewCol(3, "Net payable", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(3, data.TotalNet, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	m.AddRow(10,
		text.NewCol(12, data.TotalNetWords, props.Text{Size: 9, Align: align.Center, Top: 3}),
	)

	m.AddRow(20,
		col.New(4).Add(
			text.New("Prepared by", props.Text{Size: 8, Top: 12, Align: align.Center}),
		),
		col.New(4).Add(
			text.New("Approved by", props.Text{Size: 8, Top: 12, Align: align.Center}),
		),
		col.New(4).Add(
			text.New("Received by", props.Text{Size: 8, Top: 12, Align: align.Center}),
		),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(doc.GetBytes()), nil
}

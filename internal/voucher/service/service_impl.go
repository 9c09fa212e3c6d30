package service

import (
	"context"
	"io"
	"strings"

	"github.com/bwmarrin/snowflake"
	branchdomain "github.com/sahamit/backoffice/internal/branch/domain"
	"github.com/sahamit/backoffice/internal/config"
	expensedomain "github.com/sahamit/backoffice/internal/expense/domain"
	paymentmethoddomain "github.com/sahamit/backoffice/internal/paymentmethod/domain"
	"github.com/sahamit/backoffice/internal/providers/pdf"
	"github.com/sahamit/backoffice/internal/voucher/domain"
	"github.com/sahamit/backoffice/pkg/bahttext"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log            *zap.Logger
	Config         config.Config
	Expenses       expensedomain.Service
	PaymentMethods paymentmethoddomain.Service
	Branches       branchdomain.Service
	PDF            pdf.Provider
}

type Service struct {
	log             *zap.Logger
	anchorDay       int
	businessName    string
	businessAddress string
	expenses        expensedomain.Service
	paymentMethods  paymentmethoddomain.Service
	branches        branchdomain.Service
	pdf             pdf.Provider
}

func New(p Params) domain.Service {
	return &Service{
		log:             p.Log.Named("voucher.service"),
		anchorDay:       p.Config.CycleAnchorDay,
		businessName:    p.Config.BusinessName,
		businessAddress: p.Config.BusinessAddress,
		expenses:        p.Expenses,
		paymentMethods:  p.PaymentMethods,
		branches:        p.Branches,
		pdf:             p.PDF,
	}
}

func (s *Service) Preview(ctx context.Context, req domain.PreviewRequest) (domain.PreviewResponse, error) {
	if req.CycleDate.IsZero() {
		return domain.PreviewResponse{}, domain.ErrInvalidCycleDate
	}

	prefix := ""
	if raw := strings.TrimSpace(req.BranchID); raw != "" {
		branchID, err := snowflake.ParseString(raw)
		if err != nil || branchID == 0 {
			return domain.PreviewResponse{}, domain.ErrInvalidID
		}
		prefixes, err := s.branches.PrefixMap(ctx)
		if err != nil {
			return domain.PreviewResponse{}, err
		}
		prefix = prefixes[branchID]
	}

	receipts, err := s.expenses.ListCycle(ctx, expensedomain.ListCycleRequest{
		CycleDate: req.CycleDate,
		BranchID:  req.BranchID,
	})
	if err != nil {
		return domain.PreviewResponse{}, err
	}

	if err := ValidateBatch(receipts); err != nil {
		return domain.PreviewResponse{}, err
	}

	methods, err := s.paymentMethods.List(ctx)
	if err != nil {
		return domain.PreviewResponse{}, err
	}

	assigned := AssignVoucherIDs(receipts, domain.Classify(methods), prefix, req.CycleDate)
	window := expensedomain.CycleWindowFor(req.CycleDate, s.anchorDay)

	s.log.Debug("voucher preview computed",
		zap.Time("cycle_start", window.Start),
		zap.Int("receipts", len(assigned)),
	)

	return domain.PreviewResponse{
		CycleStart: window.Start,
		CycleEnd:   window.End,
		Receipts:   assigned,
		Vouchers:   Aggregate(assigned),
	}, nil
}

func (s *Service) RenderPDF(ctx context.Context, req domain.RenderPDFRequest) ([]byte, error) {
	voucherID := strings.TrimSpace(req.VoucherID)
	if voucherID == "" {
		return nil, domain.ErrInvalidID
	}

	preview, err := s.Preview(ctx, domain.PreviewRequest{CycleDate: req.CycleDate, BranchID: req.BranchID})
	if err != nil {
		return nil, err
	}

	for _, voucher := range preview.Vouchers {
		if voucher.VoucherID != voucherID {
			continue
		}
		reader, err := s.pdf.GeneratePaymentVoucher(ctx, s.voucherData(voucher, preview))
		if err != nil {
			return nil, err
		}
		return io.ReadAll(reader)
	}

	return nil, domain.ErrVoucherNotFound
}

const dateLayout = "02/01/2006"

func (s *Service) voucherData(voucher domain.VoucherSummary, preview domain.PreviewResponse) pdf.VoucherData {
	data := pdf.VoucherData{
		BusinessName:     s.businessName,
		BusinessAddress:  s.businessAddress,
		VoucherNumber:    voucher.VoucherID,
		VoucherDate:      voucher.VoucherDate.Format(dateLayout),
		SupplierName:     voucher.SupplierName,
		CyclePeriod:      preview.CycleStart.Format(dateLayout) + " - " + preview.CycleEnd.AddDate(0, 0, -1).Format(dateLayout),
		TotalAmount:      money(voucher.Totals.TotalAmount),
		TotalVAT:         money(voucher.Totals.VAT),
		TotalWithholding: money(voucher.Totals.Withholding),
		TotalNet:         money(voucher.Totals.TotalNet),
		TotalNetWords:    bahttext.Words(voucher.Totals.TotalNet),
	}
	for _, member := range voucher.Members {
		line := pdf.VoucherLine{
			ReceiptNo:   member.DisplayNo,
			ReceiptDate: member.ReceiptDate.Format(dateLayout),
			Amount:      money(member.TotalAmount.Sub(member.Discount)),
			VAT:         money(member.Cascade.VATOnly),
			Withholding: money(member.Cascade.WithholdingOnly),
			Net:         money(member.Cascade.TotalNet),
		}
		if member.PaymentMethod != nil {
			line.PaymentMethod = member.PaymentMethod.Name
		}
		data.Lines = append(data.Lines, line)
	}
	return data
}

// money renders an amount with two decimals and thousands separators.
func money(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	dot := strings.Index(s, ".")
	intPart, frac := s[:dot], s[dot:]

	var b strings.Builder
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}
	return sign + b.String() + frac
}

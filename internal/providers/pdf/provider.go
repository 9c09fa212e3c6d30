package pdf

import (
	"context"
	"io"
)

// Provider renders printable documents. Kept behind an interface so tests
// can swap in a stub instead of driving a real PDF engine.
type Provider interface {
	GeneratePaymentVoucher(ctx context.Context, data VoucherData) (io.Reader, error)
}

type NoOpProvider struct{}

func (p *NoOpProvider) GeneratePaymentVoucher(ctx context.Context, data VoucherData) (io.Reader, error) {
	return nil, nil
}

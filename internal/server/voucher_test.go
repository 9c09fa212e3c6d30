package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	voucherdomain "github.com/sahamit/backoffice/internal/voucher/domain"
)

type fakeVoucherService struct {
	lastPreview voucherdomain.PreviewRequest
	previewErr  error
	pdf         []byte
	pdfErr      error
}

func (f *fakeVoucherService) Preview(ctx context.Context, req voucherdomain.PreviewRequest) (voucherdomain.PreviewResponse, error) {
	f.lastPreview = req
	_ = ctx
	if f.previewErr != nil {
		return voucherdomain.PreviewResponse{}, f.previewErr
	}
	return voucherdomain.PreviewResponse{
		CycleStart: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		CycleEnd:   time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
		Vouchers: []voucherdomain.VoucherSummary{
			{VoucherID: "PV2503001"},
		},
	}, nil
}

func (f *fakeVoucherService) RenderPDF(ctx context.Context, req voucherdomain.RenderPDFRequest) ([]byte, error) {
	_ = ctx
	_ = req
	return f.pdf, f.pdfErr
}

func newVoucherRouter(svc voucherdomain.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	srv := &Server{voucherSvc: svc}

	router := gin.New()
	router.Use(ErrorHandlingMiddleware())
	router.GET("/vouchers", srv.PreviewVouchers)
	router.GET("/vouchers/:voucherId/pdf", srv.RenderVoucherPDF)
	return router
}

func TestPreviewVouchersHandler(t *testing.T) {
	svc := &fakeVoucherService{}
	router := newVoucherRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/vouchers?cycle_date=2025-03-14&branch_id=301", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if svc.lastPreview.BranchID != "301" {
		t.Fatalf("expected branch id to pass through, got %q", svc.lastPreview.BranchID)
	}
	if !svc.lastPreview.CycleDate.Equal(time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected cycle date %v", svc.lastPreview.CycleDate)
	}

	var body struct {
		Data voucherdomain.PreviewResponse `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Data.Vouchers) != 1 || body.Data.Vouchers[0].VoucherID != "PV2503001" {
		t.Fatalf("unexpected vouchers %+v", body.Data.Vouchers)
	}
}

func TestPreviewVouchersHandlerBadCycleDate(t *testing.T) {
	svc := &fakeVoucherService{}
	router := newVoucherRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/vouchers?cycle_date=not-a-date", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestPreviewVouchersHandlerBatchError(t *testing.T) {
	svc := &fakeVoucherService{
		previewErr: &voucherdomain.ValidationError{ReceiptID: 42, Field: "vat_rate", Reason: "out of range"},
	}
	router := newVoucherRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/vouchers?cycle_date=2025-03-14", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}

	var body errorResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Error.Errors) != 1 || body.Error.Errors[0].Field != "receipts[42].vat_rate" {
		t.Fatalf("unexpected error payload %+v", body.Error)
	}
}

func TestRenderVoucherPDFHandler(t *testing.T) {
	svc := &fakeVoucherService{pdf: []byte("%PDF-stub")}
	router := newVoucherRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/vouchers/PV2503001/pdf?cycle_date=2025-03-14", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("expected pdf content type, got %q", ct)
	}
	if resp.Body.String() != "%PDF-stub" {
		t.Fatalf("unexpected body %q", resp.Body.String())
	}
}

func TestRenderVoucherPDFHandlerNotFound(t *testing.T) {
	svc := &fakeVoucherService{pdfErr: voucherdomain.ErrVoucherNotFound}
	router := newVoucherRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/vouchers/PV2503099/pdf?cycle_date=2025-03-14", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

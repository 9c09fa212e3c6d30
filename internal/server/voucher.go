package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	voucherdomain "github.com/sahamit/backoffice/internal/voucher/domain"
)

// PreviewVouchers computes the voucher assignment for the billing cycle
// containing cycle_date. Vouchers are derived, not stored: the same query
// always reproduces the same numbering.
func (s *Server) PreviewVouchers(c *gin.Context) {
	cycleDate, err := parseRequiredDate(c.Query("cycle_date"))
	if err != nil {
		AbortWithError(c, voucherdomain.ErrInvalidCycleDate)
		return
	}

	resp, err := s.voucherSvc.Preview(c.Request.Context(), voucherdomain.PreviewRequest{
		CycleDate: cycleDate,
		BranchID:  c.Query("branch_id"),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) RenderVoucherPDF(c *gin.Context) {
	cycleDate, err := parseRequiredDate(c.Query("cycle_date"))
	if err != nil {
		AbortWithError(c, voucherdomain.ErrInvalidCycleDate)
		return
	}

	pdfBytes, err := s.voucherSvc.RenderPDF(c.Request.Context(), voucherdomain.RenderPDFRequest{
		CycleDate: cycleDate,
		BranchID:  c.Query("branch_id"),
		VoucherID: c.Param("voucherId"),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+c.Param("voucherId")+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

func isVoucherValidationError(err error) bool {
	switch {
	case errors.Is(err, voucherdomain.ErrInvalidCycleDate),
		errors.Is(err, voucherdomain.ErrInvalidID):
		return true
	default:
		return false
	}
}

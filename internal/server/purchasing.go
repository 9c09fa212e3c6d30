package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	purchasingdomain "github.com/sahamit/backoffice/internal/purchasing/domain"
)

func (s *Server) CreatePurchaseInvoice(c *gin.Context) {
	var req purchasingdomain.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.purchasingSvc.CreateInvoice(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetPurchaseInvoiceByID(c *gin.Context) {
	resp, err := s.purchasingSvc.GetInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListPurchaseInvoices(c *gin.Context) {
	resp, err := s.purchasingSvc.ListInvoices(c.Request.Context(), purchasingdomain.ListInvoiceRequest{
		SupplierID: c.Query("supplier_id"),
		Status:     c.Query("status"),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) CreateDeliveryNote(c *gin.Context) {
	var req purchasingdomain.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.purchasingSvc.CreateNote(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetDeliveryNoteByID(c *gin.Context) {
	resp, err := s.purchasingSvc.GetNote(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListDeliveryNotes(c *gin.Context) {
	unmatched, err := parseOptionalBool(c.Query("unmatched"))
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	req := purchasingdomain.ListNoteRequest{
		SupplierID: c.Query("supplier_id"),
	}
	if unmatched != nil {
		req.Unmatched = *unmatched
	}

	resp, err := s.purchasingSvc.ListNotes(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) MatchDeliveryNote(c *gin.Context) {
	var req purchasingdomain.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.DeliveryNoteID = c.Param("id")

	resp, err := s.purchasingSvc.MatchDeliveryNote(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func isPurchasingValidationError(err error) bool {
	switch {
	case errors.Is(err, purchasingdomain.ErrInvalidNumber),
		errors.Is(err, purchasingdomain.ErrInvalidSupplier),
		errors.Is(err, purchasingdomain.ErrInvalidDate),
		errors.Is(err, purchasingdomain.ErrInvalidLine),
		errors.Is(err, purchasingdomain.ErrInvalidID),
		errors.Is(err, purchasingdomain.ErrSupplierMismatch):
		return true
	default:
		return false
	}
}

package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	expensedomain "github.com/sahamit/backoffice/internal/expense/domain"
)

func (s *Server) CreateExpense(c *gin.Context) {
	var req expensedomain.CreateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.expenseSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateExpense(c *gin.Context) {
	var req expensedomain.UpdateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.ID = c.Param("id")

	resp, err := s.expenseSvc.Update(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteExpense(c *gin.Context) {
	if err := s.expenseSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}

func (s *Server) GetExpenseByID(c *gin.Context) {
	resp, err := s.expenseSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListExpenses(c *gin.Context) {
	dateFrom, err := parseOptionalTime(c.Query("date_from"), false)
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	dateTo, err := parseOptionalTime(c.Query("date_to"), true)
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	pageSize, _ := strconv.Atoi(c.Query("page_size"))

	resp, err := s.expenseSvc.List(c.Request.Context(), expensedomain.ListReceiptRequest{
		SupplierID: c.Query("supplier_id"),
		BranchID:   c.Query("branch_id"),
		DateFrom:   dateFrom,
		DateTo:     dateTo,
		PageToken:  c.Query("page_token"),
		PageSize:   pageSize,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func isExpenseValidationError(err error) bool {
	switch {
	case errors.Is(err, expensedomain.ErrInvalidReceiptNumber),
		errors.Is(err, expensedomain.ErrInvalidReceiptDate),
		errors.Is(err, expensedomain.ErrInvalidSupplier),
		errors.Is(err, expensedomain.ErrInvalidPaymentMethod),
		errors.Is(err, expensedomain.ErrInvalidAmount),
		errors.Is(err, expensedomain.ErrInvalidRate),
		errors.Is(err, expensedomain.ErrExemptExceedsTotal),
		errors.Is(err, expensedomain.ErrInvalidID):
		return true
	default:
		return false
	}
}

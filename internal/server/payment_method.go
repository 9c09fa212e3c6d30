package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	paymentmethoddomain "github.com/sahamit/backoffice/internal/paymentmethod/domain"
)

func (s *Server) CreatePaymentMethod(c *gin.Context) {
	var req paymentmethoddomain.CreatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.paymentMethodSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdatePaymentMethod(c *gin.Context) {
	var req paymentmethoddomain.UpdatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.ID = c.Param("id")

	resp, err := s.paymentMethodSvc.Update(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetPaymentMethodByID(c *gin.Context) {
	resp, err := s.paymentMethodSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListPaymentMethods(c *gin.Context) {
	resp, err := s.paymentMethodSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func isPaymentMethodValidationError(err error) bool {
	switch {
	case errors.Is(err, paymentmethoddomain.ErrInvalidName),
		errors.Is(err, paymentmethoddomain.ErrInvalidVoucherType),
		errors.Is(err, paymentmethoddomain.ErrInvalidID):
		return true
	default:
		return false
	}
}

package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	branchdomain "github.com/sahamit/backoffice/internal/branch/domain"
)

func (s *Server) CreateBranch(c *gin.Context) {
	var req branchdomain.CreateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.branchSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateBranch(c *gin.Context) {
	var req branchdomain.UpdateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.ID = c.Param("id")

	resp, err := s.branchSvc.Update(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetBranchByID(c *gin.Context) {
	resp, err := s.branchSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListBranches(c *gin.Context) {
	resp, err := s.branchSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func isBranchValidationError(err error) bool {
	switch {
	case errors.Is(err, branchdomain.ErrInvalidCode),
		errors.Is(err, branchdomain.ErrInvalidName),
		errors.Is(err, branchdomain.ErrInvalidID):
		return true
	default:
		return false
	}
}

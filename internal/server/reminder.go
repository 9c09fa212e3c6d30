package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	reminderdomain "github.com/sahamit/backoffice/internal/reminder/domain"
)

func (s *Server) CreateReminder(c *gin.Context) {
	var req reminderdomain.CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.reminderSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateReminder(c *gin.Context) {
	var req reminderdomain.UpdateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.ID = c.Param("id")

	resp, err := s.reminderSvc.Update(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteReminder(c *gin.Context) {
	if err := s.reminderSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}

func (s *Server) GetReminderByID(c *gin.Context) {
	resp, err := s.reminderSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// ListReminders lists reminders; due=true narrows to unpaid reminders due
// on or before as_of (default now).
func (s *Server) ListReminders(c *gin.Context) {
	due, err := parseOptionalBool(c.Query("due"))
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	if due != nil && *due {
		asOf := time.Now().UTC()
		if parsed, err := parseOptionalTime(c.Query("as_of"), true); err != nil {
			AbortWithError(c, invalidRequestError())
			return
		} else if parsed != nil {
			asOf = *parsed
		}

		resp, err := s.reminderSvc.ListDue(c.Request.Context(), asOf)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": resp})
		return
	}

	resp, err := s.reminderSvc.List(c.Request.Context(), reminderdomain.ListReminderRequest{
		SupplierID: c.Query("supplier_id"),
		Status:     c.Query("status"),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) MarkReminderPaid(c *gin.Context) {
	resp, err := s.reminderSvc.MarkPaid(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// SweepReminders runs the overdue sweep on demand, outside the scheduled
// interval.
func (s *Server) SweepReminders(c *gin.Context) {
	count, err := s.reminderSvc.MarkOverdue(c.Request.Context(), time.Now().UTC())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"marked_overdue": count}})
}

func isReminderValidationError(err error) bool {
	switch {
	case errors.Is(err, reminderdomain.ErrInvalidSupplier),
		errors.Is(err, reminderdomain.ErrInvalidDueDate),
		errors.Is(err, reminderdomain.ErrInvalidAmount),
		errors.Is(err, reminderdomain.ErrInvalidStatus),
		errors.Is(err, reminderdomain.ErrInvalidID):
		return true
	default:
		return false
	}
}

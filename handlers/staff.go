package handlers

import (
	"net/http"

	"glowbook/models"
	"glowbook/services/staff"

	"github.com/gin-gonic/gin"
)

// StaffHandler exposes the roster-management endpoints.
type StaffHandler struct {
	Service staff.StaffService
}

func NewStaffHandler(svc staff.StaffService) *StaffHandler {
	return &StaffHandler{Service: svc}
}

// CreateStaff handles POST /api/staff
func (h *StaffHandler) CreateStaff(c *gin.Context) {
	var input staff.CreateStaffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Service.CreateStaff(input)
	if err != nil {
		respondAvailabilityError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"staff": created})
}

// GetStaff handles GET /api/staff/:id
func (h *StaffHandler) GetStaff(c *gin.Context) {
	member, err := h.Service.GetStaff(c.Param("id"))
	if err != nil {
		respondAvailabilityError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"staff": member})
}

// UpdateStaffSchedule handles PUT /api/staff/:id/schedule
func (h *StaffHandler) UpdateStaffSchedule(c *gin.Context) {
	var input struct {
		Schedule models.WeeklySchedule `json:"schedule" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	updated, err := h.Service.UpdateSchedule(c.Param("id"), input.Schedule)
	if err != nil {
		respondAvailabilityError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"staff": updated})
}

// DeactivateStaff handles DELETE /api/staff/:id
func (h *StaffHandler) DeactivateStaff(c *gin.Context) {
	if err := h.Service.DeactivateStaff(c.Param("id")); err != nil {
		respondAvailabilityError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deactivated"})
}

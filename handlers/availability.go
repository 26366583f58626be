package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"glowbook/services/availability"
	"glowbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler exposes the slot-computation endpoints.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
}

func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

// GetVendorAvailability handles GET /api/availability/vendor/:vendorId?date=YYYY-MM-DD
// The date defaults to today.
func (h *AvailabilityHandler) GetVendorAvailability(c *gin.Context) {
	vendorID := c.Param("vendorId")

	var date time.Time
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid date", "expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	result, err := h.Service.VendorAvailability(vendorID, date)
	if err != nil {
		respondAvailabilityError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetStaffAvailability handles GET /api/availability/staff/:staffId?date=YYYY-MM-DD&duration=60
func (h *AvailabilityHandler) GetStaffAvailability(c *gin.Context) {
	staffID := c.Param("staffId")

	raw := c.Query("date")
	if raw == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing date", "date query parameter is required")
		return
	}
	date, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", "expected YYYY-MM-DD")
		return
	}

	duration := 0
	if d := c.Query("duration"); d != "" {
		v, err := strconv.Atoi(d)
		if err != nil || v <= 0 {
			utils.JSONError(c, http.StatusBadRequest, "invalid duration", "duration must be a positive number of minutes")
			return
		}
		duration = v
	}

	result, err := h.Service.StaffAvailability(staffID, date, duration)
	if err != nil {
		respondAvailabilityError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// respondAvailabilityError maps the availability error taxonomy onto HTTP
// status codes: validation → 400, not found → 404, everything else → 500.
func respondAvailabilityError(c *gin.Context, err error) {
	var vErr *availability.ValidationError
	var nfErr *availability.NotFoundError
	switch {
	case errors.As(err, &vErr):
		utils.JSONError(c, http.StatusBadRequest, "invalid request", vErr.Message)
	case errors.As(err, &nfErr):
		utils.JSONError(c, http.StatusNotFound, "not found", nfErr.Error())
	default:
		utils.GetLogger().Error("availability query failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "availability lookup failed")
	}
}

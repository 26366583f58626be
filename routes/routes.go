package routes

import (
	"net/http"

	"glowbook/handlers"
	"glowbook/middleware"
	"glowbook/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates the handlers the routes need.
type HandlerBundle struct {
	Availability *handlers.AvailabilityHandler
	Booking      *handlers.BookingHandler
	Staff        *handlers.StaffHandler
}

// RegisterRoutes wires every endpoint onto the router.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	RegisterHealthRoute(r)
	RegisterAvailabilityRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterStaffRoutes(r, hb)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterAvailabilityRoutes registers the public slot-query endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.GET("/vendor/:vendorId", hb.Availability.GetVendorAvailability)
		api.GET("/staff/:staffId", hb.Availability.GetStaffAvailability)
	}
}

// RegisterBookingRoutes registers the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.Booking.CreateBooking)
		api.DELETE("/:id", hb.Booking.CancelBooking)
		api.GET("/vendor/:vendorId", hb.Booking.ListVendorBookings)
	}
}

// RegisterStaffRoutes registers the roster-management endpoints. Only
// vendors may modify their roster.
func RegisterStaffRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/staff")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/:id", hb.Staff.GetStaff)

		protected := api.Group("")
		protected.Use(middleware.RequireRole(utils.RoleVendor))
		protected.POST("", hb.Staff.CreateStaff)
		protected.PUT("/:id/schedule", hb.Staff.UpdateStaffSchedule)
		protected.DELETE("/:id", hb.Staff.DeactivateStaff)
	}
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/doctors-portal-api/internal/middleware"
	"github.com/harentsoaR/doctors-portal-api/internal/services"
)

// RegisterRoutes mounts the portal API on r. Only the routes that read the
// caller's identity run the token verifier; limiter may be nil.
func (h *Handler) RegisterRoutes(r gin.IRouter, verifier services.TokenVerifier, limiter *middleware.RateLimiter) {
	verify := middleware.VerifyToken(verifier)

	r.GET("/", h.Root)

	r.GET("/services", h.GetServices)
	r.GET("/availableAppointments", h.GetAvailableAppointments)

	appointments := r.Group("/appointments")
	{
		appointments.GET("", h.GetAppointments)
		appointments.GET("/user", verify, h.GetMyAppointments)
		appointments.GET("/email", verify, h.GetAppointmentsByEmail)
		appointments.GET("/:id", h.GetAppointment)
		appointments.POST("", h.CreateAppointment)
		appointments.PUT("/:id", h.AttachPayment)
		appointments.DELETE("/:id", h.DeleteAppointment)
	}

	users := r.Group("/users")
	{
		users.GET("", h.GetUsers)
		users.POST("", h.CreateUser)
		users.PUT("", h.UpsertUser)
		users.PUT("/admin", verify, h.MakeAdmin)
		users.GET("/:email", h.CheckAdmin)
	}

	reviews := r.Group("/reviews")
	{
		reviews.GET("", h.GetReviews)
		reviews.POST("", h.CreateReview)
		reviews.GET("/:id", h.GetReview)
	}

	doctors := r.Group("/doctors")
	{
		doctors.GET("", h.GetDoctors)
		doctors.GET("/:id", h.GetDoctor)
		doctors.POST("", h.CreateDoctor)
		doctors.PUT("/:id", h.UpdateDoctor)
		doctors.DELETE("/:id", h.DeleteDoctor)
	}

	r.POST("/create-payment-intent", middleware.RateLimit(limiter), h.CreatePaymentIntent)
}

func (h *Handler) Root(c *gin.Context) {
	c.String(http.StatusOK, "Running Doctor`s Portal Server!")
}

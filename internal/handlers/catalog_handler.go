package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/doctors-portal-api/internal/store"
)

func (h *Handler) GetServices(c *gin.Context) {
	h.list(c, store.Services, nil)
}

// GetAvailableAppointments lists the bookable slots. Clients never write
// this collection.
func (h *Handler) GetAvailableAppointments(c *gin.Context) {
	h.list(c, store.AvailableAppointments, nil)
}

func (h *Handler) GetReviews(c *gin.Context) {
	h.list(c, store.Reviews, nil)
}

func (h *Handler) CreateReview(c *gin.Context) {
	h.insertBody(c, store.Reviews)
}

func (h *Handler) GetReview(c *gin.Context) {
	h.getByID(c, store.Reviews)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/harentsoaR/doctors-portal-api/internal/middleware"
	"github.com/harentsoaR/doctors-portal-api/internal/store"
	"github.com/harentsoaR/doctors-portal-api/internal/utils"
)

// --- GET APPOINTMENTS (optionally filtered by email and/or date) ---
// e.g. /appointments?email=a@b.com&date=Fri Oct 16 2026
func (h *Handler) GetAppointments(c *gin.Context) {
	filter := h.appointmentFilter(c, c.Query("email"))
	h.list(c, store.Appointments, filter)
}

// --- GET MY APPOINTMENTS (verified caller only) ---
func (h *Handler) GetMyAppointments(c *gin.Context) {
	requester, ok := middleware.DecodedEmail(c)
	if !ok {
		h.fail(c, http.StatusUnauthorized, "User not authenticated", nil)
		return
	}
	h.list(c, store.Appointments, h.appointmentFilter(c, requester))
}

// --- GET APPOINTMENTS BY EMAIL (caller must own the email) ---
func (h *Handler) GetAppointmentsByEmail(c *gin.Context) {
	requester, ok := middleware.DecodedEmail(c)
	if !ok {
		h.fail(c, http.StatusUnauthorized, "User not authenticated", nil)
		return
	}
	email := c.Query("email")
	if email != requester {
		h.fail(c, http.StatusForbidden, "Permission denied.", nil)
		return
	}
	h.list(c, store.Appointments, h.appointmentFilter(c, email))
}

// appointmentFilter matches on email when given and on the stored
// M/D/YYYY date when a date query is present. A date that does not parse
// still filters, on "Invalid Date".
func (h *Handler) appointmentFilter(c *gin.Context, email string) bson.M {
	filter := bson.M{}
	if email != "" {
		filter["email"] = email
	}
	if raw, ok := c.GetQuery("date"); ok {
		filter["date"] = utils.LocaleDateString(raw, h.Location)
	}
	return filter
}

func (h *Handler) GetAppointment(c *gin.Context) {
	h.getByID(c, store.Appointments)
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	h.insertBody(c, store.Appointments)
}

// --- ATTACH PAYMENT ---
// The whole body becomes the appointment's payment record.
func (h *Handler) AttachPayment(c *gin.Context) {
	filter, ok := h.idFilter(c)
	if !ok {
		return
	}
	payment, ok := h.bindDocument(c)
	if !ok {
		return
	}

	res, err := h.Store.UpdateOne(c.Request.Context(), store.Appointments, filter, bson.M{"payment": payment}, false)
	if err != nil {
		h.storeError(c, "Failed to update appointment", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) DeleteAppointment(c *gin.Context) {
	h.deleteByID(c, store.Appointments)
}

package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harentsoaR/doctors-portal-api/internal/middleware"
	"github.com/harentsoaR/doctors-portal-api/internal/services"
	"github.com/harentsoaR/doctors-portal-api/internal/store"
)

// Handler carries the dependencies every route needs. Each gin handler is a
// method on it.
type Handler struct {
	Store    store.Store
	Payments services.PaymentGateway
	// Location is the zone appointment dates are rendered in.
	Location *time.Location
}

func NewHandler(st store.Store, payments services.PaymentGateway) *Handler {
	return &Handler{
		Store:    st,
		Payments: payments,
		Location: time.Local,
	}
}

func (h *Handler) fail(c *gin.Context, status int, msg string, err error) {
	if err != nil {
		log.Printf("[%s] %s: %v", middleware.RequestID(c), msg, err)
	}
	c.JSON(status, gin.H{"error": msg})
}

func (h *Handler) storeError(c *gin.Context, msg string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, store.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, store.ErrNotConnected):
		status = http.StatusServiceUnavailable
	}
	h.fail(c, status, msg, err)
}

// idFilter builds an _id filter from the :id path parameter, answering 400
// itself when the id is malformed.
func (h *Handler) idFilter(c *gin.Context) (bson.M, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		h.fail(c, http.StatusBadRequest, "Invalid id", nil)
		return nil, false
	}
	return bson.M{"_id": id}, true
}

// bindDocument reads the request body as a free-form document.
func (h *Handler) bindDocument(c *gin.Context) (bson.M, bool) {
	var doc bson.M
	if err := c.ShouldBindJSON(&doc); err != nil || doc == nil {
		h.fail(c, http.StatusBadRequest, "Invalid request body", nil)
		return nil, false
	}
	return doc, true
}

func (h *Handler) list(c *gin.Context, collection string, filter bson.M) {
	docs, err := h.Store.Find(c.Request.Context(), collection, filter)
	if err != nil {
		h.storeError(c, "Failed to retrieve "+collection, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (h *Handler) getByID(c *gin.Context, collection string) {
	filter, ok := h.idFilter(c)
	if !ok {
		return
	}
	doc, err := h.Store.FindOne(c.Request.Context(), collection, filter)
	if err != nil {
		h.storeError(c, "Failed to retrieve document from "+collection, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// insertBody stores the request body verbatim.
func (h *Handler) insertBody(c *gin.Context, collection string) {
	doc, ok := h.bindDocument(c)
	if !ok {
		return
	}
	res, err := h.Store.InsertOne(c.Request.Context(), collection, doc)
	if err != nil {
		h.storeError(c, "Failed to create document in "+collection, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// deleteByID reports the store's result as-is, including zero deletions.
func (h *Handler) deleteByID(c *gin.Context, collection string) {
	filter, ok := h.idFilter(c)
	if !ok {
		return
	}
	res, err := h.Store.DeleteOne(c.Request.Context(), collection, filter)
	if err != nil {
		h.storeError(c, "Failed to delete document from "+collection, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

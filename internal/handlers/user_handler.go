package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/harentsoaR/doctors-portal-api/internal/middleware"
	"github.com/harentsoaR/doctors-portal-api/internal/models"
	"github.com/harentsoaR/doctors-portal-api/internal/store"
)

func (h *Handler) GetUsers(c *gin.Context) {
	h.list(c, store.Users, nil)
}

func (h *Handler) CreateUser(c *gin.Context) {
	h.insertBody(c, store.Users)
}

// CheckAdmin answers {"admin": bool} for /users/:email. Unknown emails are
// simply not admins.
func (h *Handler) CheckAdmin(c *gin.Context) {
	user, err := h.Store.FindOne(c.Request.Context(), store.Users, bson.M{"email": c.Param("email")})
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		h.storeError(c, "Failed to look up user", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": models.IsAdmin(user)})
}

// UpsertUser sets the body on the user with the same email, creating the
// user if none exists.
func (h *Handler) UpsertUser(c *gin.Context) {
	user, ok := h.bindDocument(c)
	if !ok {
		return
	}
	email, _ := user["email"].(string)
	if email == "" {
		h.fail(c, http.StatusBadRequest, "email is required", nil)
		return
	}
	// _id is immutable on existing documents
	delete(user, "_id")

	res, err := h.Store.UpdateOne(c.Request.Context(), store.Users, bson.M{"email": email}, user, true)
	if err != nil {
		h.storeError(c, "Failed to save user", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// MakeAdmin promotes body.email to admin when the verified caller is an
// admin. Without a verified caller it answers 403. A caller who is not an
// admin (or has no user document) gets no body at all.
func (h *Handler) MakeAdmin(c *gin.Context) {
	requester, ok := middleware.DecodedEmail(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"message": "You do not have any access to make an admin!"})
		return
	}

	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	account, err := h.Store.FindOne(c.Request.Context(), store.Users, bson.M{"email": requester})
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		h.storeError(c, "Failed to look up requester", err)
		return
	}
	if !models.IsAdmin(account) {
		return
	}

	res, err := h.Store.UpdateOne(c.Request.Context(), store.Users,
		bson.M{"email": req.Email}, bson.M{"role": models.RoleAdmin}, false)
	if err != nil {
		h.storeError(c, "Failed to promote user", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

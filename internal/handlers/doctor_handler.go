package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/doctors-portal-api/internal/models"
	"github.com/harentsoaR/doctors-portal-api/internal/store"
)

func (h *Handler) GetDoctors(c *gin.Context) {
	h.list(c, store.Doctors, nil)
}

func (h *Handler) GetDoctor(c *gin.Context) {
	h.getByID(c, store.Doctors)
}

// CreateDoctor takes a multipart form with name, email and an image file.
// The image bytes are stored on the document.
func (h *Handler) CreateDoctor(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		h.fail(c, http.StatusBadRequest, "image file is required", nil)
		return
	}
	image, err := readUpload(fh)
	if err != nil {
		h.fail(c, http.StatusBadRequest, "Unable to read image", err)
		return
	}

	doctor := models.Doctor{
		Name:  c.PostForm("name"),
		Email: c.PostForm("email"),
		Image: image,
	}
	res, err := h.Store.InsertOne(c.Request.Context(), store.Doctors, doctor.Document())
	if err != nil {
		h.storeError(c, "Failed to create doctor", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// UpdateDoctor sets whichever of name, email and image the form carries.
func (h *Handler) UpdateDoctor(c *gin.Context) {
	filter, ok := h.idFilter(c)
	if !ok {
		return
	}

	doctor := models.Doctor{
		Name:  c.PostForm("name"),
		Email: c.PostForm("email"),
	}
	if fh, err := c.FormFile("image"); err == nil {
		image, err := readUpload(fh)
		if err != nil {
			h.fail(c, http.StatusBadRequest, "Unable to read image", err)
			return
		}
		doctor.Image = image
	}

	set := doctor.Fields()
	if len(set) == 0 {
		h.fail(c, http.StatusBadRequest, "No update fields provided", nil)
		return
	}

	res, err := h.Store.UpdateOne(c.Request.Context(), store.Doctors, filter, set, false)
	if err != nil {
		h.storeError(c, "Failed to update doctor", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) DeleteDoctor(c *gin.Context) {
	h.deleteByID(c, store.Doctors)
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload %s: %w", fh.Filename, err)
	}
	defer src.Close()
	return io.ReadAll(src)
}

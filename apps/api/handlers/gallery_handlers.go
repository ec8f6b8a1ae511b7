package handlers

import (
	"net/http"
	"strconv"

	"github.com/chokka/chokka-api/apps/api/constants"
	"github.com/chokka/chokka-api/libs/go/helpers"
	"github.com/chokka/chokka-api/libs/go/interfaces"
	"github.com/chokka/chokka-api/libs/go/services"
	"github.com/chokka/chokka-api/libs/go/types/api/params"
	"github.com/chokka/chokka-api/libs/go/types/api/requests"

	"github.com/gin-gonic/gin"
)

// GalleryHandler handles gallery images
type GalleryHandler struct {
	galleryService interfaces.GalleryService
}

// NewGalleryHandler creates a handler with interface dependencies
func NewGalleryHandler(galleryService interfaces.GalleryService) *GalleryHandler {
	return &GalleryHandler{galleryService: galleryService}
}

// ListImages godoc
// @Summary List gallery images
// @Tags gallery
// @Produce json
// @Param product_id query int false "Only images of this product"
// @Success 200 {array} responses.GalleryImageResponse
// @Failure 400 {object} ErrorResponse
// @Router /gallery [get]
func (h *GalleryHandler) ListImages(c *gin.Context) {
	productID, ok := optionalProductID(c)
	if !ok {
		return
	}

	images, err := h.galleryService.ListImages(c.Request.Context(), productID)
	if err != nil {
		handleServiceError(c, err, "Failed to list gallery images")
		return
	}
	sendSuccess(c, http.StatusOK, helpers.ToGalleryImageResponses(images))
}

// CreateImage godoc
// @Summary Register an externally hosted image
// @Tags gallery
// @Accept json
// @Produce json
// @Param image body requests.CreateGalleryImageRequest true "Image"
// @Success 201 {object} responses.GalleryImageResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /gallery [post]
func (h *GalleryHandler) CreateImage(c *gin.Context) {
	var req requests.CreateGalleryImageRequest
	if !bindJSON(c, &req) {
		return
	}

	image, err := h.galleryService.CreateImage(c.Request.Context(), params.CreateGalleryImageParams{
		ImageURL:  req.ImageURL,
		Caption:   req.Caption,
		ProductID: req.ProductID,
	})
	if err != nil {
		handleServiceError(c, err, "Failed to add gallery image")
		return
	}
	sendSuccess(c, http.StatusCreated, helpers.ToGalleryImageResponse(*image))
}

// UploadImage godoc
// @Summary Upload an image to storage and add it to the gallery
// @Tags gallery
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "JPEG, PNG, WebP or GIF image"
// @Param caption formData string false "Caption"
// @Param product_id formData int false "Product ID (default 1)"
// @Success 201 {object} responses.GalleryImageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Security BearerAuth
// @Router /gallery/upload [post]
func (h *GalleryHandler) UploadImage(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, services.MaxImageSize+1<<20)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		sendError(c, http.StatusBadRequest, constants.ImageRequired, err)
		return
	}
	if fileHeader.Size > services.MaxImageSize {
		sendError(c, http.StatusRequestEntityTooLarge, constants.ImageTooLarge, nil)
		return
	}

	var productID int64
	if raw := c.PostForm("product_id"); raw != "" {
		productID, err = strconv.ParseInt(raw, 10, 64)
		if err != nil || productID <= 0 {
			sendError(c, http.StatusBadRequest, "Invalid product_id", err)
			return
		}
	}

	file, err := fileHeader.Open()
	if err != nil {
		sendError(c, http.StatusBadRequest, constants.UploadUnreadable, err)
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		head := make([]byte, 512)
		n, _ := file.Read(head)
		contentType = http.DetectContentType(head[:n])
		if _, err := file.Seek(0, 0); err != nil {
			sendError(c, http.StatusBadRequest, constants.UploadUnreadable, err)
			return
		}
	}

	image, err := h.galleryService.UploadImage(c.Request.Context(), params.UploadGalleryImageParams{
		Filename:    fileHeader.Filename,
		ContentType: contentType,
		Size:        fileHeader.Size,
		Body:        file,
		Caption:     c.PostForm("caption"),
		ProductID:   productID,
	})
	if err != nil {
		handleServiceError(c, err, "Failed to upload image")
		return
	}
	sendSuccess(c, http.StatusCreated, helpers.ToGalleryImageResponse(*image))
}

// DeleteImage godoc
// @Summary Delete a gallery image
// @Tags gallery
// @Produce json
// @Param id path int true "Image ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /gallery/{id} [delete]
func (h *GalleryHandler) DeleteImage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.galleryService.DeleteImage(c.Request.Context(), id); err != nil {
		handleServiceError(c, err, "Failed to delete gallery image")
		return
	}
	sendSuccessMessage(c, "Image deleted")
}

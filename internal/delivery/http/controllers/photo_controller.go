package controllers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"weddinginvite/internal/delivery/http/helpers"
	"weddinginvite/internal/domain"
)

// multipartOverhead is the room allowed for multipart headers and boundaries
// on top of the file itself.
const multipartOverhead = 1 << 20

// PhotoSuccessResponse is the success response envelope for POST /api/admin/clients/{id}/photos (201).
type PhotoSuccessResponse struct {
	Data  *domain.Photo     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// PhotoListSuccessResponse is the success response envelope for GET /api/admin/clients/{id}/photos (200).
type PhotoListSuccessResponse struct {
	Data  []*domain.Photo   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// PhotoController serves admin operations on a client's photos.
type PhotoController struct {
	Logger         *slog.Logger
	Service        domain.PhotoService
	MaxUploadBytes int64
}

func NewPhotoController(logger *slog.Logger, svc domain.PhotoService, maxUploadBytes int64) *PhotoController {
	return &PhotoController{
		Logger:         logger,
		Service:        svc,
		MaxUploadBytes: maxUploadBytes,
	}
}

func (c *PhotoController) tooLarge(w http.ResponseWriter) {
	helpers.WriteJSONError(w, http.StatusRequestEntityTooLarge, helpers.ErrCodePayloadTooLarge,
		fmt.Sprintf("file exceeds %d bytes", c.MaxUploadBytes))
}

// UploadPhoto godoc
// @Summary Upload a photo
// @Description Stores the image at <slug>/<filename> in the photo bucket and records its metadata. Width and height are read from the image and are null when they cannot be determined.
// @Tags photos
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID (UUID)"
// @Param file formData file true "Image file"
// @Success 201 {object} controllers.PhotoSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 413 {object} helpers.APIResponse "error.code: payload_too_large"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /api/admin/clients/{id}/photos [post]
func (c *PhotoController) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	clientID, ok := helpers.PathUUID(w, r, "id")
	if !ok {
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, c.MaxUploadBytes+multipartOverhead)
	file, header, err := r.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			c.tooLarge(w)
			return
		}
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "multipart field \"file\" is required")
		return
	}
	defer file.Close()
	if header.Size > c.MaxUploadBytes {
		c.tooLarge(w)
		return
	}
	data, err := io.ReadAll(io.LimitReader(file, c.MaxUploadBytes+1))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "could not read file")
		return
	}
	if int64(len(data)) > c.MaxUploadBytes {
		c.tooLarge(w)
		return
	}

	photo, err := c.Service.Upload(r.Context(), clientID, domain.PhotoUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, photo)
}

// ListPhotos godoc
// @Summary List a client's photos
// @Tags photos
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID (UUID)"
// @Success 200 {object} controllers.PhotoListSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /api/admin/clients/{id}/photos [get]
func (c *PhotoController) ListPhotos(w http.ResponseWriter, r *http.Request) {
	clientID, ok := helpers.PathUUID(w, r, "id")
	if !ok {
		return
	}
	photos, err := c.Service.List(r.Context(), clientID)
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, photos)
}

// DeletePhoto godoc
// @Summary Delete a photo
// @Description Removes the stored image and its metadata.
// @Tags photos
// @Security BearerAuth
// @Param id path string true "Client ID (UUID)"
// @Param photoID path string true "Photo ID (UUID)"
// @Success 204 "No Content"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /api/admin/clients/{id}/photos/{photoID} [delete]
func (c *PhotoController) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	clientID, ok := helpers.PathUUID(w, r, "id")
	if !ok {
		return
	}
	photoID, ok := helpers.PathUUID(w, r, "photoID")
	if !ok {
		return
	}
	if err := c.Service.Delete(r.Context(), clientID, photoID); err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

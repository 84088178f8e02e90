package handlers

import (
	"errors"
	"net/http"

	"github.com/onebluedot/site/internal/api/types"
	"github.com/onebluedot/site/internal/services"
)

// multipart framing allowance on top of the file limit
const multipartOverhead = 1 << 20

type UploadHandler struct {
	images   services.ImageService
	maxBytes int64
}

func NewUploadHandler(images services.ImageService, maxBytes int64) *UploadHandler {
	return &UploadHandler{images: images, maxBytes: maxBytes}
}

func (h *UploadHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes+multipartOverhead)
	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeErrorStr(w, http.StatusRequestEntityTooLarge, "File too large")
			return
		}
		writeErrorStr(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, hdr, err := r.FormFile("file")
	if err != nil {
		writeErrorStr(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	res, err := h.images.Upload(r.Context(), services.Upload{
		Filename:    hdr.Filename,
		ContentType: hdr.Header.Get("Content-Type"),
		Size:        hdr.Size,
		Body:        file,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.UploadResponse{Success: true, URL: res.URL, Path: res.Path})
}

package handler

import (
	"net/http"

	"go.uber.org/zap"

	"artisan-service/internal/service"
	"artisan-service/pkg/response"
)

const maxUploadBytes = 10 << 20

type UploadHandler struct {
	uploads *service.UploadService
	logger  *zap.Logger
}

func NewUploadHandler(uploads *service.UploadService, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{uploads: uploads, logger: logger}
}

// Upload receives a multipart image, compresses it and stores it in object
// storage, returning the public URL.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		response.Error(w, http.StatusBadRequest, "failed to parse form data")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	url, err := h.uploads.Upload(r.Context(), file)
	if err != nil {
		h.logger.Error("upload failed", zap.Error(err))
		writeServiceError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"url": url})
}

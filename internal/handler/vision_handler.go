package handler

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"artisan-service/internal/service"
	"artisan-service/pkg/response"
	"artisan-service/pkg/xerrors"
)

type VisionHandler struct {
	chat   *service.ChatService
	logger *zap.Logger
}

func NewVisionHandler(chat *service.ChatService, logger *zap.Logger) *VisionHandler {
	return &VisionHandler{chat: chat, logger: logger}
}

type visionRequest struct {
	Image    string `json:"image"`
	SellerID string `json:"seller_id"`
}

// Review has the seller review a student's work from an uploaded image.
func (h *VisionHandler) Review(w http.ResponseWriter, r *http.Request) {
	var req visionRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Image == "" {
		response.Error(w, http.StatusBadRequest, "No image provided")
		return
	}
	if req.SellerID == "" {
		response.Error(w, http.StatusBadRequest, "Seller information missing")
		return
	}

	text, err := h.chat.ReviewImage(r.Context(), req.SellerID, req.Image)
	if err != nil {
		if errors.Is(err, xerrors.ErrProfileNotFound) {
			writeServiceError(w, err)
			return
		}
		h.logger.Warn("vision review failed", zap.String("seller", req.SellerID), zap.Error(err))
		response.Error(w, http.StatusBadGateway, "Failed to analyze image.")
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"text": text})
}

// Analyze describes an image with no persona attached.
func (h *VisionHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req visionRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Image == "" {
		response.Error(w, http.StatusBadRequest, "No image provided")
		return
	}

	text, err := h.chat.AnalyzeImage(r.Context(), req.Image)
	if err != nil {
		h.logger.Warn("image analysis failed", zap.Error(err))
		response.Error(w, http.StatusBadGateway, "Failed to analyze image.")
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"text": text})
}

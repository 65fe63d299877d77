package handler

import (
	"net/http"

	"go.uber.org/zap"

	"artisan-service/internal/service"
	"artisan-service/pkg/response"
)

type PaymentHandler struct {
	payments *service.PaymentService
	logger   *zap.Logger
}

func NewPaymentHandler(payments *service.PaymentService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{payments: payments, logger: logger}
}

type createOrderRequest struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Amount    float64 `json:"amount"`
}

// CreateOrder opens a payment-gateway order after revalidating the amount
// against the price on record.
func (h *PaymentHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ProductID == "" {
		response.Error(w, http.StatusBadRequest, "product_id required")
		return
	}

	order, err := h.payments.CreateOrder(r.Context(), req.ProductID, req.Quantity, req.Amount)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	h.logger.Info("payment order created",
		zap.String("order", order.ID), zap.String("listing", req.ProductID), zap.Int64("amount", order.Amount))
	response.JSON(w, http.StatusCreated, order)
}

type verifyRequest struct {
	OrderID   string `json:"order_id"`
	PaymentID string `json:"payment_id"`
}

// Verify kicks off best-effort payment verification and returns
// immediately; the redirect never waits on the gateway.
func (h *PaymentHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.OrderID == "" || req.PaymentID == "" {
		response.Error(w, http.StatusBadRequest, "order_id and payment_id required")
		return
	}

	h.payments.VerifyAsync(req.OrderID, req.PaymentID)
	response.JSON(w, http.StatusAccepted, map[string]string{"order_id": req.OrderID})
}

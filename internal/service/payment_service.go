package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"artisan-service/internal/domain"
	"artisan-service/internal/provider/razorpay"
	"artisan-service/pkg/xerrors"
)

const orderCurrency = "INR"

// PaymentGateway is the slice of the razorpay client the service needs.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount int64, currency, receipt string, notes map[string]string) (*razorpay.Order, error)
	FetchPayment(ctx context.Context, paymentID string) (*razorpay.Payment, error)
}

type PaymentService struct {
	listings ListingStore
	gateway  PaymentGateway
	logger   *zap.Logger
}

func NewPaymentService(listings ListingStore, gateway PaymentGateway, logger *zap.Logger) *PaymentService {
	return &PaymentService{listings: listings, gateway: gateway, logger: logger}
}

// CreateOrder validates the client-submitted amount against the price on
// record and opens a gateway order in paise. The recorded price is the
// source of truth: any disagreement rejects the request and no order is
// created.
func (s *PaymentService) CreateOrder(ctx context.Context, listingID string, quantity int, submittedAmount float64) (*domain.Order, error) {
	if quantity <= 0 {
		return nil, xerrors.ErrInvalidInput
	}

	listing, err := s.listings.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	// Compare in integer paise to dodge float drift.
	expected := toPaise(listing.Price) * int64(quantity)
	submitted := toPaise(submittedAmount)
	if expected != submitted {
		return nil, xerrors.ErrAmountMismatch
	}

	receipt := fmt.Sprintf("order_%s", uuid.NewString())
	order, err := s.gateway.CreateOrder(ctx, expected, orderCurrency, receipt, map[string]string{
		"productId":   listingID,
		"productName": listing.Name,
		"quantity":    fmt.Sprintf("%d", quantity),
	})
	if err != nil {
		s.logger.Error("order creation failed", zap.String("listing", listingID), zap.Error(err))
		return nil, xerrors.ErrOrderCreation
	}

	return &domain.Order{
		ID:       order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		Receipt:  receipt,
	}, nil
}

// VerifyAsync checks a completed payment with the gateway in the background.
// The outcome is only logged; the caller's redirect never waits on it.
func (s *PaymentService) VerifyAsync(orderID, paymentID string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		p, err := s.gateway.FetchPayment(ctx, paymentID)
		if err != nil {
			s.logger.Warn("payment verification failed",
				zap.String("order", orderID), zap.String("payment", paymentID), zap.Error(err))
			return
		}
		s.logger.Info("payment verified",
			zap.String("order", orderID), zap.String("payment", p.ID), zap.String("status", p.Status))
	}()
}

func toPaise(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

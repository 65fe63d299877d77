package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"artisan-service/internal/domain"
	"artisan-service/internal/provider/razorpay"
	"artisan-service/internal/service"
	"artisan-service/pkg/response"
	"artisan-service/pkg/xerrors"
)

type stubListingStore struct {
	listing *domain.Listing
}

func (s *stubListingStore) Create(context.Context, *domain.Listing) error { return nil }

func (s *stubListingStore) GetByID(_ context.Context, id string) (*domain.Listing, error) {
	if s.listing != nil && s.listing.ID.Hex() == id {
		return s.listing, nil
	}
	return nil, xerrors.ErrListingNotFound
}

func (s *stubListingStore) GetWithSeller(context.Context, string) (*domain.ListingWithSeller, error) {
	return nil, xerrors.ErrListingNotFound
}

func (s *stubListingStore) ListWithSeller(context.Context) ([]domain.ListingWithSeller, error) {
	return nil, nil
}

func (s *stubListingStore) ListByProfile(context.Context, primitive.ObjectID) ([]domain.Listing, error) {
	return nil, nil
}

func (s *stubListingStore) DeleteOwned(context.Context, string, primitive.ObjectID) error {
	return nil
}

type stubGateway struct{ orders int }

func (g *stubGateway) CreateOrder(_ context.Context, amount int64, currency, receipt string, _ map[string]string) (*razorpay.Order, error) {
	g.orders++
	return &razorpay.Order{ID: "order_h1", Amount: amount, Currency: currency, Receipt: receipt}, nil
}

func (g *stubGateway) FetchPayment(_ context.Context, id string) (*razorpay.Payment, error) {
	return &razorpay.Payment{ID: id, Status: "captured"}, nil
}

func postJSON(t *testing.T, h http.HandlerFunc, body string) (*httptest.ResponseRecorder, response.APIResponse) {
	t.Helper()
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h(rec, req)

	var env response.APIResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	return rec, env
}

func TestCreateOrderHandler(t *testing.T) {
	listing := &domain.Listing{ID: primitive.NewObjectID(), Name: "Vase", Price: 250}
	gw := &stubGateway{}
	svc := service.NewPaymentService(&stubListingStore{listing: listing}, gw, zap.NewNop())
	h := NewPaymentHandler(svc, zap.NewNop())

	rec, env := postJSON(t, h.CreateOrder,
		`{"product_id":"`+listing.ID.Hex()+`","quantity":3,"amount":750}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "success", env.Status)
	data, ok := env.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "order_h1", data["id"])
	assert.Equal(t, float64(75000), data["amount"])
	assert.Equal(t, "INR", data["currency"])
	assert.Equal(t, 1, gw.orders)
}

func TestCreateOrderHandlerAmountMismatch(t *testing.T) {
	listing := &domain.Listing{ID: primitive.NewObjectID(), Name: "Vase", Price: 250}
	gw := &stubGateway{}
	svc := service.NewPaymentService(&stubListingStore{listing: listing}, gw, zap.NewNop())
	h := NewPaymentHandler(svc, zap.NewNop())

	rec, env := postJSON(t, h.CreateOrder,
		`{"product_id":"`+listing.ID.Hex()+`","quantity":3,"amount":700}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "error", env.Status)
	assert.Equal(t, "Invalid amount", env.Message)
	assert.Equal(t, 0, gw.orders)
}

func TestCreateOrderHandlerUnknownProduct(t *testing.T) {
	svc := service.NewPaymentService(&stubListingStore{}, &stubGateway{}, zap.NewNop())
	h := NewPaymentHandler(svc, zap.NewNop())

	rec, env := postJSON(t, h.CreateOrder,
		`{"product_id":"000000000000000000000000","quantity":1,"amount":100}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "error", env.Status)
}

func TestVerifyHandlerRespondsImmediately(t *testing.T) {
	svc := service.NewPaymentService(&stubListingStore{}, &stubGateway{}, zap.NewNop())
	h := NewPaymentHandler(svc, zap.NewNop())

	rec, env := postJSON(t, h.Verify, `{"order_id":"order_h1","payment_id":"pay_1"}`)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "success", env.Status)
}

func TestVerifyHandlerRequiresIDs(t *testing.T) {
	svc := service.NewPaymentService(&stubListingStore{}, &stubGateway{}, zap.NewNop())
	h := NewPaymentHandler(svc, zap.NewNop())

	rec, _ := postJSON(t, h.Verify, `{"order_id":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

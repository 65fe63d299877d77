// internal/provider/razorpay/client.go
package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to the Razorpay REST API with basic auth.
type Client struct {
	BaseURL    string
	KeyID      string
	KeySecret  string
	HttpClient *http.Client
}

func NewClient(keyID, keySecret string) *Client {
	return &Client{
		BaseURL:    "https://api.razorpay.com",
		KeyID:      keyID,
		KeySecret:  keySecret,
		HttpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Order is the gateway's order record. Amount is in minor currency units.
type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// Payment is the gateway's payment record, fetched during verification.
type Payment struct {
	ID      string `json:"id"`
	OrderID string `json:"order_id"`
	Amount  int64  `json:"amount"`
	Status  string `json:"status"`
}

// CreateOrder opens an order for the given amount in minor units.
func (c *Client) CreateOrder(ctx context.Context, amount int64, currency, receipt string, notes map[string]string) (*Order, error) {
	payload := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}
	if len(notes) > 0 {
		payload["notes"] = notes
	}

	var order Order
	if err := c.do(ctx, "POST", "/v1/orders", payload, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// FetchPayment looks a payment up by id.
func (c *Client) FetchPayment(ctx context.Context, paymentID string) (*Payment, error) {
	var p Payment
	if err := c.do(ctx, "GET", "/v1/payments/"+paymentID, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewBuffer(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.KeyID, c.KeySecret)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("razorpay %s %s: %s: %s", method, path, resp.Status, string(b))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

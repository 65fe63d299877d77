package domain

// Order is the handle returned to the client after a payment-gateway order
// is opened. Amount is in minor currency units (paise). Orders are never
// persisted locally; the gateway owns the record.
type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt,omitempty"`
}

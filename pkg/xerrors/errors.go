package xerrors

import "errors"

// Generic
var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrInternalServer = errors.New("internal server error")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrNotFound       = errors.New("not found")
	ErrInvalidInput   = errors.New("invalid input provided")
)

// Profiles
var (
	ErrProfileExists   = errors.New("profile already exists for this user")
	ErrProfileNotFound = errors.New("profile not found")

	ErrNameRequired       = errors.New("name required")
	ErrProfessionRequired = errors.New("profession required")
	ErrLocationRequired   = errors.New("village, district and state required")
	ErrPhoneRequired      = errors.New("phone required")
)

// Listings
var (
	ErrListingNotFound  = errors.New("product not found")
	ErrTooManyImages    = errors.New("maximum of 5 images allowed")
	ErrNotListingOwner  = errors.New("listing does not belong to this profile")
	ErrPriceOutOfRange  = errors.New("price must be greater than zero")
)

// Payments
var (
	ErrAmountMismatch = errors.New("invalid amount")
	ErrOrderCreation  = errors.New("failed to create payment order")
)

// Chat
var (
	ErrSessionBusy  = errors.New("a response is already in progress")
	ErrEmptyMessage = errors.New("empty message")
)

// Upload
var (
	ErrNoFile       = errors.New("no file uploaded")
	ErrUploadFailed = errors.New("upload failed")
)

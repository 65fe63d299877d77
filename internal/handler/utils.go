package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"artisan-service/pkg/response"
	"artisan-service/pkg/xerrors"
)

func decodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

// writeServiceError maps service sentinels onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, xerrors.ErrProfileNotFound),
		errors.Is(err, xerrors.ErrListingNotFound),
		errors.Is(err, xerrors.ErrNotFound):
		response.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, xerrors.ErrProfileExists):
		response.Error(w, http.StatusConflict, "Profile already exists for this user")
	case errors.Is(err, xerrors.ErrAmountMismatch):
		response.Error(w, http.StatusBadRequest, "Invalid amount")
	case errors.Is(err, xerrors.ErrOrderCreation):
		response.Error(w, http.StatusBadGateway, "Failed to create payment order")
	case errors.Is(err, xerrors.ErrInvalidInput),
		errors.Is(err, xerrors.ErrNameRequired),
		errors.Is(err, xerrors.ErrProfessionRequired),
		errors.Is(err, xerrors.ErrLocationRequired),
		errors.Is(err, xerrors.ErrPhoneRequired),
		errors.Is(err, xerrors.ErrTooManyImages),
		errors.Is(err, xerrors.ErrPriceOutOfRange):
		response.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, xerrors.ErrNoFile):
		response.Error(w, http.StatusBadRequest, "No file uploaded")
	case errors.Is(err, xerrors.ErrUploadFailed):
		response.Error(w, http.StatusBadGateway, "upload failed")
	case errors.Is(err, xerrors.ErrSessionBusy),
		errors.Is(err, xerrors.ErrEmptyMessage):
		response.Error(w, http.StatusConflict, err.Error())
	default:
		response.Error(w, http.StatusInternalServerError, "internal server error")
	}
}

package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/iho/splitledger/internal/adapter/http/dto"
	"github.com/iho/splitledger/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrFriendNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrNoSelection),
		errors.Is(err, domain.ErrSelectionMismatch),
		errors.Is(err, domain.ErrDuplicateFriendID):
		return http.StatusConflict
	case errors.Is(err, domain.ErrIncompleteFriend),
		errors.Is(err, domain.ErrInvalidFriend),
		errors.Is(err, domain.ErrBillRequired),
		errors.Is(err, domain.ErrExpenseExceedsBill),
		errors.Is(err, domain.ErrNegativeAmount),
		errors.Is(err, domain.ErrInvalidPayer):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

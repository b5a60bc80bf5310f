package api

import (
	"errors"
	"net/http"

	json "github.com/goccy/go-json"
	sdk "github.com/whiteelite/solgate/internal/infrastructure/blockchain/solana"
)

// envelope is the body of every response: data on success, error otherwise.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Failure kinds, used as log fields and metric labels.
const (
	kindRequest         = "request"
	kindDecode          = "decode"
	kindRange           = "range"
	kindBuilder         = "builder"
	kindSigningDisabled = "signing_disabled"
	kindNotFound        = "not_found"
	kindInternal        = "internal"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeData(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: data})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Success: false, Error: message})
}

// classify maps an sdk error onto an HTTP status and failure kind.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, sdk.ErrSigningDisabled):
		return http.StatusForbidden, kindSigningDisabled
	case errors.Is(err, sdk.ErrRange):
		return http.StatusBadRequest, kindRange
	case errors.Is(err, sdk.ErrDecode):
		return http.StatusBadRequest, kindDecode
	case errors.Is(err, sdk.ErrBuilder):
		return http.StatusUnprocessableEntity, kindBuilder
	default:
		return http.StatusInternalServerError, kindInternal
	}
}

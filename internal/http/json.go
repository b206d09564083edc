package httpx

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/api"
)

// DecodeJSON decodes JSON from the request body into the destination and handles errors.
// Returns true if successful, false if there was an error (error response already written).
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_json", Err: err})
		return false
	}

	return true
}

// WriteJSON writes a JSON response with the given status code and data.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := buf.WriteTo(w); err != nil {
		// Response writer errors (e.g., client disconnect) can't be recovered from here.
		return
	}
}

// ErrorParams groups parameters for WriteError.
type ErrorParams struct {
	Code    int
	ErrCode string
	Err     error
}

// WriteError writes a JSON error response using ErrorParams.
func WriteError(w http.ResponseWriter, p ErrorParams) {
	WriteJSON(w, p.Code, map[string]string{"error": p.ErrCode, "message": p.Err.Error()})
}

// WriteBackendError translates a failed backend call into a gateway response.
// Typed backend errors keep their status (status 0 transport failures become
// 502); anything else is a 500. The message shown to the operator follows the
// backend payload's error/message fields when usable.
func WriteBackendError(w http.ResponseWriter, err error, fallback string) {
	code := http.StatusInternalServerError
	errCode := "internal_error"

	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		errCode = "backend_error"
		switch {
		case apiErr.Status == 0:
			code = http.StatusBadGateway
			errCode = "backend_unreachable"
		case apiErr.Status >= 400:
			code = apiErr.Status
		}
	}

	WriteError(w, ErrorParams{
		Code:    code,
		ErrCode: errCode,
		Err:     errors.New(api.MessageFromError(err, fallback)),
	})
}

package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrBodyTooLarge is returned by ParseJSON when the body exceeds the limit
var ErrBodyTooLarge = errors.New("request body too large")

// ParseJSON decodes a single JSON object from the request body into dest.
// Bodies over maxBytes fail with ErrBodyTooLarge; unknown fields are rejected
// so misspelled front matter keys surface to the caller.
func ParseJSON(w http.ResponseWriter, r *http.Request, dest interface{}, maxBytes int64) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dest); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return ErrBodyTooLarge
		}
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if _, err := decoder.Token(); err != io.EOF {
		return errors.New("invalid JSON: unexpected data after object")
	}

	return nil
}

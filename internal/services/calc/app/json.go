package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime"
	"net/http"

	apperrors "github.com/louisbranch/tnl-dmg-calc/internal/platform/errors"
)

// DefaultMaxBodyBytes caps request bodies; stat sheets and full sessions fit
// well below it.
const DefaultMaxBodyBytes = 256 * 1024

func (h *handler) decodeJSON(w http.ResponseWriter, r *http.Request, target any) error {
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mediaType, _, err := mime.ParseMediaType(ct)
		if err != nil || mediaType != "application/json" {
			return apperrors.New(apperrors.CodeUnsupportedMedia, fmt.Sprintf("content type %q", ct))
		}
	}

	body := http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	decoder := json.NewDecoder(body)
	if err := decoder.Decode(target); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return apperrors.Wrap(apperrors.CodePayloadTooLarge, "request body too large", err)
		}
		if errors.Is(err, io.EOF) {
			return apperrors.New(apperrors.CodeInvalidRequest, "request body is empty")
		}
		return apperrors.Wrap(apperrors.CodeInvalidRequest, fmt.Sprintf("decode request: %v", err), err)
	}
	if decoder.More() {
		return apperrors.New(apperrors.CodeInvalidRequest, "request body has trailing data")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("calc: write response: %v", err)
	}
}

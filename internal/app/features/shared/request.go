// internal/app/features/shared/request.go
package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rotahub/rotahub/internal/app/system/htmlsanitize"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultActor is used when a request carries no X-Actor-ID header.
// BuildHandler overrides it from config at startup, before the router
// serves traffic.
var DefaultActor = "system"

// SetDefaultActor replaces the fallback actor id. Not safe to call
// once requests are being served.
func SetDefaultActor(id string) {
	if strings.TrimSpace(id) != "" {
		DefaultActor = htmlsanitize.StripTags(id)
	}
}

const maxBodyBytes = 1 << 20

// Actor returns the acting user id for audit stamping, taken from the
// X-Actor-ID header. The value is stripped of any markup before it is
// stored on documents.
func Actor(r *http.Request) string {
	actor := strings.TrimSpace(r.Header.Get("X-Actor-ID"))
	if actor == "" {
		return DefaultActor
	}
	return htmlsanitize.StripTags(actor)
}

// URLObjectID parses the named chi URL parameter as an ObjectID.
func URLObjectID(r *http.Request, key string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(chi.URLParam(r, key))
}

// DecodeJSON reads the request body into dst, rejecting oversized
// bodies and unknown fields.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	// A second document in the body is a malformed request.
	if dec.More() {
		return errors.New("unexpected trailing data")
	}
	return nil
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

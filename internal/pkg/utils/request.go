package utils

import (
	"cosmek-web/internal/pkg/constvars"
	"cosmek-web/internal/pkg/exceptions"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// ParseIDParam reads a positive integer URL parameter.
func ParseIDParam(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, exceptions.ErrURLParamIDValidation(err, name)
	}
	if id <= 0 {
		return 0, exceptions.ErrURLParamIDValidation(nil, name)
	}
	return id, nil
}

// SafeReturnPath keeps redirects on this site: only absolute local paths are
// accepted, anything else falls back.
func SafeReturnPath(raw, fallback string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.HasPrefix(raw, "/\\") {
		return fallback
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host != "" || parsed.Scheme != "" {
		return fallback
	}
	return parsed.RequestURI()
}

func IsFragmentRequest(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get(constvars.HeaderXRequestedWith), constvars.HeaderValueFetch)
}

func RequestIDFromContext(r *http.Request) string {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}

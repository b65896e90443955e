package middlewares

import (
	"context"
	"cosmek-web/internal/app/models"
	"cosmek-web/internal/pkg/constvars"
	"net/http"
)

// Theme resolves the visitor theme once per request: the cookie wins,
// otherwise the process-wide default applies.
func (m *Middlewares) Theme(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		theme := m.ThemeStore.Get()
		if cookie, err := r.Cookie(m.InternalConfig.Theme.CookieName); err == nil {
			if parsed, ok := models.ParseTheme(cookie.Value); ok {
				theme = parsed
			}
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_THEME_KEY, theme)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

package middlewares

import (
	"cosmek-web/internal/app/delivery/http/views"
	"cosmek-web/internal/pkg/constvars"
	"cosmek-web/internal/pkg/exceptions"
	"cosmek-web/internal/pkg/utils"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				var err error
				switch x := rec.(type) {
				case string:
					err = errors.New(x)
				case error:
					err = x
				default:
					err = fmt.Errorf("unknown panic: %v", x)
				}

				customErr := exceptions.ErrServerPanic(err)
				m.Log.Error("recovered from panic",
					zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(r)),
					zap.String(constvars.LoggingEndpointKey, r.URL.Path),
					zap.Error(err),
				)

				if m.Renderer == nil || wantsJSON(r) {
					utils.BuildErrorResponse(m.Log, w, customErr)
					return
				}

				page := views.NewPage(r, "Something went wrong")
				page.Error = constvars.ErrClientSomethingWrongWithApplication
				renderErr := m.Renderer.RenderPage(w, customErr.StatusCode, views.PageError, page)
				if renderErr != nil {
					http.Error(w, constvars.ErrClientSomethingWrongWithApplication, customErr.StatusCode)
				}
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get(constvars.HeaderAccept), constvars.MIMEApplicationJSON)
}

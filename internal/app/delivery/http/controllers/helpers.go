package controllers

import (
	"context"
	"cosmek-web/internal/app/delivery/http/views"
	"cosmek-web/internal/pkg/constvars"
	"cosmek-web/internal/pkg/exceptions"
	"cosmek-web/internal/pkg/utils"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

const defaultRequestTimeoutInSeconds = 15

func requestContext(r *http.Request, timeoutInSeconds int) (context.Context, context.CancelFunc) {
	if timeoutInSeconds <= 0 {
		timeoutInSeconds = defaultRequestTimeoutInSeconds
	}
	return context.WithTimeout(r.Context(), time.Duration(timeoutInSeconds)*time.Second)
}

// renderPage writes the page or, when the template fails, a bare 500.
func renderPage(log *zap.Logger, renderer *views.Renderer, w http.ResponseWriter, code int, name string, page *views.Page) {
	err := renderer.RenderPage(w, code, name, page)
	if err != nil {
		logRenderError(log, err)
		http.Error(w, constvars.ErrClientSomethingWrongWithApplication, constvars.StatusInternalServerError)
	}
}

func renderFragment(log *zap.Logger, renderer *views.Renderer, w http.ResponseWriter, code int, name string, data interface{}) {
	err := renderer.RenderFragment(w, code, name, data)
	if err != nil {
		logRenderError(log, err)
		http.Error(w, constvars.ErrClientSomethingWrongWithApplication, constvars.StatusInternalServerError)
	}
}

func logRenderError(log *zap.Logger, err error) {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		utils.LogCustomError(log, customErr)
		return
	}
	log.Error("failed to render response", zap.Error(err))
}

// failureStatus is the status of a page that could not be served. A caller
// deadline is reported as a gateway timeout.
func failureStatus(err error) int {
	if errors.Is(err, context.DeadlineExceeded) {
		return constvars.StatusGatewayTimeout
	}
	return exceptions.StatusCode(err)
}

func formValue(r *http.Request, field string) string {
	return strings.TrimSpace(r.PostForm.Get(field))
}

// atoi is lenient: anything unparsable is zero, which validation rejects.
func atoi(raw string) int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return value
}

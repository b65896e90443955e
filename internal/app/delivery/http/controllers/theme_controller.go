package controllers

import (
	"cosmek-web/internal/app/config"
	"cosmek-web/internal/app/models"
	"cosmek-web/internal/pkg/constvars"
	"cosmek-web/internal/pkg/exceptions"
	"cosmek-web/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

const themeCookieMaxAgeInSeconds = 365 * 24 * 60 * 60

type ThemeController struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
}

func NewThemeController(logger *zap.Logger, internalConfig *config.InternalConfig) *ThemeController {
	return &ThemeController{
		Log:            logger,
		InternalConfig: internalConfig,
	}
}

// Toggle flips the visitor theme and sends them back where they came from.
func (ctrl *ThemeController) Toggle(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r)

	current, ok := r.Context().Value(constvars.CONTEXT_THEME_KEY).(models.Theme)
	if !ok {
		current = models.ThemeLight
	}
	next := current.Toggle()

	ctrl.Log.Info("ThemeController.Toggle called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingThemeKey, string(next)),
	)

	if err := r.ParseForm(); err != nil {
		customErr := exceptions.ErrCannotParseForm(err)
		ctrl.Log.Error("ThemeController.Toggle error parsing form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(customErr),
		)
		http.Error(w, customErr.ClientMessage, customErr.StatusCode)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     ctrl.InternalConfig.Theme.CookieName,
		Value:    string(next),
		Path:     "/",
		MaxAge:   themeCookieMaxAgeInSeconds,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, utils.SafeReturnPath(r.PostForm.Get(constvars.FormFieldReturnTo), "/"), constvars.StatusSeeOther)
}

package controllers

import (
	"cosmek-web/internal/app/delivery/http/views"
	"cosmek-web/internal/pkg/constvars"
	"net/http"

	"go.uber.org/zap"
)

type PageController struct {
	Log      *zap.Logger
	Renderer *views.Renderer
}

func NewPageController(logger *zap.Logger, renderer *views.Renderer) *PageController {
	return &PageController{
		Log:      logger,
		Renderer: renderer,
	}
}

func (ctrl *PageController) Home(w http.ResponseWriter, r *http.Request) {
	renderPage(ctrl.Log, ctrl.Renderer, w, constvars.StatusOK, views.PageHome, views.NewPage(r, ""))
}

func (ctrl *PageController) About(w http.ResponseWriter, r *http.Request) {
	renderPage(ctrl.Log, ctrl.Renderer, w, constvars.StatusOK, views.PageAbout, views.NewPage(r, "About"))
}

func (ctrl *PageController) NotFound(w http.ResponseWriter, r *http.Request) {
	page := views.NewPage(r, "Page not found")
	page.Error = constvars.ErrClientPageNotFound
	renderPage(ctrl.Log, ctrl.Renderer, w, constvars.StatusNotFound, views.PageError, page)
}

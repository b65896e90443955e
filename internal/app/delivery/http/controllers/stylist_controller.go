package controllers

import (
	"cosmek-web/internal/app/config"
	"cosmek-web/internal/app/contracts"
	"cosmek-web/internal/app/delivery/http/views"
	"cosmek-web/internal/pkg/constvars"
	"cosmek-web/internal/pkg/dto/requests"
	"cosmek-web/internal/pkg/exceptions"
	"cosmek-web/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type StylistController struct {
	Log            *zap.Logger
	Renderer       *views.Renderer
	InternalConfig *config.InternalConfig
	StylistUsecase contracts.StylistUsecase
}

func NewStylistController(logger *zap.Logger, renderer *views.Renderer, internalConfig *config.InternalConfig, stylistUsecase contracts.StylistUsecase) *StylistController {
	return &StylistController{
		Log:            logger,
		Renderer:       renderer,
		InternalConfig: internalConfig,
		StylistUsecase: stylistUsecase,
	}
}

func (ctrl *StylistController) List(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r)
	ctrl.Log.Info("StylistController.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := requestContext(r, ctrl.InternalConfig.App.RequestTimeoutInSeconds)
	defer cancel()

	page := views.NewPage(r, "Stylists")
	stylists, err := ctrl.StylistUsecase.ListStylists(ctx)
	if err != nil {
		ctrl.Log.Error("StylistController.List error in StylistUsecase.ListStylists",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		page.Error = constvars.ErrClientLoadStylists
		renderPage(ctrl.Log, ctrl.Renderer, w, failureStatus(err), views.PageStylists, page)
		return
	}

	page.Data = stylists
	ctrl.Log.Info("StylistController.List succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(stylists)),
	)
	renderPage(ctrl.Log, ctrl.Renderer, w, constvars.StatusOK, views.PageStylists, page)
}

func (ctrl *StylistController) New(w http.ResponseWriter, r *http.Request) {
	renderPage(ctrl.Log, ctrl.Renderer, w, constvars.StatusOK, views.PageStylistNew, views.NewPage(r, "Add Stylist"))
}

func (ctrl *StylistController) Create(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r)
	ctrl.Log.Info("StylistController.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	page := views.NewPage(r, "Add Stylist")
	if err := r.ParseForm(); err != nil {
		ctrl.Log.Error("StylistController.Create error parsing form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		page.Error = exceptions.ErrCannotParseForm(err).ClientMessage
		renderPage(ctrl.Log, ctrl.Renderer, w, constvars.StatusBadRequest, views.PageStylistNew, page)
		return
	}
	page.Form = r.PostForm

	request := &requests.CreateStylist{
		Name:  formValue(r, constvars.FormFieldName),
		Email: formValue(r, constvars.FormFieldEmail),
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig.App.RequestTimeoutInSeconds)
	defer cancel()

	stylist, err := ctrl.StylistUsecase.CreateStylist(ctx, request)
	if err != nil {
		ctrl.Log.Error("StylistController.Create error in StylistUsecase.CreateStylist",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		page.Error = exceptions.ClientMessage(err, constvars.ErrClientCreateStylist)
		renderPage(ctrl.Log, ctrl.Renderer, w, failureStatus(err), views.PageStylistNew, page)
		return
	}

	ctrl.Log.Info("StylistController.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingStylistIDKey, stylist.ID),
	)
	page.Success = constvars.CreateStylistSuccessMessage
	page.RedirectURL = "/stylists"
	renderPage(ctrl.Log, ctrl.Renderer, w, constvars.StatusOK, views.PageStylistNew, page)
}

func (ctrl *StylistController) Detail(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r)
	page := views.NewPage(r, "Stylist")

	stylistID, err := utils.ParseIDParam(r, constvars.URLParamStylistID)
	if err != nil {
		page.Error = constvars.ErrClientStylistNotFound
		renderPage(ctrl.Log, ctrl.Renderer, w, constvars.StatusNotFound, views.PageStylistDetail, page)
		return
	}
	ctrl.Log.Info("StylistController.Detail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingStylistIDKey, stylistID),
	)

	ctx, cancel := requestContext(r, ctrl.InternalConfig.App.RequestTimeoutInSeconds)
	defer cancel()

	profile, err := ctrl.StylistUsecase.GetStylistProfile(ctx, stylistID)
	if err != nil {
		ctrl.Log.Error("StylistController.Detail error in StylistUsecase.GetStylistProfile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		code := failureStatus(err)
		page.Error = constvars.ErrClientLoadStylistDetails
		if code == constvars.StatusNotFound {
			page.Error = constvars.ErrClientStylistNotFound
		}
		renderPage(ctrl.Log, ctrl.Renderer, w, code, views.PageStylistDetail, page)
		return
	}

	page.Title = profile.Stylist.Name
	page.Data = profile
	ctrl.Log.Info("StylistController.Detail succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingStylistIDKey, stylistID),
	)
	renderPage(ctrl.Log, ctrl.Renderer, w, constvars.StatusOK, views.PageStylistDetail, page)
}

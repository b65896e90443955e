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

const appointmentsPath = "/appointments"

type AppointmentController struct {
	Log                *zap.Logger
	Renderer           *views.Renderer
	InternalConfig     *config.InternalConfig
	AppointmentUsecase contracts.AppointmentUsecase
}

func NewAppointmentController(logger *zap.Logger, renderer *views.Renderer, internalConfig *config.InternalConfig, appointmentUsecase contracts.AppointmentUsecase) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		Renderer:           renderer,
		InternalConfig:     internalConfig,
		AppointmentUsecase: appointmentUsecase,
	}
}

func (ctrl *AppointmentController) List(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r)
	filter := r.URL.Query().Get(constvars.URLQueryParamStatus)
	ctrl.Log.Info("AppointmentController.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFilterKey, filter),
	)

	ctx, cancel := requestContext(r, ctrl.InternalConfig.App.RequestTimeoutInSeconds)
	defer cancel()

	page := views.NewPage(r, "Appointments")
	list, err := ctrl.AppointmentUsecase.ListAppointments(ctx, filter)
	if err != nil {
		ctrl.Log.Error("AppointmentController.List error in AppointmentUsecase.ListAppointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		page.Error = constvars.ErrClientLoadAppointments
		renderPage(ctrl.Log, ctrl.Renderer, w, failureStatus(err), views.PageAppointments, page)
		return
	}

	page.Data = list
	ctrl.Log.Info("AppointmentController.List succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(list.Appointments)),
	)
	renderPage(ctrl.Log, ctrl.Renderer, w, constvars.StatusOK, views.PageAppointments, page)
}

// Cancel answers in-page requests with the refreshed card and plain form
// posts with a redirect back to return_to.
func (ctrl *AppointmentController) Cancel(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r)
	fragment := utils.IsFragmentRequest(r)

	appointmentID, err := utils.ParseIDParam(r, constvars.URLParamAppointmentID)
	if err != nil {
		ctrl.fail(w, r, fragment, exceptions.StatusCode(err), constvars.ErrClientCancelAppointment)
		return
	}
	ctrl.Log.Info("AppointmentController.Cancel called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	if err := r.ParseForm(); err != nil {
		customErr := exceptions.ErrCannotParseForm(err)
		ctrl.Log.Error("AppointmentController.Cancel error parsing form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(customErr),
		)
		ctrl.fail(w, r, fragment, customErr.StatusCode, customErr.ClientMessage)
		return
	}
	returnTo := utils.SafeReturnPath(r.PostForm.Get(constvars.FormFieldReturnTo), appointmentsPath)

	ctx, cancel := requestContext(r, ctrl.InternalConfig.App.RequestTimeoutInSeconds)
	defer cancel()

	card, err := ctrl.AppointmentUsecase.CancelAppointment(ctx, appointmentID)
	if err != nil {
		ctrl.Log.Error("AppointmentController.Cancel error in AppointmentUsecase.CancelAppointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		ctrl.fail(w, r, fragment, failureStatus(err), exceptions.ClientMessage(err, constvars.ErrClientCancelAppointment))
		return
	}

	ctrl.Log.Info("AppointmentController.Cancel succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	if fragment {
		renderFragment(ctrl.Log, ctrl.Renderer, w, constvars.StatusOK, views.FragmentAppointmentCard, views.CardView{Card: *card, ReturnTo: returnTo})
		return
	}
	http.Redirect(w, r, returnTo, constvars.StatusSeeOther)
}

func (ctrl *AppointmentController) fail(w http.ResponseWriter, r *http.Request, fragment bool, code int, message string) {
	if fragment {
		http.Error(w, message, code)
		return
	}
	page := views.NewPage(r, "Appointments")
	page.Error = message
	renderPage(ctrl.Log, ctrl.Renderer, w, code, views.PageError, page)
}

func (ctrl *AppointmentController) RescheduleForm(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r)
	page := views.NewPage(r, "Reschedule Appointment")

	appointmentID, err := utils.ParseIDParam(r, constvars.URLParamAppointmentID)
	if err != nil {
		page.Error = constvars.ErrClientLoadAppointment
		renderPage(ctrl.Log, ctrl.Renderer, w, exceptions.StatusCode(err), views.PageReschedule, page)
		return
	}

	query := r.URL.Query()
	date := query.Get(constvars.URLQueryParamDate)
	ctrl.Log.Info("AppointmentController.RescheduleForm called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingDateKey, date),
	)

	ctx, cancel := requestContext(r, ctrl.InternalConfig.App.RequestTimeoutInSeconds)
	defer cancel()

	form, err := ctrl.AppointmentUsecase.GetRescheduleForm(ctx, appointmentID, date)
	if err != nil {
		ctrl.Log.Error("AppointmentController.RescheduleForm error in AppointmentUsecase.GetRescheduleForm",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		page.Error = exceptions.ClientMessage(err, constvars.ErrClientLoadAppointment)
		renderPage(ctrl.Log, ctrl.Renderer, w, failureStatus(err), views.PageReschedule, page)
		return
	}

	form.Selection.Selected = query.Get(constvars.URLQueryParamTime)
	page.Data = form
	renderPage(ctrl.Log, ctrl.Renderer, w, constvars.StatusOK, views.PageReschedule, page)
}

func (ctrl *AppointmentController) Reschedule(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r)
	page := views.NewPage(r, "Reschedule Appointment")

	appointmentID, err := utils.ParseIDParam(r, constvars.URLParamAppointmentID)
	if err != nil {
		page.Error = constvars.ErrClientRescheduleAppointment
		renderPage(ctrl.Log, ctrl.Renderer, w, exceptions.StatusCode(err), views.PageReschedule, page)
		return
	}
	ctrl.Log.Info("AppointmentController.Reschedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	if err := r.ParseForm(); err != nil {
		page.Error = exceptions.ErrCannotParseForm(err).ClientMessage
		renderPage(ctrl.Log, ctrl.Renderer, w, constvars.StatusBadRequest, views.PageReschedule, page)
		return
	}
	page.Form = r.PostForm

	request := &requests.RescheduleAppointmentForm{
		Date: formValue(r, constvars.FormFieldDate),
		Time: formValue(r, constvars.FormFieldTime),
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig.App.RequestTimeoutInSeconds)
	defer cancel()

	card, err := ctrl.AppointmentUsecase.RescheduleAppointment(ctx, appointmentID, request)
	if err != nil {
		ctrl.Log.Error("AppointmentController.Reschedule error in AppointmentUsecase.RescheduleAppointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		page.Error = exceptions.ClientMessage(err, constvars.ErrClientRescheduleAppointment)

		// the form is shown again with the visitor's choice kept
		form, formErr := ctrl.AppointmentUsecase.GetRescheduleForm(ctx, appointmentID, request.Date)
		if formErr == nil {
			form.Selection.Selected = request.Time
			page.Data = form
		}
		renderPage(ctrl.Log, ctrl.Renderer, w, failureStatus(err), views.PageReschedule, page)
		return
	}

	ctrl.Log.Info("AppointmentController.Reschedule succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, card.ID),
	)
	page.Success = constvars.RescheduleAppointmentSuccessMessage
	page.RedirectURL = appointmentsPath
	renderPage(ctrl.Log, ctrl.Renderer, w, constvars.StatusOK, views.PageReschedule, page)
}

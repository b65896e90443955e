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
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingController struct {
	Log            *zap.Logger
	Renderer       *views.Renderer
	InternalConfig *config.InternalConfig
	BookingUsecase contracts.BookingUsecase
}

func NewBookingController(logger *zap.Logger, renderer *views.Renderer, internalConfig *config.InternalConfig, bookingUsecase contracts.BookingUsecase) *BookingController {
	return &BookingController{
		Log:            logger,
		Renderer:       renderer,
		InternalConfig: internalConfig,
		BookingUsecase: bookingUsecase,
	}
}

// bookingQuery reads the selections from values. A stylist in the path wins
// over the query string.
func bookingQuery(r *http.Request, values url.Values) *requests.BookingFormQuery {
	stylistID := atoi(chi.URLParam(r, constvars.URLParamStylistID))
	if stylistID <= 0 {
		stylistID = atoi(values.Get(constvars.URLQueryParamStylistID))
	}
	return &requests.BookingFormQuery{
		StylistID: stylistID,
		Date:      values.Get(constvars.URLQueryParamDate),
		Duration:  atoi(values.Get(constvars.URLQueryParamDuration)),
	}
}

func (ctrl *BookingController) Form(w http.ResponseWriter, r *http.Request) {
	ctrl.Log.Info("BookingController.Form called",
		zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(r)),
	)
	ctrl.showForm(w, r, r.URL.Query())
}

// Check re-renders the form for the selected stylist, date and duration
// without booking. It is posted so customer details stay out of URLs.
func (ctrl *BookingController) Check(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r)
	ctrl.Log.Info("BookingController.Check called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := r.ParseForm(); err != nil {
		ctrl.Log.Error("BookingController.Check error parsing form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		page := views.NewPage(r, "Book Appointment")
		page.Error = exceptions.ErrCannotParseForm(err).ClientMessage
		renderPage(ctrl.Log, ctrl.Renderer, w, constvars.StatusBadRequest, views.PageBook, page)
		return
	}
	ctrl.showForm(w, r, r.PostForm)
}

func (ctrl *BookingController) showForm(w http.ResponseWriter, r *http.Request, values url.Values) {
	requestID := utils.RequestIDFromContext(r)
	query := bookingQuery(r, values)
	ctrl.Log.Info("BookingController.showForm loading form",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingStylistIDKey, query.StylistID),
		zap.String(constvars.LoggingDateKey, query.Date),
	)

	ctx, cancel := requestContext(r, ctrl.InternalConfig.App.RequestTimeoutInSeconds)
	defer cancel()

	page := views.NewPage(r, "Book Appointment")
	page.Form = values

	form, err := ctrl.BookingUsecase.LoadBookingForm(ctx, query)
	if err != nil {
		ctrl.Log.Error("BookingController.showForm error in BookingUsecase.LoadBookingForm",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		page.Error = exceptions.ClientMessage(err, constvars.ErrClientLoadStylists)
		renderPage(ctrl.Log, ctrl.Renderer, w, failureStatus(err), views.PageBook, page)
		return
	}

	form.Selection.Selected = values.Get(constvars.URLQueryParamTime)
	page.Data = form
	renderPage(ctrl.Log, ctrl.Renderer, w, constvars.StatusOK, views.PageBook, page)
}

// Slots renders the time slot select alone for in-page refreshes.
func (ctrl *BookingController) Slots(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r)
	query := bookingQuery(r, r.URL.Query())
	ctrl.Log.Info("BookingController.Slots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingStylistIDKey, query.StylistID),
		zap.String(constvars.LoggingDateKey, query.Date),
	)

	ctx, cancel := requestContext(r, ctrl.InternalConfig.App.RequestTimeoutInSeconds)
	defer cancel()

	selection, err := ctrl.BookingUsecase.LoadSlots(ctx, query)
	if err != nil {
		ctrl.Log.Error("BookingController.Slots error in BookingUsecase.LoadSlots",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		http.Error(w, constvars.ErrClientLoadAvailableSlots, failureStatus(err))
		return
	}

	w.Header().Set(constvars.HeaderCacheControl, "no-store")
	renderFragment(ctrl.Log, ctrl.Renderer, w, constvars.StatusOK, views.FragmentSlotSelect, selection)
}

func (ctrl *BookingController) Book(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r)
	ctrl.Log.Info("BookingController.Book called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	page := views.NewPage(r, "Book Appointment")
	if err := r.ParseForm(); err != nil {
		page.Error = exceptions.ErrCannotParseForm(err).ClientMessage
		renderPage(ctrl.Log, ctrl.Renderer, w, constvars.StatusBadRequest, views.PageBook, page)
		return
	}
	page.Form = r.PostForm

	request := &requests.BookAppointment{
		Name:      formValue(r, constvars.FormFieldName),
		Email:     formValue(r, constvars.FormFieldEmail),
		Phone:     formValue(r, constvars.FormFieldPhone),
		StylistID: atoi(r.PostForm.Get(constvars.FormFieldStylistID)),
		Date:      formValue(r, constvars.FormFieldDate),
		Time:      formValue(r, constvars.FormFieldTime),
		Duration:  atoi(r.PostForm.Get(constvars.FormFieldDuration)),
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig.App.RequestTimeoutInSeconds)
	defer cancel()

	card, err := ctrl.BookingUsecase.BookAppointment(ctx, request)
	if err != nil {
		ctrl.Log.Error("BookingController.Book error in BookingUsecase.BookAppointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		page.Error = exceptions.ClientMessage(err, constvars.ErrClientBookAppointment)

		form, formErr := ctrl.BookingUsecase.LoadBookingForm(ctx, &requests.BookingFormQuery{
			StylistID: request.StylistID,
			Date:      request.Date,
			Duration:  request.Duration,
		})
		if formErr == nil {
			form.Selection.Selected = request.Time
			page.Data = form
		}
		renderPage(ctrl.Log, ctrl.Renderer, w, failureStatus(err), views.PageBook, page)
		return
	}

	ctrl.Log.Info("BookingController.Book succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, card.ID),
	)
	page.Success = constvars.BookAppointmentSuccessMessage
	page.RedirectURL = appointmentsPath
	renderPage(ctrl.Log, ctrl.Renderer, w, constvars.StatusOK, views.PageBook, page)
}

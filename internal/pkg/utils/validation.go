package utils

import (
	"cosmek-web/internal/pkg/constvars"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	validate   *validator.Validate
	phoneRegex = regexp.MustCompile(`^\+?[0-9 ()\-.]{7,20}$`)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("phone_number", validatePhoneNumber)
	validate.RegisterValidation("not_past_date", validateNotPastDate)
	validate.RegisterValidation("appointment_state", validateAppointmentState)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	return phoneRegex.MatchString(fl.Field().String())
}

// validateNotPastDate accepts YYYY-MM-DD dates from today onwards, today
// being evaluated in time.Local (the salon timezone once the app boots).
func validateNotPastDate(fl validator.FieldLevel) bool {
	date, err := time.ParseInLocation(constvars.LayoutDate, fl.Field().String(), time.Local)
	if err != nil {
		return false
	}
	return !date.Before(StartOfDay(time.Now(), time.Local))
}

func validateAppointmentState(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.AppointmentStatusScheduled, constvars.AppointmentStatusCompleted, constvars.AppointmentStatusCancelled:
		return true
	}
	return false
}

package availability

import (
	"context"
	"cosmek-web/internal/app/contracts"
	"cosmek-web/internal/pkg/constvars"
	"cosmek-web/internal/pkg/dto/requests"
	"cosmek-web/internal/pkg/dto/responses"
	"cosmek-web/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type SlotFinder struct {
	StylistClient contracts.StylistClient
	Location      *time.Location
	Log           *zap.Logger
}

func NewSlotFinder(stylistClient contracts.StylistClient, location *time.Location, logger *zap.Logger) *SlotFinder {
	return &SlotFinder{
		StylistClient: stylistClient,
		Location:      location,
		Log:           logger,
	}
}

// Find resolves the slot select box for one stylist, date and duration. The
// availability call is only made once both a stylist and a date are chosen.
// A failed call is reported through Selection.Error, never as an error.
func (f *SlotFinder) Find(ctx context.Context, stylistID int, date string, duration int) responses.SlotSelection {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	selection := responses.SlotSelection{
		StylistID: stylistID,
		Date:      date,
		Duration:  duration,
		Slots:     []responses.TimeSlot{},
		Disabled:  true,
	}

	if stylistID <= 0 || date == "" {
		selection.Placeholder = constvars.SlotPlaceholderSelectFirst
		return selection
	}

	availability, err := f.StylistClient.FindAvailability(ctx, &requests.FindAvailability{
		StylistID: stylistID,
		Date:      date,
		Duration:  duration,
	})
	if err != nil {
		f.Log.Error("SlotFinder.Find error fetching availability",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStylistIDKey, stylistID),
			zap.String(constvars.LoggingDateKey, date),
			zap.Error(err),
		)
		selection.Placeholder = constvars.SlotPlaceholderNone
		selection.Error = constvars.ErrClientLoadAvailableSlots
		return selection
	}

	slots, skipped := utils.BuildTimeSlots(availability.AvailableSlots, f.Location)
	if len(skipped) > 0 {
		f.Log.Warn("SlotFinder.Find skipped unparseable slots",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Strings(constvars.LoggingResponseKey, skipped),
		)
	}
	selection.Slots = slots

	if len(slots) == 0 {
		selection.Placeholder = constvars.SlotPlaceholderNone
		return selection
	}
	selection.Placeholder = constvars.SlotPlaceholderChoose
	selection.Disabled = false
	return selection
}

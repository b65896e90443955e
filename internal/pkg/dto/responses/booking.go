package responses

type TimeSlot struct {
	Value     string
	Label     string
	Timestamp string
}

// SlotSelection is the state of the time slot select box. Error is set when
// the availability fetch failed; the rest of the form stays usable.
type SlotSelection struct {
	StylistID   int
	Date        string
	Duration    int
	Slots       []TimeSlot
	Placeholder string
	Disabled    bool
	Error       string
	// Selected is the slot value to keep selected when a form is re-rendered.
	Selected string
}

type DurationOption struct {
	Minutes  int
	Selected bool
}

type BookingForm struct {
	Stylists          []Stylist
	SelectedStylistID int
	MinDate           string
	Durations         []DurationOption
	Selection         SlotSelection
}

type RescheduleForm struct {
	Appointment AppointmentCard
	MinDate     string
	Selection   SlotSelection
}

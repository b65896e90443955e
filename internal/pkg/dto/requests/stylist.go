package requests

type CreateStylist struct {
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"required,email"`
}

type FindAvailability struct {
	StylistID int    `validate:"required,gt=0"`
	Date      string `validate:"required,datetime=2006-01-02"`
	Duration  int    `validate:"required,gt=0"`
}

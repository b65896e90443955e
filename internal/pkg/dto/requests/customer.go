package requests

type CreateCustomer struct {
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,phone_number"`
}

// CreateCustomerEnvelope is the wire shape of POST /customers.
type CreateCustomerEnvelope struct {
	Customer CreateCustomer `json:"customer"`
}

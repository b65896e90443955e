package customers

import (
	"context"
	"cosmek-web/internal/app/contracts"
	"cosmek-web/internal/app/services/salon_api"
	"cosmek-web/internal/pkg/constvars"
	"cosmek-web/internal/pkg/dto/requests"
	"cosmek-web/internal/pkg/dto/responses"
	"fmt"
)

type customerClient struct {
	transport *salon_api.Transport
}

func NewCustomerClient(transport *salon_api.Transport) contracts.CustomerClient {
	return &customerClient{transport: transport}
}

func (c *customerClient) FindAll(ctx context.Context) ([]responses.Customer, error) {
	var customers []responses.Customer
	err := c.transport.Do(ctx, salon_api.Call{
		Method:         constvars.MethodGet,
		Path:           constvars.ResourceCustomers,
		Out:            &customers,
		FailureMessage: constvars.ErrClientCannotProcessRequest,
	})
	if err != nil {
		return nil, err
	}
	return customers, nil
}

func (c *customerClient) FindByID(ctx context.Context, customerID int) (*responses.Customer, error) {
	customer := new(responses.Customer)
	err := c.transport.Do(ctx, salon_api.Call{
		Method:         constvars.MethodGet,
		Path:           fmt.Sprintf("%s/%d", constvars.ResourceCustomers, customerID),
		Out:            customer,
		FailureMessage: constvars.ErrClientCannotProcessRequest,
	})
	if err != nil {
		return nil, err
	}
	return customer, nil
}

// Create posts the customer wrapped in its envelope, {"customer": {...}}.
func (c *customerClient) Create(ctx context.Context, request *requests.CreateCustomer) (*responses.Customer, error) {
	customer := new(responses.Customer)
	err := c.transport.Do(ctx, salon_api.Call{
		Method:         constvars.MethodPost,
		Path:           constvars.ResourceCustomers,
		Body:           requests.CreateCustomerEnvelope{Customer: *request},
		Out:            customer,
		FailureMessage: constvars.ErrClientBookAppointment,
	})
	if err != nil {
		return nil, err
	}
	return customer, nil
}

package stylists

import (
	"context"
	"cosmek-web/internal/app/contracts"
	"cosmek-web/internal/app/services/salon_api"
	"cosmek-web/internal/pkg/constvars"
	"cosmek-web/internal/pkg/dto/requests"
	"cosmek-web/internal/pkg/dto/responses"
	"fmt"
	"net/url"
	"strconv"
)

type stylistClient struct {
	transport *salon_api.Transport
}

func NewStylistClient(transport *salon_api.Transport) contracts.StylistClient {
	return &stylistClient{transport: transport}
}

func (c *stylistClient) FindAll(ctx context.Context) ([]responses.Stylist, error) {
	var stylists []responses.Stylist
	err := c.transport.Do(ctx, salon_api.Call{
		Method:         constvars.MethodGet,
		Path:           constvars.ResourceStylists,
		Out:            &stylists,
		FailureMessage: constvars.ErrClientLoadStylists,
	})
	if err != nil {
		return nil, err
	}
	return stylists, nil
}

func (c *stylistClient) FindByID(ctx context.Context, stylistID int) (*responses.Stylist, error) {
	stylist := new(responses.Stylist)
	err := c.transport.Do(ctx, salon_api.Call{
		Method:         constvars.MethodGet,
		Path:           fmt.Sprintf("%s/%d", constvars.ResourceStylists, stylistID),
		Out:            stylist,
		FailureMessage: constvars.ErrClientLoadStylistDetails,
	})
	if err != nil {
		return nil, err
	}
	return stylist, nil
}

func (c *stylistClient) Create(ctx context.Context, request *requests.CreateStylist) (*responses.Stylist, error) {
	stylist := new(responses.Stylist)
	err := c.transport.Do(ctx, salon_api.Call{
		Method:         constvars.MethodPost,
		Path:           constvars.ResourceStylists,
		Body:           request,
		Out:            stylist,
		FailureMessage: constvars.ErrClientCreateStylist,
	})
	if err != nil {
		return nil, err
	}
	return stylist, nil
}

func (c *stylistClient) FindAvailability(ctx context.Context, request *requests.FindAvailability) (*responses.Availability, error) {
	duration := request.Duration
	if duration <= 0 {
		duration = constvars.DefaultAppointmentDurationInMinutes
	}

	query := url.Values{}
	query.Set(constvars.URLQueryParamDate, request.Date)
	query.Set(constvars.URLQueryParamDuration, strconv.Itoa(duration))

	availability := new(responses.Availability)
	err := c.transport.Do(ctx, salon_api.Call{
		Method:         constvars.MethodGet,
		Path:           fmt.Sprintf("%s/%d%s", constvars.ResourceStylists, request.StylistID, constvars.ActionAvailability),
		Query:          query,
		Out:            availability,
		FailureMessage: constvars.ErrClientLoadAvailableSlots,
	})
	if err != nil {
		return nil, err
	}
	if availability.AvailableSlots == nil {
		availability.AvailableSlots = []string{}
	}
	return availability, nil
}

package bookings

import (
	"context"

	"github.com/pkg/errors"

	"github.com/abdsayeed/rentease-go/api"
)

// Client talks to the /api/v1/bookings endpoints. Everything here runs
// over the authenticated pipeline.
type Client struct {
	api *api.Client
}

func NewClient(apiClient *api.Client) *Client {
	return &Client{api: apiClient}
}

func (c *Client) Create(ctx context.Context, payload Payload) (*Booking, error) {
	var booking Booking
	if _, err := c.api.Post(ctx, "/api/v1/bookings", payload, &booking); err != nil {
		return nil, errors.Wrap(err, "[Client.Create] post booking")
	}
	return &booking, nil
}

// MyBookings returns the logged-in user's bookings.
func (c *Client) MyBookings(ctx context.Context) ([]Booking, error) {
	var mine []Booking
	if _, err := c.api.Get(ctx, "/api/v1/bookings/my-bookings", nil, &mine); err != nil {
		return nil, errors.Wrap(err, "[Client.MyBookings] get bookings")
	}
	return mine, nil
}

func (c *Client) Get(ctx context.Context, id string) (*Booking, error) {
	var booking Booking
	if _, err := c.api.Get(ctx, "/api/v1/bookings/"+id, nil, &booking); err != nil {
		return nil, errors.Wrap(err, "[Client.Get] get booking")
	}
	return &booking, nil
}

func (c *Client) Cancel(ctx context.Context, id string) (*Booking, error) {
	var booking Booking
	if _, err := c.api.Post(ctx, "/api/v1/bookings/"+id+"/cancel", struct{}{}, &booking); err != nil {
		return nil, errors.Wrap(err, "[Client.Cancel] cancel booking")
	}
	return &booking, nil
}

// CheckAvailability asks the server whether the property is free for the
// given window, before the wizard lets the user continue.
func (c *Client) CheckAvailability(ctx context.Context, check AvailabilityCheck) (*AvailabilityResponse, error) {
	var availability AvailabilityResponse
	if _, err := c.api.Post(ctx, "/api/v1/bookings/check-availability", check, &availability); err != nil {
		return nil, errors.Wrap(err, "[Client.CheckAvailability] check availability")
	}
	return &availability, nil
}

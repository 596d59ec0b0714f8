package properties

import (
	"context"
	"net/url"
	"strconv"

	"github.com/pkg/errors"

	"github.com/abdsayeed/rentease-go/api"
)

// Client talks to the /api/v1/properties endpoints. Listing and detail
// reads are public; the agent operations require the authenticated
// pipeline behind the api client.
type Client struct {
	api *api.Client
}

func NewClient(apiClient *api.Client) *Client {
	return &Client{api: apiClient}
}

// List returns a page of listings matching the filters, plus the
// pagination block so callers can walk the remaining pages.
func (c *Client) List(ctx context.Context, filters SearchFilters) ([]Property, *api.PaginationMeta, error) {
	var page []Property
	meta, err := c.api.Get(ctx, "/api/v1/properties", filters.query(), &page)
	if err != nil {
		return nil, nil, errors.Wrap(err, "[Client.List] get properties")
	}
	return page, meta, nil
}

// Featured returns the listings flagged for the landing page.
func (c *Client) Featured(ctx context.Context) ([]Property, error) {
	q := url.Values{}
	q.Set("is_featured", "true")

	var featured []Property
	if _, err := c.api.Get(ctx, "/api/v1/properties", q, &featured); err != nil {
		return nil, errors.Wrap(err, "[Client.Featured] get featured properties")
	}
	return featured, nil
}

func (c *Client) Get(ctx context.Context, id string) (*Property, error) {
	var property Property
	if _, err := c.api.Get(ctx, "/api/v1/properties/"+id, nil, &property); err != nil {
		return nil, errors.Wrap(err, "[Client.Get] get property")
	}
	return &property, nil
}

// MyProperties returns the listings owned by the logged-in agent.
func (c *Client) MyProperties(ctx context.Context) ([]Property, error) {
	var owned []Property
	if _, err := c.api.Get(ctx, "/api/v1/properties/agent/my-properties", nil, &owned); err != nil {
		return nil, errors.Wrap(err, "[Client.MyProperties] get agent properties")
	}
	return owned, nil
}

func (c *Client) Create(ctx context.Context, payload Payload) (*Property, error) {
	var property Property
	if _, err := c.api.Post(ctx, "/api/v1/properties", payload, &property); err != nil {
		return nil, errors.Wrap(err, "[Client.Create] post property")
	}
	return &property, nil
}

func (c *Client) Update(ctx context.Context, id string, payload Payload) (*Property, error) {
	var property Property
	if _, err := c.api.Put(ctx, "/api/v1/properties/"+id, payload, &property); err != nil {
		return nil, errors.Wrap(err, "[Client.Update] put property")
	}
	return &property, nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	if _, err := c.api.Delete(ctx, "/api/v1/properties/"+id, nil); err != nil {
		return errors.Wrap(err, "[Client.Delete] delete property")
	}
	return nil
}

func (f SearchFilters) query() url.Values {
	q := url.Values{}
	if f.Query != "" {
		q.Set("query", f.Query)
	}
	if f.Type != "" {
		q.Set("type", string(f.Type))
	}
	if f.MinPrice > 0 {
		q.Set("min_price", strconv.FormatFloat(f.MinPrice, 'f', -1, 64))
	}
	if f.MaxPrice > 0 {
		q.Set("max_price", strconv.FormatFloat(f.MaxPrice, 'f', -1, 64))
	}
	if f.Bedrooms > 0 {
		q.Set("bedrooms", strconv.Itoa(f.Bedrooms))
	}
	if f.Bathrooms > 0 {
		q.Set("bathrooms", strconv.Itoa(f.Bathrooms))
	}
	if f.City != "" {
		q.Set("city", f.City)
	}
	if f.SortBy != "" {
		q.Set("sort_by", f.SortBy)
	}
	if f.SortOrder != "" {
		q.Set("sort_order", f.SortOrder)
	}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	return q
}

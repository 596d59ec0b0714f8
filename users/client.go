package users

import (
	"context"

	"github.com/pkg/errors"

	"github.com/abdsayeed/rentease-go/api"
)

// UpdateProfileRequest carries the editable profile fields. Zero-valued
// fields are omitted so partial updates don't blank the rest.
type UpdateProfileRequest struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// Client talks to the /api/v1/users endpoints: profile and favorites.
// All calls go through the authenticated pipeline.
type Client struct {
	api *api.Client
}

func NewClient(apiClient *api.Client) *Client {
	return &Client{api: apiClient}
}

func (c *Client) Profile(ctx context.Context) (*User, error) {
	var user User
	if _, err := c.api.Get(ctx, "/api/v1/users/profile", nil, &user); err != nil {
		return nil, errors.Wrap(err, "[Client.Profile] get profile")
	}
	return &user, nil
}

func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*User, error) {
	var user User
	if _, err := c.api.Put(ctx, "/api/v1/users/profile", req, &user); err != nil {
		return nil, errors.Wrap(err, "[Client.UpdateProfile] put profile")
	}
	return &user, nil
}

// Favorites returns the property IDs the user has saved.
func (c *Client) Favorites(ctx context.Context) ([]string, error) {
	var ids []string
	if _, err := c.api.Get(ctx, "/api/v1/users/favorites", nil, &ids); err != nil {
		return nil, errors.Wrap(err, "[Client.Favorites] get favorites")
	}
	return ids, nil
}

func (c *Client) AddFavorite(ctx context.Context, propertyID string) error {
	if _, err := c.api.Post(ctx, "/api/v1/users/favorites/"+propertyID, struct{}{}, nil); err != nil {
		return errors.Wrap(err, "[Client.AddFavorite] post favorite")
	}
	return nil
}

func (c *Client) RemoveFavorite(ctx context.Context, propertyID string) error {
	if _, err := c.api.Delete(ctx, "/api/v1/users/favorites/"+propertyID, nil); err != nil {
		return errors.Wrap(err, "[Client.RemoveFavorite] delete favorite")
	}
	return nil
}

package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abdsayeed/rentease-go/api"
)

func TestClient_Envelope(t *testing.T) {
	t.Run("decodes data and pagination", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/api/v1/properties", r.URL.Path)
			require.Equal(t, "lisbon", r.URL.Query().Get("city"))
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(api.Response{
				Success: true,
				Message: "ok",
				Data:    json.RawMessage(`[{"title":"Sea Flat"}]`),
				Meta:    &api.PaginationMeta{CurrentPage: 1, TotalPages: 3, TotalItems: 25, HasNext: true},
			})
		}))
		defer server.Close()

		client := api.NewClient(server.URL, nil)
		var out []struct {
			Title string `json:"title"`
		}
		meta, err := client.Get(context.Background(), "/api/v1/properties", url.Values{"city": {"lisbon"}}, &out)
		require.NoError(t, err)
		require.Len(t, out, 1)
		require.Equal(t, "Sea Flat", out[0].Title)
		require.NotNil(t, meta)
		require.Equal(t, 3, meta.TotalPages)
		require.True(t, meta.HasNext)
	})

	t.Run("failure envelope becomes an Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(api.Response{
				Success: false,
				Message: "validation failed",
				Errors:  map[string][]string{"email": {"already registered"}},
			})
		}))
		defer server.Close()

		client := api.NewClient(server.URL, nil)
		_, err := client.Post(context.Background(), "/auth/register", map[string]string{}, nil)
		require.Error(t, err)

		var apiErr *api.Error
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
		require.Equal(t, "validation failed", apiErr.Message)
		require.Equal(t, []string{"already registered"}, apiErr.FieldErrors["email"])
		require.False(t, apiErr.IsAuthFailure())
	})

	t.Run("success=false on a 200 is still a failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(api.Response{Success: false, Message: "nope"})
		}))
		defer server.Close()

		client := api.NewClient(server.URL, nil)
		_, err := client.Get(context.Background(), "/api/v1/data", nil, nil)
		var apiErr *api.Error
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, "nope", apiErr.Message)
	})

	t.Run("non-JSON error body still surfaces the status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "bad gateway", http.StatusBadGateway)
		}))
		defer server.Close()

		client := api.NewClient(server.URL, nil)
		_, err := client.Get(context.Background(), "/api/v1/data", nil, nil)
		var apiErr *api.Error
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	})
}

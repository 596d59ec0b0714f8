package bookings_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abdsayeed/rentease-go/api"
	"github.com/abdsayeed/rentease-go/bookings"
)

func TestClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/bookings", r.URL.Path)

		var payload bookings.Payload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Equal(t, "prop-1", payload.PropertyID)
		require.Len(t, payload.Guests, 2)

		json.NewEncoder(w).Encode(api.Response{
			Success: true,
			Message: "booking created",
			Data:    json.RawMessage(`{"_id":"bk-1","property_id":"prop-1","status":"pending","payment_status":"pending","total_price":360}`),
		})
	}))
	defer server.Close()

	client := bookings.NewClient(api.NewClient(server.URL, nil))
	booking, err := client.Create(context.Background(), bookings.Payload{
		PropertyID:     "prop-1",
		CheckInDate:    "2025-07-01",
		CheckOutDate:   "2025-07-04",
		NumberOfGuests: 2,
		Guests: []bookings.GuestInfo{
			{Name: "John Doe", Email: "john@example.com", Phone: "123"},
			{Name: "Jane Doe", Email: "jane@example.com", Phone: "456"},
		},
	})
	require.NoError(t, err)
	require.Equal(t, "bk-1", booking.ID)
	require.Equal(t, bookings.StatusPending, booking.Status)
	require.Equal(t, 360.0, booking.TotalPrice)
}

func TestClient_CheckAvailability(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/bookings/check-availability", r.URL.Path)
		json.NewEncoder(w).Encode(api.Response{
			Success: true,
			Message: "ok",
			Data:    json.RawMessage(`{"available":false,"conflicting_bookings":["bk-9"]}`),
		})
	}))
	defer server.Close()

	client := bookings.NewClient(api.NewClient(server.URL, nil))
	availability, err := client.CheckAvailability(context.Background(), bookings.AvailabilityCheck{
		PropertyID:   "prop-1",
		CheckInDate:  "2025-07-01",
		CheckOutDate: "2025-07-04",
	})
	require.NoError(t, err)
	require.False(t, availability.Available)
	require.Equal(t, []string{"bk-9"}, availability.ConflictingBookings)
}

func TestClient_Cancel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/bookings/bk-1/cancel", r.URL.Path)
		json.NewEncoder(w).Encode(api.Response{
			Success: true,
			Message: "cancelled",
			Data:    json.RawMessage(`{"_id":"bk-1","status":"cancelled"}`),
		})
	}))
	defer server.Close()

	client := bookings.NewClient(api.NewClient(server.URL, nil))
	booking, err := client.Cancel(context.Background(), "bk-1")
	require.NoError(t, err)
	require.Equal(t, bookings.StatusCancelled, booking.Status)
}

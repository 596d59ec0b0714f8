package bookings

import "time"

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// GuestInfo is one guest entry collected by the booking wizard.
type GuestInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Age   int    `json:"age,omitempty"`
}

type Booking struct {
	ID              string        `json:"_id,omitempty"`
	PropertyID      string        `json:"property_id"`
	PropertyTitle   string        `json:"property_title,omitempty"`
	UserID          string        `json:"user_id"`
	UserName        string        `json:"user_name,omitempty"`
	CheckInDate     time.Time     `json:"check_in_date"`
	CheckOutDate    time.Time     `json:"check_out_date"`
	Guests          []GuestInfo   `json:"guests"`
	NumberOfGuests  int           `json:"number_of_guests"`
	TotalPrice      float64       `json:"total_price"`
	Status          BookingStatus `json:"status"`
	SpecialRequests string        `json:"special_requests,omitempty"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	CreatedAt       time.Time     `json:"created_at,omitempty"`
	UpdatedAt       time.Time     `json:"updated_at,omitempty"`
}

// Payload is what the wizard submits to create a booking.
type Payload struct {
	PropertyID      string      `json:"property_id"`
	CheckInDate     string      `json:"check_in_date"`
	CheckOutDate    string      `json:"check_out_date"`
	Guests          []GuestInfo `json:"guests"`
	NumberOfGuests  int         `json:"number_of_guests"`
	SpecialRequests string      `json:"special_requests,omitempty"`
}

type AvailabilityCheck struct {
	PropertyID   string `json:"property_id"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
}

type SuggestedDates struct {
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`
}

type AvailabilityResponse struct {
	Available           bool             `json:"available"`
	ConflictingBookings []string         `json:"conflicting_bookings,omitempty"`
	SuggestedDates      []SuggestedDates `json:"suggested_dates,omitempty"`
}

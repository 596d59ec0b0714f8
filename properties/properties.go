package properties

import "time"

type PropertyType string

const (
	TypeApartment PropertyType = "apartment"
	TypeHouse     PropertyType = "house"
	TypeCondo     PropertyType = "condo"
	TypeStudio    PropertyType = "studio"
	TypeVilla     PropertyType = "villa"
)

type PropertyStatus string

const (
	StatusAvailable   PropertyStatus = "available"
	StatusRented      PropertyStatus = "rented"
	StatusMaintenance PropertyStatus = "maintenance"
	StatusUnavailable PropertyStatus = "unavailable"
)

type Location struct {
	Address   string  `json:"address"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	ZipCode   string  `json:"zip_code"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}

type Amenities struct {
	Wifi            bool `json:"wifi"`
	Parking         bool `json:"parking"`
	AirConditioning bool `json:"air_conditioning"`
	Heating         bool `json:"heating"`
	Kitchen         bool `json:"kitchen"`
	Washer          bool `json:"washer"`
	Dryer           bool `json:"dryer"`
	TV              bool `json:"tv"`
	Gym             bool `json:"gym"`
	Pool            bool `json:"pool"`
	PetFriendly     bool `json:"pet_friendly"`
}

type Ratings struct {
	AverageRating float64 `json:"average_rating"`
	TotalReviews  int     `json:"total_reviews"`
}

type Property struct {
	ID            string         `json:"_id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Type          PropertyType   `json:"type"`
	Status        PropertyStatus `json:"status"`
	Price         float64        `json:"price"`
	PricePerNight float64        `json:"price_per_night"`
	Bedrooms      int            `json:"bedrooms"`
	Bathrooms     int            `json:"bathrooms"`
	SquareFeet    int            `json:"square_feet"`
	Location      Location       `json:"location"`
	Amenities     Amenities      `json:"amenities"`
	Images        []string       `json:"images"`
	AgentID       string         `json:"agent_id"`
	AgentName     string         `json:"agent_name,omitempty"`
	IsFeatured    bool           `json:"is_featured,omitempty"`
	Ratings       *Ratings       `json:"ratings,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// Payload carries the fields an agent supplies when creating or
// updating a listing.
type Payload struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Type        PropertyType `json:"type"`
	Price       float64      `json:"price"`
	Bedrooms    int          `json:"bedrooms"`
	Bathrooms   int          `json:"bathrooms"`
	SquareFeet  int          `json:"square_feet"`
	Location    Location     `json:"location"`
	Amenities   Amenities    `json:"amenities"`
	Images      []string     `json:"images,omitempty"`
}

// SearchFilters narrows and orders a listing query. Zero values mean
// "no constraint" and are left out of the query string.
type SearchFilters struct {
	Query     string
	Type      PropertyType
	MinPrice  float64
	MaxPrice  float64
	Bedrooms  int
	Bathrooms int
	City      string
	SortBy    string // price, created_at or rating
	SortOrder string // asc or desc
	Page      int
	Limit     int
}

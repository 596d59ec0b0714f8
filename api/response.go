package api

import "encoding/json"

// Response is the uniform envelope every Rentease endpoint returns,
// for successes and failures alike.
//
//	{ "success": true, "message": "ok", "data": {...}, "meta": {...} }
//	{ "success": false, "message": "validation failed", "errors": {"email": ["taken"]} }
//
// Data is kept raw so each domain client can decode it into its own type.
type Response struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    json.RawMessage     `json:"data,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
	Meta    *PaginationMeta     `json:"meta,omitempty"`
}

// PaginationMeta describes the page window of a list response.
type PaginationMeta struct {
	CurrentPage  int  `json:"current_page"`
	TotalPages   int  `json:"total_pages"`
	TotalItems   int  `json:"total_items"`
	ItemsPerPage int  `json:"items_per_page"`
	HasNext      bool `json:"has_next"`
	HasPrev      bool `json:"has_prev"`
}

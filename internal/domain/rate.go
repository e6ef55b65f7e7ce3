package domain

import "time"

// VBucksRate is the configured USD price of a single V-Buck. The store
// keeps exactly one current rate.
type VBucksRate struct {
	Rate      float64   `json:"rate"`
	UpdatedAt time.Time `json:"updatedAt"`
}

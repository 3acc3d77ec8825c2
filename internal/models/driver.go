package models

import "time"

// Driver is a registered driver. Tip events reference drivers by ID but are
// not checked against driver existence at ingestion time; only the read path
// requires the driver to exist.
type Driver struct {
	DriverID  string    `json:"driverId"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TipAggregate is the running tip total for one driver within one time
// bucket. A (DriverID, AggregationKey) pair identifies at most one aggregate;
// the row is created implicitly by the first increment and never deleted.
//
// CreatedAt is set once on the first write and never overwritten; UpdatedAt
// moves on every write, so CreatedAt <= UpdatedAt always holds.
type TipAggregate struct {
	DriverID       string          `json:"driverId"`
	AggregationKey string          `json:"aggregationKey"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

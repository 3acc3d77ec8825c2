package events

import (
	"github.com/shopspring/decimal"
)

// TipEventPayload is the wire shape of one inbound tip event from the queue.
//
// Amount uses decimal.Decimal, whose JSON unmarshalling accepts both a JSON
// number and a numeric-looking string, which is exactly the coercion the
// inbound contract requires. EventTime stays a raw string here; parsing and
// range checks happen at the consumer boundary.
//
// Example JSON:
//
//	{
//	  "driverId": "drv-7f3a",
//	  "amount": 5.50,
//	  "eventTime": "2024-01-15T10:30:00Z"
//	}
type TipEventPayload struct {
	DriverID  string          `json:"driverId" validate:"required"`
	Amount    decimal.Decimal `json:"amount"`
	EventTime string          `json:"eventTime" validate:"required"`
}

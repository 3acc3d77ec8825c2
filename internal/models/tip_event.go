package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TipEvent is one validated tip report. It is consumed exactly once by the
// processor and never persisted itself; EventTime is used only to derive
// the day and week bucket keys.
type TipEvent struct {
	DriverID  string
	Amount    decimal.Decimal
	EventTime time.Time
}

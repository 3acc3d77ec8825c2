package http

import (
	"encoding/json"
	"net/http"
	"time"

	"driver-tips/internal/models"
	"driver-tips/internal/queries"

	"github.com/go-chi/chi/v5"
)

// tipAggregateResponse is the wire shape of one aggregate. TotalAmount is
// emitted as a bare JSON number (not a quoted decimal string) and createdAt
// is intentionally not exposed.
type tipAggregateResponse struct {
	DriverID       string      `json:"driverId"`
	AggregationKey string      `json:"aggregationKey"`
	TotalAmount    json.Number `json:"totalAmount"`
	UpdatedAt      string      `json:"updatedAt"`
}

type driverTipsResponse struct {
	Daily  *tipAggregateResponse `json:"daily"`
	Weekly *tipAggregateResponse `json:"weekly"`
}

type getDriverTipsHandler struct {
	tipQueryService queries.TipQueryService
}

func NewGetDriverTipsHandler(tipQueryService queries.TipQueryService) AppHttpHandler {
	return &getDriverTipsHandler{tipQueryService: tipQueryService}
}

// Handle processes GET /drivers/{driverID}/tips requests.
func (h *getDriverTipsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	tips, err := h.tipQueryService.GetDriverTips(r.Context(), chi.URLParam(r, "driverID"), time.Now().UTC())
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, driverTipsResponse{
		Daily:  toTipAggregateResponse(tips.Daily),
		Weekly: toTipAggregateResponse(tips.Weekly),
	})
}

func toTipAggregateResponse(aggregate *models.TipAggregate) *tipAggregateResponse {
	if aggregate == nil {
		return nil
	}
	return &tipAggregateResponse{
		DriverID:       aggregate.DriverID,
		AggregationKey: aggregate.AggregationKey,
		TotalAmount:    json.Number(aggregate.TotalAmount.String()),
		UpdatedAt:      aggregate.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

package http

import (
	"encoding/json"
	"net/http"

	"driver-tips/internal/queries"
	"driver-tips/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5"
)

const codeMalformedRequestBody = "HTTP_1000"

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

type createDriverRequest struct {
	DriverID string `json:"driverId"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

type createDriverHandler struct {
	driverService queries.DriverService
}

func NewCreateDriverHandler(driverService queries.DriverService) AppHttpHandler {
	return &createDriverHandler{driverService: driverService}
}

// Handle processes POST /drivers requests.
func (h *createDriverHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	var req createDriverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return svcerrors.NewInvalidArgumentError(codeMalformedRequestBody, "malformed request body", err)
	}

	driver, err := h.driverService.CreateDriver(r.Context(), queries.CreateDriverInput{
		DriverID: req.DriverID,
		Name:     req.Name,
		Phone:    req.Phone,
	})
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusCreated, driver)
}

type getDriverHandler struct {
	driverService queries.DriverService
}

func NewGetDriverHandler(driverService queries.DriverService) AppHttpHandler {
	return &getDriverHandler{driverService: driverService}
}

// Handle processes GET /drivers/{driverID} requests.
func (h *getDriverHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	driver, err := h.driverService.GetDriver(r.Context(), chi.URLParam(r, "driverID"))
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, driver)
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

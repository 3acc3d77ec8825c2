package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"driver-tips/internal/models"
	"driver-tips/internal/queries"
	querymocks "driver-tips/internal/queries/mocks"
	"driver-tips/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func requestWithDriverID(req *http.Request, driverID string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("driverID", driverID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateDriverHandler_Handle_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDriverService := querymocks.NewMockDriverService(ctrl)
	handler := NewCreateDriverHandler(mockDriverService)

	body := []byte(`{"driverId":"driver-1","name":"Ada","phone":"+4917612345678"}`)
	req := httptest.NewRequest(http.MethodPost, "/drivers", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	created := &models.Driver{
		DriverID:  "driver-1",
		Name:      "Ada",
		Phone:     "+4917612345678",
		CreatedAt: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
	}
	mockDriverService.EXPECT().
		CreateDriver(gomock.Any(), queries.CreateDriverInput{
			DriverID: "driver-1",
			Name:     "Ada",
			Phone:    "+4917612345678",
		}).
		Return(created, nil)

	err := handler.Handle(rr, req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rr.Code)

	var resp models.Driver
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "driver-1", resp.DriverID)
	assert.Equal(t, "Ada", resp.Name)
}

func TestCreateDriverHandler_Handle_MalformedBody(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDriverService := querymocks.NewMockDriverService(ctrl)
	handler := NewCreateDriverHandler(mockDriverService)

	req := httptest.NewRequest(http.MethodPost, "/drivers", bytes.NewReader([]byte(`{not json`)))
	rr := httptest.NewRecorder()

	err := handler.Handle(rr, req)

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, codeMalformedRequestBody, svcErr.Code)
	assert.Equal(t, http.StatusBadRequest, svcErr.HttpStatusCode)
}

func TestCreateDriverHandler_Handle_ServiceError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDriverService := querymocks.NewMockDriverService(ctrl)
	handler := NewCreateDriverHandler(mockDriverService)

	req := httptest.NewRequest(http.MethodPost, "/drivers", bytes.NewReader([]byte(`{"name":"Ada"}`)))
	rr := httptest.NewRecorder()

	expectedErr := svcerrors.NewResourceConflictError("DRV_1001", "driver already exists", nil)
	mockDriverService.EXPECT().
		CreateDriver(gomock.Any(), gomock.Any()).
		Return(nil, expectedErr)

	err := handler.Handle(rr, req)

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "DRV_1001", svcErr.Code)
}

func TestGetDriverHandler_Handle_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDriverService := querymocks.NewMockDriverService(ctrl)
	handler := NewGetDriverHandler(mockDriverService)

	req := requestWithDriverID(httptest.NewRequest(http.MethodGet, "/drivers/driver-1", nil), "driver-1")
	rr := httptest.NewRecorder()

	mockDriverService.EXPECT().
		GetDriver(gomock.Any(), "driver-1").
		Return(&models.Driver{DriverID: "driver-1", Name: "Ada"}, nil)

	err := handler.Handle(rr, req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestGetDriverHandler_Handle_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDriverService := querymocks.NewMockDriverService(ctrl)
	handler := NewGetDriverHandler(mockDriverService)

	req := requestWithDriverID(httptest.NewRequest(http.MethodGet, "/drivers/missing", nil), "missing")
	rr := httptest.NewRecorder()

	expectedErr := svcerrors.NewNotFoundError("DRV_1002", "driver not found", nil)
	mockDriverService.EXPECT().
		GetDriver(gomock.Any(), "missing").
		Return(nil, expectedErr)

	err := handler.Handle(rr, req)

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, svcErr.HttpStatusCode)
}

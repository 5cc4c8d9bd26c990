package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gestorpro/analytics-api/internal/domain"
	"github.com/gestorpro/analytics-api/internal/usecases/aggregating"
	"github.com/gestorpro/analytics-api/internal/usecases/aggregating/mocks"
	"github.com/gestorpro/analytics-api/pkg/apiErrors"
)

func TestGetMetrics_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockAggregator(ctrl)

	expected := &domain.AggregationResult{
		Period: &domain.Period{
			Granularity: domain.GranularityMonth,
		},
		Source:       domain.SourceRaw,
		TotalRevenue: decimal.NewFromInt(27500),
		TotalOrders:  3,
		TopProducts:  []*domain.ProductRanking{},
		TopCustomers: []*domain.CustomerRanking{},
	}

	mockService.EXPECT().
		Aggregate(aggregating.Selector{Year: "2025", Month: "March"}).
		Return(expected, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/analytics/metrics?year=2025&month=March", nil)
	rec := httptest.NewRecorder()

	GetMetrics(mockService).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body domain.AggregationResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 3, body.TotalOrders)
	assert.True(t, body.TotalRevenue.Equal(decimal.NewFromInt(27500)))
}

func TestGetMetrics_MissingYear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockAggregator(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/v1/analytics/metrics", nil)
	rec := httptest.NewRecorder()

	GetMetrics(mockService).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, apiErrors.ErrMissingRequiredData, apiErr.Code)
}

func TestGetMetrics_InvalidPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockAggregator(ctrl)
	mockService.EXPECT().
		Aggregate(gomock.Any()).
		Return(nil, domain.ErrInvalidMonth)

	req := httptest.NewRequest(http.MethodGet, "/v1/analytics/metrics?year=2025&month=marco", nil)
	rec := httptest.NewRecorder()

	GetMetrics(mockService).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, apiErrors.ErrInvalidPeriod, apiErr.Code)
}

func TestGetAvailableWeeks_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockAggregator(ctrl)
	mockService.EXPECT().AvailableWeeks("2025", "February").Return([]int{1, 2, 3, 4}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/analytics/weeks?year=2025&month=February", nil)
	rec := httptest.NewRecorder()

	GetAvailableWeeks(mockService).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string][]int
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []int{1, 2, 3, 4}, body["weeks"])
}

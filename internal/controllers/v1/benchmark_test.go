package v1_test

import (
	"net/http"
	"testing"

	"github.com/ledgerlens/backend/internal/benchmark"
	v1 "github.com/ledgerlens/backend/internal/controllers/v1"
	"github.com/ledgerlens/backend/internal/models"
	"github.com/ledgerlens/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestBenchmarkList() {
	recorder := test.Request(suite.T(), v1.Controller{}, http.MethodGet, "http://example.com/v1/benchmarks", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BenchmarkListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.Len(suite.T(), response.Data, len(benchmark.Brackets()))
	for i, bracket := range benchmark.Brackets() {
		assert.Equal(suite.T(), bracket, response.Data[i].Bracket)

		sum := decimal.Zero
		for _, share := range response.Data[i].Shares {
			sum = sum.Add(share)
		}
		assert.True(suite.T(), decimal.NewFromInt(100).Equal(sum), "Shares of %s sum up to %s", bracket, sum)
	}
}

func (suite *TestSuiteStandard) TestBenchmarkGet() {
	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"Medium", "50k-100k", http.StatusOK},
		{"Case insensitive", "Over-100K", http.StatusOK},
		{"Unknown", "millionaire", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, v1.Controller{}, http.MethodGet, "http://example.com/v1/benchmarks/"+tt.path, "")
			test.AssertHTTPStatus(t, &recorder, tt.status)

			var response v1.BenchmarkResponse
			test.DecodeResponse(t, &recorder, &response)

			if tt.status != http.StatusOK {
				assert.Contains(t, *response.Error, "the bracket must be one of")
				return
			}

			require.NotNil(t, response.Data)
			share, ok := response.Data.Share("Food")
			assert.True(t, ok)
			assert.True(t, share.IsPositive())
		})
	}
}

func (suite *TestSuiteStandard) TestBenchmarkNoProfile() {
	err := models.DB.Unscoped().Where("bracket = ?", benchmark.BracketHigh).Delete(&models.BenchmarkShare{}).Error
	require.Nil(suite.T(), err)

	recorder := test.Request(suite.T(), v1.Controller{}, http.MethodGet, "http://example.com/v1/benchmarks/over-100k", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
	assert.Equal(suite.T(), "there is no benchmark profile for the bracket over-100k", test.DecodeError(suite.T(), recorder.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestBenchmarkDatabaseError() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), v1.Controller{}, http.MethodGet, "http://example.com/v1/benchmarks", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)

	recorder = test.Request(suite.T(), v1.Controller{}, http.MethodGet, "http://example.com/v1/benchmarks/50k-100k", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}

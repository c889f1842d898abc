package v1_test

import (
	"net/http"

	v1 "github.com/ledgerlens/backend/internal/controllers/v1"
	"github.com/ledgerlens/backend/internal/router"
	"github.com/ledgerlens/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestRoot() {
	recorder := test.Request(suite.T(), v1.Controller{}, http.MethodGet, "http://example.com", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var root router.RootResponse
	test.DecodeResponse(suite.T(), &recorder, &root)

	assert.Equal(suite.T(), router.RootLinks{
		Docs:    "http://example.com/docs/index.html",
		Healthz: "http://example.com/healthz",
		Metrics: "http://example.com/metrics",
		Version: "http://example.com/version",
		V1:      "http://example.com/v1",
	}, root.Links)
}

func (suite *TestSuiteStandard) TestVersion() {
	recorder := test.Request(suite.T(), v1.Controller{}, http.MethodGet, "http://example.com/version", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var version router.VersionResponse
	test.DecodeResponse(suite.T(), &recorder, &version)
	assert.Equal(suite.T(), "0.0.0", version.Data.Version)
}

func (suite *TestSuiteStandard) TestGet() {
	recorder := test.Request(suite.T(), v1.Controller{}, http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), v1.Links{
		Analyses:        "http://example.com/v1/analyses",
		Categorizations: "http://example.com/v1/categorizations",
		Benchmarks:      "http://example.com/v1/benchmarks",
		CategoryRules:   "http://example.com/v1/category-rules",
		Samples:         "http://example.com/v1/samples",
	}, response.Links)
}

func (suite *TestSuiteStandard) TestHealthz() {
	recorder := test.Request(suite.T(), v1.Controller{}, http.MethodGet, "http://example.com/healthz", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	suite.CloseDB()

	recorder = test.Request(suite.T(), v1.Controller{}, http.MethodGet, "http://example.com/healthz", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}

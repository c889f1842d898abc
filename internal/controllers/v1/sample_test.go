package v1_test

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	v1 "github.com/ledgerlens/backend/internal/controllers/v1"
	"github.com/ledgerlens/backend/internal/importer"
	"github.com/ledgerlens/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestSampleGet() {
	tests := []struct {
		name     string
		query    string
		status   int
		header   string
		filename string
	}{
		{"Default", "", http.StatusOK, "date,description,amount", "sample-statement-6m.csv"},
		{"With categories", "?months=2&categories=true", http.StatusOK, "date,description,amount,category", "sample-statement-2m.csv"},
		{"Too many months", "?months=25", http.StatusBadRequest, "", ""},
		{"Zero months", "?months=-1", http.StatusBadRequest, "", ""},
		{"Not a number", "?months=many", http.StatusBadRequest, "", ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, v1.Controller{}, http.MethodGet, "http://example.com/v1/samples"+tt.query, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status != http.StatusOK {
				return
			}

			assert.True(t, strings.HasPrefix(r.Header().Get("Content-Type"), "text/csv"))
			assert.Contains(t, r.Header().Get("Content-Disposition"), tt.filename)

			firstLine, _, _ := strings.Cut(r.Body.String(), "\n")
			assert.Equal(t, tt.header, firstLine)
		})
	}
}

func (suite *TestSuiteStandard) TestSampleSeed() {
	first := test.Request(suite.T(), v1.Controller{}, http.MethodGet, "http://example.com/v1/samples?seed=42", "")
	second := test.Request(suite.T(), v1.Controller{}, http.MethodGet, "http://example.com/v1/samples?seed=42", "")

	assert.Equal(suite.T(), first.Body.String(), second.Body.String(), "The same seed must generate the same statement")
}

// TestSampleAnalysis verifies that a generated statement can be analysed.
func (suite *TestSuiteStandard) TestSampleAnalysis() {
	r := test.Request(suite.T(), v1.Controller{}, http.MethodGet, "http://example.com/v1/samples?months=3&seed=7", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	statement := r.Body.String()
	parsed, err := importer.Parse(strings.NewReader(statement), importer.Options{})
	require.Nil(suite.T(), err)

	body, headers := test.Upload(suite.T(), "sample.csv", bytes.NewBufferString(statement))
	analysis := test.Request(suite.T(), v1.Controller{}, http.MethodPost, "http://example.com/v1/analyses?bracket=50k-100k", body, headers)
	test.AssertHTTPStatus(suite.T(), &analysis, http.StatusOK)

	var response v1.AnalysisResponse
	test.DecodeResponse(suite.T(), &analysis, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), parsed.Valid, response.Data.Import.Valid)
	assert.Empty(suite.T(), response.Data.Import.Skipped)
	assert.NotNil(suite.T(), response.Data.Summary.Benchmark)
}

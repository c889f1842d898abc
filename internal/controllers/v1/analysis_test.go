package v1_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/ledgerlens/backend/internal/categorizer"
	v1 "github.com/ledgerlens/backend/internal/controllers/v1"
	"github.com/ledgerlens/backend/internal/ledger"
	"github.com/ledgerlens/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) analyse(co v1.Controller, file, query string, expectedStatus ...int) v1.AnalysisResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusOK)
	}

	body, headers := test.LoadTestFile(suite.T(), file)
	recorder := test.Request(suite.T(), co, http.MethodPost, "http://example.com/v1/analyses"+query, body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, expectedStatus...)

	var response v1.AnalysisResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	return response
}

func (suite *TestSuiteStandard) TestAnalysisCreate() {
	response := suite.analyse(v1.Controller{}, "statement.csv", "")
	require.Nil(suite.T(), response.Error)
	require.NotNil(suite.T(), response.Data)

	analysis := response.Data
	assert.Equal(suite.T(), 7, analysis.Import.Rows)
	assert.Equal(suite.T(), 6, analysis.Import.Valid)
	assert.Len(suite.T(), analysis.Import.Skipped, 1)
	assert.True(suite.T(), analysis.Import.Categorized)

	categories := make([]string, 0)
	for _, transaction := range analysis.Transactions {
		categories = append(categories, transaction.Category)
	}
	assert.Equal(suite.T(), []string{"Housing", "Food", "Income", "Housing", "Entertainment", ledger.Uncategorized}, categories)

	// The sum of all category totals is the sum of all amounts
	sumCategories, sumTransactions := decimal.Zero, decimal.Zero
	for _, c := range analysis.Summary.Categories {
		sumCategories = sumCategories.Add(c.Total)
	}
	for _, t := range analysis.Transactions {
		sumTransactions = sumTransactions.Add(t.Amount)
	}
	assert.True(suite.T(), sumCategories.Equal(sumTransactions), "category totals %s do not add up to %s", sumCategories, sumTransactions)

	assert.Len(suite.T(), analysis.Summary.Monthly, 2)
	assert.Nil(suite.T(), analysis.Summary.Benchmark, "No bracket was selected")

	require.Len(suite.T(), analysis.Warnings, 1)
	assert.Contains(suite.T(), analysis.Warnings[0], "error in line 8")
}

func (suite *TestSuiteStandard) TestAnalysisRecommendation() {
	response := suite.analyse(v1.Controller{}, "dining.csv", "?bracket=over-100k&threshold=5")
	require.NotNil(suite.T(), response.Data)

	benchmark := response.Data.Summary.Benchmark
	require.NotNil(suite.T(), benchmark)
	assert.Equal(suite.T(), "over-100k", string(benchmark.Bracket))

	var found bool
	for _, r := range response.Data.Summary.Recommendations {
		if r.Category == "Food" {
			found = true
			assert.True(suite.T(), decimal.NewFromInt(6).Equal(r.Delta), "Delta is %s", r.Delta)
			assert.NotEmpty(suite.T(), r.Message)
		}
	}
	assert.True(suite.T(), found, "Food is 16%% of the spend, 6 points above the benchmark, but has no recommendation")
}

func (suite *TestSuiteStandard) TestAnalysisSavingsGoal() {
	response := suite.analyse(v1.Controller{}, "statement.csv", "?savingsGoal=2000")
	require.NotNil(suite.T(), response.Data)
	require.NotNil(suite.T(), response.Data.Summary.SavingsGoal)
	assert.True(suite.T(), decimal.NewFromInt(2000).Equal(response.Data.Summary.SavingsGoal.Goal))
}

// TestAnalysisIncome verifies that the bracket is derived from the annual income.
func (suite *TestSuiteStandard) TestAnalysisIncome() {
	response := suite.analyse(v1.Controller{}, "dining.csv", "?income=42000")
	require.NotNil(suite.T(), response.Data)
	require.NotNil(suite.T(), response.Data.Summary.Benchmark)
	assert.Equal(suite.T(), "under-50k", string(response.Data.Summary.Benchmark.Bracket))
}

func (suite *TestSuiteStandard) TestAnalysisUnknownBracket() {
	response := suite.analyse(v1.Controller{}, "dining.csv", "?bracket=millionaire")
	require.NotNil(suite.T(), response.Data)

	assert.Nil(suite.T(), response.Data.Summary.Benchmark)
	assert.NotEmpty(suite.T(), response.Data.Summary.Categories, "The rest of the analysis must be available")
	require.Len(suite.T(), response.Data.Warnings, 1)
	assert.Contains(suite.T(), response.Data.Warnings[0], "the benchmark comparison is not available")
}

func (suite *TestSuiteStandard) TestAnalysisHeadersOnly() {
	response := suite.analyse(v1.Controller{}, "headers-only.csv", "")
	require.NotNil(suite.T(), response.Data)

	assert.Equal(suite.T(), 0, response.Data.Import.Rows)
	assert.Empty(suite.T(), response.Data.Transactions)
	assert.Empty(suite.T(), response.Data.Summary.Categories)
	assert.Empty(suite.T(), response.Data.Summary.Monthly)
	assert.True(suite.T(), response.Data.Summary.Overview.Spend.IsZero())
}

func (suite *TestSuiteStandard) TestAnalysisTabSeparated() {
	response := suite.analyse(v1.Controller{}, "statement.tsv", "")
	require.NotNil(suite.T(), response.Data)
	require.Len(suite.T(), response.Data.Transactions, 1)
	assert.Equal(suite.T(), "Utilities", response.Data.Transactions[0].Category)
}

func (suite *TestSuiteStandard) TestAnalysisErrors() {
	tests := []struct {
		name   string
		file   string
		query  string
		status int
		err    string
	}{
		{"Missing columns", "missing-columns.csv", "", http.StatusBadRequest, "[date description amount]"},
		{"Invalid income", "statement.csv", "?income=lots", http.StatusBadRequest, "income must be a decimal number"},
		{"Invalid threshold", "statement.csv", "?threshold=five", http.StatusBadRequest, "threshold must be a decimal number"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			body, headers := test.LoadTestFile(t, tt.file)
			recorder := test.Request(t, v1.Controller{}, http.MethodPost, "http://example.com/v1/analyses"+tt.query, body, headers)
			test.AssertHTTPStatus(t, &recorder, tt.status)
			assert.Contains(t, test.DecodeError(t, recorder.Body.Bytes()), tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestAnalysisUpload() {
	tests := []struct {
		name    string
		file    string
		content string
		co      v1.Controller
		status  int
	}{
		{"Wrong suffix", "statement.pdf", "%PDF-1.7", v1.Controller{}, http.StatusBadRequest},
		{"Too large", "statement.csv", "date,description,amount\n2024-01-01,Rent,-100\n", v1.Controller{MaxUploadBytes: 10}, http.StatusRequestEntityTooLarge},
		{"Empty file", "statement.csv", "", v1.Controller{}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			body, headers := test.Upload(t, tt.file, strings.NewReader(tt.content))
			recorder := test.Request(t, tt.co, http.MethodPost, "http://example.com/v1/analyses", body, headers)
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}

	suite.T().Run("No file", func(t *testing.T) {
		recorder := test.Request(t, v1.Controller{}, http.MethodPost, "http://example.com/v1/analyses", "")
		test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
	})
}

// TestAnalysisClassifierFailure verifies that the analysis falls back to the
// rules when the primary classifier fails.
func (suite *TestSuiteStandard) TestAnalysisClassifierFailure() {
	primary := new(classifierMock)
	primary.On("Classify", mock.Anything, mock.Anything).Return(categorizer.Classification{}, categorizer.ErrCircuitOpen)

	response := suite.analyse(v1.Controller{Primary: primary}, "dining.csv", "")
	require.NotNil(suite.T(), response.Data)

	for _, transaction := range response.Data.Transactions {
		assert.NotEqual(suite.T(), ledger.Uncategorized, transaction.Category)
	}
	primary.AssertNumberOfCalls(suite.T(), "Classify", 3)
}

func (suite *TestSuiteStandard) TestAnalysisDatabaseError() {
	suite.CloseDB()

	response := suite.analyse(v1.Controller{}, "dining.csv", "", http.StatusInternalServerError)
	require.NotNil(suite.T(), response.Error)
	assert.Equal(suite.T(), "an error occurred on the server during your request", *response.Error)
}

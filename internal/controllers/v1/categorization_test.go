package v1_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/ledgerlens/backend/internal/categorizer"
	v1 "github.com/ledgerlens/backend/internal/controllers/v1"
	"github.com/ledgerlens/backend/internal/ledger"
	"github.com/ledgerlens/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) categorize(co v1.Controller, body any, expectedStatus int) v1.CategorizationListResponse {
	recorder := test.Request(suite.T(), co, http.MethodPost, "http://example.com/v1/categorizations", body)
	test.AssertHTTPStatus(suite.T(), &recorder, expectedStatus)

	var response v1.CategorizationListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	return response
}

func (suite *TestSuiteStandard) TestCategorizationCreate() {
	response := suite.categorize(v1.Controller{}, []v1.CategorizationEditable{
		{Description: "Shell Gas Station", Amount: decimal.NewFromFloat(-40)},
		{Description: "Mystery Merchant", Amount: decimal.NewFromFloat(-12.5)},
		{Description: "Anything", Amount: decimal.NewFromFloat(-3), Category: "Gifts"},
	}, http.StatusOK)

	require.Len(suite.T(), response.Data, 3)
	assert.Equal(suite.T(), "Transportation", response.Data[0].Category)
	assert.Equal(suite.T(), categorizer.SourceRules, response.Data[0].Source)
	assert.Equal(suite.T(), ledger.Uncategorized, response.Data[1].Category)
	assert.Equal(suite.T(), categorizer.SourceFallback, response.Data[1].Source)
	assert.Equal(suite.T(), "Gifts", response.Data[2].Category)
	assert.Equal(suite.T(), categorizer.SourceInput, response.Data[2].Source)
}

// TestCategorizationIdempotent verifies that categorizing categorized
// transactions again does not change them.
func (suite *TestSuiteStandard) TestCategorizationIdempotent() {
	input := []v1.CategorizationEditable{
		{Description: "Monthly Rent", Amount: decimal.NewFromFloat(-900)},
		{Description: "Spotify", Amount: decimal.NewFromFloat(-9.99)},
	}

	first := suite.categorize(v1.Controller{}, input, http.StatusOK)
	require.Len(suite.T(), first.Data, 2)

	for i := range input {
		input[i].Category = first.Data[i].Category
	}

	second := suite.categorize(v1.Controller{}, input, http.StatusOK)
	for i := range first.Data {
		assert.Equal(suite.T(), first.Data[i].Category, second.Data[i].Category)
	}
}

func (suite *TestSuiteStandard) TestCategorizationPrimary() {
	primary := new(classifierMock)
	primary.On("Classify", mock.Anything, mock.MatchedBy(func(t ledger.Transaction) bool {
		return t.Description == "Le Bistro"
	})).Return(categorizer.Classification{Category: "Food", Confidence: 0.9}, nil)
	primary.On("Classify", mock.Anything, mock.Anything).Return(categorizer.Classification{Category: "Shopping", Confidence: 0.1}, nil)

	response := suite.categorize(v1.Controller{Primary: primary, MinConfidence: 0.3}, []v1.CategorizationEditable{
		{Description: "Le Bistro", Amount: decimal.NewFromFloat(-55)},
		{Description: "Electric Company", Amount: decimal.NewFromFloat(-80)},
	}, http.StatusOK)

	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), "Food", response.Data[0].Category)
	assert.Equal(suite.T(), categorizer.SourceModel, response.Data[0].Source)

	// Low confidence results are ignored
	assert.Equal(suite.T(), "Utilities", response.Data[1].Category)
	assert.Equal(suite.T(), categorizer.SourceRules, response.Data[1].Source)
}

// TestCategorizationTimeout verifies that a slow classifier does not block
// the categorization.
func (suite *TestSuiteStandard) TestCategorizationTimeout() {
	primary := new(classifierMock)
	primary.On("Classify", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			<-args.Get(0).(context.Context).Done()
		}).
		Return(categorizer.Classification{}, context.DeadlineExceeded)

	response := suite.categorize(v1.Controller{Primary: primary, ClassifierTimeout: 10 * time.Millisecond}, []v1.CategorizationEditable{
		{Description: "Coffee House", Amount: decimal.NewFromFloat(-4)},
	}, http.StatusOK)

	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "Food", response.Data[0].Category)
	assert.Equal(suite.T(), categorizer.SourceRules, response.Data[0].Source)
}

func (suite *TestSuiteStandard) TestCategorizationErrors() {
	response := suite.categorize(v1.Controller{}, "", http.StatusBadRequest)
	assert.Equal(suite.T(), "the request body must not be empty", *response.Error)

	response = suite.categorize(v1.Controller{}, `{"description": "not a list"}`, http.StatusBadRequest)
	assert.NotNil(suite.T(), response.Error)

	suite.CloseDB()
	response = suite.categorize(v1.Controller{}, []v1.CategorizationEditable{{Description: "Rent"}}, http.StatusInternalServerError)
	assert.Equal(suite.T(), "an error occurred on the server during your request", *response.Error)
}

// TestCategorizationLabelsFromStoredRules verifies that categories of rules
// created at runtime are offered to the primary classifier.
func (suite *TestSuiteStandard) TestCategorizationLabelsFromStoredRules() {
	suite.createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{Category: "Pets", Match: "petco", Priority: 5})

	seen := make(chan []string, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Parameters struct {
				CandidateLabels []string `json:"candidate_labels"`
			} `json:"parameters"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		seen <- body.Parameters.CandidateLabels

		_, _ = w.Write([]byte(`{"labels": ["Pets"], "scores": [0.95]}`))
	}))
	defer server.Close()

	// The classifier is created before the rule exists, with no candidates
	primary := categorizer.NewHTTPClassifier(categorizer.HTTPConfig{URL: server.URL})

	response := suite.categorize(v1.Controller{Primary: primary}, []v1.CategorizationEditable{
		{Description: "Dog Food Online", Amount: decimal.NewFromFloat(-30)},
	}, http.StatusOK)

	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "Pets", response.Data[0].Category)
	assert.Equal(suite.T(), categorizer.SourceModel, response.Data[0].Source)

	candidates := <-seen
	assert.Contains(suite.T(), candidates, "Pets")
	assert.Contains(suite.T(), candidates, "Housing")
}

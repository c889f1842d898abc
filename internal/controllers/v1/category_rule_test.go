package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/ledgerlens/backend/internal/categorizer"
	v1 "github.com/ledgerlens/backend/internal/controllers/v1"
	"github.com/ledgerlens/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) createTestCategoryRule(t *testing.T, categoryRule v1.CategoryRuleEditable, expectedStatus ...int) v1.CategoryRuleResponse {
	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, v1.Controller{}, http.MethodPost, "http://example.com/v1/category-rules", []v1.CategoryRuleEditable{categoryRule})
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var res v1.CategoryRuleCreateResponse
	test.DecodeResponse(t, &r, &res)

	return res.Data[0]
}

func (suite *TestSuiteStandard) TestCategoryRuleCreate() {
	tests := []struct {
		name           string
		create         []v1.CategoryRuleEditable
		expectedErrors []string
		expectedStatus int
	}{
		{
			"All successful",
			[]v1.CategoryRuleEditable{
				{Priority: 1, Category: "Pets", Match: "petco"},
				{Priority: 1, Category: "Pets", Match: "vet * clinic", Sign: categorizer.SignExpense},
			},
			[]string{"", ""},
			http.StatusCreated,
		},
		{
			"Second fails",
			[]v1.CategoryRuleEditable{
				{Priority: 1, Category: "Pets", Match: "chewy"},
				{Priority: 1, Category: "Pets", Match: "  "},
			},
			[]string{"", "the match of a category rule must not be empty"},
			http.StatusBadRequest,
		},
		{
			"Invalid sign",
			[]v1.CategoryRuleEditable{
				{Category: "Pets", Match: "chewy", Sign: "sometimes"},
			},
			[]string{"the sign of a category rule must be one of any, expense or income"},
			http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, v1.Controller{}, http.MethodPost, "http://example.com/v1/category-rules", tt.create)
			test.AssertHTTPStatus(t, &r, tt.expectedStatus)

			var tr v1.CategoryRuleCreateResponse
			test.DecodeResponse(t, &r, &tr)

			require.Len(t, tr.Data, len(tt.expectedErrors))
			for i, r := range tr.Data {
				if tt.expectedErrors[i] != "" {
					assert.Equal(t, tt.expectedErrors[i], *r.Error)
				} else {
					assert.Equal(t, fmt.Sprintf("http://example.com/v1/category-rules/%s", r.Data.ID), r.Data.Links.Self)
				}
			}
		})
	}
}

func (suite *TestSuiteStandard) TestCategoryRuleCreateDefaults() {
	rule := suite.createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{Category: " Pets ", Match: " petsmart "})
	require.NotNil(suite.T(), rule.Data)

	assert.Equal(suite.T(), "Pets", rule.Data.Category)
	assert.Equal(suite.T(), "petsmart", rule.Data.Match)
	assert.Equal(suite.T(), categorizer.SignAny, rule.Data.Sign)
}

func (suite *TestSuiteStandard) TestCategoryRuleCreateBrokenJSON() {
	r := test.Request(suite.T(), v1.Controller{}, http.MethodPost, "http://example.com/v1/category-rules", `[{ "match": 2 }]`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCategoryRuleList() {
	suite.createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{Priority: 1, Category: "Pets", Match: "petco"})
	suite.createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{Priority: 2, Category: "Pets", Match: "chewy", Sign: categorizer.SignExpense})

	tests := []struct {
		name  string
		query string
		len   int
		total int64
	}{
		{"Category", "category=Pets", 2, 2},
		{"Priority", "priority=2", 1, 1},
		{"Sign", "sign=expense", 1, 1},
		{"Match", "match=pet", 1, 1},
		{"Offset and limit", "category=Pets&offset=1&limit=1", 1, 2},
		{"Built-in Food rules", "category=Food", 6, 6},
		{"Default limit", "", 50, 65},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, v1.Controller{}, http.MethodGet, "http://example.com/v1/category-rules?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.CategoryRuleListResponse
			test.DecodeResponse(t, &r, &response)

			assert.Len(t, response.Data, tt.len)
			assert.Equal(t, tt.total, response.Pagination.Total)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoryRuleListOrder() {
	suite.createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{Priority: 2, Category: "Pets", Match: "b"})
	suite.createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{Priority: 1, Category: "Pets", Match: "c"})
	suite.createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{Priority: 1, Category: "Pets", Match: "a"})

	r := test.Request(suite.T(), v1.Controller{}, http.MethodGet, "http://example.com/v1/category-rules?category=Pets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryRuleListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	matches := make([]string, 0)
	for _, rule := range response.Data {
		matches = append(matches, rule.Match)
	}
	assert.Equal(suite.T(), []string{"a", "c", "b"}, matches)
}

func (suite *TestSuiteStandard) TestCategoryRuleGet() {
	rule := suite.createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{Category: "Pets", Match: "petco"})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing", rule.Data.ID.String(), http.StatusOK},
		{"Does not exist", uuid.New().String(), http.StatusNotFound},
		{"Invalid UUID", "not-a-uuid", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, v1.Controller{}, http.MethodGet, "http://example.com/v1/category-rules/"+tt.id, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			r = test.Request(t, v1.Controller{}, http.MethodOptions, "http://example.com/v1/category-rules/"+tt.id, "")
			if tt.status == http.StatusOK {
				test.AssertHTTPStatus(t, &r, http.StatusNoContent)
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
				return
			}
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoryRuleUpdate() {
	rule := suite.createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{Priority: 5, Category: "Pets", Match: "petco", Note: "Food for the cat"})
	path := rule.Data.Links.Self

	tests := []struct {
		name   string
		body   any
		status int
		check  func(t *testing.T, rule v1.CategoryRule)
	}{
		{
			"Category only",
			map[string]any{"category": "Animals"},
			http.StatusOK,
			func(t *testing.T, rule v1.CategoryRule) {
				assert.Equal(t, "Animals", rule.Category)
				assert.Equal(t, "petco", rule.Match, "Fields that are not set must not change")
				assert.Equal(t, uint(5), rule.Priority)
				assert.Equal(t, "Food for the cat", rule.Note)
			},
		},
		{
			"Priority to zero",
			map[string]any{"priority": 0},
			http.StatusOK,
			func(t *testing.T, rule v1.CategoryRule) {
				assert.Equal(t, uint(0), rule.Priority)
			},
		},
		{"Empty match", map[string]any{"match": ""}, http.StatusBadRequest, nil},
		{"Invalid sign", map[string]any{"sign": "both"}, http.StatusBadRequest, nil},
		{"Broken JSON", `{ "priority": "high" }`, http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, v1.Controller{}, http.MethodPatch, path, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.check == nil {
				return
			}

			var response v1.CategoryRuleResponse
			test.DecodeResponse(t, &r, &response)
			tt.check(t, *response.Data)
		})
	}

	// Failed updates must not be stored
	r := test.Request(suite.T(), v1.Controller{}, http.MethodGet, path, "")
	var response v1.CategoryRuleResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "petco", response.Data.Match)
	assert.Equal(suite.T(), categorizer.SignAny, response.Data.Sign)

	r = test.Request(suite.T(), v1.Controller{}, http.MethodPatch, "http://example.com/v1/category-rules/"+uuid.New().String(), map[string]any{"category": "Pets"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCategoryRuleDelete() {
	rule := suite.createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{Category: "Pets", Match: "petco"})

	r := test.Request(suite.T(), v1.Controller{}, http.MethodDelete, rule.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), v1.Controller{}, http.MethodGet, rule.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), v1.Controller{}, http.MethodDelete, rule.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// TestCategoryRuleUsedByAnalysis verifies that rules from the database are
// used for the categorization.
func (suite *TestSuiteStandard) TestCategoryRuleUsedByAnalysis() {
	suite.createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{Priority: 1, Category: "Pets", Match: "pet*supplies"})

	r := test.Request(suite.T(), v1.Controller{}, http.MethodPost, "http://example.com/v1/categorizations", []v1.CategorizationEditable{
		{Description: "PET WORLD SUPPLIES", Amount: decimal.NewFromInt(-20)},
		{Description: "The pet supplies shop", Amount: decimal.NewFromInt(-20)},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategorizationListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), "Pets", response.Data[0].Category)

	// Globs match the whole description, the built-in "supplies" rule matches instead
	assert.Equal(suite.T(), "Education", response.Data[1].Category)
}

// TestCategoryRuleNotFoundMessage verifies that errors for unknown IDs name the resource.
func (suite *TestSuiteStandard) TestCategoryRuleNotFoundMessage() {
	id := uuid.New().String()

	for _, method := range []string{http.MethodGet, http.MethodDelete, http.MethodOptions} {
		suite.T().Run(method, func(t *testing.T) {
			r := test.Request(t, v1.Controller{}, method, "http://example.com/v1/category-rules/"+id, "")
			test.AssertHTTPStatus(t, &r, http.StatusNotFound)
			assert.Equal(t, "there is no category rule with this ID", test.DecodeError(t, r.Body.Bytes()))
		})
	}

	r := test.Request(suite.T(), v1.Controller{}, http.MethodPatch, "http://example.com/v1/category-rules/"+id, map[string]any{"category": "Pets"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	assert.Equal(suite.T(), "there is no category rule with this ID", test.DecodeError(suite.T(), r.Body.Bytes()))

	r = test.Request(suite.T(), v1.Controller{}, http.MethodGet, "http://example.com/v1/category-rules/"+uuid.Nil.String(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/ledgerlens/backend/internal/controllers/v1"
	"github.com/ledgerlens/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsHeaderResources() {
	optionsHeaderTests := []struct {
		path     string
		response string
	}{
		{"http://example.com", "OPTIONS, GET"},
		{"http://example.com/version", "OPTIONS, GET"},
		{"http://example.com/healthz", "OPTIONS, GET"},
		{"http://example.com/v1", "OPTIONS, GET"},
		{"http://example.com/v1/analyses", "OPTIONS, POST"},
		{"http://example.com/v1/categorizations", "OPTIONS, POST"},
		{"http://example.com/v1/benchmarks", "OPTIONS, GET"},
		{"http://example.com/v1/benchmarks/50k-100k", "OPTIONS, GET"},
		{"http://example.com/v1/category-rules", "OPTIONS, GET, POST"},
		{"http://example.com/v1/samples", "OPTIONS, GET"},
	}

	for _, tt := range optionsHeaderTests {
		suite.T().Run(tt.path, func(t *testing.T) {
			recorder := test.Request(t, v1.Controller{}, http.MethodOptions, tt.path, "")

			assert.Equal(t, http.StatusNoContent, recorder.Code)
			assert.Equal(t, tt.response, recorder.Header().Get("allow"))
		})
	}
}

package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ledgerlens/backend/internal/categorizer"
	"github.com/ledgerlens/backend/internal/httputil"
	"github.com/ledgerlens/backend/internal/insights"
	"github.com/ledgerlens/backend/internal/models"
	"github.com/shopspring/decimal"
)

// Controller holds the settings for the analysis endpoints. The zero value
// categorizes with the rules only and uses the default threshold.
type Controller struct {
	Primary           categorizer.Classifier // Consulted before the rules, optional
	ClassifierTimeout time.Duration
	MinConfidence     float64
	Threshold         decimal.Decimal
	MaxUploadBytes    int64
}

// categorizer creates a categorizer with a snapshot of the current rules.
func (co Controller) categorizer() (*categorizer.Categorizer, error) {
	rules, err := models.Rules(models.DB)
	if err != nil {
		return nil, err
	}

	return categorizer.New(categorizer.Options{
		Primary:       co.Primary,
		Rules:         categorizer.NewRuleClassifier(rules),
		Timeout:       co.ClassifierTimeout,
		MinConfidence: co.MinConfidence,
	}), nil
}

// engine creates an insights engine with the current benchmark profiles.
func (co Controller) engine(threshold decimal.Decimal) (insights.Engine, error) {
	set, err := models.Benchmarks(models.DB)
	if err != nil {
		return insights.Engine{}, err
	}

	if !threshold.IsPositive() {
		threshold = co.Threshold
	}

	return insights.New(threshold, set), nil
}

// RegisterRoutes registers all v1 routes with the RouterGroup that is passed.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)

	co.RegisterAnalysisRoutes(r.Group("/analyses"))
	co.RegisterCategorizationRoutes(r.Group("/categorizations"))
	RegisterBenchmarkRoutes(r.Group("/benchmarks"))
	RegisterCategoryRuleRoutes(r.Group("/category-rules"))
	RegisterSampleRoutes(r.Group("/samples"))
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Analyses        string `json:"analyses" example:"https://example.com/api/v1/analyses"`               // URL of the analysis endpoint
	Categorizations string `json:"categorizations" example:"https://example.com/api/v1/categorizations"` // URL of the categorization preview endpoint
	Benchmarks      string `json:"benchmarks" example:"https://example.com/api/v1/benchmarks"`           // URL of Benchmark collection endpoint
	CategoryRules   string `json:"categoryRules" example:"https://example.com/api/v1/category-rules"`    // URL of Category Rule collection endpoint
	Samples         string `json:"samples" example:"https://example.com/api/v1/samples"`                 // URL of the sample statement endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Analyses:        url + "/v1/analyses",
			Categorizations: url + "/v1/categorizations",
			Benchmarks:      url + "/v1/benchmarks",
			CategoryRules:   url + "/v1/category-rules",
			Samples:         url + "/v1/samples",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

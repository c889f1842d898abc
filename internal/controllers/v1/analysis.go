package v1

import (
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/ledgerlens/backend/internal/httputil"
	"github.com/ledgerlens/backend/internal/importer"
	"github.com/rs/zerolog/log"
)

// RegisterAnalysisRoutes registers the routes for analyses with
// the RouterGroup that is passed.
func (co Controller) RegisterAnalysisRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsAnalyses)
	r.POST("", co.CreateAnalysis)
}

// OptionsAnalyses returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Analyses
//	@Success		204
//	@Router			/v1/analyses [options]
func OptionsAnalyses(c *gin.Context) {
	httputil.OptionsPost(c)
}

// CreateAnalysis analyses an uploaded statement
//
//	@Summary		Analyse a statement
//	@Description	Imports the uploaded statement, categorizes all transactions and returns trends, a category breakdown, a benchmark comparison and recommendations. Nothing is stored.
//	@Tags			Analyses
//	@Accept			multipart/form-data
//	@Produce		json
//	@Success		200			{object}	AnalysisResponse
//	@Failure		400			{object}	AnalysisResponse
//	@Failure		413			{object}	AnalysisResponse
//	@Failure		500			{object}	AnalysisResponse
//	@Param			file		formData	file	true	"Statement in CSV format with the columns date, description, amount and optionally category"
//	@Param			bracket		query		string	false	"Income bracket to compare with: under-50k, 50k-100k or over-100k"
//	@Param			income		query		string	false	"Annual income. Selects the bracket if no bracket is set"
//	@Param			savingsGoal	query		string	false	"Savings goal for the statement period"
//	@Param			threshold	query		string	false	"Minimum difference to the benchmark in percentage points for a recommendation"
//	@Router			/v1/analyses [post]
func (co Controller) CreateAnalysis(c *gin.Context) {
	var filter AnalysisQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, AnalysisResponse{Error: &e})
		return
	}

	options, threshold, err := filter.Options()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AnalysisResponse{Error: &e})
		return
	}

	f, err := httputil.UploadedFile(c, co.MaxUploadBytes, ".csv", ".tsv", ".txt")
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AnalysisResponse{Error: &e})
		return
	}
	defer f.Close()

	result, err := importer.Parse(f, importer.Options{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AnalysisResponse{Error: &e})
		return
	}

	cat, err := co.categorizer()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AnalysisResponse{Error: &e})
		return
	}

	engine, err := co.engine(threshold)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AnalysisResponse{Error: &e})
		return
	}

	transactions := cat.Categorize(c.Request.Context(), result.Transactions)
	summary := engine.Analyze(transactions, options)

	log.Debug().
		Str("request-id", requestid.Get(c)).
		Int("rows", result.Rows).
		Int("skipped", len(result.Skipped)).
		Int("recommendations", len(summary.Recommendations)).
		Msg("analysis")

	analysis := NewAnalysis(result, transactions, summary)
	c.JSON(http.StatusOK, AnalysisResponse{Data: &analysis})
}

package v1

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ledgerlens/backend/internal/httputil"
	"github.com/ledgerlens/backend/internal/sample"
)

// RegisterSampleRoutes registers the routes for sample statements with
// the RouterGroup that is passed.
func RegisterSampleRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSamples)
	r.GET("", GetSample)
}

// SampleQueryFilter configures the generated statement.
type SampleQueryFilter struct {
	Months     int    `form:"months" binding:"omitempty,min=1,max=24"` // Number of months, defaults to 6
	Seed       uint64 `form:"seed"`                                    // Seed for a reproducible statement
	Categories bool   `form:"categories"`                              // Include the category column
}

// OptionsSamples returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Samples
//	@Success		204
//	@Router			/v1/samples [options]
func OptionsSamples(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetSample returns a generated statement
//
//	@Summary		Generate a sample statement
//	@Description	Returns a generated bank statement in CSV format that can be uploaded to the analysis endpoint
//	@Tags			Samples
//	@Produce		text/csv
//	@Success		200			{file}		file
//	@Failure		400			{object}	httpError
//	@Param			months		query		int		false	"Number of months, between 1 and 24. Defaults to 6"
//	@Param			seed		query		int		false	"Seed for a reproducible statement"
//	@Param			categories	query		bool	false	"Include the category column"
//	@Router			/v1/samples [get]
func GetSample(c *gin.Context) {
	var filter SampleQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	transactions := sample.Generate(sample.Options{Months: filter.Months, Seed: filter.Seed})

	var buf bytes.Buffer
	if err := sample.WriteCSV(&buf, transactions, filter.Categories); err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: err.Error()})
		return
	}

	months := filter.Months
	if months == 0 {
		months = sample.DefaultMonths
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=sample-statement-%dm.csv", months))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ledgerlens/backend/internal/benchmark"
	"github.com/ledgerlens/backend/internal/httputil"
	"github.com/ledgerlens/backend/internal/models"
)

// RegisterBenchmarkRoutes registers the routes for benchmark profiles with
// the RouterGroup that is passed.
func RegisterBenchmarkRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsBenchmarks)
		r.GET("", GetBenchmarks)
	}

	{
		r.OPTIONS("/:bracket", OptionsBenchmarks)
		r.GET("/:bracket", GetBenchmark)
	}
}

type URIBracket struct {
	Bracket string `uri:"bracket" binding:"required,bracket" example:"50k-100k"` // Income bracket
}

type BenchmarkListResponse struct {
	Error *string             `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
	Data  []benchmark.Profile `json:"data"`                                                                // Profiles ordered by bracket
}

type BenchmarkResponse struct {
	Error *string            `json:"error" example:"there is no benchmark profile for the bracket over-100k"` // The error, if any occurred
	Data  *benchmark.Profile `json:"data"`                                                                    // The profile
}

// OptionsBenchmarks returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Benchmarks
//	@Success		204
//	@Router			/v1/benchmarks [options]
//	@Router			/v1/benchmarks/{bracket} [options]
func OptionsBenchmarks(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetBenchmarks returns all benchmark profiles
//
//	@Summary		Get benchmark profiles
//	@Description	Returns the spending shares per category for every income bracket
//	@Tags			Benchmarks
//	@Produce		json
//	@Success		200	{object}	BenchmarkListResponse
//	@Failure		500	{object}	BenchmarkListResponse
//	@Router			/v1/benchmarks [get]
func GetBenchmarks(c *gin.Context) {
	set, err := models.Benchmarks(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BenchmarkListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, BenchmarkListResponse{Data: set.Profiles()})
}

// GetBenchmark returns the benchmark profile of a bracket
//
//	@Summary		Get benchmark profile
//	@Description	Returns the spending shares per category for one income bracket
//	@Tags			Benchmarks
//	@Produce		json
//	@Success		200		{object}	BenchmarkResponse
//	@Failure		400		{object}	BenchmarkResponse
//	@Failure		404		{object}	BenchmarkResponse
//	@Failure		500		{object}	BenchmarkResponse
//	@Param			bracket	path		string	true	"under-50k, 50k-100k or over-100k"
//	@Router			/v1/benchmarks/{bracket} [get]
func GetBenchmark(c *gin.Context) {
	var uri URIBracket
	if err := c.ShouldBindUri(&uri); err != nil {
		e := fmt.Sprintf("the bracket must be one of %v", benchmark.Brackets())
		c.JSON(http.StatusBadRequest, BenchmarkResponse{Error: &e})
		return
	}

	// Validated by the binding
	bracket, _ := benchmark.ParseBracket(uri.Bracket)

	set, err := models.Benchmarks(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BenchmarkResponse{Error: &e})
		return
	}

	profile, ok := set.Profile(bracket)
	if !ok {
		e := fmt.Errorf("%w %s", errProfileNotFound, bracket).Error()
		c.JSON(http.StatusNotFound, BenchmarkResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, BenchmarkResponse{Data: &profile})
}

package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ledgerlens/backend/internal/categorizer"
	"github.com/ledgerlens/backend/internal/httputil"
	"github.com/ledgerlens/backend/internal/ledger"
	"github.com/shopspring/decimal"
)

// RegisterCategorizationRoutes registers the routes for categorizations with
// the RouterGroup that is passed.
func (co Controller) RegisterCategorizationRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsCategorizations)
	r.POST("", co.CreateCategorizations)
}

type CategorizationEditable struct {
	Date        time.Time       `json:"date" example:"2024-03-14T00:00:00Z"`          // Booking date, optional
	Description string          `json:"description" example:"TRADER JOES #552"`       // Description as it appears on the statement
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"-42.17"` // Signed amount, negative values are expenses
	Category    string          `json:"category" example:""`                          // Category, if already known
}

func (editable CategorizationEditable) transaction() ledger.Transaction {
	return ledger.Transaction{
		Date:        editable.Date,
		Description: editable.Description,
		Amount:      editable.Amount,
		Category:    editable.Category,
	}
}

// Categorization is a transaction together with how it was categorized.
type Categorization struct {
	Description string             `json:"description" example:"TRADER JOES #552"`
	Amount      decimal.Decimal    `json:"amount" swaggertype:"string" example:"-42.17"`
	Category    string             `json:"category" example:"Food"`
	Confidence  float64            `json:"confidence" example:"1"` // Between 0 and 1
	Source      categorizer.Source `json:"source" example:"rules"` // input, model, rules or fallback
}

type CategorizationListResponse struct {
	Error *string          `json:"error" example:"the request body must not be empty"` // The error, if any occurred
	Data  []Categorization `json:"data"`                                               // One categorization per submitted transaction, in the same order
}

// OptionsCategorizations returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Categorizations
//	@Success		204
//	@Router			/v1/categorizations [options]
func OptionsCategorizations(c *gin.Context) {
	httputil.OptionsPost(c)
}

// CreateCategorizations previews the categorization of transactions
//
//	@Summary		Categorize transactions
//	@Description	Categorizes the submitted transactions like an analysis does and returns where every category came from. Nothing is stored.
//	@Tags			Categorizations
//	@Accept			json
//	@Produce		json
//	@Success		200				{object}	CategorizationListResponse
//	@Failure		400				{object}	CategorizationListResponse
//	@Failure		500				{object}	CategorizationListResponse
//	@Param			transactions	body		[]CategorizationEditable	true	"Transactions"
//	@Router			/v1/categorizations [post]
func (co Controller) CreateCategorizations(c *gin.Context) {
	var editables []CategorizationEditable
	if err := httputil.BindData(c, &editables); err != nil {
		e := err.Error()
		c.JSON(status(err), CategorizationListResponse{Error: &e})
		return
	}

	cat, err := co.categorizer()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategorizationListResponse{Error: &e})
		return
	}

	transactions := make([]ledger.Transaction, 0, len(editables))
	for _, editable := range editables {
		transactions = append(transactions, editable.transaction())
	}

	data := make([]Categorization, 0, len(transactions))
	for _, result := range cat.Explain(c.Request.Context(), transactions) {
		data = append(data, Categorization{
			Description: result.Transaction.Description,
			Amount:      result.Transaction.Amount,
			Category:    result.Classification.Category,
			Confidence:  result.Classification.Confidence,
			Source:      result.Classification.Source,
		})
	}

	c.JSON(http.StatusOK, CategorizationListResponse{Data: data})
}

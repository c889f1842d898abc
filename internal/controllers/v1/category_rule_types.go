package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/ledgerlens/backend/internal/categorizer"
	"github.com/ledgerlens/backend/internal/models"
)

type CategoryRuleEditable struct {
	Priority uint             `json:"priority" example:"10"`                             // Rules with a lower priority are evaluated first
	Category string           `json:"category" example:"Food"`                           // The category assigned to matching transactions
	Match    string           `json:"match" example:"trader joe*"`                       // Keyword contained in the description. With a "*", a glob pattern for the whole description. Case insensitive.
	Sign     categorizer.Sign `json:"sign" example:"expense" enums:"any,expense,income"` // Restricts the rule to expenses or income. Defaults to any.
	Note     string           `json:"note" example:"Groceries"`                          // A note, not used for matching
}

func (editable CategoryRuleEditable) model() models.CategoryRule {
	return models.CategoryRule{
		Priority: editable.Priority,
		Category: editable.Category,
		Match:    editable.Match,
		Sign:     editable.Sign,
		Note:     editable.Note,
	}
}

type CategoryRuleListResponse struct {
	Data       []CategoryRule `json:"data"`                                                          // List of Category Rules
	Error      *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination    `json:"pagination"`                                                    // Pagination information
}

type CategoryRuleCreateResponse struct {
	Error *string                `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []CategoryRuleResponse `json:"data"`                                                          // List of created Category Rules
}

func (m *CategoryRuleCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	m.Data = append(m.Data, CategoryRuleResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryRuleResponse struct {
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this Category Rule
	Data  *CategoryRule `json:"data"`                                                          // The Category Rule data, if creation was successful
}

type CategoryRuleLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/category-rules/95685c82-53c6-455d-b235-f49960b73b21"` // The category rule itself
}

// CategoryRule is the API representation of a Category Rule.
type CategoryRule struct {
	models.DefaultModel
	CategoryRuleEditable
	Links CategoryRuleLinks `json:"links"`
}

func newCategoryRule(c *gin.Context, model models.CategoryRule) CategoryRule {
	url := c.GetString(string(models.DBContextURL))

	return CategoryRule{
		DefaultModel: model.DefaultModel,
		CategoryRuleEditable: CategoryRuleEditable{
			Priority: model.Priority,
			Category: model.Category,
			Match:    model.Match,
			Sign:     model.Sign,
			Note:     model.Note,
		},
		Links: CategoryRuleLinks{
			Self: fmt.Sprintf("%s/v1/category-rules/%s", url, model.ID),
		},
	}
}

// CategoryRuleQueryFilter contains the fields that Category Rules can be filtered with.
type CategoryRuleQueryFilter struct {
	Priority uint   `form:"priority"`                   // By priority
	Category string `form:"category"`                   // By category
	Sign     string `form:"sign"`                       // By sign
	Match    string `form:"match" filterField:"false"`  // By match
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first Category Rule returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of Category Rules to return. Defaults to 50.
}

func (f CategoryRuleQueryFilter) model() models.CategoryRule {
	return models.CategoryRule{
		Priority: f.Priority,
		Category: f.Category,
		Sign:     categorizer.Sign(f.Sign),
	}
}

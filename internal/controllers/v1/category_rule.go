package v1

import (
	"fmt"
	"net/http"

	"golang.org/x/exp/slices"

	"github.com/gin-gonic/gin"
	"github.com/ledgerlens/backend/internal/httputil"
	"github.com/ledgerlens/backend/internal/models"
	"gorm.io/gorm"
)

// RegisterCategoryRuleRoutes registers the routes for category rules with
// the RouterGroup that is passed.
func RegisterCategoryRuleRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCategoryRuleList)
		r.GET("", GetCategoryRules)
		r.POST("", CreateCategoryRules)
	}

	// CategoryRule with ID
	{
		r.OPTIONS("/:id", OptionsCategoryRuleDetail)
		r.GET("/:id", GetCategoryRule)
		r.PATCH("/:id", UpdateCategoryRule)
		r.DELETE("/:id", DeleteCategoryRule)
	}
}

// OptionsCategoryRuleList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			CategoryRules
//	@Success		204
//	@Router			/v1/category-rules [options]
func OptionsCategoryRuleList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsCategoryRuleDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			CategoryRules
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Failure		500	{object}	httpError
//	@Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
//	@Router			/v1/category-rules/{id} [options]
func OptionsCategoryRuleDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	_, err = getModelByID[models.CategoryRule](uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// CreateCategoryRules creates category rules
//
//	@Summary		Create category rules
//	@Description	Creates category rules from the list of submitted category rule data. The response code is the highest response code number that a single category rule creation would have caused. If it is not equal to 201, at least one category rule has an error.
//	@Tags			CategoryRules
//	@Produce		json
//	@Success		201				{object}	CategoryRuleCreateResponse
//	@Failure		400				{object}	CategoryRuleCreateResponse
//	@Failure		500				{object}	CategoryRuleCreateResponse
//	@Param			categoryRules	body		[]CategoryRuleEditable	true	"Category Rules"
//	@Router			/v1/category-rules [post]
func CreateCategoryRules(c *gin.Context) {
	var categoryRules []CategoryRuleEditable

	err := httputil.BindData(c, &categoryRules)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryRuleCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := CategoryRuleCreateResponse{}

	for _, editable := range categoryRules {
		categoryRule := editable.model()

		err = models.DB.Create(&categoryRule).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newCategoryRule(c, categoryRule)
		r.Data = append(r.Data, CategoryRuleResponse{Data: &data})
	}

	c.JSON(status, r)
}

// GetCategoryRules returns a list of category rules
//
//	@Summary		Get category rules
//	@Description	Returns a list of category rules in the order they are evaluated in
//	@Tags			CategoryRules
//	@Produce		json
//	@Success		200			{object}	CategoryRuleListResponse
//	@Failure		400			{object}	CategoryRuleListResponse
//	@Failure		500			{object}	CategoryRuleListResponse
//	@Param			priority	query		uint	false	"Filter by priority"
//	@Param			category	query		string	false	"Filter by category"
//	@Param			sign		query		string	false	"Filter by sign"
//	@Param			match		query		string	false	"Filter by match"
//	@Param			offset		query		uint	false	"The offset of the first Category Rule returned. Defaults to 0."
//	@Param			limit		query		int		false	"Maximum number of Category Rules to return. Defaults to 50.".
//	@Router			/v1/category-rules [get]
func GetCategoryRules(c *gin.Context) {
	var filter CategoryRuleQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, CategoryRuleListResponse{
			Error: &s,
		})
		return
	}

	// Get the parameters set in the query string
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	model := filter.model()
	q := models.DB.
		Order("priority ASC, match ASC").
		Where(&model, queryFields...)

	// Filter for match containing the query string or explicitly empty one
	if filter.Match != "" {
		q = q.Where("match LIKE ?", fmt.Sprintf("%%%s%%", filter.Match))
	} else if slices.Contains(setFields, "Match") {
		q = q.Where("match = ''")
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 Category Rules and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var categoryRules []models.CategoryRule
	err := q.Find(&categoryRules).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryRuleListResponse{Error: &e})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryRuleListResponse{
			Error: &e,
		})
		return
	}

	data := make([]CategoryRule, 0)
	for _, categoryRule := range categoryRules {
		data = append(data, newCategoryRule(c, categoryRule))
	}

	c.JSON(http.StatusOK, CategoryRuleListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// GetCategoryRule returns a specific category rule
//
//	@Summary		Get category rule
//	@Description	Returns a specific category rule
//	@Tags			CategoryRules
//	@Produce		json
//	@Success		200	{object}	CategoryRuleResponse
//	@Failure		400	{object}	CategoryRuleResponse
//	@Failure		404	{object}	CategoryRuleResponse
//	@Failure		500	{object}	CategoryRuleResponse
//	@Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
//	@Router			/v1/category-rules/{id} [get]
func GetCategoryRule(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryRuleResponse{
			Error: &e,
		})
		return
	}

	categoryRule, err := getModelByID[models.CategoryRule](uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryRuleResponse{Error: &s})
		return
	}
	data := newCategoryRule(c, categoryRule)

	c.JSON(http.StatusOK, CategoryRuleResponse{
		Data: &data,
	})
}

// UpdateCategoryRule updates a category rule
//
//	@Summary		Update category rule
//	@Description	Update a category rule. Only values to be updated need to be specified.
//	@Tags			CategoryRules
//	@Accept			json
//	@Produce		json
//	@Success		200				{object}	CategoryRuleResponse
//	@Failure		400				{object}	CategoryRuleResponse
//	@Failure		404				{object}	CategoryRuleResponse
//	@Failure		500				{object}	CategoryRuleResponse
//	@Param			id				path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
//	@Param			categoryRule	body		CategoryRuleEditable	true	"CategoryRule"
//	@Router			/v1/category-rules/{id} [patch]
func UpdateCategoryRule(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryRuleResponse{
			Error: &e,
		})
		return
	}

	categoryRule, err := getModelByID[models.CategoryRule](uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryRuleResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, CategoryRuleEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryRuleResponse{
			Error: &e,
		})
		return
	}

	var data CategoryRuleEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryRuleResponse{
			Error: &e,
		})
		return
	}

	// Hooks only see the stored values, the updated rule is validated afterwards
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&categoryRule).Select("", updateFields...).Updates(data.model()).Error; err != nil {
			return err
		}
		return categoryRule.Validate()
	})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryRuleResponse{
			Error: &e,
		})
		return
	}

	apiResource := newCategoryRule(c, categoryRule)
	c.JSON(http.StatusOK, CategoryRuleResponse{
		Data: &apiResource,
	})
}

// DeleteCategoryRule deletes a category rule
//
//	@Summary		Delete category rule
//	@Description	Deletes a category rule
//	@Tags			CategoryRules
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Failure		500	{object}	httpError
//	@Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
//	@Router			/v1/category-rules/{id} [delete]
func DeleteCategoryRule(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	categoryRule, err := getModelByID[models.CategoryRule](uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&categoryRule).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, gin.H{})
}

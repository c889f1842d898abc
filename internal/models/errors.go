package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

var (
	ErrCategoryRuleMatchEmpty    = errors.New("the match of a category rule must not be empty")
	ErrCategoryRuleCategoryEmpty = errors.New("the category of a category rule must not be empty")
	ErrCategoryRuleSignInvalid   = errors.New("the sign of a category rule must be one of any, expense or income")
)

var (
	ErrBenchmarkShareNotUnique   = errors.New("the bracket already has a share for this category")
	ErrBenchmarkShareBracket     = errors.New("the bracket of a benchmark share must be one of under-50k, 50k-100k or over-100k")
	ErrBenchmarkShareOutOfBounds = errors.New("a benchmark share must be between 0 and 100")
)

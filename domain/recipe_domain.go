package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"recipe-catalog/entities"

	"github.com/go-playground/validator/v10"
)

var (
	MessageSuccessCreateRecipe    = "recipe created"
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"

	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageRecipeNotFound        = "Recipe not found"
	MessageInvalidRecipeID       = "recipe id must be an integer"

	ErrRecipeNotFound  = errors.New("recipe not found")
	ErrInvalidRecipeID = errors.New("invalid recipe id")
)

type (
	CreateRecipeRequest struct {
		Title       string  `json:"title" validate:"required"`
		CookingTime *int    `json:"cooking_time" validate:"required,gt=0"`
		Ingredients *string `json:"ingredients" validate:"required"`
		Description *string `json:"description" validate:"required"`
	}

	RecipeSummaryResponse struct {
		ID          uint   `json:"id"`
		Title       string `json:"title"`
		Views       int    `json:"views"`
		CookingTime int    `json:"cooking_time"`
	}

	RecipeDetailResponse struct {
		ID          uint   `json:"id"`
		Title       string `json:"title"`
		CookingTime int    `json:"cooking_time"`
		Ingredients string `json:"ingredients"`
		Description string `json:"description"`
		Views       int    `json:"views"`
	}

	FieldError struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	}

	// ValidationError is returned for request bodies that fail decoding or field rules.
	ValidationError struct {
		Fields []FieldError
	}
)

// ToEntity builds a new, never-viewed recipe from a validated request.
func (r CreateRecipeRequest) ToEntity() *entities.Recipe {
	recipe := &entities.Recipe{
		Title: r.Title,
		Views: 0,
	}
	if r.CookingTime != nil {
		recipe.CookingTime = *r.CookingTime
	}
	if r.Ingredients != nil {
		recipe.Ingredients = *r.Ingredients
	}
	if r.Description != nil {
		recipe.Description = *r.Description
	}
	return recipe
}

func NewRecipeSummary(recipe *entities.Recipe) RecipeSummaryResponse {
	return RecipeSummaryResponse{
		ID:          recipe.ID,
		Title:       recipe.Title,
		Views:       recipe.Views,
		CookingTime: recipe.CookingTime,
	}
}

func NewRecipeSummaries(recipes []*entities.Recipe) []RecipeSummaryResponse {
	res := make([]RecipeSummaryResponse, 0, len(recipes))
	for _, recipe := range recipes {
		res = append(res, NewRecipeSummary(recipe))
	}
	return res
}

func NewRecipeDetail(recipe *entities.Recipe) RecipeDetailResponse {
	return RecipeDetailResponse{
		ID:          recipe.ID,
		Title:       recipe.Title,
		CookingTime: recipe.CookingTime,
		Ingredients: recipe.Ingredients,
		Description: recipe.Description,
		Views:       recipe.Views,
	}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError converts validator and JSON decoding errors into field
// errors. Anything else becomes a single "body" entry.
func NewValidationError(err error) *ValidationError {
	var (
		verrs   validator.ValidationErrors
		typeErr *json.UnmarshalTypeError
	)
	switch {
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return &ValidationError{Fields: []FieldError{{Field: typeErr.Field, Message: typeMessage(typeErr.Type)}}}
	case !errors.As(err, &verrs):
		return &ValidationError{Fields: []FieldError{{Field: "body", Message: MessageFailedBodyRequest}}}
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return &ValidationError{Fields: fields}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}

func typeMessage(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "must be an integer"
	case reflect.String:
		return "must be a string"
	default:
		return fmt.Sprintf("must be of type %s", t.Kind())
	}
}

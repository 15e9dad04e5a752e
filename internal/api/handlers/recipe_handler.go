package handlers

import (
	"errors"

	"recipe-catalog/domain"
	"recipe-catalog/internal/api/presenters"
	"recipe-catalog/pkg/recipe"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type (
	RecipeHandler interface {
		CreateRecipe(c *fiber.Ctx) error
		GetRecipes(c *fiber.Ctx) error
		GetRecipeDetail(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	req := new(domain.CreateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ValidationErrorResponse(c, domain.NewValidationError(err))
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ValidationErrorResponse(c, domain.NewValidationError(err))
	}

	res, err := h.recipeService.CreateRecipe(c.Context(), *req)
	if err != nil {
		return failure(c, domain.MessageFailedCreateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated)
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	res, err := h.recipeService.GetRecipes(c.Context())
	if err != nil {
		return failure(c, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *recipeHandler) GetRecipeDetail(c *fiber.Ctx) error {
	recipeID, err := c.ParamsInt("id")
	if err != nil {
		return presenters.ValidationErrorResponse(c, &domain.ValidationError{
			Fields: []domain.FieldError{{Field: "id", Message: domain.MessageInvalidRecipeID}},
		})
	}
	if recipeID < 1 {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageRecipeNotFound)
	}

	res, err := h.recipeService.GetRecipeDetail(c.Context(), uint(recipeID))
	if err != nil {
		return failure(c, domain.MessageFailedGetRecipeDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

// failure maps service errors onto status codes. Anything unexpected is logged
// and hidden behind a generic 500.
func failure(c *fiber.Ctx, message string, err error) error {
	switch {
	case errors.Is(err, domain.ErrRecipeNotFound):
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageRecipeNotFound)
	case errors.Is(err, domain.ErrStorageUnavailable):
		log.Errorw(message, "path", c.Path(), "error", err)
		return presenters.ErrorResponse(c, fiber.StatusServiceUnavailable, domain.MessageStorageUnavailable)
	default:
		log.Errorw(message, "path", c.Path(), "error", err)
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageInternalServerError)
	}
}

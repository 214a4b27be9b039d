package server

import (
	"recipebox/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetIngredients handles GET /api/recipe/ingredients
// @Summary List ingredients
// @Description List the caller's ingredients ordered by name. With assigned_only=1, only ingredients used by at least one recipe are returned, deduplicated.
// @Tags ingredients
// @Produce json
// @Security BearerAuth
// @Param assigned_only query int false "Restrict to ingredients referenced by a recipe"
// @Success 200 {array} server.IngredientResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /recipe/ingredients [get]
func (s *Server) GetIngredients(c *fiber.Ctx) error {
	assignedOnly := c.Query("assigned_only") == "1" || c.Query("assigned_only") == "true"
	ingredients, err := s.ingredientRepo.List(c.Context(), currentUserID(c), assignedOnly)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.JSON(toIngredientResponses(ingredients))
}

// CreateIngredient handles POST /api/recipe/ingredients
// @Summary Create ingredient
// @Tags ingredients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{name=string} true "Ingredient"
// @Success 201 {object} server.IngredientResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /recipe/ingredients [post]
func (s *Server) CreateIngredient(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Name == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewFieldValidationError("name", "this field is required"))
	}

	ingredient := &models.Ingredient{Name: req.Name, UserID: currentUserID(c)}
	if err := s.ingredientRepo.Create(c.Context(), ingredient); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.Status(fiber.StatusCreated).JSON(toIngredientResponse(*ingredient))
}

// GetIngredient handles GET /api/recipe/ingredients/:id
// @Summary Get ingredient
// @Tags ingredients
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ingredient ID"
// @Success 200 {object} server.IngredientResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /recipe/ingredients/{id} [get]
func (s *Server) GetIngredient(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}
	ingredient, err := s.ingredientRepo.GetByID(c.Context(), currentUserID(c), id)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.JSON(toIngredientResponse(*ingredient))
}

// UpdateIngredient handles PUT/PATCH /api/recipe/ingredients/:id
// @Summary Update ingredient
// @Tags ingredients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ingredient ID"
// @Param request body object{name=string} true "Ingredient"
// @Success 200 {object} server.IngredientResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /recipe/ingredients/{id} [patch]
func (s *Server) UpdateIngredient(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Name == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewFieldValidationError("name", "this field is required"))
	}

	ingredient, err := s.ingredientRepo.GetByID(c.Context(), currentUserID(c), id)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	ingredient.Name = req.Name
	if err := s.ingredientRepo.Update(c.Context(), ingredient); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.JSON(toIngredientResponse(*ingredient))
}

// DeleteIngredient handles DELETE /api/recipe/ingredients/:id
// @Summary Delete ingredient
// @Tags ingredients
// @Security BearerAuth
// @Param id path int true "Ingredient ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /recipe/ingredients/{id} [delete]
func (s *Server) DeleteIngredient(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}
	if err := s.ingredientRepo.Delete(c.Context(), currentUserID(c), id); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

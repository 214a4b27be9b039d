package server

import (
	"recipebox/internal/models"
	"recipebox/internal/service"

	"github.com/gofiber/fiber/v2"
)

// recipeRequest is the recipe write payload. Pointer fields distinguish
// absent fields from zero values so PATCH leaves omitted fields alone.
type recipeRequest struct {
	Title       *string  `json:"title"`
	Duration    *int     `json:"duration"`
	Price       *float64 `json:"price"`
	Link        *string  `json:"link"`
	Tags        *[]uint  `json:"tags"`
	Ingredients *[]uint  `json:"ingredients"`
}

func (r recipeRequest) toInput() service.RecipeInput {
	return service.RecipeInput{
		Title:         r.Title,
		Duration:      r.Duration,
		Price:         r.Price,
		Link:          r.Link,
		TagIDs:        r.Tags,
		IngredientIDs: r.Ingredients,
	}
}

// GetRecipes handles GET /api/recipe/recipes
// @Summary List recipes
// @Description List the caller's recipes in the flat shape (relations as ID arrays)
// @Tags recipes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} server.RecipeResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /recipe/recipes [get]
func (s *Server) GetRecipes(c *fiber.Ctx) error {
	recipes, err := s.recipeRepo.List(c.Context(), currentUserID(c))
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.JSON(toRecipeResponses(recipes))
}

// CreateRecipe handles POST /api/recipe/recipes
// @Summary Create recipe
// @Description Create a recipe owned by the caller. Tag/ingredient IDs must resolve within the caller's own records.
// @Tags recipes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body server.recipeRequest true "Recipe"
// @Success 201 {object} server.RecipeResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /recipe/recipes [post]
func (s *Server) CreateRecipe(c *fiber.Ctx) error {
	var req recipeRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	recipe, err := s.recipeService.Create(c.Context(), currentUserID(c), req.toInput())
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.Status(fiber.StatusCreated).JSON(toRecipeResponse(recipe))
}

// GetRecipe handles GET /api/recipe/recipes/:id
// @Summary Get recipe
// @Description Retrieve a single recipe in the expanded shape (relations nested)
// @Tags recipes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Success 200 {object} server.RecipeDetailResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /recipe/recipes/{id} [get]
func (s *Server) GetRecipe(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}
	recipe, err := s.recipeRepo.GetByID(c.Context(), currentUserID(c), id)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.JSON(s.toRecipeDetailResponse(recipe))
}

// UpdateRecipe handles PUT /api/recipe/recipes/:id
// @Summary Update recipe
// @Description Full update. Relation fields replace the association set wholesale; a full update that omits them clears the set.
// @Tags recipes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Param request body server.recipeRequest true "Recipe"
// @Success 200 {object} server.RecipeResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /recipe/recipes/{id} [put]
func (s *Server) UpdateRecipe(c *fiber.Ctx) error {
	return s.updateRecipe(c, true)
}

// PartialUpdateRecipe handles PATCH /api/recipe/recipes/:id
// @Summary Partially update recipe
// @Description Partial update. Omitted fields, including relation fields, are left untouched.
// @Tags recipes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Param request body server.recipeRequest true "Fields to update"
// @Success 200 {object} server.RecipeResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /recipe/recipes/{id} [patch]
func (s *Server) PartialUpdateRecipe(c *fiber.Ctx) error {
	return s.updateRecipe(c, false)
}

// updateRecipe implements both PUT and PATCH. The service treats a nil
// relation slice as "field absent, leave the set alone"; a full update has
// no absent fields, so PUT coerces omitted relations to empty sets and
// thereby clears them.
func (s *Server) updateRecipe(c *fiber.Ctx, full bool) error {
	id, err := parseIDParam(c)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}
	var req recipeRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if full {
		if req.Tags == nil {
			req.Tags = &[]uint{}
		}
		if req.Ingredients == nil {
			req.Ingredients = &[]uint{}
		}
	}

	recipe, err := s.recipeService.Update(c.Context(), currentUserID(c), id, req.toInput())
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.JSON(toRecipeResponse(recipe))
}

// DeleteRecipe handles DELETE /api/recipe/recipes/:id
// @Summary Delete recipe
// @Tags recipes
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /recipe/recipes/{id} [delete]
func (s *Server) DeleteRecipe(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}
	if err := s.recipeRepo.Delete(c.Context(), currentUserID(c), id); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

package service

import (
	"context"

	"recipebox/internal/models"
	"recipebox/internal/repository"
)

// RecipeService owns recipe write semantics: required-field checks, owner
// stamping, and the full-replace vs leave-untouched contract for relation
// fields. A nil relation slice means "field absent from the payload".
type RecipeService struct {
	recipes     repository.RecipeRepository
	tags        repository.TagRepository
	ingredients repository.IngredientRepository
}

// NewRecipeService returns a RecipeService over the given repositories.
func NewRecipeService(recipes repository.RecipeRepository, tags repository.TagRepository, ingredients repository.IngredientRepository) *RecipeService {
	return &RecipeService{recipes: recipes, tags: tags, ingredients: ingredients}
}

// RecipeInput is the write payload for a recipe. Pointer fields distinguish
// "absent" from zero values so partial updates leave omitted fields alone.
type RecipeInput struct {
	Title         *string
	Duration      *int
	Price         *float64
	Link          *string
	TagIDs        *[]uint
	IngredientIDs *[]uint
}

// Create validates required fields, stamps the caller as owner and links
// any supplied tag/ingredient IDs. The owner comes exclusively from the
// authenticated caller; payloads cannot set it.
func (s *RecipeService) Create(ctx context.Context, userID uint, in RecipeInput) (*models.Recipe, error) {
	if in.Title == nil || *in.Title == "" {
		return nil, models.NewFieldValidationError("title", "this field is required")
	}
	if in.Duration == nil {
		return nil, models.NewFieldValidationError("duration", "this field is required")
	}
	if in.Price == nil {
		return nil, models.NewFieldValidationError("price", "this field is required")
	}
	if *in.Price < 0 {
		return nil, models.NewFieldValidationError("price", "must not be negative")
	}

	recipe := &models.Recipe{
		UserID:   userID,
		Title:    *in.Title,
		Duration: *in.Duration,
		Price:    *in.Price,
	}
	if in.Link != nil {
		recipe.Link = *in.Link
	}

	tags, ingredients, err := s.resolveRelations(ctx, userID, in)
	if err != nil {
		return nil, err
	}
	if tags != nil {
		recipe.Tags = tags
	}
	if ingredients != nil {
		recipe.Ingredients = ingredients
	}

	if err := s.recipes.Create(ctx, recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

// Update applies a write to an existing recipe of the caller. Relation
// fields present in the payload replace the association set wholesale;
// absent relation fields leave the existing set untouched. Scalar fields
// follow the same present/absent rule, which makes a PATCH with a subset
// of fields and a PUT with all fields behave per their HTTP semantics.
func (s *RecipeService) Update(ctx context.Context, userID, id uint, in RecipeInput) (*models.Recipe, error) {
	recipe, err := s.recipes.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		if *in.Title == "" {
			return nil, models.NewFieldValidationError("title", "must not be empty")
		}
		recipe.Title = *in.Title
	}
	if in.Duration != nil {
		recipe.Duration = *in.Duration
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return nil, models.NewFieldValidationError("price", "must not be negative")
		}
		recipe.Price = *in.Price
	}
	if in.Link != nil {
		recipe.Link = *in.Link
	}

	tags, ingredients, err := s.resolveRelations(ctx, userID, in)
	if err != nil {
		return nil, err
	}

	if err := s.recipes.Update(ctx, recipe); err != nil {
		return nil, err
	}
	if tags != nil {
		if err := s.recipes.ReplaceTags(ctx, recipe, tags); err != nil {
			return nil, err
		}
	}
	if ingredients != nil {
		if err := s.recipes.ReplaceIngredients(ctx, recipe, ingredients); err != nil {
			return nil, err
		}
	}
	return recipe, nil
}

// resolveRelations maps supplied tag/ingredient IDs to records within the
// caller's scope. Any ID that does not resolve — nonexistent or owned by
// another user — fails the write with an error naming the offending field.
// A nil slice for either relation means that field was absent.
func (s *RecipeService) resolveRelations(ctx context.Context, userID uint, in RecipeInput) ([]models.Tag, []models.Ingredient, error) {
	var tags []models.Tag
	var ingredients []models.Ingredient

	if in.TagIDs != nil {
		resolved, err := s.tags.GetByIDs(ctx, userID, *in.TagIDs)
		if err != nil {
			return nil, nil, err
		}
		if len(resolved) != len(uniqueIDs(*in.TagIDs)) {
			return nil, nil, models.NewFieldValidationError("tags", "contains an invalid tag id")
		}
		tags = resolved
	}

	if in.IngredientIDs != nil {
		resolved, err := s.ingredients.GetByIDs(ctx, userID, *in.IngredientIDs)
		if err != nil {
			return nil, nil, err
		}
		if len(resolved) != len(uniqueIDs(*in.IngredientIDs)) {
			return nil, nil, models.NewFieldValidationError("ingredients", "contains an invalid ingredient id")
		}
		ingredients = resolved
	}

	return tags, ingredients, nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

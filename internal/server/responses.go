package server

import "recipebox/internal/models"

// Wire shapes for the recipe API. Recipes have two depths: the flat shape
// (lists and writes) carries relations as bare ID arrays; the expanded
// shape (single-recipe retrieval) nests the full tag/ingredient objects.

// TagResponse is the wire form of a tag.
type TagResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// IngredientResponse is the wire form of an ingredient.
type IngredientResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// RecipeResponse is the flat recipe shape: relations as ID arrays.
type RecipeResponse struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Duration    int     `json:"duration"`
	Price       float64 `json:"price"`
	Link        string  `json:"link"`
	Tags        []uint  `json:"tags"`
	Ingredients []uint  `json:"ingredients"`
}

// RecipeDetailResponse is the expanded recipe shape: relations nested.
type RecipeDetailResponse struct {
	ID          uint                 `json:"id"`
	Title       string               `json:"title"`
	Duration    int                  `json:"duration"`
	Price       float64              `json:"price"`
	Link        string               `json:"link"`
	Image       string               `json:"image"`
	Tags        []TagResponse        `json:"tags"`
	Ingredients []IngredientResponse `json:"ingredients"`
}

// RecipeImageResponse is the minimal shape used by the image-attach endpoint.
type RecipeImageResponse struct {
	ID    uint   `json:"id"`
	Image string `json:"image"`
}

func toTagResponse(t models.Tag) TagResponse {
	return TagResponse{ID: t.ID, Name: t.Name}
}

func toTagResponses(tags []models.Tag) []TagResponse {
	out := make([]TagResponse, 0, len(tags))
	for _, t := range tags {
		out = append(out, toTagResponse(t))
	}
	return out
}

func toIngredientResponse(i models.Ingredient) IngredientResponse {
	return IngredientResponse{ID: i.ID, Name: i.Name}
}

func toIngredientResponses(ingredients []models.Ingredient) []IngredientResponse {
	out := make([]IngredientResponse, 0, len(ingredients))
	for _, i := range ingredients {
		out = append(out, toIngredientResponse(i))
	}
	return out
}

func toRecipeResponse(r *models.Recipe) RecipeResponse {
	tagIDs := make([]uint, 0, len(r.Tags))
	for _, t := range r.Tags {
		tagIDs = append(tagIDs, t.ID)
	}
	ingredientIDs := make([]uint, 0, len(r.Ingredients))
	for _, i := range r.Ingredients {
		ingredientIDs = append(ingredientIDs, i.ID)
	}
	return RecipeResponse{
		ID:          r.ID,
		Title:       r.Title,
		Duration:    r.Duration,
		Price:       r.Price,
		Link:        r.Link,
		Tags:        tagIDs,
		Ingredients: ingredientIDs,
	}
}

func toRecipeResponses(recipes []models.Recipe) []RecipeResponse {
	out := make([]RecipeResponse, 0, len(recipes))
	for i := range recipes {
		out = append(out, toRecipeResponse(&recipes[i]))
	}
	return out
}

func (s *Server) toRecipeDetailResponse(r *models.Recipe) RecipeDetailResponse {
	return RecipeDetailResponse{
		ID:          r.ID,
		Title:       r.Title,
		Duration:    r.Duration,
		Price:       r.Price,
		Link:        r.Link,
		Image:       s.imageService.ImageURL(r.ImagePath),
		Tags:        toTagResponses(r.Tags),
		Ingredients: toIngredientResponses(r.Ingredients),
	}
}

func (s *Server) toRecipeImageResponse(r *models.Recipe) RecipeImageResponse {
	return RecipeImageResponse{
		ID:    r.ID,
		Image: s.imageService.ImageURL(r.ImagePath),
	}
}

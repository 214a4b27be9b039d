package server

import (
	"recipebox/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetTags handles GET /api/recipe/tags
// @Summary List tags
// @Description List the caller's tags, ordered by name
// @Tags tags
// @Produce json
// @Security BearerAuth
// @Success 200 {array} server.TagResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /recipe/tags [get]
func (s *Server) GetTags(c *fiber.Ctx) error {
	tags, err := s.tagRepo.List(c.Context(), currentUserID(c))
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.JSON(toTagResponses(tags))
}

// CreateTag handles POST /api/recipe/tags
// @Summary Create tag
// @Tags tags
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{name=string} true "Tag"
// @Success 201 {object} server.TagResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /recipe/tags [post]
func (s *Server) CreateTag(c *fiber.Ctx) error {
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

	// Owner comes from the token, never from the payload
	tag := &models.Tag{Name: req.Name, UserID: currentUserID(c)}
	if err := s.tagRepo.Create(c.Context(), tag); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.Status(fiber.StatusCreated).JSON(toTagResponse(*tag))
}

// GetTag handles GET /api/recipe/tags/:id
// @Summary Get tag
// @Tags tags
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tag ID"
// @Success 200 {object} server.TagResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /recipe/tags/{id} [get]
func (s *Server) GetTag(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}
	tag, err := s.tagRepo.GetByID(c.Context(), currentUserID(c), id)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.JSON(toTagResponse(*tag))
}

// UpdateTag handles PUT/PATCH /api/recipe/tags/:id
// @Summary Update tag
// @Tags tags
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tag ID"
// @Param request body object{name=string} true "Tag"
// @Success 200 {object} server.TagResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /recipe/tags/{id} [patch]
func (s *Server) UpdateTag(c *fiber.Ctx) error {
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

	tag, err := s.tagRepo.GetByID(c.Context(), currentUserID(c), id)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	tag.Name = req.Name
	if err := s.tagRepo.Update(c.Context(), tag); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.JSON(toTagResponse(*tag))
}

// DeleteTag handles DELETE /api/recipe/tags/:id
// @Summary Delete tag
// @Tags tags
// @Security BearerAuth
// @Param id path int true "Tag ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /recipe/tags/{id} [delete]
func (s *Server) DeleteTag(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}
	if err := s.tagRepo.Delete(c.Context(), currentUserID(c), id); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

package server

import (
	"io"

	"recipebox/internal/middleware"
	"recipebox/internal/models"
	"recipebox/internal/service"

	"github.com/gofiber/fiber/v2"
)

// UploadRecipeImage handles POST /api/recipe/recipes/:id/image
// @Summary Upload recipe image
// @Description Attach an image to one of the caller's recipes. The stored filename is UUID-derived; only the extension of the uploaded name survives. A non-image payload is rejected and leaves any prior image untouched.
// @Tags recipes
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Param image formData file true "Image file"
// @Success 200 {object} server.RecipeImageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /recipe/recipes/{id}/image [post]
func (s *Server) UploadRecipeImage(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		middleware.ImageUploads.WithLabelValues("rejected").Inc()
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewFieldValidationError("image", "no file uploaded"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		middleware.ImageUploads.WithLabelValues("error").Inc()
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		middleware.ImageUploads.WithLabelValues("error").Inc()
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	recipe, err := s.imageService.Attach(c.Context(), service.AttachImageInput{
		UserID:      currentUserID(c),
		RecipeID:    id,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Content:     content,
	})
	if err != nil {
		if appErr, ok := err.(*models.AppError); ok && appErr.Code == "VALIDATION_ERROR" {
			middleware.ImageUploads.WithLabelValues("rejected").Inc()
		} else {
			middleware.ImageUploads.WithLabelValues("error").Inc()
		}
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	middleware.ImageUploads.WithLabelValues("accepted").Inc()
	return c.JSON(s.toRecipeImageResponse(recipe))
}

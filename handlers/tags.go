package handlers

import (
	"net/url"
	"recipe-box/app"
	"recipe-box/middleware"
	"recipe-box/models"

	"github.com/gofiber/fiber/v2"
)

// ListTags returns every tag alphabetically
func ListTags(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tags, err := a.TagService.List()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch tags", err)
		}
		return success(c, fiber.Map{"tags": tags})
	}
}

// CreateTag adds a tag any signed-in user can then attach
func CreateTag(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateTagRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		tag, err := a.TagService.Create(req.Name)
		if err != nil {
			return handleServiceError(c, err, "Failed to create tag")
		}

		return created(c, fiber.Map{"tag": tag})
	}
}

// GetRecipeTags returns the tags attached to a recipe
func GetRecipeTags(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := recipeID(c)
		if id == "" {
			return notFound(c, "Recipe not found")
		}

		tags, err := a.TagService.ForRecipe(id)
		if err != nil {
			return handleServiceError(c, err, "Failed to fetch tags")
		}

		return success(c, fiber.Map{"tags": tags})
	}
}

// ReplaceRecipeTags swaps a recipe's tag set. An empty tag_ids list removes every tag.
func ReplaceRecipeTags(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := recipeID(c)
		if id == "" {
			return notFound(c, "Recipe not found")
		}

		var req models.ReplaceTagsRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		tags, err := a.TagService.ReplaceForRecipe(id, middleware.GetUserID(c), req.TagIDs)
		if err != nil {
			return handleServiceError(c, err, "Failed to update tags")
		}

		return success(c, fiber.Map{"tags": tags})
	}
}

// RecipesByTag lists the recipes carrying the tag named in the path
func RecipesByTag(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name, err := url.PathUnescape(c.Params("name"))
		if err != nil {
			return badRequest(c, "Invalid tag name")
		}

		recipes, err := a.TagService.RecipesByTag(name)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch recipes", err)
		}
		return success(c, fiber.Map{"recipes": recipes})
	}
}

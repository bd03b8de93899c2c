package handlers

import (
	"recipe-box/app"
	"recipe-box/middleware"
	"recipe-box/models"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const maxListLimit = 100

// ListRecipes lists recipes, optionally filtered by ?q=, ?category= or ?user_id=.
// Without a filter ?limit= caps the number of results.
func ListRecipes(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var (
			recipes []models.Recipe
			err     error
		)

		switch {
		case c.Query("q") != "":
			recipes, err = a.RecipeService.Search(c.Query("q"))
		case c.Query("category") != "":
			recipes, err = a.RecipeService.ListByCategory(c.Query("category"))
		case c.Query("user_id") != "":
			recipes, err = a.RecipeService.ListByOwner(strings.TrimSpace(c.Query("user_id")))
		default:
			limit := c.QueryInt("limit", 0)
			if limit < 0 {
				return badRequest(c, "limit must not be negative")
			}
			if limit > maxListLimit {
				limit = maxListLimit
			}
			recipes, err = a.RecipeService.List(limit)
		}

		if err != nil {
			return handleServiceError(c, err, "Failed to fetch recipes")
		}

		return success(c, fiber.Map{"recipes": recipes})
	}
}

// FeaturedRecipes returns the few most recent recipes for the home page
func FeaturedRecipes(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		recipes, err := a.RecipeService.Featured()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch recipes", err)
		}
		return success(c, fiber.Map{"recipes": recipes})
	}
}

// MyRecipes lists the caller's own recipes
func MyRecipes(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		recipes, err := a.RecipeService.ListByOwner(middleware.GetUserID(c))
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch recipes", err)
		}
		return success(c, fiber.Map{"recipes": recipes})
	}
}

// GetRecipe returns one recipe with its tags and whether the caller owns it
func GetRecipe(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := recipeID(c)
		if id == "" {
			return notFound(c, "Recipe not found")
		}

		recipe, err := a.RecipeService.Get(id)
		if err != nil {
			return handleServiceError(c, err, "Failed to fetch recipe")
		}

		userID := middleware.GetUserID(c)
		return success(c, fiber.Map{
			"recipe":   recipe,
			"is_owner": userID != "" && userID == recipe.UserID,
		})
	}
}

// CreateRecipe creates a recipe owned by the caller
func CreateRecipe(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.RecipeRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		recipe, err := a.RecipeService.Create(middleware.GetUserID(c), &req)
		if err != nil {
			return handleServiceError(c, err, "Failed to create recipe")
		}

		a.Logger.Info("recipe created", "recipe_id", recipe.ID, "user_id", recipe.UserID)
		return created(c, fiber.Map{"recipe": recipe})
	}
}

// UpdateRecipe replaces the editable fields of a recipe the caller owns
func UpdateRecipe(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := recipeID(c)
		if id == "" {
			return notFound(c, "Recipe not found")
		}

		var req models.RecipeRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		recipe, err := a.RecipeService.Update(id, middleware.GetUserID(c), &req)
		if err != nil {
			return handleServiceError(c, err, "Failed to update recipe")
		}

		return success(c, fiber.Map{"recipe": recipe})
	}
}

// DeleteRecipe deletes a recipe the caller owns
func DeleteRecipe(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := recipeID(c)
		if id == "" {
			return notFound(c, "Recipe not found")
		}

		if err := a.RecipeService.Delete(id, middleware.GetUserID(c)); err != nil {
			return handleServiceError(c, err, "Failed to delete recipe")
		}

		a.Logger.Info("recipe deleted", "recipe_id", id, "user_id", middleware.GetUserID(c))
		return success(c, fiber.Map{"success": true})
	}
}

// ListCategories returns the fixed category list with display labels
func ListCategories(c *fiber.Ctx) error {
	categories := make([]models.CategoryInfo, 0, len(models.Categories))
	for _, cat := range models.Categories {
		categories = append(categories, models.CategoryInfo{Name: cat, Label: cat.Label()})
	}
	return success(c, fiber.Map{"categories": categories})
}

package setup

import (
	"recipe-box/app"
	"recipe-box/handlers"
	"recipe-box/middleware"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {
	fiberApp.Get("/health", handlers.Health)

	// Auth routes
	fiberApp.Post("/api/auth/login", handlers.Login(application))
	fiberApp.Get("/auth/google", handlers.GoogleLogin(application))
	fiberApp.Get("/auth/google/callback", handlers.GoogleCallback(application))
	fiberApp.Post("/api/auth/logout", handlers.Logout(application))
	fiberApp.Get("/api/auth/me", handlers.Me(application))

	// Callers are identified when they can be, so recipe detail can report ownership
	api := fiberApp.Group("/api", middleware.OptionalAuth(application.SessionStore, application.AuthService))

	requireAuth := middleware.AuthRequired(application.SessionStore, application.AuthService)
	userLimit := perUserLimiter()

	// Public
	api.Get("/recipes", handlers.ListRecipes(application))
	api.Get("/recipes/featured", handlers.FeaturedRecipes(application))
	api.Get("/recipes/:id", handlers.GetRecipe(application))
	api.Get("/recipes/:id/tags", handlers.GetRecipeTags(application))
	api.Get("/tags", handlers.ListTags(application))
	api.Get("/tags/:name/recipes", handlers.RecipesByTag(application))
	api.Get("/categories", handlers.ListCategories)
	api.Get("/check-tables", handlers.CheckTables(application))

	// Protected
	api.Get("/my-recipes", requireAuth, userLimit, handlers.MyRecipes(application))
	api.Post("/recipes", requireAuth, userLimit, handlers.CreateRecipe(application))
	api.Put("/recipes/:id", requireAuth, userLimit, handlers.UpdateRecipe(application))
	api.Delete("/recipes/:id", requireAuth, userLimit, handlers.DeleteRecipe(application))
	api.Put("/recipes/:id/tags", requireAuth, userLimit, handlers.ReplaceRecipeTags(application))
	api.Post("/tags", requireAuth, userLimit, handlers.CreateTag(application))
}

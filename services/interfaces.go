package services

import (
	"recipe-box/models"
)

// RecipeRepository defines the interface for recipe data access
type RecipeRepository interface {
	ListRecipes(limit int) ([]models.Recipe, error)
	ListRecipesByCategory(category models.Category) ([]models.Recipe, error)
	ListRecipesByOwner(userID string) ([]models.Recipe, error)
	SearchRecipes(query string) ([]models.Recipe, error)
	GetRecipe(id string) (*models.Recipe, error)
	CreateRecipe(recipe *models.Recipe) error
	UpdateRecipe(recipe *models.Recipe) error
	DeleteRecipe(id string) error
	GetTag(id string) (*models.Tag, error)
	GetTagsForRecipe(recipeID string) ([]models.Tag, error)
	ReplaceRecipeTags(recipeID string, tagIDs []string) error
}

// TagRepository defines the interface for tag data access
type TagRepository interface {
	ListTags() ([]models.Tag, error)
	GetTag(id string) (*models.Tag, error)
	GetTagByName(name string) (*models.Tag, error)
	CreateTag(tag *models.Tag) error
	GetRecipe(id string) (*models.Recipe, error)
	GetTagsForRecipe(recipeID string) ([]models.Tag, error)
	ReplaceRecipeTags(recipeID string, tagIDs []string) error
	GetRecipesByTag(name string) ([]models.Recipe, error)
}

// tagLinker is the subset shared by both repositories for attaching tags to a recipe
type tagLinker interface {
	GetTag(id string) (*models.Tag, error)
	GetTagsForRecipe(recipeID string) ([]models.Tag, error)
	ReplaceRecipeTags(recipeID string, tagIDs []string) error
}

// SessionStore defines the interface for session management
type SessionStore interface {
	Create(userID, email, name, picture string) (*models.Session, error)
	Get(sessionID string) (*models.Session, error)
	Delete(sessionID string) error
}

// AuthRepository defines the interface for auth-related data access
type AuthRepository interface {
	UpsertUser(user *models.User) error
	GetUser(userID string) (*models.User, error)
}

// SeedRepository is what the demo data seeder needs
type SeedRepository interface {
	UpsertUser(user *models.User) error
	ListRecipesByOwner(userID string) ([]models.Recipe, error)
	CreateRecipe(recipe *models.Recipe) error
	GetTagByName(name string) (*models.Tag, error)
	ReplaceRecipeTags(recipeID string, tagIDs []string) error
}

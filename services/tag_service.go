package services

import (
	"recipe-box/models"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TagService handles business logic for tags and recipe-tag associations
type TagService struct {
	repo TagRepository
}

// NewTagService creates a new tag service
func NewTagService(repo TagRepository) *TagService {
	return &TagService{repo: repo}
}

// List retrieves every tag alphabetically
func (ts *TagService) List() ([]models.Tag, error) {
	return ts.repo.ListTags()
}

// ForRecipe returns the tags attached to a recipe
func (ts *TagService) ForRecipe(recipeID string) ([]models.Tag, error) {
	recipe, err := ts.repo.GetRecipe(recipeID)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, ErrRecipeNotFound
	}
	return ts.repo.GetTagsForRecipe(recipeID)
}

// ReplaceForRecipe swaps the recipe's whole tag set for tagIDs. An empty set clears it.
func (ts *TagService) ReplaceForRecipe(recipeID, userID string, tagIDs []string) ([]models.Tag, error) {
	recipe, err := ts.repo.GetRecipe(recipeID)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, ErrRecipeNotFound
	}
	if recipe.UserID != userID {
		return nil, ErrForbidden
	}

	resolved, err := resolveTagIDs(ts.repo, tagIDs)
	if err != nil {
		return nil, err
	}

	if err := ts.repo.ReplaceRecipeTags(recipeID, resolved); err != nil {
		return nil, err
	}

	return ts.repo.GetTagsForRecipe(recipeID)
}

// RecipesByTag returns the recipes carrying the named tag, newest first
func (ts *TagService) RecipesByTag(name string) ([]models.Recipe, error) {
	return ts.repo.GetRecipesByTag(normalizeTagName(name))
}

// Create adds a new tag. Names are stored lower-cased.
func (ts *TagService) Create(name string) (*models.Tag, error) {
	name = normalizeTagName(name)

	existing, err := ts.repo.GetTagByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrTagAlreadyExists
	}

	tag := &models.Tag{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	if err := ts.repo.CreateTag(tag); err != nil {
		return nil, err
	}

	return tag, nil
}

func normalizeTagName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

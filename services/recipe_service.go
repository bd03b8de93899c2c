package services

import (
	"recipe-box/models"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FeaturedLimit is how many recipes the home page features
const FeaturedLimit = 4

// RecipeService handles business logic for recipes
type RecipeService struct {
	repo RecipeRepository
}

// NewRecipeService creates a new recipe service
func NewRecipeService(repo RecipeRepository) *RecipeService {
	return &RecipeService{repo: repo}
}

// List returns recipes newest first. A limit of zero or less returns all of them.
func (rs *RecipeService) List(limit int) ([]models.Recipe, error) {
	return rs.repo.ListRecipes(limit)
}

// Featured returns the most recent few recipes
func (rs *RecipeService) Featured() ([]models.Recipe, error) {
	return rs.repo.ListRecipes(FeaturedLimit)
}

// ListByCategory returns the recipes of one category
func (rs *RecipeService) ListByCategory(category string) ([]models.Recipe, error) {
	c := models.Category(strings.ToLower(strings.TrimSpace(category)))
	if !c.Valid() {
		return nil, ErrInvalidCategory
	}
	return rs.repo.ListRecipesByCategory(c)
}

// ListByOwner returns the recipes a user created
func (rs *RecipeService) ListByOwner(userID string) ([]models.Recipe, error) {
	return rs.repo.ListRecipesByOwner(userID)
}

// Search matches query against title and notes. A blank query matches nothing.
func (rs *RecipeService) Search(query string) ([]models.Recipe, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.Recipe{}, nil
	}
	return rs.repo.SearchRecipes(query)
}

// Get returns a recipe with its tags attached
func (rs *RecipeService) Get(id string) (*models.Recipe, error) {
	recipe, err := rs.repo.GetRecipe(id)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, ErrRecipeNotFound
	}

	tags, err := rs.repo.GetTagsForRecipe(id)
	if err != nil {
		return nil, err
	}
	recipe.Tags = tags

	return recipe, nil
}

// Create stores a new recipe owned by userID
func (rs *RecipeService) Create(userID string, req *models.RecipeRequest) (*models.Recipe, error) {
	recipe := &models.Recipe{
		ID:        uuid.New().String(),
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	if err := applyRequest(recipe, req); err != nil {
		return nil, err
	}

	// Resolve tags first so an unknown tag does not leave a half-created recipe behind
	tagIDs, err := resolveTagIDs(rs.repo, req.TagIDs)
	if err != nil {
		return nil, err
	}

	if err := rs.repo.CreateRecipe(recipe); err != nil {
		return nil, err
	}

	recipe.Tags = []models.Tag{}
	if len(tagIDs) > 0 {
		if err := rs.repo.ReplaceRecipeTags(recipe.ID, tagIDs); err != nil {
			return nil, err
		}
		if recipe.Tags, err = rs.repo.GetTagsForRecipe(recipe.ID); err != nil {
			return nil, err
		}
	}

	return recipe, nil
}

// Update overwrites a recipe's editable fields. Only the owner may do this.
func (rs *RecipeService) Update(id, userID string, req *models.RecipeRequest) (*models.Recipe, error) {
	recipe, err := rs.ownedRecipe(id, userID)
	if err != nil {
		return nil, err
	}

	if err := applyRequest(recipe, req); err != nil {
		return nil, err
	}

	var tagIDs []string
	if req.TagIDs != nil {
		if tagIDs, err = resolveTagIDs(rs.repo, req.TagIDs); err != nil {
			return nil, err
		}
	}

	if err := rs.repo.UpdateRecipe(recipe); err != nil {
		return nil, err
	}

	if req.TagIDs != nil {
		if err := rs.repo.ReplaceRecipeTags(recipe.ID, tagIDs); err != nil {
			return nil, err
		}
	}

	if recipe.Tags, err = rs.repo.GetTagsForRecipe(recipe.ID); err != nil {
		return nil, err
	}

	return recipe, nil
}

// Delete removes a recipe. Only the owner may do this.
func (rs *RecipeService) Delete(id, userID string) error {
	if _, err := rs.ownedRecipe(id, userID); err != nil {
		return err
	}
	return rs.repo.DeleteRecipe(id)
}

// ownedRecipe loads a recipe and checks that userID owns it
func (rs *RecipeService) ownedRecipe(id, userID string) (*models.Recipe, error) {
	recipe, err := rs.repo.GetRecipe(id)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, ErrRecipeNotFound
	}
	if recipe.UserID != userID {
		return nil, ErrForbidden
	}
	return recipe, nil
}

// applyRequest copies normalized request fields onto recipe
func applyRequest(recipe *models.Recipe, req *models.RecipeRequest) error {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return ErrTitleRequired
	}

	category := models.Category(strings.ToLower(strings.TrimSpace(req.Category)))
	if !category.Valid() {
		return ErrInvalidCategory
	}

	recipe.Title = title
	recipe.ImageURL = strings.TrimSpace(req.ImageURL)
	recipe.Category = category
	recipe.Ingredients = cleanLines(req.Ingredients)
	recipe.Directions = cleanLines(req.Directions)
	recipe.Notes = strings.TrimSpace(req.Notes)
	return nil
}

// cleanLines trims each line and drops the blank ones
func cleanLines(lines []string) []string {
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return cleaned
}

// resolveTagIDs drops duplicate ids and checks that every tag exists
func resolveTagIDs(repo tagLinker, tagIDs []string) ([]string, error) {
	seen := make(map[string]bool, len(tagIDs))
	resolved := make([]string, 0, len(tagIDs))

	for _, id := range tagIDs {
		if seen[id] {
			continue
		}
		seen[id] = true

		tag, err := repo.GetTag(id)
		if err != nil {
			return nil, err
		}
		if tag == nil {
			return nil, ErrTagNotFound
		}
		resolved = append(resolved, id)
	}

	return resolved, nil
}

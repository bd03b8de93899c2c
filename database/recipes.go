package database

import (
	"database/sql"
	"fmt"
	"recipe-box/models"
	"time"
)

// ==================== RECIPE OPERATIONS ====================

const recipeColumns = `id, title, image_url, category, ingredients, directions, notes, user_id, created_at`

// newestFirst orders listings by creation time; rowid breaks ties between recipes created in the same instant
const newestFirst = `ORDER BY created_at DESC, rowid DESC`

func scanRecipe(row rowScanner) (*models.Recipe, error) {
	var recipe models.Recipe
	var category, ingredients, directions string

	if err := row.Scan(
		&recipe.ID, &recipe.Title, &recipe.ImageURL, &category,
		&ingredients, &directions, &recipe.Notes, &recipe.UserID,
		timestamp{&recipe.CreatedAt},
	); err != nil {
		return nil, err
	}

	recipe.Category = models.Category(category)

	var err error
	if recipe.Ingredients, err = decodeList(ingredients); err != nil {
		return nil, fmt.Errorf("recipe %s: bad ingredients: %w", recipe.ID, err)
	}
	if recipe.Directions, err = decodeList(directions); err != nil {
		return nil, fmt.Errorf("recipe %s: bad directions: %w", recipe.ID, err)
	}

	return &recipe, nil
}

func (r *Repository) queryRecipes(query string, args ...any) ([]models.Recipe, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Initialize with empty slice to avoid returning nil
	recipes := make([]models.Recipe, 0)
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, *recipe)
	}

	return recipes, rows.Err()
}

// ListRecipes returns recipes newest first. A limit of zero or less returns all of them.
func (r *Repository) ListRecipes(limit int) ([]models.Recipe, error) {
	if limit <= 0 {
		limit = -1
	}
	return r.queryRecipes(`
		SELECT `+recipeColumns+`
		FROM recipes
		`+newestFirst+`
		LIMIT ?
	`, limit)
}

// ListRecipesByCategory returns the recipes of one category, newest first
func (r *Repository) ListRecipesByCategory(category models.Category) ([]models.Recipe, error) {
	return r.queryRecipes(`
		SELECT `+recipeColumns+`
		FROM recipes
		WHERE category = ?
		`+newestFirst, string(category))
}

// ListRecipesByOwner returns the recipes created by a user, newest first
func (r *Repository) ListRecipesByOwner(userID string) ([]models.Recipe, error) {
	return r.queryRecipes(`
		SELECT `+recipeColumns+`
		FROM recipes
		WHERE user_id = ?
		`+newestFirst, userID)
}

// SearchRecipes returns recipes whose title or notes contain query, ignoring case
func (r *Repository) SearchRecipes(query string) ([]models.Recipe, error) {
	return r.queryRecipes(`
		SELECT `+recipeColumns+`
		FROM recipes
		WHERE instr(casefold(title), casefold(?1)) > 0
		   OR instr(casefold(notes), casefold(?1)) > 0
		`+newestFirst, query)
}

// GetRecipe retrieves a single recipe; returns nil if it does not exist
func (r *Repository) GetRecipe(id string) (*models.Recipe, error) {
	recipe, err := scanRecipe(r.db.QueryRow(`
		SELECT `+recipeColumns+`
		FROM recipes
		WHERE id = ?
	`, id))

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return recipe, nil
}

// CreateRecipe inserts a new recipe. ID, owner and CreatedAt must already be set.
func (r *Repository) CreateRecipe(recipe *models.Recipe) error {
	ingredients, err := encodeList(recipe.Ingredients)
	if err != nil {
		return err
	}
	directions, err := encodeList(recipe.Directions)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(`
		INSERT INTO recipes (id, title, image_url, category, ingredients, directions,
			notes, user_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		recipe.ID, recipe.Title, recipe.ImageURL, string(recipe.Category),
		ingredients, directions, recipe.Notes, recipe.UserID,
		recipe.CreatedAt, recipe.CreatedAt,
	)
	return err
}

// UpdateRecipe overwrites the editable fields of a recipe. Owner and creation time never change.
func (r *Repository) UpdateRecipe(recipe *models.Recipe) error {
	ingredients, err := encodeList(recipe.Ingredients)
	if err != nil {
		return err
	}
	directions, err := encodeList(recipe.Directions)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(`
		UPDATE recipes SET
			title = ?,
			image_url = ?,
			category = ?,
			ingredients = ?,
			directions = ?,
			notes = ?,
			updated_at = ?
		WHERE id = ?
	`,
		recipe.Title, recipe.ImageURL, string(recipe.Category),
		ingredients, directions, recipe.Notes, time.Now().UTC(), recipe.ID,
	)
	return err
}

// DeleteRecipe removes a recipe; its tag associations go with it (ON DELETE CASCADE)
func (r *Repository) DeleteRecipe(id string) error {
	_, err := r.db.Exec("DELETE FROM recipes WHERE id = ?", id)
	return err
}

package database

import (
	"database/sql"
	"fmt"
	"recipe-box/models"
	"time"
)

// ==================== TAG OPERATIONS ====================

func scanTag(row rowScanner) (*models.Tag, error) {
	var tag models.Tag
	if err := row.Scan(&tag.ID, &tag.Name, timestamp{&tag.CreatedAt}); err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *Repository) queryTags(query string, args ...any) ([]models.Tag, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := make([]models.Tag, 0)
	for rows.Next() {
		tag, err := scanTag(rows)
		if err != nil {
			return nil, err
		}
		tags = append(tags, *tag)
	}

	return tags, rows.Err()
}

// ListTags returns every tag in alphabetical order
func (r *Repository) ListTags() ([]models.Tag, error) {
	return r.queryTags(`
		SELECT id, name, created_at
		FROM tags
		ORDER BY name ASC
	`)
}

// GetTag retrieves a tag by ID; returns nil if it does not exist
func (r *Repository) GetTag(id string) (*models.Tag, error) {
	tag, err := scanTag(r.db.QueryRow(`
		SELECT id, name, created_at FROM tags WHERE id = ?
	`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return tag, nil
}

// GetTagByName retrieves a tag by its unique name; returns nil if it does not exist
func (r *Repository) GetTagByName(name string) (*models.Tag, error) {
	tag, err := scanTag(r.db.QueryRow(`
		SELECT id, name, created_at FROM tags WHERE name = ?
	`, name))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return tag, nil
}

// CreateTag inserts a new tag
func (r *Repository) CreateTag(tag *models.Tag) error {
	_, err := r.db.Exec(`
		INSERT INTO tags (id, name, created_at) VALUES (?, ?, ?)
	`, tag.ID, tag.Name, tag.CreatedAt)
	return err
}

// GetTagsForRecipe returns the tags attached to a recipe, alphabetically
func (r *Repository) GetTagsForRecipe(recipeID string) ([]models.Tag, error) {
	return r.queryTags(`
		SELECT t.id, t.name, t.created_at
		FROM recipe_tags rt
		JOIN tags t ON t.id = rt.tag_id
		WHERE rt.recipe_id = ?
		ORDER BY t.name ASC
	`, recipeID)
}

// ReplaceRecipeTags drops every association of the recipe and inserts tagIDs in its place.
// The set is not diffed against the current one.
func (r *Repository) ReplaceRecipeTags(recipeID string, tagIDs []string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM recipe_tags WHERE recipe_id = ?", recipeID); err != nil {
		return fmt.Errorf("failed to clear tags: %w", err)
	}

	now := time.Now().UTC()
	for _, tagID := range tagIDs {
		if _, err := tx.Exec(`
			INSERT OR IGNORE INTO recipe_tags (recipe_id, tag_id, created_at)
			VALUES (?, ?, ?)
		`, recipeID, tagID, now); err != nil {
			return fmt.Errorf("failed to attach tag %s: %w", tagID, err)
		}
	}

	return tx.Commit()
}

// GetRecipesByTag returns the recipes carrying the named tag, newest first
func (r *Repository) GetRecipesByTag(name string) ([]models.Recipe, error) {
	return r.queryRecipes(`
		SELECT `+recipeColumns+`
		FROM recipes_by_tag
		WHERE tag_name = ?
		ORDER BY created_at DESC, seq DESC
	`, name)
}

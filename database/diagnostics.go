package database

import "recipe-box/models"

// RequiredTables are the tables the recipe API cannot work without
var RequiredTables = []string{"recipes", "tags", "recipe_tags"}

// CheckTables reports which of the required tables exist
func (r *Repository) CheckTables() (*models.TableStatus, error) {
	status := &models.TableStatus{
		Success:       true,
		TableStatus:   make(map[string]bool, len(RequiredTables)),
		MissingTables: make([]string, 0),
	}

	for _, table := range RequiredTables {
		var count int
		err := r.db.QueryRow(
			`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`,
			table,
		).Scan(&count)
		if err != nil {
			return nil, err
		}

		status.TableStatus[table] = count > 0
		if count == 0 {
			status.MissingTables = append(status.MissingTables, table)
		}
	}

	return status, nil
}

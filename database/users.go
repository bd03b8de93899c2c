package database

import (
	"database/sql"
	"errors"
	"fmt"
	"recipe-box/models"
	"time"
)

// ==================== USER OPERATIONS ====================

// GetUser returns the recipe owner with the given Google subject, or nil
func (r *Repository) GetUser(userID string) (*models.User, error) {
	var user models.User

	err := r.db.QueryRow(`
		SELECT id, google_id, email, name, picture, created_at, last_login_at
		FROM users WHERE id = ?
	`, userID).Scan(
		&user.ID, &user.GoogleID, &user.Email, &user.Name, &user.Picture,
		timestamp{&user.CreatedAt}, timestamp{&user.LastLoginAt},
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", userID, err)
	}

	return &user, nil
}

// UpsertUser records a sign-in. The first sign-in keeps created_at; later ones
// refresh the profile snapshot and last_login_at.
func (r *Repository) UpsertUser(user *models.User) error {
	now := time.Now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	if user.LastLoginAt.IsZero() {
		user.LastLoginAt = now
	}

	if _, err := r.db.Exec(`
		INSERT INTO users (id, google_id, email, name, picture,
			created_at, last_login_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			email = excluded.email,
			name = excluded.name,
			picture = excluded.picture,
			last_login_at = excluded.last_login_at,
			updated_at = excluded.updated_at
	`,
		user.ID, user.GoogleID, user.Email, user.Name, user.Picture,
		user.CreatedAt.UTC(), user.LastLoginAt.UTC(), now,
	); err != nil {
		return fmt.Errorf("upsert user %s: %w", user.ID, err)
	}
	return nil
}

package services

import (
	"path/filepath"
	"recipe-box/database"
	"recipe-box/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeeder_Seed(t *testing.T) {
	db, err := database.New(filepath.Join(t.TempDir(), "seed.db"))
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, db.Migrate())

	repo := database.NewRepository(db)
	seeder := NewSeeder(repo)
	owner := &models.User{ID: "demo", GoogleID: "demo", Email: "demo@example.com", Name: "Demo"}

	inserted, err := seeder.Seed(owner)
	require.NoError(t, err)
	assert.Equal(t, len(SampleRecipes), inserted)

	recipes, err := repo.ListRecipesByOwner("demo")
	require.NoError(t, err)
	require.Len(t, recipes, len(SampleRecipes))
	// Last sample is the newest
	assert.Equal(t, SampleRecipes[len(SampleRecipes)-1].Recipe.Title, recipes[0].Title)

	tags, err := repo.GetTagsForRecipe(recipes[len(recipes)-1].ID)
	require.NoError(t, err)
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	assert.Equal(t, []string{"breakfast", "easy", "vegetarian"}, names)

	t.Run("Seeding twice inserts nothing", func(t *testing.T) {
		inserted, err := seeder.Seed(owner)
		require.NoError(t, err)
		assert.Zero(t, inserted)

		recipes, err := repo.ListRecipesByOwner("demo")
		require.NoError(t, err)
		assert.Len(t, recipes, len(SampleRecipes))
	})
}

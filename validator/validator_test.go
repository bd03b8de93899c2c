package validator

import (
	"recipe-box/models"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecipe() models.RecipeRequest {
	return models.RecipeRequest{
		Title:       "Classic Pancakes",
		ImageURL:    "https://example.com/pancakes.jpg",
		Category:    "breakfast",
		Ingredients: []string{"1 cup flour", "1 egg"},
		Directions:  []string{"Mix.", "Cook."},
		Notes:       "Serve warm.",
	}
}

func TestValidator_RecipeRequest(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		mutate    func(r *models.RecipeRequest)
		wantError bool
		errorMsg  string
	}{
		{
			name:   "Valid recipe request",
			mutate: func(r *models.RecipeRequest) {},
		},
		{
			name:   "Image URL is optional",
			mutate: func(r *models.RecipeRequest) { r.ImageURL = "" },
		},
		{
			name:   "Empty ingredient list is allowed",
			mutate: func(r *models.RecipeRequest) { r.Ingredients = nil },
		},
		{
			name:      "Missing title",
			mutate:    func(r *models.RecipeRequest) { r.Title = "" },
			wantError: true,
			errorMsg:  "title is required",
		},
		{
			name:      "Missing category",
			mutate:    func(r *models.RecipeRequest) { r.Category = "" },
			wantError: true,
			errorMsg:  "category is required",
		},
		{
			name:      "Unknown category",
			mutate:    func(r *models.RecipeRequest) { r.Category = "brunch" },
			wantError: true,
			errorMsg:  "category must be one of: breakfast, lunch, dinner, dessert, snacks, sides",
		},
		{
			name:      "Image URL without scheme",
			mutate:    func(r *models.RecipeRequest) { r.ImageURL = "example.com/pancakes.jpg" },
			wantError: true,
			errorMsg:  "image_url must be an http or https URL",
		},
		{
			name:      "Image URL with javascript scheme",
			mutate:    func(r *models.RecipeRequest) { r.ImageURL = "javascript:alert(1)" },
			wantError: true,
			errorMsg:  "image_url must be an http or https URL",
		},
		{
			name:      "Title too long",
			mutate:    func(r *models.RecipeRequest) { r.Title = strings.Repeat("a", 201) },
			wantError: true,
			errorMsg:  "title must be at most 200 characters",
		},
		{
			name: "Too many ingredients",
			mutate: func(r *models.RecipeRequest) {
				r.Ingredients = make([]string, 101)
			},
			wantError: true,
			errorMsg:  "ingredients must be at most 100 items",
		},
		{
			name:      "Tag IDs must be UUIDs",
			mutate:    func(r *models.RecipeRequest) { r.TagIDs = []string{"not-a-uuid"} },
			wantError: true,
			errorMsg:  "tag_ids[0] must be a valid UUID",
		},
		{
			name: "Valid tag IDs",
			mutate: func(r *models.RecipeRequest) {
				r.TagIDs = []string{"0b7d2c9e-5d7b-4d8e-9d55-2a1f5f0f6a11"}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRecipe()
			tt.mutate(&req)

			err := v.Validate(&req)

			if !tt.wantError {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			validationErrs, ok := err.(ValidationErrors)
			require.True(t, ok, "error should be ValidationErrors")
			require.NotEmpty(t, validationErrs)
			assert.Equal(t, tt.errorMsg, validationErrs[0].Message)
		})
	}
}

func TestValidator_CreateTag(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		tagName   string
		wantError bool
	}{
		{name: "Simple name", tagName: "spicy"},
		{name: "With hyphen", tagName: "gluten-free"},
		{name: "With space", tagName: "main course"},
		{name: "Non-latin letters", tagName: "pâtisserie"},
		{name: "Empty", tagName: "", wantError: true},
		{name: "Leading space", tagName: " spicy", wantError: true},
		{name: "Punctuation", tagName: "spicy!", wantError: true},
		{name: "Too long", tagName: strings.Repeat("a", 51), wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&models.CreateTagRequest{Name: tt.tagName})
			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "title", Message: "title is required"},
		{Field: "category", Message: "category is required"},
	}
	assert.Equal(t, "title is required; category is required", errs.Error())
}

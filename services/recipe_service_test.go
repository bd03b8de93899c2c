package services

import (
	"errors"
	"recipe-box/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ==================== MOCKS ====================

// MockRecipeRepository is a mock implementation of RecipeRepository interface
type MockRecipeRepository struct {
	mock.Mock
}

// Ensure MockRecipeRepository implements RecipeRepository interface
var _ RecipeRepository = (*MockRecipeRepository)(nil)

func (m *MockRecipeRepository) recipes(args mock.Arguments) ([]models.Recipe, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) ListRecipes(limit int) ([]models.Recipe, error) {
	return m.recipes(m.Called(limit))
}

func (m *MockRecipeRepository) ListRecipesByCategory(category models.Category) ([]models.Recipe, error) {
	return m.recipes(m.Called(category))
}

func (m *MockRecipeRepository) ListRecipesByOwner(userID string) ([]models.Recipe, error) {
	return m.recipes(m.Called(userID))
}

func (m *MockRecipeRepository) SearchRecipes(query string) ([]models.Recipe, error) {
	return m.recipes(m.Called(query))
}

func (m *MockRecipeRepository) GetRecipe(id string) (*models.Recipe, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) CreateRecipe(recipe *models.Recipe) error {
	args := m.Called(recipe)
	return args.Error(0)
}

func (m *MockRecipeRepository) UpdateRecipe(recipe *models.Recipe) error {
	args := m.Called(recipe)
	return args.Error(0)
}

func (m *MockRecipeRepository) DeleteRecipe(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockRecipeRepository) GetTag(id string) (*models.Tag, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockRecipeRepository) GetTagsForRecipe(recipeID string) ([]models.Tag, error) {
	args := m.Called(recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Tag), args.Error(1)
}

func (m *MockRecipeRepository) ReplaceRecipeTags(recipeID string, tagIDs []string) error {
	args := m.Called(recipeID, tagIDs)
	return args.Error(0)
}

// ==================== TESTS ====================

func TestRecipeService_ListByCategory(t *testing.T) {
	tests := []struct {
		name          string
		category      string
		mockSetup     func(*MockRecipeRepository)
		expectedError error
	}{
		{
			name:     "Success - Known category",
			category: "dinner",
			mockSetup: func(repo *MockRecipeRepository) {
				repo.On("ListRecipesByCategory", models.CategoryDinner).Return([]models.Recipe{}, nil)
			},
		},
		{
			name:     "Success - Category is normalized",
			category: "  Dessert ",
			mockSetup: func(repo *MockRecipeRepository) {
				repo.On("ListRecipesByCategory", models.CategoryDessert).Return([]models.Recipe{}, nil)
			},
		},
		{
			name:          "Error - Unknown category",
			category:      "brunch",
			expectedError: ErrInvalidCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRecipeRepository)
			if tt.mockSetup != nil {
				tt.mockSetup(mockRepo)
			}

			service := NewRecipeService(mockRepo)
			recipes, err := service.ListByCategory(tt.category)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, recipes)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, recipes)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestRecipeService_Search(t *testing.T) {
	t.Run("Blank query matches nothing", func(t *testing.T) {
		mockRepo := new(MockRecipeRepository)
		service := NewRecipeService(mockRepo)

		recipes, err := service.Search("   ")

		require.NoError(t, err)
		assert.NotNil(t, recipes)
		assert.Empty(t, recipes)
		mockRepo.AssertNotCalled(t, "SearchRecipes", mock.Anything)
	})

	t.Run("Query is trimmed", func(t *testing.T) {
		mockRepo := new(MockRecipeRepository)
		found := []models.Recipe{{ID: "r1", Title: "Guacamole"}}
		mockRepo.On("SearchRecipes", "guac").Return(found, nil)
		service := NewRecipeService(mockRepo)

		recipes, err := service.Search("  guac ")

		require.NoError(t, err)
		assert.Equal(t, found, recipes)
		mockRepo.AssertExpectations(t)
	})
}

func TestRecipeService_Featured(t *testing.T) {
	mockRepo := new(MockRecipeRepository)
	mockRepo.On("ListRecipes", FeaturedLimit).Return([]models.Recipe{}, nil)

	_, err := NewRecipeService(mockRepo).Featured()

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestRecipeService_Get(t *testing.T) {
	tests := []struct {
		name          string
		mockSetup     func(*MockRecipeRepository)
		expectedError error
	}{
		{
			name: "Success - Tags attached",
			mockSetup: func(repo *MockRecipeRepository) {
				repo.On("GetRecipe", "r1").Return(&models.Recipe{ID: "r1", UserID: "owner"}, nil)
				repo.On("GetTagsForRecipe", "r1").Return([]models.Tag{{ID: "t1", Name: "easy"}}, nil)
			},
		},
		{
			name: "Error - Recipe not found",
			mockSetup: func(repo *MockRecipeRepository) {
				repo.On("GetRecipe", "r1").Return(nil, nil)
			},
			expectedError: ErrRecipeNotFound,
		},
		{
			name: "Error - Repository error",
			mockSetup: func(repo *MockRecipeRepository) {
				repo.On("GetRecipe", "r1").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRecipeRepository)
			tt.mockSetup(mockRepo)

			recipe, err := NewRecipeService(mockRepo).Get("r1")

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, recipe)
			} else {
				require.NoError(t, err)
				assert.Equal(t, []models.Tag{{ID: "t1", Name: "easy"}}, recipe.Tags)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestRecipeService_Create(t *testing.T) {
	tests := []struct {
		name          string
		req           models.RecipeRequest
		mockSetup     func(*MockRecipeRepository)
		expectedError error
		validateFunc  func(*testing.T, *models.Recipe)
	}{
		{
			name: "Success - Fields are normalized",
			req: models.RecipeRequest{
				Title:       "  Guacamole ",
				Category:    "Snacks",
				Ingredients: []string{" 3 avocados ", "", "  ", "1 lime"},
				Directions:  []string{"Mash."},
				Notes:       " Serve fresh. ",
			},
			mockSetup: func(repo *MockRecipeRepository) {
				repo.On("CreateRecipe", mock.AnythingOfType("*models.Recipe")).Return(nil)
			},
			validateFunc: func(t *testing.T, r *models.Recipe) {
				assert.NotEmpty(t, r.ID)
				assert.Equal(t, "owner", r.UserID)
				assert.Equal(t, "Guacamole", r.Title)
				assert.Equal(t, models.CategorySnacks, r.Category)
				assert.Equal(t, []string{"3 avocados", "1 lime"}, r.Ingredients)
				assert.Equal(t, "Serve fresh.", r.Notes)
				assert.False(t, r.CreatedAt.IsZero())
				assert.Empty(t, r.Tags)
			},
		},
		{
			name: "Success - Tags attached with duplicates collapsed",
			req: models.RecipeRequest{
				Title:    "Pancakes",
				Category: "breakfast",
				TagIDs:   []string{"t1", "t1", "t2"},
			},
			mockSetup: func(repo *MockRecipeRepository) {
				repo.On("GetTag", "t1").Return(&models.Tag{ID: "t1", Name: "easy"}, nil).Once()
				repo.On("GetTag", "t2").Return(&models.Tag{ID: "t2", Name: "quick"}, nil).Once()
				repo.On("CreateRecipe", mock.AnythingOfType("*models.Recipe")).Return(nil)
				repo.On("ReplaceRecipeTags", mock.AnythingOfType("string"), []string{"t1", "t2"}).Return(nil)
				repo.On("GetTagsForRecipe", mock.AnythingOfType("string")).Return([]models.Tag{
					{ID: "t1", Name: "easy"}, {ID: "t2", Name: "quick"},
				}, nil)
			},
			validateFunc: func(t *testing.T, r *models.Recipe) {
				assert.Len(t, r.Tags, 2)
			},
		},
		{
			name: "Error - Unknown tag creates nothing",
			req: models.RecipeRequest{
				Title:    "Pancakes",
				Category: "breakfast",
				TagIDs:   []string{"missing"},
			},
			mockSetup: func(repo *MockRecipeRepository) {
				repo.On("GetTag", "missing").Return(nil, nil)
			},
			expectedError: ErrTagNotFound,
		},
		{
			name:          "Error - Blank title",
			req:           models.RecipeRequest{Title: "   ", Category: "lunch"},
			expectedError: ErrTitleRequired,
		},
		{
			name:          "Error - Invalid category",
			req:           models.RecipeRequest{Title: "Soup", Category: "brunch"},
			expectedError: ErrInvalidCategory,
		},
		{
			name: "Error - Repository CreateRecipe fails",
			req:  models.RecipeRequest{Title: "Soup", Category: "lunch"},
			mockSetup: func(repo *MockRecipeRepository) {
				repo.On("CreateRecipe", mock.AnythingOfType("*models.Recipe")).Return(errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRecipeRepository)
			if tt.mockSetup != nil {
				tt.mockSetup(mockRepo)
			}

			recipe, err := NewRecipeService(mockRepo).Create("owner", &tt.req)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, recipe)
				mockRepo.AssertNotCalled(t, "ReplaceRecipeTags", mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				require.NotNil(t, recipe)
				if tt.validateFunc != nil {
					tt.validateFunc(t, recipe)
				}
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestRecipeService_Update(t *testing.T) {
	existing := func() *models.Recipe {
		return &models.Recipe{ID: "r1", Title: "Old", Category: models.CategoryLunch, UserID: "owner"}
	}

	tests := []struct {
		name          string
		userID        string
		req           models.RecipeRequest
		mockSetup     func(*MockRecipeRepository)
		expectedError error
	}{
		{
			name:   "Success - Owner updates, tags untouched when omitted",
			userID: "owner",
			req:    models.RecipeRequest{Title: "New", Category: "dinner"},
			mockSetup: func(repo *MockRecipeRepository) {
				repo.On("GetRecipe", "r1").Return(existing(), nil)
				repo.On("UpdateRecipe", mock.MatchedBy(func(r *models.Recipe) bool {
					return r.Title == "New" && r.Category == models.CategoryDinner && r.UserID == "owner"
				})).Return(nil)
				repo.On("GetTagsForRecipe", "r1").Return([]models.Tag{}, nil)
			},
		},
		{
			name:   "Success - Empty tag list clears tags",
			userID: "owner",
			req:    models.RecipeRequest{Title: "New", Category: "dinner", TagIDs: []string{}},
			mockSetup: func(repo *MockRecipeRepository) {
				repo.On("GetRecipe", "r1").Return(existing(), nil)
				repo.On("UpdateRecipe", mock.AnythingOfType("*models.Recipe")).Return(nil)
				repo.On("ReplaceRecipeTags", "r1", []string{}).Return(nil)
				repo.On("GetTagsForRecipe", "r1").Return([]models.Tag{}, nil)
			},
		},
		{
			name:   "Error - Non-owner rejected",
			userID: "intruder",
			req:    models.RecipeRequest{Title: "New", Category: "dinner"},
			mockSetup: func(repo *MockRecipeRepository) {
				repo.On("GetRecipe", "r1").Return(existing(), nil)
			},
			expectedError: ErrForbidden,
		},
		{
			name:   "Error - Recipe not found",
			userID: "owner",
			req:    models.RecipeRequest{Title: "New", Category: "dinner"},
			mockSetup: func(repo *MockRecipeRepository) {
				repo.On("GetRecipe", "r1").Return(nil, nil)
			},
			expectedError: ErrRecipeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRecipeRepository)
			tt.mockSetup(mockRepo)

			recipe, err := NewRecipeService(mockRepo).Update("r1", tt.userID, &tt.req)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, recipe)
				mockRepo.AssertNotCalled(t, "UpdateRecipe", mock.Anything)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "New", recipe.Title)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestRecipeService_Delete(t *testing.T) {
	tests := []struct {
		name          string
		userID        string
		mockSetup     func(*MockRecipeRepository)
		expectedError error
	}{
		{
			name:   "Success - Owner deletes",
			userID: "owner",
			mockSetup: func(repo *MockRecipeRepository) {
				repo.On("GetRecipe", "r1").Return(&models.Recipe{ID: "r1", UserID: "owner"}, nil)
				repo.On("DeleteRecipe", "r1").Return(nil)
			},
		},
		{
			name:   "Error - Non-owner rejected",
			userID: "intruder",
			mockSetup: func(repo *MockRecipeRepository) {
				repo.On("GetRecipe", "r1").Return(&models.Recipe{ID: "r1", UserID: "owner"}, nil)
			},
			expectedError: ErrForbidden,
		},
		{
			name:   "Error - Recipe not found",
			userID: "owner",
			mockSetup: func(repo *MockRecipeRepository) {
				repo.On("GetRecipe", "r1").Return(nil, nil)
			},
			expectedError: ErrRecipeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRecipeRepository)
			tt.mockSetup(mockRepo)

			err := NewRecipeService(mockRepo).Delete("r1", tt.userID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				mockRepo.AssertNotCalled(t, "DeleteRecipe", mock.Anything)
			} else {
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

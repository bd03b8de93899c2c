package services

import (
	"fmt"
	"recipe-box/models"
	"time"

	"github.com/google/uuid"
)

// SampleRecipe is a demo recipe plus the names of the tags to attach
type SampleRecipe struct {
	Recipe models.Recipe
	Tags   []string
}

// SampleRecipes is the demo data inserted by the seed command
var SampleRecipes = []SampleRecipe{
	{
		Recipe: models.Recipe{
			Title:    "Classic Pancakes",
			ImageURL: "https://images.unsplash.com/photo-1567620905732-2d1ec7ab7445?auto=format&fit=crop&w=800&q=80",
			Category: models.CategoryBreakfast,
			Ingredients: []string{
				"1 cup all-purpose flour",
				"2 tablespoons sugar",
				"2 teaspoons baking powder",
				"1/2 teaspoon salt",
				"1 cup milk",
				"2 tablespoons melted butter",
				"1 large egg",
			},
			Directions: []string{
				"In a large bowl, whisk together flour, sugar, baking powder, and salt.",
				"In another bowl, beat the milk, melted butter, and egg together.",
				"Pour the wet ingredients into the dry ingredients and stir until just combined.",
				"Heat a lightly oiled griddle over medium-high heat.",
				"Scoop about 1/4 cup of batter per pancake onto the griddle.",
				"Cook until bubbles form, then flip and cook until browned on the other side.",
			},
			Notes: "Serve with maple syrup, fresh berries, or whipped cream.",
		},
		Tags: []string{"breakfast", "vegetarian", "easy"},
	},
	{
		Recipe: models.Recipe{
			Title:    "Chicken Caesar Salad",
			ImageURL: "https://images.unsplash.com/photo-1550304943-4f24f54ddde9?auto=format&fit=crop&w=800&q=80",
			Category: models.CategoryLunch,
			Ingredients: []string{
				"2 boneless, skinless chicken breasts",
				"1 large head romaine lettuce, chopped",
				"1/2 cup Caesar dressing",
				"1/2 cup croutons",
				"1/4 cup grated Parmesan cheese",
				"1 lemon, cut into wedges",
			},
			Directions: []string{
				"Season chicken breasts with salt and pepper.",
				"Grill the chicken until cooked through, about 6-7 minutes per side.",
				"Rest for 5 minutes, then slice into strips.",
				"Toss the romaine with the dressing, croutons and Parmesan.",
				"Top with the chicken and serve with lemon wedges.",
			},
			Notes: "For a lighter version, use a Greek yogurt-based dressing.",
		},
		Tags: []string{"lunch", "salad"},
	},
	{
		Recipe: models.Recipe{
			Title:    "Beef Stir Fry",
			ImageURL: "https://images.unsplash.com/photo-1563379926898-05f4575a45d8?auto=format&fit=crop&w=800&q=80",
			Category: models.CategoryDinner,
			Ingredients: []string{
				"1 lb flank steak, thinly sliced",
				"2 tablespoons vegetable oil",
				"1 red bell pepper, sliced",
				"1 cup broccoli florets",
				"3 cloves garlic, minced",
				"1/4 cup soy sauce",
				"2 tablespoons honey",
				"1 tablespoon cornstarch",
			},
			Directions: []string{
				"Whisk together soy sauce, honey, cornstarch, and 1/4 cup water.",
				"Stir-fry the beef in hot oil until browned, then set aside.",
				"Stir-fry garlic and vegetables for 4-5 minutes until crisp-tender.",
				"Return the beef, add the sauce and cook until it thickens.",
			},
			Notes: "Works well with chicken or tofu instead of beef.",
		},
		Tags: []string{"dinner", "main course", "quick"},
	},
	{
		Recipe: models.Recipe{
			Title:    "Chocolate Chip Cookies",
			ImageURL: "https://images.unsplash.com/photo-1499636136210-6f4ee915583e?auto=format&fit=crop&w=800&q=80",
			Category: models.CategoryDessert,
			Ingredients: []string{
				"2 1/4 cups all-purpose flour",
				"1 teaspoon baking soda",
				"1 cup unsalted butter, softened",
				"3/4 cup granulated sugar",
				"3/4 cup packed brown sugar",
				"2 large eggs",
				"2 cups semi-sweet chocolate chips",
			},
			Directions: []string{
				"Preheat oven to 375°F (190°C).",
				"Beat the butter and sugars until creamy, then add the eggs.",
				"Gradually beat in the flour and baking soda. Stir in chocolate chips.",
				"Drop by rounded tablespoons onto baking sheets.",
				"Bake for 9 to 11 minutes or until golden brown.",
			},
			Notes: "For chewier cookies, use more brown sugar than granulated sugar.",
		},
		Tags: []string{"dessert", "baking"},
	},
	{
		Recipe: models.Recipe{
			Title:    "Guacamole",
			ImageURL: "https://images.unsplash.com/photo-1584269600464-37b1b58a9fe7?auto=format&fit=crop&w=800&q=80",
			Category: models.CategorySnacks,
			Ingredients: []string{
				"3 ripe avocados",
				"1 lime, juiced",
				"1/2 cup diced onion",
				"3 tablespoons chopped fresh cilantro",
				"2 roma tomatoes, diced",
			},
			Directions: []string{
				"Scoop the avocados into a bowl and mash with lime juice and salt.",
				"Mix in onion, cilantro and tomatoes.",
				"Refrigerate for at least 1 hour before serving.",
			},
			Notes: "Press plastic wrap onto the surface to prevent browning.",
		},
		Tags: []string{"snack", "vegan", "gluten-free"},
	},
	{
		Recipe: models.Recipe{
			Title:    "Roasted Garlic Mashed Potatoes",
			ImageURL: "https://images.unsplash.com/photo-1600175074394-5d23b9f6d319?auto=format&fit=crop&w=800&q=80",
			Category: models.CategorySides,
			Ingredients: []string{
				"3 lbs Yukon Gold potatoes, peeled and quartered",
				"1 whole head of garlic",
				"1/2 cup butter, softened",
				"1/2 cup whole milk, warmed",
				"Salt and pepper to taste",
			},
			Directions: []string{
				"Roast the garlic head at 400°F (200°C) for 30-40 minutes.",
				"Simmer the potatoes in salted water until fork-tender.",
				"Drain, squeeze in the roasted garlic and mash with butter and milk.",
			},
			Notes: "For extra richness, add grated Parmesan cheese.",
		},
		Tags: []string{"side dish", "vegetarian"},
	},
}

// Seeder inserts demo recipes for a user
type Seeder struct {
	repo SeedRepository
}

// NewSeeder creates a new seeder
func NewSeeder(repo SeedRepository) *Seeder {
	return &Seeder{repo: repo}
}

// Seed creates the owner if needed and inserts every sample recipe they do not already have.
// It returns how many recipes were inserted.
func (s *Seeder) Seed(owner *models.User) (int, error) {
	now := time.Now().UTC()
	if owner.CreatedAt.IsZero() {
		owner.CreatedAt = now
	}
	owner.LastLoginAt = now

	if err := s.repo.UpsertUser(owner); err != nil {
		return 0, fmt.Errorf("failed to save owner: %w", err)
	}

	existing, err := s.repo.ListRecipesByOwner(owner.ID)
	if err != nil {
		return 0, err
	}
	have := make(map[string]bool, len(existing))
	for _, r := range existing {
		have[r.Title] = true
	}

	inserted := 0
	for i, sample := range SampleRecipes {
		if have[sample.Recipe.Title] {
			continue
		}

		recipe := sample.Recipe
		recipe.ID = uuid.New().String()
		recipe.UserID = owner.ID
		// A minute apart, in list order
		recipe.CreatedAt = now.Add(time.Duration(i-len(SampleRecipes)) * time.Minute)

		if err := s.repo.CreateRecipe(&recipe); err != nil {
			return inserted, fmt.Errorf("failed to insert %q: %w", recipe.Title, err)
		}

		tagIDs := make([]string, 0, len(sample.Tags))
		for _, name := range sample.Tags {
			tag, err := s.repo.GetTagByName(name)
			if err != nil {
				return inserted, err
			}
			if tag != nil {
				tagIDs = append(tagIDs, tag.ID)
			}
		}
		if err := s.repo.ReplaceRecipeTags(recipe.ID, tagIDs); err != nil {
			return inserted, fmt.Errorf("failed to tag %q: %w", recipe.Title, err)
		}

		inserted++
	}

	return inserted, nil
}

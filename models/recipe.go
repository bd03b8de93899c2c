package models

import (
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Category string

const (
	CategoryBreakfast Category = "breakfast"
	CategoryLunch     Category = "lunch"
	CategoryDinner    Category = "dinner"
	CategoryDessert   Category = "dessert"
	CategorySnacks    Category = "snacks"
	CategorySides     Category = "sides"
)

// Categories lists every category in display order
var Categories = []Category{
	CategoryBreakfast,
	CategoryLunch,
	CategoryDinner,
	CategoryDessert,
	CategorySnacks,
	CategorySides,
}

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Label returns the display name, e.g. "Breakfast"
func (c Category) Label() string {
	return cases.Title(language.English).String(string(c))
}

type Recipe struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	ImageURL    string    `json:"image_url"`
	Category    Category  `json:"category"`
	Ingredients []string  `json:"ingredients"`
	Directions  []string  `json:"directions"`
	Notes       string    `json:"notes"`
	UserID      string    `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	Tags        []Tag     `json:"tags,omitempty"`
}

// RecipeRequest is the body of create and update calls.
// TagIDs left out (nil) keeps the current tags on update; an empty list clears them.
type RecipeRequest struct {
	Title       string   `json:"title" validate:"required,max=200"`
	ImageURL    string   `json:"image_url" validate:"omitempty,max=2048,imageurl"`
	Category    string   `json:"category" validate:"required,category"`
	Ingredients []string `json:"ingredients" validate:"max=100,dive,max=500"`
	Directions  []string `json:"directions" validate:"max=100,dive,max=2000"`
	Notes       string   `json:"notes" validate:"max=5000"`
	TagIDs      []string `json:"tag_ids" validate:"max=50,dive,uuid"`
}

type CategoryInfo struct {
	Name  Category `json:"name"`
	Label string   `json:"label"`
}

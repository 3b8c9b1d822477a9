package models

import (
	"gorm.io/gorm"
)

// CocktailIngredient links one cocktail to one ingredient with the measure
// used by that recipe. Quantity and unit are free-form text, not numbers.
// The same ingredient may appear on several lines of one cocktail.
type CocktailIngredient struct {
	gorm.Model
	CocktailID   uint   `gorm:"not null;index" json:"cocktail_id"`
	IngredientID uint   `gorm:"not null" json:"ingredient_id"`
	Quantity     string `json:"quantity"`
	Unit         string `json:"unit"`
	Notes        string `json:"notes"`

	Ingredient *Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
}

package models

import (
	"gorm.io/gorm"
)

// Cocktail is the top-level recipe entity. It owns its instructions and
// ingredient lines; tags and garnishes are shared vocabulary linked through
// join tables.
type Cocktail struct {
	gorm.Model
	Title       string `gorm:"not null" json:"title"`
	Author      string `json:"author"`
	Description string `gorm:"type:text" json:"description"`
	Difficulty  string `json:"difficulty"`
	GlassType   string `json:"glass_type"`
	CoverImage  string `json:"cover_image"`

	Ingredients  []CocktailIngredient `gorm:"foreignKey:CocktailID" json:"ingredients"`
	Instructions []Instruction        `gorm:"foreignKey:CocktailID" json:"instructions"`
	Tags         []Tag                `gorm:"many2many:cocktail_tags" json:"tags"`
	Garnishes    []Garnish            `gorm:"many2many:cocktail_garnishes" json:"garnishes"`
}

package models

import (
	"gorm.io/gorm"
)

// Instruction is a single preparation step. Positions are 1-based and
// contiguous within a cocktail; they are assigned once at creation and never
// reordered.
type Instruction struct {
	gorm.Model
	CocktailID uint   `gorm:"not null;uniqueIndex:idx_instructions_cocktail_position" json:"cocktail_id"`
	Position   int    `gorm:"not null;uniqueIndex:idx_instructions_cocktail_position" json:"position"`
	Text       string `gorm:"type:text;not null" json:"text"`
}

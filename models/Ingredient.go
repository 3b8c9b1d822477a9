package models

import (
	"gorm.io/gorm"
)

// Ingredient is a shared vocabulary entity. Names are unique system-wide
// (case-sensitive) and immutable once created.
type Ingredient struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

package models

import (
	"gorm.io/gorm"
)

// Garnish is a shared vocabulary entity with a unique, immutable name.
type Garnish struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

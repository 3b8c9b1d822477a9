package models

import (
	"gorm.io/gorm"
)

// Tag kinds. A plain tag and a flavor tag with the same name are distinct
// entities; uniqueness is on (name, kind).
const (
	TagKindPlain  = "tag"
	TagKindFlavor = "flavor_tag"
)

// Tag is a shared vocabulary entity linked to cocktails many-to-many.
type Tag struct {
	gorm.Model
	Name string `gorm:"not null;uniqueIndex:idx_tags_name_kind" json:"name"`
	Kind string `gorm:"not null;uniqueIndex:idx_tags_name_kind" json:"kind"`
}

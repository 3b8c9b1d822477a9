package recipes

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"barkeep/models"
)

// Vocabulary resolves shared entities by their uniqueness key, creating them
// on first reference. Lookups are idempotent; names are never mutated once a
// row exists. Inserts run in a nested transaction, which GORM issues as a
// savepoint when the handle is already transactional: an insert that loses a
// race against a concurrent writer rolls back to the savepoint instead of
// aborting the caller's transaction, so the winning row can then be re-read.
// Requires a handle opened with TranslateError, so the lost race surfaces as
// gorm.ErrDuplicatedKey.
type Vocabulary struct {
	db *gorm.DB
}

// NewVocabulary binds a vocabulary resolver to a database handle, typically a
// transaction.
func NewVocabulary(db *gorm.DB) *Vocabulary {
	return &Vocabulary{db: db}
}

// Ingredient returns the ingredient with the given name, creating it if
// absent. Matching is case-sensitive and exact.
func (v *Vocabulary) Ingredient(ctx context.Context, name string) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	err := v.db.WithContext(ctx).Where("name = ?", name).First(&ingredient).Error
	if err == nil {
		return &ingredient, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := models.Ingredient{Name: name}
	err = v.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&created).Error
	})
	if err == nil {
		return &created, nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, err
	}

	// Lost the insert race; the savepoint rolled back, read the winner.
	if err := v.db.WithContext(ctx).Where("name = ?", name).First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// Garnish returns the garnish with the given name, creating it if absent.
func (v *Vocabulary) Garnish(ctx context.Context, name string) (*models.Garnish, error) {
	var garnish models.Garnish
	err := v.db.WithContext(ctx).Where("name = ?", name).First(&garnish).Error
	if err == nil {
		return &garnish, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := models.Garnish{Name: name}
	err = v.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&created).Error
	})
	if err == nil {
		return &created, nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, err
	}

	if err := v.db.WithContext(ctx).Where("name = ?", name).First(&garnish).Error; err != nil {
		return nil, err
	}
	return &garnish, nil
}

// Tag returns the tag with the given name and kind, creating it if absent.
// Uniqueness is on the (name, kind) pair, so the same text may exist once as
// a plain tag and once as a flavor tag.
func (v *Vocabulary) Tag(ctx context.Context, name, kind string) (*models.Tag, error) {
	var tag models.Tag
	err := v.db.WithContext(ctx).Where("name = ? AND kind = ?", name, kind).First(&tag).Error
	if err == nil {
		return &tag, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := models.Tag{Name: name, Kind: kind}
	err = v.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&created).Error
	})
	if err == nil {
		return &created, nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, err
	}

	if err := v.db.WithContext(ctx).Where("name = ? AND kind = ?", name, kind).First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

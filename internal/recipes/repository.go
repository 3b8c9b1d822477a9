package recipes

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"barkeep/models"
)

var (
	// ErrNotFound reports that no cocktail exists with the requested ID.
	ErrNotFound = errors.New("cocktail not found")
	// ErrInvalidInput reports a malformed input document. Nothing is written
	// when validation fails.
	ErrInvalidInput = errors.New("invalid cocktail input")
)

// Repository owns the transaction boundary around recipe writes and the
// preload set used for reads.
type Repository struct {
	db *gorm.DB
}

// NewRepository returns a repository backed by the given database handle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create validates the input, writes the cocktail and all of its rows in one
// transaction, then re-reads and projects the stored recipe so the caller
// sees exactly what later reads will return. On any failure the whole write
// is rolled back; a partially created cocktail is never observable.
func (r *Repository) Create(ctx context.Context, input Input) (Document, error) {
	if err := validateInput(input); err != nil {
		return Document{}, err
	}

	var cocktailID uint
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id, err := assemble(ctx, tx, input)
		if err != nil {
			return err
		}
		cocktailID = id
		return nil
	})
	if err != nil {
		return Document{}, fmt.Errorf("create recipe: %w", err)
	}

	return r.Get(ctx, cocktailID)
}

// Get loads one cocktail with all of its linked rows and projects it.
// Returns ErrNotFound when the ID was never issued.
func (r *Repository) Get(ctx context.Context, id uint) (Document, error) {
	var cocktail models.Cocktail
	err := r.preloaded(ctx).First(&cocktail, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Document{}, ErrNotFound
	}
	if err != nil {
		return Document{}, fmt.Errorf("load cocktail %d: %w", id, err)
	}
	return projectCocktail(cocktail), nil
}

// List projects every cocktail, id ascending. No pagination.
func (r *Repository) List(ctx context.Context) ([]Document, error) {
	var cocktails []models.Cocktail
	if err := r.preloaded(ctx).Order("cocktails.id asc").Find(&cocktails).Error; err != nil {
		return nil, fmt.Errorf("list cocktails: %w", err)
	}

	documents := make([]Document, 0, len(cocktails))
	for _, cocktail := range cocktails {
		documents = append(documents, projectCocktail(cocktail))
	}
	return documents, nil
}

// preloaded attaches the full read-side preload set. Ingredient lines load in
// id order so document order matches submission order; tag and garnish links
// load in entity id order, which is deterministic but not input order.
func (r *Repository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("cocktail_ingredients.id asc")
		}).
		Preload("Ingredients.Ingredient").
		Preload("Instructions").
		Preload("Tags", func(db *gorm.DB) *gorm.DB {
			return db.Order("tags.id asc")
		}).
		Preload("Garnishes", func(db *gorm.DB) *gorm.DB {
			return db.Order("garnishes.id asc")
		})
}

func validateInput(input Input) error {
	if strings.TrimSpace(input.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	for idx, line := range input.Ingredients {
		if strings.TrimSpace(line.Name) == "" {
			return fmt.Errorf("%w: ingredient %d has no name", ErrInvalidInput, idx+1)
		}
	}
	return nil
}

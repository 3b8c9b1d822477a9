package recipes

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"barkeep/models"
)

// assemble decomposes a validated input document into normalized rows using
// the supplied handle, which is expected to be a transaction: the cocktail
// row, its instruction rows in input order, one ingredient line per entry,
// and the tag/garnish links. Vocabulary rows may be created as a byproduct.
// Returns the new cocktail's ID.
func assemble(ctx context.Context, tx *gorm.DB, input Input) (uint, error) {
	vocab := NewVocabulary(tx)

	cocktail := models.Cocktail{
		Title:       input.Title,
		Author:      input.Author,
		Description: input.Description,
	}
	if meta := input.Metadata; meta != nil {
		cocktail.Difficulty = meta.Difficulty
		cocktail.GlassType = meta.GlassType
		cocktail.CoverImage = meta.CoverImage
	}

	if err := tx.WithContext(ctx).Create(&cocktail).Error; err != nil {
		return 0, fmt.Errorf("create cocktail: %w", err)
	}

	for _, line := range input.Ingredients {
		ingredient, err := vocab.Ingredient(ctx, line.Name)
		if err != nil {
			return 0, fmt.Errorf("resolve ingredient %q: %w", line.Name, err)
		}
		link := models.CocktailIngredient{
			CocktailID:   cocktail.ID,
			IngredientID: ingredient.ID,
			Quantity:     line.Quantity,
			Unit:         line.Unit,
			Notes:        line.Notes,
		}
		if err := tx.WithContext(ctx).Create(&link).Error; err != nil {
			return 0, fmt.Errorf("link ingredient %q: %w", line.Name, err)
		}
	}

	for idx, text := range input.Instructions {
		instruction := models.Instruction{
			CocktailID: cocktail.ID,
			Position:   idx + 1,
			Text:       text,
		}
		if err := tx.WithContext(ctx).Create(&instruction).Error; err != nil {
			return 0, fmt.Errorf("create instruction %d: %w", idx+1, err)
		}
	}

	if meta := input.Metadata; meta != nil {
		if err := linkGarnishes(ctx, tx, vocab, &cocktail, meta.Garnish); err != nil {
			return 0, err
		}
		if err := linkTags(ctx, tx, vocab, &cocktail, meta.Tags, models.TagKindPlain); err != nil {
			return 0, err
		}
		if err := linkTags(ctx, tx, vocab, &cocktail, meta.FlavorTags, models.TagKindFlavor); err != nil {
			return 0, err
		}
	}

	return cocktail.ID, nil
}

func linkGarnishes(ctx context.Context, tx *gorm.DB, vocab *Vocabulary, cocktail *models.Cocktail, names []string) error {
	for _, name := range dedupe(names) {
		garnish, err := vocab.Garnish(ctx, name)
		if err != nil {
			return fmt.Errorf("resolve garnish %q: %w", name, err)
		}
		if err := tx.WithContext(ctx).Model(cocktail).Association("Garnishes").Append(garnish); err != nil {
			return fmt.Errorf("link garnish %q: %w", name, err)
		}
	}
	return nil
}

func linkTags(ctx context.Context, tx *gorm.DB, vocab *Vocabulary, cocktail *models.Cocktail, names []string, kind string) error {
	for _, name := range dedupe(names) {
		tag, err := vocab.Tag(ctx, name, kind)
		if err != nil {
			return fmt.Errorf("resolve %s %q: %w", kind, name, err)
		}
		if err := tx.WithContext(ctx).Model(cocktail).Association("Tags").Append(tag); err != nil {
			return fmt.Errorf("link %s %q: %w", kind, name, err)
		}
	}
	return nil
}

// dedupe drops repeated names, keeping first occurrence order. Repeats within
// one request must not produce duplicate link rows.
func dedupe(names []string) []string {
	if len(names) < 2 {
		return names
	}
	seen := make(map[string]struct{}, len(names))
	result := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		result = append(result, name)
	}
	return result
}

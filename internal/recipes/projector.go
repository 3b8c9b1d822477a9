package recipes

import (
	"sort"

	"barkeep/models"
)

// projectCocktail maps a fully preloaded cocktail row back to the client
// document shape. Instructions are ordered by position; ingredient lines keep
// the order they were loaded in (the repository loads them by id, which is
// insertion order). Tags are partitioned into plain and flavor lists by kind.
// The input is not mutated.
func projectCocktail(cocktail models.Cocktail) Document {
	instructions := make([]models.Instruction, len(cocktail.Instructions))
	copy(instructions, cocktail.Instructions)
	sort.Slice(instructions, func(i, j int) bool {
		return instructions[i].Position < instructions[j].Position
	})

	steps := make([]string, 0, len(instructions))
	for _, instruction := range instructions {
		steps = append(steps, instruction.Text)
	}

	lines := make([]IngredientLine, 0, len(cocktail.Ingredients))
	for _, link := range cocktail.Ingredients {
		line := IngredientLine{
			Quantity: link.Quantity,
			Unit:     link.Unit,
			Notes:    link.Notes,
		}
		if link.Ingredient != nil {
			line.Name = link.Ingredient.Name
		}
		lines = append(lines, line)
	}

	tags := make([]string, 0, len(cocktail.Tags))
	flavorTags := make([]string, 0, len(cocktail.Tags))
	for _, tag := range cocktail.Tags {
		switch tag.Kind {
		case models.TagKindPlain:
			tags = append(tags, tag.Name)
		case models.TagKindFlavor:
			flavorTags = append(flavorTags, tag.Name)
		}
	}

	garnishes := make([]string, 0, len(cocktail.Garnishes))
	for _, garnish := range cocktail.Garnishes {
		garnishes = append(garnishes, garnish.Name)
	}

	return Document{
		ID:           cocktail.ID,
		Title:        cocktail.Title,
		Author:       cocktail.Author,
		Description:  cocktail.Description,
		Ingredients:  lines,
		Instructions: steps,
		Metadata: Metadata{
			Difficulty: cocktail.Difficulty,
			GlassType:  cocktail.GlassType,
			Garnish:    garnishes,
			Tags:       tags,
			FlavorTags: flavorTags,
			CoverImage: cocktail.CoverImage,
		},
	}
}

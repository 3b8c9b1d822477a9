package recipes

import (
	"testing"

	"gorm.io/gorm"

	"barkeep/models"
)

func TestProjectOrdersInstructionsByPosition(t *testing.T) {
	t.Parallel()

	cocktail := models.Cocktail{
		Model: gorm.Model{ID: 1},
		Title: "Scrambled",
		Instructions: []models.Instruction{
			{Position: 3, Text: "Garnish"},
			{Position: 1, Text: "Shake"},
			{Position: 2, Text: "Strain"},
		},
	}

	document := projectCocktail(cocktail)

	want := []string{"Shake", "Strain", "Garnish"}
	if len(document.Instructions) != len(want) {
		t.Fatalf("Instructions = %v", document.Instructions)
	}
	for i, text := range want {
		if document.Instructions[i] != text {
			t.Fatalf("instruction %d = %q, want %q", i, document.Instructions[i], text)
		}
	}

	// The projection must not reorder the caller's slice.
	if cocktail.Instructions[0].Text != "Garnish" {
		t.Fatal("projection mutated its input")
	}
}

func TestProjectPartitionsTagsByKind(t *testing.T) {
	t.Parallel()

	cocktail := models.Cocktail{
		Model: gorm.Model{ID: 2},
		Title: "Tagged",
		Tags: []models.Tag{
			{Name: "Classic", Kind: models.TagKindPlain},
			{Name: "Sour", Kind: models.TagKindFlavor},
			{Name: "Sweet", Kind: models.TagKindPlain},
			{Name: "Sweet", Kind: models.TagKindFlavor},
		},
	}

	document := projectCocktail(cocktail)

	if len(document.Metadata.Tags) != 2 || document.Metadata.Tags[0] != "Classic" || document.Metadata.Tags[1] != "Sweet" {
		t.Fatalf("Metadata.Tags = %v", document.Metadata.Tags)
	}
	if len(document.Metadata.FlavorTags) != 2 || document.Metadata.FlavorTags[0] != "Sour" || document.Metadata.FlavorTags[1] != "Sweet" {
		t.Fatalf("Metadata.FlavorTags = %v", document.Metadata.FlavorTags)
	}
}

func TestProjectIngredientLines(t *testing.T) {
	t.Parallel()

	rum := models.Ingredient{Model: gorm.Model{ID: 10}, Name: "Rum"}
	cocktail := models.Cocktail{
		Model: gorm.Model{ID: 3},
		Title: "Lines",
		Ingredients: []models.CocktailIngredient{
			{IngredientID: rum.ID, Quantity: "2", Unit: "oz", Ingredient: &rum},
			{IngredientID: rum.ID, Quantity: "1", Unit: "splash", Notes: "float", Ingredient: &rum},
		},
	}

	document := projectCocktail(cocktail)

	if len(document.Ingredients) != 2 {
		t.Fatalf("Ingredients = %+v", document.Ingredients)
	}
	if document.Ingredients[0].Name != "Rum" || document.Ingredients[0].Quantity != "2" {
		t.Fatalf("first line = %+v", document.Ingredients[0])
	}
	if document.Ingredients[1].Notes != "float" {
		t.Fatalf("second line = %+v", document.Ingredients[1])
	}
}

func TestProjectEmptyCocktail(t *testing.T) {
	t.Parallel()

	document := projectCocktail(models.Cocktail{Model: gorm.Model{ID: 4}, Title: "Bare"})

	if document.Ingredients == nil || document.Instructions == nil {
		t.Fatal("expected empty slices, not nil")
	}
	if document.Metadata.Tags == nil || document.Metadata.FlavorTags == nil || document.Metadata.Garnish == nil {
		t.Fatal("expected empty metadata lists, not nil")
	}
}

package recipes

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"barkeep/models"
)

func newTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open sqlite database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Ingredient{},
		&models.Tag{},
		&models.Garnish{},
		&models.Cocktail{},
		&models.CocktailIngredient{},
		&models.Instruction{},
	); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func daiquiriInput() Input {
	return Input{
		Title: "Daiquiri",
		Ingredients: []IngredientLine{
			{Name: "Rum", Quantity: "2", Unit: "oz"},
			{Name: "Lime Juice", Quantity: "1", Unit: "oz"},
		},
		Instructions: []string{"Shake", "Strain"},
		Metadata: &Metadata{
			Tags:       []string{"Classic"},
			FlavorTags: []string{"Sour"},
			Garnish:    []string{"Lime Wheel"},
		},
	}
}

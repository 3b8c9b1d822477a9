package mock

import (
	"context"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	applog "barkeep/internal/log"
	"barkeep/internal/recipes"
	"barkeep/models"
)

// New returns an in-memory sqlite database seeded with a couple of classic
// cocktails. Used when no DATABASE_URL is configured, so the service runs
// standalone for development and demos.
func New(ctx context.Context) (*gorm.DB, error) {
	applog.Debug(ctx, "initialising mock database")

	db, err := gorm.Open(sqlite.Open("file:barkeep-mock?mode=memory&cache=shared"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		PrepareStmt:                              true,
		SkipDefaultTransaction:                   true,
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.Ingredient{},
		&models.Tag{},
		&models.Garnish{},
		&models.Cocktail{},
		&models.CocktailIngredient{},
		&models.Instruction{},
	); err != nil {
		return nil, err
	}

	if err := seed(ctx, db); err != nil {
		return nil, err
	}

	applog.Debug(ctx, "mock database ready")
	return db, nil
}

// seed inserts through the real repository so the seeded rows take the same
// normalized shape as client-created ones.
func seed(ctx context.Context, db *gorm.DB) error {
	applog.Debug(ctx, "seeding mock database")

	repository := recipes.NewRepository(db)

	daiquiri := recipes.Input{
		Title:       "Daiquiri",
		Author:      "House",
		Description: "The template sour: rum, lime and sugar.",
		Ingredients: []recipes.IngredientLine{
			{Name: "White Rum", Quantity: "2", Unit: "oz"},
			{Name: "Lime Juice", Quantity: "1", Unit: "oz", Notes: "freshly squeezed"},
			{Name: "Simple Syrup", Quantity: "0.75", Unit: "oz"},
		},
		Instructions: []string{
			"Shake all ingredients with ice until well chilled.",
			"Double strain into a chilled coupe.",
		},
		Metadata: &recipes.Metadata{
			Difficulty: "Easy",
			GlassType:  "Coupe",
			Garnish:    []string{"Lime Wheel"},
			Tags:       []string{"Classic", "Shaken"},
			FlavorTags: []string{"Sour"},
		},
	}

	negroni := recipes.Input{
		Title:       "Negroni",
		Author:      "House",
		Description: "Equal parts gin, sweet vermouth and Campari.",
		Ingredients: []recipes.IngredientLine{
			{Name: "Gin", Quantity: "1", Unit: "oz"},
			{Name: "Sweet Vermouth", Quantity: "1", Unit: "oz"},
			{Name: "Campari", Quantity: "1", Unit: "oz"},
		},
		Instructions: []string{
			"Stir all ingredients with ice.",
			"Strain over a large cube in a rocks glass.",
			"Express the orange peel over the drink and drop it in.",
		},
		Metadata: &recipes.Metadata{
			Difficulty: "Easy",
			GlassType:  "Rocks",
			Garnish:    []string{"Orange Peel"},
			Tags:       []string{"Classic", "Stirred"},
			FlavorTags: []string{"Bitter"},
		},
	}

	for _, input := range []recipes.Input{daiquiri, negroni} {
		if _, err := repository.Create(ctx, input); err != nil {
			return err
		}
	}

	return nil
}

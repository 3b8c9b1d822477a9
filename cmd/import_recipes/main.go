package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"barkeep/internal/config"
	"barkeep/internal/db"
	applog "barkeep/internal/log"
	"barkeep/internal/recipes"
	"barkeep/models"
)

func main() {
	jsonPath := "recipes.json"
	if len(os.Args) > 1 {
		jsonPath = os.Args[1]
	}

	if err := run(jsonPath); err != nil {
		fmt.Fprintf(os.Stderr, "import failed: %v\n", err)
		os.Exit(1)
	}
}

// run loads every recipe input from the JSON file and creates each one
// through the repository, one transaction per recipe. Recipes whose title is
// already present are skipped, so re-running an import is harmless.
func run(jsonPath string) error {
	ctx := context.Background()

	if strings.TrimSpace(jsonPath) == "" {
		return fmt.Errorf("json path must not be empty")
	}

	if _, err := os.Stat(jsonPath); err != nil {
		return fmt.Errorf("locate json: %w", err)
	}

	if err := godotenv.Load(); err != nil {
		applog.Debug(ctx, "no .env file found, using system environment")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	database, err := db.Configure(cfg.Database)
	if err != nil {
		return fmt.Errorf("configure database: %w", err)
	}

	inputs, err := readInputs(jsonPath)
	if err != nil {
		return fmt.Errorf("read json: %w", err)
	}

	repository := recipes.NewRepository(database)

	imported := 0
	skipped := 0
	for idx, input := range inputs {
		var count int64
		if err := database.WithContext(ctx).Model(&models.Cocktail{}).
			Where("title = ?", input.Title).Count(&count).Error; err != nil {
			return fmt.Errorf("check recipe %d: %w", idx+1, err)
		}
		if count > 0 {
			applog.Debug(ctx, "recipe already present, skipping", "title", input.Title)
			skipped++
			continue
		}

		document, err := repository.Create(ctx, input)
		if err != nil {
			return fmt.Errorf("import recipe %d (%q): %w", idx+1, input.Title, err)
		}
		applog.Info(ctx, "recipe imported", "id", document.ID, "title", document.Title)
		imported++
	}

	applog.Info(ctx, "import complete", "imported", imported, "skipped", skipped, "total", len(inputs))
	return nil
}

func readInputs(jsonPath string) ([]recipes.Input, error) {
	file, err := os.Open(jsonPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var inputs []recipes.Input
	if err := json.NewDecoder(file).Decode(&inputs); err != nil {
		return nil, fmt.Errorf("decode recipes: %w", err)
	}
	return inputs, nil
}

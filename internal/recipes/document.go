// Package recipes holds the core recipe logic: decomposing a client-facing
// cocktail document into normalized rows on write, and reassembling rows into
// the document shape on read. Shared vocabulary (ingredients, garnishes, tags)
// is deduplicated through find-or-create lookups.
package recipes

// IngredientLine is one measured ingredient entry in a document. Quantity,
// unit and notes are free-form text; only the name is required.
type IngredientLine struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity,omitempty"`
	Unit     string `json:"unit,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// Metadata carries the optional descriptive fields of a cocktail. On input
// every field may be absent; on output the list fields are always present.
type Metadata struct {
	Difficulty string   `json:"difficulty,omitempty"`
	GlassType  string   `json:"glass_type,omitempty"`
	Garnish    []string `json:"garnish"`
	Tags       []string `json:"tags"`
	FlavorTags []string `json:"flavor_tags"`
	CoverImage string   `json:"cover_image,omitempty"`
}

// Input is the client-facing shape accepted when creating a cocktail.
type Input struct {
	Title        string           `json:"title"`
	Author       string           `json:"author,omitempty"`
	Description  string           `json:"description,omitempty"`
	Ingredients  []IngredientLine `json:"ingredients"`
	Instructions []string         `json:"instructions"`
	Metadata     *Metadata        `json:"metadata,omitempty"`
}

// Document is the fully assembled cocktail returned to clients. Instructions
// are in preparation order; ingredient lines are in the order they were
// submitted.
type Document struct {
	ID           uint             `json:"id"`
	Title        string           `json:"title"`
	Author       string           `json:"author,omitempty"`
	Description  string           `json:"description,omitempty"`
	Ingredients  []IngredientLine `json:"ingredients"`
	Instructions []string         `json:"instructions"`
	Metadata     Metadata         `json:"metadata"`
}

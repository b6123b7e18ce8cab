package entities

// Template is a reusable cake recipe.
//
// BaseIngredients is a JSON object mapping ingredient ID to quantity,
// e.g. {"1": 2.5, "4": 1}. Keys are unique per ingredient. The payload is
// stored verbatim; parsing happens in the pricing core, which tolerates
// malformed content.

type Template struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Size            string `json:"size"`
	Type            string `json:"type"`
	BaseIngredients string `json:"baseIngredients"`
}

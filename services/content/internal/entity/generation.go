package entity

// Provenance tells whether article text came from the generator or from the
// templated fallback. The persisted row looks the same either way.
type Provenance string

const (
	ProvenanceGenerated Provenance = "generated"
	ProvenanceFallback  Provenance = "fallback"
)

type Article struct {
	Title      string
	Excerpt    string
	Content    string
	Provenance Provenance
}

// Product is one result from the product lookup collaborator.
type Product struct {
	Title       string `json:"title" yaml:"title"`
	Image       string `json:"image" yaml:"image"`
	Link        string `json:"link" yaml:"link"`
	Price       string `json:"price,omitempty" yaml:"price"`
	Description string `json:"description,omitempty" yaml:"description"`
}

// ReviewDraft is a generated review body and rating before persistence.
type ReviewDraft struct {
	Rating  float64
	Content string
}

type GenerationResult struct {
	Post       *Post           `json:"post"`
	Reviews    []ProductReview `json:"reviews"`
	Provenance Provenance      `json:"provenance"`
}

package generator

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"affiliate-blog/services/content/internal/entity"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

type Catalog struct {
	HeroImages ImageCatalog   `yaml:"hero_images"`
	Products   ProductCatalog `yaml:"products"`
}

type ImageCatalog struct {
	DefaultCategory string          `yaml:"default_category"`
	Categories      []ImageCategory `yaml:"categories"`
}

type ImageCategory struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
	Images   []string `yaml:"images"`
}

type ProductCatalog struct {
	DefaultCategory string            `yaml:"default_category"`
	Categories      []ProductCategory `yaml:"categories"`
}

type ProductCategory struct {
	Name     string           `yaml:"name"`
	Keywords []string         `yaml:"keywords"`
	Items    []entity.Product `yaml:"items"`
}

// LoadCatalog parses the catalog compiled into the binary.
func LoadCatalog() (*Catalog, error) {
	return ParseCatalog(embeddedCatalog)
}

func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return &c, nil
}

// matchCategory returns the index of the first category with a keyword
// contained in the lower-cased topic, or -1.
func matchCategory(topic string, keywords func(i int) []string, n int) int {
	lower := strings.ToLower(topic)
	for i := 0; i < n; i++ {
		for _, kw := range keywords(i) {
			if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
				return i
			}
		}
	}
	return -1
}

// stableIndex picks an index in [0,n) from a 31-multiplier string hash so the
// same topic always maps to the same image.
func stableIndex(s string, n int) int {
	var h int32
	for _, r := range s {
		h = h*31 + int32(r)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return int(v % int64(n))
}

// CatalogImageLookup resolves hero images from the curated catalog.
type CatalogImageLookup struct {
	catalog *ImageCatalog
}

func NewCatalogImageLookup(c *Catalog) *CatalogImageLookup {
	return &CatalogImageLookup{catalog: &c.HeroImages}
}

func (l *CatalogImageLookup) RequestHeroImage(ctx context.Context, topic string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	cats := l.catalog.Categories
	idx := matchCategory(topic, func(i int) []string { return cats[i].Keywords }, len(cats))
	if idx < 0 {
		idx = l.categoryIndex(l.catalog.DefaultCategory)
	}
	if idx < 0 || len(cats[idx].Images) == 0 {
		return "", fmt.Errorf("no hero image available for %q", topic)
	}

	images := cats[idx].Images
	return images[stableIndex(topic, len(images))], nil
}

func (l *CatalogImageLookup) categoryIndex(name string) int {
	for i, c := range l.catalog.Categories {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// CatalogProductLookup serves the mock affiliate catalog.
type CatalogProductLookup struct {
	catalog *ProductCatalog
}

func NewCatalogProductLookup(c *Catalog) *CatalogProductLookup {
	return &CatalogProductLookup{catalog: &c.Products}
}

func (l *CatalogProductLookup) SearchProducts(ctx context.Context, topic string) ([]entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cats := l.catalog.Categories
	idx := matchCategory(topic, func(i int) []string { return cats[i].Keywords }, len(cats))
	if idx < 0 {
		for i, c := range cats {
			if c.Name == l.catalog.DefaultCategory {
				idx = i
				break
			}
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("no product category for %q", topic)
	}

	items := make([]entity.Product, len(cats[idx].Items))
	copy(items, cats[idx].Items)
	return items, nil
}

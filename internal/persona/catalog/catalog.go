package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Category is one of the five fixed preference domains.
type Category string

const (
	Activities Category = "activities"
	Biomes     Category = "biomes"
	Items      Category = "items"
	Behaviors  Category = "behaviors"
	Social     Category = "social"
)

// ErrUnknownCategory is returned when a caller queries a category that is
// not part of the catalog. Unknown keys are a programmer error and must not
// silently accumulate state.
var ErrUnknownCategory = errors.New("unknown preference category")

var categoryOrder = []Category{Activities, Biomes, Items, Behaviors, Social}

// Catalog is the immutable preference taxonomy: five categories, each with a
// fixed ordered option set, plus the consolidated trait pool
// (behaviors + social). Built once at startup and shared read-only.
type Catalog struct {
	options map[Category][]string
	index   map[Category]map[string]struct{}
	traits  []string
}

// MinOptions is the smallest option set a category may carry. Root
// generation draws up to 3 likes plus up to 2 dislikes without replacement.
const MinOptions = 5

// New builds a catalog from explicit option sets. All five categories must
// be present, each with at least MinOptions distinct options.
func New(options map[Category][]string) (*Catalog, error) {
	c := &Catalog{
		options: make(map[Category][]string, len(categoryOrder)),
		index:   make(map[Category]map[string]struct{}, len(categoryOrder)),
	}
	for _, cat := range categoryOrder {
		opts, ok := options[cat]
		if !ok {
			return nil, fmt.Errorf("catalog: missing category %q", cat)
		}
		if len(opts) < MinOptions {
			return nil, fmt.Errorf("catalog: category %q has %d options, need at least %d", cat, len(opts), MinOptions)
		}
		idx := make(map[string]struct{}, len(opts))
		for _, o := range opts {
			if o == "" {
				return nil, fmt.Errorf("catalog: category %q has an empty option", cat)
			}
			if _, dup := idx[o]; dup {
				return nil, fmt.Errorf("catalog: category %q has duplicate option %q", cat, o)
			}
			idx[o] = struct{}{}
		}
		c.options[cat] = append([]string(nil), opts...)
		c.index[cat] = idx
	}
	for k := range options {
		if _, ok := c.index[k]; !ok {
			return nil, fmt.Errorf("catalog: %w: %q", ErrUnknownCategory, k)
		}
	}
	c.traits = append(append([]string(nil), c.options[Behaviors]...), c.options[Social]...)
	return c, nil
}

// Default returns the built-in taxonomy.
func Default() *Catalog {
	c, err := New(defaultOptions)
	if err != nil {
		// The built-in tables are compile-time constants; a failure here is
		// a bug in this package.
		panic(err)
	}
	return c
}

// Load reads a taxonomy override file (YAML mapping of category name to
// option list) and builds a catalog from it.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc map[Category][]string
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("taxonomy %s: %w", path, err)
	}
	c, err := New(doc)
	if err != nil {
		return nil, fmt.Errorf("taxonomy %s: %w", path, err)
	}
	return c, nil
}

// Categories returns the five categories in fixed order.
func (c *Catalog) Categories() []Category {
	return categoryOrder
}

// Options returns the ordered option set for cat. The returned slice is
// owned by the catalog; callers must not modify it.
func (c *Catalog) Options(cat Category) ([]string, error) {
	opts, ok := c.options[cat]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, cat)
	}
	return opts, nil
}

// TraitPool returns the consolidated behaviors+social pool, in option order.
// The returned slice is owned by the catalog; callers must not modify it.
func (c *Catalog) TraitPool() []string {
	return c.traits
}

// Has reports whether item is a valid option of cat.
func (c *Catalog) Has(cat Category, item string) (bool, error) {
	idx, ok := c.index[cat]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownCategory, cat)
	}
	_, ok = idx[item]
	return ok, nil
}

// HasTrait reports whether item belongs to the trait pool.
func (c *Catalog) HasTrait(item string) bool {
	_, inB := c.index[Behaviors][item]
	_, inS := c.index[Social][item]
	return inB || inS
}

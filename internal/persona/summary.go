package persona

import (
	"strings"

	"voxelsoul.ai/internal/persona/catalog"
)

// Summary is the read-only shape the presentation layer renders: the trait
// list as one string, up to two loves and one hate per category.
type Summary struct {
	Traits string   `json:"traits"`
	Loves  []string `json:"loves"`
	Hates  []string `json:"hates"`
}

// Summarize builds a display summary of p. Output order is stable: traits
// sorted, preferences in category order then option order.
func Summarize(cat *catalog.Catalog, p *Personality) Summary {
	s := Summary{
		Traits: strings.Join(sortedKeys(p.Traits), ", "),
		Loves:  []string{},
		Hates:  []string{},
	}
	for _, c := range cat.Categories() {
		opts, err := cat.Options(c)
		if err != nil {
			continue
		}
		loves, hates := 0, 0
		for _, item := range opts {
			if p.Likes[c][item] && loves < 2 {
				s.Loves = append(s.Loves, item)
				loves++
			}
			if p.Dislikes[c][item] && hates < 1 {
				s.Hates = append(s.Hates, item)
				hates++
			}
		}
	}
	return s
}

// Package persona implements procedural agent personalities: generation and
// genetic-style inheritance, pairwise social compatibility scoring,
// experience-driven preference adaptation, and population queries used to
// surface allies, rivals and conversation topics.
package persona

import (
	"sort"
	"time"

	"voxelsoul.ai/internal/persona/catalog"
)

// Personality is the preference state owned by exactly one agent.
//
// Single-writer discipline: only the owning agent's task may mutate a
// personality (through ExperienceAdapter). CompatibilityEngine and
// SocialGraph read other agents' personalities and must not run concurrently
// with a mutation of the same instance without caller synchronization.
type Personality struct {
	ID string

	Likes    map[catalog.Category]map[string]bool
	Dislikes map[catalog.Category]map[string]bool
	Traits   map[string]bool

	// Experience holds the lifetime-accumulated outcome modifier per
	// (category, item). Signed, unbounded, no decay.
	Experience map[catalog.Category]map[string]float64

	BirthTime time.Time

	// ParentID links into the Ancestry arena. Lineage is carried by id,
	// never by an embedded parent value, so deep generation chains stay
	// bounded in memory.
	ParentID   string
	Generation int
}

func emptyPersonality(cat *catalog.Catalog) *Personality {
	p := &Personality{
		Likes:      make(map[catalog.Category]map[string]bool),
		Dislikes:   make(map[catalog.Category]map[string]bool),
		Traits:     make(map[string]bool),
		Experience: make(map[catalog.Category]map[string]float64),
	}
	for _, c := range cat.Categories() {
		p.Likes[c] = make(map[string]bool)
		p.Dislikes[c] = make(map[string]bool)
	}
	return p
}

// Clone returns a deep copy. Exported copies may outlive the original; they
// share nothing with it.
func (p *Personality) Clone() *Personality {
	out := &Personality{
		ID:         p.ID,
		Likes:      cloneSets(p.Likes),
		Dislikes:   cloneSets(p.Dislikes),
		Traits:     cloneSet(p.Traits),
		Experience: make(map[catalog.Category]map[string]float64, len(p.Experience)),
		BirthTime:  p.BirthTime,
		ParentID:   p.ParentID,
		Generation: p.Generation,
	}
	for c, mods := range p.Experience {
		m := make(map[string]float64, len(mods))
		for k, v := range mods {
			m[k] = v
		}
		out.Experience[c] = m
	}
	return out
}

// Modifier returns the accumulated experience modifier for (cat, item),
// zero if the pair has never been reported.
func (p *Personality) Modifier(cat catalog.Category, item string) float64 {
	return p.Experience[cat][item]
}

func cloneSets(in map[catalog.Category]map[string]bool) map[catalog.Category]map[string]bool {
	out := make(map[catalog.Category]map[string]bool, len(in))
	for c, set := range in {
		out[c] = cloneSet(set)
	}
	return out
}

func cloneSet(in map[string]bool) map[string]bool {
	out := make(map[string]bool, len(in))
	for k, v := range in {
		if v {
			out[k] = true
		}
	}
	return out
}

// sortedKeys returns the members of a set in lexicographic order. Map
// iteration order is randomized; every random choice over a set goes
// through this so seeded runs reproduce.
func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k, ok := range set {
		if ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

func countShared(a, b map[string]bool) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for k, ok := range a {
		if ok && b[k] {
			n++
		}
	}
	return n
}

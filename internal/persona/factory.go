package persona

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"voxelsoul.ai/internal/persona/catalog"
)

// Factory creates personalities, either root-generated or inherited with
// mutation from a parent. All preference draws flow through one seeded
// source, so a run's generated preferences reproduce from the seed (ids and
// timestamps do not).
//
// A Factory is not safe for concurrent use; give each spawner goroutine its
// own, or serialize calls.
type Factory struct {
	cat      *catalog.Catalog
	rng      *rand.Rand
	ancestry *Ancestry
}

// NewFactory builds a factory over cat. ancestry may be nil when lineage
// bookkeeping is not wanted.
func NewFactory(cat *catalog.Catalog, seed int64, ancestry *Ancestry) *Factory {
	return &Factory{
		cat:      cat,
		rng:      rand.New(rand.NewSource(seed)),
		ancestry: ancestry,
	}
}

// Catalog returns the taxonomy this factory samples from.
func (f *Factory) Catalog() *catalog.Catalog { return f.cat }

// GenerateRoot creates a generation-zero personality: per category 2-3 likes
// and 1-2 dislikes sampled uniformly without replacement (dislikes from the
// non-like remainder), plus 3-5 traits from the trait pool.
func (f *Factory) GenerateRoot() *Personality {
	p := emptyPersonality(f.cat)
	p.ID = uuid.NewString()
	p.BirthTime = time.Now()

	for _, c := range f.cat.Categories() {
		opts, err := f.cat.Options(c)
		if err != nil {
			// Categories() and Options() come from the same catalog.
			panic(err)
		}
		for _, item := range f.sample(opts, 2+f.rng.Intn(2), nil) {
			p.Likes[c][item] = true
		}
		for _, item := range f.sample(opts, 1+f.rng.Intn(2), p.Likes[c]) {
			p.Dislikes[c][item] = true
		}
	}
	for _, t := range f.sample(f.cat.TraitPool(), 3+f.rng.Intn(3), nil) {
		p.Traits[t] = true
	}

	if f.ancestry != nil {
		f.ancestry.Record(p)
	}
	return p
}

// Inherit creates a child of parent. Likes, dislikes and traits are copied
// verbatim, then each category's likes and dislikes independently mutate
// with probability mutationRate (one remove-then-add cycle). Traits mutate
// with probability min(1, 2*mutationRate) for 1-2 cycles; traits are assumed
// more volatile across generations than concrete preferences.
//
// mutationRate is clamped to [0,1] before use. Experience modifiers are not
// inherited; they are lifetime counters of the owning agent.
func (f *Factory) Inherit(parent *Personality, mutationRate float64) *Personality {
	rate := clamp(mutationRate, 0, 1)

	child := emptyPersonality(f.cat)
	child.ID = uuid.NewString()
	child.BirthTime = time.Now()
	child.ParentID = parent.ID
	child.Generation = parent.Generation + 1

	for _, c := range f.cat.Categories() {
		for item := range parent.Likes[c] {
			child.Likes[c][item] = true
		}
		for item := range parent.Dislikes[c] {
			child.Dislikes[c][item] = true
		}
		opts, err := f.cat.Options(c)
		if err != nil {
			panic(err)
		}
		if f.rng.Float64() < rate {
			f.mutateSet(child.Likes[c], child.Dislikes[c], opts)
		}
		if f.rng.Float64() < rate {
			f.mutateSet(child.Dislikes[c], child.Likes[c], opts)
		}
	}

	for t := range parent.Traits {
		child.Traits[t] = true
	}
	if f.rng.Float64() < clamp(2*rate, 0, 1) {
		cycles := 1 + f.rng.Intn(2)
		for i := 0; i < cycles; i++ {
			f.mutateSet(child.Traits, nil, f.cat.TraitPool())
		}
	}

	if f.ancestry != nil {
		f.ancestry.Record(child)
	}
	return child
}

// mutateSet performs one remove-then-add cycle on set: drop one random
// current member, then add one option drawn uniformly from pool entries
// claimed by neither set nor exclude. An empty set skips the removal half;
// an exhausted pool skips the addition half.
func (f *Factory) mutateSet(set, exclude map[string]bool, pool []string) {
	if members := sortedKeys(set); len(members) > 0 {
		delete(set, members[f.rng.Intn(len(members))])
	}
	free := make([]string, 0, len(pool))
	for _, item := range pool {
		if set[item] || (exclude != nil && exclude[item]) {
			continue
		}
		free = append(free, item)
	}
	if len(free) > 0 {
		set[free[f.rng.Intn(len(free))]] = true
	}
}

// sample draws k distinct entries uniformly from pool minus exclude. Fewer
// than k remaining means all of them.
func (f *Factory) sample(pool []string, k int, exclude map[string]bool) []string {
	free := make([]string, 0, len(pool))
	for _, item := range pool {
		if exclude != nil && exclude[item] {
			continue
		}
		free = append(free, item)
	}
	if k > len(free) {
		k = len(free)
	}
	out := make([]string, 0, k)
	for _, i := range f.rng.Perm(len(free))[:k] {
		out = append(out, free[i])
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

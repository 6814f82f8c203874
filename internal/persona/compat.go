package persona

import "voxelsoul.ai/internal/persona/catalog"

// Relation labels a compatibility score band.
type Relation string

const (
	RelationBestFriends Relation = "BEST_FRIENDS"
	RelationGoodFriends Relation = "GOOD_FRIENDS"
	RelationFriendly    Relation = "FRIENDLY"
	RelationNeutral     Relation = "NEUTRAL"
	RelationTense       Relation = "TENSE"
	RelationRivalry     Relation = "RIVALRY"
	RelationEnemies     Relation = "ENEMIES"
)

// Scoring weights. A conflict (one side likes what the other dislikes)
// outweighs a shared like; shared dislikes bond less than shared likes.
const (
	sharedLikeWeight    = 0.2
	sharedDislikeWeight = 0.1
	conflictWeight      = 0.3
	sharedTraitWeight   = 0.15
)

// Engine computes pairwise social affinity between personalities. Stateless
// and read-only; safe for concurrent use as long as neither personality is
// being mutated.
type Engine struct {
	cat *catalog.Catalog
}

func NewEngine(cat *catalog.Catalog) *Engine {
	return &Engine{cat: cat}
}

// Score returns the affinity between a and b in [-1, 1]. Every term is
// symmetric in a and b, so Score(a, b) == Score(b, a). A pair with no
// overlap at all scores 0: the neutral default, not a special case.
func (e *Engine) Score(a, b *Personality) float64 {
	var sum float64
	for _, c := range e.cat.Categories() {
		sum += sharedLikeWeight * float64(countShared(a.Likes[c], b.Likes[c]))
		sum += sharedDislikeWeight * float64(countShared(a.Dislikes[c], b.Dislikes[c]))
		conflicts := countShared(a.Likes[c], b.Dislikes[c]) + countShared(b.Likes[c], a.Dislikes[c])
		sum -= conflictWeight * float64(conflicts)
	}
	sum += sharedTraitWeight * float64(countShared(a.Traits, b.Traits))
	return clamp(sum, -1, 1)
}

// Classify maps a score onto its relation band. Bands partition the real
// line; boundary values resolve upward.
func (e *Engine) Classify(score float64) Relation {
	switch {
	case score >= 0.7:
		return RelationBestFriends
	case score >= 0.4:
		return RelationGoodFriends
	case score >= 0.2:
		return RelationFriendly
	case score >= -0.1:
		return RelationNeutral
	case score >= -0.3:
		return RelationTense
	case score >= -0.6:
		return RelationRivalry
	default:
		return RelationEnemies
	}
}

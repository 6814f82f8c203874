package persona

import (
	"math/rand"
	"sort"

	"voxelsoul.ai/internal/persona/catalog"
)

// Match is one population member ranked against a subject.
type Match struct {
	ID       string
	Score    float64
	Relation Relation
}

// Sentiment marks which side of a personality a conversation topic came from.
type Sentiment string

const (
	SentimentLike    Sentiment = "LIKE"
	SentimentDislike Sentiment = "DISLIKE"
)

// Topic is a conversation opener drawn from a personality's preferences.
type Topic struct {
	Category  catalog.Category
	Item      string
	Sentiment Sentiment
}

// SocialGraph ranks a population against a subject personality and picks
// conversation topics. Pure reads over Engine.Score; personalities are
// treated as snapshots and never mutated.
type SocialGraph struct {
	engine *Engine
	rng    *rand.Rand
}

func NewSocialGraph(engine *Engine, seed int64) *SocialGraph {
	return &SocialGraph{engine: engine, rng: rand.New(rand.NewSource(seed))}
}

// FindCompatible returns population members scoring at least minScore
// against subject, best first. The subject's own entry, if present, is
// skipped. An empty population yields an empty list.
func (g *SocialGraph) FindCompatible(subject *Personality, population map[string]*Personality, minScore float64) []Match {
	matches := g.rank(subject, population, func(s float64) bool { return s >= minScore })
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].ID < matches[j].ID
	})
	return matches
}

// FindRivals returns population members scoring at most maxScore against
// subject, worst first.
func (g *SocialGraph) FindRivals(subject *Personality, population map[string]*Personality, maxScore float64) []Match {
	matches := g.rank(subject, population, func(s float64) bool { return s <= maxScore })
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score < matches[j].Score
		}
		return matches[i].ID < matches[j].ID
	})
	return matches
}

func (g *SocialGraph) rank(subject *Personality, population map[string]*Personality, keep func(float64) bool) []Match {
	matches := make([]Match, 0, len(population))
	for id, other := range population {
		if other == nil || id == subject.ID || other == subject {
			continue
		}
		score := g.engine.Score(subject, other)
		if !keep(score) {
			continue
		}
		matches = append(matches, Match{ID: id, Score: score, Relation: g.engine.Classify(score)})
	}
	return matches
}

// ConversationTopic picks something p would bring up: a uniformly random
// category, then with probability 0.7 one of its likes, otherwise one of
// its dislikes, falling back to the other side when the preferred one is
// empty. Returns false only when the chosen category has neither.
func (g *SocialGraph) ConversationTopic(p *Personality) (Topic, bool) {
	cats := g.engine.cat.Categories()
	c := cats[g.rng.Intn(len(cats))]

	likes := sortedKeys(p.Likes[c])
	dislikes := sortedKeys(p.Dislikes[c])

	preferLikes := g.rng.Float64() < 0.7
	if (preferLikes && len(likes) > 0) || len(dislikes) == 0 {
		if len(likes) == 0 {
			return Topic{}, false
		}
		return Topic{Category: c, Item: likes[g.rng.Intn(len(likes))], Sentiment: SentimentLike}, true
	}
	return Topic{Category: c, Item: dislikes[g.rng.Intn(len(dislikes))], Sentiment: SentimentDislike}, true
}

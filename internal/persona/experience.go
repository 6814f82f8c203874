package persona

import (
	"errors"
	"fmt"
	"time"

	"voxelsoul.ai/internal/persona/catalog"
)

// ErrUnknownItem is returned when an outcome names an item that is not an
// option of its category.
var ErrUnknownItem = errors.New("unknown item for category")

// DefaultStrength is the per-outcome modifier step used by Record.
const DefaultStrength = 0.1

// Modifier thresholds for structural preference changes.
const (
	promoteThreshold  = 0.5  // dislike -> like
	demoteThreshold   = -0.5 // like -> dislike
	discoverThreshold = 0.3  // neither -> like
)

// Change describes the structural effect of one recorded outcome.
type Change string

const (
	ChangeNone       Change = ""
	ChangeNewLike    Change = "NEW_LIKE"        // moved out of dislikes
	ChangeNewDislike Change = "NEW_DISLIKE"     // moved out of likes
	ChangeDiscovered Change = "DISCOVERED_LIKE" // picked up from neither set
)

// Outcome is the journal record written for every reported outcome.
type Outcome struct {
	TS            time.Time        `json:"ts"`
	PersonalityID string           `json:"personality_id"`
	Category      catalog.Category `json:"category"`
	Item          string           `json:"item"`
	Success       bool             `json:"success"`
	Strength      float64          `json:"strength"`
	Modifier      float64          `json:"modifier"`
	Change        Change           `json:"change,omitempty"`
}

// Journal receives outcome records. Satisfied by journal.Writer.
type Journal interface {
	Write(v any) error
}

// ExperienceAdapter folds reported activity outcomes into a personality:
// each outcome nudges a lifetime modifier for its (category, item), and
// crossing a threshold moves the item between likes and dislikes.
//
// Mutates exactly the personality passed in; the owning agent's task is the
// only caller allowed (single-writer discipline).
type ExperienceAdapter struct {
	cat     *catalog.Catalog
	journal Journal
}

// NewExperienceAdapter builds an adapter over cat. journal may be nil;
// journaling is best effort and never fails an outcome.
func NewExperienceAdapter(cat *catalog.Catalog, journal Journal) *ExperienceAdapter {
	return &ExperienceAdapter{cat: cat, journal: journal}
}

// Record reports an outcome at DefaultStrength.
func (x *ExperienceAdapter) Record(p *Personality, cat catalog.Category, item string, success bool) (Change, error) {
	return x.RecordOutcome(p, cat, item, success, DefaultStrength)
}

// RecordOutcome adds/subtracts strength to the (cat, item) modifier, then
// applies at most one structural change, in priority order:
//
//  1. modifier > 0.5 and item disliked: move it to likes
//  2. modifier < -0.5 and item liked: move it to dislikes
//  3. modifier > 0.3 and item in neither set: add it to likes
//
// The modifier itself never decays; it accumulates over the personality's
// lifetime. Unknown categories or items fail fast instead of accumulating
// state the preference logic would never read.
func (x *ExperienceAdapter) RecordOutcome(p *Personality, cat catalog.Category, item string, success bool, strength float64) (Change, error) {
	ok, err := x.cat.Has(cat, item)
	if err != nil {
		return ChangeNone, err
	}
	if !ok {
		return ChangeNone, fmt.Errorf("%w: %q in %q", ErrUnknownItem, item, cat)
	}

	mods := p.Experience[cat]
	if mods == nil {
		mods = make(map[string]float64)
		p.Experience[cat] = mods
	}
	if success {
		mods[item] += strength
	} else {
		mods[item] -= strength
	}
	m := mods[item]

	change := ChangeNone
	switch {
	case m > promoteThreshold && p.Dislikes[cat][item]:
		delete(p.Dislikes[cat], item)
		p.Likes[cat][item] = true
		change = ChangeNewLike
	case m < demoteThreshold && p.Likes[cat][item]:
		delete(p.Likes[cat], item)
		p.Dislikes[cat][item] = true
		change = ChangeNewDislike
	case m > discoverThreshold && !p.Likes[cat][item] && !p.Dislikes[cat][item]:
		p.Likes[cat][item] = true
		change = ChangeDiscovered
	}

	if x.journal != nil {
		_ = x.journal.Write(Outcome{
			TS:            time.Now().UTC(),
			PersonalityID: p.ID,
			Category:      cat,
			Item:          item,
			Success:       success,
			Strength:      strength,
			Modifier:      m,
			Change:        change,
		})
	}
	return change, nil
}

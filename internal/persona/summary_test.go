package persona

import (
	"strings"
	"testing"

	"voxelsoul.ai/internal/persona/catalog"
)

func TestSummarize_Caps(t *testing.T) {
	cat := catalog.Default()
	f := NewFactory(cat, 71, nil)

	for i := 0; i < 20; i++ {
		p := f.GenerateRoot()
		s := Summarize(cat, p)

		if want := len(sortedKeys(p.Traits)); len(strings.Split(s.Traits, ", ")) != want {
			t.Fatalf("traits string %q does not list %d traits", s.Traits, want)
		}
		if len(s.Loves) > 2*5 {
			t.Fatalf("loves: got %d want at most 10", len(s.Loves))
		}
		if len(s.Hates) > 1*5 {
			t.Fatalf("hates: got %d want at most 5", len(s.Hates))
		}
		for _, item := range s.Loves {
			if !likedSomewhere(cat, p, item) {
				t.Fatalf("love %q not actually liked", item)
			}
		}
	}
}

func TestSummarize_StableOrder(t *testing.T) {
	cat := catalog.Default()
	p := emptyPersonality(cat)
	p.Likes[catalog.Activities]["trading"] = true
	p.Likes[catalog.Activities]["mining"] = true
	p.Likes[catalog.Activities]["crafting"] = true
	p.Dislikes[catalog.Biomes]["swamp"] = true
	p.Traits["curious"] = true
	p.Traits["bold"] = true

	s := Summarize(cat, p)
	// Option order within the category: mining before trading before
	// crafting; only two make the cut.
	if len(s.Loves) != 2 || s.Loves[0] != "mining" || s.Loves[1] != "trading" {
		t.Fatalf("loves: got %v", s.Loves)
	}
	if len(s.Hates) != 1 || s.Hates[0] != "swamp" {
		t.Fatalf("hates: got %v", s.Hates)
	}
	if s.Traits != "bold, curious" {
		t.Fatalf("traits: got %q", s.Traits)
	}
}

func likedSomewhere(cat *catalog.Catalog, p *Personality, item string) bool {
	for _, c := range cat.Categories() {
		if p.Likes[c][item] {
			return true
		}
	}
	return false
}

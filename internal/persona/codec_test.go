package persona

import (
	"strings"
	"testing"

	"voxelsoul.ai/internal/persona/catalog"
)

func TestExportImport_RoundTrip(t *testing.T) {
	cat := catalog.Default()
	f := NewFactory(cat, 59, nil)
	x := NewExperienceAdapter(cat, nil)

	p := f.GenerateRoot()
	for i := 0; i < 3; i++ {
		if _, err := x.Record(p, catalog.Items, "diamond", true); err != nil {
			t.Fatalf("record: %v", err)
		}
	}
	child := f.Inherit(p, 0.2)

	for _, orig := range []*Personality{p, child} {
		s, err := Export(orig)
		if err != nil {
			t.Fatalf("export: %v", err)
		}
		got := Import(s, f)

		if got.ID != orig.ID || got.ParentID != orig.ParentID || got.Generation != orig.Generation {
			t.Fatalf("identity lost: got %s/%s/%d want %s/%s/%d",
				got.ID, got.ParentID, got.Generation, orig.ID, orig.ParentID, orig.Generation)
		}
		if !got.BirthTime.Equal(orig.BirthTime) {
			t.Fatalf("birth time lost: got %v want %v", got.BirthTime, orig.BirthTime)
		}
		for _, c := range cat.Categories() {
			if !sameSet(orig.Likes[c], got.Likes[c]) || !sameSet(orig.Dislikes[c], got.Dislikes[c]) {
				t.Fatalf("preferences lost in %s", c)
			}
		}
		if !sameSet(orig.Traits, got.Traits) {
			t.Fatalf("traits lost")
		}
		for c, mods := range orig.Experience {
			for item, v := range mods {
				if got.Modifier(c, item) != v {
					t.Fatalf("modifier lost: %s/%s got %v want %v", c, item, got.Modifier(c, item), v)
				}
			}
		}
		checkInvariants(t, cat, got)
	}
}

func TestImport_GarbageFallsBackToRoot(t *testing.T) {
	cat := catalog.Default()
	f := NewFactory(cat, 61, nil)

	inputs := []string{
		"not valid json",
		"",
		"42",
		`{"header":{"version":1}}`,                // schema: missing fields
		`{"header":{"version":99},"id":"x","likes":{},"dislikes":{},"traits":[],"birth_time":"2026-01-02T00:00:00Z"}`, // wrong version
	}
	for _, in := range inputs {
		p := Import(in, f)
		if p == nil {
			t.Fatalf("input %q: nil personality", in)
		}
		checkInvariants(t, cat, p)
		for _, c := range cat.Categories() {
			if n := len(p.Likes[c]); n < 2 || n > 3 {
				t.Fatalf("input %q: fallback likes[%s]=%d, not a root personality", in, c, n)
			}
		}
		if n := len(p.Traits); n < 3 || n > 5 {
			t.Fatalf("input %q: fallback traits=%d", in, n)
		}
	}
}

func TestImport_RejectsCatalogViolations(t *testing.T) {
	cat := catalog.Default()
	f := NewFactory(cat, 67, nil)

	orig := f.GenerateRoot()
	s, err := Export(orig)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	cases := []struct{ name, from, to string }{
		{"unknown item", `"mining"`, `"snorkeling"`},
		{"unknown trait", `"traits":[`, `"traits":["warp_speed",`},
	}
	for _, tc := range cases {
		doctored := strings.Replace(s, tc.from, tc.to, 1)
		if doctored == s {
			// Pool draw missed the token this case doctors; nothing to check.
			continue
		}
		got := Import(doctored, f)
		if got.ID == orig.ID {
			t.Fatalf("%s: doctored document accepted", tc.name)
		}
		checkInvariants(t, cat, got)
	}

	// A document carrying an item in both likes and dislikes must fall back.
	overlap := `{"header":{"version":1},"id":"x","likes":{"items":["gold"]},"dislikes":{"items":["gold"]},"traits":[],"birth_time":"2026-01-02T00:00:00Z"}`
	got := Import(overlap, f)
	if got.ID == "x" {
		t.Fatalf("overlapping likes/dislikes accepted")
	}
}

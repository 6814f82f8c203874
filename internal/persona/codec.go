package persona

import (
	"encoding/json"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"voxelsoul.ai/internal/persona/catalog"
)

// Export format version. Bump on incompatible document changes.
const exportVersion = 1

type exportHeader struct {
	Version int `json:"version"`
}

type exportDoc struct {
	Header     exportHeader                  `json:"header"`
	ID         string                        `json:"id"`
	Likes      map[string][]string           `json:"likes"`
	Dislikes   map[string][]string           `json:"dislikes"`
	Traits     []string                      `json:"traits"`
	Experience map[string]map[string]float64 `json:"experience,omitempty"`
	BirthTime  time.Time                     `json:"birth_time"`
	ParentID   string                        `json:"parent_id,omitempty"`
	Generation int                           `json:"generation,omitempty"`
}

const exportSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["header", "id", "likes", "dislikes", "traits", "birth_time"],
  "properties": {
    "header": {
      "type": "object",
      "required": ["version"],
      "properties": { "version": { "type": "integer", "minimum": 1 } }
    },
    "id": { "type": "string", "minLength": 1 },
    "likes": {
      "type": "object",
      "additionalProperties": { "type": "array", "items": { "type": "string" } }
    },
    "dislikes": {
      "type": "object",
      "additionalProperties": { "type": "array", "items": { "type": "string" } }
    },
    "traits": { "type": "array", "items": { "type": "string" } },
    "experience": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "additionalProperties": { "type": "number" }
      }
    },
    "birth_time": { "type": "string" },
    "parent_id": { "type": "string" },
    "generation": { "type": "integer", "minimum": 0 }
  }
}`

var exportSchemaCompiled = jsonschema.MustCompileString("persona-export.schema.json", exportSchema)

// Export serializes p as a versioned JSON document: a lossless deep copy
// including experience modifiers, with a value copy of the parent id rather
// than any live lineage reference.
func Export(p *Personality) (string, error) {
	doc := exportDoc{
		Header:     exportHeader{Version: exportVersion},
		ID:         p.ID,
		Likes:      setsToDoc(p.Likes),
		Dislikes:   setsToDoc(p.Dislikes),
		Traits:     sortedKeys(p.Traits),
		BirthTime:  p.BirthTime,
		ParentID:   p.ParentID,
		Generation: p.Generation,
	}
	if len(p.Experience) > 0 {
		doc.Experience = make(map[string]map[string]float64, len(p.Experience))
		for c, mods := range p.Experience {
			if len(mods) == 0 {
				continue
			}
			m := make(map[string]float64, len(mods))
			for k, v := range mods {
				m[k] = v
			}
			doc.Experience[string(c)] = m
		}
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Import parses an exported document against the schema and the factory's
// catalog. Any failure — malformed JSON, schema violation, unknown
// category/item, like/dislike overlap — falls back to a freshly generated
// root personality; the caller decides whether to log the substitution.
func Import(s string, f *Factory) *Personality {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return f.GenerateRoot()
	}
	if err := exportSchemaCompiled.Validate(v); err != nil {
		return f.GenerateRoot()
	}
	var doc exportDoc
	if err := json.Unmarshal([]byte(s), &doc); err != nil {
		return f.GenerateRoot()
	}
	if doc.Header.Version != exportVersion || doc.ID == "" {
		return f.GenerateRoot()
	}

	p := emptyPersonality(f.cat)
	p.ID = doc.ID
	p.BirthTime = doc.BirthTime
	p.ParentID = doc.ParentID
	p.Generation = doc.Generation

	if !docToSets(f.cat, doc.Likes, p.Likes) || !docToSets(f.cat, doc.Dislikes, p.Dislikes) {
		return f.GenerateRoot()
	}
	for _, c := range f.cat.Categories() {
		for item := range p.Likes[c] {
			if p.Dislikes[c][item] {
				return f.GenerateRoot()
			}
		}
	}
	for _, t := range doc.Traits {
		if !f.cat.HasTrait(t) {
			return f.GenerateRoot()
		}
		p.Traits[t] = true
	}
	for cs, mods := range doc.Experience {
		c := catalog.Category(cs)
		m := make(map[string]float64, len(mods))
		for item, val := range mods {
			if ok, err := f.cat.Has(c, item); err != nil || !ok {
				return f.GenerateRoot()
			}
			m[item] = val
		}
		p.Experience[c] = m
	}
	return p
}

func setsToDoc(in map[catalog.Category]map[string]bool) map[string][]string {
	out := make(map[string][]string, len(in))
	for c, set := range in {
		out[string(c)] = sortedKeys(set)
	}
	return out
}

func docToSets(cat *catalog.Catalog, in map[string][]string, out map[catalog.Category]map[string]bool) bool {
	for cs, items := range in {
		c := catalog.Category(cs)
		for _, item := range items {
			ok, err := cat.Has(c, item)
			if err != nil || !ok {
				return false
			}
			out[c][item] = true
		}
	}
	return true
}

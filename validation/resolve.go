package validation

import (
	"slices"

	"github.com/agext/levenshtein"

	"github.com/c360studio/semschema/schema"
)

// maxSuggestionDistance bounds the edit distance of "did you mean" hints.
const maxSuggestionDistance = 2

type propKey struct {
	class string
	prop  string
}

type resolution struct {
	spec  schema.PropertySpec
	found bool
}

// resolve looks a property up on class and then along its parent chain.
func (v *Validator) resolve(class, prop string) (schema.PropertySpec, bool) {
	key := propKey{class: class, prop: prop}
	if r, ok := v.cache.Get(key); ok {
		return r.spec, r.found
	}

	var r resolution
	for _, name := range v.lineage(class) {
		entry, _ := v.doc.Class(name)
		if spec, ok := entry.Properties[prop]; ok {
			r = resolution{spec: spec, found: true}
			break
		}
	}
	v.cache.Add(key, r)
	return r.spec, r.found
}

// lineage returns class followed by its ancestors that exist in the
// schema. A cycle in the parent links ends the walk.
func (v *Validator) lineage(class string) []string {
	var out []string
	seen := make(map[string]struct{})
	for name := class; name != ""; {
		entry, ok := v.doc.Class(name)
		if !ok {
			break
		}
		if _, dup := seen[name]; dup {
			break
		}
		seen[name] = struct{}{}
		out = append(out, name)
		name = entry.ParentName()
	}
	return out
}

// isA reports whether class equals ancestor or descends from it.
func (v *Validator) isA(class, ancestor string) bool {
	return slices.Contains(v.lineage(class), ancestor)
}

// suggest returns the closest property name available on class, or "".
func (v *Validator) suggest(class, prop string) string {
	best, bestDist := "", maxSuggestionDistance+1
	for _, name := range v.lineage(class) {
		entry, _ := v.doc.Class(name)
		for candidate := range entry.Properties {
			d := levenshtein.Distance(prop, candidate, nil)
			if d < bestDist || (d == bestDist && candidate < best) {
				best, bestDist = candidate, d
			}
		}
	}
	return best
}

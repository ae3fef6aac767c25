package search

import (
	"fmt"
	"sort"
)

// Named is what the engine needs from an asset.
type Named interface {
	AssetName() string
	AlternateNames() []string
}

// Match is one ranked result.
type Match[ID comparable] struct {
	ID      ID
	Quality Quality
}

type candidate[ID comparable] struct {
	id   ID
	name string
}

// Classify groups the ids of matching assets by every category they fall in.
// Primary and alternate names are classified independently, so an id may appear
// under one primary and one alternate category. An empty normalized query matches nothing.
func Classify[ID comparable, A Named](contents map[ID]A, query string) map[Quality][]ID {
	q := normalize(query)
	if q == "" {
		return nil
	}

	groups := make(map[Quality][]candidate[ID])
	for id, asset := range contents {
		name := normalize(asset.AssetName())
		if t, ok := tier(name, q); ok {
			groups[t] = append(groups[t], candidate[ID]{id: id, name: name})
		}

		best, found := Quality(0), false
		for _, term := range asset.AlternateNames() {
			t, ok := tier(normalize(term), q)
			if ok && (!found || t < best) {
				best, found = t, true
			}
			if found && best == Perfect {
				break
			}
		}
		if found {
			groups[best.alternate()] = append(groups[best.alternate()], candidate[ID]{id: id, name: name})
		}
	}

	out := make(map[Quality][]ID, len(groups))
	for cat, cands := range groups {
		// Map iteration is random; sort so equal queries give equal results.
		sort.Slice(cands, func(i, j int) bool {
			if cands[i].name != cands[j].name {
				return cands[i].name < cands[j].name
			}
			return fmt.Sprint(cands[i].id) < fmt.Sprint(cands[j].id)
		})
		ids := make([]ID, len(cands))
		for i, c := range cands {
			ids[i] = c.id
		}
		out[cat] = ids
	}
	return out
}

// Run ranks matching assets: categories are walked in ordering order and each id is
// reported once, under the first category it is found in. Categories missing from
// ordering are dropped.
func Run[ID comparable, A Named](contents map[ID]A, query string, ordering Ordering) []Match[ID] {
	groups := Classify(contents, query)
	if len(groups) == 0 {
		return nil
	}

	seen := make(map[ID]struct{})
	var out []Match[ID]
	for _, q := range ordering {
		for _, id := range groups[q] {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, Match[ID]{ID: id, Quality: q})
		}
	}
	return out
}

// IDs is Run without the match qualities.
func IDs[ID comparable, A Named](contents map[ID]A, query string, ordering Ordering) []ID {
	matches := Run(contents, query, ordering)
	if matches == nil {
		return nil
	}
	ids := make([]ID, len(matches))
	for i, m := range matches {
		ids[i] = m.ID
	}
	return ids
}

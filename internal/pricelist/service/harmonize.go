package service

import "pricelist-service/internal/pricelist/model"

// CollectHeaders returns the union of header keys across the batch in
// first-seen order: row order, then each row's own key order.
func CollectHeaders(rows []model.RawRow) []string {
	seen := make(map[string]bool)
	var out []string
	for _, row := range rows {
		for _, k := range row.Keys() {
			if !seen[k] {
				seen[k] = true
				out = append(out, k)
			}
		}
	}
	return out
}

// GroupHeaders greedily partitions an ordered key list. Each unassigned key
// opens a group and becomes its canonical name; every later unassigned key
// scoring >= SameColumnThreshold against the canonical joins it. Members are
// scored against the canonical only, never against each other, so a group can
// be wider than a mutually-similar cluster. That looseness is relied upon:
// page-to-page header drift chains through the first-seen name.
func GroupHeaders(keys []string) []model.HeaderGroup {
	assigned := make([]bool, len(keys))
	groups := make([]model.HeaderGroup, 0, len(keys))
	for i, k := range keys {
		if assigned[i] {
			continue
		}
		assigned[i] = true
		g := model.HeaderGroup{Canonical: k, Variants: []string{k}}
		for j := i + 1; j < len(keys); j++ {
			if assigned[j] {
				continue
			}
			if Score(k, keys[j]) >= SameColumnThreshold {
				assigned[j] = true
				g.Variants = append(g.Variants, keys[j])
			}
		}
		groups = append(groups, g)
	}
	return groups
}

// Harmonize rewrites every row onto canonical header keys. For each group the
// first variant present on the row wins; a row carrying none of a group's
// variants simply omits that canonical key. Input rows are never mutated.
func Harmonize(rows []model.RawRow) ([]model.RawRow, []model.HeaderGroup) {
	groups := GroupHeaders(CollectHeaders(rows))
	out := make([]model.RawRow, len(rows))
	for i, row := range rows {
		nr := model.NewRawRow()
		for _, g := range groups {
			for _, v := range g.Variants {
				if c, ok := row.Get(v); ok {
					nr.Set(g.Canonical, c)
					break
				}
			}
		}
		out[i] = nr
	}
	return out, groups
}

package service

import (
	"strings"

	"pricelist-service/internal/pricelist/model"
)

// Extractor output for blank cells sometimes arrives as a literal placeholder
// token instead of an empty string.
var namePlaceholders = map[string]bool{
	"undefined": true,
	"null":      true,
	"n/a":       true,
	"na":        true,
	"-":         true,
}

func cleanName(c model.Cell) string {
	s := strings.TrimSpace(c.String())
	if namePlaceholders[strings.ToLower(s)] {
		return ""
	}
	return s
}

// ResolveName picks the product name for one row: manual retag first, then
// the primary name field, then each fallback in declared order. Empty when
// nothing usable is found.
func ResolveName(row model.RawRow, idx int, m model.FieldMapping, retags model.Retags) string {
	if rt, ok := retags[idx]; ok {
		if s := strings.TrimSpace(rt.Name); s != "" {
			return s
		}
	}
	if m.NameField != "" {
		if c, ok := row.Get(m.NameField); ok {
			if s := cleanName(c); s != "" {
				return s
			}
		}
	}
	for _, f := range m.NameFallbacks {
		if c, ok := row.Get(f); ok {
			if s := cleanName(c); s != "" {
				return s
			}
		}
	}
	return ""
}

// ResolveCost picks the cost price: manual retag, then the primary cost
// field, then fallbacks. Zero when nothing yields a positive price.
func ResolveCost(row model.RawRow, idx int, m model.FieldMapping, retags model.Retags) int64 {
	if rt, ok := retags[idx]; ok && rt.Cost > 0 {
		return rt.Cost
	}
	if m.CostField != "" {
		if c, ok := row.Get(m.CostField); ok {
			if v := NormalizePrice(c); v > 0 {
				return v
			}
		}
	}
	for _, f := range m.CostFallbacks {
		if c, ok := row.Get(f); ok {
			if v := NormalizePrice(c); v > 0 {
				return v
			}
		}
	}
	return 0
}

// ResolveSrp picks the suggested retail price. A manual retag still wins, but
// with no SrpField configured the automatic stages are skipped entirely: SRP
// is optional and fallbacks alone never activate it.
func ResolveSrp(row model.RawRow, idx int, m model.FieldMapping, retags model.Retags) int64 {
	if rt, ok := retags[idx]; ok && rt.Srp > 0 {
		return rt.Srp
	}
	if m.SrpField == "" {
		return 0
	}
	if c, ok := row.Get(m.SrpField); ok {
		if v := NormalizePrice(c); v > 0 {
			return v
		}
	}
	for _, f := range m.SrpFallbacks {
		if c, ok := row.Get(f); ok {
			if v := NormalizePrice(c); v > 0 {
				return v
			}
		}
	}
	return 0
}

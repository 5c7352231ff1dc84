package service

import (
	"regexp"
	"strings"
)

// SameColumnThreshold is the score at or above which two headers are merged
// onto the same column.
const SameColumnThreshold = 0.75

const (
	catName  = "name"
	catCost  = "cost"
	catSrp   = "srp"
	catPrice = "price"
	catBrand = "brand"
	catCode  = "code"
	catQty   = "qty"
)

// Semantic header categories. Extractors render the same column under wildly
// different names page to page ("Cost Price" / "Net" / "Dealer" / "Modal"),
// so matching is by meaning first. A header may land in several categories.
var headerCategories = []struct {
	cat string
	re  *regexp.Regexp
}{
	{catName, regexp.MustCompile(`(?i)name|desc|item|product|title|nama|barang`)},
	{catCost, regexp.MustCompile(`(?i)cost|net|dealer|modal|beli|dist`)},
	{catSrp, regexp.MustCompile(`(?i)srp|retail|sell|jual|msrp|rrp|eceran`)},
	{catPrice, regexp.MustCompile(`(?i)price|harga|amount`)},
	{catBrand, regexp.MustCompile(`(?i)brand|merk|merek|maker`)},
	{catCode, regexp.MustCompile(`(?i)code|sku|kode|part|artikel`)},
	{catQty, regexp.MustCompile(`(?i)qty|quantity|stock|stok`)},
}

func categoriesOf(header string) map[string]bool {
	out := make(map[string]bool, 2)
	for _, hc := range headerCategories {
		if hc.re.MatchString(header) {
			out[hc.cat] = true
		}
	}
	return out
}

// Score rates two header strings in [0,1]. Exact (case-insensitive) match is
// 1.0; a shared semantic category is 0.9; a cost header against an SRP header
// is pinned to 0.2 so the two price columns can never merge, no matter how
// alike they look; anything else falls back to positional character overlap,
// a deliberately weak signal that only catches OCR-garbled near-duplicates.
func Score(a, b string) float64 {
	if strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b)) {
		return 1.0
	}

	ca := categoriesOf(a)
	cb := categoriesOf(b)

	if (ca[catCost] && cb[catSrp]) || (ca[catSrp] && cb[catCost]) {
		return 0.2
	}

	for cat := range ca {
		if cb[cat] {
			return 0.9
		}
	}

	return positionalOverlap(a, b)
}

// positionalOverlap counts positions where the lowercased runes coincide,
// divided by the longer length. Not an edit distance: a single inserted
// character shifts everything after it.
func positionalOverlap(a, b string) float64 {
	ra := []rune(strings.ToLower(a))
	rb := []rune(strings.ToLower(b))
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}
	short, long := len(ra), len(rb)
	if short > long {
		short, long = long, short
	}
	hits := 0
	for i := 0; i < short; i++ {
		if ra[i] == rb[i] {
			hits++
		}
	}
	return float64(hits) / float64(long)
}

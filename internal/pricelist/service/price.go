package service

import (
	"math"
	"strconv"

	"pricelist-service/internal/pricelist/model"
)

// NormalizePrice converts a raw cell into a whole non-negative price.
// Finite non-negative numbers pass through as-is; everything else is rendered
// to text and reduced to its digit run. Dots and commas in source prices are
// grouping artifacts ("Rp 1.500.000"), never decimal fractions, so stripping
// is safe. A leading minus is stripped too, which makes the result always
// non-negative.
func NormalizePrice(c model.Cell) int64 {
	if c.IsNum && !math.IsNaN(c.Num) && !math.IsInf(c.Num, 0) && c.Num >= 0 {
		return int64(c.Num)
	}
	return digitRun(c.String())
}

func digitRun(s string) int64 {
	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			buf = append(buf, s[i])
		}
	}
	if len(buf) == 0 {
		return 0
	}
	v, err := strconv.ParseInt(string(buf), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

package model

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Cell is one extracted table value: either text or a number, never both.
// The extractor emits JSON scalars with no shape guarantee, so the tag is
// decided at decode time.
type Cell struct {
	Text  string
	Num   float64
	IsNum bool
}

func Text(s string) Cell    { return Cell{Text: s} }
func Number(f float64) Cell { return Cell{Num: f, IsNum: true} }

// String renders the cell the way it appeared in the source document.
func (c Cell) String() string {
	if !c.IsNum {
		return c.Text
	}
	if math.IsNaN(c.Num) || math.IsInf(c.Num, 0) {
		return ""
	}
	return strconv.FormatFloat(c.Num, 'f', -1, 64)
}

// Empty reports whether the cell carries no usable value.
func (c Cell) Empty() bool {
	if c.IsNum {
		return false
	}
	return strings.TrimSpace(c.Text) == ""
}

func (c Cell) MarshalJSON() ([]byte, error) {
	if c.IsNum {
		if math.IsNaN(c.Num) || math.IsInf(c.Num, 0) {
			return []byte(`0`), nil
		}
		return []byte(strconv.FormatFloat(c.Num, 'f', -1, 64)), nil
	}
	return json.Marshal(c.Text)
}

func (c *Cell) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*c = Cell{}
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*c = Text(v)
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		*c = Number(f)
		return nil
	}
	// booleans and other stray literals degrade to their textual form
	*c = Text(s)
	return nil
}

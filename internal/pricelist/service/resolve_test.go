package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pricelist-service/internal/pricelist/model"
)

func TestResolveName(t *testing.T) {
	mapping := model.FieldMapping{
		NameField:     "Desc",
		CostField:     "Net",
		NameFallbacks: []string{"Item", "Title"},
	}

	t.Run("manual retag outranks everything", func(t *testing.T) {
		r := row("Desc", "Primary", "Item", "Fallback")
		retags := model.Retags{0: {Name: "Corrected"}}
		assert.Equal(t, "Corrected", ResolveName(r, 0, mapping, retags))
	})

	t.Run("retag for another row does not apply", func(t *testing.T) {
		r := row("Desc", "Primary")
		retags := model.Retags{1: {Name: "Corrected"}}
		assert.Equal(t, "Primary", ResolveName(r, 0, mapping, retags))
	})

	t.Run("empty retag falls through to primary", func(t *testing.T) {
		r := row("Desc", "Primary")
		retags := model.Retags{0: {Name: "  "}}
		assert.Equal(t, "Primary", ResolveName(r, 0, mapping, retags))
	})

	t.Run("fallbacks in declared order", func(t *testing.T) {
		r := row("Desc", "", "Title", "Second", "Item", "First")
		assert.Equal(t, "First", ResolveName(r, 0, mapping, nil))
	})

	t.Run("placeholder tokens collapse to empty", func(t *testing.T) {
		for _, p := range []string{"undefined", "NULL", "n/a", "NA", "-"} {
			r := row("Desc", p)
			assert.Equal(t, "", ResolveName(r, 0, model.FieldMapping{NameField: "Desc"}, nil), p)
		}
	})

	t.Run("value is trimmed", func(t *testing.T) {
		r := row("Desc", "  Sony A7C  ")
		assert.Equal(t, "Sony A7C", ResolveName(r, 0, mapping, nil))
	})
}

func TestResolveCost(t *testing.T) {
	mapping := model.FieldMapping{
		NameField:     "Desc",
		CostField:     "Net",
		CostFallbacks: []string{"Dealer", "Price"},
	}

	t.Run("priority chain: retag, primary, fallback", func(t *testing.T) {
		r := row("Net", "100", "Dealer", "200")
		retags := model.Retags{0: {Cost: 300}}

		assert.Equal(t, int64(300), ResolveCost(r, 0, mapping, retags))
		assert.Equal(t, int64(100), ResolveCost(r, 0, mapping, nil))

		r2 := row("Net", "", "Dealer", "200", "Price", "999")
		assert.Equal(t, int64(200), ResolveCost(r2, 0, mapping, nil))
	})

	t.Run("zero retag cost is not an override", func(t *testing.T) {
		r := row("Net", "100")
		retags := model.Retags{0: {Cost: 0}}
		assert.Equal(t, int64(100), ResolveCost(r, 0, mapping, retags))
	})

	t.Run("unparsable primary falls through", func(t *testing.T) {
		r := row("Net", "call us", "Dealer", "1.500")
		assert.Equal(t, int64(1500), ResolveCost(r, 0, mapping, nil))
	})

	t.Run("nothing usable yields zero", func(t *testing.T) {
		r := row("Qty", "5")
		assert.Equal(t, int64(0), ResolveCost(r, 0, mapping, nil))
	})
}

func TestResolveSrp(t *testing.T) {
	t.Run("no srp field short-circuits to zero", func(t *testing.T) {
		mapping := model.FieldMapping{NameField: "Desc", CostField: "Net", SrpFallbacks: []string{"Retail"}}
		r := row("Retail", "500")
		assert.Equal(t, int64(0), ResolveSrp(r, 0, mapping, nil))
	})

	t.Run("manual retag still wins without srp field", func(t *testing.T) {
		mapping := model.FieldMapping{NameField: "Desc", CostField: "Net"}
		retags := model.Retags{0: {Srp: 700}}
		assert.Equal(t, int64(700), ResolveSrp(row(), 0, mapping, retags))
	})

	t.Run("primary then fallbacks", func(t *testing.T) {
		mapping := model.FieldMapping{SrpField: "SRP", SrpFallbacks: []string{"Retail"}}
		assert.Equal(t, int64(500), ResolveSrp(row("SRP", "500", "Retail", "600"), 0, mapping, nil))
		assert.Equal(t, int64(600), ResolveSrp(row("SRP", "", "Retail", "600"), 0, mapping, nil))
	})
}

func TestResolverPurity(t *testing.T) {
	mapping := model.FieldMapping{NameField: "Desc", CostField: "Net"}
	r := row("Desc", "Sony A7C", "Net", "24.845")
	retags := model.Retags{0: {Cost: 100}}

	n1 := ResolveName(r, 0, mapping, retags)
	c1 := ResolveCost(r, 0, mapping, retags)
	n2 := ResolveName(r, 0, mapping, retags)
	c2 := ResolveCost(r, 0, mapping, retags)

	assert.Equal(t, n1, n2)
	assert.Equal(t, c1, c2)
	assert.Equal(t, []string{"Desc", "Net"}, r.Keys())
	assert.Len(t, retags, 1)
}

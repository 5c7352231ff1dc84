package service

import (
	"encoding/json"

	"pricelist-service/internal/pricelist/model"
)

// Unresolved-row reasons, in diagnosis priority.
const (
	ReasonMissingBoth = "Missing Product Name and Cost Price"
	ReasonMissingName = "Missing Product Name"
	ReasonMissingCost = "Missing Cost Price"
)

// Analyze resolves every row against the mapping and classifies it. A row is
// import-ready when its name is non-empty and its cost is positive; anything
// else gets a reason for human remediation. Pure projection: call it again
// after every mapping or retag change.
func Analyze(rows []model.RawRow, m model.FieldMapping, retags model.Retags) model.Report {
	rep := model.Report{
		Total:      len(rows),
		Rows:       make([]model.RowStatus, 0, len(rows)),
		Unresolved: make([]model.RowStatus, 0),
	}
	for i, row := range rows {
		st := model.RowStatus{
			Index:       i,
			Name:        ResolveName(row, i, m, retags),
			Cost:        ResolveCost(row, i, m, retags),
			Srp:         ResolveSrp(row, i, m, retags),
			PresentKeys: row.PresentKeys(),
		}
		st.HasName = st.Name != ""
		st.HasCost = st.Cost > 0
		st.Resolved = st.HasName && st.HasCost
		switch {
		case st.Resolved:
			rep.Ready++
		case !st.HasName && !st.HasCost:
			st.Reason = ReasonMissingBoth
		case !st.HasName:
			st.Reason = ReasonMissingName
		default:
			st.Reason = ReasonMissingCost
		}
		if !st.Resolved {
			rep.Unresolved = append(rep.Unresolved, st)
		}
		rep.Rows = append(rep.Rows, st)
	}
	return rep
}

// ImportRecords builds the persistence payload for the import-ready rows
// only, with the original row attached for audit.
func ImportRecords(rows []model.RawRow, m model.FieldMapping, retags model.Retags) []model.ImportRecord {
	recs := make([]model.ImportRecord, 0, len(rows))
	for i, row := range rows {
		name := ResolveName(row, i, m, retags)
		cost := ResolveCost(row, i, m, retags)
		if name == "" || cost <= 0 {
			continue
		}
		raw, err := json.Marshal(row)
		if err != nil {
			raw = []byte("{}")
		}
		recs = append(recs, model.ImportRecord{
			Name:      name,
			Brand:     m.BrandName,
			CostPrice: cost,
			SrpPrice:  ResolveSrp(row, i, m, retags),
			RawJSON:   raw,
		})
	}
	return recs
}

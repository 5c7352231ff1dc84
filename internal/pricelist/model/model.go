package model

import "encoding/json"

// HeaderGroup is one cluster of equivalent header keys. Canonical is the
// first key that opened the group; Variants always starts with it.
type HeaderGroup struct {
	Canonical string   `json:"canonical"`
	Variants  []string `json:"variants"`
}

// FieldMapping is the user-declared source configuration for a batch.
// NameField and CostField must be set before an import can be confirmed;
// SrpField is optional. Fallbacks are consulted in declared order when the
// primary field yields nothing usable.
type FieldMapping struct {
	NameField     string   `json:"nameField"`
	CostField     string   `json:"costField"`
	SrpField      string   `json:"srpField,omitempty"`
	NameFallbacks []string `json:"nameFallbacks,omitempty"`
	CostFallbacks []string `json:"costFallbacks,omitempty"`
	SrpFallbacks  []string `json:"srpFallbacks,omitempty"`
	BrandName     string   `json:"brandName"`
}

// Submittable reports whether the mapping passes the import-confirmation
// gate. This is a caller-level precondition, not a core failure.
func (m FieldMapping) Submittable() bool {
	return m.NameField != "" && m.CostField != ""
}

// ManualRetag is a per-row human correction. Zero values mean "not set":
// an empty name or a zero price leaves the automatic resolution in force.
type ManualRetag struct {
	Name string `json:"name,omitempty"`
	Cost int64  `json:"cost,omitempty"`
	Srp  int64  `json:"srp,omitempty"`
}

// Retags maps a zero-based row index to its manual correction. Owned by the
// caller; the core only reads it.
type Retags map[int]ManualRetag

// RowStatus is the resolution outcome for one row.
type RowStatus struct {
	Index       int      `json:"index"`
	Name        string   `json:"name"`
	Cost        int64    `json:"cost"`
	Srp         int64    `json:"srp"`
	HasName     bool     `json:"hasName"`
	HasCost     bool     `json:"hasCost"`
	Resolved    bool     `json:"resolved"`
	Reason      string   `json:"reason,omitempty"`
	PresentKeys []string `json:"presentKeys"`
}

// Report is the batch-level readiness projection.
type Report struct {
	Total      int         `json:"total"`
	Ready      int         `json:"ready"`
	Rows       []RowStatus `json:"rows"`
	Unresolved []RowStatus `json:"unresolved"`
}

// ImportRecord is what the persistence collaborator receives for each
// import-ready row. RawJSON keeps the original row for audit.
type ImportRecord struct {
	Name      string          `json:"name"`
	Brand     string          `json:"brand"`
	CostPrice int64           `json:"costPrice"`
	SrpPrice  int64           `json:"srpPrice"`
	RawJSON   json.RawMessage `json:"rawJson"`
}

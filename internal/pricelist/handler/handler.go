package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"pricelist-service/internal/config"
	"pricelist-service/internal/fileio"
	"pricelist-service/internal/pricelist/model"
	"pricelist-service/internal/pricelist/service"
)

// batchRequest is the JSON request shape: extracted rows straight from the
// AI collaborator plus the user-declared mapping. Overrides are keyed by the
// zero-based row index as a string.
type batchRequest struct {
	Rows      []model.RawRow               `json:"rows"`
	Mapping   model.FieldMapping           `json:"mapping"`
	Overrides map[string]model.ManualRetag `json:"overrides"`
	Harmonize *bool                        `json:"harmonize"`
}

type analyzeResponse struct {
	model.Report
	Groups  []model.HeaderGroup `json:"groups,omitempty"`
	Mapping model.FieldMapping  `json:"mapping"`
}

type confirmResponse struct {
	Count   int                  `json:"count"`
	Records []model.ImportRecord `json:"records"`
}

// parseBatch accepts either a multipart upload ("file" + form values) or a
// JSON body, and returns the batch plus the applied mapping.
func parseBatch(r *http.Request, cfg config.Config) ([]model.RawRow, model.FieldMapping, model.Retags, bool, error) {
	ct := r.Header.Get("Content-Type")

	if strings.HasPrefix(ct, "multipart/") {
		if err := r.ParseMultipartForm(int64(cfg.MaxUploadMB) << 20); err != nil {
			return nil, model.FieldMapping{}, nil, false, errors.New("bad multipart form: " + err.Error())
		}
		file, hdr, err := r.FormFile("file")
		if err != nil {
			return nil, model.FieldMapping{}, nil, false, errors.New("missing file: " + err.Error())
		}
		defer file.Close()

		rows, err := fileio.ReadRows(file, hdr.Filename, atoi(r.FormValue("header_row"), 1))
		if err != nil {
			return nil, model.FieldMapping{}, nil, false, errors.New("failed to read file: " + err.Error())
		}
		retags, err := retagsFromJSON(r.FormValue("overrides"))
		if err != nil {
			return nil, model.FieldMapping{}, nil, false, errors.New("bad overrides: " + err.Error())
		}
		return rows, mappingFromForm(r), retags, toBool(r.FormValue("harmonize"), true), nil
	}

	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, model.FieldMapping{}, nil, false, errors.New("bad json body: " + err.Error())
	}
	harmonize := true
	if req.Harmonize != nil {
		harmonize = *req.Harmonize
	}
	return req.Rows, req.Mapping, toRetags(req.Overrides), harmonize, nil
}

// Analyze resolves a batch against the declared mapping and reports per-row
// readiness. Safe to call repeatedly while the user tweaks the mapping.
func Analyze(cfg config.Config, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := reqLogger(logger, r)
		defer r.Body.Close()

		rows, mapping, retags, harmonize, err := parseBatch(r, cfg)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		var groups []model.HeaderGroup
		if harmonize {
			rows, groups = service.Harmonize(rows)
		}
		rep := service.Analyze(rows, mapping, retags)

		writeJSON(w, analyzeResponse{Report: rep, Groups: groups, Mapping: mapping}, log)

		log.Info().
			Int("rows", rep.Total).
			Int("ready", rep.Ready).
			Int("groups", len(groups)).
			Dur("elapsed", time.Since(start)).
			Msg("analyze done")
	}
}

// Confirm validates the mapping gate and returns the import-ready records for
// the persistence collaborator. Unresolved rows are silently skipped; the
// caller is expected to have reviewed them via Analyze first.
func Confirm(cfg config.Config, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := reqLogger(logger, r)
		defer r.Body.Close()

		rows, mapping, retags, harmonize, err := parseBatch(r, cfg)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if !mapping.Submittable() {
			http.Error(w, "name_field and cost_field are required", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(mapping.BrandName) == "" {
			http.Error(w, "brand is required", http.StatusBadRequest)
			return
		}

		if harmonize {
			rows, _ = service.Harmonize(rows)
		}
		recs := service.ImportRecords(rows, mapping, retags)

		writeJSON(w, confirmResponse{Count: len(recs), Records: recs}, log)

		log.Info().
			Int("rows", len(rows)).
			Int("records", len(recs)).
			Dur("elapsed", time.Since(start)).
			Msg("confirm done")
	}
}

package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"pricelist-service/internal/pricelist/model"
)

// mappingFromForm reads the field mapping from form/query values. Fallback
// lists are comma-separated, consulted in the order given.
func mappingFromForm(r *http.Request) model.FieldMapping {
	return model.FieldMapping{
		NameField:     strings.TrimSpace(r.FormValue("name_field")),
		CostField:     strings.TrimSpace(r.FormValue("cost_field")),
		SrpField:      strings.TrimSpace(r.FormValue("srp_field")),
		NameFallbacks: splitList(r.FormValue("name_fallbacks")),
		CostFallbacks: splitList(r.FormValue("cost_fallbacks")),
		SrpFallbacks:  splitList(r.FormValue("srp_fallbacks")),
		BrandName:     strings.TrimSpace(r.FormValue("brand")),
	}
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// retagsFromJSON parses `{"1":{"name":"...","cost":100}}` into a retag table.
// Keys that are not row indices are dropped rather than failing the request.
func retagsFromJSON(s string) (model.Retags, error) {
	out := model.Retags{}
	if strings.TrimSpace(s) == "" {
		return out, nil
	}
	var raw map[string]model.ManualRetag
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return nil, err
	}
	return toRetags(raw), nil
}

func toRetags(raw map[string]model.ManualRetag) model.Retags {
	out := model.Retags{}
	for k, v := range raw {
		idx, err := strconv.Atoi(k)
		if err != nil || idx < 0 {
			continue
		}
		out[idx] = v
	}
	return out
}

func atoi(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func toBool(s string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

func writeJSON(w http.ResponseWriter, v any, log zerolog.Logger) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Error().Err(err).Msg("write json")
	}
}

// reqLogger binds the request id set by the middleware, if any.
func reqLogger(logger zerolog.Logger, r *http.Request) zerolog.Logger {
	if rid := r.Header.Get("X-Request-ID"); rid != "" {
		return logger.With().Str("req_id", rid).Logger()
	}
	return logger
}

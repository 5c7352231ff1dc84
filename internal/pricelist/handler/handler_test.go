package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pricelist-service/internal/config"
)

var testCfg = config.Config{MaxUploadMB: 8}

func postJSON(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h(w, req)
	return w
}

func TestAnalyzeJSON(t *testing.T) {
	h := Analyze(testCfg, zerolog.Nop())

	body := `{
		"rows": [
			{"Desc":"Sony A7C","Net":"24.845"},
			{"Description":"","Dealer Price":"91.199"}
		],
		"mapping": {"nameField":"Desc","costField":"Net"},
		"overrides": {"1": {"name":"Unknown Item"}}
	}`
	w := postJSON(t, h, body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Total  int `json:"total"`
		Ready  int `json:"ready"`
		Groups []struct {
			Canonical string   `json:"canonical"`
			Variants  []string `json:"variants"`
		} `json:"groups"`
		Rows []struct {
			Name     string `json:"name"`
			Cost     int64  `json:"cost"`
			Resolved bool   `json:"resolved"`
		} `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, 2, resp.Ready) // harmonized headers + retag resolve both rows
	require.Len(t, resp.Rows, 2)
	assert.Equal(t, "Sony A7C", resp.Rows[0].Name)
	assert.Equal(t, int64(24845), resp.Rows[0].Cost)
	assert.Equal(t, "Unknown Item", resp.Rows[1].Name)
	assert.Equal(t, int64(91199), resp.Rows[1].Cost)

	// "Description" merged into "Desc", "Dealer Price" into "Net"
	require.Len(t, resp.Groups, 2)
	assert.Equal(t, []string{"Desc", "Description"}, resp.Groups[0].Variants)
	assert.Equal(t, []string{"Net", "Dealer Price"}, resp.Groups[1].Variants)
}

func TestAnalyzeHarmonizeOff(t *testing.T) {
	h := Analyze(testCfg, zerolog.Nop())

	body := `{
		"rows": [{"Description":"X","Net":"100"}],
		"mapping": {"nameField":"Desc","costField":"Net"},
		"harmonize": false
	}`
	w := postJSON(t, h, body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Ready int `json:"ready"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Ready) // "Description" no longer aliases "Desc"
}

func TestAnalyzeBadBody(t *testing.T) {
	h := Analyze(testCfg, zerolog.Nop())
	w := postJSON(t, h, `{"rows": [}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConfirmGates(t *testing.T) {
	h := Confirm(testCfg, zerolog.Nop())

	t.Run("rejects unset primary fields", func(t *testing.T) {
		w := postJSON(t, h, `{"rows":[],"mapping":{"brandName":"Sony"}}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "name_field and cost_field")
	})

	t.Run("rejects blank brand", func(t *testing.T) {
		w := postJSON(t, h, `{"rows":[],"mapping":{"nameField":"Desc","costField":"Net"}}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "brand")
	})

	t.Run("returns import records for ready rows", func(t *testing.T) {
		body := `{
			"rows": [
				{"Desc":"Sony A7C","Net":"24.845"},
				{"Desc":"","Net":"91.199"}
			],
			"mapping": {"nameField":"Desc","costField":"Net","brandName":"Sony"}
		}`
		w := postJSON(t, h, body)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Count   int `json:"count"`
			Records []struct {
				Name      string          `json:"name"`
				Brand     string          `json:"brand"`
				CostPrice int64           `json:"costPrice"`
				RawJSON   json.RawMessage `json:"rawJson"`
			} `json:"records"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, 1, resp.Count)
		assert.Equal(t, "Sony A7C", resp.Records[0].Name)
		assert.Equal(t, "Sony", resp.Records[0].Brand)
		assert.Equal(t, int64(24845), resp.Records[0].CostPrice)
		assert.JSONEq(t, `{"Desc":"Sony A7C","Net":"24.845"}`, string(resp.Records[0].RawJSON))
	})
}

func TestAnalyzeMultipartCSV(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "pricelist.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte("Desc,Net\nSony A7C,24.845\n,91.199\n"))
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("name_field", "Desc"))
	require.NoError(t, mw.WriteField("cost_field", "Net"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	Analyze(testCfg, zerolog.Nop())(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Total int `json:"total"`
		Ready int `json:"ready"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, 1, resp.Ready)
}

func TestHelpers(t *testing.T) {
	t.Run("splitList", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b"}, splitList(" a , b ,"))
		assert.Nil(t, splitList("  "))
	})

	t.Run("retagsFromJSON", func(t *testing.T) {
		rt, err := retagsFromJSON(`{"1":{"name":"X","cost":100},"bad":{"name":"Y"},"-1":{}}`)
		require.NoError(t, err)
		require.Len(t, rt, 1)
		assert.Equal(t, "X", rt[1].Name)
		assert.Equal(t, int64(100), rt[1].Cost)
	})

	t.Run("retagsFromJSON rejects junk", func(t *testing.T) {
		_, err := retagsFromJSON(`[1,2]`)
		assert.Error(t, err)
	})

	t.Run("toBool", func(t *testing.T) {
		assert.True(t, toBool("on", false))
		assert.False(t, toBool("no", true))
		assert.True(t, toBool("", true))
	})
}

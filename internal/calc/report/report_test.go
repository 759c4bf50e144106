package report

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	design "Rockbolt/internal/calc/design"
	rmr "Rockbolt/internal/calc/rmr"
	support "Rockbolt/internal/calc/support"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evaluated(t *testing.T, water rmr.Groundwater) design.Result {
	t.Helper()
	res, err := design.Evaluate(design.Input{
		Name: "north drive",
		Input: rmr.Input{
			Strength:    rmr.Strength25To50,
			RQD:         rmr.RQD25To50,
			Spacing:     rmr.Spacing60To200mm,
			Condition:   rmr.ConditionSlickensided,
			Groundwater: water,
		},
		Geometry: support.Geometry{WidthM: 5, HeightM: 3.5, TunnelLengthM: 100},
	})
	require.NoError(t, err)
	return res
}

func TestWrite(t *testing.T) {
	for _, water := range []rmr.Groundwater{rmr.GroundwaterDry, rmr.GroundwaterFlowing} {
		var buf bytes.Buffer
		err := Write(&buf, Meta{Project: "Test mine", Author: "QA", Notes: "Preliminary sizing only."},
			evaluated(t, water), time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")), "not a PDF")
		assert.Greater(t, buf.Len(), 1000)
	}
}

func TestHandlerGenerate(t *testing.T) {
	body, err := json.Marshal(map[string]any{
		"project": "Test mine",
		"case": map[string]any{
			"strength":        ">250 MPa",
			"rqd":             "90-100%",
			"spacing":         ">2 m",
			"condition":       string(rmr.ConditionVeryRough),
			"groundwater":     "Completely dry",
			"width_m":         5,
			"height_m":        3.5,
			"tunnel_length_m": 100,
		},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/tools/report/pdf", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	(&Handler{}).Generate(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))
}

func TestHandlerGenerateInvalidCase(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/tools/report/pdf",
		bytes.NewBufferString(`{"case":{"strength":"soft"}}`))
	rec := httptest.NewRecorder()
	(&Handler{}).Generate(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown strength")
}

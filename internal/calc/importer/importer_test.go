package importer

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	calc "Rockbolt/internal/calc"
	rmr "Rockbolt/internal/calc/rmr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

var headerRow = []any{"strength", "rqd", "spacing", "condition", "groundwater", "width", "height", "length", "name"}

func TestRead(t *testing.T) {
	buf := workbook(t, [][]any{
		headerRow,
		{">250 MPa", "90-100%", ">2 m", string(rmr.ConditionVeryRough), "Completely dry", 5, 3.5, 100, "portal"},
		{"<1 MPa", "<25%", "<60 mm", string(rmr.ConditionSoftGouge), "Flowing", "4.5", "3", "20"},
		{"50-100 MPa", "50-75%", "200-600 mm", string(rmr.ConditionHighlyWeathered), "Damp", "wide", 3, 10},
		{"50-100 MPa", "50-75%"},
		{"hard", "50-75%", "200-600 mm", string(rmr.ConditionHighlyWeathered), "Damp", 5, 3, 10},
	})

	res, err := Read(buf)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Count)
	require.Len(t, res.Results, 2)
	assert.Equal(t, "portal", res.Results[0].Name)
	assert.Equal(t, rmr.ClassI, res.Results[0].RMR.Class)
	assert.Equal(t, 8, res.Results[1].RMR.Total)
	assert.Equal(t, rmr.ClassV, res.Results[1].RMR.Class)

	require.Len(t, res.Skipped, 3)
	assert.Equal(t, 4, res.Skipped[0].Row)
	assert.Contains(t, res.Skipped[0].Reason, "width")
	assert.Equal(t, 5, res.Skipped[1].Row)
	assert.Equal(t, 6, res.Skipped[2].Row)
	assert.Contains(t, res.Skipped[2].Reason, "strength")
}

func TestReadEmptySheet(t *testing.T) {
	_, err := Read(workbook(t, [][]any{headerRow}))
	assert.True(t, errors.Is(err, calc.ErrInvalidInput))
}

func TestReadNotAWorkbook(t *testing.T) {
	_, err := Read(bytes.NewBufferString("strength,rqd\n"))
	assert.True(t, errors.Is(err, calc.ErrInvalidInput))
}

func TestHandlerImport(t *testing.T) {
	xlsx := workbook(t, [][]any{
		headerRow,
		{"25-50 MPa", "25-50%", "60-200 mm", string(rmr.ConditionSlickensided), "Dripping", 5, 3.5, 100},
	})

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "cases.xlsx")
	require.NoError(t, err)
	_, err = part.Write(xlsx.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/tools/import/xlsx", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	(&Handler{}).Import(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	// 4+8+8+10+4 = 34
	assert.Contains(t, rec.Body.String(), `"total":34`)
	assert.Contains(t, rec.Body.String(), `"class":"IV"`)
}

func TestHandlerImportMissingFile(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/tools/import/xlsx", nil)
	rec := httptest.NewRecorder()
	(&Handler{}).Import(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReadSkipsNonFiniteAndUnitCells(t *testing.T) {
	fair := []any{"50-100 MPa", "50-75%", "200-600 mm", string(rmr.ConditionHighlyWeathered), "Damp"}
	row := func(width, height, length any) []any {
		return append(append([]any{}, fair...), width, height, length)
	}
	buf := workbook(t, [][]any{
		headerRow,
		row("NaN", 3.5, 100),
		row(5, "Inf", 100),
		row(5, 3.5, "-Infinity"),
		row("5 metres", 3.5, 100),
		row(" 5 ", 3.5, 100),
	})

	res, err := Read(buf)
	require.NoError(t, err)

	require.Len(t, res.Skipped, 4)
	assert.Contains(t, res.Skipped[0].Reason, "width")
	assert.Contains(t, res.Skipped[1].Reason, "height")
	assert.Contains(t, res.Skipped[2].Reason, "tunnel length")
	assert.Contains(t, res.Skipped[3].Reason, "width")
	require.Equal(t, 1, res.Count)
	assert.Equal(t, rmr.ClassIII, res.Results[0].RMR.Class)
}

func TestToFloat(t *testing.T) {
	v, err := toFloat(" 4.25 ")
	require.NoError(t, err)
	assert.Equal(t, 4.25, v)

	for _, s := range []string{"", "5 m", "5 metres", "NaN", "nan", "Inf", "+Inf", "-infinity", "1e400"} {
		_, err := toFloat(s)
		assert.Error(t, err, "%q", s)
	}
}

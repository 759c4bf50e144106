package report

import (
	"fmt"
	"io"
	"math"
	"time"

	design "Rockbolt/internal/calc/design"
	layout "Rockbolt/internal/calc/layout"
	"github.com/phpdave11/gofpdf"
)

type Meta struct {
	Project string `json:"project"`
	Author  string `json:"author"`
	Title   string `json:"title"`
	Notes   string `json:"notes"`
}

var classColors = map[string][3]int{
	"green":      {0, 128, 0},
	"lightgreen": {144, 238, 144},
	"yellow":     {255, 255, 0},
	"orange":     {255, 165, 0},
	"red":        {255, 0, 0},
}

const (
	schematicMaxW = 170.0 // mm
	schematicMaxH = 90.0  // mm
	boltHeadR     = 1.2   // mm
)

// Write renders a single-case RMR and support report as PDF.
func Write(w io.Writer, meta Meta, res design.Result, now time.Time) error {
	if meta.Title == "" {
		meta.Title = "Rock Mass Rating Report"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, meta.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", meta.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", meta.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", now.Format("2006-01-02")))
	pdf.Ln(6)
	if res.Name != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Case: %s", res.Name))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	section(pdf, "RMR Calculation Results")
	for _, row := range res.RMR.Rows() {
		tableRow(pdf, []float64{60, 100, 20}, row.Parameter, row.Condition, row.Rating)
	}
	pdf.Ln(4)

	rgb, ok := classColors[res.RMR.Color]
	if !ok {
		rgb = [3]int{255, 255, 255}
	}
	pdf.SetFillColor(rgb[0], rgb[1], rgb[2])
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(180, 9, fmt.Sprintf("Class %s: %s (RMR %d)", res.RMR.Class, res.RMR.Description, res.RMR.Total), "1", 1, "C", true, 0, "")
	pdf.Ln(6)

	section(pdf, "Roof Bolt Support Recommendations")
	for _, row := range res.Support.Rows() {
		tableRow(pdf, []float64{60, 120}, row.Parameter, row.Recommendation)
	}
	pdf.Ln(6)

	section(pdf, fmt.Sprintf("Roof Bolt Pattern - Rock Class %s", res.RMR.Class))
	drawSchematic(pdf, res.Schematic)

	if meta.Notes != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, meta.Notes, "", "L", false)
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 9)
}

func tableRow(pdf *gofpdf.Fpdf, widths []float64, cells ...string) {
	for i, c := range cells {
		pdf.CellFormat(widths[i], 6, c, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}

// drawSchematic draws the excavation outline, bolt heads and, for systematic
// bolting, a vertical line for each bolt's drawn depth.
func drawSchematic(pdf *gofpdf.Fpdf, s layout.Schematic) {
	extent := s.HeightM
	for _, b := range s.Bolts {
		extent = math.Max(extent, b.Y+s.DrawnDepthM)
	}
	scale := math.Min(schematicMaxW/s.WidthM, schematicMaxH/extent)

	left, _, _, bottom := pdf.GetMargins()
	pageW, pageH := pdf.GetPageSize()
	if pdf.GetY()+extent*scale > pageH-bottom {
		pdf.AddPage()
	}
	x0 := left + (pageW-2*left-s.WidthM*scale)/2
	y0 := pdf.GetY()

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.8)
	pdf.Rect(x0, y0, s.WidthM*scale, s.HeightM*scale, "D")

	pdf.SetDrawColor(0, 0, 255)
	pdf.SetFillColor(0, 0, 255)
	pdf.SetLineWidth(0.4)
	for _, b := range s.Bolts {
		px := x0 + b.X*scale
		py := y0 + b.Y*scale
		if s.DrawnDepthM > 0 {
			pdf.Line(px, py, px, py+s.DrawnDepthM*scale)
		}
		pdf.Circle(px, py, boltHeadR, "FD")
	}
	pdf.SetY(y0 + extent*scale + 4)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.Cell(0, 5, "Black rectangle: excavation profile. Blue circles: bolt heads. Blue lines: approximate bolt length.")
	pdf.Ln(6)
}

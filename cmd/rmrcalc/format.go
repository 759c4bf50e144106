package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	layout "Rockbolt/internal/calc/layout"
	rmr "Rockbolt/internal/calc/rmr"
	support "Rockbolt/internal/calc/support"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func addFormatFlag(cmd *cobra.Command, format *string) {
	cmd.Flags().StringVarP(format, "output", "o", "text", "output format: text, json or yaml")
}

func render(w io.Writer, format string, v any, text func(p *printer)) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		// Round-trip through JSON so YAML keys follow the json tags.
		raw, err := json.Marshal(v)
		if err != nil {
			return err
		}
		var doc any
		if err := json.Unmarshal(raw, &doc); err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		p := &printer{w: w}
		text(p)
		return p.err
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) table(rows [][2]string) {
	width := 0
	for _, r := range rows {
		width = max(width, len(r[0]))
	}
	for _, r := range rows {
		p.line("  %-*s  %s", width, r[0], r[1])
	}
}

func (p *printer) printRMR(res rmr.Result) {
	p.line("RMR Calculation Results")
	rows := make([][2]string, 0, 7)
	for _, r := range res.Rows() {
		val := r.Condition
		if r.Rating != "" {
			if val != "" {
				val += " "
			}
			val += "(" + r.Rating + ")"
		}
		rows = append(rows, [2]string{r.Parameter, val})
	}
	p.table(rows)
}

func (p *printer) printSupport(res support.Result) {
	p.line("Roof Bolt Support Recommendations - Class %s", res.Class)
	rows := make([][2]string, 0, 11)
	for _, r := range res.Rows() {
		rows = append(rows, [2]string{r.Parameter, r.Recommendation})
	}
	p.table(rows)
}

func (p *printer) printSchematic(s layout.Schematic) {
	p.line("Bolt Pattern - %d bolts in a %.1f x %.1f m section", len(s.Bolts), s.WidthM, s.HeightM)
	for _, b := range s.Bolts {
		p.line("  (%.2f, %.2f)", b.X, b.Y)
	}
}

func (p *printer) printOptions(o rmr.Options) {
	groups := []struct {
		name string
		opts []rmr.Option
	}{
		{"strength", o.Strength},
		{"rqd", o.RQD},
		{"spacing", o.Spacing},
		{"condition", o.Condition},
		{"water", o.Groundwater},
	}
	for _, g := range groups {
		p.line("--%s", g.name)
		for _, opt := range g.opts {
			p.line("  %-60s %s", strings.TrimSpace(opt.Label), fmt.Sprintf("%d points", opt.Points))
		}
	}
}

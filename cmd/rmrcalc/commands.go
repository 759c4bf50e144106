package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	design "Rockbolt/internal/calc/design"
	rmr "Rockbolt/internal/calc/rmr"
	support "Rockbolt/internal/calc/support"
	"Rockbolt/internal/config"
	"Rockbolt/internal/logging"
	"Rockbolt/internal/server"
	"github.com/spf13/cobra"
)

// Defaults match the input form: a 5 x 3.5 m drive, 100 m long, in
// middling rock.
func addRockFlags(cmd *cobra.Command, in *rmr.Input) {
	f := cmd.Flags()
	f.StringVar((*string)(&in.Strength), "strength", string(rmr.Strength50To100), "A1 intact rock strength")
	f.StringVar((*string)(&in.RQD), "rqd", string(rmr.RQD50To75), "A2 rock quality designation")
	f.StringVar((*string)(&in.Spacing), "spacing", string(rmr.Spacing200To600mm), "A3 spacing of discontinuities")
	f.StringVar((*string)(&in.Condition), "condition", string(rmr.ConditionHighlyWeathered), "A4 condition of discontinuities")
	f.StringVar((*string)(&in.Groundwater), "water", string(rmr.GroundwaterDamp), "A5 groundwater condition")
}

func addGeometryFlags(cmd *cobra.Command, g *support.Geometry) {
	f := cmd.Flags()
	f.Float64Var(&g.WidthM, "width", 5.0, "excavation width (m)")
	f.Float64Var(&g.HeightM, "height", 3.5, "excavation height (m)")
	f.Float64Var(&g.TunnelLengthM, "length", 100.0, "tunnel length (m)")
}

func scoreCmd() *cobra.Command {
	var in rmr.Input
	var format string
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Rate the rock mass and print its class",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := rmr.Score(in)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), format, res, func(p *printer) {
				p.printRMR(res)
			})
		},
	}
	addRockFlags(cmd, &in)
	addFormatFlag(cmd, &format)
	return cmd
}

func planCmd() *cobra.Command {
	var class string
	var g support.Geometry
	var format string
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Size roof bolting for a rock class",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := support.Plan(rmr.Class(class), g)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), format, res, func(p *printer) {
				p.printSupport(res)
			})
		},
	}
	cmd.Flags().StringVar(&class, "class", string(rmr.ClassIII), "rock class (I-V)")
	addGeometryFlags(cmd, &g)
	addFormatFlag(cmd, &format)
	return cmd
}

func evaluateCmd() *cobra.Command {
	var in design.Input
	var format string
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Score, plan and lay out bolts in one pass",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := design.Evaluate(in)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), format, res, func(p *printer) {
				p.printRMR(res.RMR)
				p.line("")
				p.printSupport(res.Support)
				p.line("")
				p.printSchematic(res.Schematic)
			})
		},
	}
	addRockFlags(cmd, &in.Input)
	addGeometryFlags(cmd, &in.Geometry)
	cmd.Flags().BoolVar(&in.Strict, "strict", true, "reject geometry outside 1-30 m sections and 1-1000 m length")
	addFormatFlag(cmd, &format)
	return cmd
}

func optionsCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "options",
		Short: "List the accepted values of every parameter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := rmr.AllOptions()
			return render(cmd.OutOrStdout(), format, opts, func(p *printer) {
				p.printOptions(opts)
			})
		},
	}
	addFormatFlag(cmd, &format)
	return cmd
}

func serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, _ := config.Load()
			if addr != "" {
				cfg.Addr = addr
			}
			logger, err := logging.New(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer logger.Sync()

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			return server.Run(ctx, cfg, logger)
		},
	}
	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address (overrides ADDR)")
	return cmd
}

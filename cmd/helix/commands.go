package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/helix/internal/config"
	"github.com/san-kum/helix/internal/export"
	"github.com/san-kum/helix/internal/helix"
	"github.com/san-kum/helix/internal/storage"
	"github.com/san-kum/helix/internal/viz"
)

func newSnapshotCmd() *cobra.Command {
	var (
		overrides map[string]string
		rotation  float64
	)
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "build the helix and store params and geometry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			p, err := applyOverrides(cfg, overrides)
			if err != nil {
				return err
			}

			st := storage.New(dataDir, logger)
			if err := st.Init(); err != nil {
				return err
			}
			id, err := st.Save(p, rotation)
			if err != nil {
				return err
			}
			logger.Info("snapshot stored", zap.String("id", id))
			fmt.Printf("snapshot id: %s\n", id)
			fmt.Printf("primitives: %d\n", helix.Build(p).Len())
			return nil
		},
	}
	cmd.Flags().StringToStringVar(&overrides, "set", nil, "parameter overrides, e.g. --set radius=3,segments=80")
	cmd.Flags().Float64Var(&rotation, "rotation", 0, "rotation angle stored with the snapshot (radians)")
	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list snapshots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snaps, err := storage.New(dataDir, logger).List()
			if err != nil {
				return err
			}
			if len(snaps) == 0 {
				fmt.Println("no snapshots found")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTIME\tSEGMENTS\tRADIUS\tHEIGHT\tSPEED\tPRIMITIVES")
			for _, s := range snaps {
				fmt.Fprintf(w, "%s\t%s\t%d\t%.2f\t%.2f\t%.2f\t%d\n",
					s.ID,
					s.Timestamp.Format("2006-01-02 15:04:05"),
					s.Params.SegmentCount,
					s.Params.HelixRadius,
					s.Params.HelixHeight,
					s.Params.RotationSpeed,
					s.Primitives,
				)
			}
			return w.Flush()
		},
	}
}

func newPlotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plot [snapshot_id]",
		Short: "plot strand x offsets by segment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := storage.New(dataDir, logger)
			meta, err := st.Load(args[0])
			if err != nil {
				return err
			}
			rows, err := st.LoadGeometry(args[0])
			if err != nil {
				return err
			}

			var a, b []float64
			for _, r := range rows {
				x := helix.RotateY(vec3(r.Position), meta.Rotation).X
				switch r.Kind {
				case "strand_A":
					a = append(a, x)
				case "strand_B":
					b = append(b, x)
				}
			}
			if len(a) == 0 {
				return fmt.Errorf("no data to plot")
			}

			fmt.Printf("snapshot: %s\n", meta.ID)
			fmt.Printf("segments: %d\n\n", len(a))
			fmt.Println(asciigraph.PlotMany([][]float64{a, b},
				asciigraph.Height(12),
				asciigraph.Width(80),
				asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Red),
				asciigraph.Caption("strand A / strand B x offset by segment"),
			))
			return nil
		},
	}
}

func newExportSVGCmd() *cobra.Command {
	var (
		out           string
		mode          string
		width, height int
	)
	cmd := &cobra.Command{
		Use:   "export-svg [snapshot_id]",
		Short: "render a snapshot (or the current config) to SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				p        helix.Params
				rotation float64
			)
			if len(args) == 1 {
				meta, err := storage.New(dataDir, logger).Load(args[0])
				if err != nil {
					return err
				}
				p, rotation = meta.Params, meta.Rotation
			} else {
				cfg, err := loadConfig()
				if err != nil {
					return err
				}
				p = cfg.Params
			}

			var svg string
			switch mode {
			case "side":
				svg = export.SideView(p, rotation, width, height)
			case "braille":
				svg = export.CanvasToSVG(viz.Snapshot(p, rotation, width/8, height/16), 4)
			default:
				return fmt.Errorf("unknown mode: %s (side, braille)", mode)
			}
			if out == "" {
				fmt.Println(svg)
				return nil
			}
			if err := os.WriteFile(out, []byte(svg), 0644); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&mode, "mode", "side", "side or braille")
	cmd.Flags().IntVar(&width, "width", 640, "image width")
	cmd.Flags().IntVar(&height, "height", 800, "image height")
	return cmd
}

func newExportCSVCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export-csv [snapshot_id]",
		Short: "export snapshot geometry to CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := storage.New(dataDir, logger)
			meta, err := st.Load(args[0])
			if err != nil {
				return err
			}
			w := os.Stdout
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			if err := storage.WriteGeometryCSV(w, helix.Build(meta.Params)); err != nil {
				return err
			}
			if out != "" {
				fmt.Printf("wrote %s\n", out)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tNAME\tSEGMENTS\tRADIUS\tHEIGHT\tSPEED")
			for i, name := range config.ListPresets() {
				p, _ := config.GetPreset(name)
				fmt.Fprintf(w, "%d\t%s\t%d\t%.2f\t%.2f\t%.2f\n",
					i+1, name, p.SegmentCount, p.HelixRadius, p.HelixHeight, p.RotationSpeed)
			}
			return w.Flush()
		},
	}
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "write the default config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); err == nil {
				return fmt.Errorf("%s already exists", args[0])
			}
			if err := config.Save(args[0], config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "check [path]",
		Short: "validate a config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := config.Load(args[0]); err != nil {
				return err
			}
			fmt.Println("ok")
			return nil
		},
	})
	return cmd
}

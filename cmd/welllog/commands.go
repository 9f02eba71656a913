package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tsawler/welllog"
	"github.com/tsawler/welllog/petro"
	"github.com/tsawler/welllog/writer"
)

var (
	stylePath string
	outPath   string

	flagDelimiter  string
	flagPrecision  int
	flagLineEnding string

	petroFlags = struct {
		density, resistivity            string
		matrix, fluid, m, n, rw, cutoff float64
	}{}
)

var rootCmd = &cobra.Command{
	Use:           "welllog",
	Short:         "Inspect and edit LAS well-log files",
	SilenceUsage:  true,
	SilenceErrors: false,
}

var infoCmd = &cobra.Command{
	Use:   "info <file.las>",
	Short: "Show the document's format settings and dimensions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := welllog.ParseFile(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("version:    %s\n", doc.Version)
		fmt.Printf("wrap:       %s\n", doc.Wrap)
		fmt.Printf("delimiter:  %s\n", doc.Delimiter)
		if doc.HasNull {
			fmt.Printf("null:       %v\n", doc.NullValue)
		} else {
			fmt.Printf("null:       (unresolved)\n")
		}
		fmt.Printf("curves:     %d\n", len(doc.Curves))
		fmt.Printf("rows:       %d\n", doc.RowCount())
		return nil
	},
}

var curvesCmd = &cobra.Command{
	Use:   "curves <file.las>",
	Short: "List curve mnemonics, units, and sample counts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := welllog.ParseFile(args[0])
		if err != nil {
			return err
		}
		for _, c := range welllog.NewSession(doc).Curves() {
			fmt.Printf("%-10s %-10s %d\n", c.Mnemonic, c.Unit, c.Samples)
		}
		return nil
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert <file.las>",
	Short: "Re-serialize a file with new delimiter, precision, or line ending",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return edit(args[0], func(s *welllog.Session) error { return nil })
	},
}

var renameCmd = &cobra.Command{
	Use:   "rename <file.las> <old> <new>",
	Short: "Rename a curve",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return edit(args[0], func(s *welllog.Session) error {
			return s.Rename(args[1], args[2])
		})
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <file.las> <mnemonic>",
	Short: "Delete a curve and its data column",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return edit(args[0], func(s *welllog.Session) error {
			return s.Delete(args[1])
		})
	},
}

var deriveCmd = &cobra.Command{
	Use:   "derive <file.las> <source> <destination> <op>",
	Short: "Derive a curve elementwise, e.g. welllog derive run.las GR GR_X2 '*2'",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		return edit(args[0], func(s *welllog.Session) error {
			outcome, err := s.Derive(args[1], args[2], args[3])
			if err != nil {
				return err
			}
			slog.Debug("derived curve", "destination", args[2], "outcome", outcome.String())
			return nil
		})
	},
}

var petroCmd = &cobra.Command{
	Use:   "petro <file.las>",
	Short: "Compute density porosity and Archie water saturation curves",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := petro.Params{
			MatrixDensity:    petroFlags.matrix,
			FluidDensity:     petroFlags.fluid,
			CementationExp:   petroFlags.m,
			SaturationExp:    petroFlags.n,
			WaterResistivity: petroFlags.rw,
			Cutoff:           petroFlags.cutoff,
		}
		return edit(args[0], func(s *welllog.Session) error {
			return s.ComputePetro(petroFlags.density, petroFlags.resistivity, p)
		})
	},
}

// edit loads the file, applies the mutation, and writes the result to the
// output path (or back over the input).
func edit(path string, mutate func(*welllog.Session) error) error {
	style, err := loadStyle(stylePath)
	if err != nil {
		return err
	}
	opts, err := style.writerOptions()
	if err != nil {
		return err
	}
	applyFlagOverrides(&opts)

	doc, err := welllog.ParseFile(path)
	if err != nil {
		return err
	}
	slog.Debug("loaded document", "path", path, "curves", len(doc.Curves), "rows", doc.RowCount())

	s := welllog.NewSession(doc, style.Protected...)
	if err := mutate(s); err != nil {
		return err
	}

	dest := outPath
	if dest == "" {
		dest = path
	}
	if err := writer.WriteFile(doc, dest, opts); err != nil {
		return err
	}
	slog.Debug("wrote document", "path", dest)
	return nil
}

// applyFlagOverrides layers the command-line formatting flags over the
// style file.
func applyFlagOverrides(opts *writer.Options) {
	if flagDelimiter != "" {
		if o, err := (Style{Delimiter: flagDelimiter}).writerOptions(); err == nil && o.HasDelimiter {
			opts.Delimiter, opts.HasDelimiter = o.Delimiter, true
		}
	}
	if flagPrecision >= 0 {
		opts.Precision = flagPrecision
	}
	if flagLineEnding != "" {
		if o, err := (Style{LineEnding: flagLineEnding}).writerOptions(); err == nil && o.LineEnding != "" {
			opts.LineEnding = o.LineEnding
		}
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&stylePath, "style", "", "YAML style file (export options, protected curves)")
	rootCmd.PersistentFlags().StringVarP(&outPath, "out", "o", "", "output path (default: overwrite input)")
	rootCmd.PersistentFlags().StringVar(&flagDelimiter, "delimiter", "", "output delimiter: space, tab, or comma")
	rootCmd.PersistentFlags().IntVar(&flagPrecision, "precision", -1, "fixed decimal places for data cells")
	rootCmd.PersistentFlags().StringVar(&flagLineEnding, "line-ending", "", "output line ending: lf or crlf")

	petroCmd.Flags().StringVar(&petroFlags.density, "density", "RHOB", "density curve mnemonic")
	petroCmd.Flags().StringVar(&petroFlags.resistivity, "resistivity", "RT", "resistivity curve mnemonic")
	petroCmd.Flags().Float64Var(&petroFlags.matrix, "matrix-density", 2.65, "matrix density (g/cc)")
	petroCmd.Flags().Float64Var(&petroFlags.fluid, "fluid-density", 1.0, "fluid density (g/cc)")
	petroCmd.Flags().Float64Var(&petroFlags.m, "cementation-exp", 2.0, "Archie cementation exponent")
	petroCmd.Flags().Float64Var(&petroFlags.n, "saturation-exp", 2.0, "Archie saturation exponent")
	petroCmd.Flags().Float64Var(&petroFlags.rw, "rw", 0.03, "formation-water resistivity (ohm·m)")
	petroCmd.Flags().Float64Var(&petroFlags.cutoff, "cutoff", 1.0, "porosity cutoff (percent)")

	rootCmd.AddCommand(infoCmd, curvesCmd, convertCmd, renameCmd, deleteCmd, deriveCmd, petroCmd)
}

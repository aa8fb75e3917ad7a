package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/curvelab/lsys/internal/render"
)

// DrawOptions holds flags for the draw command.
type DrawOptions struct {
	*RootOptions
	Curve       CurveOptions
	Out         string
	StrokeWidth float64
}

// NewDrawCommand creates the draw command.
func NewDrawCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DrawOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "draw [curve-file]",
		Short: "Render a curve as SVG",
		Long: `Expand a curve definition, interpret it as turtle graphics and write
the resulting polylines as an SVG document.

The curve comes from a CUE file or directory (positional argument, with
--name when it defines several curves), from the catalog (--db with
--name), or from inline flags (--axiom, --rules, ...).

Example:
  lsys draw curves.cue --name koch -o koch.svg
  lsys draw --axiom F --rules "F:F+F-F-F+F" -n 4 -o koch.svg
  lsys draw --db catalog.db --name dragon -o dragon.svg`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDraw(opts, args, cmd)
		},
	}

	addCurveFlags(cmd, &opts.Curve)
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "output SVG path (default stdout)")
	cmd.Flags().Float64Var(&opts.StrokeWidth, "stroke-width", 1, "polyline stroke width")

	return cmd
}

func runDraw(opts *DrawOptions, args []string, cmd *cobra.Command) (err error) {
	def, err := opts.Curve.resolveDefinition(cmd.Context(), args)
	if err != nil {
		return err
	}

	dev, drawing, err := buildDrawing(def)
	if err != nil {
		return err
	}

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
	formatter.VerboseLog("curve %q: %d symbols, %d path(s), %dD",
		def.Name, len(dev), len(drawing.Paths), drawing.Dimension)

	out := cmd.OutOrStdout()
	if opts.Out != "" {
		f, err := os.Create(opts.Out)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to create output file", err)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = closeErr
			}
		}()
		out = f
	}

	svg := &render.SVGRenderer{W: out, StrokeWidth: opts.StrokeWidth}
	if err := svg.Render(drawing); err != nil {
		return WrapExitError(ExitCommandError, "failed to write SVG", err)
	}

	if opts.Out != "" {
		formatter.VerboseLog("wrote %s", opts.Out)
		if opts.Format == "json" {
			return formatter.Success(map[string]any{
				"out":       opts.Out,
				"paths":     len(drawing.Paths),
				"dimension": drawing.Dimension,
			})
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d paths)\n", opts.Out, len(drawing.Paths))
	}
	return nil
}

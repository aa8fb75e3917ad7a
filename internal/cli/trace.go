package cli

import (
	"github.com/spf13/cobra"

	"github.com/curvelab/lsys/internal/render"
)

// TraceOptions holds flags for the trace command.
type TraceOptions struct {
	*RootOptions
	Curve CurveOptions
}

// NewTraceCommand creates the trace command.
func NewTraceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TraceOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "trace [curve-file]",
		Short: "Print the canonical path trace of a curve",
		Long: `Expand and interpret a curve, then print its canonical JSON trace:
the emitted paths with colors and 6-decimal coordinates, plus the
drawing dimension. The trace is byte-reproducible for a given curve,
which makes it suitable for diffing and golden-file comparison.

Example:
  lsys trace --axiom "F+F+F+F"
  lsys trace curves.cue --name koch`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(opts, args, cmd)
		},
	}

	addCurveFlags(cmd, &opts.Curve)

	return cmd
}

func runTrace(opts *TraceOptions, args []string, cmd *cobra.Command) error {
	def, err := opts.Curve.resolveDefinition(cmd.Context(), args)
	if err != nil {
		return err
	}

	_, drawing, err := buildDrawing(def)
	if err != nil {
		return err
	}

	tr := &render.TraceRenderer{W: cmd.OutOrStdout()}
	if err := tr.Render(drawing); err != nil {
		return WrapExitError(ExitCommandError, "failed to write trace", err)
	}
	return nil
}

package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/curvelab/lsys/internal/alphabet"
	"github.com/curvelab/lsys/internal/preset"
	"github.com/curvelab/lsys/internal/rewrite"
	"github.com/curvelab/lsys/internal/store"
	"github.com/curvelab/lsys/internal/turtle"
)

// CurveOptions is the flag bundle for commands that need a full curve
// definition. A definition comes from exactly one source: a CUE file or
// directory (positional argument, optionally narrowed by --name), the
// catalog (--db with --name), or inline flags (--axiom and friends).
type CurveOptions struct {
	Database string
	Name     string

	Axiom      string
	Rules      string
	Iterations int
	Repeat     int
	Skipped    string

	Step     float64
	Angle    float64
	Angle2   float64
	Start    float64
	Coeff    float64
	Delta    float64
	Colors   int
	Colormap string
}

// addCurveFlags registers the shared curve flags on a command.
func addCurveFlags(cmd *cobra.Command, opts *CurveOptions) {
	cmd.Flags().StringVar(&opts.Database, "db", "", "path to catalog database")
	cmd.Flags().StringVar(&opts.Name, "name", "", "curve name (in file or catalog)")

	cmd.Flags().StringVar(&opts.Axiom, "axiom", "", "axiom string")
	cmd.Flags().StringVar(&opts.Rules, "rules", "", `rules as "pattern:replacement; ..."`)
	cmd.Flags().IntVarP(&opts.Iterations, "iterations", "n", 0, "number of rewrite generations")
	cmd.Flags().IntVar(&opts.Repeat, "repeat", 1, "repeat the axiom this many times")
	cmd.Flags().StringVar(&opts.Skipped, "skipped", "", "extra symbols to skip")

	cmd.Flags().Float64Var(&opts.Step, "step", 0, "step length (default 10)")
	cmd.Flags().Float64Var(&opts.Angle, "angle", 0, "primary rotation angle in degrees (default 90)")
	cmd.Flags().Float64Var(&opts.Angle2, "angle2", 0, "secondary rotation angle in degrees (default 10)")
	cmd.Flags().Float64Var(&opts.Start, "start", 0, "starting heading in degrees")
	cmd.Flags().Float64Var(&opts.Coeff, "coeff", 0, "step scale coefficient (default 1.1)")
	cmd.Flags().Float64Var(&opts.Delta, "delta", 0, "step delta increment (default 0.1)")
	cmd.Flags().IntVar(&opts.Colors, "colors", 0, "number of colors cycled (default 3)")
	cmd.Flags().StringVar(&opts.Colormap, "colormap", "", "colormap name (default Set1)")
}

// resolveDefinition produces the curve definition from the configured
// source. args carries the positional CUE path if any.
func (opts *CurveOptions) resolveDefinition(ctx context.Context, args []string) (preset.Definition, error) {
	switch {
	case len(args) > 0:
		return opts.fromFile(args[0])
	case opts.Database != "":
		return opts.fromCatalog(ctx)
	case opts.Axiom != "":
		return opts.fromFlags()
	default:
		return preset.Definition{}, NewExitError(ExitCommandError,
			"no curve source: pass a CUE file, --db with --name, or --axiom")
	}
}

// fromFile loads a definition from a CUE file or directory.
// With multiple curves in scope, --name selects one; a lone curve needs
// no --name.
func (opts *CurveOptions) fromFile(path string) (preset.Definition, error) {
	result, errs := LoadCurves(path)
	if result == nil {
		return preset.Definition{}, WrapExitError(ExitCommandError, "failed to load curves", errs[0])
	}
	if len(errs) > 0 {
		return preset.Definition{}, WrapExitError(ExitCommandError, "failed to load curves", errs[0])
	}

	if opts.Name != "" {
		for _, def := range result.Curves {
			if def.Name == opts.Name {
				return def, nil
			}
		}
		names := make([]string, len(result.Curves))
		for i, def := range result.Curves {
			names[i] = def.Name
		}
		return preset.Definition{}, NewExitError(ExitCommandError,
			fmt.Sprintf("curve %q not found in %s (available: %s)", opts.Name, path, strings.Join(names, ", ")))
	}

	if len(result.Curves) != 1 {
		return preset.Definition{}, NewExitError(ExitCommandError,
			fmt.Sprintf("%s defines %d curves; select one with --name", path, len(result.Curves)))
	}
	return result.Curves[0], nil
}

// fromCatalog loads a definition from the catalog database.
func (opts *CurveOptions) fromCatalog(ctx context.Context) (preset.Definition, error) {
	if opts.Name == "" {
		return preset.Definition{}, NewExitError(ExitCommandError, "--db requires --name")
	}
	st, err := store.Open(opts.Database)
	if err != nil {
		return preset.Definition{}, WrapExitError(ExitCommandError, "failed to open catalog", err)
	}
	defer st.Close()

	rec, err := st.GetCurve(ctx, opts.Name)
	if err != nil {
		return preset.Definition{}, WrapExitError(ExitCommandError, "failed to read catalog", err)
	}
	return rec.Definition, nil
}

// fromFlags builds a definition from the inline flags.
func (opts *CurveOptions) fromFlags() (preset.Definition, error) {
	rules, err := preset.ParseRules(preset.Normalize(opts.Rules))
	if err != nil {
		return preset.Definition{}, WrapExitError(ExitCommandError, "invalid rules", err)
	}

	name := opts.Name
	if name == "" {
		name = "inline"
	}

	def := preset.Definition{
		Name:       name,
		Axiom:      opts.Axiom,
		Repeat:     opts.Repeat,
		Rules:      rules,
		Iterations: opts.Iterations,
		Skipped:    opts.Skipped,
		Turtle: preset.Turtle{
			Step:     opts.Step,
			Angle:    opts.Angle,
			Angle2:   opts.Angle2,
			Start:    opts.Start,
			Coeff:    opts.Coeff,
			Delta:    opts.Delta,
			Colors:   opts.Colors,
			Colormap: opts.Colormap,
		},
	}
	return def.Normalized(), nil
}

// buildDrawing runs the full pipeline for a definition: validate, expand,
// interpret. Returns the development string alongside the drawing.
func buildDrawing(def preset.Definition) (string, turtle.Drawing, error) {
	if errs := preset.Validate(def); len(errs) > 0 {
		details := make([]string, len(errs))
		for i, e := range errs {
			details[i] = e.Error()
		}
		return "", turtle.Drawing{}, NewExitError(ExitFailure,
			fmt.Sprintf("invalid curve %q:\n  %s", def.Name, strings.Join(details, "\n  ")))
	}

	dev, err := rewrite.Develop(def.DevelopedAxiom(), def.Rules, def.Iterations)
	if err != nil {
		return "", turtle.Drawing{}, WrapExitError(ExitFailure, "rewriting failed", err)
	}

	cfg := alphabet.DefaultConfig()
	cfg.Skipped = def.Skipped
	class, err := alphabet.New(cfg)
	if err != nil {
		return "", turtle.Drawing{}, WrapExitError(ExitFailure, "invalid alphabet", err)
	}

	params, err := def.Params()
	if err != nil {
		return "", turtle.Drawing{}, WrapExitError(ExitFailure, "invalid turtle parameters", err)
	}

	drawing, err := turtle.New(class).Interpret(dev, params)
	if err != nil {
		return "", turtle.Drawing{}, WrapExitError(ExitFailure, "interpretation failed", err)
	}
	return dev, drawing, nil
}

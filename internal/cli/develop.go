package cli

import (
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/curvelab/lsys/internal/preset"
	"github.com/curvelab/lsys/internal/rewrite"
)

// DevelopOptions holds flags for the develop command.
type DevelopOptions struct {
	*RootOptions
	Rules      string
	Iterations int
	Repeat     int
}

// DevelopResult is the develop command's JSON payload.
type DevelopResult struct {
	Development string `json:"development"`
	Length      int    `json:"length"`
	Iterations  int    `json:"iterations"`
}

// NewDevelopCommand creates the develop command.
func NewDevelopCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DevelopOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "develop <axiom>",
		Short: "Expand an axiom under rewrite rules",
		Long: `Expand an axiom under substitution rules for a number of generations
and print the resulting symbol string.

Rules use the compact syntax "pattern:replacement; pattern:replacement".
Within one generation the leftmost match across all rules fires first,
with ties broken by rule order.

Example:
  lsys develop F --rules "F:F+F-F-F+F" -n 3
  lsys develop A --rules "A:AB; B:BB" -n 2`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDevelop(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Rules, "rules", "", `rules as "pattern:replacement; ..."`)
	cmd.Flags().IntVarP(&opts.Iterations, "iterations", "n", 1, "number of rewrite generations")
	cmd.Flags().IntVar(&opts.Repeat, "repeat", 1, "repeat the axiom this many times")

	return cmd
}

func runDevelop(opts *DevelopOptions, axiom string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	rules, err := preset.ParseRules(preset.Normalize(opts.Rules))
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid rules", err)
	}

	def := preset.Definition{
		Name:       "develop",
		Axiom:      axiom,
		Repeat:     opts.Repeat,
		Rules:      rules,
		Iterations: opts.Iterations,
	}.Normalized()

	dev, err := rewrite.Develop(def.DevelopedAxiom(), def.Rules, def.Iterations)
	if err != nil {
		return WrapExitError(ExitFailure, "rewriting failed", err)
	}

	formatter.VerboseLog("%d rule(s), %d generation(s), %d symbols",
		len(rules), opts.Iterations, utf8.RuneCountInString(dev))

	if opts.Format == "json" {
		return formatter.Success(DevelopResult{
			Development: dev,
			Length:      utf8.RuneCountInString(dev),
			Iterations:  opts.Iterations,
		})
	}
	return formatter.Success(dev)
}

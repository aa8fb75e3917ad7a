package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/curvelab/lsys/internal/preset"
)

// ValidationResult holds validation results for the JSON output.
type ValidationResult struct {
	Valid  bool                     `json:"valid"`
	Curves int                      `json:"curves"`
	Errors []preset.ValidationError `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <curve-file>",
		Short: "Validate curve definitions",
		Long: `Validate the curve definitions in a CUE file or directory without
drawing anything.

Checks that every curve has a non-empty axiom, non-negative iterations,
non-empty rule patterns and a known colormap. All violations are
reported, each with a stable error code.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	result, loadErrors := LoadCurves(path)
	if result == nil {
		var loadErr *LoadError
		if errors.As(loadErrors[0], &loadErr) {
			formatter.Failure(loadErr.Code, loadErr.Message, nil)
		} else {
			formatter.Failure(ErrCodeParse, loadErrors[0].Error(), nil)
		}
		return NewExitError(ExitCommandError, "validation could not run")
	}

	formatter.VerboseLog("loaded %d curve(s) from %d file(s)", len(result.Curves), result.FileCount)

	var validationErrors []preset.ValidationError
	for _, def := range result.Curves {
		for _, verr := range preset.Validate(def) {
			verr.Field = def.Name + "." + verr.Field
			validationErrors = append(validationErrors, verr)
		}
	}
	// Surface load errors (bad CUE, undecodable curves) alongside schema
	// violations so one run reports everything.
	for _, err := range loadErrors {
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			validationErrors = append(validationErrors, preset.ValidationError{
				Field:   "load",
				Message: loadErr.Message,
				Code:    loadErr.Code,
			})
		}
	}

	if len(validationErrors) > 0 {
		if opts.Format == "json" {
			formatter.Success(ValidationResult{
				Valid:  false,
				Curves: len(result.Curves),
				Errors: validationErrors,
			})
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Invalid: %d error(s)\n", len(validationErrors))
			for _, verr := range validationErrors {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", verr.Error())
			}
		}
		return NewExitError(ExitFailure, fmt.Sprintf("%d validation error(s)", len(validationErrors)))
	}

	if opts.Format == "json" {
		return formatter.Success(ValidationResult{Valid: true, Curves: len(result.Curves)})
	}
	return formatter.Success(fmt.Sprintf("Valid: %d curve(s)", len(result.Curves)))
}

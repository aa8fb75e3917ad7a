package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/curvelab/lsys/internal/preset"
	"github.com/curvelab/lsys/internal/store"
)

// CatalogOptions holds flags shared by the catalog subcommands.
type CatalogOptions struct {
	*RootOptions
	Database string
}

// NewCatalogCommand creates the catalog command and its subcommands.
func NewCatalogCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CatalogOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the curve catalog",
		Long: `Manage the SQLite catalog of named curve definitions.

The catalog stores definitions only - axiom, rules, iterations, turtle
parameters - never generated paths, so every draw stays reproducible
from its definition.`,
	}

	cmd.PersistentFlags().StringVar(&opts.Database, "db", "", "path to catalog database (required)")
	_ = cmd.MarkPersistentFlagRequired("db")

	cmd.AddCommand(newCatalogSaveCommand(opts))
	cmd.AddCommand(newCatalogListCommand(opts))
	cmd.AddCommand(newCatalogShowCommand(opts))
	cmd.AddCommand(newCatalogDeleteCommand(opts))

	return cmd
}

func newCatalogSaveCommand(opts *CatalogOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "save <curve-file>",
		Short: "Save curve definitions to the catalog",
		Long: `Load curve definitions from a CUE file or directory, validate them,
and save each into the catalog. Saving an existing name replaces the
stored definition.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalogSave(opts, args[0], cmd)
		},
	}
}

func runCatalogSave(opts *CatalogOptions, path string, cmd *cobra.Command) error {
	result, loadErrors := LoadCurves(path)
	if result == nil {
		return WrapExitError(ExitCommandError, "failed to load curves", loadErrors[0])
	}
	if len(loadErrors) > 0 {
		return WrapExitError(ExitCommandError, "failed to load curves", loadErrors[0])
	}

	for _, def := range result.Curves {
		if errs := preset.Validate(def); len(errs) > 0 {
			return NewExitError(ExitFailure,
				fmt.Sprintf("curve %q is invalid: %v", def.Name, errs[0]))
		}
	}

	slog.Debug("opening catalog", "path", opts.Database)
	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open catalog", err)
	}
	defer st.Close()

	for _, def := range result.Curves {
		id, err := st.SaveCurve(cmd.Context(), def)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("failed to save %q", def.Name), err)
		}
		slog.Debug("curve saved", "name", def.Name, "id", id)
		fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", def.Name)
	}
	return nil
}

func newCatalogListCommand(opts *CatalogOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List cataloged curves",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalogList(opts, cmd)
		},
	}
}

func runCatalogList(opts *CatalogOptions, cmd *cobra.Command) error {
	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open catalog", err)
	}
	defer st.Close()

	records, err := st.ListCurves(cmd.Context())
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to list curves", err)
	}

	if opts.Format == "json" {
		formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
		defs := make([]preset.Definition, len(records))
		for i, rec := range records {
			defs[i] = rec.Definition
		}
		return formatter.Success(defs)
	}

	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "catalog is empty")
		return nil
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tAXIOM\tRULES\tITERATIONS\tCREATED")
	for _, rec := range records {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n",
			rec.Definition.Name,
			clipAxiom(rec.Definition.Axiom),
			len(rec.Definition.Rules),
			rec.Definition.Iterations,
			rec.CreatedAt,
		)
	}
	return w.Flush()
}

func newCatalogShowCommand(opts *CatalogOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "show <name>",
		Short:         "Show one cataloged curve",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalogShow(opts, args[0], cmd)
		},
	}
}

func runCatalogShow(opts *CatalogOptions, name string, cmd *cobra.Command) error {
	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open catalog", err)
	}
	defer st.Close()

	rec, err := st.GetCurve(cmd.Context(), name)
	if errors.Is(err, store.ErrNotFound) {
		return WrapExitError(ExitCommandError, "curve not found", err)
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read catalog", err)
	}

	if opts.Format == "json" {
		formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
		return formatter.Success(rec.Definition)
	}
	data, err := yaml.Marshal(rec.Definition)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to encode curve", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func newCatalogDeleteCommand(opts *CatalogOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "delete <name>",
		Short:         "Delete a cataloged curve",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalogDelete(opts, args[0], cmd)
		},
	}
}

func runCatalogDelete(opts *CatalogOptions, name string, cmd *cobra.Command) error {
	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open catalog", err)
	}
	defer st.Close()

	deleted, err := st.DeleteCurve(cmd.Context(), name)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to delete curve", err)
	}
	if !deleted {
		return NewExitError(ExitCommandError, fmt.Sprintf("curve %q not found", name))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", name)
	return nil
}

// clipAxiom shortens long axioms for the list view.
func clipAxiom(axiom string) string {
	const max = 24
	runes := []rune(axiom)
	if len(runes) <= max {
		return axiom
	}
	return string(runes[:max]) + "..."
}

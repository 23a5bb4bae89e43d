// Package main provides the CLI entry point for scriptaudit, a tool that
// audits script header metadata against an Excel inventory.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/seradco/scriptaudit/audit"
	"github.com/seradco/scriptaudit/log"
	"github.com/seradco/scriptaudit/profile"
	"github.com/seradco/scriptaudit/version"
)

func main() {
	logCfg := log.NewConfig()
	profCfg := profile.NewConfig()

	var prof *profile.Profiler

	rootCmd := &cobra.Command{
		Use:   "scriptaudit",
		Short: "Audit script header metadata against an Excel inventory",
		Long: `scriptaudit extracts key-value metadata from script headers (leading
comment blocks in Python scripts, the embedded Header string constant in
Java sources), compares it against an Excel inventory workbook, and writes
an Excel comparison report.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			handler, err := logCfg.NewHandler(os.Stderr)
			if err != nil {
				return err
			}

			slog.SetDefault(slog.New(handler))

			prof = profCfg.NewProfiler()

			return prof.Start()
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return prof.Stop()
		},
	}

	logCfg.RegisterFlags(rootCmd.PersistentFlags())
	profCfg.RegisterFlags(rootCmd.PersistentFlags())

	completionErr := logCfg.RegisterCompletions(rootCmd)
	if completionErr != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", completionErr)
	}

	rootCmd.AddCommand(
		newAuditCmd(),
		newReviewCmd(),
		newSchemaCmd(),
		newVersionCmd(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newAuditCmd() *cobra.Command {
	cfg := audit.NewConfig()

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Scan scripts, compare to the inventory, write the report",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runAudit(cfg)
		},
	}

	registerAuditFlags(cfg, cmd)

	return cmd
}

func newReviewCmd() *cobra.Command {
	cfg := audit.NewConfig()

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Browse comparison results interactively",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runReview(cfg)
		},
	}

	registerAuditFlags(cfg, cmd)

	return cmd
}

func registerAuditFlags(cfg *audit.Config, cmd *cobra.Command) {
	cfg.RegisterFlags(cmd.Flags())

	err := cfg.RegisterCompletions(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
	}
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for the config file",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			out, err := json.MarshalIndent(audit.ConfigSchema(), "", "  ")
			if err != nil {
				return fmt.Errorf("marshal schema: %w", err)
			}

			fmt.Println(string(out))

			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println("scriptaudit " + version.String())
		},
	}
}

func runAudit(cfg *audit.Config) error {
	eff, err := cfg.Resolve()
	if err != nil {
		return err
	}

	result, err := audit.Run(eff)
	if err != nil {
		return err
	}

	counts := map[audit.Status]int{}
	for _, entry := range result.Entries {
		counts[entry.Status]++
	}

	slog.Info("audit complete",
		slog.Int("scanned", result.Scanned),
		slog.Int("entries", len(result.Entries)),
		slog.Int("ok", counts[audit.StatusOK]),
		slog.Int("mismatch", counts[audit.StatusMismatch]+counts[audit.StatusMissingMismatch]),
		slog.Int("missing", counts[audit.StatusMissing]),
		slog.Int("not_in_inventory", counts[audit.StatusNotInInventory]),
		slog.Int("file_not_found", counts[audit.StatusFileNotFound]),
		slog.String("report", eff.Report))

	return nil
}
